package repositories

import (
	"context"

	"github.com/revlo/revlo_ledger/internal/core/domain"
)

// DebtSummaryCache stores derived debt summaries under per-counterparty
// versions. Invalidate bumps the version, so every earlier entry becomes
// unreachable, including entries written late by a reader that looked up an
// older version.
type DebtSummaryCache interface {
	// Get returns the cached summary, or nil on a miss, together with the
	// version the lookup was made under.
	Get(ctx context.Context, companyID, counterpartyID string) (*domain.DebtSummary, int64, error)

	// Set stores a summary under a version returned by an earlier Get.
	Set(ctx context.Context, companyID, counterpartyID string, version int64, summary domain.DebtSummary) error

	// Invalidate bumps the counterparty's version.
	Invalidate(ctx context.Context, companyID, counterpartyID string) error
}
