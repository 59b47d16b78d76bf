package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	portsrepo "github.com/revlo/revlo_ledger/internal/core/ports/repositories"
	portssvc "github.com/revlo/revlo_ledger/internal/core/ports/services"
	"github.com/revlo/revlo_ledger/internal/dto"
	"golang.org/x/sync/singleflight"
)

// counterpartyService implements the CounterpartySvcFacade interface
type counterpartyService struct {
	BaseService
	counterpartyRepo portsrepo.CounterpartyRepositoryFacade
	txnRepo          portsrepo.TransactionReader
	debtCache        portsrepo.DebtSummaryCache
	debtGroup        singleflight.Group
}

// CounterpartyServiceOption is a functional option for configuring the counterparty service
type CounterpartyServiceOption func(*counterpartyService)

// WithCounterpartyCompanyAuthorizer adds company authorizer dependency
func WithCounterpartyCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) CounterpartyServiceOption {
	return func(s *counterpartyService) {
		s.CompanyAuthorizer = authorizer
	}
}

// WithDebtSummaryCache serves debt summaries from a cache, deriving them on a miss.
func WithDebtSummaryCache(cache portsrepo.DebtSummaryCache) CounterpartyServiceOption {
	return func(s *counterpartyService) {
		s.debtCache = cache
	}
}

// NewCounterpartyService creates a new counterparty service with the provided options
func NewCounterpartyService(repo portsrepo.CounterpartyRepositoryFacade, txnRepo portsrepo.TransactionReader, options ...CounterpartyServiceOption) portssvc.CounterpartySvcFacade {
	svc := &counterpartyService{
		counterpartyRepo: repo,
		txnRepo:          txnRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CounterpartySvcFacade = (*counterpartyService)(nil)

func (s *counterpartyService) CreateCounterparty(ctx context.Context, companyID string, req dto.CreateCounterpartyRequest, userID string) (*domain.Counterparty, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}
	if !req.Kind.IsValid() {
		return nil, apperrors.NewValidationError("unknown counterparty kind %q", req.Kind)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	cp := domain.Counterparty{
		CounterpartyID: uuid.NewString(),
		CompanyID:      companyID,
		Kind:           req.Kind,
		Name:           name,
		Phone:          strings.TrimSpace(req.Phone),
		Email:          strings.TrimSpace(req.Email),
		AuditFields:    domain.NewAuditFields(userID, s.now()),
	}
	if err := s.counterpartyRepo.SaveCounterparty(ctx, cp); err != nil {
		s.LogError(ctx, err, "Failed to save counterparty", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create counterparty: %w", err)
	}

	s.LogInfo(ctx, "Counterparty created", slog.String("counterparty_id", cp.CounterpartyID), slog.String("kind", string(cp.Kind)))
	return &cp, nil
}

func (s *counterpartyService) GetCounterpartyByID(ctx context.Context, companyID string, counterpartyID string, userID string) (*domain.Counterparty, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.loadCounterparty(ctx, companyID, counterpartyID)
}

func (s *counterpartyService) ListCounterparties(ctx context.Context, companyID string, userID string, params dto.ListCounterpartiesParams) ([]domain.Counterparty, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	cps, err := s.counterpartyRepo.ListCounterparties(ctx, companyID, params.Kind, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list counterparties", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list counterparties: %w", err)
	}
	if cps == nil {
		return []domain.Counterparty{}, nil
	}
	return cps, nil
}

func (s *counterpartyService) GetCustomerDebtSummary(ctx context.Context, companyID string, customerID string, userID string) (*domain.DebtSummary, error) {
	kind := domain.KindCustomer
	return s.debtSummary(ctx, companyID, customerID, userID, &kind)
}

func (s *counterpartyService) GetVendorDebtSummary(ctx context.Context, companyID string, vendorID string, userID string) (*domain.DebtSummary, error) {
	kind := domain.KindVendor
	return s.debtSummary(ctx, companyID, vendorID, userID, &kind)
}

func (s *counterpartyService) GetDebtSummary(ctx context.Context, companyID string, counterpartyID string, userID string) (*domain.DebtSummary, error) {
	return s.debtSummary(ctx, companyID, counterpartyID, userID, nil)
}

// debtSummary loads the counterparty, checks its kind and returns its summary
// from the cache or, on a miss, derived from the log. Concurrent misses for
// the same counterparty and cache version share one derivation.
func (s *counterpartyService) debtSummary(ctx context.Context, companyID, counterpartyID, userID string, want *domain.CounterpartyKind) (*domain.DebtSummary, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	cp, err := s.loadCounterparty(ctx, companyID, counterpartyID)
	if err != nil {
		return nil, err
	}
	switch {
	case want != nil && cp.Kind != *want:
		return nil, apperrors.NewValidationError("%s is a %s, not a %s", counterpartyID, cp.Kind, *want)
	case cp.Kind == domain.KindEmployee:
		return nil, apperrors.NewValidationError("debt is tracked for customers and vendors only")
	}

	if s.debtCache == nil {
		summary, err := s.deriveDebtSummary(ctx, companyID, counterpartyID)
		if err != nil {
			s.LogError(ctx, err, "Failed to derive debt summary", slog.String("counterparty_id", counterpartyID))
			return nil, err
		}
		return &summary, nil
	}

	cached, version, err := s.debtCache.Get(ctx, companyID, counterpartyID)
	if err != nil {
		s.LogError(ctx, err, "Debt summary cache lookup failed", slog.String("counterparty_id", counterpartyID))
	} else if cached != nil {
		return cached, nil
	}

	// A reader that saw a newer version must not join a derivation of an older
	// log. The flight is shared, so no single caller's cancellation reaches it.
	flightCtx := context.WithoutCancel(ctx)
	key := fmt.Sprintf("%s:%s:%d", companyID, counterpartyID, version)
	ch := s.debtGroup.DoChan(key, func() (any, error) {
		summary, err := s.deriveDebtSummary(flightCtx, companyID, counterpartyID)
		if err != nil {
			return nil, err
		}
		if err := s.debtCache.Set(flightCtx, companyID, counterpartyID, version, summary); err != nil {
			s.LogError(flightCtx, err, "Failed to cache debt summary", slog.String("counterparty_id", counterpartyID))
		}
		return summary, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			s.LogError(ctx, res.Err, "Failed to derive debt summary", slog.String("counterparty_id", counterpartyID))
			return nil, res.Err
		}
		summary := res.Val.(domain.DebtSummary)
		return &summary, nil
	}
}

func (s *counterpartyService) deriveDebtSummary(ctx context.Context, companyID, counterpartyID string) (domain.DebtSummary, error) {
	txns, err := s.txnRepo.ListTransactionsByCounterparty(ctx, companyID, counterpartyID)
	if err != nil {
		return domain.DebtSummary{}, fmt.Errorf("failed to load transactions of %s: %w", counterpartyID, err)
	}
	return domain.DeriveDebtSummary(counterpartyID, txns), nil
}

// loadCounterparty fetches a counterparty and rejects those of other companies.
func (s *counterpartyService) loadCounterparty(ctx context.Context, companyID, counterpartyID string) (*domain.Counterparty, error) {
	cp, err := s.counterpartyRepo.FindCounterpartyByID(ctx, counterpartyID)
	if err != nil {
		return nil, wrapLookupError("counterparty", counterpartyID, err)
	}
	if err := ensureSameCompany("counterparty", counterpartyID, companyID, cp.CompanyID); err != nil {
		return nil, err
	}
	return cp, nil
}
