package domain

import "github.com/shopspring/decimal"

// DebtSummary is the outstanding balance of a customer or vendor. It is never
// stored; it is derived from the transaction log on every read.
type DebtSummary struct {
	CounterpartyID string          `json:"counterpartyID"`
	TotalDebt      decimal.Decimal `json:"totalDebt"`
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	RemainingDebt  decimal.Decimal `json:"remainingDebt"`
	IsFullyPaid    bool            `json:"isFullyPaid"`
}

// DeriveDebtSummary sums DEBT_TAKEN rows as debt, and DEBT_REPAID rows plus
// INCOME rows flagged as debt payments as paid. Reversed rows are skipped.
// The caller is responsible for passing only rows linked to the counterparty.
func DeriveDebtSummary(counterpartyID string, txns []Transaction) DebtSummary {
	debt := decimal.Zero
	paid := decimal.Zero
	for _, txn := range txns {
		if txn.IsReversed {
			continue
		}
		switch {
		case txn.Type == DebtTaken:
			debt = debt.Add(txn.Amount)
		case txn.Type == DebtRepaid:
			paid = paid.Add(txn.Amount)
		case txn.Type == Income && txn.AppliesToDebt:
			paid = paid.Add(txn.Amount)
		}
	}
	remaining := debt.Sub(paid)
	return DebtSummary{
		CounterpartyID: counterpartyID,
		TotalDebt:      debt,
		TotalPaid:      paid,
		RemainingDebt:  remaining,
		IsFullyPaid:    !remaining.IsPositive(),
	}
}
