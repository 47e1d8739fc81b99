package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ndk-1996/BankingService/internal/domain"
	"github.com/ndk-1996/BankingService/internal/infrastructure/metrics"
)

// SettlementEngine discharges an account's outstanding debt with incoming
// credit funds, oldest debt first.
type SettlementEngine struct {
	transactionRepo TransactionRepository
}

// NewSettlementEngine creates a new SettlementEngine.
func NewSettlementEngine(transactionRepo TransactionRepository) *SettlementEngine {
	return &SettlementEngine{transactionRepo: transactionRepo}
}

// Discharge walks the account's unsettled debit transactions in event-date
// order and pays them off until credit runs out, persisting every balance
// update through tx. It returns the portion of credit left over: zero when
// the debt absorbed everything, positive when the credit exceeded the
// total outstanding debt.
//
// The caller must hold the account lock and owns tx; nothing is committed
// here, so a failure anywhere leaves the attempt fully rollback-able.
func (e *SettlementEngine) Discharge(ctx context.Context, tx Transaction, accountID int64, credit decimal.Decimal) (decimal.Decimal, error) {
	if credit.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	debts, err := e.transactionRepo.FindNegativeBalance(ctx, tx, accountID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: loading unsettled debits: %v", domain.ErrDischargeFailed, err)
	}

	remaining := credit
	for _, debt := range debts {
		if !remaining.IsPositive() {
			break
		}

		owed := debt.Outstanding()
		if remaining.GreaterThan(owed) {
			// Fully settle this debt and keep going with what is left.
			debt.Balance = decimal.Zero
			remaining = remaining.Sub(owed)
			metrics.DebtsSettled.Inc()
		} else {
			// Partial settlement exhausts the credit.
			debt.Balance = debt.Balance.Add(remaining)
			remaining = decimal.Zero
			if debt.Settled() {
				metrics.DebtsSettled.Inc()
			}
		}

		if err := e.transactionRepo.UpdateBalance(ctx, tx, debt.ID, debt.Balance); err != nil {
			return decimal.Zero, fmt.Errorf("%w: updating transaction %d: %v", domain.ErrDischargeFailed, debt.ID, err)
		}
	}

	discharged := credit.Sub(remaining)
	if discharged.IsPositive() {
		metrics.AmountDischarged.Add(discharged.InexactFloat64())
	}

	return remaining, nil
}
