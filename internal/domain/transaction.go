package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single monetary movement against an account.
//
// Amount carries the operation sign (negative for debits) and never
// changes after creation. Balance is the portion of Amount that is still
// unsettled: a debit starts at its full negative amount and moves toward
// zero as later credits discharge it, a credit starts at whatever was
// left after discharging existing debt. EventDate orders settlement,
// oldest debt first.
type Transaction struct {
	ID              int64
	AccountID       int64
	OperationTypeID int64
	Amount          decimal.Decimal
	Balance         decimal.Decimal
	EventDate       time.Time
}

// Outstanding returns the still-owed portion of a debit transaction as a
// positive number.
func (t *Transaction) Outstanding() decimal.Decimal {
	return t.Balance.Neg()
}

// Settled reports whether the transaction has no unsettled balance left.
func (t *Transaction) Settled() bool {
	return t.Balance.IsZero()
}
