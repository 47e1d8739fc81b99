package domain

// OperationKind classifies whether an operation type adds funds to an
// account (credit) or removes them (debit).
type OperationKind string

const (
	OperationKindCredit OperationKind = "credit"
	OperationKindDebit  OperationKind = "debit"
)

// Multiplier returns the sign applied to a requested amount: +1 for
// credit operations, -1 for debit operations.
func (k OperationKind) Multiplier() int64 {
	if k == OperationKindCredit {
		return 1
	}

	return -1
}

// IsCredit reports whether the kind increases account funds.
func (k OperationKind) IsCredit() bool {
	return k == OperationKindCredit
}

// Valid reports whether the kind is one of the known values.
func (k OperationKind) Valid() bool {
	return k == OperationKindCredit || k == OperationKindDebit
}

// OperationType is immutable reference data describing a transaction
// operation: a purchase, a withdrawal, a voucher and so on.
type OperationType struct {
	ID          int64
	Description string
	Kind        OperationKind
}
