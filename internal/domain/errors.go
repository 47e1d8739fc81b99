package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound       = errors.New("account not found")
	ErrInvalidDocumentNumber = errors.New("document number must consist of digits only")

	// Transaction errors
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrOperationTypeNotFound    = errors.New("operation type not found")
	ErrOperationTypeUnspecified = errors.New("operation type id is required")
	ErrInvalidAmount            = errors.New("amount must be positive")

	// Store errors. Failures from the underlying store are wrapped with
	// one of these so callers never inspect driver-specific errors.
	ErrPersistenceFailed = errors.New("persistence failure")
	ErrDischargeFailed   = errors.New("discharge failure")
)

// ErrorCode maps an error to its stable, documented code. Codes are part
// of the API contract and must never be reused for a different kind.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrPersistenceFailed):
		return "BANKING_002"
	case errors.Is(err, ErrOperationTypeUnspecified):
		return "BANKING_TRANSACTION_006"
	case errors.Is(err, ErrDischargeFailed):
		return "BANKING_TRANSACTION_007"
	case errors.Is(err, ErrInvalidDocumentNumber):
		return "BANKING_ACCOUNT_008"
	case errors.Is(err, ErrAccountNotFound):
		return "BANKING_ACCOUNT_009"
	case errors.Is(err, ErrOperationTypeNotFound):
		return "BANKING_ACCOUNT_010"
	case errors.Is(err, ErrInvalidAmount):
		return "BANKING_TRANSACTION_011"
	case errors.Is(err, ErrTransactionNotFound):
		return "BANKING_TRANSACTION_012"
	default:
		return "BANKING_001"
	}
}
