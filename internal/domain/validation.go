package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidateDocumentNumber checks that a document number is non-empty and
// consists of digits only.
func ValidateDocumentNumber(documentNumber string) error {
	if documentNumber == "" {
		return fmt.Errorf("%w: document number is empty", ErrInvalidDocumentNumber)
	}

	for _, r := range documentNumber {
		if r < '0' || r > '9' {
			return ErrInvalidDocumentNumber
		}
	}

	return nil
}

// ValidateAmount checks that a requested transaction amount is strictly
// positive. The sign is applied later from the operation type.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return nil
}
