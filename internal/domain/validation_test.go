package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateDocumentNumber(t *testing.T) {
	valid := []string{"1", "12345678900", "00000000000"}
	for _, doc := range valid {
		if err := ValidateDocumentNumber(doc); err != nil {
			t.Errorf("document %q: unexpected error %v", doc, err)
		}
	}

	invalid := []string{"", " ", "123a", "12 345", "12-345", "12.345", "١٢٣"}
	for _, doc := range invalid {
		if err := ValidateDocumentNumber(doc); !errors.Is(err, ErrInvalidDocumentNumber) {
			t.Errorf("document %q: expected ErrInvalidDocumentNumber, got %v", doc, err)
		}
	}
}

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(decimal.NewFromFloat(0.01)); err != nil {
		t.Errorf("unexpected error for positive amount: %v", err)
	}
	if err := ValidateAmount(decimal.NewFromInt(100)); err != nil {
		t.Errorf("unexpected error for positive amount: %v", err)
	}

	if err := ValidateAmount(decimal.Zero); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount for zero, got %v", err)
	}
	if err := ValidateAmount(decimal.NewFromInt(-1)); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount for negative, got %v", err)
	}
}
