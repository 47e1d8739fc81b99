package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ndk-1996/BankingService/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	DocumentNumber string `json:"document_number"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		DocumentNumber: r.DocumentNumber,
	}
}

// CreateTransactionRequest represents a request to create a transaction.
type CreateTransactionRequest struct {
	AccountID       int64           `json:"account_id"`
	OperationTypeID int64           `json:"operation_type_id"`
	Amount          decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransactionRequest) ToUseCaseInput() usecase.CreateTransactionInput {
	return usecase.CreateTransactionInput{
		AccountID:       r.AccountID,
		OperationTypeID: r.OperationTypeID,
		Amount:          r.Amount,
	}
}
