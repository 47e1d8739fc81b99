package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndk-1996/BankingService/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	AccountID      int64  `json:"account_id"`
	DocumentNumber string `json:"document_number"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		AccountID:      a.ID,
		DocumentNumber: a.DocumentNumber,
	}
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	TransactionID   int64           `json:"transaction_id"`
	AccountID       int64           `json:"account_id"`
	OperationTypeID int64           `json:"operation_type_id"`
	Amount          decimal.Decimal `json:"amount"`
	Balance         decimal.Decimal `json:"balance"`
	EventDate       time.Time       `json:"event_date"`
}

// TransactionFromDomain converts domain transaction to response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		TransactionID:   t.ID,
		AccountID:       t.AccountID,
		OperationTypeID: t.OperationTypeID,
		Amount:          t.Amount,
		Balance:         t.Balance,
		EventDate:       t.EventDate,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txns []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txns))
	for i, t := range txns {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// ListTransactionsResponse represents a paginated transaction listing.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// OperationTypeResponse represents an operation type in API responses.
type OperationTypeResponse struct {
	OperationTypeID int64  `json:"operation_type_id"`
	Description     string `json:"description"`
	Kind            string `json:"kind"`
}

// OperationTypesFromDomain converts domain operation types to responses.
func OperationTypesFromDomain(ops []*domain.OperationType) []*OperationTypeResponse {
	result := make([]*OperationTypeResponse, len(ops))
	for i, op := range ops {
		result[i] = &OperationTypeResponse{
			OperationTypeID: op.ID,
			Description:     op.Description,
			Kind:            string(op.Kind),
		}
	}
	return result
}

// ErrorResponse represents an error in API responses. Code is the stable
// error code documented per error kind.
type ErrorResponse struct {
	Code    string `json:"err_code"`
	Message string `json:"err_msg"`
	Details string `json:"details,omitempty"`
}
