package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndk-1996/BankingService/internal/adapter/http/dto"
	"github.com/ndk-1996/BankingService/internal/domain"
	"github.com/ndk-1996/BankingService/internal/usecase"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error)
	ListTransactionsByAccount(ctx context.Context, input usecase.ListTransactionsByAccountInput) ([]*domain.Transaction, error)
	ListOperationTypes(ctx context.Context) ([]*domain.OperationType, error)
}

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	transactionUC TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionUC TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionUC: transactionUC}
}

// Create creates a new transaction and settles outstanding debt when the
// operation is a credit.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BANKING_400", "invalid request body", err.Error())
		return
	}

	txn, err := h.transactionUC.CreateTransaction(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}

// Get retrieves a transaction by ID.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "BANKING_400", "invalid transaction ID", err.Error())
		return
	}

	txn, err := h.transactionUC.GetTransaction(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(txn))
}

// ListByAccount lists an account's transactions.
func (h *TransactionHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "BANKING_400", "invalid account ID", err.Error())
		return
	}

	txns, err := h.transactionUC.ListTransactionsByAccount(r.Context(), usecase.ListTransactionsByAccountInput{
		AccountID: accountID,
		Limit:     parseIntQuery(r, "limit", 20),
		Offset:    parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(txns),
		Total:        int64(len(txns)),
	})
}

// ListOperationTypes lists the operation-type catalog.
func (h *TransactionHandler) ListOperationTypes(w http.ResponseWriter, r *http.Request) {
	ops, err := h.transactionUC.ListOperationTypes(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.OperationTypesFromDomain(ops))
}
