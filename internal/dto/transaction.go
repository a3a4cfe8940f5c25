package dto

import (
	"time"

	"github.com/bankapp-se/bankapp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTransactionsParams are the query parameters for listing an account's history.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=50" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken" binding:"omitempty"`
}

// TransactionResponse is the API representation of a ledger entry.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	AccountID       string          `json:"accountID"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transactionType"`
	Description     string          `json:"description"`
	CreatedAt       string          `json:"createdAt"`
}

// ListTransactionsResponse is one page of an account's history, newest first.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse maps a domain ledger entry to its API form.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		AccountID:       t.AccountID,
		Amount:          t.Amount,
		TransactionType: string(t.TransactionType),
		Description:     t.Description,
		CreatedAt:       formatTime(t.CreatedAt),
	}
}

// ToListTransactionsResponse maps a page of ledger entries to the API form.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	resp := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, 0, len(txns)),
		NextToken:    nextToken,
	}
	for _, t := range txns {
		resp.Transactions = append(resp.Transactions, ToTransactionResponse(t))
	}
	return resp
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
