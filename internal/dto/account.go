package dto

import (
	"github.com/bankapp-se/bankapp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the payload for opening a new account.
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required,max=100"`
	InitialDeposit decimal.Decimal `json:"initialDeposit"`
}

// RenameAccountRequest is the payload for changing an account's display name.
type RenameAccountRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// DepositRequest is the payload for adding money to an account.
type DepositRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"max=255"`
}

// WithdrawRequest is the payload for removing money from an account.
type WithdrawRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"max=255"`
}

// TransferRequest is the payload for moving money between two accounts.
// The destination is either ToAccountID (one of the caller's own accounts)
// or RecipientAccountNumber (any account, addressed by its public number).
// Exactly one of the two must be set.
type TransferRequest struct {
	FromAccountID          string          `json:"fromAccountID" binding:"required,uuid"`
	ToAccountID            *string         `json:"toAccountID" binding:"omitempty,uuid"`
	RecipientAccountNumber *int64          `json:"recipientAccountNumber" binding:"omitempty,acctnumber"`
	Amount                 decimal.Decimal `json:"amount" binding:"required"`
	Description            string          `json:"description" binding:"max=255"`
}

// AccountResponse is the API representation of an account.
type AccountResponse struct {
	AccountID     string          `json:"accountID"`
	AccountNumber int64           `json:"accountNumber"`
	Name          string          `json:"name"`
	OwnerID       string          `json:"ownerID"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     string          `json:"createdAt"`
	LastUpdatedAt string          `json:"lastUpdatedAt"`
}

// ListAccountsResponse wraps the caller's accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse maps a domain account to its API form.
func ToAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     a.AccountID,
		AccountNumber: a.AccountNumber,
		Name:          a.Name,
		OwnerID:       a.OwnerID,
		Balance:       a.Balance,
		CreatedAt:     formatTime(a.CreatedAt),
		LastUpdatedAt: formatTime(a.LastUpdatedAt),
	}
}

// ToListAccountsResponse maps a slice of domain accounts to the API form.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	resp := ListAccountsResponse{Accounts: make([]AccountResponse, 0, len(accounts))}
	for _, a := range accounts {
		resp.Accounts = append(resp.Accounts, ToAccountResponse(a))
	}
	return resp
}
