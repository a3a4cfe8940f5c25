package services

import (
	"context"

	"github.com/bankapp-se/bankapp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountSvcFacade defines the business operations on accounts and their ledger.
type AccountSvcFacade interface {
	// CreateAccount opens a new account for ownerID with the given display
	// name and an optional non-negative starting balance. The starting
	// balance does not produce a ledger entry.
	CreateAccount(ctx context.Context, ownerID string, name string, initialDeposit decimal.Decimal) (*domain.Account, error)

	// GetAccountByID retrieves a single account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountsForUser retrieves all accounts owned by a user.
	GetAccountsForUser(ctx context.Context, ownerID string) ([]domain.Account, error)

	// GetAccountIDByAccountNumber resolves a public account number to the
	// internal account identifier.
	GetAccountIDByAccountNumber(ctx context.Context, accountNumber int64) (string, error)

	// AccountExists reports whether the account is present in the store.
	AccountExists(ctx context.Context, accountID string) (bool, error)

	// RenameAccount changes an account's display name.
	RenameAccount(ctx context.Context, accountID string, newName string) (*domain.Account, error)

	// CloseAccount removes an account.
	CloseAccount(ctx context.Context, accountID string) error

	// Deposit adds a positive amount to the account balance and records a
	// ledger entry. The whole operation commits atomically.
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal, description string) (*domain.Transaction, error)

	// Withdraw removes a positive amount from the account balance, failing
	// with apperrors.ErrInsufficientFunds when the balance cannot cover it.
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, description string) (*domain.Transaction, error)

	// Transfer moves a positive amount between two distinct accounts,
	// recording one debit entry and one credit entry that sum to zero.
	Transfer(ctx context.Context, fromAccountID string, toAccountID string, amount decimal.Decimal, description string) error

	// GetTransactions lists the account's ledger entries newest first, one
	// page at a time.
	GetTransactions(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}
