package repositories

import (
	"context"
	"time"

	"github.com/bankapp-se/bankapp_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its internal identifier.
	// Returns apperrors.ErrNotFound if no such account exists.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByNumber retrieves an account by its public 9-digit account number.
	FindAccountByNumber(ctx context.Context, accountNumber int64) (*domain.Account, error)

	// FindAccountsByOwner retrieves all accounts belonging to an owner.
	FindAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. Returns apperrors.ErrDuplicate when
	// the generated account number (or id) collides with an existing row.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's mutable details (name).
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account row. Returns apperrors.ErrNotFound if absent.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountTransactionSupport defines operations used inside a money-movement
// database transaction. Callers must hold the pgx.Tx for the whole
// read-validate-write sequence.
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects the accounts and locks their rows
	// until the transaction ends. Rows are locked in ascending account_id
	// order so that two movements touching the same pair of accounts can
	// never deadlock each other. Missing IDs are simply absent from the map.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// UpdateAccountBalancesInTx applies signed balance deltas to multiple
	// accounts within the given transaction.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, now time.Time) error
}

// AccountRepository combines all account-related repository interfaces.
type AccountRepository interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}

// AccountRepositoryWithTx extends AccountRepository with transaction capabilities.
type AccountRepositoryWithTx interface {
	AccountRepository
	TxManager
}
