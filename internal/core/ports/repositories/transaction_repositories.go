package repositories

import (
	"context"

	"github.com/bankapp-se/bankapp_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for the ledger.
type TransactionReader interface {
	// FindTransactionByID retrieves a single ledger entry.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccountID retrieves ledger entries for an account,
	// newest first, using token-based pagination. It returns the entries,
	// a token for the next page (nil when exhausted), and an error.
	ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for the ledger.
// The core only ever appends; Update and Delete exist for parity with
// external maintenance tooling and are not called from the services.
type TransactionWriter interface {
	// SaveTransactionsInTx appends ledger entries within the given database
	// transaction, so an entry and its balance mutation commit together.
	SaveTransactionsInTx(ctx context.Context, tx pgx.Tx, transactions []domain.Transaction) error

	// UpdateTransaction replaces a ledger entry's description.
	UpdateTransaction(ctx context.Context, transaction domain.Transaction) error

	// DeleteTransaction removes a ledger entry.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepository combines the ledger repository interfaces.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
