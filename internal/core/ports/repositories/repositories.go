package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxManager exposes database transaction control to the service layer so a
// balance mutation and its ledger entries can commit or roll back together.
type TxManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryWithTx
	TransactionRepo TransactionRepository
	UserRepo        UserRepository
}
