package models

import "github.com/shopspring/decimal"

// TransactionType classifies a ledger entry by the operation that produced it.
type TransactionType string

const (
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
	Transfer   TransactionType = "TRANSFER"
)

// Transaction represents a row in the transactions table.
// Rows are insert-only; the application never updates them.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	AccountID       string          `db:"account_id"`
	Amount          decimal.Decimal `db:"amount"` // Signed
	TransactionType TransactionType `db:"transaction_type"`
	Description     string          `db:"description"`
	AuditFields
}
