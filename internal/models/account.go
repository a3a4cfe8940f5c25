package models

import (
	"github.com/shopspring/decimal"
)

// Account represents a row in the accounts table.
type Account struct {
	AccountID     string          `db:"account_id"`
	AccountNumber int64           `db:"account_number"` // UNIQUE
	Name          string          `db:"name"`
	OwnerID       string          `db:"owner_id"`
	Balance       decimal.Decimal `db:"balance"`
	AuditFields                   // Embed common audit columns
}
