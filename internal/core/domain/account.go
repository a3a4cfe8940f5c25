package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a bank account within the core domain.
// This is the primary representation used by services.
//
// The balance is only ever mutated through the deposit, withdrawal and
// transfer operations of the account service; it is never set directly.
// Transaction history is not held on the entity; callers fetch it from
// the transaction store on demand.
type Account struct {
	AccountID     string          `json:"accountID"`     // Primary Key (UUID)
	AccountNumber int64           `json:"accountNumber"` // Public 9-digit identifier, unique across all accounts
	Name          string          `json:"name"`          // User-defined display name
	OwnerID       string          `json:"ownerID"`       // Opaque user identifier, immutable after creation
	Balance       decimal.Decimal `json:"balance"`       // Never negative
	AuditFields                   // Embed CreatedAt, CreatedBy, etc.
}
