package domain

import "github.com/shopspring/decimal"

// TransactionType classifies a ledger entry by the operation that produced it.
type TransactionType string

const (
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
	Transfer   TransactionType = "TRANSFER"
)

// Transaction is a single immutable ledger entry against one account.
// The amount is signed: positive for money entering the account (deposit,
// incoming transfer leg), negative for money leaving it (withdrawal,
// outgoing transfer leg). Entries are append-only; nothing in the core
// updates or deletes them once written.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	AccountID       string          `json:"accountID"`     // FK -> Account.accountID (Not Null)
	Amount          decimal.Decimal `json:"amount"`        // Signed; precise decimal type
	TransactionType TransactionType `json:"transactionType"`
	Description     string          `json:"description"` // Optional free text, immutable once recorded
	AuditFields                     // CreatedAt is the UTC transaction timestamp
}

// IsCredit reports whether the entry moves money into the account.
func (t Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}
