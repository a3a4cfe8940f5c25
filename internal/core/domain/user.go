package domain

// User represents an authenticated owner of accounts.
// The account service only ever sees the opaque UserID; identity details
// stay in the auth layer.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
	AuditFields
}
