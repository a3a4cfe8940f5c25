package models

// User represents a row in the users table.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"` // UNIQUE
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
	AuditFields
}
