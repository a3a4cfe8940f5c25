// Package accountnumber generates the public 9-digit numbers that identify
// accounts to other customers.
package accountnumber

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Min is the smallest valid account number (inclusive).
	Min int64 = 100_000_000
	// Max is the upper bound of valid account numbers (exclusive).
	Max int64 = 1_000_000_000
)

// Generate returns a random account number in [Min, Max). Uniqueness is not
// guaranteed here; the caller handles collisions against the store.
func Generate() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(Max-Min))
	if err != nil {
		return 0, fmt.Errorf("failed to generate account number: %w", err)
	}
	return Min + n.Int64(), nil
}

// IsValid reports whether n is in the valid account number range.
func IsValid(n int64) bool {
	return n >= Min && n < Max
}
