// Package id generates the public identifiers handed out to accounts.
// A collision would fail the insert on the account_id unique index rather
// than alias two accounts.
package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns exactly 32 lowercase hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
