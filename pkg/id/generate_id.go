package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewAgreementNumber builds the human-readable loan agreement number,
// LOAN-<epoch millis>-<customer id>. Uniqueness is enforced by the
// loans table, not here.
func NewAgreementNumber(customerID string, now time.Time) string {
	return fmt.Sprintf("LOAN-%d-%s", now.UnixMilli(), customerID)
}
