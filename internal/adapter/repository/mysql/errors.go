package mysql

import (
	"errors"
	"fmt"
	"strings"

	"bike-finance-backend/internal/domain/customer"

	"gorm.io/gorm"
)

// notFound translates gorm's sentinel into the domain's, leaving other
// storage errors (connection loss, deadlock) untouched so callers can
// treat them as retryable.
func notFound(err, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return err
}

// duplicateErr wraps a unique-key violation so the HTTP layer can map
// it to 409 with errors.Is.
func duplicateErr(err error) error {
	return fmt.Errorf("%w: %v", customer.ErrDuplicate, err)
}

// isDuplicate detects unique-key violations for MySQL (error 1062) and
// SQLite (used by the test suite).
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
