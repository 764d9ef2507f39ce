package loan

import "errors"

var (
	ErrNotFound = errors.New("loan not found")
	// ErrClosed: Closed is terminal, no payment is ever accepted again.
	ErrClosed        = errors.New("loan is closed")
	ErrInvalidAmount = errors.New("payment amount must be positive")
)
