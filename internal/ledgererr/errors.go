// Package ledgererr defines the typed errors raised by the ledger services.
package ledgererr

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// InvalidAmountError is raised when an operation amount is zero or negative.
type InvalidAmountError struct {
	Amount decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("operation amount must be positive, got %s", e.Amount)
}

// InvalidLimitError is raised when a budget limit is negative.
type InvalidLimitError struct {
	Category string
	Limit    decimal.Decimal
}

func (e *InvalidLimitError) Error() string {
	return fmt.Sprintf("budget limit for category '%s' must be zero or positive, got %s", e.Category, e.Limit)
}

// LimitNotFoundError is raised when a call requires a limit entry that does
// not exist for the named category.
type LimitNotFoundError struct {
	Category string
}

func (e *LimitNotFoundError) Error() string {
	return fmt.Sprintf("no budget limit exists for category '%s'", e.Category)
}

// SnapshotFormatError is raised when a snapshot payload does not match the
// shape required by the import being performed. Imports that fail this way
// leave the ledger untouched.
type SnapshotFormatError struct {
	Facet  string
	Reason string
	Err    error
}

func (e *SnapshotFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s snapshot: %s: %v", e.Facet, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s snapshot: %s", e.Facet, e.Reason)
}

func (e *SnapshotFormatError) Unwrap() error {
	return e.Err
}

// InvalidCredentialsError is raised on a bad username or password during
// registration or login.
type InvalidCredentialsError struct {
	Reason string
}

func (e *InvalidCredentialsError) Error() string {
	return fmt.Sprintf("invalid credentials: %s", e.Reason)
}

// ErrCancelled is the sentinel returned by interactive prompts when the user
// requests a general command (cancel/logout/exit) instead of an answer.
var ErrCancelled = errors.New("action cancelled, returning to menu")

// IsLimitNotFound reports whether err is (or wraps) a LimitNotFoundError.
func IsLimitNotFound(err error) bool {
	var notFound *LimitNotFoundError
	return errors.As(err, &notFound)
}
