/*
errors.go - Error taxonomy for the ledger core

ERROR CATEGORIES:
  1. Validation errors - structural rule violations, field-scoped, all
     violations of a submission reported together
  2. Ownership errors - a referenced wallet/category is not accessible to
     the acting user; deliberately non-specific so callers cannot probe
     which ids exist
  3. Not-found - absent and not-owned direct objects are indistinguishable
  4. Store errors - duplicate client key (resolved internally by reread,
     never surfaced) and generic persistence failures

USAGE:
  var verrs finance.ValidationErrors
  if errors.As(err, &verrs) { ... field-scoped 422 ... }
  if errors.Is(err, finance.ErrNotOwned) { ... generic 403 ... }
*/
package finance

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrNotFound is returned when a directly addressed resource does not
	// exist for the acting user. Not-owned rows report identically.
	ErrNotFound = errors.New("not found")

	// ErrNotOwned is returned when a payload references a wallet or
	// category the acting user cannot use. It never names the failing id.
	ErrNotOwned = errors.New("referenced resource does not belong to the user")

	// ErrDuplicateClientID signals the (user, client_id) unique index
	// fired. The writer resolves it by rereading the winning row; it is
	// never returned to callers of Service.
	ErrDuplicateClientID = errors.New("duplicate client id")

	// ErrSettingsMissing is returned when a user has no finance settings,
	// i.e. onboarding never ran for them.
	ErrSettingsMissing = errors.New("finance settings not set up")

	// ErrStoreRequired is returned when an operation needs the extended
	// SetupStore interface and the configured store does not provide it.
	ErrStoreRequired = errors.New("operation requires extended store interface")
)

// =============================================================================
// VALIDATION ERRORS - accumulated, field-scoped
// =============================================================================

// FieldError is a single rule violation scoped to a payload field. Entry
// fields use index paths such as "entries[1].rate".
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every violation of one submission. The
// validator never short-circuits: callers report the full set at once.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Add appends a violation.
func (e *ValidationErrors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// ByField groups messages per field path, the shape the HTTP layer renders.
func (e ValidationErrors) ByField() map[string][]string {
	if len(e) == 0 {
		return nil
	}
	out := make(map[string][]string, len(e))
	for _, fe := range e {
		out[fe.Field] = append(out[fe.Field], fe.Message)
	}
	return out
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError reports whether the error is correctable by the caller.
func IsClientError(err error) bool {
	var verrs ValidationErrors
	return errors.As(err, &verrs) ||
		errors.Is(err, ErrNotOwned) ||
		errors.Is(err, ErrNotFound)
}
