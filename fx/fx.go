/*
fx.go - Exchange rate lookup

PURPOSE:
  Fetches live exchange rates from an external provider and narrows the
  result to the currency pairs a caller asked for. The provider is an
  interface so tests can substitute a fixture and the HTTP client stays
  in one place (jsdelivr.go).

ERROR MODEL:
  - Bad input (malformed currency codes)         -> ErrInvalidCode
  - Provider reachable but base unknown          -> ErrBaseUnknown
  - Provider unreachable / non-200 / bad payload -> ErrProviderUnavailable
  - Base resolved but some targets absent        -> MissingTargetsError

  Callers map the first two to client errors and the rest to upstream
  failures.

SEE ALSO:
  - jsdelivr.go: The production provider
  - api/handlers.go: HTTP exposure
*/
package fx

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrInvalidCode indicates a currency code that is not three letters.
	ErrInvalidCode = errors.New("currency code must be three letters")

	// ErrBaseUnknown indicates the provider has no table for the base currency.
	ErrBaseUnknown = errors.New("base currency not supported by provider")

	// ErrProviderUnavailable indicates the upstream rate source failed.
	// Retryable: the request was valid, the provider was not reachable.
	ErrProviderUnavailable = errors.New("exchange rate provider unavailable")
)

// MissingTargetsError reports target currencies the provider's table for
// the base does not include. The rates that were found are still returned
// alongside this error.
type MissingTargetsError struct {
	Base    string
	Targets []string
}

func (e *MissingTargetsError) Error() string {
	return fmt.Sprintf("no rate from %s to: %s", e.Base, strings.Join(e.Targets, ", "))
}

// =============================================================================
// PROVIDER
// =============================================================================

// Table is a provider's full rate table for one base currency. Keys are
// lowercase codes as they appear on the wire.
type Table struct {
	Date  string
	Rates map[string]decimal.Decimal
}

// Provider fetches the full rate table for a base currency. The base is
// passed lowercase; implementations handle casing themselves.
type Provider interface {
	Rates(ctx context.Context, base string) (*Table, error)
}

// =============================================================================
// SERVICE
// =============================================================================

// Quote is the narrowed result for one base currency.
type Quote struct {
	Base  string
	Date  string
	Rates map[string]decimal.Decimal
}

// Service validates currency codes, queries the provider, and filters
// the table down to the requested targets.
type Service struct {
	provider Provider
}

func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Lookup returns the rates from base to each target. Codes are
// normalized to upper case in the result. When some targets are missing
// from the provider table, the found rates are returned together with a
// *MissingTargetsError.
func (s *Service) Lookup(ctx context.Context, base string, targets []string) (*Quote, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if !validCode(base) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCode, base)
	}
	normalized := make([]string, 0, len(targets))
	for _, t := range targets {
		t = strings.ToUpper(strings.TrimSpace(t))
		if !validCode(t) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCode, t)
		}
		normalized = append(normalized, t)
	}

	table, err := s.provider.Rates(ctx, strings.ToLower(base))
	if err != nil {
		return nil, err
	}

	quote := &Quote{Base: base, Date: table.Date, Rates: make(map[string]decimal.Decimal, len(normalized))}
	var missing []string
	for _, t := range normalized {
		rate, ok := table.Rates[strings.ToLower(t)]
		if !ok {
			missing = append(missing, t)
			continue
		}
		quote.Rates[t] = rate
	}
	if len(missing) > 0 {
		return quote, &MissingTargetsError{Base: base, Targets: missing}
	}
	return quote, nil
}

func validCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}
