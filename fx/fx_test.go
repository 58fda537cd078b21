package fx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammadqodir/lifeos/fx"
)

// =============================================================================
// TEST SETUP
// =============================================================================

// newTestProvider serves a canned rate table for "usd" and 404s anything else.
func newTestProvider(t *testing.T) *fx.JSDelivrProvider {
	mux := http.NewServeMux()
	mux.HandleFunc("/usd.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"date":"2026-09-01","usd":{"eur":0.92,"uzs":12650.13,"rub":81.5}}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return fx.NewProviderWithURL(server.URL, server.Client())
}

// =============================================================================
// LOOKUP
// =============================================================================

func TestLookup_FiltersToRequestedTargets(t *testing.T) {
	svc := fx.NewService(newTestProvider(t))

	quote, err := svc.Lookup(context.Background(), "USD", []string{"EUR", "UZS"})
	require.NoError(t, err)

	assert.Equal(t, "USD", quote.Base)
	assert.Equal(t, "2026-09-01", quote.Date)
	require.Len(t, quote.Rates, 2)
	assert.Equal(t, "0.92", quote.Rates["EUR"].String())
	assert.Equal(t, "12650.13", quote.Rates["UZS"].String())
}

func TestLookup_CodesNormalized(t *testing.T) {
	svc := fx.NewService(newTestProvider(t))

	quote, err := svc.Lookup(context.Background(), " usd ", []string{"eur"})
	require.NoError(t, err)
	assert.Contains(t, quote.Rates, "EUR")
}

func TestLookup_MissingTargets_PartialResultWithError(t *testing.T) {
	// GIVEN: the table knows eur but not xxx
	// THEN: the found rates come back alongside a MissingTargetsError

	svc := fx.NewService(newTestProvider(t))

	quote, err := svc.Lookup(context.Background(), "USD", []string{"EUR", "XXX"})
	require.Error(t, err)

	var missing *fx.MissingTargetsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"XXX"}, missing.Targets)

	require.NotNil(t, quote)
	assert.Contains(t, quote.Rates, "EUR")
	assert.NotContains(t, quote.Rates, "XXX")
}

func TestLookup_InvalidCodes_Rejected(t *testing.T) {
	svc := fx.NewService(newTestProvider(t))

	for _, bad := range []string{"", "US", "USDA", "U5D", "usd1"} {
		_, err := svc.Lookup(context.Background(), bad, []string{"EUR"})
		assert.ErrorIs(t, err, fx.ErrInvalidCode, "base %q", bad)

		_, err = svc.Lookup(context.Background(), "USD", []string{bad})
		assert.ErrorIs(t, err, fx.ErrInvalidCode, "target %q", bad)
	}
}

func TestLookup_UnknownBase(t *testing.T) {
	svc := fx.NewService(newTestProvider(t))

	_, err := svc.Lookup(context.Background(), "ZZZ", []string{"EUR"})
	assert.ErrorIs(t, err, fx.ErrBaseUnknown)
}

// =============================================================================
// PROVIDER FAILURE MODES
// =============================================================================

func TestProvider_ServerError_Unavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	provider := fx.NewProviderWithURL(server.URL, server.Client())
	_, err := provider.Rates(context.Background(), "usd")
	assert.ErrorIs(t, err, fx.ErrProviderUnavailable)
}

func TestProvider_MalformedPayload_Unavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	t.Cleanup(server.Close)

	provider := fx.NewProviderWithURL(server.URL, server.Client())
	_, err := provider.Rates(context.Background(), "usd")
	assert.ErrorIs(t, err, fx.ErrProviderUnavailable)
}

func TestProvider_BadDateField_Unavailable(t *testing.T) {
	// A non-string date means the payload shape changed under us.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"date":123,"usd":{"eur":0.92}}`))
	}))
	t.Cleanup(server.Close)

	provider := fx.NewProviderWithURL(server.URL, server.Client())
	_, err := provider.Rates(context.Background(), "usd")
	assert.ErrorIs(t, err, fx.ErrProviderUnavailable)
}

func TestProvider_Unreachable_Unavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	provider := fx.NewProviderWithURL(server.URL, nil)
	_, err := provider.Rates(context.Background(), "usd")
	assert.ErrorIs(t, err, fx.ErrProviderUnavailable)
}
