/*
jsdelivr.go - Production exchange rate provider

Fetches daily rate tables from the fawazahmed0 currency-api distribution
on the jsDelivr CDN. The endpoint is a static JSON file per base
currency, shaped like:

  {"date": "2026-09-01", "usd": {"eur": 0.92, "uzs": 12650.1, ...}}

Requests are bounded by a client timeout; any transport failure, non-200
status, or malformed payload surfaces as ErrProviderUnavailable, except
a 404 which means the base currency has no table (ErrBaseUnknown).
*/
package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const (
	jsDelivrBaseURL = "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@latest/v1/currencies"
	requestTimeout  = 10 * time.Second
)

// JSDelivrProvider fetches rate tables from the jsDelivr CDN.
type JSDelivrProvider struct {
	baseURL string
	client  *http.Client
}

// NewJSDelivrProvider creates a provider against the public CDN.
func NewJSDelivrProvider() *JSDelivrProvider {
	return &JSDelivrProvider{
		baseURL: jsDelivrBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// NewProviderWithURL creates a provider against a custom endpoint.
// Used by tests to point at a local server.
func NewProviderWithURL(baseURL string, client *http.Client) *JSDelivrProvider {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &JSDelivrProvider{baseURL: baseURL, client: client}
}

func (p *JSDelivrProvider) Rates(ctx context.Context, base string) (*Table, error) {
	url := fmt.Sprintf("%s/%s.json", p.baseURL, base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrBaseUnknown, base)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	// The payload keys the rate table by the base code itself.
	var payload map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	table := &Table{Rates: make(map[string]decimal.Decimal)}
	if raw, ok := payload["date"]; ok {
		if err := json.Unmarshal(raw, &table.Date); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
		}
	}
	raw, ok := payload[base]
	if !ok {
		return nil, fmt.Errorf("%w: table for %s missing from payload", ErrProviderUnavailable, base)
	}
	var rates map[string]float64
	if err := json.Unmarshal(raw, &rates); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	for code, rate := range rates {
		table.Rates[code] = decimal.NewFromFloat(rate)
	}
	return table, nil
}
