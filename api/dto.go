/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

CONVENTIONS:
  - Amounts and rates are JSON strings ("12.500000"), never floats.
  - Timestamps are RFC 3339 strings.
  - Nullable fields are pointers with omitempty.

SEE ALSO:
  - handlers.go: Uses these types
  - finance/types.go: The domain model these map from
*/
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Muhammadqodir/lifeos/finance"
)

// =============================================================================
// USERS
// =============================================================================

// UserDTO represents a user in API responses.
type UserDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// RegisterUserRequest is the request to register a user.
type RegisterUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// =============================================================================
// CURRENCIES AND CATEGORIES
// =============================================================================

// CurrencyDTO represents a currency in API responses.
type CurrencyDTO struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Icon     string `json:"icon"`
	IsActive bool   `json:"is_active"`
	System   bool   `json:"system"`
}

// CategoryDTO represents a category in API responses.
type CategoryDTO struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
	Type   string `json:"type"`
	System bool   `json:"system"`
}

// CategoryRequest is the request to create or update a category.
type CategoryRequest struct {
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Type  string `json:"type"`
}

// =============================================================================
// WALLETS
// =============================================================================

// WalletDTO represents a wallet in API responses.
type WalletDTO struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Icon       string       `json:"icon"`
	Color      string       `json:"color"`
	CurrencyID int64        `json:"currency_id"`
	Currency   *CurrencyDTO `json:"currency,omitempty"`
	IsActive   bool         `json:"is_active"`
	CreatedAt  string       `json:"created_at"`
}

// WalletRequest is the request to create or update a wallet.
type WalletRequest struct {
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	Color      string `json:"color"`
	CurrencyID int64  `json:"currency_id"`
}

// BalanceDTO is a wallet's current balance.
type BalanceDTO struct {
	WalletID int64  `json:"wallet_id"`
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
}

// =============================================================================
// TRANSACTIONS
// =============================================================================

// EntryDTO represents one ledger entry in API responses.
type EntryDTO struct {
	ID         int64        `json:"id"`
	WalletID   int64        `json:"wallet_id"`
	Wallet     *WalletDTO   `json:"wallet,omitempty"`
	CurrencyID int64        `json:"currency_id"`
	Currency   *CurrencyDTO `json:"currency,omitempty"`
	Amount     string       `json:"amount"`
	Rate       *string      `json:"rate,omitempty"`
	Note       *string      `json:"note,omitempty"`
}

// TransactionDTO represents a transaction in API responses.
type TransactionDTO struct {
	ID          int64        `json:"id"`
	ClientID    *string      `json:"client_id,omitempty"`
	Type        string       `json:"type"`
	CategoryID  *int64       `json:"category_id,omitempty"`
	Category    *CategoryDTO `json:"category,omitempty"`
	Description *string      `json:"description,omitempty"`
	OccurredAt  string       `json:"occurred_at"`
	Entries     []EntryDTO   `json:"entries"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
}

// EntryRequest is one entry in a transaction write request.
type EntryRequest struct {
	WalletID   int64   `json:"wallet_id"`
	CurrencyID int64   `json:"currency_id"`
	Amount     string  `json:"amount"`
	Rate       *string `json:"rate,omitempty"`
	Note       *string `json:"note,omitempty"`
}

// CreateTransactionRequest is the request to record a transaction.
type CreateTransactionRequest struct {
	ClientID    *string        `json:"client_id,omitempty"`
	Type        string         `json:"type"`
	CategoryID  *int64         `json:"category_id,omitempty"`
	Description *string        `json:"description,omitempty"`
	OccurredAt  string         `json:"occurred_at"`
	Entries     []EntryRequest `json:"entries"`
}

// UpdateTransactionRequest is the request to modify a transaction.
// Absent fields are left untouched; category_id accepts an explicit null.
type UpdateTransactionRequest struct {
	ClientID    *string        `json:"client_id,omitempty"`
	Type        *string        `json:"type,omitempty"`
	CategoryID  *int64         `json:"category_id,omitempty"`
	Description *string        `json:"description,omitempty"`
	OccurredAt  *string        `json:"occurred_at,omitempty"`
	Entries     []EntryRequest `json:"entries,omitempty"`

	rawCategory bool
}

// UnmarshalJSON tracks whether category_id appeared in the payload so an
// explicit null can clear the category.
func (r *UpdateTransactionRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateTransactionRequest
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	*r = UpdateTransactionRequest(a)
	_, r.rawCategory = probe["category_id"]
	return nil
}

// CategoryPresent reports whether category_id appeared in the payload at
// all, including as null.
func (r *UpdateTransactionRequest) CategoryPresent() bool { return r.rawCategory }

// =============================================================================
// SETTINGS AND FX
// =============================================================================

// SettingsDTO represents a user's finance settings.
type SettingsDTO struct {
	BaseCurrencyID int64        `json:"base_currency_id"`
	BaseCurrency   *CurrencyDTO `json:"base_currency,omitempty"`
	UpdatedAt      string       `json:"updated_at"`
}

// UpdateSettingsRequest is the request to change the base currency.
type UpdateSettingsRequest struct {
	BaseCurrencyID int64 `json:"base_currency_id"`
}

// RatesDTO is the FX lookup response.
type RatesDTO struct {
	Origin string            `json:"origin"`
	Date   string            `json:"date,omitempty"`
	Rates  map[string]string `json:"rates"`
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Details string              `json:"details,omitempty"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// =============================================================================
// MAPPERS
// =============================================================================

func toCurrencyDTO(c *finance.Currency) *CurrencyDTO {
	if c == nil {
		return nil
	}
	return &CurrencyDTO{
		ID:       c.ID,
		Code:     c.Code,
		Name:     c.Name,
		Color:    c.Color,
		Icon:     c.Icon,
		IsActive: c.IsActive,
		System:   c.Owner.IsSystem(),
	}
}

func toCategoryDTO(c *finance.Category) *CategoryDTO {
	if c == nil {
		return nil
	}
	return &CategoryDTO{
		ID:     c.ID,
		Title:  c.Title,
		Icon:   c.Icon,
		Color:  c.Color,
		Type:   string(c.Type),
		System: c.Owner.IsSystem(),
	}
}

func toWalletDTO(w *finance.Wallet) *WalletDTO {
	if w == nil {
		return nil
	}
	return &WalletDTO{
		ID:         w.ID,
		Name:       w.Name,
		Icon:       w.Icon,
		Color:      w.Color,
		CurrencyID: w.CurrencyID,
		Currency:   toCurrencyDTO(w.Currency),
		IsActive:   w.IsActive,
		CreatedAt:  w.CreatedAt.Format(time.RFC3339),
	}
}

func toTransactionDTO(t *finance.Transaction) TransactionDTO {
	dto := TransactionDTO{
		ID:          t.ID,
		ClientID:    t.ClientID,
		Type:        string(t.Type),
		CategoryID:  t.CategoryID,
		Category:    toCategoryDTO(t.Category),
		Description: t.Description,
		OccurredAt:  t.OccurredAt.Format(time.RFC3339),
		Entries:     make([]EntryDTO, 0, len(t.Entries)),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
	for _, e := range t.Entries {
		entry := EntryDTO{
			ID:         e.ID,
			WalletID:   e.WalletID,
			Wallet:     toWalletDTO(e.Wallet),
			CurrencyID: e.CurrencyID,
			Currency:   toCurrencyDTO(e.Currency),
			Amount:     e.Amount.StringFixed(6),
			Note:       e.Note,
		}
		if e.Rate != nil {
			rate := e.Rate.StringFixed(8)
			entry.Rate = &rate
		}
		dto.Entries = append(dto.Entries, entry)
	}
	return dto
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
