/*
handlers.go - HTTP API handlers for the finance tracker

PURPOSE:
  Exposes the finance engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Users:
    POST   /api/v1/users/register           Register + onboard a user
    GET    /api/v1/users/me                 The acting user's profile

  Wallets:
    GET    /api/v1/wallets                  List the user's wallets
    POST   /api/v1/wallets                  Create wallet
    PUT    /api/v1/wallets/{id}             Update wallet
    DELETE /api/v1/wallets/{id}             Deactivate wallet
    GET    /api/v1/wallets/{id}/balance     Live balance

  Currencies / Categories:
    GET    /api/v1/currencies               The user's currency clones
    GET    /api/v1/categories               System + own categories
    POST   /api/v1/categories               Create category
    PUT    /api/v1/categories/{id}          Update own category
    DELETE /api/v1/categories/{id}          Delete own category

  Transactions:
    GET    /api/v1/transactions             List with filters
    POST   /api/v1/transactions             Record (idempotent on client_id)
    GET    /api/v1/transactions/{id}        Get with entries
    PUT    /api/v1/transactions/{id}        Partial update
    DELETE /api/v1/transactions/{id}        Delete (entries cascade)

  Settings / FX:
    GET    /api/v1/settings                 Finance settings
    PUT    /api/v1/settings                 Change base currency
    GET    /api/v1/rates                    Exchange rates lookup

ACTING USER:
  There is no auth layer. Every route under RequireUser reads the acting
  user id from the X-User-ID header and rejects requests without it.

ERROR HANDLING:
  - 400: Malformed JSON, bad ids or amounts
  - 401: Missing/invalid X-User-ID
  - 403: Referenced resource not owned by the user (no detail leaked)
  - 404: Transaction/wallet/settings not found
  - 409: moving a transaction onto a client_id another row already holds
         (create replays are NOT a conflict; they return the stored row,
         see finance.Service.Create)
  - 422: Type-invariant validation failures, with per-field messages
  - 502: Exchange rate provider unavailable

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Muhammadqodir/lifeos/finance"
	"github.com/Muhammadqodir/lifeos/fx"
	"github.com/Muhammadqodir/lifeos/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store      *sqlite.Store
	Finance    *finance.Service
	Onboarding *finance.Onboarding
	FX         *fx.Service
}

// NewHandler creates a new handler with the given store and FX provider.
func NewHandler(store *sqlite.Store, provider fx.Provider) *Handler {
	return &Handler{
		Store:      store,
		Finance:    finance.NewService(store),
		Onboarding: finance.NewOnboarding(store),
		FX:         fx.NewService(provider),
	}
}

type contextKey string

const userIDKey contextKey = "userID"

// RequireUser extracts the acting user from the X-User-ID header.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			writeError(w, http.StatusUnauthorized, "Missing X-User-ID header", nil)
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			writeError(w, http.StatusUnauthorized, "Invalid X-User-ID header", nil)
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func actingUser(r *http.Request) int64 {
	id, _ := r.Context().Value(userIDKey).(int64)
	return id
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// writeDomainError maps domain errors onto HTTP statuses. Ownership
// failures deliberately carry no detail about which reference failed.
func writeDomainError(w http.ResponseWriter, err error) {
	var verrs finance.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  "Validation failed",
			Fields: verrs.ByField(),
		})
	case errors.Is(err, finance.ErrNotOwned):
		writeError(w, http.StatusForbidden, "Referenced resource does not belong to the user", nil)
	case errors.Is(err, finance.ErrNotFound), errors.Is(err, finance.ErrSettingsMissing):
		writeError(w, http.StatusNotFound, "Not found", nil)
	case errors.Is(err, finance.ErrDuplicateClientID):
		writeError(w, http.StatusConflict, "Client id already in use", nil)
	default:
		writeError(w, http.StatusInternalServerError, "Internal error", err)
	}
}

// =============================================================================
// USERS
// =============================================================================

// RegisterUser creates a user and runs onboarding (currency clones +
// finance settings) in one transaction.
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, "Name and email are required", nil)
		return
	}

	user, err := h.Onboarding.Register(r.Context(), req.Name, req.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to register user", err)
		return
	}

	writeJSON(w, http.StatusCreated, UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	})
}

// CurrentUser returns the profile of the acting user.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.Store.GetUser(r.Context(), actingUser(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load user", err)
		return
	}
	if user == nil {
		writeDomainError(w, finance.ErrNotFound)
		return
	}

	writeJSON(w, http.StatusOK, UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	})
}

// =============================================================================
// WALLETS
// =============================================================================

func (h *Handler) ListWallets(w http.ResponseWriter, r *http.Request) {
	wallets, err := h.Store.ListWallets(r.Context(), actingUser(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list wallets", err)
		return
	}

	dtos := make([]WalletDTO, 0, len(wallets))
	for i := range wallets {
		dtos = append(dtos, *toWalletDTO(&wallets[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	userID := actingUser(r)

	var req WalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Wallet name is required", nil)
		return
	}

	// The wallet's currency must be one of the user's own clones.
	currency, err := h.Store.GetCurrency(r.Context(), req.CurrencyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to resolve currency", err)
		return
	}
	if currency == nil || !ownedByUser(currency.Owner, userID) {
		writeDomainError(w, finance.ErrNotOwned)
		return
	}

	wallet := &finance.Wallet{
		UserID:     userID,
		CurrencyID: req.CurrencyID,
		Name:       req.Name,
		Icon:       req.Icon,
		Color:      req.Color,
		IsActive:   true,
	}
	if err := h.Store.InsertWallet(r.Context(), wallet); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create wallet", err)
		return
	}
	wallet.Currency = currency

	writeJSON(w, http.StatusCreated, toWalletDTO(wallet))
}

func (h *Handler) UpdateWallet(w http.ResponseWriter, r *http.Request) {
	userID := actingUser(r)
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid wallet id", err)
		return
	}

	var req WalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	existing, err := h.Store.GetWallet(r.Context(), userID, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get wallet", err)
		return
	}
	if existing == nil {
		writeDomainError(w, finance.ErrNotFound)
		return
	}

	currency, err := h.Store.GetCurrency(r.Context(), req.CurrencyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to resolve currency", err)
		return
	}
	if currency == nil || !ownedByUser(currency.Owner, userID) {
		writeDomainError(w, finance.ErrNotOwned)
		return
	}

	existing.Name = req.Name
	existing.Icon = req.Icon
	existing.Color = req.Color
	existing.CurrencyID = req.CurrencyID
	existing.Currency = currency

	if _, err := h.Store.UpdateWallet(r.Context(), existing); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update wallet", err)
		return
	}
	writeJSON(w, http.StatusOK, toWalletDTO(existing))
}

// DeleteWallet deactivates a wallet. History referencing it stays intact.
func (h *Handler) DeleteWallet(w http.ResponseWriter, r *http.Request) {
	userID := actingUser(r)
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid wallet id", err)
		return
	}

	ok, err := h.Store.DeactivateWallet(r.Context(), userID, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to deactivate wallet", err)
		return
	}
	if !ok {
		writeDomainError(w, finance.ErrNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetBalance computes the wallet's live balance from its entries.
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := actingUser(r)
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid wallet id", err)
		return
	}

	wallet, err := h.Store.GetWallet(r.Context(), userID, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get wallet", err)
		return
	}
	if wallet == nil {
		writeDomainError(w, finance.ErrNotFound)
		return
	}

	balance, err := h.Finance.WalletBalance(r.Context(), userID, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	code := ""
	if wallet.Currency != nil {
		code = wallet.Currency.Code
	}
	writeJSON(w, http.StatusOK, BalanceDTO{
		WalletID: id,
		Balance:  finance.FormatBalance(balance),
		Currency: code,
	})
}

// =============================================================================
// CURRENCIES
// =============================================================================

func (h *Handler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	currencies, err := h.Store.ListUserCurrencies(r.Context(), actingUser(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list currencies", err)
		return
	}

	dtos := make([]CurrencyDTO, 0, len(currencies))
	for i := range currencies {
		dtos = append(dtos, *toCurrencyDTO(&currencies[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// CATEGORIES
// =============================================================================

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Store.ListCategoriesFor(r.Context(), actingUser(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list categories", err)
		return
	}

	dtos := make([]CategoryDTO, 0, len(categories))
	for i := range categories {
		dtos = append(dtos, *toCategoryDTO(&categories[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID := actingUser(r)

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	catType := finance.CategoryType(req.Type)
	if catType != finance.CategoryIncome && catType != finance.CategoryExpense {
		writeError(w, http.StatusBadRequest, "Category type must be income or expense", nil)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "Category title is required", nil)
		return
	}

	category := &finance.Category{
		Owner: finance.OwnedBy(userID),
		Title: req.Title,
		Icon:  req.Icon,
		Color: req.Color,
		Type:  catType,
	}
	if err := h.Store.InsertCategory(r.Context(), category); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create category", err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryDTO(category))
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID := actingUser(r)
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid category id", err)
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	catType := finance.CategoryType(req.Type)
	if catType != finance.CategoryIncome && catType != finance.CategoryExpense {
		writeError(w, http.StatusBadRequest, "Category type must be income or expense", nil)
		return
	}

	category := &finance.Category{
		ID:    id,
		Owner: finance.OwnedBy(userID),
		Title: req.Title,
		Icon:  req.Icon,
		Color: req.Color,
		Type:  catType,
	}
	ok, err := h.Store.UpdateCategory(r.Context(), userID, category)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update category", err)
		return
	}
	if !ok {
		// Either absent or a system category; both read as not found.
		writeDomainError(w, finance.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryDTO(category))
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID := actingUser(r)
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid category id", err)
		return
	}

	ok, err := h.Store.DeleteCategory(r.Context(), userID, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete category", err)
		return
	}
	if !ok {
		writeDomainError(w, finance.ErrNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// TRANSACTIONS
// =============================================================================

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID := actingUser(r)

	filter, err := parseListFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid filter", err)
		return
	}

	transactions, err := h.Finance.List(r.Context(), userID, filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list transactions", err)
		return
	}

	dtos := make([]TransactionDTO, 0, len(transactions))
	for _, tx := range transactions {
		dtos = append(dtos, toTransactionDTO(tx))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func parseListFilter(r *http.Request) (finance.ListTransactionsFilter, error) {
	var filter finance.ListTransactionsFilter
	q := r.URL.Query()

	if v := q.Get("type"); v != "" {
		t := finance.TransactionType(v)
		if !t.Valid() {
			return filter, errors.New("unknown transaction type: " + v)
		}
		filter.Type = &t
	}
	for param, dst := range map[string]**int64{
		"wallet_id":   &filter.WalletID,
		"category_id": &filter.CategoryID,
	} {
		if v := q.Get(param); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return filter, err
			}
			*dst = &id
		}
	}
	for param, dst := range map[string]**time.Time{
		"from": &filter.DateFrom,
		"to":   &filter.DateTo,
	} {
		if v := q.Get(param); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				// Allow plain dates too.
				t, err = time.Parse("2006-01-02", v)
				if err != nil {
					return filter, err
				}
			}
			*dst = &t
		}
	}
	filter.Search = q.Get("search")
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter, err
		}
		filter.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter, err
		}
		filter.Offset = n
	}
	return filter, nil
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID := actingUser(r)

	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	occurredAt, err := parseTimestamp(req.OccurredAt)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid occurred_at (use RFC 3339)", err)
		return
	}
	entries, err := parseEntries(req.Entries)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid entry amount or rate", err)
		return
	}

	tx, err := h.Finance.Create(r.Context(), userID, finance.CreateTransactionInput{
		ClientID:    req.ClientID,
		Type:        finance.TransactionType(req.Type),
		CategoryID:  req.CategoryID,
		Description: req.Description,
		OccurredAt:  occurredAt,
		Entries:     entries,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTransactionDTO(tx))
}

func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID := actingUser(r)
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid transaction id", err)
		return
	}

	tx, err := h.Finance.Get(r.Context(), userID, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionDTO(tx))
}

func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID := actingUser(r)
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid transaction id", err)
		return
	}

	var req UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	input := finance.UpdateTransactionInput{
		ClientID:    req.ClientID,
		CategoryID:  req.CategoryID,
		Description: req.Description,
	}
	if req.Type != nil {
		t := finance.TransactionType(*req.Type)
		input.Type = &t
	}
	if req.CategoryPresent() && req.CategoryID == nil {
		input.ClearCategory = true
	}
	if req.OccurredAt != nil {
		occurredAt, err := parseTimestamp(*req.OccurredAt)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid occurred_at (use RFC 3339)", err)
			return
		}
		input.OccurredAt = &occurredAt
	}
	if req.Entries != nil {
		entries, err := parseEntries(req.Entries)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid entry amount or rate", err)
			return
		}
		input.Entries = entries
	}

	tx, err := h.Finance.Update(r.Context(), userID, id, input)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionDTO(tx))
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID := actingUser(r)
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid transaction id", err)
		return
	}

	if err := h.Finance.Delete(r.Context(), userID, id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// SETTINGS
// =============================================================================

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Finance.GetSettings(r.Context(), actingUser(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SettingsDTO{
		BaseCurrencyID: settings.BaseCurrencyID,
		BaseCurrency:   toCurrencyDTO(settings.BaseCurrency),
		UpdatedAt:      settings.UpdatedAt.Format(time.RFC3339),
	})
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	settings, err := h.Finance.UpdateBaseCurrency(r.Context(), actingUser(r), req.BaseCurrencyID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SettingsDTO{
		BaseCurrencyID: settings.BaseCurrencyID,
		BaseCurrency:   toCurrencyDTO(settings.BaseCurrency),
		UpdatedAt:      settings.UpdatedAt.Format(time.RFC3339),
	})
}

// =============================================================================
// EXCHANGE RATES
// =============================================================================

// GetRates looks up live rates: GET /api/v1/rates?origin=USD&targets=EUR,UZS
func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	origin := r.URL.Query().Get("origin")
	var targets []string
	if raw := r.URL.Query().Get("targets"); raw != "" {
		targets = strings.Split(raw, ",")
	}
	if origin == "" || len(targets) == 0 {
		writeError(w, http.StatusBadRequest, "origin and targets are required", nil)
		return
	}

	quote, err := h.FX.Lookup(r.Context(), origin, targets)
	if err != nil {
		var missing *fx.MissingTargetsError
		switch {
		case errors.As(err, &missing):
			writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
				Error:  "Some target currencies are not available",
				Fields: map[string][]string{"targets": {missing.Error()}},
			})
		case errors.Is(err, fx.ErrInvalidCode):
			writeError(w, http.StatusBadRequest, "Invalid currency code", err)
		case errors.Is(err, fx.ErrBaseUnknown):
			writeError(w, http.StatusUnprocessableEntity, "Origin currency not supported", err)
		default:
			writeError(w, http.StatusBadGateway, "Exchange rate provider unavailable", err)
		}
		return
	}

	rates := make(map[string]string, len(quote.Rates))
	for code, rate := range quote.Rates {
		rates[code] = rate.String()
	}
	writeJSON(w, http.StatusOK, RatesDTO{Origin: quote.Base, Date: quote.Date, Rates: rates})
}

// =============================================================================
// HELPERS
// =============================================================================

func parseTimestamp(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func parseEntries(reqs []EntryRequest) ([]finance.EntryInput, error) {
	entries := make([]finance.EntryInput, 0, len(reqs))
	for _, e := range reqs {
		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			return nil, err
		}
		entry := finance.EntryInput{
			WalletID:   e.WalletID,
			CurrencyID: e.CurrencyID,
			Amount:     amount,
			Note:       e.Note,
		}
		if e.Rate != nil {
			rate, err := decimal.NewFromString(*e.Rate)
			if err != nil {
				return nil, err
			}
			entry.Rate = &rate
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func ownedByUser(o finance.Ownership, userID int64) bool {
	owner, ok := o.UserID()
	return ok && owner == userID
}
