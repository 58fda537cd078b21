/*
resources.go - Users, currencies, categories, wallets, finance settings

The simple persistence around the ledger: owner-scoped CRUD consumed by
the HTTP layer plus the finance.SetupStore surface used by onboarding.
Wallet "deletion" deactivates (is_active = 0); ledger history keeps
referencing the row.
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Muhammadqodir/lifeos/finance"
)

// =============================================================================
// USERS
// =============================================================================

func (q queries) InsertUser(ctx context.Context, u *finance.User) error {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		"INSERT INTO users (name, email, created_at) VALUES (?, ?, ?)",
		u.Name, u.Email, formatTime(now))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = id
	u.CreatedAt = now
	return nil
}

func (q queries) GetUser(ctx context.Context, id int64) (*finance.User, error) {
	var (
		u         finance.User
		createdAt string
	)
	err := q.db.QueryRowContext(ctx,
		"SELECT id, name, email, created_at FROM users WHERE id = ?", id,
	).Scan(&u.ID, &u.Name, &u.Email, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt = parseTime(createdAt)
	return &u, nil
}

// =============================================================================
// CURRENCIES
// =============================================================================

const currencyColumns = `id, user_id, code, name, color, icon, is_active, created_at`

func (q queries) InsertCurrency(ctx context.Context, c *finance.Currency) error {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx, `
		INSERT INTO currencies (user_id, code, name, color, icon, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ownerValue(c.Owner), c.Code, c.Name, c.Color, c.Icon, boolInt(c.IsActive), formatTime(now))
	if err != nil {
		return fmt.Errorf("failed to insert currency: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id
	c.CreatedAt = now
	return nil
}

// ListSystemCurrencies returns the shared catalog in id order, so the
// first row is the onboarding default.
func (q queries) ListSystemCurrencies(ctx context.Context) ([]finance.Currency, error) {
	return q.listCurrencies(ctx,
		"SELECT "+currencyColumns+" FROM currencies WHERE user_id IS NULL ORDER BY id ASC")
}

// ListUserCurrencies returns the user's own currency clones by code.
func (q queries) ListUserCurrencies(ctx context.Context, userID int64) ([]finance.Currency, error) {
	return q.listCurrencies(ctx,
		"SELECT "+currencyColumns+" FROM currencies WHERE user_id = ? ORDER BY code ASC", userID)
}

func (q queries) listCurrencies(ctx context.Context, query string, args ...any) ([]finance.Currency, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var currencies []finance.Currency
	for rows.Next() {
		c, err := scanCurrency(rows)
		if err != nil {
			return nil, err
		}
		currencies = append(currencies, *c)
	}
	return currencies, rows.Err()
}

// =============================================================================
// CATEGORIES
// =============================================================================

const categoryColumns = `id, user_id, title, icon, color, type, created_at`

func (q queries) InsertCategory(ctx context.Context, c *finance.Category) error {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx, `
		INSERT INTO categories (user_id, title, icon, color, type, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ownerValue(c.Owner), c.Title, c.Icon, c.Color, string(c.Type), formatTime(now))
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id
	c.CreatedAt = now
	return nil
}

// ListCategoriesFor returns system categories plus the user's own.
func (q queries) ListCategoriesFor(ctx context.Context, userID int64) ([]finance.Category, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE user_id IS NULL OR user_id = ? ORDER BY type ASC, title ASC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []finance.Category
	for rows.Next() {
		var (
			c         finance.Category
			owner     sql.NullInt64
			catType   string
			createdAt string
		)
		if err := rows.Scan(&c.ID, &owner, &c.Title, &c.Icon, &c.Color, &catType, &createdAt); err != nil {
			return nil, err
		}
		c.Owner = ownership(owner)
		c.Type = finance.CategoryType(catType)
		c.CreatedAt = parseTime(createdAt)
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// UpdateCategory overwrites a user-owned category. System categories are
// not updatable through this path.
func (q queries) UpdateCategory(ctx context.Context, userID int64, c *finance.Category) (bool, error) {
	res, err := q.db.ExecContext(ctx, `
		UPDATE categories SET title = ?, icon = ?, color = ?, type = ?
		WHERE id = ? AND user_id = ?`,
		c.Title, c.Icon, c.Color, string(c.Type), c.ID, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// DeleteCategory removes a user-owned category.
func (q queries) DeleteCategory(ctx context.Context, userID, id int64) (bool, error) {
	res, err := q.db.ExecContext(ctx,
		"DELETE FROM categories WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// =============================================================================
// WALLETS
// =============================================================================

func (q queries) InsertWallet(ctx context.Context, w *finance.Wallet) error {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx, `
		INSERT INTO wallets (user_id, currency_id, name, icon, color, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		w.UserID, w.CurrencyID, w.Name, w.Icon, w.Color, boolInt(w.IsActive), formatTime(now))
	if err != nil {
		return fmt.Errorf("failed to insert wallet: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	w.ID = id
	w.CreatedAt = now
	return nil
}

func (q queries) ListWallets(ctx context.Context, userID int64) ([]finance.Wallet, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT w.id, w.user_id, w.currency_id, w.name, w.icon, w.color, w.is_active, w.created_at,
		       c.user_id, c.code, c.name, c.color, c.icon, c.is_active, c.created_at
		FROM wallets w
		JOIN currencies c ON c.id = w.currency_id
		WHERE w.user_id = ?
		ORDER BY w.id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wallets []finance.Wallet
	for rows.Next() {
		var (
			w        finance.Wallet
			wActive  int
			wCreated string
			cUserID  sql.NullInt64
			c        finance.Currency
			cActive  int
			cCreated string
		)
		err := rows.Scan(
			&w.ID, &w.UserID, &w.CurrencyID, &w.Name, &w.Icon, &w.Color, &wActive, &wCreated,
			&cUserID, &c.Code, &c.Name, &c.Color, &c.Icon, &cActive, &cCreated,
		)
		if err != nil {
			return nil, err
		}
		w.IsActive = wActive != 0
		w.CreatedAt = parseTime(wCreated)
		c.ID = w.CurrencyID
		c.Owner = ownership(cUserID)
		c.IsActive = cActive != 0
		c.CreatedAt = parseTime(cCreated)
		w.Currency = &c
		wallets = append(wallets, w)
	}
	return wallets, rows.Err()
}

func (q queries) UpdateWallet(ctx context.Context, w *finance.Wallet) (bool, error) {
	res, err := q.db.ExecContext(ctx, `
		UPDATE wallets SET currency_id = ?, name = ?, icon = ?, color = ?, is_active = ?
		WHERE id = ? AND user_id = ?`,
		w.CurrencyID, w.Name, w.Icon, w.Color, boolInt(w.IsActive), w.ID, w.UserID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// DeactivateWallet is wallet "deletion": history stays, the wallet stops
// being offered for new entries.
func (q queries) DeactivateWallet(ctx context.Context, userID, id int64) (bool, error) {
	res, err := q.db.ExecContext(ctx,
		"UPDATE wallets SET is_active = 0 WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// =============================================================================
// FINANCE SETTINGS
// =============================================================================

func (q queries) GetFinanceSettings(ctx context.Context, userID int64) (*finance.FinanceSettings, error) {
	var (
		s         finance.FinanceSettings
		createdAt string
		updatedAt string
	)
	err := q.db.QueryRowContext(ctx,
		"SELECT user_id, base_currency_id, created_at, updated_at FROM user_finance_settings WHERE user_id = ?",
		userID,
	).Scan(&s.UserID, &s.BaseCurrencyID, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.CreatedAt = parseTime(createdAt)
	s.UpdatedAt = parseTime(updatedAt)

	currency, err := q.GetCurrency(ctx, s.BaseCurrencyID)
	if err != nil {
		return nil, err
	}
	s.BaseCurrency = currency
	return &s, nil
}

func (q queries) InsertFinanceSettings(ctx context.Context, s *finance.FinanceSettings) error {
	now := time.Now().UTC()
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO user_finance_settings (user_id, base_currency_id, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		s.UserID, s.BaseCurrencyID, formatTime(now), formatTime(now))
	if err != nil {
		return fmt.Errorf("failed to insert finance settings: %w", err)
	}
	s.CreatedAt = now
	s.UpdatedAt = now
	return nil
}

func (q queries) UpdateFinanceSettings(ctx context.Context, s *finance.FinanceSettings) error {
	now := time.Now().UTC()
	_, err := q.db.ExecContext(ctx, `
		UPDATE user_finance_settings SET base_currency_id = ?, updated_at = ? WHERE user_id = ?`,
		s.BaseCurrencyID, formatTime(now), s.UserID)
	if err != nil {
		return fmt.Errorf("failed to update finance settings: %w", err)
	}
	s.UpdatedAt = now
	return nil
}
