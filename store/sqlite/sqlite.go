/*
Package sqlite provides the SQLite-backed implementation of the finance
storage interfaces.

INTERFACES IMPLEMENTED:
  finance.Store:      Ledger write path (transactions, entries, balances)
  finance.SetupStore: Onboarding and finance settings

KEY TABLES:
  users:                 Owning principals
  currencies:            System catalog (user_id NULL) + per-user clones
  categories:            System + user-owned income/expense categories
  wallets:               One currency per wallet; balance never stored
  transactions:          One user action; UNIQUE(user_id, client_id)
  transaction_entries:   1-2 signed movements per transaction, cascade on
                         delete, replace-only

IDEMPOTENCY:
  idx_transactions_user_client enforces at-most-one row per (user, client
  key). InsertTransaction surfaces a violation as
  finance.ErrDuplicateClientID; the service rereads the winner. The
  constraint, not a pre-check, decides races.

AMOUNT STORAGE:
  Amounts and rates are stored as fixed-point TEXT (6 and 8 fractional
  digits) and summed in Go with decimal.Decimal. SQLite's SUM() would
  fall back to floats, so balances are aggregated over loaded rows.

WAL MODE:
  Opened with WAL and foreign keys on. A single connection is used so
  SQLite's single-writer model never surfaces SQLITE_BUSY mid-request.

USAGE:
  store, err := sqlite.New("./data/lifeos.db")
  defer store.Close()
  svc := finance.NewService(store)
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/Muhammadqodir/lifeos/finance"
)

// Store implements finance.SetupStore using SQLite.
type Store struct {
	db *sql.DB
	queries
}

// New opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for an in-memory database.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection: SQLite is single-writer and an in-memory database
	// is per-connection anyway.
	db.SetMaxOpenConns(1)

	store := &Store{db: db, queries: queries{db: db}}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	);

	-- System catalog rows have user_id NULL; per-user clones carry the owner.
	CREATE TABLE IF NOT EXISTS currencies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
		code TEXT NOT NULL,
		name TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '',
		icon TEXT NOT NULL DEFAULT '',
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_currencies_user ON currencies(user_id);

	CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		icon TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL CHECK (type IN ('income', 'expense')),
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_categories_user ON categories(user_id);

	CREATE TABLE IF NOT EXISTS wallets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		currency_id INTEGER NOT NULL REFERENCES currencies(id),
		name TEXT NOT NULL,
		icon TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL DEFAULT '',
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_wallets_user ON wallets(user_id);

	CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		client_id TEXT,
		type TEXT NOT NULL CHECK (type IN ('income', 'expense', 'transfer', 'exchange')),
		category_id INTEGER REFERENCES categories(id),
		description TEXT,
		occurred_at TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	-- CRITICAL: at most one transaction per (user, client key). Retried
	-- client submissions and racing creates both land on this index.
	CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_user_client
		ON transactions(user_id, client_id) WHERE client_id IS NOT NULL;
	CREATE INDEX IF NOT EXISTS idx_transactions_user_occurred
		ON transactions(user_id, occurred_at DESC);
	CREATE INDEX IF NOT EXISTS idx_transactions_category
		ON transactions(category_id) WHERE category_id IS NOT NULL;

	CREATE TABLE IF NOT EXISTS transaction_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		transaction_id INTEGER NOT NULL REFERENCES transactions(id) ON DELETE CASCADE,
		wallet_id INTEGER NOT NULL REFERENCES wallets(id) ON DELETE CASCADE,
		amount TEXT NOT NULL,
		currency_id INTEGER NOT NULL REFERENCES currencies(id),
		rate TEXT,
		note TEXT,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_entries_transaction ON transaction_entries(transaction_id);
	CREATE INDEX IF NOT EXISTS idx_entries_wallet ON transaction_entries(wallet_id);

	CREATE TABLE IF NOT EXISTS user_finance_settings (
		user_id INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		base_currency_id INTEGER NOT NULL REFERENCES currencies(id),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// TRANSACTION SCOPE
// =============================================================================

// WithTx executes fn within a database transaction. The finance.Store
// handed to fn routes every query through that transaction; an error
// rolls everything back.
func (s *Store) WithTx(ctx context.Context, fn func(finance.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&txStore{queries{db: tx}}); err != nil {
		return err
	}
	return tx.Commit()
}

// txStore is the transaction-scoped store. Nested WithTx joins the open
// transaction instead of starting a new one.
type txStore struct {
	queries
}

func (t *txStore) WithTx(_ context.Context, fn func(finance.Store) error) error {
	return fn(t)
}

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// queries holds every operation; it runs against the root connection or a
// transaction depending on db.
type queries struct {
	db dbtx
}

// =============================================================================
// TRANSACTIONS
// =============================================================================

// InsertTransaction persists a new transaction row. A (user, client_id)
// uniqueness violation is reported as finance.ErrDuplicateClientID.
func (q queries) InsertTransaction(ctx context.Context, tx *finance.Transaction) error {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx, `
		INSERT INTO transactions (user_id, client_id, type, category_id, description, occurred_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.UserID,
		nullString(tx.ClientID),
		string(tx.Type),
		nullInt64(tx.CategoryID),
		nullString(tx.Description),
		formatTime(tx.OccurredAt),
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		if isClientIDConflict(err) {
			return finance.ErrDuplicateClientID
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	tx.ID = id
	tx.CreatedAt = now
	tx.UpdatedAt = now
	return nil
}

// UpdateTransaction overwrites the scalar columns of an owned row.
func (q queries) UpdateTransaction(ctx context.Context, tx *finance.Transaction) error {
	now := time.Now().UTC()
	_, err := q.db.ExecContext(ctx, `
		UPDATE transactions
		SET client_id = ?, type = ?, category_id = ?, description = ?, occurred_at = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		nullString(tx.ClientID),
		string(tx.Type),
		nullInt64(tx.CategoryID),
		nullString(tx.Description),
		formatTime(tx.OccurredAt),
		formatTime(now),
		tx.ID,
		tx.UserID,
	)
	if err != nil {
		if isClientIDConflict(err) {
			return finance.ErrDuplicateClientID
		}
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	tx.UpdatedAt = now
	return nil
}

// DeleteTransaction hard-deletes an owned transaction; entries cascade.
func (q queries) DeleteTransaction(ctx context.Context, userID, id int64) (bool, error) {
	res, err := q.db.ExecContext(ctx,
		"DELETE FROM transactions WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

const transactionColumns = `id, user_id, client_id, type, category_id, description, occurred_at, created_at, updated_at`

// GetTransaction returns an owned transaction fully materialized, or
// (nil, nil) when no row matches.
func (q queries) GetTransaction(ctx context.Context, userID, id int64) (*finance.Transaction, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE id = ? AND user_id = ?", id, userID)
	return q.materializeRow(ctx, row)
}

// GetTransactionByClientID returns the row holding an idempotency key.
func (q queries) GetTransactionByClientID(ctx context.Context, userID int64, clientID string) (*finance.Transaction, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE user_id = ? AND client_id = ?", userID, clientID)
	return q.materializeRow(ctx, row)
}

// ListTransactions returns a user's transactions, newest occurred_at
// first, narrowed by the filter.
func (q queries) ListTransactions(ctx context.Context, userID int64, f finance.ListTransactionsFilter) ([]*finance.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE user_id = ?"
	args := []any{userID}

	if f.Type != nil {
		query += " AND type = ?"
		args = append(args, string(*f.Type))
	}
	if f.CategoryID != nil {
		query += " AND category_id = ?"
		args = append(args, *f.CategoryID)
	}
	if f.WalletID != nil {
		query += " AND id IN (SELECT transaction_id FROM transaction_entries WHERE wallet_id = ?)"
		args = append(args, *f.WalletID)
	}
	if f.DateFrom != nil {
		query += " AND occurred_at >= ?"
		args = append(args, formatTime(*f.DateFrom))
	}
	if f.DateTo != nil {
		query += " AND occurred_at <= ?"
		args = append(args, formatTime(*f.DateTo))
	}
	if f.Search != "" {
		query += " AND description LIKE ?"
		args = append(args, "%"+f.Search+"%")
	}

	query += " ORDER BY occurred_at DESC, id DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
		if f.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, f.Offset)
		}
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txs []*finance.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, tx := range txs {
		if err := q.loadRelations(ctx, tx); err != nil {
			return nil, err
		}
	}
	return txs, nil
}

func (q queries) materializeRow(ctx context.Context, row *sql.Row) (*finance.Transaction, error) {
	tx, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := q.loadRelations(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(r rowScanner) (*finance.Transaction, error) {
	var (
		tx         finance.Transaction
		clientID   sql.NullString
		txType     string
		categoryID sql.NullInt64
		desc       sql.NullString
		occurredAt string
		createdAt  string
		updatedAt  string
	)
	err := r.Scan(&tx.ID, &tx.UserID, &clientID, &txType, &categoryID, &desc, &occurredAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	tx.Type = finance.TransactionType(txType)
	if clientID.Valid {
		tx.ClientID = &clientID.String
	}
	if categoryID.Valid {
		tx.CategoryID = &categoryID.Int64
	}
	if desc.Valid {
		tx.Description = &desc.String
	}
	tx.OccurredAt = parseTime(occurredAt)
	tx.CreatedAt = parseTime(createdAt)
	tx.UpdatedAt = parseTime(updatedAt)
	return &tx, nil
}

// loadRelations attaches entries (with wallet and currency) and the
// category for response shaping.
func (q queries) loadRelations(ctx context.Context, tx *finance.Transaction) error {
	entries, err := q.loadEntries(ctx, tx.ID)
	if err != nil {
		return err
	}
	tx.Entries = entries

	if tx.CategoryID != nil {
		category, err := q.GetCategory(ctx, *tx.CategoryID)
		if err != nil {
			return err
		}
		tx.Category = category
	}
	return nil
}

func (q queries) loadEntries(ctx context.Context, transactionID int64) ([]finance.Entry, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT e.id, e.transaction_id, e.wallet_id, e.amount, e.currency_id, e.rate, e.note, e.created_at,
		       w.user_id, w.currency_id, w.name, w.icon, w.color, w.is_active, w.created_at,
		       c.user_id, c.code, c.name, c.color, c.icon, c.is_active, c.created_at
		FROM transaction_entries e
		JOIN wallets w ON w.id = e.wallet_id
		JOIN currencies c ON c.id = e.currency_id
		WHERE e.transaction_id = ?
		ORDER BY e.id ASC`, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	defer rows.Close()

	var entries []finance.Entry
	for rows.Next() {
		var (
			e        finance.Entry
			amount   string
			rate     sql.NullString
			note     sql.NullString
			eCreated string
			w        finance.Wallet
			wActive  int
			wCreated string
			cUserID  sql.NullInt64
			c        finance.Currency
			cActive  int
			cCreated string
		)
		err := rows.Scan(
			&e.ID, &e.TransactionID, &e.WalletID, &amount, &e.CurrencyID, &rate, &note, &eCreated,
			&w.UserID, &w.CurrencyID, &w.Name, &w.Icon, &w.Color, &wActive, &wCreated,
			&cUserID, &c.Code, &c.Name, &c.Color, &c.Icon, &cActive, &cCreated,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}

		e.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount %q: %w", amount, err)
		}
		if rate.Valid {
			r, err := decimal.NewFromString(rate.String)
			if err != nil {
				return nil, fmt.Errorf("corrupt rate %q: %w", rate.String, err)
			}
			e.Rate = &r
		}
		if note.Valid {
			e.Note = &note.String
		}
		e.CreatedAt = parseTime(eCreated)

		w.ID = e.WalletID
		w.IsActive = wActive != 0
		w.CreatedAt = parseTime(wCreated)
		e.Wallet = &w

		c.ID = e.CurrencyID
		c.Owner = ownership(cUserID)
		c.IsActive = cActive != 0
		c.CreatedAt = parseTime(cCreated)
		e.Currency = &c

		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// =============================================================================
// ENTRIES
// =============================================================================

// InsertEntries appends entries to a transaction. Amounts are stored as
// fixed-point text: 6 fractional digits, rates 8.
func (q queries) InsertEntries(ctx context.Context, transactionID int64, entries []finance.EntryInput) error {
	for _, e := range entries {
		var rate any
		if e.Rate != nil {
			rate = e.Rate.StringFixed(8)
		}
		_, err := q.db.ExecContext(ctx, `
			INSERT INTO transaction_entries (transaction_id, wallet_id, amount, currency_id, rate, note, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			transactionID,
			e.WalletID,
			e.Amount.StringFixed(6),
			e.CurrencyID,
			rate,
			nullString(e.Note),
			formatTime(time.Now().UTC()),
		)
		if err != nil {
			return fmt.Errorf("failed to insert entry: %w", err)
		}
	}
	return nil
}

// DeleteEntries removes every entry of a transaction.
func (q queries) DeleteEntries(ctx context.Context, transactionID int64) error {
	_, err := q.db.ExecContext(ctx,
		"DELETE FROM transaction_entries WHERE transaction_id = ?", transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete entries: %w", err)
	}
	return nil
}

// =============================================================================
// OWNERSHIP LOOKUPS
// =============================================================================

// CountWalletsOwnedBy counts how many of the given ids are wallets of the
// user. The caller compares against the distinct id count; the query never
// says which id was foreign.
func (q queries) CountWalletsOwnedBy(ctx context.Context, userID int64, walletIDs []int64) (int, error) {
	if len(walletIDs) == 0 {
		return 0, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(walletIDs)), ",")
	args := make([]any, 0, len(walletIDs)+1)
	args = append(args, userID)
	for _, id := range walletIDs {
		args = append(args, id)
	}

	var count int
	err := q.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM wallets WHERE user_id = ? AND id IN ("+placeholders+")",
		args...,
	).Scan(&count)
	return count, err
}

func (q queries) GetCategory(ctx context.Context, id int64) (*finance.Category, error) {
	var (
		c         finance.Category
		userID    sql.NullInt64
		catType   string
		createdAt string
	)
	err := q.db.QueryRowContext(ctx,
		"SELECT id, user_id, title, icon, color, type, created_at FROM categories WHERE id = ?", id,
	).Scan(&c.ID, &userID, &c.Title, &c.Icon, &c.Color, &catType, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Owner = ownership(userID)
	c.Type = finance.CategoryType(catType)
	c.CreatedAt = parseTime(createdAt)
	return &c, nil
}

func (q queries) GetCurrency(ctx context.Context, id int64) (*finance.Currency, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT id, user_id, code, name, color, icon, is_active, created_at FROM currencies WHERE id = ?", id)
	c, err := scanCurrency(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (q queries) GetWallet(ctx context.Context, userID, id int64) (*finance.Wallet, error) {
	var (
		w         finance.Wallet
		active    int
		createdAt string
	)
	err := q.db.QueryRowContext(ctx,
		"SELECT id, user_id, currency_id, name, icon, color, is_active, created_at FROM wallets WHERE id = ? AND user_id = ?",
		id, userID,
	).Scan(&w.ID, &w.UserID, &w.CurrencyID, &w.Name, &w.Icon, &w.Color, &active, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	w.IsActive = active != 0
	w.CreatedAt = parseTime(createdAt)

	currency, err := q.GetCurrency(ctx, w.CurrencyID)
	if err != nil {
		return nil, err
	}
	w.Currency = currency
	return &w, nil
}

// =============================================================================
// BALANCE
// =============================================================================

// WalletBalance sums the signed entry amounts of a wallet in Go with
// exact decimals. SQLite SUM() over the text column would degrade to
// floating point.
func (q queries) WalletBalance(ctx context.Context, walletID int64) (decimal.Decimal, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT amount FROM transaction_entries WHERE wallet_id = ?", walletID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to query balance: %w", err)
	}
	defer rows.Close()

	balance := decimal.Zero
	for rows.Next() {
		var amount string
		if err := rows.Scan(&amount); err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("corrupt amount %q: %w", amount, err)
		}
		balance = balance.Add(d)
	}
	return balance, rows.Err()
}

// =============================================================================
// HELPERS
// =============================================================================

func scanCurrency(r rowScanner) (*finance.Currency, error) {
	var (
		c         finance.Currency
		userID    sql.NullInt64
		active    int
		createdAt string
	)
	err := r.Scan(&c.ID, &userID, &c.Code, &c.Name, &c.Color, &c.Icon, &active, &createdAt)
	if err != nil {
		return nil, err
	}
	c.Owner = ownership(userID)
	c.IsActive = active != 0
	c.CreatedAt = parseTime(createdAt)
	return &c, nil
}

func ownership(userID sql.NullInt64) finance.Ownership {
	if userID.Valid {
		return finance.OwnedBy(userID.Int64)
	}
	return finance.SystemOwned()
}

func ownerValue(o finance.Ownership) any {
	if id, ok := o.UserID(); ok {
		return id
	}
	return nil
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullInt64(n *int64) any {
	if n == nil {
		return nil
	}
	return *n
}

// formatTime stores whole-second RFC 3339 in UTC. Fixed width keeps
// lexicographic comparison equal to chronological, which the occurred_at
// range filters rely on.
func formatTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// isClientIDConflict recognizes the (user_id, client_id) unique index
// firing, either by index name or by the column-list form sqlite uses for
// table constraints.
func isClientIDConflict(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return false
	}
	return strings.Contains(msg, "idx_transactions_user_client") ||
		strings.Contains(msg, "transactions.user_id, transactions.client_id")
}
