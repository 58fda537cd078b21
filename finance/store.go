/*
store.go - Persistence port for the ledger core

Defines the interface between the write path and the database. The
concrete implementation lives in store/sqlite; tests may substitute any
implementation that honors the contracts below.

ATOMICITY CONTRACT:
  WithTx runs fn inside one atomic unit of work. Everything the service
  writes for a single create/update/delete happens through the Store
  handed to fn; an error aborts with full rollback and no row of the
  mutation is ever visible to a concurrent reader.

IDEMPOTENCY CONTRACT:
  InsertTransaction must fail with ErrDuplicateClientID when the
  (user_id, client_id) unique index fires. The service resolves the race
  by rereading the winning row - the constraint, not a pre-check, is the
  arbiter.
*/
package finance

import (
	"context"

	"github.com/shopspring/decimal"
)

// Store is what the ledger write path needs from persistence.
//
// Lookup methods return (nil, nil) when no row matches; the service maps
// that to ErrNotFound where a direct object was addressed.
type Store interface {
	// WithTx executes fn within a database transaction. The Store passed
	// to fn scopes every operation to that transaction.
	WithTx(ctx context.Context, fn func(Store) error) error

	// InsertTransaction persists a new transaction row and fills in its
	// ID and timestamps. Returns ErrDuplicateClientID if the (user,
	// client_id) uniqueness constraint fires.
	InsertTransaction(ctx context.Context, tx *Transaction) error

	// UpdateTransaction overwrites the scalar columns of an existing row.
	UpdateTransaction(ctx context.Context, tx *Transaction) error

	// DeleteTransaction hard-deletes a user's transaction, cascading its
	// entries. Reports whether a row was deleted.
	DeleteTransaction(ctx context.Context, userID, id int64) (bool, error)

	// GetTransaction returns a user's transaction fully materialized:
	// entries with wallet and currency attached, category attached.
	GetTransaction(ctx context.Context, userID, id int64) (*Transaction, error)

	// GetTransactionByClientID returns the transaction holding the given
	// idempotency key for the user, fully materialized.
	GetTransactionByClientID(ctx context.Context, userID int64, clientID string) (*Transaction, error)

	// ListTransactions returns a user's transactions, newest occurred_at
	// first, materialized, narrowed by the filter.
	ListTransactions(ctx context.Context, userID int64, f ListTransactionsFilter) ([]*Transaction, error)

	// InsertEntries appends the given entries to a transaction.
	InsertEntries(ctx context.Context, transactionID int64, entries []EntryInput) error

	// DeleteEntries removes every entry of a transaction.
	DeleteEntries(ctx context.Context, transactionID int64) error

	// CountWalletsOwnedBy counts how many of the given wallet ids exist
	// and belong to the user. Used for the non-enumerating ownership check.
	CountWalletsOwnedBy(ctx context.Context, userID int64, walletIDs []int64) (int, error)

	// GetCategory returns a category by id, system or user-owned.
	GetCategory(ctx context.Context, id int64) (*Category, error)

	// GetCurrency returns a currency by id, system or user-owned.
	GetCurrency(ctx context.Context, id int64) (*Currency, error)

	// GetWallet returns a user's wallet with its currency attached.
	GetWallet(ctx context.Context, userID, id int64) (*Wallet, error)

	// WalletBalance sums the signed entry amounts of a wallet as an exact
	// decimal. Zero for a wallet with no entries.
	WalletBalance(ctx context.Context, walletID int64) (decimal.Decimal, error)
}

// SetupStore extends Store with the operations onboarding and finance
// settings need. The sqlite store implements it; WithTx callbacks that
// need it assert the extended interface.
type SetupStore interface {
	Store

	InsertUser(ctx context.Context, u *User) error
	ListSystemCurrencies(ctx context.Context) ([]Currency, error)
	InsertCurrency(ctx context.Context, c *Currency) error
	GetFinanceSettings(ctx context.Context, userID int64) (*FinanceSettings, error)
	InsertFinanceSettings(ctx context.Context, s *FinanceSettings) error
	UpdateFinanceSettings(ctx context.Context, s *FinanceSettings) error
}
