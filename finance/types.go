/*
Package finance contains the ledger core: the types and rules that turn a
client-submitted transaction request into a consistent, idempotent,
multi-row ledger mutation.

KEY CONCEPTS IN THIS FILE (types.go):
  - Transaction: the unit of consistency - one user action (income,
    expense, transfer, exchange) composed of 1-2 entries
  - Entry: one signed money movement against one wallet in one currency
  - Ownership: explicit system-vs-user tagged variant for shared resources
  - Wallet/Currency/Category: referenced resources, materialized onto
    results for response shaping

DESIGN PRINCIPLES:
  1. Precision: decimal.Decimal everywhere, never float64
  2. Derived balances: wallet balance is always a live sum over entries
  3. Explicit actor: every operation takes the acting user id as a
     parameter - there is no ambient auth context in this package
  4. Replace-only entries: entries are created with their transaction and
     replaced wholesale on update, never patched individually

SEE ALSO:
  - validate.go: per-type structural rules
  - service.go: idempotent create/update orchestration
  - store/sqlite: persistence
*/
package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// TRANSACTION TYPES
// =============================================================================

type TransactionType string

const (
	TypeIncome   TransactionType = "income"   // Money in: exactly one positive entry
	TypeExpense  TransactionType = "expense"  // Money out: exactly one negative entry
	TypeTransfer TransactionType = "transfer" // Between own wallets, same currency, nets to zero
	TypeExchange TransactionType = "exchange" // Between currencies, both entries carry a rate
)

// Valid reports whether t is one of the four supported transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeTransfer, TypeExchange:
		return true
	}
	return false
}

// RequiresCategory reports whether transactions of this type must carry a
// category. Transfers and exchanges must not.
func (t TransactionType) RequiresCategory() bool {
	return t == TypeIncome || t == TypeExpense
}

// =============================================================================
// OWNERSHIP - System vs user-owned resources
// =============================================================================

// Ownership tags a shared resource (currency, category) as either part of
// the system catalog or owned by a specific user. Modeled as a closed
// variant instead of a nullable foreign key so ownership checks stay
// exhaustive.
type Ownership struct {
	userID int64
	system bool
}

// SystemOwned returns the ownership tag for catalog resources.
func SystemOwned() Ownership {
	return Ownership{system: true}
}

// OwnedBy returns the ownership tag for a user-owned resource.
func OwnedBy(userID int64) Ownership {
	return Ownership{userID: userID}
}

// IsSystem reports whether the resource belongs to the shared catalog.
func (o Ownership) IsSystem() bool { return o.system }

// UserID returns the owning user id and whether one exists.
func (o Ownership) UserID() (int64, bool) {
	if o.system {
		return 0, false
	}
	return o.userID, true
}

// AccessibleBy reports whether the acting user may reference the resource:
// system resources are shared, user resources only by their owner.
func (o Ownership) AccessibleBy(userID int64) bool {
	return o.system || o.userID == userID
}

// =============================================================================
// RESOURCES
// =============================================================================

// Currency is either a system catalog currency or a per-user clone created
// at onboarding.
type Currency struct {
	ID        int64
	Owner     Ownership
	Code      string
	Name      string
	Color     string
	Icon      string
	IsActive  bool
	CreatedAt time.Time
}

type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// Category classifies income/expense transactions. System categories are
// shared across all users.
type Category struct {
	ID        int64
	Owner     Ownership
	Title     string
	Icon      string
	Color     string
	Type      CategoryType
	CreatedAt time.Time
}

// Wallet holds money in one currency for one user. Balance is never stored;
// it is the live sum of the wallet's entry amounts.
type Wallet struct {
	ID         int64
	UserID     int64
	CurrencyID int64
	Name       string
	Icon       string
	Color      string
	IsActive   bool
	CreatedAt  time.Time

	Currency *Currency // materialized for response shaping
}

// FinanceSettings holds a user's reporting preferences. The base currency
// must be one of the user's own currencies.
type FinanceSettings struct {
	UserID         int64
	BaseCurrencyID int64
	CreatedAt      time.Time
	UpdatedAt      time.Time

	BaseCurrency *Currency
}

// User is the owning principal for wallets, categories, currencies and
// transactions. Authentication lives outside this module.
type User struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}

// =============================================================================
// LEDGER ROWS
// =============================================================================

// Entry is one signed monetary movement within a transaction. Entries are
// immutable once created: updates replace the whole entry set.
type Entry struct {
	ID            int64
	TransactionID int64
	WalletID      int64
	Amount        decimal.Decimal  // signed, 6 fractional digits
	CurrencyID    int64
	Rate          *decimal.Decimal // 8 fractional digits, exchange only
	Note          *string
	CreatedAt     time.Time

	Wallet   *Wallet
	Currency *Currency
}

// Transaction is one user action over 1-2 entries, created and replaced
// atomically.
type Transaction struct {
	ID          int64
	UserID      int64
	ClientID    *string // client-supplied idempotency key, unique per user
	Type        TransactionType
	CategoryID  *int64
	Description *string
	OccurredAt  time.Time // business date, distinct from CreatedAt
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Entries  []Entry
	Category *Category
}

// =============================================================================
// INPUT PAYLOADS - already schema-checked by the HTTP boundary
// =============================================================================

// EntryInput is one proposed entry of a create/update submission.
type EntryInput struct {
	WalletID   int64
	Amount     decimal.Decimal
	CurrencyID int64
	Rate       *decimal.Decimal
	Note       *string
}

// CreateTransactionInput is the payload for an idempotent create.
type CreateTransactionInput struct {
	ClientID    *string
	Type        TransactionType
	CategoryID  *int64
	Description *string
	OccurredAt  time.Time
	Entries     []EntryInput
}

// UpdateTransactionInput carries a partial field set. Nil pointers mean
// "leave untouched"; ClearCategory distinguishes explicit null from absent.
// A non-nil Entries slice fully replaces the stored entry set.
type UpdateTransactionInput struct {
	ClientID      *string
	Type          *TransactionType
	CategoryID    *int64
	ClearCategory bool
	Description   *string
	OccurredAt    *time.Time
	Entries       []EntryInput
}

// ListTransactionsFilter narrows owner-scoped transaction listings.
type ListTransactionsFilter struct {
	Type       *TransactionType
	WalletID   *int64
	CategoryID *int64
	DateFrom   *time.Time
	DateTo     *time.Time
	Search     string // substring match on description
	Limit      int
	Offset     int
}
