package finance_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammadqodir/lifeos/finance"
	"github.com/Muhammadqodir/lifeos/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestService(t *testing.T) (*finance.Service, *sqlite.Store, int64) {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Seed(ctx))

	user, err := finance.NewOnboarding(store).Register(ctx, "Test User", "test@example.com")
	require.NoError(t, err)

	return finance.NewService(store), store, user.ID
}

// registerUser onboards an additional user on the same store.
func registerUser(t *testing.T, store *sqlite.Store, name, email string) int64 {
	user, err := finance.NewOnboarding(store).Register(context.Background(), name, email)
	require.NoError(t, err)
	return user.ID
}

// currencyByCode finds one of the user's own currency clones.
func currencyByCode(t *testing.T, store *sqlite.Store, userID int64, code string) finance.Currency {
	t.Helper()
	currencies, err := store.ListUserCurrencies(context.Background(), userID)
	require.NoError(t, err)
	for _, c := range currencies {
		if c.Code == code {
			return c
		}
	}
	t.Fatalf("user %d has no currency %s", userID, code)
	return finance.Currency{}
}

func newWallet(t *testing.T, store *sqlite.Store, userID int64, name, code string) *finance.Wallet {
	t.Helper()
	currency := currencyByCode(t, store, userID, code)
	wallet := &finance.Wallet{
		UserID:     userID,
		CurrencyID: currency.ID,
		Name:       name,
		IsActive:   true,
	}
	require.NoError(t, store.InsertWallet(context.Background(), wallet))
	wallet.Currency = &currency
	return wallet
}

// incomeCategory picks any system income category.
func incomeCategory(t *testing.T, store *sqlite.Store, userID int64) *finance.Category {
	t.Helper()
	categories, err := store.ListCategoriesFor(context.Background(), userID)
	require.NoError(t, err)
	for i := range categories {
		if categories[i].Type == finance.CategoryIncome {
			return &categories[i]
		}
	}
	t.Fatal("no system income category seeded")
	return nil
}

func clientID(s string) *string { return &s }

func incomeInput(wallet *finance.Wallet, categoryID int64, amt string, key *string) finance.CreateTransactionInput {
	return finance.CreateTransactionInput{
		ClientID:   key,
		Type:       finance.TypeIncome,
		CategoryID: &categoryID,
		OccurredAt: time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC),
		Entries: []finance.EntryInput{
			{WalletID: wallet.ID, CurrencyID: wallet.CurrencyID, Amount: amount(amt)},
		},
	}
}

// =============================================================================
// CREATE
// =============================================================================

func TestCreate_Income_Persisted(t *testing.T) {
	svc, store, userID := newTestService(t)
	ctx := context.Background()

	wallet := newWallet(t, store, userID, "Cash", "USD")
	category := incomeCategory(t, store, userID)

	tx, err := svc.Create(ctx, userID, incomeInput(wallet, category.ID, "1500.250000", nil))
	require.NoError(t, err)

	assert.NotZero(t, tx.ID)
	assert.Equal(t, finance.TypeIncome, tx.Type)
	require.Len(t, tx.Entries, 1)
	assert.Equal(t, "1500.250000", tx.Entries[0].Amount.StringFixed(6))

	// Fully materialized for response shaping.
	require.NotNil(t, tx.Entries[0].Wallet)
	assert.Equal(t, "Cash", tx.Entries[0].Wallet.Name)
	require.NotNil(t, tx.Entries[0].Currency)
	assert.Equal(t, "USD", tx.Entries[0].Currency.Code)
	require.NotNil(t, tx.Category)
	assert.Equal(t, category.ID, tx.Category.ID)
}

func TestCreate_ValidationFailure_NothingWritten(t *testing.T) {
	svc, store, userID := newTestService(t)
	ctx := context.Background()

	wallet := newWallet(t, store, userID, "Cash", "USD")

	// Income without a category and with a negative amount.
	in := finance.CreateTransactionInput{
		Type:       finance.TypeIncome,
		OccurredAt: time.Now(),
		Entries: []finance.EntryInput{
			{WalletID: wallet.ID, CurrencyID: wallet.CurrencyID, Amount: amount("-5")},
		},
	}
	_, err := svc.Create(ctx, userID, in)
	require.Error(t, err)

	var verrs finance.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	list, err := svc.List(ctx, userID, finance.ListTransactionsFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreate_ForeignWallet_RejectedWithoutDetail(t *testing.T) {
	// GIVEN: user B owns a wallet
	// WHEN: user A references it in a transfer alongside their own wallet
	// THEN: ErrNotOwned, no rows written, and the error does not say
	//       which wallet failed

	svc, store, userA := newTestService(t)
	ctx := context.Background()
	userB := registerUser(t, store, "Other", "other@example.com")

	mine := newWallet(t, store, userA, "Mine", "USD")
	theirs := newWallet(t, store, userB, "Theirs", "USD")

	in := finance.CreateTransactionInput{
		Type:       finance.TypeTransfer,
		OccurredAt: time.Now(),
		Entries: []finance.EntryInput{
			{WalletID: mine.ID, CurrencyID: mine.CurrencyID, Amount: amount("-100")},
			{WalletID: theirs.ID, CurrencyID: mine.CurrencyID, Amount: amount("100")},
		},
	}
	_, err := svc.Create(ctx, userA, in)
	require.ErrorIs(t, err, finance.ErrNotOwned)
	assert.NotContains(t, err.Error(), "Theirs")

	list, err := svc.List(ctx, userA, finance.ListTransactionsFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreate_ForeignCategory_Rejected(t *testing.T) {
	svc, store, userA := newTestService(t)
	ctx := context.Background()
	userB := registerUser(t, store, "Other", "other@example.com")

	wallet := newWallet(t, store, userA, "Cash", "USD")

	foreign := &finance.Category{
		Owner: finance.OwnedBy(userB),
		Title: "Their Salary",
		Type:  finance.CategoryIncome,
	}
	require.NoError(t, store.InsertCategory(ctx, foreign))

	_, err := svc.Create(ctx, userA, incomeInput(wallet, foreign.ID, "10", nil))
	require.ErrorIs(t, err, finance.ErrNotOwned)
}

func TestCreate_SystemCategory_Accepted(t *testing.T) {
	svc, store, userID := newTestService(t)

	wallet := newWallet(t, store, userID, "Cash", "USD")
	category := incomeCategory(t, store, userID)

	_, err := svc.Create(context.Background(), userID,
		incomeInput(wallet, category.ID, "10", nil))
	assert.NoError(t, err)
}

// =============================================================================
// IDEMPOTENCY
// =============================================================================

func TestCreate_SameClientID_ReturnsStoredRow(t *testing.T) {
	// GIVEN: a transaction created with client key "req-1"
	// WHEN: the identical submission is retried
	// THEN: the stored row comes back and no second row exists

	svc, store, userID := newTestService(t)
	ctx := context.Background()

	wallet := newWallet(t, store, userID, "Cash", "USD")
	category := incomeCategory(t, store, userID)

	first, err := svc.Create(ctx, userID, incomeInput(wallet, category.ID, "100", clientID("req-1")))
	require.NoError(t, err)

	second, err := svc.Create(ctx, userID, incomeInput(wallet, category.ID, "100", clientID("req-1")))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	list, err := svc.List(ctx, userID, finance.ListTransactionsFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreate_SameClientID_DifferentPayload_FirstWins(t *testing.T) {
	svc, store, userID := newTestService(t)
	ctx := context.Background()

	wallet := newWallet(t, store, userID, "Cash", "USD")
	category := incomeCategory(t, store, userID)

	first, err := svc.Create(ctx, userID, incomeInput(wallet, category.ID, "100", clientID("req-1")))
	require.NoError(t, err)

	// Retry with a different amount: the stored row wins unchanged.
	replay, err := svc.Create(ctx, userID, incomeInput(wallet, category.ID, "999", clientID("req-1")))
	require.NoError(t, err)

	assert.Equal(t, first.ID, replay.ID)
	require.Len(t, replay.Entries, 1)
	assert.Equal(t, "100.000000", replay.Entries[0].Amount.StringFixed(6))
}

func TestCreate_ConcurrentSameClientID_SingleRow(t *testing.T) {
	// GIVEN: several goroutines racing on one client key
	// THEN: every racer gets the same transaction back and exactly one
	//       row exists - losers of the unique-index race reread the winner

	svc, store, userID := newTestService(t)
	ctx := context.Background()

	wallet := newWallet(t, store, userID, "Cash", "USD")
	category := incomeCategory(t, store, userID)

	const racers = 8
	ids := make([]int64, racers)
	errs := make([]error, racers)

	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tx, err := svc.Create(ctx, userID, incomeInput(wallet, category.ID, "100", clientID("race-key")))
			if err != nil {
				errs[i] = err
				return
			}
			ids[i] = tx.ID
		}(i)
	}
	wg.Wait()

	for i := 0; i < racers; i++ {
		require.NoError(t, errs[i], "racer %d", i)
		assert.Equal(t, ids[0], ids[i], "racer %d got a different row", i)
	}

	list, err := svc.List(ctx, userID, finance.ListTransactionsFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreate_SameClientID_DifferentUsers_Independent(t *testing.T) {
	svc, store, userA := newTestService(t)
	ctx := context.Background()
	userB := registerUser(t, store, "Other", "other@example.com")

	walletA := newWallet(t, store, userA, "A", "USD")
	walletB := newWallet(t, store, userB, "B", "USD")
	catA := incomeCategory(t, store, userA)

	txA, err := svc.Create(ctx, userA, incomeInput(walletA, catA.ID, "100", clientID("shared-key")))
	require.NoError(t, err)

	txB, err := svc.Create(ctx, userB, incomeInput(walletB, catA.ID, "200", clientID("shared-key")))
	require.NoError(t, err)

	// The key is scoped per user, so both rows exist.
	assert.NotEqual(t, txA.ID, txB.ID)
}

// =============================================================================
// UPDATE
// =============================================================================

func TestUpdate_EntriesFullyReplaced(t *testing.T) {
	// GIVEN: an income of 100
	// WHEN: updating with a new single-entry set of 250
	// THEN: the old entry is gone and the balance reflects only the new one

	svc, store, userID := newTestService(t)
	ctx := context.Background()

	wallet := newWallet(t, store, userID, "Cash", "USD")
	category := incomeCategory(t, store, userID)

	tx, err := svc.Create(ctx, userID, incomeInput(wallet, category.ID, "100", nil))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, userID, tx.ID, finance.UpdateTransactionInput{
		Entries: []finance.EntryInput{
			{WalletID: wallet.ID, CurrencyID: wallet.CurrencyID, Amount: amount("250")},
		},
	})
	require.NoError(t, err)

	require.Len(t, updated.Entries, 1)
	assert.Equal(t, "250.000000", updated.Entries[0].Amount.StringFixed(6))

	balance, err := svc.WalletBalance(ctx, userID, wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "250.000000", finance.FormatBalance(balance))
}

func TestUpdate_ScalarOnly_EntriesUntouched(t *testing.T) {
	svc, store, userID := newTestService(t)
	ctx := context.Background()

	wallet := newWallet(t, store, userID, "Cash", "USD")
	category := incomeCategory(t, store, userID)

	tx, err := svc.Create(ctx, userID, incomeInput(wallet, category.ID, "100", nil))
	require.NoError(t, err)

	desc := "groceries refund"
	updated, err := svc.Update(ctx, userID, tx.ID, finance.UpdateTransactionInput{
		Description: &desc,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Description)
	assert.Equal(t, desc, *updated.Description)
	require.Len(t, updated.Entries, 1)
	assert.Equal(t, tx.Entries[0].ID, updated.Entries[0].ID, "entries must not be recreated")
}

func TestUpdate_TypeChange_RevalidatesAgainstStoredEntries(t *testing.T) {
	// GIVEN: a stored income (1 entry, category set)
	// WHEN: switching the type to transfer without supplying entries
	// THEN: rejected, because a transfer needs 2 entries and no category

	svc, store, userID := newTestService(t)
	ctx := context.Background()

	wallet := newWallet(t, store, userID, "Cash", "USD")
	category := incomeCategory(t, store, userID)

	tx, err := svc.Create(ctx, userID, incomeInput(wallet, category.ID, "100", nil))
	require.NoError(t, err)

	transfer := finance.TypeTransfer
	_, err = svc.Update(ctx, userID, tx.ID, finance.UpdateTransactionInput{Type: &transfer})
	require.Error(t, err)

	var verrs finance.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestUpdate_ClearCategory_OnTypeSwitchToTransfer(t *testing.T) {
	svc, store, userID := newTestService(t)
	ctx := context.Background()

	usd := newWallet(t, store, userID, "Cash", "USD")
	savings := newWallet(t, store, userID, "Savings", "USD")
	category := incomeCategory(t, store, userID)

	tx, err := svc.Create(ctx, userID, incomeInput(usd, category.ID, "100", nil))
	require.NoError(t, err)

	transfer := finance.TypeTransfer
	updated, err := svc.Update(ctx, userID, tx.ID, finance.UpdateTransactionInput{
		Type:          &transfer,
		ClearCategory: true,
		Entries: []finance.EntryInput{
			{WalletID: usd.ID, CurrencyID: usd.CurrencyID, Amount: amount("-100")},
			{WalletID: savings.ID, CurrencyID: savings.CurrencyID, Amount: amount("100")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, finance.TypeTransfer, updated.Type)
	assert.Nil(t, updated.CategoryID)
	assert.Len(t, updated.Entries, 2)
}

func TestUpdate_RejectedEntryReplacement_NothingChanged(t *testing.T) {
	// GIVEN: a stored income of 100 with no description
	// WHEN: an update carries a foreign-wallet entry set together with a
	//       description change
	// THEN: the update fails as a whole - the original entry row and the
	//       nil description both survive the rollback

	svc, store, userA := newTestService(t)
	ctx := context.Background()
	userB := registerUser(t, store, "Other", "other@example.com")

	mine := newWallet(t, store, userA, "Mine", "USD")
	theirs := newWallet(t, store, userB, "Theirs", "USD")
	category := incomeCategory(t, store, userA)

	tx, err := svc.Create(ctx, userA, incomeInput(mine, category.ID, "100", nil))
	require.NoError(t, err)

	desc := "rewritten"
	_, err = svc.Update(ctx, userA, tx.ID, finance.UpdateTransactionInput{
		Description: &desc,
		Entries: []finance.EntryInput{
			{WalletID: theirs.ID, CurrencyID: theirs.CurrencyID, Amount: amount("100")},
		},
	})
	require.ErrorIs(t, err, finance.ErrNotOwned)

	reread, err := svc.Get(ctx, userA, tx.ID)
	require.NoError(t, err)
	assert.Nil(t, reread.Description, "scalar change must not stick")
	require.Len(t, reread.Entries, 1)
	assert.Equal(t, tx.Entries[0].ID, reread.Entries[0].ID, "entry must not be replaced")
	assert.Equal(t, "100.000000", reread.Entries[0].Amount.StringFixed(6))
	assert.Equal(t, mine.ID, reread.Entries[0].WalletID)
}

func TestUpdate_ClientIDCollision_Surfaced(t *testing.T) {
	// Moving a transaction onto another row's client key must trip the
	// unique index, unlike create where a replay returns the stored row.

	svc, store, userID := newTestService(t)
	ctx := context.Background()

	wallet := newWallet(t, store, userID, "Cash", "USD")
	category := incomeCategory(t, store, userID)

	_, err := svc.Create(ctx, userID, incomeInput(wallet, category.ID, "100", clientID("key-a")))
	require.NoError(t, err)
	second, err := svc.Create(ctx, userID, incomeInput(wallet, category.ID, "200", clientID("key-b")))
	require.NoError(t, err)

	_, err = svc.Update(ctx, userID, second.ID, finance.UpdateTransactionInput{
		ClientID: clientID("key-a"),
	})
	assert.ErrorIs(t, err, finance.ErrDuplicateClientID)
}

func TestUpdate_NotOwned_ReadsAsNotFound(t *testing.T) {
	svc, store, userA := newTestService(t)
	ctx := context.Background()
	userB := registerUser(t, store, "Other", "other@example.com")

	walletB := newWallet(t, store, userB, "Theirs", "USD")
	catB := incomeCategory(t, store, userB)

	theirs, err := svc.Create(ctx, userB, incomeInput(walletB, catB.ID, "100", nil))
	require.NoError(t, err)

	desc := "hijack"
	_, err = svc.Update(ctx, userA, theirs.ID, finance.UpdateTransactionInput{Description: &desc})
	assert.ErrorIs(t, err, finance.ErrNotFound)
}

// =============================================================================
// DELETE / GET
// =============================================================================

func TestDelete_EntriesCascade(t *testing.T) {
	svc, store, userID := newTestService(t)
	ctx := context.Background()

	wallet := newWallet(t, store, userID, "Cash", "USD")
	category := incomeCategory(t, store, userID)

	tx, err := svc.Create(ctx, userID, incomeInput(wallet, category.ID, "100", nil))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, userID, tx.ID))

	_, err = svc.Get(ctx, userID, tx.ID)
	assert.ErrorIs(t, err, finance.ErrNotFound)

	balance, err := svc.WalletBalance(ctx, userID, wallet.ID)
	require.NoError(t, err)
	assert.True(t, balance.IsZero(), "cascaded entries must not count")
}

func TestDelete_NotOwned_ReadsAsNotFound(t *testing.T) {
	svc, store, userA := newTestService(t)
	ctx := context.Background()
	userB := registerUser(t, store, "Other", "other@example.com")

	walletB := newWallet(t, store, userB, "Theirs", "USD")
	catB := incomeCategory(t, store, userB)

	theirs, err := svc.Create(ctx, userB, incomeInput(walletB, catB.ID, "100", nil))
	require.NoError(t, err)

	err = svc.Delete(ctx, userA, theirs.ID)
	assert.ErrorIs(t, err, finance.ErrNotFound)

	// Still there for its owner.
	_, err = svc.Get(ctx, userB, theirs.ID)
	assert.NoError(t, err)
}

func TestGet_NotOwned_ReadsAsNotFound(t *testing.T) {
	svc, store, userA := newTestService(t)
	ctx := context.Background()
	userB := registerUser(t, store, "Other", "other@example.com")

	walletB := newWallet(t, store, userB, "Theirs", "USD")
	catB := incomeCategory(t, store, userB)

	theirs, err := svc.Create(ctx, userB, incomeInput(walletB, catB.ID, "100", nil))
	require.NoError(t, err)

	_, err = svc.Get(ctx, userA, theirs.ID)
	assert.ErrorIs(t, err, finance.ErrNotFound)
}

// =============================================================================
// BALANCE
// =============================================================================

func TestWalletBalance_ExactDecimalSum(t *testing.T) {
	// Amounts that are classic float traps must sum exactly.
	svc, store, userID := newTestService(t)
	ctx := context.Background()

	wallet := newWallet(t, store, userID, "Cash", "USD")
	category := incomeCategory(t, store, userID)

	for _, amt := range []string{"0.100000", "0.200000", "0.300000"} {
		_, err := svc.Create(ctx, userID, incomeInput(wallet, category.ID, amt, nil))
		require.NoError(t, err)
	}

	balance, err := svc.WalletBalance(ctx, userID, wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.600000", finance.FormatBalance(balance))
}

func TestWalletBalance_MixedSigns(t *testing.T) {
	svc, store, userID := newTestService(t)
	ctx := context.Background()

	usd := newWallet(t, store, userID, "Cash", "USD")
	savings := newWallet(t, store, userID, "Savings", "USD")
	category := incomeCategory(t, store, userID)

	_, err := svc.Create(ctx, userID, incomeInput(usd, category.ID, "500", nil))
	require.NoError(t, err)

	_, err = svc.Create(ctx, userID, finance.CreateTransactionInput{
		Type:       finance.TypeTransfer,
		OccurredAt: time.Now(),
		Entries: []finance.EntryInput{
			{WalletID: usd.ID, CurrencyID: usd.CurrencyID, Amount: amount("-120.500000")},
			{WalletID: savings.ID, CurrencyID: savings.CurrencyID, Amount: amount("120.500000")},
		},
	})
	require.NoError(t, err)

	balance, err := svc.WalletBalance(ctx, userID, usd.ID)
	require.NoError(t, err)
	assert.Equal(t, "379.500000", finance.FormatBalance(balance))

	balance, err = svc.WalletBalance(ctx, userID, savings.ID)
	require.NoError(t, err)
	assert.Equal(t, "120.500000", finance.FormatBalance(balance))
}

func TestWalletBalance_ForeignWallet_NotFound(t *testing.T) {
	svc, store, userA := newTestService(t)
	userB := registerUser(t, store, "Other", "other@example.com")
	theirs := newWallet(t, store, userB, "Theirs", "USD")

	_, err := svc.WalletBalance(context.Background(), userA, theirs.ID)
	assert.ErrorIs(t, err, finance.ErrNotFound)
}

// =============================================================================
// LISTING
// =============================================================================

func TestList_FiltersAndOrder(t *testing.T) {
	svc, store, userID := newTestService(t)
	ctx := context.Background()

	wallet := newWallet(t, store, userID, "Cash", "USD")
	category := incomeCategory(t, store, userID)

	older := incomeInput(wallet, category.ID, "10", nil)
	older.OccurredAt = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	desc := "january salary"
	older.Description = &desc
	_, err := svc.Create(ctx, userID, older)
	require.NoError(t, err)

	newer := incomeInput(wallet, category.ID, "20", nil)
	newer.OccurredAt = time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.Create(ctx, userID, newer)
	require.NoError(t, err)

	// Newest occurred_at first.
	list, err := svc.List(ctx, userID, finance.ListTransactionsFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].OccurredAt.After(list[1].OccurredAt))

	// Type filter.
	income := finance.TypeIncome
	list, err = svc.List(ctx, userID, finance.ListTransactionsFilter{Type: &income})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	transfer := finance.TypeTransfer
	list, err = svc.List(ctx, userID, finance.ListTransactionsFilter{Type: &transfer})
	require.NoError(t, err)
	assert.Empty(t, list)

	// Search over description.
	list, err = svc.List(ctx, userID, finance.ListTransactionsFilter{Search: "january"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Description)
	assert.Equal(t, "january salary", *list[0].Description)

	// Date range.
	from := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	list, err = svc.List(ctx, userID, finance.ListTransactionsFilter{DateFrom: &from})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// Limit/offset.
	list, err = svc.List(ctx, userID, finance.ListTransactionsFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestList_IsolatedPerUser(t *testing.T) {
	svc, store, userA := newTestService(t)
	ctx := context.Background()
	userB := registerUser(t, store, "Other", "other@example.com")

	walletB := newWallet(t, store, userB, "Theirs", "USD")
	catB := incomeCategory(t, store, userB)
	_, err := svc.Create(ctx, userB, incomeInput(walletB, catB.ID, "100", nil))
	require.NoError(t, err)

	list, err := svc.List(ctx, userA, finance.ListTransactionsFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

// =============================================================================
// EXCHANGE END TO END
// =============================================================================

func TestCreate_Exchange_RatePersistedAtFullPrecision(t *testing.T) {
	svc, store, userID := newTestService(t)
	ctx := context.Background()

	usd := newWallet(t, store, userID, "USD Cash", "USD")
	eur := newWallet(t, store, userID, "EUR Cash", "EUR")

	rate := amount("0.92345678")
	tx, err := svc.Create(ctx, userID, finance.CreateTransactionInput{
		Type:       finance.TypeExchange,
		OccurredAt: time.Now(),
		Entries: []finance.EntryInput{
			{WalletID: usd.ID, CurrencyID: usd.CurrencyID, Amount: amount("-100.000000"), Rate: &rate},
			{WalletID: eur.ID, CurrencyID: eur.CurrencyID, Amount: amount("92.345678"), Rate: &rate},
		},
	})
	require.NoError(t, err)

	require.Len(t, tx.Entries, 2)
	for _, e := range tx.Entries {
		require.NotNil(t, e.Rate)
		assert.Equal(t, "0.92345678", e.Rate.StringFixed(8))
	}
	assert.NotEqual(t, tx.Entries[0].CurrencyID, tx.Entries[1].CurrencyID)
}
