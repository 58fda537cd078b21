/*
onboarding.go - Per-user finance setup

When a user registers, the system catalog of currencies is cloned for
them (same code/name/color/icon, independently owned) and finance
settings are created pointing at the first clone as base currency.
Idempotent per user: a second run is a no-op. Everything happens inside
one DB transaction so a half-onboarded user is never observable.
*/
package finance

import (
	"context"
	"fmt"
)

// Onboarding provisions finance data for new users.
type Onboarding struct {
	store SetupStore
}

func NewOnboarding(store SetupStore) *Onboarding {
	return &Onboarding{store: store}
}

// Register creates the user row and provisions their finance data.
func (o *Onboarding) Register(ctx context.Context, name, email string) (*User, error) {
	user := &User{Name: name, Email: email}
	err := o.store.WithTx(ctx, func(txs Store) error {
		store, ok := txs.(SetupStore)
		if !ok {
			return ErrStoreRequired
		}
		if err := store.InsertUser(ctx, user); err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		return o.setup(ctx, store, user.ID)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// EnsureFinanceData provisions currencies and settings for an existing
// user. Safe to call repeatedly.
func (o *Onboarding) EnsureFinanceData(ctx context.Context, userID int64) error {
	return o.store.WithTx(ctx, func(txs Store) error {
		store, ok := txs.(SetupStore)
		if !ok {
			return ErrStoreRequired
		}
		return o.setup(ctx, store, userID)
	})
}

func (o *Onboarding) setup(ctx context.Context, store SetupStore, userID int64) error {
	existing, err := store.GetFinanceSettings(ctx, userID)
	if err != nil {
		return err
	}
	if existing != nil {
		// Already onboarded.
		return nil
	}

	catalog, err := store.ListSystemCurrencies(ctx)
	if err != nil {
		return err
	}
	if len(catalog) == 0 {
		return fmt.Errorf("no system currencies to clone for user %d", userID)
	}

	var firstID int64
	for i, sys := range catalog {
		clone := &Currency{
			Owner:    OwnedBy(userID),
			Code:     sys.Code,
			Name:     sys.Name,
			Color:    sys.Color,
			Icon:     sys.Icon,
			IsActive: true,
		}
		if err := store.InsertCurrency(ctx, clone); err != nil {
			return fmt.Errorf("clone currency %s: %w", sys.Code, err)
		}
		if i == 0 {
			firstID = clone.ID
		}
	}

	return store.InsertFinanceSettings(ctx, &FinanceSettings{
		UserID:         userID,
		BaseCurrencyID: firstID,
	})
}
