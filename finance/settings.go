/*
settings.go - User finance settings

The base currency a user reports in. The invariant mirrors wallet
currency selection: a user may only pick one of their OWN currencies -
never a system catalog row directly, never another user's clone.
*/
package finance

import "context"

// GetSettings returns the user's finance settings with the base currency
// attached.
func (s *Service) GetSettings(ctx context.Context, userID int64) (*FinanceSettings, error) {
	store, ok := s.store.(SetupStore)
	if !ok {
		return nil, ErrStoreRequired
	}
	settings, err := store.GetFinanceSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, ErrSettingsMissing
	}
	return settings, nil
}

// UpdateBaseCurrency points the user's settings at a new base currency.
// The currency must be owned by the user; system and foreign currencies
// report as not owned.
func (s *Service) UpdateBaseCurrency(ctx context.Context, userID, currencyID int64) (*FinanceSettings, error) {
	if _, ok := s.store.(SetupStore); !ok {
		return nil, ErrStoreRequired
	}

	var result *FinanceSettings
	err := s.store.WithTx(ctx, func(txs Store) error {
		tstore, ok := txs.(SetupStore)
		if !ok {
			return ErrStoreRequired
		}

		currency, err := tstore.GetCurrency(ctx, currencyID)
		if err != nil {
			return err
		}
		if currency == nil {
			return ErrNotOwned
		}
		if owner, ok := currency.Owner.UserID(); !ok || owner != userID {
			return ErrNotOwned
		}

		settings, err := tstore.GetFinanceSettings(ctx, userID)
		if err != nil {
			return err
		}
		if settings == nil {
			return ErrSettingsMissing
		}

		settings.BaseCurrencyID = currencyID
		if err := tstore.UpdateFinanceSettings(ctx, settings); err != nil {
			return err
		}

		result, err = tstore.GetFinanceSettings(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
