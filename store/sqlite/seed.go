/*
seed.go - System seed data

Populates the shared catalog rows that every user's onboarding clones or
references: the system currency set and the default income/expense
categories. Seeding is idempotent and runs at server startup.
*/
package sqlite

import (
	"context"

	"github.com/Muhammadqodir/lifeos/finance"
)

// systemCurrencies is the shared catalog. Order matters: the first entry
// becomes the default base currency during onboarding.
var systemCurrencies = []finance.Currency{
	{Code: "UZS", Name: "Uzbek Som", Color: "#0099B5", Icon: "currency-uzs"},
	{Code: "USD", Name: "US Dollar", Color: "#2E7D32", Icon: "currency-usd"},
	{Code: "RUB", Name: "Russian Ruble", Color: "#1565C0", Icon: "currency-rub"},
	{Code: "EUR", Name: "Euro", Color: "#283593", Icon: "currency-eur"},
}

var systemCategories = []finance.Category{
	{Title: "Salary", Icon: "cash", Color: "#43A047", Type: finance.CategoryIncome},
	{Title: "Gifts", Icon: "gift", Color: "#8E24AA", Type: finance.CategoryIncome},
	{Title: "Other Income", Icon: "plus-circle", Color: "#00897B", Type: finance.CategoryIncome},
	{Title: "Food", Icon: "food", Color: "#F4511E", Type: finance.CategoryExpense},
	{Title: "Transport", Icon: "bus", Color: "#039BE5", Type: finance.CategoryExpense},
	{Title: "Housing", Icon: "home", Color: "#6D4C41", Type: finance.CategoryExpense},
	{Title: "Health", Icon: "heart-pulse", Color: "#E53935", Type: finance.CategoryExpense},
	{Title: "Entertainment", Icon: "movie", Color: "#FB8C00", Type: finance.CategoryExpense},
	{Title: "Other Expenses", Icon: "dots-horizontal", Color: "#757575", Type: finance.CategoryExpense},
}

// Seed inserts the system currencies and categories if they are not
// present yet. Safe to call on every startup.
func (s *Store) Seed(ctx context.Context) error {
	return s.WithTx(ctx, func(tx finance.Store) error {
		ts := tx.(*txStore)

		existing, err := ts.ListSystemCurrencies(ctx)
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			for _, c := range systemCurrencies {
				c.Owner = finance.SystemOwned()
				c.IsActive = true
				if err := ts.InsertCurrency(ctx, &c); err != nil {
					return err
				}
			}
		}

		var count int
		err = ts.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM categories WHERE user_id IS NULL").Scan(&count)
		if err != nil {
			return err
		}
		if count == 0 {
			for _, c := range systemCategories {
				c.Owner = finance.SystemOwned()
				if err := ts.InsertCategory(ctx, &c); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
