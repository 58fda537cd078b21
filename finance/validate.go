/*
validate.go - Type-invariant validator

Pure structural rule-checker for a proposed transaction. Runs before any
persistence or ownership check and accumulates EVERY violation instead of
stopping at the first, so a client sees the complete picture of a bad
submission in one round trip.

PER-TYPE SHAPE:
  income    1 entry,  amount > 0,                         category required
  expense   1 entry,  amount < 0,                         category required
  transfer  2 entries, opposite signs, |sum| <= 1e-6,
            same currency,                                category forbidden
  exchange  2 entries, opposite signs, distinct
            currencies, rate on every entry,              category forbidden

Field paths mirror the payload shape: "entries", "entries[0].amount",
"entries[1].rate", "category_id".
*/
package finance

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// transferEpsilon is the tolerance for the transfer zero-sum rule.
var transferEpsilon = decimal.RequireFromString("0.000001")

// ValidateTransaction checks the per-type structure of a proposed
// transaction. It returns nil or a ValidationErrors carrying every
// violation found.
func ValidateTransaction(txType TransactionType, categoryID *int64, entries []EntryInput) error {
	var errs ValidationErrors

	if !txType.Valid() {
		errs.Add("type", "Type must be one of income, expense, transfer, exchange.")
		return errs
	}

	validateCategoryPresence(&errs, txType, categoryID)

	switch txType {
	case TypeIncome:
		validateSingleEntry(&errs, entries, true)
	case TypeExpense:
		validateSingleEntry(&errs, entries, false)
	case TypeTransfer:
		validateTransfer(&errs, entries)
	case TypeExchange:
		validateExchange(&errs, entries)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Category presence is independent of the entry checks: required for
// income/expense, forbidden for transfer/exchange.
func validateCategoryPresence(errs *ValidationErrors, txType TransactionType, categoryID *int64) {
	if txType.RequiresCategory() && categoryID == nil {
		errs.Add("category_id", "Category is required for income and expense transactions.")
	}
	if !txType.RequiresCategory() && categoryID != nil {
		errs.Add("category_id", "Category must be null for transfer and exchange transactions.")
	}
}

func validateSingleEntry(errs *ValidationErrors, entries []EntryInput, positive bool) {
	if len(entries) != 1 {
		if positive {
			errs.Add("entries", "Income transactions must have exactly 1 entry.")
		} else {
			errs.Add("entries", "Expense transactions must have exactly 1 entry.")
		}
		return
	}

	amount := entries[0].Amount
	if positive && !amount.IsPositive() {
		errs.Add("entries[0].amount", "Income amount must be positive.")
	}
	if !positive && !amount.IsNegative() {
		errs.Add("entries[0].amount", "Expense amount must be negative.")
	}
}

func validateTransfer(errs *ValidationErrors, entries []EntryInput) {
	if len(entries) != 2 {
		errs.Add("entries", "Transfer transactions must have exactly 2 entries.")
		return
	}

	if entries[0].CurrencyID != entries[1].CurrencyID {
		errs.Add("entries", "Transfer entries must have the same currency.")
	}

	sum := entries[0].Amount.Add(entries[1].Amount)
	if sum.Abs().GreaterThan(transferEpsilon) {
		errs.Add("entries", "Transfer entry amounts must sum to 0.")
	}

	if !oppositeSigns(entries[0].Amount, entries[1].Amount) {
		errs.Add("entries", "Transfer must have one positive and one negative entry.")
	}
}

func validateExchange(errs *ValidationErrors, entries []EntryInput) {
	if len(entries) != 2 {
		errs.Add("entries", "Exchange transactions must have exactly 2 entries.")
		return
	}

	if entries[0].CurrencyID == entries[1].CurrencyID {
		errs.Add("entries", "Exchange entries must have different currencies.")
	}

	if !oppositeSigns(entries[0].Amount, entries[1].Amount) {
		errs.Add("entries", "Exchange must have one positive and one negative entry.")
	}

	for i, entry := range entries {
		if entry.Rate == nil {
			errs.Add(entryField(i, "rate"), "Rate is required for exchange transactions.")
		}
	}
}

// oppositeSigns requires one strictly positive and one strictly negative
// amount. Zero amounts fail on whichever side they sit.
func oppositeSigns(a, b decimal.Decimal) bool {
	return (a.IsPositive() && b.IsNegative()) || (a.IsNegative() && b.IsPositive())
}

func entryField(index int, name string) string {
	return "entries[" + strconv.Itoa(index) + "]." + name
}
