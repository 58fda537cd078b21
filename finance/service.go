/*
service.go - Idempotent writer

The single entry point for creating, updating and deleting ledger
transactions. Holds the atomicity and idempotency contracts of the write
path:

CREATE:
  1. Structural validation (all violations reported at once)
  2. Inside one DB transaction:
     a. If a client key is supplied and a row already holds it for this
        user, return that row unchanged (idempotent replay)
     b. Ownership resolution - abort with zero writes on failure
     c. Insert transaction row + every entry row
  3. If the insert loses a race on the (user, client key) unique index,
     reread the winner outside the rolled-back transaction and return it.
     The loser never observes an error.

UPDATE:
  Partial scalar overwrite; a supplied entry list fully replaces the old
  set (delete-all-then-insert-all) in the same atomic unit. Ownership is
  re-resolved against the new wallet/category ids.

Nothing here knows about HTTP, JSON or auth sessions: the acting user id
is always an explicit argument.
*/
package finance

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Service orchestrates the ledger write path.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// =============================================================================
// CREATE
// =============================================================================

// Create validates, ownership-checks and atomically persists a new
// transaction with its entries, or returns the prior result when the
// client key was already used by this user.
func (s *Service) Create(ctx context.Context, userID int64, in CreateTransactionInput) (*Transaction, error) {
	if err := ValidateTransaction(in.Type, in.CategoryID, in.Entries); err != nil {
		return nil, err
	}

	var result *Transaction
	err := s.store.WithTx(ctx, func(store Store) error {
		// Fast path for retried submissions. The unique index below is
		// still the arbiter when two creates race past this read.
		if in.ClientID != nil {
			existing, err := store.GetTransactionByClientID(ctx, userID, *in.ClientID)
			if err != nil {
				return err
			}
			if existing != nil {
				result = existing
				return nil
			}
		}

		resolver := NewOwnershipResolver(store)
		if err := resolver.Resolve(ctx, userID, in.CategoryID, in.Entries); err != nil {
			return err
		}

		tx := &Transaction{
			UserID:      userID,
			ClientID:    in.ClientID,
			Type:        in.Type,
			CategoryID:  in.CategoryID,
			Description: in.Description,
			OccurredAt:  in.OccurredAt,
		}
		if err := store.InsertTransaction(ctx, tx); err != nil {
			return err
		}
		if err := store.InsertEntries(ctx, tx.ID, in.Entries); err != nil {
			return err
		}

		loaded, err := store.GetTransaction(ctx, userID, tx.ID)
		if err != nil {
			return err
		}
		result = loaded
		return nil
	})

	if err != nil {
		// Lost the check-then-insert race: the winner's row is the
		// idempotent result, never an error.
		if errors.Is(err, ErrDuplicateClientID) && in.ClientID != nil {
			winner, rerr := s.store.GetTransactionByClientID(ctx, userID, *in.ClientID)
			if rerr != nil {
				return nil, rerr
			}
			if winner != nil {
				return winner, nil
			}
			return nil, fmt.Errorf("idempotency conflict without winning row: %w", err)
		}
		return nil, err
	}
	return result, nil
}

// =============================================================================
// UPDATE
// =============================================================================

// Update applies a partial field set to an owned transaction. When the
// input carries an entry list, the stored entries are deleted and fully
// recreated inside the same atomic unit as the scalar update.
func (s *Service) Update(ctx context.Context, userID, id int64, in UpdateTransactionInput) (*Transaction, error) {
	var result *Transaction
	err := s.store.WithTx(ctx, func(store Store) error {
		existing, err := store.GetTransaction(ctx, userID, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrNotFound
		}

		effType := existing.Type
		if in.Type != nil {
			effType = *in.Type
		}

		categoryChanged := in.ClearCategory || in.CategoryID != nil || in.Type != nil
		effCategory := existing.CategoryID
		switch {
		case in.ClearCategory:
			effCategory = nil
		case in.CategoryID != nil:
			effCategory = in.CategoryID
		}

		// Validate the effective shape against whichever entry set will
		// be stored after this update.
		effEntries := in.Entries
		if effEntries == nil {
			effEntries = entryInputs(existing.Entries)
		}
		if err := ValidateTransaction(effType, effCategory, effEntries); err != nil {
			return err
		}

		if in.Entries != nil || categoryChanged {
			resolver := NewOwnershipResolver(store)
			var checkCategory *int64
			if categoryChanged {
				checkCategory = effCategory
			}
			if err := resolver.Resolve(ctx, userID, checkCategory, in.Entries); err != nil {
				return err
			}
		}

		existing.Type = effType
		existing.CategoryID = effCategory
		if in.ClientID != nil {
			existing.ClientID = in.ClientID
		}
		if in.Description != nil {
			existing.Description = in.Description
		}
		if in.OccurredAt != nil {
			existing.OccurredAt = *in.OccurredAt
		}
		if err := store.UpdateTransaction(ctx, existing); err != nil {
			return err
		}

		if in.Entries != nil {
			if err := store.DeleteEntries(ctx, existing.ID); err != nil {
				return err
			}
			if err := store.InsertEntries(ctx, existing.ID, in.Entries); err != nil {
				return err
			}
		}

		loaded, err := store.GetTransaction(ctx, userID, existing.ID)
		if err != nil {
			return err
		}
		result = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// =============================================================================
// DELETE / READ
// =============================================================================

// Delete hard-deletes an owned transaction; its entries cascade. A
// not-owned id reports identically to an absent one.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	return s.store.WithTx(ctx, func(store Store) error {
		deleted, err := store.DeleteTransaction(ctx, userID, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrNotFound
		}
		return nil
	})
}

// Get returns an owned transaction fully materialized.
func (s *Service) Get(ctx context.Context, userID, id int64) (*Transaction, error) {
	tx, err := s.store.GetTransaction(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, ErrNotFound
	}
	return tx, nil
}

// List returns the user's transactions narrowed by the filter, newest
// occurred_at first.
func (s *Service) List(ctx context.Context, userID int64, f ListTransactionsFilter) ([]*Transaction, error) {
	return s.store.ListTransactions(ctx, userID, f)
}

// =============================================================================
// BALANCE
// =============================================================================

// WalletBalance returns the live sum of a wallet's entry amounts. The
// wallet must belong to the acting user.
func (s *Service) WalletBalance(ctx context.Context, userID, walletID int64) (decimal.Decimal, error) {
	wallet, err := s.store.GetWallet(ctx, userID, walletID)
	if err != nil {
		return decimal.Zero, err
	}
	if wallet == nil {
		return decimal.Zero, ErrNotFound
	}
	return s.store.WalletBalance(ctx, walletID)
}

// FormatBalance renders a balance as a fixed-point string with 6
// fractional digits, the lossless boundary representation.
func FormatBalance(d decimal.Decimal) string {
	return d.StringFixed(6)
}

func entryInputs(entries []Entry) []EntryInput {
	out := make([]EntryInput, len(entries))
	for i, e := range entries {
		out[i] = EntryInput{
			WalletID:   e.WalletID,
			Amount:     e.Amount,
			CurrencyID: e.CurrencyID,
			Rate:       e.Rate,
			Note:       e.Note,
		}
	}
	return out
}
