/*
ownership.go - Ownership resolver

Cross-checks every foreign reference of a transaction payload against the
acting user before anything is written. The wallet check is a count
comparison on purpose: the error never reveals which id failed, so a
caller cannot probe for the existence of other users' wallets.

Currency ids on entries are NOT checked here; the wallet's own currency
constrains them indirectly and the schema's foreign keys catch dangling
ids. See DESIGN.md for the open-question decision.
*/
package finance

import "context"

// OwnershipResolver confirms wallet and category references are accessible
// to the acting user.
type OwnershipResolver struct {
	store Store
}

func NewOwnershipResolver(store Store) *OwnershipResolver {
	return &OwnershipResolver{store: store}
}

// Resolve checks the category (when present) and the distinct wallet set
// of the entries. Any inaccessible or missing reference yields ErrNotOwned
// with no indication of which id failed.
func (r *OwnershipResolver) Resolve(ctx context.Context, userID int64, categoryID *int64, entries []EntryInput) error {
	if err := r.resolveWallets(ctx, userID, entries); err != nil {
		return err
	}
	return r.resolveCategory(ctx, userID, categoryID)
}

func (r *OwnershipResolver) resolveWallets(ctx context.Context, userID int64, entries []EntryInput) error {
	if len(entries) == 0 {
		return nil
	}

	seen := make(map[int64]struct{}, len(entries))
	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.WalletID]; ok {
			continue
		}
		seen[e.WalletID] = struct{}{}
		ids = append(ids, e.WalletID)
	}

	owned, err := r.store.CountWalletsOwnedBy(ctx, userID, ids)
	if err != nil {
		return err
	}
	if owned != len(ids) {
		return ErrNotOwned
	}
	return nil
}

func (r *OwnershipResolver) resolveCategory(ctx context.Context, userID int64, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}

	category, err := r.store.GetCategory(ctx, *categoryID)
	if err != nil {
		return err
	}
	// A missing category reports the same as a foreign one.
	if category == nil || !category.Owner.AccessibleBy(userID) {
		return ErrNotOwned
	}
	return nil
}
