package commands

import (
	"bytes"
	"context"
	"sort"

	"grocery-pool/internal/domain/cart"
	"grocery-pool/internal/domain/inventory"
	"grocery-pool/internal/usecase/shared"

	"github.com/google/uuid"
)

type stockAdjuster struct{}

func (stockAdjuster) Reserve(ctx context.Context, tx shared.Tx, itemID, supermarketID uuid.UUID, qty int) error {
	if err := inventory.ValidateQuantity(qty); err != nil {
		return err
	}
	level, err := tx.Stock().LockLevel(ctx, tx.DB(), itemID, supermarketID)
	if err != nil {
		return err
	}
	if err := level.Reserve(qty); err != nil {
		return err
	}
	return tx.Stock().Save(ctx, tx.DB(), level)
}

func (stockAdjuster) Release(ctx context.Context, tx shared.Tx, itemID, supermarketID uuid.UUID, qty int) error {
	if err := inventory.ValidateQuantity(qty); err != nil {
		return err
	}
	level, err := tx.Stock().LockLevel(ctx, tx.DB(), itemID, supermarketID)
	if err != nil {
		return err
	}
	if err := level.Release(qty); err != nil {
		return err
	}
	return tx.Stock().Save(ctx, tx.DB(), level)
}

// ReleaseLines returns every line's units. Rows are locked in item id order
// so concurrent multi-line releases cannot deadlock each other.
func (s stockAdjuster) ReleaseLines(ctx context.Context, tx shared.Tx, supermarketID uuid.UUID, lines []cart.Line) error {
	ordered := make([]cart.Line, len(lines))
	copy(ordered, lines)
	sort.Slice(ordered, func(i, j int) bool {
		return bytes.Compare(ordered[i].ItemID[:], ordered[j].ItemID[:]) < 0
	})
	for _, l := range ordered {
		if err := s.Release(ctx, tx, l.ItemID, supermarketID, l.Quantity); err != nil {
			return err
		}
	}
	return nil
}
