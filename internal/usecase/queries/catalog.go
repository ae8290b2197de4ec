package queries

import (
	"context"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	ListOrderSlots(ctx context.Context, supermarketID uuid.UUID) ([]OrderSlotView, error)
}

type CatalogReadStore interface {
	FindSupermarket(ctx context.Context, id uuid.UUID) (*SupermarketView, error)
	ListOrderSlots(ctx context.Context, supermarketID uuid.UUID) ([]OrderSlotView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListOrderSlots(ctx context.Context, supermarketID uuid.UUID) ([]OrderSlotView, error) {
	if _, err := q.store.FindSupermarket(ctx, supermarketID); err != nil {
		return nil, err
	}
	return q.store.ListOrderSlots(ctx, supermarketID)
}
