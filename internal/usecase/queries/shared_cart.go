package queries

import (
	"context"

	"grocery-pool/internal/domain/sharedcart"

	"github.com/google/uuid"
)

type SharedCartQueries interface {
	GetSharedCart(ctx context.Context, sharedCartID uuid.UUID) (*SharedCartView, error)
}

type SharedCartReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SharedCartRecord, error)
	Contributors(ctx context.Context, sharedCartID uuid.UUID) ([]ContributorView, error)
	Lines(ctx context.Context, sharedCartID uuid.UUID) ([]SharedCartLineRecord, error)
	Settlements(ctx context.Context, sharedCartID uuid.UUID) ([]SettlementJobSummary, error)
}

type sharedCartQueriesImpl struct {
	store SharedCartReadStore
}

func NewSharedCartQueries(store SharedCartReadStore) SharedCartQueries {
	return &sharedCartQueriesImpl{store: store}
}

func (q *sharedCartQueriesImpl) GetSharedCart(ctx context.Context, sharedCartID uuid.UUID) (*SharedCartView, error) {
	record, err := q.store.FindByID(ctx, sharedCartID)
	if err != nil {
		return nil, err
	}
	contributors, err := q.store.Contributors(ctx, sharedCartID)
	if err != nil {
		return nil, err
	}
	records, err := q.store.Lines(ctx, sharedCartID)
	if err != nil {
		return nil, err
	}
	settlements, err := q.store.Settlements(ctx, sharedCartID)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(records))
	lines := make([]sharedcart.Line, len(records))
	for i, r := range records {
		names[r.ItemID] = r.Name
		lines[i] = sharedcart.Line{
			ContributorID: r.ContributorID,
			ItemID:        r.ItemID,
			Quantity:      r.Quantity,
			PriceCents:    r.PriceCents,
		}
	}
	aggregated := sharedcart.AggregateLines(lines)

	view := &SharedCartView{
		ID:                  record.ID,
		SupermarketID:       record.SupermarketID,
		AddressID:           record.AddressID,
		OrderSlotID:         record.OrderSlotID,
		Status:              record.Status,
		SettlementProcessed: record.SettlementProcessed,
		Contributors:        contributors,
		Lines:               make([]SharedCartLineView, len(aggregated)),
		Total:               sharedcart.TotalAmount(aggregated),
		Settlements:         settlements,
	}
	for i, a := range aggregated {
		view.Lines[i] = SharedCartLineView{
			ItemID:     a.ItemID,
			Name:       names[a.ItemID],
			Quantity:   a.Quantity,
			PriceCents: a.PriceCents,
			Amount:     a.AmountCents,
		}
	}
	return view, nil
}
