package readstore

import (
	"context"

	"grocery-pool/internal/domain/cart"
	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/infra"
	sqlc "grocery-pool/internal/infra/sqlc/generated"
	"grocery-pool/internal/pkg/pgconv"
	"grocery-pool/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartViewQueries interface {
	GetCartByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Carts, error)
	ListCartLinesView(ctx context.Context, db sqlc.DBTX, cartID uuid.UUID) ([]sqlc.ListCartLinesViewRow, error)
}

type CartReadStore struct {
	queries CartViewQueries
	db      sqlc.DBTX
}

func NewCartReadStore(queries CartViewQueries, db sqlc.DBTX) *CartReadStore {
	return &CartReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID returns the cart header. Lines and balance are left empty.
func (r *CartReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CartView, error) {
	row, err := r.queries.GetCartByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, notFound("cart not found", err, cart.ErrCartNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cart by id", err)
	}
	return &queries.CartView{
		ID:            row.ID,
		UserID:        row.UserID,
		SupermarketID: row.SupermarketID,
		Status:        row.Status,
		Lines:         []queries.CartLineView{},
	}, nil
}

func (r *CartReadStore) Lines(ctx context.Context, cartID uuid.UUID) ([]queries.CartLineView, error) {
	rows, err := r.queries.ListCartLinesView(ctx, r.db, cartID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart lines", err)
	}

	lines := make([]queries.CartLineView, len(rows))
	for i, row := range rows {
		price := money.Cents(row.PriceCents)
		lines[i] = queries.CartLineView{
			ItemID:     row.ItemID,
			Name:       row.Name,
			PhotoURL:   row.PhotoUrl,
			Quantity:   int(row.Quantity),
			PriceCents: price,
			Amount:     price.Times(int(row.Quantity)),
		}
	}
	return lines, nil
}
