package readstore

import (
	"context"

	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/domain/order"
	"grocery-pool/internal/infra"
	sqlc "grocery-pool/internal/infra/sqlc/generated"
	"grocery-pool/internal/pkg/pgconv"
	"grocery-pool/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderViewQueries interface {
	GetOrderView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetOrderViewRow, error)
	ListOrderLinesView(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.ListOrderLinesViewRow, error)
	ListOrdersByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersByUserParams) ([]sqlc.ListOrdersByUserRow, error)
}

type OrderReadStore struct {
	queries OrderViewQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderViewQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, notFound("order not found", err, order.ErrOrderNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order view", err)
	}

	lineRows, err := r.queries.ListOrderLinesView(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order lines", err)
	}

	view := &queries.OrderView{
		ID:              row.ID,
		UserID:          row.UserID,
		SupermarketID:   row.SupermarketID,
		SupermarketName: row.SupermarketName,
		AddressID:       row.AddressID,
		BuildingName:    row.BuildingName,
		SlotLabel:       row.SlotLabel,
		DeliveryFee:     money.Cents(row.DeliveryFeeCents),
		Total:           money.Cents(row.TotalAmountCents),
		Status:          row.Status,
		CartID:          pgconv.UUIDPtrFromPgtype(row.CartID),
		SharedCartID:    pgconv.UUIDPtrFromPgtype(row.SharedCartID),
		Lines:           make([]queries.OrderLineView, len(lineRows)),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	for i, l := range lineRows {
		price := money.Cents(l.PriceCents)
		view.Lines[i] = queries.OrderLineView{
			ItemID:     l.ItemID,
			Name:       l.Name,
			PhotoURL:   l.PhotoUrl,
			Quantity:   int(l.Quantity),
			PriceCents: price,
			Amount:     price.Times(int(l.Quantity)),
		}
	}
	return view, nil
}

func (r *OrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]queries.OrderListItem, error) {
	rows, err := r.queries.ListOrdersByUser(ctx, r.db, sqlc.ListOrdersByUserParams{UserID: userID, Limit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by user", err)
	}

	items := make([]queries.OrderListItem, len(rows))
	for i, row := range rows {
		items[i] = queries.OrderListItem{
			ID:              row.ID,
			SupermarketID:   row.SupermarketID,
			SupermarketName: row.SupermarketName,
			SlotLabel:       row.SlotLabel,
			Total:           money.Cents(row.TotalAmountCents),
			Status:          row.Status,
			Shared:          row.SharedCartID.Valid,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return items, nil
}
