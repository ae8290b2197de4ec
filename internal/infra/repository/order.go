package repository

import (
	"context"

	"grocery-pool/internal/domain/order"
	"grocery-pool/internal/infra"
	"grocery-pool/internal/infra/repository/converter"
	sqlc "grocery-pool/internal/infra/sqlc/generated"
	"grocery-pool/internal/pkg/errs"
	"grocery-pool/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) (sqlc.Orders, error)
	GetOrderByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	GetLiveOrderByCartID(ctx context.Context, db sqlc.DBTX, cartID pgtype.UUID) (sqlc.Orders, error)
	GetLiveOrderBySharedCartIDForUpdate(ctx context.Context, db sqlc.DBTX, sharedCartID pgtype.UUID) (sqlc.Orders, error)
	UpdateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderParams) (int64, error)
	InsertOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOrderItemParams) error
	DeleteOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (int64, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the order and its lines. A second live order for the same
// cart trips the partial unique index and surfaces as order.ErrOrderExists.
func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order, lines []order.Line) error {
	if _, err := r.queries.CreateOrder(ctx, tx, converter.OrderToCreateParams(o)); err != nil {
		wrapped := infra.WrapRepoErr("failed to create order", err)
		if infra.IsKind(wrapped, infra.KindDuplicateKey) {
			return errs.Mark(wrapped, order.ErrOrderExists)
		}
		return wrapped
	}
	return r.insertLines(ctx, tx, o.ID(), lines)
}

func (r *OrderRepository) insertLines(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID, lines []order.Line) error {
	for _, l := range lines {
		err := r.queries.InsertOrderItem(ctx, tx, sqlc.InsertOrderItemParams{
			ID:         uuid.New(),
			OrderID:    orderID,
			ItemID:     l.ItemID,
			Quantity:   int32(l.Quantity), // #nosec G115 -- quantities are small and validated
			PriceCents: l.PriceCents.Int64(),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to insert order item", err)
		}
	}
	return nil
}

func (r *OrderRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, notFound("order not found", err, order.ErrOrderNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}
	return converter.OrderFromRow(row)
}

func (r *OrderRepository) LiveByCart(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetLiveOrderByCartID(ctx, tx, pgconv.UUIDToPgtype(cartID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find order for cart", err)
	}
	return converter.OrderFromRow(row)
}

func (r *OrderRepository) LiveBySharedCartForUpdate(ctx context.Context, tx sqlc.DBTX, sharedCartID uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetLiveOrderBySharedCartIDForUpdate(ctx, tx, pgconv.UUIDToPgtype(sharedCartID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to lock order for shared cart", err)
	}
	return converter.OrderFromRow(row)
}

func (r *OrderRepository) Update(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	rows, err := r.queries.UpdateOrder(ctx, tx, sqlc.UpdateOrderParams{
		ID:               o.ID(),
		UserID:           o.UserID(),
		DeliveryFeeCents: o.DeliveryFee().Int64(),
		TotalAmountCents: o.Total().Int64(),
		Status:           o.Status().String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update order", err)
	}
	if rows == 0 {
		return notFound("order not found", nil, order.ErrOrderNotFound)
	}
	return nil
}

func (r *OrderRepository) ReplaceLines(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID, lines []order.Line) error {
	if _, err := r.queries.DeleteOrderItems(ctx, tx, orderID); err != nil {
		return infra.WrapRepoErr("failed to clear order items", err)
	}
	return r.insertLines(ctx, tx, orderID, lines)
}

func (r *OrderRepository) Lines(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) ([]order.Line, error) {
	rows, err := r.queries.ListOrderItems(ctx, tx, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	out := make([]order.Line, len(rows))
	for i, row := range rows {
		out[i] = converter.OrderLineFromRow(row)
	}
	return out, nil
}
