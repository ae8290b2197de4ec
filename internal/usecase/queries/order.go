package queries

import (
	"context"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type OrderQueries interface {
	GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderView, error)
	ListOrders(ctx context.Context, userID uuid.UUID, limit *int) ([]OrderListItem, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]OrderListItem, error)
}

type UserReadStore interface {
	FindUser(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type orderQueriesImpl struct {
	orders OrderReadStore
	users  UserReadStore
}

func NewOrderQueries(orders OrderReadStore, users UserReadStore) OrderQueries {
	return &orderQueriesImpl{orders: orders, users: users}
}

func (q *orderQueriesImpl) GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderView, error) {
	return q.orders.FindByID(ctx, orderID)
}

func (q *orderQueriesImpl) ListOrders(ctx context.Context, userID uuid.UUID, limit *int) ([]OrderListItem, error) {
	if _, err := q.users.FindUser(ctx, userID); err != nil {
		return nil, err
	}
	return q.orders.ListByUser(ctx, userID, clampLimit(limit))
}

func clampLimit(limit *int) int32 {
	if limit == nil {
		return defaultListLimit
	}
	switch n := *limit; {
	case n < 1:
		return defaultListLimit
	case n > maxListLimit:
		return maxListLimit
	default:
		return int32(n) // #nosec G115 -- bounded by maxListLimit
	}
}
