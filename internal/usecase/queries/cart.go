package queries

import (
	"context"

	"grocery-pool/internal/domain/cart"
	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartQueries interface {
	GetCart(ctx context.Context, cartID uuid.UUID) (*CartView, error)
}

type CartReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CartView, error)
	Lines(ctx context.Context, cartID uuid.UUID) ([]CartLineView, error)
}

type cartQueriesImpl struct {
	carts   CartReadStore
	wallets BalanceReadStore
	cache   shared.BalanceCache
}

func NewCartQueries(carts CartReadStore, wallets BalanceReadStore, cache shared.BalanceCache) CartQueries {
	return &cartQueriesImpl{
		carts:   carts,
		wallets: wallets,
		cache:   cache,
	}
}

// GetCart only shows active carts. The balance may lag a just-committed
// payment by one cache round-trip.
func (q *cartQueriesImpl) GetCart(ctx context.Context, cartID uuid.UUID) (*CartView, error) {
	view, err := q.carts.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if view.Status != cart.StatusActive.String() {
		return nil, cart.ErrCartInactive
	}

	lines, err := q.carts.Lines(ctx, cartID)
	if err != nil {
		return nil, err
	}
	view.Lines = lines

	amounts := make([]money.Cents, len(lines))
	for i, l := range lines {
		amounts[i] = l.Amount
	}
	view.Total = money.Sum(amounts...)

	balance, err := cachedBalance(ctx, q.cache, q.wallets, view.UserID)
	if err != nil {
		return nil, err
	}
	view.WalletBalance = balance
	return view, nil
}
