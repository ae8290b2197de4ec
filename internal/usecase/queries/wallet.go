package queries

import (
	"context"

	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/usecase/shared"

	"github.com/google/uuid"
)

type WalletQueries interface {
	GetWallet(ctx context.Context, userID uuid.UUID, limit *int) (*WalletView, error)
}

type WalletReadStore interface {
	Balance(ctx context.Context, userID uuid.UUID) (money.Cents, error)
	History(ctx context.Context, userID uuid.UUID, limit int32) ([]LedgerEntryView, error)
}

type walletQueriesImpl struct {
	wallets WalletReadStore
	users   UserReadStore
	cache   shared.BalanceCache
}

func NewWalletQueries(wallets WalletReadStore, users UserReadStore, cache shared.BalanceCache) WalletQueries {
	return &walletQueriesImpl{
		wallets: wallets,
		users:   users,
		cache:   cache,
	}
}

// GetWallet reads the balance from the ledger and refreshes the cache, so the
// wallet page is always exact.
func (q *walletQueriesImpl) GetWallet(ctx context.Context, userID uuid.UUID, limit *int) (*WalletView, error) {
	if _, err := q.users.FindUser(ctx, userID); err != nil {
		return nil, err
	}

	balance, err := refreshBalance(ctx, q.cache, q.wallets, userID)
	if err != nil {
		return nil, err
	}

	entries, err := q.wallets.History(ctx, userID, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	return &WalletView{UserID: userID, Balance: balance, Entries: entries}, nil
}
