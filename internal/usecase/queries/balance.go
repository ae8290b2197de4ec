package queries

import (
	"context"
	"log/slog"

	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/usecase/shared"

	"github.com/google/uuid"
)

type BalanceReadStore interface {
	Balance(ctx context.Context, userID uuid.UUID) (money.Cents, error)
}

// cachedBalance serves display paths. Any cache failure falls back to the
// ledger sum.
func cachedBalance(ctx context.Context, cache shared.BalanceCache, store BalanceReadStore, userID uuid.UUID) (money.Cents, error) {
	if balance, err := cache.Get(ctx, userID); err == nil {
		return balance, nil
	}
	return refreshBalance(ctx, cache, store, userID)
}

// refreshBalance sums the ledger and writes it back unless a ledger write
// invalidated the entry in the meantime.
func refreshBalance(ctx context.Context, cache shared.BalanceCache, store BalanceReadStore, userID uuid.UUID) (money.Cents, error) {
	version, verErr := cache.Version(ctx, userID)

	balance, err := store.Balance(ctx, userID)
	if err != nil {
		return 0, err
	}
	if verErr != nil {
		slog.Warn("failed to read balance cache version", "user_id", userID, "error", verErr.Error())
		return balance, nil
	}
	if err := cache.SetIfVersion(ctx, userID, version, balance); err != nil {
		slog.Warn("failed to cache balance", "user_id", userID, "error", err.Error())
	}
	return balance, nil
}
