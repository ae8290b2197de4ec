package readstore

import (
	"context"

	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/infra"
	sqlc "grocery-pool/internal/infra/sqlc/generated"
	"grocery-pool/internal/pkg/pgconv"
	"grocery-pool/internal/usecase/queries"

	"github.com/google/uuid"
)

type WalletQueries interface {
	SumLedgerByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
	ListLedgerEntriesByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLedgerEntriesByUserParams) ([]sqlc.WalletLedgerEntries, error)
}

type WalletReadStore struct {
	queries WalletQueries
	db      sqlc.DBTX
}

func NewWalletReadStore(queries WalletQueries, db sqlc.DBTX) *WalletReadStore {
	return &WalletReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *WalletReadStore) Balance(ctx context.Context, userID uuid.UUID) (money.Cents, error) {
	sum, err := r.queries.SumLedgerByUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum ledger", err)
	}
	return money.Cents(sum), nil
}

// History lists entries newest first.
func (r *WalletReadStore) History(ctx context.Context, userID uuid.UUID, limit int32) ([]queries.LedgerEntryView, error) {
	rows, err := r.queries.ListLedgerEntriesByUser(ctx, r.db, sqlc.ListLedgerEntriesByUserParams{UserID: userID, Limit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ledger entries", err)
	}

	entries := make([]queries.LedgerEntryView, len(rows))
	for i, row := range rows {
		entries[i] = queries.LedgerEntryView{
			ID:           row.ID,
			Amount:       money.Cents(row.AmountCents),
			Kind:         row.Kind,
			OrderID:      pgconv.UUIDPtrFromPgtype(row.OrderID),
			SharedCartID: pgconv.UUIDPtrFromPgtype(row.SharedCartID),
			Note:         row.Note,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return entries, nil
}
