package repository

import (
	"context"

	"grocery-pool/internal/domain/ledger"
	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/infra"
	"grocery-pool/internal/infra/repository/converter"
	sqlc "grocery-pool/internal/infra/sqlc/generated"
	"grocery-pool/internal/pkg/errs"
	"grocery-pool/internal/pkg/pgconv"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.Kind("user not found", errs.ErrNotFound)

type LedgerWriteQueries interface {
	LockUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	InsertLedgerEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertLedgerEntryParams) (sqlc.WalletLedgerEntries, error)
	SumLedgerByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type LedgerRepository struct {
	queries LedgerWriteQueries
	db      sqlc.DBTX
}

func NewLedgerRepository(queries LedgerWriteQueries, db sqlc.DBTX) *LedgerRepository {
	return &LedgerRepository{
		queries: queries,
		db:      db,
	}
}

// LockUser serializes balance checks for one user until the transaction ends.
func (r *LedgerRepository) LockUser(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	if _, err := r.queries.LockUser(ctx, tx, userID); err != nil {
		if pgconv.IsNoRows(err) {
			return notFound("user not found", err, ErrUserNotFound)
		}
		return infra.WrapRepoErr("failed to lock user", err)
	}
	return nil
}

func (r *LedgerRepository) Append(ctx context.Context, tx sqlc.DBTX, entry *ledger.Entry) error {
	if _, err := r.queries.InsertLedgerEntry(ctx, tx, converter.LedgerEntryToInsertParams(entry)); err != nil {
		return infra.WrapRepoErr("failed to append ledger entry", err)
	}
	return nil
}

func (r *LedgerRepository) Balance(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (money.Cents, error) {
	sum, err := r.queries.SumLedgerByUser(ctx, tx, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum ledger", err)
	}
	return money.Cents(sum), nil
}
