package repository

import (
	"context"
	"time"

	"grocery-pool/internal/infra"
	sqlc "grocery-pool/internal/infra/sqlc/generated"
	"grocery-pool/internal/pkg/errs"
	"grocery-pool/internal/pkg/pgconv"
	"grocery-pool/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrIdempotencyKeyNotFound = errs.Kind("idempotency key not found", errs.ErrNotFound)

type IdempotencyQueries interface {
	ClaimIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimIdempotencyKeyParams) (uuid.UUID, error)
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
	CompleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteIdempotencyKeyParams) error
}

type IdempotencyRepository struct {
	queries IdempotencyQueries
	db      sqlc.DBTX
}

func NewIdempotencyRepository(queries IdempotencyQueries, db sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

// Claim blocks behind a concurrent claimant of the same key until it commits.
func (r *IdempotencyRepository) Claim(ctx context.Context, tx sqlc.DBTX, claim shared.IdempotencyClaim, now time.Time) (bool, error) {
	params := sqlc.ClaimIdempotencyKeyParams{
		Key:         claim.Key,
		UserID:      claim.UserID,
		Endpoint:    claim.Endpoint,
		RequestHash: claim.RequestHash,
		ExpiresAt:   pgconv.TimeToPgtype(claim.ExpiresAt),
		Now:         pgconv.TimeToPgtype(now),
	}

	if _, err := r.queries.ClaimIdempotencyKey(ctx, tx, params); err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to claim idempotency key", err)
	}
	return true, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, tx, sqlc.GetIdempotencyKeyParams{Key: key, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, notFound("idempotency key not found", err, ErrIdempotencyKeyNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:         row.Key,
		UserID:      row.UserID,
		Endpoint:    row.Endpoint,
		RequestHash: row.RequestHash,
		ResultID:    pgconv.UUIDPtrFromPgtype(row.ResultID),
		ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, tx sqlc.DBTX, key, userID, resultID uuid.UUID) error {
	params := sqlc.CompleteIdempotencyKeyParams{
		Key:      key,
		UserID:   userID,
		ResultID: pgconv.UUIDToPgtype(resultID),
	}
	if err := r.queries.CompleteIdempotencyKey(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	return nil
}
