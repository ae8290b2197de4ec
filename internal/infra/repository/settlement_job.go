package repository

import (
	"context"
	"time"

	"grocery-pool/internal/infra"
	sqlc "grocery-pool/internal/infra/sqlc/generated"
	"grocery-pool/internal/pkg/pgconv"
	"grocery-pool/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	jobStatusDone    = "done"
	jobStatusSkipped = "skipped"
	jobStatusFailed  = "failed"
)

type SettlementJobWriteQueries interface {
	CreateSettlementJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSettlementJobParams) (sqlc.SettlementJobs, error)
	ClaimDueSettlementJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueSettlementJobsParams) ([]sqlc.SettlementJobs, error)
	UpdateSettlementJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSettlementJobStatusParams) (int64, error)
	RequeueSettlementJobs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) (int64, error)
}

type SettlementJobRepository struct {
	queries SettlementJobWriteQueries
	db      sqlc.DBTX
}

func NewSettlementJobRepository(queries SettlementJobWriteQueries, db sqlc.DBTX) *SettlementJobRepository {
	return &SettlementJobRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SettlementJobRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, sharedCartID uuid.UUID, runAt time.Time) (uuid.UUID, error) {
	params := sqlc.CreateSettlementJobParams{
		ID:           uuid.New(),
		SharedCartID: sharedCartID,
		RunAt:        pgconv.TimeToPgtype(runAt),
	}

	row, err := r.queries.CreateSettlementJob(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create settlement job", err)
	}

	return row.ID, nil
}

// ClaimDue moves up to limit due jobs to running. Rows locked by another
// worker are skipped.
func (r *SettlementJobRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]shared.SettlementJob, error) {
	rows, err := r.queries.ClaimDueSettlementJobs(ctx, tx, sqlc.ClaimDueSettlementJobsParams{
		RunAt: pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim settlement jobs", err)
	}

	jobs := make([]shared.SettlementJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.SettlementJob{
			ID:           row.ID,
			SharedCartID: row.SharedCartID,
			RunAt:        pgconv.TimeFromPgtype(row.RunAt),
			Attempts:     int(row.Attempts),
		}
	}
	return jobs, nil
}

func (r *SettlementJobRepository) MarkDone(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error {
	return r.updateStatus(ctx, tx, jobID, jobStatusDone, nil)
}

func (r *SettlementJobRepository) MarkSkipped(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, reason string) error {
	return r.updateStatus(ctx, tx, jobID, jobStatusSkipped, &reason)
}

func (r *SettlementJobRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, cause string) error {
	return r.updateStatus(ctx, tx, jobID, jobStatusFailed, &cause)
}

// Requeue hands claimed jobs back to the queue without spending an attempt.
// Jobs that already left running are untouched.
func (r *SettlementJobRepository) Requeue(ctx context.Context, tx sqlc.DBTX, jobIDs []uuid.UUID) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	n, err := r.queries.RequeueSettlementJobs(ctx, tx, jobIDs)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to requeue settlement jobs", err)
	}
	return n, nil
}

func (r *SettlementJobRepository) updateStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string) error {
	params := sqlc.UpdateSettlementJobStatusParams{
		ID:     jobID,
		Status: status,
	}

	if lastError != nil {
		params.LastError = pgtype.Text{String: *lastError, Valid: true}
	} else {
		params.LastError = pgtype.Text{Valid: false}
	}

	rows, err := r.queries.UpdateSettlementJobStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update settlement job status", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("settlement job not found", nil, infra.KindNotFound)
	}

	return nil
}
