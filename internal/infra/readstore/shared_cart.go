package readstore

import (
	"context"

	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/domain/sharedcart"
	"grocery-pool/internal/infra"
	sqlc "grocery-pool/internal/infra/sqlc/generated"
	"grocery-pool/internal/pkg/pgconv"
	"grocery-pool/internal/usecase/queries"

	"github.com/google/uuid"
)

type SharedCartViewQueries interface {
	GetSharedCartByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.SharedCarts, error)
	ListContributors(ctx context.Context, db sqlc.DBTX, sharedCartID uuid.UUID) ([]sqlc.SharedCartContributors, error)
	ListSharedCartLinesView(ctx context.Context, db sqlc.DBTX, sharedCartID uuid.UUID) ([]sqlc.ListSharedCartLinesViewRow, error)
	ListSettlementJobsBySharedCart(ctx context.Context, db sqlc.DBTX, sharedCartID uuid.UUID) ([]sqlc.SettlementJobs, error)
}

type SharedCartReadStore struct {
	queries SharedCartViewQueries
	db      sqlc.DBTX
}

func NewSharedCartReadStore(queries SharedCartViewQueries, db sqlc.DBTX) *SharedCartReadStore {
	return &SharedCartReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SharedCartReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SharedCartRecord, error) {
	row, err := r.queries.GetSharedCartByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, notFound("shared cart not found", err, sharedcart.ErrSharedCartNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get shared cart by id", err)
	}
	return &queries.SharedCartRecord{
		ID:                  row.ID,
		SupermarketID:       row.SupermarketID,
		AddressID:           row.AddressID,
		OrderSlotID:         row.OrderSlotID,
		Status:              row.Status,
		SettlementProcessed: row.SettlementProcessed,
	}, nil
}

// Contributors come back in join order.
func (r *SharedCartReadStore) Contributors(ctx context.Context, sharedCartID uuid.UUID) ([]queries.ContributorView, error) {
	rows, err := r.queries.ListContributors(ctx, r.db, sharedCartID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contributors", err)
	}
	views := make([]queries.ContributorView, len(rows))
	for i, row := range rows {
		views[i] = queries.ContributorView{
			UserID:       row.UserID,
			Contribution: money.Cents(row.DeliveryFeeContributionCents),
			Charged:      money.Cents(row.ChargedCents),
			JoinedAt:     pgconv.TimeFromPgtype(row.JoinedAt),
		}
	}
	return views, nil
}

func (r *SharedCartReadStore) Lines(ctx context.Context, sharedCartID uuid.UUID) ([]queries.SharedCartLineRecord, error) {
	rows, err := r.queries.ListSharedCartLinesView(ctx, r.db, sharedCartID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shared cart lines", err)
	}
	records := make([]queries.SharedCartLineRecord, len(rows))
	for i, row := range rows {
		records[i] = queries.SharedCartLineRecord{
			ContributorID: row.ContributorID,
			ItemID:        row.ItemID,
			Name:          row.Name,
			Quantity:      int(row.Quantity),
			PriceCents:    money.Cents(row.PriceCents),
		}
	}
	return records, nil
}

func (r *SharedCartReadStore) Settlements(ctx context.Context, sharedCartID uuid.UUID) ([]queries.SettlementJobSummary, error) {
	rows, err := r.queries.ListSettlementJobsBySharedCart(ctx, r.db, sharedCartID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list settlement jobs", err)
	}
	jobs := make([]queries.SettlementJobSummary, len(rows))
	for i, row := range rows {
		jobs[i] = queries.SettlementJobSummary{
			ID:        row.ID,
			RunAt:     pgconv.TimeFromPgtype(row.RunAt),
			Status:    row.Status,
			Attempts:  int(row.Attempts),
			LastError: pgconv.StringPtrFromPgtype(row.LastError),
		}
	}
	return jobs, nil
}
