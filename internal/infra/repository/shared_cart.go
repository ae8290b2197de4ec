package repository

import (
	"context"

	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/domain/sharedcart"
	"grocery-pool/internal/infra"
	"grocery-pool/internal/infra/repository/converter"
	sqlc "grocery-pool/internal/infra/sqlc/generated"
	"grocery-pool/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SharedCartWriteQueries interface {
	InsertOpenSharedCart(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOpenSharedCartParams) (uuid.UUID, error)
	GetOpenSharedCartForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetOpenSharedCartForUpdateParams) (sqlc.SharedCarts, error)
	GetSharedCartByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.SharedCarts, error)
	CloseSharedCart(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	InsertContributor(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertContributorParams) (sqlc.SharedCartContributors, error)
	GetContributor(ctx context.Context, db sqlc.DBTX, arg sqlc.GetContributorParams) (sqlc.SharedCartContributors, error)
	ListContributors(ctx context.Context, db sqlc.DBTX, sharedCartID uuid.UUID) ([]sqlc.SharedCartContributors, error)
	UpdateContributorShare(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateContributorShareParams) (int64, error)
	InsertSharedCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSharedCartItemParams) error
	ListSharedCartItems(ctx context.Context, db sqlc.DBTX, sharedCartID uuid.UUID) ([]sqlc.SharedCartItems, error)
}

type SharedCartRepository struct {
	queries SharedCartWriteQueries
	db      sqlc.DBTX
}

func NewSharedCartRepository(queries SharedCartWriteQueries, db sqlc.DBTX) *SharedCartRepository {
	return &SharedCartRepository{
		queries: queries,
		db:      db,
	}
}

// InsertOpen relies on the partial unique index over open carts. A losing
// concurrent creator gets created=false and should lock the winner.
func (r *SharedCartRepository) InsertOpen(ctx context.Context, tx sqlc.DBTX, sc *sharedcart.SharedCart) (bool, error) {
	key := sc.Key()
	_, err := r.queries.InsertOpenSharedCart(ctx, tx, sqlc.InsertOpenSharedCartParams{
		ID:            sc.ID(),
		SupermarketID: key.SupermarketID,
		AddressID:     key.AddressID,
		OrderSlotID:   key.OrderSlotID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to insert shared cart", err)
	}
	return true, nil
}

func (r *SharedCartRepository) OpenForUpdate(ctx context.Context, tx sqlc.DBTX, key sharedcart.Key) (*sharedcart.SharedCart, error) {
	row, err := r.queries.GetOpenSharedCartForUpdate(ctx, tx, sqlc.GetOpenSharedCartForUpdateParams{
		SupermarketID: key.SupermarketID,
		AddressID:     key.AddressID,
		OrderSlotID:   key.OrderSlotID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to lock open shared cart", err)
	}
	return converter.SharedCartFromRow(row)
}

func (r *SharedCartRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*sharedcart.SharedCart, error) {
	row, err := r.queries.GetSharedCartByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, notFound("shared cart not found", err, sharedcart.ErrSharedCartNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock shared cart", err)
	}
	return converter.SharedCartFromRow(row)
}

func (r *SharedCartRepository) Close(ctx context.Context, tx sqlc.DBTX, sc *sharedcart.SharedCart) error {
	rows, err := r.queries.CloseSharedCart(ctx, tx, sc.ID())
	if err != nil {
		return infra.WrapRepoErr("failed to close shared cart", err)
	}
	if rows == 0 {
		return sharedcart.ErrSharedCartClosed
	}
	return nil
}

func (r *SharedCartRepository) AddContributor(ctx context.Context, tx sqlc.DBTX, sharedCartID, userID uuid.UUID, contribution money.Cents) (bool, error) {
	_, err := r.queries.InsertContributor(ctx, tx, sqlc.InsertContributorParams{
		ID:                           uuid.New(),
		SharedCartID:                 sharedCartID,
		UserID:                       userID,
		DeliveryFeeContributionCents: contribution.Int64(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to enroll contributor", err)
	}
	return true, nil
}

func (r *SharedCartRepository) Contributor(ctx context.Context, tx sqlc.DBTX, sharedCartID, userID uuid.UUID) (*sharedcart.Contributor, error) {
	row, err := r.queries.GetContributor(ctx, tx, sqlc.GetContributorParams{SharedCartID: sharedCartID, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find contributor", err)
	}
	c := converter.ContributorFromRow(row)
	return &c, nil
}

func (r *SharedCartRepository) Contributors(ctx context.Context, tx sqlc.DBTX, sharedCartID uuid.UUID) ([]sharedcart.Contributor, error) {
	rows, err := r.queries.ListContributors(ctx, tx, sharedCartID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contributors", err)
	}
	out := make([]sharedcart.Contributor, len(rows))
	for i, row := range rows {
		out[i] = converter.ContributorFromRow(row)
	}
	return out, nil
}

func (r *SharedCartRepository) UpdateShare(ctx context.Context, tx sqlc.DBTX, contributorID uuid.UUID, contribution, charged money.Cents) error {
	rows, err := r.queries.UpdateContributorShare(ctx, tx, sqlc.UpdateContributorShareParams{
		ID:                           contributorID,
		DeliveryFeeContributionCents: contribution.Int64(),
		ChargedCents:                 charged.Int64(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update contributor share", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("contributor not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SharedCartRepository) AddLine(ctx context.Context, tx sqlc.DBTX, sharedCartID uuid.UUID, line sharedcart.Line) error {
	err := r.queries.InsertSharedCartItem(ctx, tx, sqlc.InsertSharedCartItemParams{
		ID:            uuid.New(),
		SharedCartID:  sharedCartID,
		ContributorID: line.ContributorID,
		ItemID:        line.ItemID,
		Quantity:      int32(line.Quantity), // #nosec G115 -- quantities are small and validated
		PriceCents:    line.PriceCents.Int64(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to insert shared cart item", err)
	}
	return nil
}

func (r *SharedCartRepository) Lines(ctx context.Context, tx sqlc.DBTX, sharedCartID uuid.UUID) ([]sharedcart.Line, error) {
	rows, err := r.queries.ListSharedCartItems(ctx, tx, sharedCartID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shared cart items", err)
	}
	out := make([]sharedcart.Line, len(rows))
	for i, row := range rows {
		out[i] = converter.SharedLineFromRow(row)
	}
	return out, nil
}
