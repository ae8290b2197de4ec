package repository

import (
	"context"

	"grocery-pool/internal/domain/inventory"
	"grocery-pool/internal/infra"
	sqlc "grocery-pool/internal/infra/sqlc/generated"
	"grocery-pool/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type StockWriteQueries interface {
	GetStockLevelForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetStockLevelForUpdateParams) (sqlc.StockLevels, error)
	SetStockQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.SetStockQuantityParams) (int64, error)
}

type StockRepository struct {
	queries StockWriteQueries
	db      sqlc.DBTX
}

func NewStockRepository(queries StockWriteQueries, db sqlc.DBTX) *StockRepository {
	return &StockRepository{
		queries: queries,
		db:      db,
	}
}

// LockLevel takes a row lock that is held until the surrounding transaction ends.
func (r *StockRepository) LockLevel(ctx context.Context, tx sqlc.DBTX, itemID, supermarketID uuid.UUID) (*inventory.StockLevel, error) {
	row, err := r.queries.GetStockLevelForUpdate(ctx, tx, sqlc.GetStockLevelForUpdateParams{ItemID: itemID, SupermarketID: supermarketID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, notFound("stock level not found", err, inventory.ErrStockNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock stock level", err)
	}
	return inventory.ReconstructStockLevel(row.ItemID, row.SupermarketID, int(row.Quantity)), nil
}

func (r *StockRepository) Save(ctx context.Context, tx sqlc.DBTX, level *inventory.StockLevel) error {
	params := sqlc.SetStockQuantityParams{
		ItemID:        level.ItemID(),
		SupermarketID: level.SupermarketID(),
		Quantity:      int32(level.Quantity()), // #nosec G115 -- stock fits in INTEGER column
	}
	rows, err := r.queries.SetStockQuantity(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update stock level", err)
	}
	if rows == 0 {
		return notFound("stock level not found", nil, inventory.ErrStockNotFound)
	}
	return nil
}
