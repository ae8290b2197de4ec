package repository

import (
	"context"

	"grocery-pool/internal/domain/cart"
	"grocery-pool/internal/infra"
	"grocery-pool/internal/infra/repository/converter"
	sqlc "grocery-pool/internal/infra/sqlc/generated"
	"grocery-pool/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CartWriteQueries interface {
	CreateCart(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCartParams) (sqlc.Carts, error)
	GetCartByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Carts, error)
	GetActiveCartByUserForUpdate(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.Carts, error)
	UpdateCartStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCartStatusParams) (int64, error)
	ListCartItems(ctx context.Context, db sqlc.DBTX, cartID uuid.UUID) ([]sqlc.CartItems, error)
	GetCartItemForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCartItemForUpdateParams) (sqlc.CartItems, error)
	InsertCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCartItemParams) (sqlc.CartItems, error)
	UpdateCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCartItemParams) (int64, error)
	DeleteCartItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	DeleteCartItemsByCart(ctx context.Context, db sqlc.DBTX, cartID uuid.UUID) (int64, error)
}

type CartRepository struct {
	queries CartWriteQueries
	db      sqlc.DBTX
}

func NewCartRepository(queries CartWriteQueries, db sqlc.DBTX) *CartRepository {
	return &CartRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CartRepository) Create(ctx context.Context, tx sqlc.DBTX, c *cart.Cart) error {
	if _, err := r.queries.CreateCart(ctx, tx, converter.CartToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create cart", err)
	}
	return nil
}

func (r *CartRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*cart.Cart, error) {
	row, err := r.queries.GetCartByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, notFound("cart not found", err, cart.ErrCartNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock cart", err)
	}
	return converter.CartFromRow(row)
}

func (r *CartRepository) ActiveByUserForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*cart.Cart, error) {
	row, err := r.queries.GetActiveCartByUserForUpdate(ctx, tx, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to lock active cart", err)
	}
	return converter.CartFromRow(row)
}

func (r *CartRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, c *cart.Cart) error {
	rows, err := r.queries.UpdateCartStatus(ctx, tx, sqlc.UpdateCartStatusParams{ID: c.ID(), Status: c.Status().String()})
	if err != nil {
		return infra.WrapRepoErr("failed to update cart status", err)
	}
	if rows == 0 {
		return notFound("cart not found", nil, cart.ErrCartNotFound)
	}
	return nil
}

func (r *CartRepository) Lines(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) ([]cart.Line, error) {
	rows, err := r.queries.ListCartItems(ctx, tx, cartID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}
	lines := make([]cart.Line, len(rows))
	for i, row := range rows {
		lines[i] = converter.CartLineFromRow(row)
	}
	return lines, nil
}

func (r *CartRepository) LineForUpdate(ctx context.Context, tx sqlc.DBTX, cartID, itemID uuid.UUID) (*cart.Line, error) {
	row, err := r.queries.GetCartItemForUpdate(ctx, tx, sqlc.GetCartItemForUpdateParams{CartID: cartID, ItemID: itemID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to lock cart item", err)
	}
	line := converter.CartLineFromRow(row)
	return &line, nil
}

func (r *CartRepository) InsertLine(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID, line cart.Line) error {
	params := sqlc.InsertCartItemParams{
		ID:         line.ID,
		CartID:     cartID,
		ItemID:     line.ItemID,
		Quantity:   int32(line.Quantity), // #nosec G115 -- quantities are small and validated
		PriceCents: line.PriceCents.Int64(),
	}
	if _, err := r.queries.InsertCartItem(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to insert cart item", err)
	}
	return nil
}

func (r *CartRepository) UpdateLine(ctx context.Context, tx sqlc.DBTX, line cart.Line) error {
	params := sqlc.UpdateCartItemParams{
		ID:         line.ID,
		Quantity:   int32(line.Quantity), // #nosec G115 -- quantities are small and validated
		PriceCents: line.PriceCents.Int64(),
	}
	rows, err := r.queries.UpdateCartItem(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update cart item", err)
	}
	if rows == 0 {
		return notFound("cart item not found", nil, cart.ErrLineNotFound)
	}
	return nil
}

func (r *CartRepository) DeleteLine(ctx context.Context, tx sqlc.DBTX, lineID uuid.UUID) error {
	rows, err := r.queries.DeleteCartItem(ctx, tx, lineID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete cart item", err)
	}
	if rows == 0 {
		return notFound("cart item not found", nil, cart.ErrLineNotFound)
	}
	return nil
}

func (r *CartRepository) DeleteLines(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) (int64, error) {
	rows, err := r.queries.DeleteCartItemsByCart(ctx, tx, cartID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete cart items", err)
	}
	return rows, nil
}
