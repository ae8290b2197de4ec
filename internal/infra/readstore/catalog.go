package readstore

import (
	"context"

	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/domain/slot"
	"grocery-pool/internal/infra"
	sqlc "grocery-pool/internal/infra/sqlc/generated"
	"grocery-pool/internal/pkg/pgconv"
	"grocery-pool/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	GetSupermarketByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Supermarkets, error)
	GetItemByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Items, error)
	GetAddressByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Addresses, error)
	GetOrderSlotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.OrderSlots, error)
	GetOrderSlotByLabel(ctx context.Context, db sqlc.DBTX, arg sqlc.GetOrderSlotByLabelParams) (sqlc.OrderSlots, error)
	ListOrderSlotsBySupermarket(ctx context.Context, db sqlc.DBTX, supermarketID uuid.UUID) ([]sqlc.OrderSlots, error)
}

// CatalogReadStore serves the reference data carts and orders point at.
type CatalogReadStore struct {
	queries CatalogQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) FindUser(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, notFound("user not found", err, queries.ErrUserNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user by id", err)
	}
	return &queries.UserView{ID: row.ID, Name: row.Name, Email: row.Email}, nil
}

func (r *CatalogReadStore) FindSupermarket(ctx context.Context, id uuid.UUID) (*queries.SupermarketView, error) {
	row, err := r.queries.GetSupermarketByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, notFound("supermarket not found", err, queries.ErrSupermarketNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get supermarket by id", err)
	}

	view := &queries.SupermarketView{ID: row.ID, Name: row.Name}
	if fee := pgconv.Int64PtrFromPgtype(row.DeliveryFeeCents); fee != nil {
		c := money.Cents(*fee)
		view.DeliveryFee = &c
	}
	return view, nil
}

func (r *CatalogReadStore) FindItem(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row, err := r.queries.GetItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, notFound("item not found", err, queries.ErrItemNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get item by id", err)
	}
	return &queries.ItemView{
		ID:            row.ID,
		SupermarketID: row.SupermarketID,
		Name:          row.Name,
		PhotoURL:      row.PhotoUrl,
		PriceCents:    money.Cents(row.PriceCents),
	}, nil
}

func (r *CatalogReadStore) FindAddress(ctx context.Context, id uuid.UUID) (*queries.AddressView, error) {
	row, err := r.queries.GetAddressByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, notFound("address not found", err, queries.ErrAddressNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get address by id", err)
	}
	return &queries.AddressView{ID: row.ID, UserID: row.UserID, BuildingName: row.BuildingName}, nil
}

func (r *CatalogReadStore) FindOrderSlot(ctx context.Context, id uuid.UUID) (*queries.OrderSlotView, error) {
	row, err := r.queries.GetOrderSlotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, notFound("order slot not found", err, slot.ErrOrderSlotNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order slot by id", err)
	}
	return toOrderSlotView(row), nil
}

// FindOrderSlotByLabel expects label in normalized form.
func (r *CatalogReadStore) FindOrderSlotByLabel(ctx context.Context, supermarketID uuid.UUID, label string) (*queries.OrderSlotView, error) {
	row, err := r.queries.GetOrderSlotByLabel(ctx, r.db, sqlc.GetOrderSlotByLabelParams{
		SupermarketID: supermarketID,
		Label:         label,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, notFound("order slot not found", err, slot.ErrOrderSlotNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order slot by label", err)
	}
	return toOrderSlotView(row), nil
}

func (r *CatalogReadStore) ListOrderSlots(ctx context.Context, supermarketID uuid.UUID) ([]queries.OrderSlotView, error) {
	rows, err := r.queries.ListOrderSlotsBySupermarket(ctx, r.db, supermarketID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order slots", err)
	}
	views := make([]queries.OrderSlotView, len(rows))
	for i, row := range rows {
		views[i] = *toOrderSlotView(row)
	}
	return views, nil
}

func toOrderSlotView(row sqlc.OrderSlots) *queries.OrderSlotView {
	return &queries.OrderSlotView{
		ID:            row.ID,
		SupermarketID: row.SupermarketID,
		Label:         row.Label,
	}
}
