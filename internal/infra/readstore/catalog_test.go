//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/domain/slot"
	"grocery-pool/internal/infra"
	sqlc "grocery-pool/internal/infra/sqlc/generated"
	"grocery-pool/internal/pkg/errs"
	"grocery-pool/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogQueries struct {
	mock.Mock
}

func (m *MockCatalogQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockCatalogQueries) GetSupermarketByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Supermarkets, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Supermarkets), args.Error(1)
}

func (m *MockCatalogQueries) GetItemByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Items, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Items), args.Error(1)
}

func (m *MockCatalogQueries) GetAddressByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Addresses, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Addresses), args.Error(1)
}

func (m *MockCatalogQueries) GetOrderSlotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.OrderSlots, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.OrderSlots), args.Error(1)
}

func (m *MockCatalogQueries) GetOrderSlotByLabel(ctx context.Context, db sqlc.DBTX, arg sqlc.GetOrderSlotByLabelParams) (sqlc.OrderSlots, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.OrderSlots), args.Error(1)
}

func (m *MockCatalogQueries) ListOrderSlotsBySupermarket(ctx context.Context, db sqlc.DBTX, supermarketID uuid.UUID) ([]sqlc.OrderSlots, error) {
	args := m.Called(ctx, db, supermarketID)
	return args.Get(0).([]sqlc.OrderSlots), args.Error(1)
}

func TestFindSupermarket(t *testing.T) {
	withFee := sqlc.Supermarkets{ID: uuid.New(), Name: "Fresh Mart", DeliveryFeeCents: pgtype.Int8{Int64: 500, Valid: true}}
	withoutFee := sqlc.Supermarkets{ID: uuid.New(), Name: "Corner Shop"}

	tests := []struct {
		name       string
		id         uuid.UUID
		mockReturn sqlc.Supermarkets
		mockError  error
		wantFee    *money.Cents
		wantError  error
	}{
		{
			name:       "success - fee configured",
			id:         withFee.ID,
			mockReturn: withFee,
			wantFee:    func() *money.Cents { c := money.Cents(500); return &c }(),
		},
		{
			name:       "success - fee not set",
			id:         withoutFee.ID,
			mockReturn: withoutFee,
		},
		{
			name:      "error - unknown supermarket",
			id:        uuid.New(),
			mockError: pgx.ErrNoRows,
			wantError: queries.ErrSupermarketNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			mockQueries := new(MockCatalogQueries)
			mockQueries.On("GetSupermarketByID", ctx, nil, tt.id).Return(tt.mockReturn, tt.mockError)

			store := NewCatalogReadStore(mockQueries, nil)
			view, err := store.FindSupermarket(ctx, tt.id)

			if tt.wantError != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantError))
				assert.True(t, infra.IsKind(err, infra.KindNotFound))
				assert.Nil(t, view)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn.Name, view.Name)
				assert.Equal(t, tt.wantFee, view.DeliveryFee)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindOrderSlotByLabel(t *testing.T) {
	ctx := context.Background()
	supermarketID := uuid.New()
	slotRow := sqlc.OrderSlots{ID: uuid.New(), SupermarketID: supermarketID, Label: "6am"}

	mockQueries := new(MockCatalogQueries)
	mockQueries.On("GetOrderSlotByLabel", ctx, nil, sqlc.GetOrderSlotByLabelParams{SupermarketID: supermarketID, Label: "6am"}).
		Return(slotRow, nil)
	mockQueries.On("GetOrderSlotByLabel", ctx, nil, sqlc.GetOrderSlotByLabelParams{SupermarketID: supermarketID, Label: "9pm"}).
		Return(sqlc.OrderSlots{}, sql.ErrNoRows)

	store := NewCatalogReadStore(mockQueries, nil)

	view, err := store.FindOrderSlotByLabel(ctx, supermarketID, "6am")
	require.NoError(t, err)
	assert.Equal(t, slotRow.ID, view.ID)

	_, err = store.FindOrderSlotByLabel(ctx, supermarketID, "9pm")
	require.Error(t, err)
	assert.True(t, errs.Is(err, slot.ErrOrderSlotNotFound))
	assert.True(t, errs.Is(err, errs.ErrNotFound))

	mockQueries.AssertExpectations(t)
}

func TestFindItem(t *testing.T) {
	ctx := context.Background()
	row := sqlc.Items{ID: uuid.New(), SupermarketID: uuid.New(), Name: "Milk", PhotoUrl: "milk.png", PriceCents: 250}

	mockQueries := new(MockCatalogQueries)
	mockQueries.On("GetItemByID", ctx, nil, row.ID).Return(row, nil)

	view, err := NewCatalogReadStore(mockQueries, nil).FindItem(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, money.Cents(250), view.PriceCents)
	assert.Equal(t, "milk.png", view.PhotoURL)
}
