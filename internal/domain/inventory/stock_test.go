//go:build unit

package inventory_test

import (
	"testing"

	"grocery-pool/internal/domain/inventory"
	"grocery-pool/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockLevel_Reserve(t *testing.T) {
	testCases := []struct {
		name      string
		available int
		qty       int
		want      int
		errIs     error
	}{
		{name: "reserve part of stock", available: 10, qty: 3, want: 7},
		{name: "reserve exactly the remaining stock", available: 1, qty: 1, want: 0},
		{name: "reserve more than available", available: 1, qty: 2, want: 1, errIs: inventory.ErrInsufficientStock},
		{name: "zero quantity", available: 5, qty: 0, want: 5, errIs: inventory.ErrInvalidQuantity},
		{name: "negative quantity", available: 5, qty: -1, want: 5, errIs: inventory.ErrInvalidQuantity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level := inventory.ReconstructStockLevel(uuid.New(), uuid.New(), tc.available)

			err := level.Reserve(tc.qty)

			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.errIs))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, level.Quantity())
		})
	}
}

func TestStockLevel_ReserveErrorKind(t *testing.T) {
	level := inventory.ReconstructStockLevel(uuid.New(), uuid.New(), 0)

	err := level.Reserve(1)

	assert.True(t, errs.Is(err, errs.ErrInsufficientStock))
	assert.Equal(t, errs.ErrInsufficientStock, errs.KindOf(err))
}

func TestStockLevel_ReserveThenRelease(t *testing.T) {
	level := inventory.ReconstructStockLevel(uuid.New(), uuid.New(), 8)

	require.NoError(t, level.Reserve(1))
	require.NoError(t, level.Release(1))

	assert.Equal(t, 8, level.Quantity())
	assert.True(t, errs.Is(level.Release(0), errs.ErrValidation))
}
