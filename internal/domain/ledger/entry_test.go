//go:build unit

package ledger_test

import (
	"testing"
	"time"

	"grocery-pool/internal/domain/ledger"
	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	testCases := []struct {
		name      string
		kind      ledger.Kind
		magnitude money.Cents
		want      money.Cents
		errIs     error
	}{
		{name: "credit is positive", kind: ledger.KindCredit, magnitude: 2000, want: 2000},
		{name: "refund is positive", kind: ledger.KindRefund, magnitude: 250, want: 250},
		{name: "debit is negative", kind: ledger.KindDebit, magnitude: 1100, want: -1100},
		{name: "zero amount", kind: ledger.KindCredit, magnitude: 0, errIs: ledger.ErrInvalidAmount},
		{name: "negative magnitude", kind: ledger.KindDebit, magnitude: -5, errIs: ledger.ErrInvalidAmount},
		{name: "unknown kind", kind: ledger.Kind("bonus"), magnitude: 5, errIs: ledger.ErrInvalidKind},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entry, err := ledger.NewEntry(uuid.New(), tc.kind, tc.magnitude, ledger.Reference{}, "")

			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.errIs))
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, entry.Amount())
			assert.Equal(t, tc.kind, entry.Kind())
		})
	}
}

func TestReconstructEntry_SignRules(t *testing.T) {
	now := time.Now()

	_, err := ledger.ReconstructEntry(uuid.New(), uuid.New(), 100, ledger.KindDebit, ledger.Reference{}, "", now)
	assert.ErrorIs(t, err, ledger.ErrSignMismatch)

	_, err = ledger.ReconstructEntry(uuid.New(), uuid.New(), -100, ledger.KindRefund, ledger.Reference{}, "", now)
	assert.ErrorIs(t, err, ledger.ErrSignMismatch)

	entry, err := ledger.ReconstructEntry(uuid.New(), uuid.New(), -100, ledger.KindDebit, ledger.ForOrder(uuid.New()), "order", now)
	require.NoError(t, err)
	assert.NotNil(t, entry.Reference().OrderID)
	assert.Nil(t, entry.Reference().SharedCartID)
}

func TestEnsureCovers(t *testing.T) {
	assert.NoError(t, ledger.EnsureCovers(1100, 1100))
	assert.NoError(t, ledger.EnsureCovers(2000, 1100))

	err := ledger.EnsureCovers(1099, 1100)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrInsufficientBalance))
}
