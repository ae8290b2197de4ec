//go:build unit

package sharedcart_test

import (
	"testing"
	"time"

	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/domain/sharedcart"
	"grocery-pool/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFee(t *testing.T) {
	t.Run("shares always sum to the fee", func(t *testing.T) {
		for _, fee := range []money.Cents{0, 1, 500, 1000, 999, 12345} {
			for n := 1; n <= 12; n++ {
				shares, err := sharedcart.SplitFee(fee, n)
				require.NoError(t, err)
				require.Len(t, shares, n)
				assert.Equal(t, fee, money.Sum(shares...), "fee=%d n=%d", fee, n)

				for _, s := range shares {
					assert.LessOrEqual(t, shares[0]-s, money.Cents(1))
				}
			}
		}
	})

	t.Run("remainder goes to the first shares", func(t *testing.T) {
		shares, err := sharedcart.SplitFee(1000, 3)
		require.NoError(t, err)

		if diff := cmp.Diff([]money.Cents{334, 333, 333}, shares); diff != "" {
			t.Errorf("shares mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no contributors", func(t *testing.T) {
		_, err := sharedcart.SplitFee(500, 0)

		assert.True(t, errs.Is(err, sharedcart.ErrNoContributors))
	})
}

func TestPlanRebalance(t *testing.T) {
	base := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)

	t.Run("second joiner halves the fee and credits the first", func(t *testing.T) {
		a := sharedcart.Contributor{ID: uuid.New(), UserID: uuid.New(), Contribution: 500, Charged: 1100, JoinedAt: base}
		b := sharedcart.Contributor{ID: uuid.New(), UserID: uuid.New(), Contribution: 500, Charged: 800, JoinedAt: base.Add(time.Minute)}

		changes, err := sharedcart.PlanRebalance(500, []sharedcart.Contributor{b, a})
		require.NoError(t, err)
		require.Len(t, changes, 2)

		assert.Equal(t, a.ID, changes[0].ContributorID)
		assert.Equal(t, money.Cents(250), changes[0].NewShare)
		assert.Equal(t, money.Cents(250), changes[0].Credit)
		assert.Equal(t, money.Cents(850), changes[0].NewCharged)

		assert.Equal(t, b.ID, changes[1].ContributorID)
		assert.Equal(t, money.Cents(250), changes[1].NewShare)
		assert.Equal(t, money.Cents(250), changes[1].Credit)
		assert.Equal(t, money.Cents(550), changes[1].NewCharged)
	})

	t.Run("unchanged share produces no credit", func(t *testing.T) {
		a := sharedcart.Contributor{ID: uuid.New(), Contribution: 500, Charged: 500, JoinedAt: base}

		changes, err := sharedcart.PlanRebalance(500, []sharedcart.Contributor{a})
		require.NoError(t, err)

		assert.False(t, changes[0].Changed())
		assert.Equal(t, money.Cents(0), changes[0].Credit)
		assert.Equal(t, money.Cents(500), changes[0].NewCharged)
	})

	t.Run("credits plus new shares cover what was recorded", func(t *testing.T) {
		contributors := []sharedcart.Contributor{
			{ID: uuid.New(), Contribution: 334, JoinedAt: base},
			{ID: uuid.New(), Contribution: 333, JoinedAt: base.Add(time.Second)},
			{ID: uuid.New(), Contribution: 333, JoinedAt: base.Add(2 * time.Second)},
			{ID: uuid.New(), Contribution: 1000, JoinedAt: base.Add(3 * time.Second)},
		}

		changes, err := sharedcart.PlanRebalance(1000, contributors)
		require.NoError(t, err)

		var shares, credits money.Cents
		for _, c := range changes {
			shares += c.NewShare
			credits += c.Credit
		}
		assert.Equal(t, money.Cents(1000), shares)
		assert.Equal(t, money.Cents(84+83+83+750), credits)
	})

	t.Run("empty set", func(t *testing.T) {
		_, err := sharedcart.PlanRebalance(500, nil)

		assert.True(t, errs.Is(err, sharedcart.ErrNoContributors))
	})
}

func TestContributor_Due(t *testing.T) {
	c := sharedcart.Contributor{Contribution: 500}
	assert.Equal(t, money.Cents(1100), c.Due(600))

	c.Charged = 1100
	assert.Equal(t, money.Cents(0), c.Due(600))
	assert.Equal(t, money.Cents(300), c.Due(900))
}
