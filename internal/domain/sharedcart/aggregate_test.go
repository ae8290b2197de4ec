//go:build unit

package sharedcart_test

import (
	"testing"

	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/domain/sharedcart"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateLines(t *testing.T) {
	milk, bread := uuid.New(), uuid.New()
	a, b := uuid.New(), uuid.New()

	lines := []sharedcart.Line{
		{ContributorID: a, ItemID: milk, Quantity: 2, PriceCents: 200},
		{ContributorID: a, ItemID: bread, Quantity: 1, PriceCents: 350},
		{ContributorID: b, ItemID: milk, Quantity: 1, PriceCents: 220},
	}

	got := sharedcart.AggregateLines(lines)

	want := []sharedcart.AggregatedLine{
		{ItemID: milk, Quantity: 3, PriceCents: 220, AmountCents: 620},
		{ItemID: bread, Quantity: 1, PriceCents: 350, AmountCents: 350},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("aggregate mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, money.Cents(970), sharedcart.TotalAmount(got))
}

func TestSubtotalFor(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	lines := []sharedcart.Line{
		{ContributorID: a, ItemID: uuid.New(), Quantity: 3, PriceCents: 200},
		{ContributorID: b, ItemID: uuid.New(), Quantity: 1, PriceCents: 700},
	}

	assert.Equal(t, money.Cents(600), sharedcart.SubtotalFor(a, lines))
	assert.Equal(t, money.Cents(700), sharedcart.SubtotalFor(b, lines))
	assert.Equal(t, money.Cents(0), sharedcart.SubtotalFor(uuid.New(), lines))
}

func TestSharedCart_Close(t *testing.T) {
	sc := sharedcart.NewSharedCart(sharedcart.Key{SupermarketID: uuid.New(), AddressID: uuid.New(), OrderSlotID: uuid.New()})
	require.True(t, sc.IsOpen())

	require.NoError(t, sc.Close())
	assert.Equal(t, sharedcart.StatusClosed, sc.Status())
	assert.True(t, sc.SettlementProcessed())

	assert.ErrorIs(t, sc.Close(), sharedcart.ErrSharedCartClosed)
}
