package sharedcart

import (
	"grocery-pool/internal/domain/money"

	"github.com/google/uuid"
)

// AggregatedLine carries the unit price of the most recent line for the item.
type AggregatedLine struct {
	ItemID      uuid.UUID
	Quantity    int
	PriceCents  money.Cents
	AmountCents money.Cents
}

// AggregateLines sums quantities per item in first-seen order. Lines for the
// same item captured at different prices keep their exact extended amount.
func AggregateLines(lines []Line) []AggregatedLine {
	index := make(map[uuid.UUID]int, len(lines))
	out := make([]AggregatedLine, 0, len(lines))
	for _, l := range lines {
		i, ok := index[l.ItemID]
		if !ok {
			index[l.ItemID] = len(out)
			out = append(out, AggregatedLine{ItemID: l.ItemID})
			i = len(out) - 1
		}
		out[i].Quantity += l.Quantity
		out[i].PriceCents = l.PriceCents
		out[i].AmountCents += l.Amount()
	}
	return out
}

func TotalAmount(lines []AggregatedLine) money.Cents {
	var total money.Cents
	for _, l := range lines {
		total += l.AmountCents
	}
	return total
}
