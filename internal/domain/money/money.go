package money

import "github.com/shopspring/decimal"

// Cents is a signed amount in the smallest currency unit.
type Cents int64

func (c Cents) Int64() int64 { return int64(c) }

func (c Cents) Times(qty int) Cents {
	return c * Cents(qty)
}

func (c Cents) IsPositive() bool { return c > 0 }

func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// String renders the amount with two fraction digits, e.g. "11.00".
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

func Sum(amounts ...Cents) Cents {
	var total Cents
	for _, a := range amounts {
		total += a
	}
	return total
}
