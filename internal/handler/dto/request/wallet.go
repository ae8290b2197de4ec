package request

import (
	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrAmountRequired  = errs.Kind("exactly one of amount_cents or amount is required", errs.ErrValidation)
	ErrAmountPrecision = errs.Kind("amount has more than two decimal places", errs.ErrValidation)
)

// TopUpRequest accepts either integer cents or a decimal amount such as "12.50".
type TopUpRequest struct {
	AmountCents *int64           `json:"amount_cents"`
	Amount      *decimal.Decimal `json:"amount"`
}

func (r TopUpRequest) Cents() (money.Cents, error) {
	switch {
	case r.AmountCents != nil && r.Amount == nil:
		return money.Cents(*r.AmountCents), nil
	case r.Amount != nil && r.AmountCents == nil:
		shifted := r.Amount.Shift(2)
		if !shifted.IsInteger() {
			return 0, ErrAmountPrecision
		}
		return money.Cents(shifted.IntPart()), nil
	default:
		return 0, ErrAmountRequired
	}
}
