package response

import (
	"time"

	"grocery-pool/internal/domain/money"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Money carries both the exact cents and a display string such as "11.00".
type Money struct {
	Cents  int64  `json:"cents"`
	Amount string `json:"amount"`
}

func NewMoney(c money.Cents) Money {
	return Money{Cents: c.Int64(), Amount: c.Decimal().StringFixed(2)}
}

var viewConverters = []copier.TypeConverter{
	{
		SrcType: uuid.UUID{},
		DstType: "",
		Fn: func(src any) (any, error) {
			return src.(uuid.UUID).String(), nil
		},
	},
	{
		SrcType: money.Cents(0),
		DstType: Money{},
		Fn: func(src any) (any, error) {
			return NewMoney(src.(money.Cents)), nil
		},
	},
	{
		SrcType: time.Time{},
		DstType: int64(0),
		Fn: func(src any) (any, error) {
			return src.(time.Time).Unix(), nil
		},
	},
}

// fromView copies a query view into its response shape by field name.
func fromView[T any](src any) (*T, error) {
	var dst T
	if err := copierCopy(&dst, src); err != nil {
		return nil, err
	}
	return &dst, nil
}

func copierCopy(dst, src any) error {
	return copier.CopyWithOption(dst, src, copier.Option{Converters: viewConverters})
}
