package converter

import (
	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/domain/order"
	sqlc "grocery-pool/internal/infra/sqlc/generated"
	"grocery-pool/internal/pkg/pgconv"
)

func OrderFromRow(row sqlc.Orders) (*order.Order, error) {
	d := order.Details{
		UserID:        row.UserID,
		SupermarketID: row.SupermarketID,
		AddressID:     row.AddressID,
		OrderSlotID:   row.OrderSlotID,
	}
	return order.ReconstructOrder(
		row.ID,
		d,
		money.Cents(row.DeliveryFeeCents),
		money.Cents(row.TotalAmountCents),
		order.Status(row.Status),
		pgconv.UUIDPtrFromPgtype(row.CartID),
		pgconv.UUIDPtrFromPgtype(row.SharedCartID),
	)
}

func OrderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	d := o.Details()
	return sqlc.CreateOrderParams{
		ID:               o.ID(),
		UserID:           d.UserID,
		SupermarketID:    d.SupermarketID,
		AddressID:        d.AddressID,
		OrderSlotID:      d.OrderSlotID,
		DeliveryFeeCents: o.DeliveryFee().Int64(),
		TotalAmountCents: o.Total().Int64(),
		Status:           o.Status().String(),
		CartID:           pgconv.UUIDPtrToPgtype(o.CartID()),
		SharedCartID:     pgconv.UUIDPtrToPgtype(o.SharedCartID()),
	}
}

func OrderLineFromRow(row sqlc.OrderItems) order.Line {
	return order.Line{
		ItemID:     row.ItemID,
		Quantity:   int(row.Quantity),
		PriceCents: money.Cents(row.PriceCents),
	}
}
