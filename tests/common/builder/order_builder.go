//go:build unit || e2e

package builder

import (
	"time"

	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	OrderID       uuid.UUID
	UserID        uuid.UUID
	SupermarketID uuid.UUID
	AddressID     uuid.UUID
	CartID        *uuid.UUID
	SharedCartID  *uuid.UUID
	SlotLabel     string
	DeliveryFee   money.Cents
	Quantity      int
	PriceCents    money.Cents
	Status        string
	CreatedAt     time.Time
}

func NewOrderBuilder() *OrderBuilder {
	cartID := uuid.New()
	return &OrderBuilder{
		OrderID:       uuid.New(),
		UserID:        uuid.New(),
		SupermarketID: uuid.New(),
		AddressID:     uuid.New(),
		CartID:        &cartID,
		SlotLabel:     "now",
		DeliveryFee:   500,
		Quantity:      3,
		PriceCents:    200,
		Status:        "placed",
		CreatedAt:     time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	amount := b.PriceCents.Times(b.Quantity)
	return &queries.OrderView{
		ID:              b.OrderID,
		UserID:          b.UserID,
		SupermarketID:   b.SupermarketID,
		SupermarketName: "Corner Market",
		AddressID:       b.AddressID,
		BuildingName:    "Tower A",
		SlotLabel:       b.SlotLabel,
		DeliveryFee:     b.DeliveryFee,
		Total:           amount + b.DeliveryFee,
		Status:          b.Status,
		CartID:          b.CartID,
		SharedCartID:    b.SharedCartID,
		Lines: []queries.OrderLineView{
			{ItemID: uuid.New(), Name: "Apples", Quantity: b.Quantity, PriceCents: b.PriceCents, Amount: amount},
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

func (b *OrderBuilder) BuildListItem() queries.OrderListItem {
	v := b.BuildView()
	return queries.OrderListItem{
		ID:              v.ID,
		SupermarketID:   v.SupermarketID,
		SupermarketName: v.SupermarketName,
		SlotLabel:       v.SlotLabel,
		Total:           v.Total,
		Status:          v.Status,
		Shared:          v.SharedCartID != nil,
		CreatedAt:       v.CreatedAt,
	}
}
