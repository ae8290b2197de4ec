//go:build unit || e2e

package builder

import (
	"grocery-pool/internal/domain/money"
	reqdto "grocery-pool/internal/handler/dto/request"
	"grocery-pool/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartBuilder struct {
	CartID        uuid.UUID
	UserID        uuid.UUID
	SupermarketID uuid.UUID
	ItemID        uuid.UUID
	AddressID     uuid.UUID
	Quantity      int
	PriceCents    money.Cents
	Balance       money.Cents
	Status        string
	DeliverySlot  string
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{
		CartID:        uuid.New(),
		UserID:        uuid.New(),
		SupermarketID: uuid.New(),
		ItemID:        uuid.New(),
		AddressID:     uuid.New(),
		Quantity:      3,
		PriceCents:    200,
		Balance:       2000,
		Status:        "active",
		DeliverySlot:  "now",
	}
}

func (b *CartBuilder) With(mutate func(*CartBuilder)) *CartBuilder {
	mutate(b)
	return b
}

func (b *CartBuilder) BuildCreateRequestDTO() reqdto.CreateCartRequest {
	return reqdto.CreateCartRequest{UserID: b.UserID, SupermarketID: b.SupermarketID}
}

func (b *CartBuilder) BuildAddItemRequestDTO() reqdto.AddItemRequest {
	return reqdto.AddItemRequest{ItemID: b.ItemID, Quantity: b.Quantity}
}

func (b *CartBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{AddressID: b.AddressID, DeliverySlot: b.DeliverySlot}
}

func (b *CartBuilder) BuildView() *queries.CartView {
	amount := b.PriceCents.Times(b.Quantity)
	return &queries.CartView{
		ID:            b.CartID,
		UserID:        b.UserID,
		SupermarketID: b.SupermarketID,
		Status:        b.Status,
		Lines: []queries.CartLineView{
			{ItemID: b.ItemID, Name: "Apples", Quantity: b.Quantity, PriceCents: b.PriceCents, Amount: amount},
		},
		Total:         amount,
		WalletBalance: b.Balance,
	}
}
