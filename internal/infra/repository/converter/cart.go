package converter

import (
	"grocery-pool/internal/domain/cart"
	"grocery-pool/internal/domain/money"
	sqlc "grocery-pool/internal/infra/sqlc/generated"
)

func CartFromRow(row sqlc.Carts) (*cart.Cart, error) {
	return cart.ReconstructCart(row.ID, row.UserID, row.SupermarketID, cart.Status(row.Status))
}

func CartToCreateParams(c *cart.Cart) sqlc.CreateCartParams {
	return sqlc.CreateCartParams{
		ID:            c.ID(),
		UserID:        c.UserID(),
		SupermarketID: c.SupermarketID(),
		Status:        c.Status().String(),
	}
}

func CartLineFromRow(row sqlc.CartItems) cart.Line {
	return cart.Line{
		ID:         row.ID,
		ItemID:     row.ItemID,
		Quantity:   int(row.Quantity),
		PriceCents: money.Cents(row.PriceCents),
	}
}
