package request

import (
	"github.com/google/uuid"
)

type CreateCartRequest struct {
	UserID        uuid.UUID `json:"user_id" binding:"required"`
	SupermarketID uuid.UUID `json:"supermarket_id" binding:"required"`
}

// Quantity bounds are enforced by the cart engine so the error kind stays
// consistent with other callers.
type AddItemRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required"`
}

type CheckoutRequest struct {
	AddressID    uuid.UUID `json:"address_id" binding:"required"`
	DeliverySlot string    `json:"delivery_slot" binding:"required"`
}
