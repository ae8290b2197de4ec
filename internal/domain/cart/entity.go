package cart

import (
	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCartNotFound        = errs.Kind("cart not found", errs.ErrNotFound)
	ErrCartInactive        = errs.Kind("cart is inactive", errs.ErrInactiveCart)
	ErrLineNotFound        = errs.Kind("item is not in the cart", errs.ErrNotFound)
	ErrEmptyCart           = errs.Kind("cart is empty", errs.ErrValidation)
	ErrItemNotInStore      = errs.Kind("item does not belong to the cart's supermarket", errs.ErrValidation)
	ErrInvalidCartStatus   = errs.New("invalid cart status")
	ErrInvalidLineQuantity = errs.Kind("line quantity must be at least 1", errs.ErrValidation)
)

type Cart struct {
	id            uuid.UUID
	userID        uuid.UUID
	supermarketID uuid.UUID
	status        Status
}

func NewCart(userID, supermarketID uuid.UUID) *Cart {
	return &Cart{
		id:            uuid.New(),
		userID:        userID,
		supermarketID: supermarketID,
		status:        StatusActive,
	}
}

func ReconstructCart(id, userID, supermarketID uuid.UUID, status Status) (*Cart, error) {
	if !status.IsValid() {
		return nil, errs.Wrapf(ErrInvalidCartStatus, "status %q", status)
	}
	return &Cart{id: id, userID: userID, supermarketID: supermarketID, status: status}, nil
}

func (c *Cart) ID() uuid.UUID            { return c.id }
func (c *Cart) UserID() uuid.UUID        { return c.userID }
func (c *Cart) SupermarketID() uuid.UUID { return c.supermarketID }
func (c *Cart) Status() Status           { return c.status }
func (c *Cart) IsActive() bool           { return c.status == StatusActive }

func (c *Cart) EnsureActive() error {
	if !c.IsActive() {
		return ErrCartInactive
	}
	return nil
}

// SameStore reports whether the cart already shops at supermarketID.
func (c *Cart) SameStore(supermarketID uuid.UUID) bool {
	return c.supermarketID == supermarketID
}

func (c *Cart) Deactivate() {
	c.status = StatusInactive
}

type Line struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	Quantity   int
	PriceCents money.Cents
}

func NewLine(itemID uuid.UUID, qty int, price money.Cents) (Line, error) {
	if qty < 1 {
		return Line{}, ErrInvalidLineQuantity
	}
	return Line{ID: uuid.New(), ItemID: itemID, Quantity: qty, PriceCents: price}, nil
}

func (l Line) Amount() money.Cents {
	return l.PriceCents.Times(l.Quantity)
}

// Add merges qty more units and refreshes the captured price.
func (l Line) Add(qty int, price money.Cents) (Line, error) {
	if qty < 1 {
		return l, ErrInvalidLineQuantity
	}
	l.Quantity += qty
	l.PriceCents = price
	return l, nil
}

// RemoveOne drops one unit. The returned bool is false when the line is gone.
func (l Line) RemoveOne() (Line, bool) {
	l.Quantity--
	return l, l.Quantity > 0
}
