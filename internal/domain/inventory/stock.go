package inventory

import (
	"grocery-pool/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStockNotFound     = errs.Kind("stock level not found", errs.ErrNotFound)
	ErrInsufficientStock = errs.Kind("not enough stock for item", errs.ErrInsufficientStock)
	ErrInvalidQuantity   = errs.Kind("quantity must be at least 1", errs.ErrValidation)
)

type StockLevel struct {
	itemID        uuid.UUID
	supermarketID uuid.UUID
	quantity      int
}

func ReconstructStockLevel(itemID, supermarketID uuid.UUID, quantity int) *StockLevel {
	return &StockLevel{itemID: itemID, supermarketID: supermarketID, quantity: quantity}
}

func (s *StockLevel) ItemID() uuid.UUID        { return s.itemID }
func (s *StockLevel) SupermarketID() uuid.UUID { return s.supermarketID }
func (s *StockLevel) Quantity() int            { return s.quantity }

func ValidateQuantity(qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

func (s *StockLevel) Reserve(qty int) error {
	if err := ValidateQuantity(qty); err != nil {
		return err
	}
	if s.quantity < qty {
		return errs.Wrapf(ErrInsufficientStock, "item %s: requested %d, available %d", s.itemID, qty, s.quantity)
	}
	s.quantity -= qty
	return nil
}

func (s *StockLevel) Release(qty int) error {
	if err := ValidateQuantity(qty); err != nil {
		return err
	}
	s.quantity += qty
	return nil
}
