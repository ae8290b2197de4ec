package commands

import (
	"context"

	"grocery-pool/internal/domain/cart"
	"grocery-pool/internal/domain/inventory"
	"grocery-pool/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateCartResult struct {
	CartID uuid.UUID
	Reused bool
}

type EmptyCartResult struct {
	AlreadyEmpty bool
}

type CartCommands interface {
	CreateOrReuseCart(ctx context.Context, userID, supermarketID uuid.UUID) (*CreateCartResult, error)
	AddItem(ctx context.Context, cartID, itemID uuid.UUID, qty int) error
	RemoveOneUnit(ctx context.Context, cartID, itemID uuid.UUID) error
	EmptyCart(ctx context.Context, cartID uuid.UUID) (*EmptyCartResult, error)
}

type cartUseCaseImpl struct {
	uow   shared.UnitOfWork
	stock stockAdjuster
}

func NewCartUseCase(uow shared.UnitOfWork) CartCommands {
	return &cartUseCaseImpl{uow: uow}
}

// CreateOrReuseCart keeps one active cart per user. Switching supermarket
// abandons the old cart and gives its reserved units back to stock.
func (uc *cartUseCaseImpl) CreateOrReuseCart(ctx context.Context, userID, supermarketID uuid.UUID) (*CreateCartResult, error) {
	var result *CreateCartResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().UserByID(ctx, userID); err != nil {
			return err
		}
		if _, err := tx.Reads().SupermarketByID(ctx, supermarketID); err != nil {
			return err
		}

		current, err := tx.Carts().ActiveByUserForUpdate(ctx, tx.DB(), userID)
		if err != nil {
			return err
		}
		if current != nil && current.SameStore(supermarketID) {
			result = &CreateCartResult{CartID: current.ID(), Reused: true}
			return nil
		}
		if current != nil {
			if err := uc.supersede(ctx, tx, current); err != nil {
				return err
			}
		}

		fresh := cart.NewCart(userID, supermarketID)
		if err := tx.Carts().Create(ctx, tx.DB(), fresh); err != nil {
			return err
		}
		result = &CreateCartResult{CartID: fresh.ID(), Reused: false}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// supersede keeps the old lines as history but releases their stock.
func (uc *cartUseCaseImpl) supersede(ctx context.Context, tx shared.Tx, old *cart.Cart) error {
	lines, err := tx.Carts().Lines(ctx, tx.DB(), old.ID())
	if err != nil {
		return err
	}
	if err := uc.stock.ReleaseLines(ctx, tx, old.SupermarketID(), lines); err != nil {
		return err
	}
	old.Deactivate()
	return tx.Carts().UpdateStatus(ctx, tx.DB(), old)
}

func (uc *cartUseCaseImpl) AddItem(ctx context.Context, cartID, itemID uuid.UUID, qty int) error {
	if err := inventory.ValidateQuantity(qty); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Carts().FindByIDForUpdate(ctx, tx.DB(), cartID)
		if err != nil {
			return err
		}
		if err := c.EnsureActive(); err != nil {
			return err
		}

		item, err := tx.Reads().ItemByID(ctx, itemID)
		if err != nil {
			return err
		}
		if !c.SameStore(item.SupermarketID) {
			return cart.ErrItemNotInStore
		}

		if err := uc.stock.Reserve(ctx, tx, itemID, c.SupermarketID(), qty); err != nil {
			return err
		}

		existing, err := tx.Carts().LineForUpdate(ctx, tx.DB(), cartID, itemID)
		if err != nil {
			return err
		}
		if existing == nil {
			line, err := cart.NewLine(itemID, qty, item.PriceCents)
			if err != nil {
				return err
			}
			return tx.Carts().InsertLine(ctx, tx.DB(), cartID, line)
		}

		merged, err := existing.Add(qty, item.PriceCents)
		if err != nil {
			return err
		}
		return tx.Carts().UpdateLine(ctx, tx.DB(), merged)
	})
}

func (uc *cartUseCaseImpl) RemoveOneUnit(ctx context.Context, cartID, itemID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Carts().FindByIDForUpdate(ctx, tx.DB(), cartID)
		if err != nil {
			return err
		}
		if err := c.EnsureActive(); err != nil {
			return err
		}

		line, err := tx.Carts().LineForUpdate(ctx, tx.DB(), cartID, itemID)
		if err != nil {
			return err
		}
		if line == nil {
			return cart.ErrLineNotFound
		}

		if err := uc.stock.Release(ctx, tx, itemID, c.SupermarketID(), 1); err != nil {
			return err
		}

		remaining, kept := line.RemoveOne()
		if !kept {
			return tx.Carts().DeleteLine(ctx, tx.DB(), line.ID)
		}
		return tx.Carts().UpdateLine(ctx, tx.DB(), remaining)
	})
}

func (uc *cartUseCaseImpl) EmptyCart(ctx context.Context, cartID uuid.UUID) (*EmptyCartResult, error) {
	result := &EmptyCartResult{}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Carts().FindByIDForUpdate(ctx, tx.DB(), cartID)
		if err != nil {
			return err
		}
		if err := c.EnsureActive(); err != nil {
			return err
		}

		lines, err := tx.Carts().Lines(ctx, tx.DB(), cartID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			result.AlreadyEmpty = true
			return nil
		}

		if err := uc.stock.ReleaseLines(ctx, tx, c.SupermarketID(), lines); err != nil {
			return err
		}
		_, err = tx.Carts().DeleteLines(ctx, tx.DB(), cartID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
