package commands

import (
	"context"
	"fmt"

	"grocery-pool/internal/domain/cart"
	"grocery-pool/internal/domain/ledger"
	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/usecase/shared"

	"github.com/google/uuid"
)

type CancelOrderResult struct {
	OrderID  uuid.UUID
	Status   string
	Refunded money.Cents
}

type OrderCommands interface {
	CancelOrder(ctx context.Context, orderID uuid.UUID) (*CancelOrderResult, error)
}

type orderUseCaseImpl struct {
	uow    shared.UnitOfWork
	ledger walletLedger
	stock  stockAdjuster
}

func NewOrderUseCase(uow shared.UnitOfWork, cache shared.BalanceCache) OrderCommands {
	return &orderUseCaseImpl{uow: uow, ledger: walletLedger{cache: cache}}
}

// CancelOrder refunds a personal order in full and returns its units to
// stock. Shared orders are rejected by the order itself.
func (uc *orderUseCaseImpl) CancelOrder(ctx context.Context, orderID uuid.UUID) (*CancelOrderResult, error) {
	var result *CancelOrderResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindByIDForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			return err
		}
		if err := o.Cancel(); err != nil {
			return err
		}
		if err := tx.Orders().Update(ctx, tx.DB(), o); err != nil {
			return err
		}

		lines, err := tx.Orders().Lines(ctx, tx.DB(), o.ID())
		if err != nil {
			return err
		}
		units := make([]cart.Line, len(lines))
		for i, l := range lines {
			units[i] = cart.Line{ItemID: l.ItemID, Quantity: l.Quantity, PriceCents: l.PriceCents}
		}
		if err := uc.stock.ReleaseLines(ctx, tx, o.Details().SupermarketID, units); err != nil {
			return err
		}

		if o.Total().IsPositive() {
			note := fmt.Sprintf("order %s canceled", o.ID())
			if _, err := uc.ledger.Refund(ctx, tx, o.UserID(), o.Total(), ledger.ForOrder(o.ID()), note); err != nil {
				return err
			}
		}

		result = &CancelOrderResult{
			OrderID:  o.ID(),
			Status:   o.Status().String(),
			Refunded: o.Total(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
