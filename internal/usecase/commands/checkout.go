package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"grocery-pool/internal/domain/cart"
	"grocery-pool/internal/domain/ledger"
	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/domain/order"
	"grocery-pool/internal/domain/sharedcart"
	"grocery-pool/internal/domain/slot"
	"grocery-pool/internal/pkg/clock"
	"grocery-pool/internal/pkg/errs"
	"grocery-pool/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitDeliveryRequest struct {
	CartID       uuid.UUID
	AddressID    uuid.UUID
	DeliverySlot string
}

// SubmitDeliveryResult describes either an immediate order or a place in a
// shared cart awaiting settlement.
type SubmitDeliveryResult struct {
	Immediate    bool
	OrderID      uuid.UUID
	OrderStatus  string
	SharedCartID *uuid.UUID
	ScheduledAt  *time.Time
	Charged      money.Cents
}

type CheckoutCommands interface {
	SubmitDelivery(ctx context.Context, req SubmitDeliveryRequest) (*SubmitDeliveryResult, error)
}

type checkoutUseCaseImpl struct {
	uow         shared.UnitOfWork
	ledger      walletLedger
	coordinator sharedCartCoordinator
	schedule    slot.Schedule
	clock       clock.Clock
}

func NewCheckoutUseCase(uow shared.UnitOfWork, cache shared.BalanceCache, schedule slot.Schedule, clk clock.Clock) CheckoutCommands {
	l := walletLedger{cache: cache}
	return &checkoutUseCaseImpl{
		uow:         uow,
		ledger:      l,
		coordinator: sharedCartCoordinator{ledger: l},
		schedule:    schedule,
		clock:       clk,
	}
}

func (uc *checkoutUseCaseImpl) SubmitDelivery(ctx context.Context, req SubmitDeliveryRequest) (*SubmitDeliveryResult, error) {
	label := slot.Normalize(req.DeliverySlot)

	var result *SubmitDeliveryResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Carts().FindByIDForUpdate(ctx, tx.DB(), req.CartID)
		if err != nil {
			return err
		}
		existing, err := tx.Orders().LiveByCart(ctx, tx.DB(), c.ID())
		if err != nil {
			return err
		}
		if existing != nil {
			return errs.Wrapf(order.ErrOrderExists, "order %s", existing.ID())
		}
		if err := c.EnsureActive(); err != nil {
			return err
		}

		orderSlot, err := tx.Reads().OrderSlotByLabel(ctx, c.SupermarketID(), label)
		if err != nil {
			return err
		}
		address, err := tx.Reads().AddressByID(ctx, req.AddressID)
		if err != nil {
			return err
		}
		sm, err := tx.Reads().SupermarketByID(ctx, c.SupermarketID())
		if err != nil {
			return err
		}

		lines, err := tx.Carts().Lines(ctx, tx.DB(), c.ID())
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return cart.ErrEmptyCart
		}

		details := order.Details{
			UserID:        c.UserID(),
			SupermarketID: c.SupermarketID(),
			AddressID:     address.ID,
			OrderSlotID:   orderSlot.ID,
		}

		if slot.IsNow(label) {
			result, err = uc.placeImmediate(ctx, tx, c, lines, details, sm.DeliveryFee)
			return err
		}
		result, err = uc.joinSharedCart(ctx, tx, c, lines, details, label, sm.DeliveryFee)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// placeImmediate charges lines plus the full fee and places the order in
// one step. A store without a fee delivers for free.
func (uc *checkoutUseCaseImpl) placeImmediate(ctx context.Context, tx shared.Tx, c *cart.Cart, lines []cart.Line, d order.Details, fee *money.Cents) (*SubmitDeliveryResult, error) {
	var deliveryFee money.Cents
	if fee != nil {
		deliveryFee = *fee
	}

	orderLines := make([]order.Line, len(lines))
	for i, l := range lines {
		orderLines[i] = order.Line{ItemID: l.ItemID, Quantity: l.Quantity, PriceCents: l.PriceCents}
	}
	total := order.Total(orderLines, deliveryFee)

	o, err := order.NewImmediateOrder(c.ID(), d, deliveryFee, total)
	if err != nil {
		return nil, err
	}
	if err := tx.Orders().Create(ctx, tx.DB(), o, orderLines); err != nil {
		return nil, err
	}
	if _, err := uc.ledger.Debit(ctx, tx, d.UserID, total, ledger.ForOrder(o.ID()), fmt.Sprintf("order %s", o.ID())); err != nil {
		return nil, err
	}

	c.Deactivate()
	if err := tx.Carts().UpdateStatus(ctx, tx.DB(), c); err != nil {
		return nil, err
	}

	return &SubmitDeliveryResult{
		Immediate:   true,
		OrderID:     o.ID(),
		OrderStatus: o.Status().String(),
		Charged:     total,
	}, nil
}

func (uc *checkoutUseCaseImpl) joinSharedCart(ctx context.Context, tx shared.Tx, c *cart.Cart, lines []cart.Line, d order.Details, label string, fee *money.Cents) (*SubmitDeliveryResult, error) {
	if fee == nil {
		return nil, sharedcart.ErrDeliveryFeeNotSet
	}
	runAt, err := uc.schedule.RunAt(label, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	key := sharedcart.Key{SupermarketID: d.SupermarketID, AddressID: d.AddressID, OrderSlotID: d.OrderSlotID}
	sc, err := uc.coordinator.FindOrCreate(ctx, tx, key, d.UserID, *fee)
	if err != nil {
		return nil, err
	}
	if err := uc.coordinator.Transfer(ctx, tx, c, lines, sc, d.UserID); err != nil {
		return nil, err
	}
	charged, err := uc.coordinator.CollectPayment(ctx, tx, sc, d.UserID)
	if err != nil {
		return nil, err
	}
	contributors, err := uc.coordinator.Rebalance(ctx, tx, sc, *fee)
	if err != nil {
		return nil, err
	}
	o, err := uc.coordinator.Materialize(ctx, tx, sc, contributors, *fee)
	if err != nil {
		return nil, err
	}

	jobID, err := tx.SettlementJobs().Enqueue(ctx, tx.DB(), sc.ID(), runAt)
	if err != nil {
		return nil, err
	}
	tx.AfterCommit(func(context.Context) {
		slog.Info("settlement scheduled",
			"shared_cart_id", sc.ID(),
			"job_id", jobID,
			"run_at", runAt,
			"contributors", len(contributors))
	})

	sharedCartID := sc.ID()
	return &SubmitDeliveryResult{
		Immediate:    false,
		OrderID:      o.ID(),
		OrderStatus:  o.Status().String(),
		SharedCartID: &sharedCartID,
		ScheduledAt:  &runAt,
		Charged:      charged,
	}, nil
}
