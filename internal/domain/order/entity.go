package order

import (
	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound       = errs.Kind("order not found", errs.ErrNotFound)
	ErrOrderExists         = errs.Kind("cart already has an order", errs.ErrConflict)
	ErrInvalidTransition   = errs.Kind("order status transition not allowed", errs.ErrConflict)
	ErrSharedOrderCancel   = errs.Kind("shared cart orders cannot be canceled", errs.ErrConflict)
	ErrInvalidOrderStatus  = errs.New("invalid order status")
	ErrOrderWithoutOrigin  = errs.New("order must reference exactly one of cart or shared cart")
	ErrNegativeOrderAmount = errs.New("order amounts cannot be negative")
)

// Details holds the delivery fields fixed at checkout.
type Details struct {
	UserID        uuid.UUID
	SupermarketID uuid.UUID
	AddressID     uuid.UUID
	OrderSlotID   uuid.UUID
}

type Order struct {
	id           uuid.UUID
	details      Details
	deliveryFee  money.Cents
	total        money.Cents
	status       Status
	cartID       *uuid.UUID
	sharedCartID *uuid.UUID
}

// NewImmediateOrder is placed and paid for in the same transaction.
func NewImmediateOrder(cartID uuid.UUID, d Details, fee, total money.Cents) (*Order, error) {
	return newOrder(d, fee, total, StatusPlaced, &cartID, nil)
}

// NewScheduledOrder waits for the shared cart's settlement run.
func NewScheduledOrder(sharedCartID uuid.UUID, d Details, fee, total money.Cents) (*Order, error) {
	return newOrder(d, fee, total, StatusScheduled, nil, &sharedCartID)
}

func newOrder(d Details, fee, total money.Cents, status Status, cartID, sharedCartID *uuid.UUID) (*Order, error) {
	if fee < 0 || total < 0 {
		return nil, ErrNegativeOrderAmount
	}
	return &Order{
		id:           uuid.New(),
		details:      d,
		deliveryFee:  fee,
		total:        total,
		status:       status,
		cartID:       cartID,
		sharedCartID: sharedCartID,
	}, nil
}

func ReconstructOrder(id uuid.UUID, d Details, fee, total money.Cents, status Status, cartID, sharedCartID *uuid.UUID) (*Order, error) {
	if !status.IsValid() {
		return nil, errs.Wrapf(ErrInvalidOrderStatus, "status %q", status)
	}
	if (cartID == nil) == (sharedCartID == nil) {
		return nil, ErrOrderWithoutOrigin
	}
	return &Order{
		id:           id,
		details:      d,
		deliveryFee:  fee,
		total:        total,
		status:       status,
		cartID:       cartID,
		sharedCartID: sharedCartID,
	}, nil
}

func (o *Order) ID() uuid.UUID            { return o.id }
func (o *Order) Details() Details         { return o.details }
func (o *Order) UserID() uuid.UUID        { return o.details.UserID }
func (o *Order) DeliveryFee() money.Cents { return o.deliveryFee }
func (o *Order) Total() money.Cents       { return o.total }
func (o *Order) Status() Status           { return o.status }
func (o *Order) CartID() *uuid.UUID       { return o.cartID }
func (o *Order) SharedCartID() *uuid.UUID { return o.sharedCartID }
func (o *Order) IsShared() bool           { return o.sharedCartID != nil }

func (o *Order) transition(to Status) error {
	if !CanTransition(o.status, to) {
		return errs.Wrapf(ErrInvalidTransition, "%s -> %s", o.status, to)
	}
	o.status = to
	return nil
}

func (o *Order) Place() error {
	return o.transition(StatusPlaced)
}

// Cancel is only allowed for personal-cart orders. A shared order has
// several payers and no single refund target.
func (o *Order) Cancel() error {
	if o.IsShared() {
		return ErrSharedOrderCancel
	}
	return o.transition(StatusCanceled)
}

// Reprice replaces the amounts of an order that has not been placed yet.
func (o *Order) Reprice(organizer uuid.UUID, fee, total money.Cents) error {
	if fee < 0 || total < 0 {
		return ErrNegativeOrderAmount
	}
	o.details.UserID = organizer
	o.deliveryFee = fee
	o.total = total
	return nil
}

type Line struct {
	ItemID     uuid.UUID
	Quantity   int
	PriceCents money.Cents
}

func Total(lines []Line, fee money.Cents) money.Cents {
	total := fee
	for _, l := range lines {
		total += l.PriceCents.Times(l.Quantity)
	}
	return total
}
