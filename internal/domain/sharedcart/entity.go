package sharedcart

import (
	"time"

	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSharedCartNotFound  = errs.Kind("shared cart not found", errs.ErrNotFound)
	ErrSharedCartClosed    = errs.Kind("shared cart is closed", errs.ErrConflict)
	ErrNotContributor      = errs.Kind("user is not a contributor of the shared cart", errs.ErrConflict)
	ErrDeliveryFeeNotSet   = errs.Kind("supermarket delivery fee not set", errs.ErrValidation)
	ErrNoContributors      = errs.New("shared cart has no contributors")
	ErrInvalidSharedStatus = errs.New("invalid shared cart status")
)

// Key identifies the single OPEN shared cart a checkout may join.
type Key struct {
	SupermarketID uuid.UUID
	AddressID     uuid.UUID
	OrderSlotID   uuid.UUID
}

type SharedCart struct {
	id                  uuid.UUID
	key                 Key
	status              Status
	settlementProcessed bool
}

func NewSharedCart(key Key) *SharedCart {
	return &SharedCart{id: uuid.New(), key: key, status: StatusOpen}
}

func ReconstructSharedCart(id uuid.UUID, key Key, status Status, settlementProcessed bool) (*SharedCart, error) {
	if !status.IsValid() {
		return nil, errs.Wrapf(ErrInvalidSharedStatus, "status %q", status)
	}
	return &SharedCart{id: id, key: key, status: status, settlementProcessed: settlementProcessed}, nil
}

func (s *SharedCart) ID() uuid.UUID             { return s.id }
func (s *SharedCart) Key() Key                  { return s.key }
func (s *SharedCart) Status() Status            { return s.status }
func (s *SharedCart) IsOpen() bool              { return s.status == StatusOpen }
func (s *SharedCart) SettlementProcessed() bool { return s.settlementProcessed }

// Close is one-way. Closing twice is a conflict.
func (s *SharedCart) Close() error {
	if !s.IsOpen() {
		return ErrSharedCartClosed
	}
	s.status = StatusClosed
	s.settlementProcessed = true
	return nil
}

type Contributor struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Contribution money.Cents
	Charged      money.Cents
	JoinedAt     time.Time
}

// Due is what the contributor still owes for their lines and current share.
func (c Contributor) Due(subtotal money.Cents) money.Cents {
	return subtotal + c.Contribution - c.Charged
}

type Line struct {
	ContributorID uuid.UUID
	ItemID        uuid.UUID
	Quantity      int
	PriceCents    money.Cents
}

func (l Line) Amount() money.Cents {
	return l.PriceCents.Times(l.Quantity)
}

func SubtotalFor(contributorID uuid.UUID, lines []Line) money.Cents {
	var total money.Cents
	for _, l := range lines {
		if l.ContributorID == contributorID {
			total += l.Amount()
		}
	}
	return total
}
