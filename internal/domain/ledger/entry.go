package ledger

import (
	"time"

	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount       = errs.Kind("amount must be greater than zero", errs.ErrValidation)
	ErrInvalidKind         = errs.Kind("unknown ledger entry kind", errs.ErrValidation)
	ErrSignMismatch        = errs.Kind("ledger amount sign does not match its kind", errs.ErrValidation)
	ErrInsufficientBalance = errs.Kind("wallet balance too low", errs.ErrInsufficientBalance)
)

// Reference links an entry to what caused it. At most one field is set in practice.
type Reference struct {
	OrderID      *uuid.UUID
	SharedCartID *uuid.UUID
}

func ForOrder(id uuid.UUID) Reference      { return Reference{OrderID: &id} }
func ForSharedCart(id uuid.UUID) Reference { return Reference{SharedCartID: &id} }

// Entry is immutable once appended.
type Entry struct {
	id        uuid.UUID
	userID    uuid.UUID
	amount    money.Cents
	kind      Kind
	ref       Reference
	note      string
	createdAt time.Time
}

// NewEntry applies the kind's sign to a positive magnitude.
func NewEntry(userID uuid.UUID, kind Kind, magnitude money.Cents, ref Reference, note string) (*Entry, error) {
	if !kind.IsValid() {
		return nil, errs.Wrapf(ErrInvalidKind, "kind %q", kind)
	}
	if magnitude <= 0 {
		return nil, errs.Wrapf(ErrInvalidAmount, "got %d", magnitude)
	}
	return &Entry{
		id:     uuid.New(),
		userID: userID,
		amount: magnitude * money.Cents(kind.Sign()),
		kind:   kind,
		ref:    ref,
		note:   note,
	}, nil
}

func ReconstructEntry(id, userID uuid.UUID, amount money.Cents, kind Kind, ref Reference, note string, createdAt time.Time) (*Entry, error) {
	if !kind.IsValid() {
		return nil, errs.Wrapf(ErrInvalidKind, "kind %q", kind)
	}
	if amount == 0 || (amount < 0) != (kind == KindDebit) {
		return nil, ErrSignMismatch
	}
	return &Entry{id: id, userID: userID, amount: amount, kind: kind, ref: ref, note: note, createdAt: createdAt}, nil
}

func (e *Entry) ID() uuid.UUID        { return e.id }
func (e *Entry) UserID() uuid.UUID    { return e.userID }
func (e *Entry) Amount() money.Cents  { return e.amount }
func (e *Entry) Kind() Kind           { return e.kind }
func (e *Entry) Reference() Reference { return e.ref }
func (e *Entry) Note() string         { return e.note }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

// EnsureCovers fails when balance cannot pay amount. Equality is enough.
func EnsureCovers(balance, amount money.Cents) error {
	if balance < amount {
		return errs.Wrapf(ErrInsufficientBalance, "balance %s, required %s", balance, amount)
	}
	return nil
}
