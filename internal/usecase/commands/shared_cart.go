package commands

import (
	"context"
	"fmt"

	"grocery-pool/internal/domain/cart"
	"grocery-pool/internal/domain/ledger"
	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/domain/order"
	"grocery-pool/internal/domain/sharedcart"
	"grocery-pool/internal/pkg/errs"
	"grocery-pool/internal/usecase/shared"

	"github.com/google/uuid"
)

// sharedCartCoordinator holds the pooling steps. Every method expects to run
// inside the caller's transaction with the shared cart row locked.
type sharedCartCoordinator struct {
	ledger walletLedger
}

// FindOrCreate returns the OPEN cart for key, locked, with userID enrolled.
// Racing creators meet on the partial unique index and both lock the winner.
func (co sharedCartCoordinator) FindOrCreate(ctx context.Context, tx shared.Tx, key sharedcart.Key, userID uuid.UUID, fee money.Cents) (*sharedcart.SharedCart, error) {
	sc, err := tx.SharedCarts().OpenForUpdate(ctx, tx.DB(), key)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		if _, err := tx.SharedCarts().InsertOpen(ctx, tx.DB(), sharedcart.NewSharedCart(key)); err != nil {
			return nil, err
		}
		sc, err = tx.SharedCarts().OpenForUpdate(ctx, tx.DB(), key)
		if err != nil {
			return nil, err
		}
		if sc == nil {
			return nil, errs.New("open shared cart vanished after insert")
		}
	}

	if _, err := tx.SharedCarts().AddContributor(ctx, tx.DB(), sc.ID(), userID, fee); err != nil {
		return nil, err
	}
	return sc, nil
}

// Transfer moves the personal cart's lines into the pool. Stock stays
// reserved; only ownership of the units changes.
func (co sharedCartCoordinator) Transfer(ctx context.Context, tx shared.Tx, personal *cart.Cart, lines []cart.Line, sc *sharedcart.SharedCart, userID uuid.UUID) error {
	contributor, err := tx.SharedCarts().Contributor(ctx, tx.DB(), sc.ID(), userID)
	if err != nil {
		return err
	}
	if contributor == nil {
		return notContributor(userID)
	}
	if len(lines) == 0 {
		return cart.ErrEmptyCart
	}

	for _, l := range lines {
		line := sharedcart.Line{
			ContributorID: contributor.ID,
			ItemID:        l.ItemID,
			Quantity:      l.Quantity,
			PriceCents:    l.PriceCents,
		}
		if err := tx.SharedCarts().AddLine(ctx, tx.DB(), sc.ID(), line); err != nil {
			return err
		}
	}

	personal.Deactivate()
	return tx.Carts().UpdateStatus(ctx, tx.DB(), personal)
}

// CollectPayment debits what the contributor still owes for their lines and
// current fee share. A repeat join only pays for the newly added lines.
func (co sharedCartCoordinator) CollectPayment(ctx context.Context, tx shared.Tx, sc *sharedcart.SharedCart, userID uuid.UUID) (money.Cents, error) {
	contributor, err := tx.SharedCarts().Contributor(ctx, tx.DB(), sc.ID(), userID)
	if err != nil {
		return 0, err
	}
	if contributor == nil {
		return 0, notContributor(userID)
	}
	lines, err := tx.SharedCarts().Lines(ctx, tx.DB(), sc.ID())
	if err != nil {
		return 0, err
	}

	due := contributor.Due(sharedcart.SubtotalFor(contributor.ID, lines))
	if !due.IsPositive() {
		return 0, nil
	}
	note := fmt.Sprintf("shared cart %s", sc.ID())
	if _, err := co.ledger.Debit(ctx, tx, userID, due, ledger.ForSharedCart(sc.ID()), note); err != nil {
		return 0, err
	}
	if err := tx.SharedCarts().UpdateShare(ctx, tx.DB(), contributor.ID, contributor.Contribution, contributor.Charged+due); err != nil {
		return 0, err
	}
	return due, nil
}

// Rebalance splits fee evenly over the current contributors and refunds
// anyone whose share went down. It returns the contributors in join order
// with their new shares.
func (co sharedCartCoordinator) Rebalance(ctx context.Context, tx shared.Tx, sc *sharedcart.SharedCart, fee money.Cents) ([]sharedcart.Contributor, error) {
	contributors, err := tx.SharedCarts().Contributors(ctx, tx.DB(), sc.ID())
	if err != nil {
		return nil, err
	}
	changes, err := sharedcart.PlanRebalance(fee, contributors)
	if err != nil {
		return nil, err
	}

	updated := make([]sharedcart.Contributor, 0, len(changes))
	byID := make(map[uuid.UUID]sharedcart.Contributor, len(contributors))
	for _, c := range contributors {
		byID[c.ID] = c
	}
	for _, ch := range changes {
		c := byID[ch.ContributorID]
		if ch.Credit.IsPositive() {
			note := fmt.Sprintf("delivery fee share %s -> %s", ch.OldShare, ch.NewShare)
			if _, err := co.ledger.Credit(ctx, tx, ch.UserID, ch.Credit, ledger.ForSharedCart(sc.ID()), note); err != nil {
				return nil, err
			}
		}
		if ch.Changed() || ch.NewCharged != c.Charged {
			if err := tx.SharedCarts().UpdateShare(ctx, tx.DB(), ch.ContributorID, ch.NewShare, ch.NewCharged); err != nil {
				return nil, err
			}
		}
		c.Contribution = ch.NewShare
		c.Charged = ch.NewCharged
		updated = append(updated, c)
	}
	return updated, nil
}

// Materialize writes the shared cart's order from its current lines. The
// organizer is the earliest contributor.
func (co sharedCartCoordinator) Materialize(ctx context.Context, tx shared.Tx, sc *sharedcart.SharedCart, contributors []sharedcart.Contributor, fee money.Cents) (*order.Order, error) {
	if len(contributors) == 0 {
		return nil, sharedcart.ErrNoContributors
	}
	lines, err := tx.SharedCarts().Lines(ctx, tx.DB(), sc.ID())
	if err != nil {
		return nil, err
	}
	aggregated := sharedcart.AggregateLines(lines)
	orderLines := make([]order.Line, len(aggregated))
	for i, a := range aggregated {
		orderLines[i] = order.Line{ItemID: a.ItemID, Quantity: a.Quantity, PriceCents: a.PriceCents}
	}
	total := sharedcart.TotalAmount(aggregated) + fee

	key := sc.Key()
	details := order.Details{
		UserID:        contributors[0].UserID,
		SupermarketID: key.SupermarketID,
		AddressID:     key.AddressID,
		OrderSlotID:   key.OrderSlotID,
	}

	existing, err := tx.Orders().LiveBySharedCartForUpdate(ctx, tx.DB(), sc.ID())
	if err != nil {
		return nil, err
	}
	if existing == nil {
		o, err := order.NewScheduledOrder(sc.ID(), details, fee, total)
		if err != nil {
			return nil, err
		}
		if err := tx.Orders().Create(ctx, tx.DB(), o, orderLines); err != nil {
			return nil, err
		}
		return o, nil
	}

	if err := existing.Reprice(details.UserID, fee, total); err != nil {
		return nil, err
	}
	if err := tx.Orders().Update(ctx, tx.DB(), existing); err != nil {
		return nil, err
	}
	if err := tx.Orders().ReplaceLines(ctx, tx.DB(), existing.ID(), orderLines); err != nil {
		return nil, err
	}
	return existing, nil
}

func notContributor(userID uuid.UUID) error {
	return errs.Wrapf(sharedcart.ErrNotContributor, "user %s", userID)
}
