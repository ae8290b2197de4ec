package commands

import (
	"context"
	"log/slog"

	"grocery-pool/internal/domain/ledger"
	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/pkg/errs"
	"grocery-pool/internal/usecase/shared"

	"github.com/google/uuid"
)

// walletLedger moves money by appending entries. Every append drops the
// user's cached balance once the transaction commits.
type walletLedger struct {
	cache shared.BalanceCache
}

// Debit holds the user lock until the transaction ends, so two debits for
// one user see each other's entries.
func (l walletLedger) Debit(ctx context.Context, tx shared.Tx, userID uuid.UUID, amount money.Cents, ref ledger.Reference, note string) (*ledger.Entry, error) {
	if err := tx.Ledger().LockUser(ctx, tx.DB(), userID); err != nil {
		return nil, err
	}
	balance, err := tx.Ledger().Balance(ctx, tx.DB(), userID)
	if err != nil {
		return nil, err
	}
	if err := ledger.EnsureCovers(balance, amount); err != nil {
		return nil, errs.Wrapf(err, "balance %s, due %s", balance, amount)
	}
	return l.append(ctx, tx, userID, ledger.KindDebit, amount, ref, note)
}

func (l walletLedger) Credit(ctx context.Context, tx shared.Tx, userID uuid.UUID, amount money.Cents, ref ledger.Reference, note string) (*ledger.Entry, error) {
	return l.append(ctx, tx, userID, ledger.KindCredit, amount, ref, note)
}

func (l walletLedger) Refund(ctx context.Context, tx shared.Tx, userID uuid.UUID, amount money.Cents, ref ledger.Reference, note string) (*ledger.Entry, error) {
	return l.append(ctx, tx, userID, ledger.KindRefund, amount, ref, note)
}

func (l walletLedger) append(ctx context.Context, tx shared.Tx, userID uuid.UUID, kind ledger.Kind, amount money.Cents, ref ledger.Reference, note string) (*ledger.Entry, error) {
	entry, err := ledger.NewEntry(userID, kind, amount, ref, note)
	if err != nil {
		return nil, err
	}
	if err := tx.Ledger().Append(ctx, tx.DB(), entry); err != nil {
		return nil, err
	}
	tx.AfterCommit(func(ctx context.Context) {
		if err := l.cache.Delete(ctx, userID); err != nil {
			slog.Warn("failed to invalidate cached balance", "user_id", userID, "error", err.Error())
		}
	})
	return entry, nil
}
