package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"grocery-pool/internal/domain/ledger"
	"grocery-pool/internal/domain/money"
	"grocery-pool/internal/pkg/clock"
	"grocery-pool/internal/pkg/errs"
	"grocery-pool/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	topUpEndpoint  = "POST /users/:id/wallet/top-up"
	idempotencyTTL = 24 * time.Hour
)

var (
	ErrIdempotencyKeyReused = errs.Kind("idempotency key was used for a different request", errs.ErrConflict)
	ErrIdempotencyPending   = errs.Kind("request with this idempotency key has not finished", errs.ErrConflict)
)

type TopUpResult struct {
	EntryID uuid.UUID
	Balance money.Cents
	// Replayed is set when an earlier request with the same key already
	// credited the wallet.
	Replayed bool
}

type WalletCommands interface {
	// TopUp credits the wallet. A non-nil idempotencyKey makes retries with
	// the same key and amount return the first result instead of crediting
	// again.
	TopUp(ctx context.Context, userID uuid.UUID, amount money.Cents, idempotencyKey *uuid.UUID) (*TopUpResult, error)
}

type walletUseCaseImpl struct {
	uow    shared.UnitOfWork
	ledger walletLedger
	clock  clock.Clock
}

func NewWalletUseCase(uow shared.UnitOfWork, cache shared.BalanceCache, clk clock.Clock) WalletCommands {
	return &walletUseCaseImpl{uow: uow, ledger: walletLedger{cache: cache}, clock: clk}
}

func (uc *walletUseCaseImpl) TopUp(ctx context.Context, userID uuid.UUID, amount money.Cents, idempotencyKey *uuid.UUID) (*TopUpResult, error) {
	if !amount.IsPositive() {
		return nil, ledger.ErrInvalidAmount
	}

	var result *TopUpResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().UserByID(ctx, userID); err != nil {
			return err
		}

		var claim *shared.IdempotencyClaim
		if idempotencyKey != nil {
			now := uc.clock.Now()
			claim = &shared.IdempotencyClaim{
				Key:         *idempotencyKey,
				UserID:      userID,
				Endpoint:    topUpEndpoint,
				RequestHash: topUpRequestHash(userID, amount),
				ExpiresAt:   now.Add(idempotencyTTL),
			}
			replay, err := uc.claimOrReplay(ctx, tx, *claim, now)
			if err != nil {
				return err
			}
			if replay != nil {
				result = replay
				return nil
			}
		}

		entry, err := uc.ledger.Credit(ctx, tx, userID, amount, ledger.Reference{}, "wallet top-up")
		if err != nil {
			return err
		}
		if claim != nil {
			if err := tx.Idempotency().Complete(ctx, tx.DB(), claim.Key, userID, entry.ID()); err != nil {
				return err
			}
		}
		balance, err := tx.Ledger().Balance(ctx, tx.DB(), userID)
		if err != nil {
			return err
		}
		result = &TopUpResult{EntryID: entry.ID(), Balance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// claimOrReplay returns nil when the key is fresh and the caller should
// perform the write.
func (uc *walletUseCaseImpl) claimOrReplay(ctx context.Context, tx shared.Tx, claim shared.IdempotencyClaim, now time.Time) (*TopUpResult, error) {
	claimed, err := tx.Idempotency().Claim(ctx, tx.DB(), claim, now)
	if err != nil {
		return nil, err
	}
	if claimed {
		return nil, nil
	}

	existing, err := tx.Idempotency().Get(ctx, tx.DB(), claim.Key, claim.UserID)
	if err != nil {
		return nil, err
	}
	if existing.Endpoint != claim.Endpoint || existing.RequestHash != claim.RequestHash {
		return nil, ErrIdempotencyKeyReused
	}
	if existing.ResultID == nil {
		return nil, ErrIdempotencyPending
	}

	balance, err := tx.Ledger().Balance(ctx, tx.DB(), claim.UserID)
	if err != nil {
		return nil, err
	}
	return &TopUpResult{EntryID: *existing.ResultID, Balance: balance, Replayed: true}, nil
}

func topUpRequestHash(userID uuid.UUID, amount money.Cents) string {
	sum := sha256.Sum256([]byte(userID.String() + ":" + strconv.FormatInt(amount.Int64(), 10)))
	return hex.EncodeToString(sum[:])
}
