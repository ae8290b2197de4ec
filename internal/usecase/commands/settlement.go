package commands

import (
	"context"
	"log/slog"

	"grocery-pool/internal/domain/sharedcart"
	"grocery-pool/internal/pkg/clock"
	"grocery-pool/internal/pkg/errs"
	"grocery-pool/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	skipReasonMissing = "shared cart not found"
	skipReasonClosed  = "shared cart already closed"
)

type SettlementOutcome string

const (
	SettlementDone     SettlementOutcome = "done"
	SettlementSkipped  SettlementOutcome = "skipped"
	SettlementFailed   SettlementOutcome = "failed"
	SettlementRequeued SettlementOutcome = "requeued"
)

type SettlementReport struct {
	Claimed  int
	Done     int
	Skipped  int
	Failed   int
	Requeued int
}

type SettlementCommands interface {
	// RunDue claims up to batchSize due jobs and settles each in its own
	// transaction. When ctx is cancelled mid-batch the unstarted jobs go
	// back to the queue.
	RunDue(ctx context.Context, batchSize int32) (*SettlementReport, error)
	SettleJob(ctx context.Context, job shared.SettlementJob) (SettlementOutcome, error)
}

type settlementUseCaseImpl struct {
	uow         shared.UnitOfWork
	coordinator sharedCartCoordinator
	clock       clock.Clock
}

func NewSettlementUseCase(uow shared.UnitOfWork, cache shared.BalanceCache, clk clock.Clock) SettlementCommands {
	return &settlementUseCaseImpl{
		uow:         uow,
		coordinator: sharedCartCoordinator{ledger: walletLedger{cache: cache}},
		clock:       clk,
	}
}

func (uc *settlementUseCaseImpl) RunDue(ctx context.Context, batchSize int32) (*SettlementReport, error) {
	var jobs []shared.SettlementJob
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := tx.SettlementJobs().ClaimDue(ctx, tx.DB(), uc.clock.Now(), batchSize)
		if err != nil {
			return err
		}
		jobs = claimed
		return nil
	})
	if err != nil {
		return nil, err
	}

	report := &SettlementReport{Claimed: len(jobs)}
	for i, job := range jobs {
		if ctx.Err() != nil {
			report.Requeued += uc.requeue(ctx, jobs[i:])
			return report, ctx.Err()
		}
		outcome, _ := uc.SettleJob(ctx, job)
		switch outcome {
		case SettlementDone:
			report.Done++
		case SettlementSkipped:
			report.Skipped++
		case SettlementRequeued:
			report.Requeued++
		default:
			report.Failed++
		}
	}
	return report, ctx.Err()
}

// SettleJob never retries a settlement that failed on its own. A failure
// rolls the settlement back and leaves the job failed with its cause.
// Cancellation is not a failure: the job returns to the queue.
func (uc *settlementUseCaseImpl) SettleJob(ctx context.Context, job shared.SettlementJob) (SettlementOutcome, error) {
	outcome := SettlementDone
	var slotLabel string
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := uc.settle(ctx, tx, job, &slotLabel)
		outcome = o
		return err
	})
	if err == nil {
		logger := slog.With("job_id", job.ID, "shared_cart_id", job.SharedCartID, "attempt", job.Attempts)
		if slotLabel != "" {
			logger = logger.With("slot", slotLabel)
		}
		if outcome == SettlementSkipped {
			logger.Info("settlement skipped")
		} else {
			logger.Info("settlement completed")
		}
		return outcome, nil
	}

	if ctx.Err() != nil {
		slog.Warn("settlement interrupted, job requeued",
			"job_id", job.ID,
			"shared_cart_id", job.SharedCartID,
			"error", err.Error())
		uc.requeue(ctx, []shared.SettlementJob{job})
		return SettlementRequeued, err
	}

	slog.Error("settlement failed",
		"job_id", job.ID,
		"shared_cart_id", job.SharedCartID,
		"error", err.Error())

	markErr := uc.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		return tx.SettlementJobs().MarkFailed(ctx, tx.DB(), job.ID, err.Error())
	})
	if markErr != nil {
		slog.Error("failed to record settlement failure", "job_id", job.ID, "error", markErr.Error())
	}
	return SettlementFailed, err
}

// requeue runs detached from ctx, which is usually already cancelled.
func (uc *settlementUseCaseImpl) requeue(ctx context.Context, jobs []shared.SettlementJob) int {
	ids := make([]uuid.UUID, len(jobs))
	for i, job := range jobs {
		ids[i] = job.ID
	}

	var n int64
	err := uc.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.SettlementJobs().Requeue(ctx, tx.DB(), ids)
		return err
	})
	if err != nil {
		slog.Error("failed to requeue settlement jobs", "job_ids", ids, "error", err.Error())
		return 0
	}
	return int(n)
}

func (uc *settlementUseCaseImpl) settle(ctx context.Context, tx shared.Tx, job shared.SettlementJob, slotLabel *string) (SettlementOutcome, error) {
	sc, err := tx.SharedCarts().FindByIDForUpdate(ctx, tx.DB(), job.SharedCartID)
	if err != nil {
		if errs.Is(err, sharedcart.ErrSharedCartNotFound) {
			return SettlementSkipped, tx.SettlementJobs().MarkSkipped(ctx, tx.DB(), job.ID, skipReasonMissing)
		}
		return SettlementFailed, err
	}
	if !sc.IsOpen() {
		return SettlementSkipped, tx.SettlementJobs().MarkSkipped(ctx, tx.DB(), job.ID, skipReasonClosed)
	}

	orderSlot, err := tx.Reads().OrderSlotByID(ctx, sc.Key().OrderSlotID)
	if err != nil {
		return SettlementFailed, err
	}
	*slotLabel = orderSlot.Label

	sm, err := tx.Reads().SupermarketByID(ctx, sc.Key().SupermarketID)
	if err != nil {
		return SettlementFailed, err
	}
	if sm.DeliveryFee == nil {
		return SettlementFailed, sharedcart.ErrDeliveryFeeNotSet
	}
	fee := *sm.DeliveryFee

	contributors, err := uc.coordinator.Rebalance(ctx, tx, sc, fee)
	if err != nil {
		return SettlementFailed, err
	}
	o, err := uc.coordinator.Materialize(ctx, tx, sc, contributors, fee)
	if err != nil {
		return SettlementFailed, err
	}
	if err := o.Place(); err != nil {
		return SettlementFailed, err
	}
	if err := tx.Orders().Update(ctx, tx.DB(), o); err != nil {
		return SettlementFailed, err
	}

	if err := sc.Close(); err != nil {
		return SettlementFailed, err
	}
	if err := tx.SharedCarts().Close(ctx, tx.DB(), sc); err != nil {
		return SettlementFailed, err
	}
	return SettlementDone, tx.SettlementJobs().MarkDone(ctx, tx.DB(), job.ID)
}
