package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"grocery-pool/internal/usecase/commands"
)

// SettlementWorker polls for due settlement jobs. Jobs are claimed under
// SKIP LOCKED so several workers may run against one database.
type SettlementWorker struct {
	settlements commands.SettlementCommands
	interval    time.Duration
	batchSize   int32

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSettlementWorker(settlements commands.SettlementCommands, interval time.Duration, batchSize int32) *SettlementWorker {
	if interval <= 0 {
		interval = time.Second
	}
	if batchSize <= 0 {
		batchSize = 10
	}
	return &SettlementWorker{
		settlements: settlements,
		interval:    interval,
		batchSize:   batchSize,
	}
}

// Start launches the poll loop in the background. It returns immediately.
func (w *SettlementWorker) Start(context.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.Run(ctx)
	}()
	slog.Info("settlement worker started", "interval", w.interval.String(), "batch_size", w.batchSize)
	return nil
}

// Stop cancels the loop and waits for the in-flight batch, bounded by ctx.
func (w *SettlementWorker) Stop(ctx context.Context) error {
	if w.cancel == nil {
		return nil
	}
	w.cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("settlement worker stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *SettlementWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.Tick(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Tick drains due jobs until a batch comes back short.
func (w *SettlementWorker) Tick(ctx context.Context) {
	for ctx.Err() == nil {
		report, err := w.settlements.RunDue(ctx, w.batchSize)
		if err != nil {
			if ctx.Err() != nil && report != nil {
				slog.Info("settlement batch interrupted", "claimed", report.Claimed, "requeued", report.Requeued)
				return
			}
			slog.Error("failed to run due settlements", "error", err.Error())
			return
		}
		if report.Claimed > 0 {
			slog.Info("settlement batch processed",
				"claimed", report.Claimed,
				"done", report.Done,
				"skipped", report.Skipped,
				"failed", report.Failed)
		}
		if report.Claimed < int(w.batchSize) {
			return
		}
	}
}
