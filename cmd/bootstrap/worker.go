package bootstrap

import (
	"grocery-pool/internal/pkg/config"
	"grocery-pool/internal/usecase/commands"
	"grocery-pool/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewSettlementWorker,
	),
	fx.Invoke(StartSettlementWorker),
)

func NewSettlementWorker(cfg config.Config, settlements commands.SettlementCommands) *worker.SettlementWorker {
	return worker.NewSettlementWorker(settlements, cfg.Settlement.PollInterval, cfg.Settlement.BatchSize)
}

func StartSettlementWorker(lc fx.Lifecycle, cfg config.Config, w *worker.SettlementWorker) {
	if !cfg.Settlement.WorkerOn {
		return
	}
	lc.Append(fx.Hook{
		OnStart: w.Start,
		OnStop:  w.Stop,
	})
}
