package bootstrap

import (
	"log/slog"
	"time"

	"grocery-pool/internal/pkg/config"
	"grocery-pool/internal/pkg/errs"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(CheckSettlementConfig),
)

// CheckSettlementConfig fails startup on settings that would otherwise
// silently fall back (an unknown slot timezone resolves to UTC).
func CheckSettlementConfig(cfg config.Config) error {
	s := cfg.Settlement
	if _, err := time.LoadLocation(s.SlotTimeZone); err != nil {
		return errs.Wrapf(err, "invalid SETTLEMENT_SLOT_TIMEZONE %q", s.SlotTimeZone)
	}
	if s.WorkerOn && (s.PollInterval <= 0 || s.BatchSize < 1) {
		return errs.New("settlement worker needs a positive poll interval and batch size")
	}
	slog.Info("settlement configured",
		"env", s.Env,
		"slot_timezone", s.SlotTimeZone,
		"worker_enabled", s.WorkerOn,
		"dev_delay", s.DevDelay)
	return nil
}
