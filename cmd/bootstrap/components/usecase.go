package components

import (
	"grocery-pool/internal/domain/slot"
	"grocery-pool/internal/pkg/clock"
	"grocery-pool/internal/pkg/config"
	"grocery-pool/internal/usecase/commands"
	"grocery-pool/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewSchedule,
)

// NewSchedule resolves delivery slots in the configured zone. Development
// mode settles after a short delay instead of waiting for the slot.
func NewSchedule(cfg config.Config) slot.Schedule {
	return slot.Schedule{
		Location:    cfg.Settlement.Location(),
		Development: cfg.Settlement.IsDevelopment(),
		DevDelay:    cfg.Settlement.DevDelay,
	}
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartUseCase,
		commands.NewCheckoutUseCase,
		commands.NewOrderUseCase,
		commands.NewWalletUseCase,
		commands.NewSettlementUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCartQueries,
		queries.NewOrderQueries,
		queries.NewWalletQueries,
		queries.NewSharedCartQueries,
		queries.NewCatalogQueries,
	),
)
