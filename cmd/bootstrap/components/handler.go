package components

import (
	"grocery-pool/internal/handler"
	"grocery-pool/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewSharedCartHandler,
		api.NewOrderHandler,
		api.NewWalletHandler,
		api.NewCatalogHandler,
		func(
			cart *api.CartHandler,
			sharedCart *api.SharedCartHandler,
			order *api.OrderHandler,
			wallet *api.WalletHandler,
			catalog *api.CatalogHandler,
		) handler.Handlers {
			return handler.Handlers{
				Cart:       cart,
				SharedCart: sharedCart,
				Order:      order,
				Wallet:     wallet,
				Catalog:    catalog,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
