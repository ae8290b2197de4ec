package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"grocery-pool/internal/handler/api"
	"grocery-pool/internal/handler/middleware"
	"grocery-pool/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Cart       *api.CartHandler
	SharedCart *api.SharedCartHandler
	Order      *api.OrderHandler
	Wallet     *api.WalletHandler
	Catalog    *api.CatalogHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RateLimit(cfg.RateLimit))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode || cfg.Server.Debug {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		carts := apiGroup.Group("/carts")
		{
			addRoutes(carts, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Cart.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Cart.Get},
				{Method: http.MethodPost, Path: "/:id/items", Handler: h.Cart.AddItem},
				{Method: http.MethodDelete, Path: "/:id/items", Handler: h.Cart.Empty},
				{Method: http.MethodDelete, Path: "/:id/items/:itemId", Handler: h.Cart.RemoveOneUnit},
				{Method: http.MethodPost, Path: "/:id/checkout", Handler: h.Cart.Checkout},
			})
		}

		addRoutes(apiGroup.Group("/shared-carts"), []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.SharedCart.Get},
		})

		addRoutes(apiGroup.Group("/orders"), []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Order.Cancel},
		})

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/:id/orders", Handler: h.Order.ListByUser},
				{Method: http.MethodGet, Path: "/:id/wallet", Handler: h.Wallet.Get},
				{Method: http.MethodPost, Path: "/:id/wallet/top-up", Handler: h.Wallet.TopUp},
			})
		}

		addRoutes(apiGroup.Group("/supermarkets"), []route{
			{Method: http.MethodGet, Path: "/:id/order-slots", Handler: h.Catalog.ListOrderSlots},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
