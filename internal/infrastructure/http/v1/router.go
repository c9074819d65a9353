package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"backoffice/internal/core/cache"
	"backoffice/internal/domain/access"
	"backoffice/internal/domain/catalogs"
	"backoffice/internal/domain/documents/movement"
	"backoffice/internal/domain/documents/sale"
	"backoffice/internal/domain/documents/salesreturn"
	"backoffice/internal/domain/documents/transfer"
	"backoffice/internal/domain/selection"
	"backoffice/internal/domain/stock"
	"backoffice/internal/infrastructure/http/v1/handlers"
	"backoffice/internal/infrastructure/http/v1/middleware"
	"backoffice/pkg/logger"
)

// RouterConfig holds the router dependencies.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// Cache is reported by the health endpoints
	Cache *cache.Cache

	Movements *movement.Service
	Transfers *transfer.Service
	Sales     *sale.Service
	Returns   *salesreturn.Service
	Stock     *stock.Service
	Catalogs  *catalogs.Service
	Access    *access.Service
	Selection *selection.Store

	// Metrics exposes /metrics and records request metrics when set
	Metrics *prometheus.Registry

	// AdminRole is required to change user-role links
	AdminRole string

	Version string
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	// Global middleware (order matters!)
	// Recovery sits inside ErrorHandler so a recovered panic is rendered as 500;
	// Metrics sits outside it to record the final status.
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
	}
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Recovery())

	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Metrics, promhttp.HandlerOpts{})))
	}

	// Health endpoints (no auth)
	healthHandler := handlers.NewHealthHandler(cfg.Cache, cfg.Version)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/info", healthHandler.Info)
	}

	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))
		protected.Use(middleware.Idempotency())

		baseHandler := handlers.NewBaseHandler()
		registerDocumentRoutes(protected, baseHandler, cfg)
		registerStockRoutes(protected, baseHandler, cfg)
		registerCatalogRoutes(protected, baseHandler, cfg)
		registerAccessRoutes(protected, baseHandler, cfg)
		registerSelectionRoutes(protected, baseHandler, cfg)
	}

	return router
}

// registerDocumentRoutes registers the four document kinds and their lifecycles.
func registerDocumentRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	// --- MOVEMENTS ---
	{
		handler := handlers.NewMovementHandler(base, cfg.Movements)
		group := rg.Group("/movements")
		RegisterDocumentRoutes(group, handler)
		group.POST("/:id/post", handler.Post)
		group.POST("/:id/void", handler.Void)
	}

	// --- TRANSFERS ---
	{
		handler := handlers.NewTransferHandler(base, cfg.Transfers)
		group := rg.Group("/transfers")
		RegisterDocumentRoutes(group, handler)
		group.PATCH("/:id/status", handler.UpdateStatus)
	}

	// --- SALES ---
	{
		handler := handlers.NewSaleHandler(base, cfg.Sales)
		group := rg.Group("/sales")
		RegisterDocumentRoutes(group, handler)
		group.POST("/:id/confirm", handler.Confirm)
		group.POST("/:id/cancel", handler.Cancel)
		group.POST("/:id/lines", handler.AddLine)
		group.DELETE("/:id/lines/:lineId", handler.RemoveLine)
	}

	// --- RETURNS ---
	{
		handler := handlers.NewReturnHandler(base, cfg.Returns)
		group := rg.Group("/returns")
		RegisterDocumentRoutes(group, handler)
		group.POST("/:id/confirm", handler.Confirm)
		group.POST("/:id/cancel", handler.Cancel)
		group.POST("/:id/lines", handler.AddLine)
		group.DELETE("/:id/lines/:lineId", handler.RemoveLine)
	}
}

func registerStockRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	handler := handlers.NewStockHandler(base, cfg.Stock)
	rg.GET("/stock", handler.List)
}

func registerCatalogRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	handler := handlers.NewCatalogHandler(base, cfg.Catalogs)

	rg.GET("/products", handler.ListProducts)
	rg.GET("/products/:id", handler.GetProduct)
	rg.GET("/warehouses", handler.ListWarehouses)
	rg.GET("/warehouses/:id", handler.GetWarehouse)
	rg.GET("/categories", handler.ListCategories)
}

// registerAccessRoutes registers role management. Reads are open to every
// authenticated user; changing links requires the admin role.
func registerAccessRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	handler := handlers.NewAccessHandler(base, cfg.Access)

	rg.GET("/roles", handler.ListRoles)
	rg.GET("/roles/:id", handler.GetRole)

	users := rg.Group("/users/:userId/roles")
	users.GET("", handler.UserRoles)

	admin := users.Group("")
	if cfg.AdminRole != "" {
		admin.Use(middleware.RequireRole(cfg.AdminRole))
	}
	admin.POST("/:roleId", handler.AssignRole)
	admin.DELETE("/:roleId", handler.RemoveRole)
}

func registerSelectionRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	handler := handlers.NewSelectionHandler(base, cfg.Selection)
	rg.GET("/selection/warehouse", handler.GetWarehouse)
	rg.PUT("/selection/warehouse", handler.SelectWarehouse)
}
