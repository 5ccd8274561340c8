package http

import (
	"github.com/gin-gonic/gin"

	"github.com/zangjing/ztq-pricing-service/internal/middleware"
	"github.com/zangjing/ztq-pricing-service/internal/service"
)

// PricingRoutes handles pricing, queue, ledger, label, and catalog route
// registration.
type PricingRoutes struct {
	handler        *Handler
	queueHandler   *QueueHandler
	ledgerHandler  *LedgerHandler
	catalogHandler *CatalogHandler
}

// NewPricingRoutes creates a new PricingRoutes instance from the router
// configuration.
func NewPricingRoutes(cfg *RouterConfig) *PricingRoutes {
	return &PricingRoutes{
		handler:        NewHandler(cfg.Catalog, cfg.Pricing, cfg.Labels),
		queueHandler:   NewQueueHandler(cfg.Catalog, cfg.Pricing, cfg.Queue),
		ledgerHandler:  NewLedgerHandler(cfg.Ledger, cfg.Queue, cfg.Exports),
		catalogHandler: NewCatalogHandler(cfg.Catalog),
	}
}

// RegisterRoutes registers the domain routes on the API group. All routes
// are guest-readable, role filtering happens in the handlers; only catalog
// replacement demands an elevated role.
func (r *PricingRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/compute", r.handler.Compute)
	rg.POST("/selection/correct", r.handler.Correct)
	rg.POST("/label", r.handler.BuildLabel)

	queue := rg.Group("/queue")
	{
		queue.GET("", r.queueHandler.List)
		queue.DELETE("", r.queueHandler.Clear)
		queue.POST("/items", r.queueHandler.Add)
		queue.DELETE("/items/:id", r.queueHandler.Remove)
	}

	ledger := rg.Group("/ledger")
	{
		ledger.GET("", r.ledgerHandler.List)
		ledger.DELETE("", r.ledgerHandler.Clear)
		ledger.POST("/submit", r.ledgerHandler.Submit)
		ledger.POST("/import", r.ledgerHandler.Import)
		ledger.GET("/export", r.ledgerHandler.ExportJSON)
		ledger.GET("/export.csv", r.ledgerHandler.ExportCSV)
	}

	rg.GET("/catalog", r.catalogHandler.Get)
	rg.PUT("/catalog", middleware.RequireConfigurator(), r.catalogHandler.Update)
}

// AuthRoutes handles authentication route registration.
type AuthRoutes struct {
	handler *AuthHandler
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(authService service.AuthService) *AuthRoutes {
	return &AuthRoutes{handler: NewAuthHandler(authService)}
}

// RegisterRoutes registers authentication routes on the API group.
func (r *AuthRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", r.handler.Login)
		auth.POST("/logout", r.handler.Logout)
	}
}
