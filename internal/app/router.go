// Package app provides router configuration.
package app

import (
	"github.com/zangjing/ztq-pricing-service/config"
	"github.com/zangjing/ztq-pricing-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes the health handler and router configuration.
func InitializeRouter(services *ServiceComponents, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	// Register storage health for readiness probing
	if dbComponents != nil {
		if dbComponents.KVCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_kv", dbComponents.KVCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		Catalog:        services.Catalog,
		Pricing:        services.Pricing,
		Queue:          services.Queue,
		Ledger:         services.Ledger,
		Labels:         services.Labels,
		Exports:        services.Exports,
		AuthService:    services.Auth,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
