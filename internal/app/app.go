// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/zangjing/ztq-pricing-service/config"
	"github.com/zangjing/ztq-pricing-service/internal/http"
	"github.com/zangjing/ztq-pricing-service/internal/repository"
	"github.com/zangjing/ztq-pricing-service/internal/service"
)

// App holds the wired application and the handles needed for shutdown.
type App struct {
	Router *gin.Engine
	Ledger *service.Ledger

	mongo *repository.MongoDB
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(ctx context.Context, cfg config.Config) (*App, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize storage (MongoDB behind a circuit breaker, or in-memory)
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize business services
	serviceComponents, err := InitializeServices(ctx, cfg, dbComponents)
	if err != nil {
		return nil, err
	}

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	app := &App{
		Router: http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		Ledger: serviceComponents.Ledger,
	}
	if dbComponents != nil {
		app.mongo = dbComponents.Mongo
	}
	return app, nil
}

// Close flushes in-flight ledger writes and releases storage connections.
func (a *App) Close(ctx context.Context) {
	if a.Ledger != nil {
		a.Ledger.Flush()
	}
	if a.mongo != nil {
		if err := a.mongo.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Closing MongoDB connection failed")
		}
	}
}
