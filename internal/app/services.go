// Package app provides service initialization.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/zangjing/ztq-pricing-service/config"
	"github.com/zangjing/ztq-pricing-service/internal/catalog"
	"github.com/zangjing/ztq-pricing-service/internal/domain/model"
	"github.com/zangjing/ztq-pricing-service/internal/repository"
	"github.com/zangjing/ztq-pricing-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog *catalog.Service
	Pricing *service.PricingEngine
	Queue   *service.Queue
	Ledger  *service.Ledger
	Labels  *service.LabelService
	Exports *service.ExportService
	Auth    service.AuthService
}

// InitializeServices initializes the business logic services. The catalog is
// seeded from the optional remote override, the ledger restores persisted
// history from storage (in-memory when no database is configured).
func InitializeServices(ctx context.Context, cfg config.Config, dbComponents *DatabaseComponents) (*ServiceComponents, error) {
	seed := loadCatalogSeed(ctx, cfg.Catalog)

	var store repository.KeyValueStore
	if dbComponents != nil {
		store = dbComponents.Store
	} else {
		store = repository.NewMemoryStore()
	}

	authService, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	return &ServiceComponents{
		Catalog: catalog.NewStoredService(ctx, seed, store),
		Pricing: service.NewPricingEngine(),
		Queue:   service.NewQueue(),
		Ledger:  service.NewLedger(ctx, store),
		Labels:  service.NewLabelService(),
		Exports: service.NewExportService(),
		Auth:    authService,
	}, nil
}

// loadCatalogSeed fetches the remote catalog override when one is configured
// and falls back to the embedded default on any failure.
func loadCatalogSeed(ctx context.Context, cfg config.CatalogConfig) *model.Catalog {
	provider := catalog.NewRemoteProvider(cfg.RemoteURL, cfg.FetchTimeout)
	override, err := provider.Fetch(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Remote catalog fetch failed, using built-in data")
	}
	return catalog.Load(catalog.DefaultCatalog(), override)
}
