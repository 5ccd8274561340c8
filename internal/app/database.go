// Package app provides database initialization and setup.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/zangjing/ztq-pricing-service/config"
	"github.com/zangjing/ztq-pricing-service/internal/circuitbreaker"
	"github.com/zangjing/ztq-pricing-service/internal/repository"
)

// DatabaseComponents holds storage-related components.
type DatabaseComponents struct {
	// Store is the MongoDB-backed key-value store wrapped in a circuit breaker.
	Store repository.KeyValueStore
	// KVCircuitBreaker guards the key-value store and feeds readiness checks.
	KVCircuitBreaker *circuitbreaker.CircuitBreaker
	// Mongo is the underlying connection, kept for health checks and Close.
	Mongo *repository.MongoDB
}

// InitializeDatabase initializes the MongoDB connection and the persistent
// key-value store. Returns nil if the database is disabled or the connection
// fails; callers fall back to in-memory storage.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with in-memory storage")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	kvCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-kv",
	})

	return &DatabaseComponents{
		Store:            repository.NewStoreWithCircuitBreaker(repository.NewMongoStore(db), kvCB),
		KVCircuitBreaker: kvCB,
		Mongo:            db,
	}
}
