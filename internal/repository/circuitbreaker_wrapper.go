// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/zangjing/ztq-pricing-service/internal/circuitbreaker"
)

// StoreWithCircuitBreaker wraps a KeyValueStore with circuit breaker
// protection. When the circuit is open, reads report ErrKeyNotFound so the
// caller falls back to its in-memory state, and writes fail fast.
type StoreWithCircuitBreaker struct {
	store          KeyValueStore
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewStoreWithCircuitBreaker creates a new store wrapper with circuit breaker.
func NewStoreWithCircuitBreaker(store KeyValueStore, cb *circuitbreaker.CircuitBreaker) *StoreWithCircuitBreaker {
	return &StoreWithCircuitBreaker{
		store:          store,
		circuitBreaker: cb,
	}
}

// Get returns the value for key with circuit breaker protection.
func (s *StoreWithCircuitBreaker) Get(ctx context.Context, key string) ([]byte, error) {
	var result []byte
	err := s.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = s.store.Get(ctx, key)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - behave as if nothing is stored
		return nil, ErrKeyNotFound
	}
	return result, err
}

// Set stores the value with circuit breaker protection.
func (s *StoreWithCircuitBreaker) Set(ctx context.Context, key string, value []byte) error {
	return s.circuitBreaker.Execute(ctx, func() error {
		return s.store.Set(ctx, key, value)
	})
}

// Remove deletes the value with circuit breaker protection.
func (s *StoreWithCircuitBreaker) Remove(ctx context.Context, key string) error {
	return s.circuitBreaker.Execute(ctx, func() error {
		return s.store.Remove(ctx, key)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (s *StoreWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return s.circuitBreaker
}
