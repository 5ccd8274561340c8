// Package catalog manages the reference dataset: the embedded default, an
// optional remote override, an optional stored replacement, and authorized
// full replacements.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/zangjing/ztq-pricing-service/internal/domain/model"
	"github.com/zangjing/ztq-pricing-service/internal/repository"
)

// Service holds the current catalog behind an atomic pointer so readers
// never observe a partially-updated catalog. Replacements are whole-value
// and, when a store is attached, written through so they survive restarts.
type Service struct {
	current atomic.Pointer[model.Catalog]
	store   repository.KeyValueStore
}

// NewService creates an ephemeral Service seeded with the given catalog.
// A nil or structurally invalid seed falls back to the embedded default.
func NewService(seed *model.Catalog) *Service {
	s := &Service{}
	if seed == nil || seed.Validate() != nil {
		seed = DefaultCatalog()
	}
	s.current.Store(seed.Clone())
	return s
}

// NewStoredService creates a Service whose replacements are persisted to the
// store. A previously stored replacement wins over the seed: it is the last
// catalog an operator explicitly installed. A corrupt or missing stored
// payload falls back to the seed.
func NewStoredService(ctx context.Context, seed *model.Catalog, store repository.KeyValueStore) *Service {
	s := NewService(seed)
	s.store = store
	if store == nil {
		return s
	}

	raw, err := store.Get(ctx, repository.KeyCatalog)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			log.Warn().Err(err).Msg("Stored catalog read failed, using seed data")
		}
		return s
	}

	var stored model.Catalog
	if err := json.Unmarshal(raw, &stored); err != nil || stored.Validate() != nil {
		log.Warn().Msg("Stored catalog is corrupt, using seed data")
		return s
	}
	s.current.Store(&stored)
	return s
}

// Load picks the override when it structurally validates, else the default.
// Falling back is a decision, not an error: callers only want working data.
func Load(defaultData, override *model.Catalog) *model.Catalog {
	if override != nil {
		if err := override.Validate(); err == nil {
			return override
		}
		log.Warn().Msg("Catalog override failed shape validation, using default data")
	}
	return defaultData
}

// Current returns the active catalog. The returned value must be treated as
// read-only; mutations go through Replace.
func (s *Service) Current() *model.Catalog {
	return s.current.Load()
}

// Replace swaps in a full replacement catalog after shape validation.
// There is no partial merge. The replacement is written through to the
// store when one is attached; a write failure is logged and the in-memory
// catalog stays authoritative.
func (s *Service) Replace(ctx context.Context, next *model.Catalog) error {
	if err := next.Validate(); err != nil {
		return err
	}
	s.current.Store(next.Clone())
	log.Info().
		Int("specs", len(next.Specs)).
		Int("bottle_rules", len(next.BottleRules)).
		Msg("Catalog replaced")
	s.persist(ctx, next)
	return nil
}

func (s *Service) persist(ctx context.Context, next *model.Catalog) {
	if s.store == nil {
		return
	}
	raw, err := json.Marshal(next)
	if err != nil {
		log.Error().Err(err).Msg("Catalog serialization failed, replacement not persisted")
		return
	}
	if err := s.store.Set(ctx, repository.KeyCatalog, raw); err != nil {
		log.Warn().Err(err).Msg("Catalog persistence failed, in-memory catalog stays authoritative")
	}
}

// FindSpec looks up a spec in the active catalog.
func (s *Service) FindSpec(specID string) *model.ProductSpec {
	return s.Current().FindSpec(specID)
}

// FindRule looks up a bottle rule in the active catalog.
func (s *Service) FindRule(specID string) *model.BottleRule {
	return s.Current().FindRule(specID)
}
