// Package repository provides the persistence port for the pricing service.
// The ledger and catalog treat storage as a plain key-value store so the
// in-memory and MongoDB implementations stay interchangeable.
package repository

import (
	"context"
	"errors"
)

// Well-known storage keys.
const (
	// KeyLedger holds the serialized batch ledger.
	KeyLedger = "cordyceps_order_history"
	// KeyCatalog holds a serialized catalog override.
	KeyCatalog = "cordyceps_catalog"
)

// ErrKeyNotFound is returned by Get when no value exists for the key.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the persistence port. Values are opaque byte payloads;
// serialization belongs to the caller.
type KeyValueStore interface {
	// Get returns the value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes the value for key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
