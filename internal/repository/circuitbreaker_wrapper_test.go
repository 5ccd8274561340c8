//go:build !integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zangjing/ztq-pricing-service/internal/circuitbreaker"
)

// failingStore fails every operation after tripping.
type failingStore struct {
	fail bool
}

func (f *failingStore) Get(context.Context, string) ([]byte, error) {
	if f.fail {
		return nil, errors.New("backend down")
	}
	return []byte("ok"), nil
}

func (f *failingStore) Set(context.Context, string, []byte) error {
	if f.fail {
		return errors.New("backend down")
	}
	return nil
}

func (f *failingStore) Remove(context.Context, string) error {
	if f.fail {
		return errors.New("backend down")
	}
	return nil
}

func testBreaker() *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          50 * time.Millisecond,
		Name:             "test-store",
	})
}

func TestStoreWithCircuitBreaker_PassThrough(t *testing.T) {
	ctx := context.Background()
	wrapped := NewStoreWithCircuitBreaker(&failingStore{}, testBreaker())

	got, err := wrapped.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), got)

	assert.NoError(t, wrapped.Set(ctx, "k", []byte("v")))
	assert.NoError(t, wrapped.Remove(ctx, "k"))
}

func TestStoreWithCircuitBreaker_OpenCircuit(t *testing.T) {
	ctx := context.Background()
	backend := &failingStore{fail: true}
	cb := testBreaker()
	wrapped := NewStoreWithCircuitBreaker(backend, cb)

	// Trip the breaker.
	_ = wrapped.Set(ctx, "k", nil)
	_ = wrapped.Set(ctx, "k", nil)
	require.Equal(t, circuitbreaker.StateOpen, cb.State())

	// Open circuit reads behave as empty storage.
	_, err := wrapped.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Open circuit writes fail fast.
	err = wrapped.Set(ctx, "k", []byte("v"))
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
}

func TestStoreWithCircuitBreaker_Recovers(t *testing.T) {
	ctx := context.Background()
	backend := &failingStore{fail: true}
	cb := testBreaker()
	wrapped := NewStoreWithCircuitBreaker(backend, cb)

	_ = wrapped.Set(ctx, "k", nil)
	_ = wrapped.Set(ctx, "k", nil)
	require.Equal(t, circuitbreaker.StateOpen, cb.State())

	backend.fail = false
	time.Sleep(60 * time.Millisecond)

	// Half-open probe succeeds and closes the circuit.
	assert.NoError(t, wrapped.Set(ctx, "k", []byte("v")))
	assert.Equal(t, circuitbreaker.StateClosed, cb.State())
}
