//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zangjing/ztq-pricing-service/config"
	"github.com/zangjing/ztq-pricing-service/internal/testutil"
)

func TestInitializeDatabaseIntegration(t *testing.T) {
	cfg := config.DatabaseConfig{
		URI:                            testutil.GetSharedContainerURI(),
		DatabaseName:                   testutil.SanitizeDBName(t.Name()),
		Enabled:                        true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}

	components := InitializeDatabase(cfg)
	require.NotNil(t, components)
	require.NotNil(t, components.Store)
	require.NotNil(t, components.KVCircuitBreaker)
	require.NotNil(t, components.Mongo)

	defer func() {
		_ = components.Mongo.Close(context.Background())
	}()

	ctx := context.Background()
	require.NoError(t, components.Mongo.HealthCheck(ctx))

	// Round-trip through the wrapped store
	require.NoError(t, components.Store.Set(ctx, "probe", []byte(`{"ok":true}`)))
	data, err := components.Store.Get(ctx, "probe")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(data))
	require.NoError(t, components.Store.Remove(ctx, "probe"))
}

func TestInitializeAppWithDatabase(t *testing.T) {
	cfg := testConfig()
	cfg.Database = config.DatabaseConfig{
		URI:                            testutil.GetSharedContainerURI(),
		DatabaseName:                   testutil.SanitizeDBName(t.Name()),
		Enabled:                        true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}

	application, err := InitializeApp(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, application)

	application.Close(context.Background())
}
