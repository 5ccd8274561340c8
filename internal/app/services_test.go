package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zangjing/ztq-pricing-service/internal/domain/model"
	"github.com/zangjing/ztq-pricing-service/internal/repository"
)

func TestInitializeServices(t *testing.T) {
	t.Run("without database uses in-memory storage", func(t *testing.T) {
		services, err := InitializeServices(context.Background(), testConfig(), nil)
		require.NoError(t, err)

		require.NotNil(t, services.Catalog)
		assert.NotEmpty(t, services.Catalog.Current().Specs)
		require.NotNil(t, services.Pricing)
		require.NotNil(t, services.Queue)
		require.NotNil(t, services.Ledger)
		assert.Equal(t, 0, services.Ledger.Len())
		require.NotNil(t, services.Labels)
		require.NotNil(t, services.Exports)
		require.NotNil(t, services.Auth)
	})

	t.Run("configured accounts can log in", func(t *testing.T) {
		services, err := InitializeServices(context.Background(), testConfig(), nil)
		require.NoError(t, err)

		token, role, err := services.Auth.Login("zwz", "zhangwu1992")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "zwz", string(role))
	})

	t.Run("unreachable remote catalog falls back to built-in data", func(t *testing.T) {
		cfg := testConfig()
		cfg.Catalog.RemoteURL = "http://127.0.0.1:1/catalog.json"

		services, err := InitializeServices(context.Background(), cfg, nil)
		require.NoError(t, err)
		assert.NotEmpty(t, services.Catalog.Current().Specs)
	})

	t.Run("catalog replacement survives re-initialization over the same store", func(t *testing.T) {
		ctx := context.Background()
		db := &DatabaseComponents{Store: repository.NewMemoryStore()}

		services, err := InitializeServices(ctx, testConfig(), db)
		require.NoError(t, err)

		next := &model.Catalog{
			Specs:       []model.ProductSpec{{ID: "1000", Name: "1000", RetailPrice: 310}},
			BottleRules: []model.BottleRule{},
		}
		require.NoError(t, services.Catalog.Replace(ctx, next))

		reopened, err := InitializeServices(ctx, testConfig(), db)
		require.NoError(t, err)
		require.Len(t, reopened.Catalog.Current().Specs, 1)
		assert.Equal(t, 310.0, reopened.Catalog.FindSpec("1000").RetailPrice)
	})
}
