package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zangjing/ztq-pricing-service/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:       "8080",
			RateLimit:  100,
			RateWindow: time.Minute,
		},
		Catalog: config.CatalogConfig{
			FetchTimeout: time.Second,
		},
		Auth: config.AuthConfig{
			JWTSecretKey: "test-secret",
			TokenTTL:     time.Hour,
			Accounts: []config.AccountConfig{
				{Username: "zwz", Password: "zhangwu1992", Role: "zwz"},
				{Username: "admin", Password: "zj123456", Role: "admin"},
			},
		},
		Database: config.DatabaseConfig{Enabled: false},
	}
}

func TestInitializeApp(t *testing.T) {
	application, err := InitializeApp(context.Background(), testConfig())
	require.NoError(t, err)
	require.NotNil(t, application)
	require.NotNil(t, application.Router)
	require.NotNil(t, application.Ledger)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	application.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	w = httptest.NewRecorder()
	application.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	application.Close(context.Background())
}

func TestInitializeAppRejectsUnknownRole(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.Accounts = []config.AccountConfig{
		{Username: "x", Password: "y", Role: "superuser"},
	}

	application, err := InitializeApp(context.Background(), cfg)
	assert.Error(t, err)
	assert.Nil(t, application)
}
