package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zangjing/ztq-pricing-service/internal/domain/dto"
)

func TestCatalogGet(t *testing.T) {
	env := setupRouter(t)

	t.Run("guest sees retail only", func(t *testing.T) {
		w := doJSON(env.router, http.MethodGet, "/api/catalog", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.CatalogResponse
		unwrapData(t, w, &resp)
		require.NotEmpty(t, resp.Specs)
		require.NotEmpty(t, resp.BottleRules)
		assert.Nil(t, resp.Specs[0].NagquPrice)
		assert.Nil(t, resp.Specs[0].ChannelPrice)
		assert.NotZero(t, resp.Specs[0].RetailPrice)
	})

	t.Run("zwz sees every tier", func(t *testing.T) {
		token := loginToken(t, env.router, "zwz", "zhangwu1992")
		w := doJSON(env.router, http.MethodGet, "/api/catalog", "", token)
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.CatalogResponse
		unwrapData(t, w, &resp)
		require.NotEmpty(t, resp.Specs)
		assert.NotNil(t, resp.Specs[0].NagquPrice)
		assert.NotNil(t, resp.Specs[0].ChannelPrice)
	})
}

func TestCatalogUpdate(t *testing.T) {
	validBody := `{
		"specs": [{"id": "1000", "name": "1000", "rootsPerJin": 1000, "rootsPerGramMin": 2.0, "rootsPerGramMax": 2.0, "nagquPrice": 137, "channelPrice": 195, "minSalesPrice": 240, "retailPrice": 300}],
		"bottleRules": [{"specId": "1000", "smallBottleCount": 5, "mediumBottleCount": 12, "smallBottlesSmallBox": [2, 3, 4], "smallBottlesLargeBox": [8, 10], "mediumBottlesPerBox": [2, 3]}]
	}`

	t.Run("guest forbidden", func(t *testing.T) {
		env := setupRouter(t)
		w := doJSON(env.router, http.MethodPut, "/api/catalog", validBody, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin replaces the catalog", func(t *testing.T) {
		env := setupRouter(t)
		token := loginToken(t, env.router, "admin", "zj123456")

		w := doJSON(env.router, http.MethodPut, "/api/catalog", validBody, token)
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.CatalogResponse
		unwrapData(t, w, &resp)
		assert.Len(t, resp.Specs, 1)
	})

	t.Run("empty specs rejected", func(t *testing.T) {
		env := setupRouter(t)
		token := loginToken(t, env.router, "admin", "zj123456")

		w := doJSON(env.router, http.MethodPut, "/api/catalog", `{"specs": [], "bottleRules": []}`, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		// rejected replacement leaves the active catalog untouched
		w = doJSON(env.router, http.MethodGet, "/api/catalog", "", "")
		var resp dto.CatalogResponse
		unwrapData(t, w, &resp)
		assert.NotEmpty(t, resp.Specs)
	})
}
