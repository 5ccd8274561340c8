package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/api/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	before := testutil.CollectAndCount(HTTPRequestTotal)

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(HTTPRequestTotal), before)
	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, "/api/test", "200")))
}

func TestPrometheusMiddlewareUnmatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())

	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, "/no/such/route", "404")))
}

func TestRecordComputation(t *testing.T) {
	before := testutil.ToFloat64(PricingComputationsTotal.WithLabelValues("success"))

	RecordComputation(5*time.Millisecond, "success")

	assert.Equal(t, before+1, testutil.ToFloat64(PricingComputationsTotal.WithLabelValues("success")))
}

func TestRecordSubmission(t *testing.T) {
	before := testutil.ToFloat64(LedgerSubmissionsTotal.WithLabelValues("success"))

	RecordSubmission("success", 3)

	assert.Equal(t, before+1, testutil.ToFloat64(LedgerSubmissionsTotal.WithLabelValues("success")))
	assert.Equal(t, float64(3), testutil.ToFloat64(LedgerSize))
}

func TestRecordImport(t *testing.T) {
	before := testutil.ToFloat64(LedgerImportedBatchesTotal)

	RecordImport(2, 5)

	assert.Equal(t, before+2, testutil.ToFloat64(LedgerImportedBatchesTotal))
	assert.Equal(t, float64(5), testutil.ToFloat64(LedgerSize))
}

func TestRecordCatalogReload(t *testing.T) {
	before := testutil.ToFloat64(CatalogReloadsTotal.WithLabelValues("success"))

	RecordCatalogReload("success")

	assert.Equal(t, before+1, testutil.ToFloat64(CatalogReloadsTotal.WithLabelValues("success")))
}
