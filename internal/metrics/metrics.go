// Package metrics provides Prometheus metrics collection for the pricing service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// PricingComputationsTotal tracks total pricing computations.
	PricingComputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_computations_total",
			Help: "Total number of pricing computations",
		},
		[]string{"status"},
	)

	// PricingComputationDuration tracks pricing computation duration.
	PricingComputationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pricing_computation_duration_seconds",
			Help:    "Pricing computation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// LedgerSubmissionsTotal tracks total batch submissions.
	LedgerSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_submissions_total",
			Help: "Total number of batch submissions",
		},
		[]string{"status"},
	)

	// LedgerImportedBatchesTotal tracks batches added by merge-imports.
	LedgerImportedBatchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_imported_batches_total",
			Help: "Total number of batches added by merge-imports",
		},
	)

	// LedgerSize tracks the number of batches in the ledger.
	LedgerSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_size",
			Help: "Current number of batches in the ledger",
		},
	)

	// QueueSize tracks the number of items in the working queue.
	QueueSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "queue_size",
			Help: "Current number of items in the working queue",
		},
	)

	// CatalogReloadsTotal tracks catalog replacements by outcome.
	CatalogReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_reloads_total",
			Help: "Total number of catalog reload attempts",
		},
		[]string{"result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordComputation records metrics for one pricing computation.
func RecordComputation(duration time.Duration, status string) {
	PricingComputationDuration.Observe(duration.Seconds())
	PricingComputationsTotal.WithLabelValues(status).Inc()
}

// RecordSubmission records metrics for one batch submission attempt.
func RecordSubmission(status string, ledgerSize int) {
	LedgerSubmissionsTotal.WithLabelValues(status).Inc()
	LedgerSize.Set(float64(ledgerSize))
}

// RecordImport records metrics for a merge-import.
func RecordImport(added, ledgerSize int) {
	LedgerImportedBatchesTotal.Add(float64(added))
	LedgerSize.Set(float64(ledgerSize))
}

// RecordCatalogReload records one catalog reload attempt.
func RecordCatalogReload(result string) {
	CatalogReloadsTotal.WithLabelValues(result).Inc()
}
