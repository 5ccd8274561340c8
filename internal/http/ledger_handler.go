package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zangjing/ztq-pricing-service/internal/domain/dto"
	"github.com/zangjing/ztq-pricing-service/internal/i18n"
	"github.com/zangjing/ztq-pricing-service/internal/metrics"
	"github.com/zangjing/ztq-pricing-service/internal/middleware"
	"github.com/zangjing/ztq-pricing-service/internal/service"
)

// maxImportBytes bounds an uploaded history backup.
const maxImportBytes = 16 << 20

// LedgerHandler provides HTTP handlers for the order history ledger.
type LedgerHandler struct {
	ledger  *service.Ledger
	queue   *service.Queue
	exports *service.ExportService
}

// NewLedgerHandler creates a new LedgerHandler instance.
func NewLedgerHandler(ledger *service.Ledger, queue *service.Queue, exports *service.ExportService) *LedgerHandler {
	return &LedgerHandler{
		ledger:  ledger,
		queue:   queue,
		exports: exports,
	}
}

// Submit handles POST /api/ledger/submit requests.
//
// @Summary      Submit the queue as a batch
// @Description  Atomically drains the queue into a timestamped, immutable batch prepended to the history. An empty queue is refused and nothing changes.
// @Tags         Ledger
// @Produce      json
// @Success      201 {object} dto.SuccessResponse "Submitted batch"
// @Failure      400 {object} dto.ErrorResponse "Queue is empty"
// @Router       /api/ledger/submit [post]
func (h *LedgerHandler) Submit(c *gin.Context) {
	builder := NewResponseBuilder(c)

	batch, err := h.ledger.Submit(c.Request.Context(), h.queue)
	if err != nil {
		if errors.Is(err, service.ErrEmptyQueue) {
			metrics.RecordSubmission("empty_queue", h.ledger.Len())
			builder.Error(http.StatusBadRequest, i18n.ErrKeyEmptyQueue, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	metrics.RecordSubmission("success", h.ledger.Len())
	metrics.QueueSize.Set(0)

	builder.SuccessCreated(dto.NewBatchView(batch, middleware.GetRole(c)))
}

// List handles GET /api/ledger requests.
//
// @Summary      List submitted batches
// @Description  Returns the full history, newest first, with role-filtered totals.
// @Tags         Ledger
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Batch history"
// @Router       /api/ledger [get]
func (h *LedgerHandler) List(c *gin.Context) {
	role := middleware.GetRole(c)
	NewResponseBuilder(c).SuccessOK(dto.NewBatchViews(h.ledger.Batches(), role))
}

// Clear handles DELETE /api/ledger requests.
//
// @Summary      Clear the history
// @Description  Removes every batch from the history and from persistent storage.
// @Tags         Ledger
// @Success      204 "History cleared"
// @Router       /api/ledger [delete]
func (h *LedgerHandler) Clear(c *gin.Context) {
	h.ledger.Clear(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// Import handles POST /api/ledger/import requests.
//
// @Summary      Merge-import a history backup
// @Description  Merges an exported JSON batch array into the history. Batches whose id already exists are skipped, the existing batch wins. The merged history is re-sorted newest first.
// @Tags         Ledger
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Merge outcome"
// @Failure      400 {object} dto.ErrorResponse "Payload is not a batch array"
// @Router       /api/ledger/import [post]
func (h *LedgerHandler) Import(c *gin.Context) {
	builder := NewResponseBuilder(c)

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	added, err := h.ledger.ImportMerge(c.Request.Context(), raw)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyImportFormat, err)
		return
	}

	metrics.RecordImport(added, h.ledger.Len())
	builder.SuccessOK(dto.ImportResponse{Added: added, Total: h.ledger.Len()})
}

// ExportJSON handles GET /api/ledger/export requests.
//
// @Summary      Export the history as JSON
// @Description  Downloads the full history as a date-stamped JSON backup suitable for merge-import.
// @Tags         Ledger
// @Produce      json
// @Success      200 {string} string "JSON backup"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/ledger/export [get]
func (h *LedgerHandler) ExportJSON(c *gin.Context) {
	data, err := h.ledger.ExportJSON()
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.exports.JSONFilename()))
	c.Data(http.StatusOK, "application/json", data)
}

// ExportCSV handles GET /api/ledger/export.csv requests.
//
// @Summary      Export the history as CSV
// @Description  Downloads the full history as a BOM-prefixed CSV. Dispatch price columns appear only for roles allowed to see them.
// @Tags         Ledger
// @Produce      text/csv
// @Success      200 {string} string "CSV export"
// @Router       /api/ledger/export.csv [get]
func (h *LedgerHandler) ExportCSV(c *gin.Context) {
	role := middleware.GetRole(c)
	data := h.exports.BuildCSV(h.ledger.Batches(), role)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.exports.CSVFilename()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
