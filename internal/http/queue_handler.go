package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zangjing/ztq-pricing-service/internal/catalog"
	"github.com/zangjing/ztq-pricing-service/internal/domain/dto"
	"github.com/zangjing/ztq-pricing-service/internal/i18n"
	"github.com/zangjing/ztq-pricing-service/internal/metrics"
	"github.com/zangjing/ztq-pricing-service/internal/middleware"
	"github.com/zangjing/ztq-pricing-service/internal/service"
)

// QueueHandler provides HTTP handlers for the working queue.
type QueueHandler struct {
	catalog *catalog.Service
	pricing *service.PricingEngine
	queue   *service.Queue
}

// NewQueueHandler creates a new QueueHandler instance.
func NewQueueHandler(catalogService *catalog.Service, pricing *service.PricingEngine, queue *service.Queue) *QueueHandler {
	return &QueueHandler{
		catalog: catalogService,
		pricing: pricing,
		queue:   queue,
	}
}

// List handles GET /api/queue requests.
//
// @Summary      List queued items
// @Description  Returns the working queue with role-filtered per-item and aggregate totals.
// @Tags         Queue
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Queue contents"
// @Router       /api/queue [get]
func (h *QueueHandler) List(c *gin.Context) {
	role := middleware.GetRole(c)
	NewResponseBuilder(c).SuccessOK(dto.NewQueueResponse(h.queue.Items(), h.queue.Aggregate(), role))
}

// Add handles POST /api/queue/items requests.
//
// @Summary      Add a configuration to the queue
// @Description  Normalizes and prices the configuration, snapshots it as an immutable line item, and appends it to the queue.
// @Tags         Queue
// @Accept       json
// @Produce      json
// @Param        request body dto.ComputeRequest true "Configuration to queue"
// @Success      201 {object} dto.SuccessResponse "Queued line item"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Unknown spec or missing bottle rule"
// @Router       /api/queue/items [post]
func (h *QueueHandler) Add(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.QueueAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	spec := h.catalog.FindSpec(req.SpecID)
	rule := h.catalog.FindRule(req.SpecID)
	sel := normalizeSelection(rule, req.Selection())

	totals, err := h.pricing.Compute(spec, rule, sel)
	if err != nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyCatalogNotReady, err)
		return
	}

	item := h.pricing.MaterializeItem(spec, rule, sel, totals)
	h.queue.Add(item)
	metrics.QueueSize.Set(float64(h.queue.Len()))

	builder.SuccessCreated(dto.NewItemView(item, middleware.GetRole(c)))
}

// Remove handles DELETE /api/queue/items/:id requests.
//
// @Summary      Remove a queued item
// @Description  Removes the line item with the given id. Unknown ids are reported, the queue is left untouched.
// @Tags         Queue
// @Produce      json
// @Param        id path string true "Line item id"
// @Success      200 {object} dto.SuccessResponse "Queue after removal"
// @Failure      404 {object} dto.ErrorResponse "Item not found"
// @Router       /api/queue/items/{id} [delete]
func (h *QueueHandler) Remove(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if !h.queue.Remove(c.Param("id")) {
		builder.Error(http.StatusNotFound, i18n.ErrKeyItemNotFound, nil)
		return
	}
	metrics.QueueSize.Set(float64(h.queue.Len()))

	role := middleware.GetRole(c)
	builder.SuccessOK(dto.NewQueueResponse(h.queue.Items(), h.queue.Aggregate(), role))
}

// Clear handles DELETE /api/queue requests.
//
// @Summary      Clear the queue
// @Description  Discards every queued item without submitting.
// @Tags         Queue
// @Success      204 "Queue cleared"
// @Router       /api/queue [delete]
func (h *QueueHandler) Clear(c *gin.Context) {
	h.queue.Clear()
	metrics.QueueSize.Set(0)
	c.Status(http.StatusNoContent)
}
