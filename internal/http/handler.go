package http

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zangjing/ztq-pricing-service/internal/catalog"
	"github.com/zangjing/ztq-pricing-service/internal/domain/dto"
	"github.com/zangjing/ztq-pricing-service/internal/domain/model"
	"github.com/zangjing/ztq-pricing-service/internal/i18n"
	"github.com/zangjing/ztq-pricing-service/internal/metrics"
	"github.com/zangjing/ztq-pricing-service/internal/middleware"
	"github.com/zangjing/ztq-pricing-service/internal/service"
)

// Handler provides HTTP handlers for pricing, correction, and label routes.
type Handler struct {
	catalog *catalog.Service
	pricing *service.PricingEngine
	labels  *service.LabelService
}

// NewHandler creates a new Handler instance.
func NewHandler(catalogService *catalog.Service, pricing *service.PricingEngine, labels *service.LabelService) *Handler {
	return &Handler{
		catalog: catalogService,
		pricing: pricing,
		labels:  labels,
	}
}

// normalizeSelection makes a submitted selection safe to price. Invalid
// packaging is corrected to the container's default, an out-of-range box
// configuration falls back to the combination's default. A valid explicit
// box choice is never clobbered.
func normalizeSelection(rule *model.BottleRule, sel model.Selection) model.Selection {
	if rule == nil {
		return sel
	}

	if !service.PackagingValid(sel.ContainerType, sel.PackagingType) {
		sel = service.CorrectStep(rule, sel)
		return service.CorrectStep(rule, sel)
	}

	opts := service.BoxConfigOptions(rule, sel.ContainerType, sel.PackagingType)
	if !slices.Contains(opts, sel.BoxConfig) {
		sel = service.CorrectStep(rule, sel)
	}
	return sel
}

// Compute handles POST /api/compute requests.
//
// @Summary      Derive totals for a configuration
// @Description  Normalizes the selection, derives root counts and the three price tiers, and returns the Chinese order description. Dispatch price tiers appear only for roles allowed to see them.
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        request body dto.ComputeRequest true "Configuration to price"
// @Param        Authorization header string false "Bearer token (elevates price visibility)"
// @Success      200 {object} dto.SuccessResponse "Derived totals"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Unknown spec or missing bottle rule"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/compute [post]
func (h *Handler) Compute(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ComputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		metrics.RecordComputation(0, "validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	spec := h.catalog.FindSpec(req.SpecID)
	rule := h.catalog.FindRule(req.SpecID)
	sel := normalizeSelection(rule, req.Selection())

	start := time.Now()
	totals, err := h.pricing.Compute(spec, rule, sel)
	if err != nil {
		metrics.RecordComputation(time.Since(start), "catalog_not_ready")
		builder.Error(http.StatusNotFound, i18n.ErrKeyCatalogNotReady, err)
		return
	}
	metrics.RecordComputation(time.Since(start), "success")

	role := middleware.GetRole(c)
	builder.SuccessOK(dto.ComputeResponse{
		Selection:      sel,
		Totals:         dto.NewTotalsView(totals, role),
		PackagingColor: model.RecommendColor(spec.RootsPerJin).Name,
		LowMargin:      spec.LowMarginWarning(),
	})
}

// Correct handles POST /api/selection/correct requests.
//
// @Summary      Normalize an edited selection
// @Description  Applies the correction rules after a spec, container, or packaging change and returns the normalized selection with the valid option lists. Box-config and quantity edits pass through untouched.
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        request body dto.CorrectRequest true "Previous and edited selection"
// @Success      200 {object} dto.SuccessResponse "Normalized selection"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Router       /api/selection/correct [post]
func (h *Handler) Correct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CorrectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	rule := h.catalog.FindRule(req.Next.SpecID)
	corrected := service.CorrectSelection(rule, req.Previous, req.Next)

	builder.SuccessOK(dto.CorrectionResponse{
		Selection:        corrected,
		AllowedPackaging: service.AllowedPackaging(corrected.ContainerType),
		BoxConfigOptions: service.BoxConfigOptions(rule, corrected.ContainerType, corrected.PackagingType),
	})
}

// BuildLabel handles POST /api/label requests.
//
// @Summary      Render a compliance label
// @Description  Builds the outer-packaging sticker for a line item: fixed compliance fields, spec and quantity text, production date, and a CODE128 traceability barcode.
// @Tags         Label
// @Accept       json
// @Produce      json
// @Param        request body dto.LabelRequest true "Line item and optional batch suffix"
// @Success      200 {object} dto.SuccessResponse "Rendered label"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Router       /api/label [post]
func (h *Handler) BuildLabel(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	builder.SuccessOK(h.labels.BuildLabel(req.Item, req.BatchSuffix))
}
