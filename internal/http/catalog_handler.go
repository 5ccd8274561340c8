package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zangjing/ztq-pricing-service/internal/catalog"
	"github.com/zangjing/ztq-pricing-service/internal/domain/dto"
	"github.com/zangjing/ztq-pricing-service/internal/i18n"
	"github.com/zangjing/ztq-pricing-service/internal/metrics"
	"github.com/zangjing/ztq-pricing-service/internal/middleware"
)

// CatalogHandler provides HTTP handlers for the product catalog.
type CatalogHandler struct {
	catalog *catalog.Service
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalogService *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// Get handles GET /api/catalog requests.
//
// @Summary      Get the active catalog
// @Description  Returns the active specs and bottle rules. Dispatch price tiers on specs appear only for roles allowed to see them.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Active catalog"
// @Router       /api/catalog [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	role := middleware.GetRole(c)
	NewResponseBuilder(c).SuccessOK(dto.NewCatalogResponse(h.catalog.Current(), role))
}

// Update handles PUT /api/catalog requests.
//
// @Summary      Replace the catalog
// @Description  Swaps in a full replacement catalog after shape validation. There is no partial merge. Requires a configurator role.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        request body dto.CatalogUpdateRequest true "Replacement catalog"
// @Param        Authorization header string true "Bearer token"
// @Success      200 {object} dto.SuccessResponse "Catalog after replacement"
// @Failure      400 {object} dto.ErrorResponse "Replacement failed validation"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - role may not change the catalog"
// @Security     BearerAuth
// @Router       /api/catalog [put]
func (h *CatalogHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CatalogUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	next := req.Catalog()
	if err := h.catalog.Replace(c.Request.Context(), &next); err != nil {
		metrics.RecordCatalogReload("invalid")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidCatalog, err)
		return
	}
	metrics.RecordCatalogReload("success")

	role := middleware.GetRole(c)
	builder.SuccessOK(dto.NewCatalogResponse(h.catalog.Current(), role))
}
