// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/zangjing/ztq-pricing-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidSpecID is returned when spec_id is missing.
	ErrInvalidSpecID = &ValidationError{
		Field:   "specId",
		Message: "must reference a catalog spec",
	}
	// ErrInvalidContainerType is returned when the container type is unknown.
	ErrInvalidContainerType = &ValidationError{
		Field:   "containerType",
		Message: "must be one of small-single, small-multi, medium, round",
	}
	// ErrInvalidPackagingType is returned when the packaging type is unknown.
	ErrInvalidPackagingType = &ValidationError{
		Field:   "packagingType",
		Message: "must be one of exquisite, business, luxury, bulk",
	}
	// ErrInvalidQuantity is returned when quantity is not positive.
	ErrInvalidQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must be a positive integer",
	}
	// ErrInvalidWeight is returned when a round-box selection has no usable weight.
	ErrInvalidWeight = &ValidationError{
		Field:   "gramWeight",
		Message: "must be a positive weight in round-box mode",
	}
)

// ComputeRequest represents the JSON request body for the pricing endpoint.
//
// @Description Request to derive totals and descriptions for a configuration
// @Example {"specId": "1500", "containerType": "small-multi", "packagingType": "exquisite", "boxConfig": 3, "quantity": 2}
type ComputeRequest struct {
	// SpecID references a catalog spec by id.
	SpecID string `json:"specId" binding:"required" example:"1500"`
	// ContainerType selects the bottle or round box.
	ContainerType model.ContainerType `json:"containerType" binding:"required" example:"small-multi"`
	// PackagingType selects the outer packaging tier.
	PackagingType model.PackagingType `json:"packagingType" binding:"required" example:"exquisite"`
	// BoxConfig is the bottles-per-box choice; ignored in round-box mode.
	BoxConfig int `json:"boxConfig" example:"3"`
	// Quantity is the number of boxes, or bottles for bulk.
	Quantity int `json:"quantity" binding:"required,gt=0" example:"2"`
	// GramWeight is the preset per-box weight, round-box mode only.
	GramWeight float64 `json:"gramWeight,omitempty" example:"50"`
	// CustomGram overrides GramWeight when positive.
	CustomGram *float64 `json:"customGram,omitempty" example:"80"`
} // @name ComputeRequest

// Validate performs custom validation on the request.
func (r *ComputeRequest) Validate() error {
	if r.SpecID == "" {
		return ErrInvalidSpecID
	}
	if !r.ContainerType.Valid() {
		return ErrInvalidContainerType
	}
	if !r.PackagingType.Valid() {
		return ErrInvalidPackagingType
	}
	if r.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if r.ContainerType == model.ContainerRound {
		sel := r.Selection()
		if sel.EffectiveWeight() <= 0 {
			return ErrInvalidWeight
		}
	}
	return nil
}

// Selection converts the request to a domain selection.
func (r *ComputeRequest) Selection() model.Selection {
	return model.Selection{
		SpecID:        r.SpecID,
		ContainerType: r.ContainerType,
		PackagingType: r.PackagingType,
		BoxConfig:     r.BoxConfig,
		Quantity:      r.Quantity,
		GramWeight:    r.GramWeight,
		CustomGram:    r.CustomGram,
	}
}

// CorrectRequest represents the JSON request body for the selection
// correction endpoint: the previous selection and the edited one.
//
// @Description Request to normalize an edited selection
type CorrectRequest struct {
	// Previous is the selection before the edit.
	Previous model.Selection `json:"previous"`
	// Next is the selection after the edit.
	Next model.Selection `json:"next" binding:"required"`
} // @name CorrectRequest

// Validate performs custom validation on the correction request.
func (r *CorrectRequest) Validate() error {
	if r.Next.SpecID == "" {
		return ErrInvalidSpecID
	}
	if !r.Next.ContainerType.Valid() {
		return ErrInvalidContainerType
	}
	return nil
}

// QueueAddRequest represents the JSON request body for adding the current
// configuration to the queue. It carries the same fields as a compute.
type QueueAddRequest = ComputeRequest

// LabelRequest represents the JSON request body for the label endpoint.
//
// @Description Request to render an outer-packaging sticker for a line item
type LabelRequest struct {
	// Item is the line item the sticker describes.
	Item model.LineItem `json:"item" binding:"required"`
	// BatchSuffix is appended to today's date in the production batch, default "01".
	BatchSuffix string `json:"batchSuffix,omitempty" example:"01"`
} // @name LabelRequest

// Validate performs custom validation on the label request.
func (r *LabelRequest) Validate() error {
	if r.Item.SpecName == "" {
		return &ValidationError{Field: "item.specName", Message: "is required"}
	}
	return nil
}

// CatalogUpdateRequest represents the JSON request body for replacing the
// catalog. It matches the exported catalog document shape.
//
// @Description Request to replace the product catalog
type CatalogUpdateRequest struct {
	Specs       []model.ProductSpec `json:"specs" binding:"required"`
	BottleRules []model.BottleRule  `json:"bottleRules" binding:"required"`
} // @name CatalogUpdateRequest

// Catalog converts the request to a domain catalog.
func (r *CatalogUpdateRequest) Catalog() model.Catalog {
	return model.Catalog{
		Specs:       r.Specs,
		BottleRules: r.BottleRules,
	}
}
