// Package dto defines the role-filtered response views. Hidden price tiers
// are stripped server-side before serialization so they never reach a
// caller who may not see them.
package dto

import (
	"github.com/zangjing/ztq-pricing-service/internal/domain/model"
)

// SpecView is a product spec with role-filtered price tiers.
type SpecView struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	RootsPerJin     int      `json:"rootsPerJin"`
	RootsPerGramMin float64  `json:"rootsPerGramMin"`
	RootsPerGramMax float64  `json:"rootsPerGramMax"`
	NagquPrice      *float64 `json:"nagquPrice,omitempty"`
	ChannelPrice    *float64 `json:"channelPrice,omitempty"`
	MinSalesPrice   *float64 `json:"minSalesPrice,omitempty"`
	RetailPrice     float64  `json:"retailPrice"`
}

// NewSpecView filters one spec for the role.
func NewSpecView(spec model.ProductSpec, role model.Role) SpecView {
	v := SpecView{
		ID:              spec.ID,
		Name:            spec.Name,
		RootsPerJin:     spec.RootsPerJin,
		RootsPerGramMin: spec.RootsPerGramMin,
		RootsPerGramMax: spec.RootsPerGramMax,
		RetailPrice:     spec.RetailPrice,
	}
	if role.ShowNagqu() {
		v.NagquPrice = ptr(spec.NagquPrice)
	}
	if role.ShowChannel() {
		v.ChannelPrice = ptr(spec.ChannelPrice)
		v.MinSalesPrice = ptr(spec.MinSalesPrice)
	}
	return v
}

// CatalogResponse is the catalog with role-filtered spec prices. Bottle
// rules carry no pricing and pass through unfiltered.
type CatalogResponse struct {
	Specs       []SpecView         `json:"specs"`
	BottleRules []model.BottleRule `json:"bottleRules"`
}

// NewCatalogResponse filters a catalog for the role.
func NewCatalogResponse(catalog *model.Catalog, role model.Role) CatalogResponse {
	specs := make([]SpecView, len(catalog.Specs))
	for i, s := range catalog.Specs {
		specs[i] = NewSpecView(s, role)
	}
	return CatalogResponse{
		Specs:       specs,
		BottleRules: catalog.BottleRules,
	}
}

// TotalsView is a pricing result with role-filtered totals.
type TotalsView struct {
	TotalRoots        int      `json:"totalRoots"`
	TotalNagquPrice   *float64 `json:"totalNagquPrice,omitempty"`
	TotalChannelPrice *float64 `json:"totalChannelPrice,omitempty"`
	TotalRetail       float64  `json:"totalRetail"`
	Description       string   `json:"description"`
	EcommerceSpec     string   `json:"ecommerceSpec"`
	EcommerceTitle    string   `json:"ecommerceTitle"`
}

// NewTotalsView filters derived totals for the role.
func NewTotalsView(totals model.DerivedTotals, role model.Role) TotalsView {
	v := TotalsView{
		TotalRoots:     totals.TotalRoots,
		TotalRetail:    totals.TotalRetail,
		Description:    totals.Description,
		EcommerceSpec:  totals.EcommerceSpec,
		EcommerceTitle: totals.EcommerceTitle,
	}
	if role.ShowNagqu() {
		v.TotalNagquPrice = ptr(totals.TotalNagquPrice)
	}
	if role.ShowChannel() {
		v.TotalChannelPrice = ptr(totals.TotalChannelPrice)
	}
	return v
}

// ComputeResponse is the pricing endpoint's payload: the corrected
// selection alongside its role-filtered totals and color recommendation.
type ComputeResponse struct {
	Selection      model.Selection `json:"selection"`
	Totals         TotalsView      `json:"totals"`
	PackagingColor string          `json:"packagingColor"`
	LowMargin      bool            `json:"lowMargin,omitempty"`
}

// ItemView is a line item with role-filtered price totals.
type ItemView struct {
	ID                string         `json:"id"`
	SpecName          string         `json:"specName"`
	Mode              model.ItemMode `json:"type"`
	RootsPerGram      string         `json:"rootsPerGram"`
	RootsPerBottle    int            `json:"rootsPerBottle"`
	BottleCount       int            `json:"bottleCount"`
	ItemsPerUnit      int            `json:"itemsPerUnit"`
	GramWeight        float64        `json:"gramWeight,omitempty"`
	BottleType        string         `json:"bottleType"`
	BoxType           string         `json:"boxType"`
	PackagingColor    string         `json:"packagingColor"`
	Details           string         `json:"details"`
	EcommerceSpec     string         `json:"ecommerceSpec"`
	TotalRoots        int            `json:"totalRoots"`
	TotalNagquPrice   *float64       `json:"totalNagquPrice,omitempty"`
	TotalChannelPrice *float64       `json:"totalChannelPrice,omitempty"`
	TotalRetail       float64        `json:"totalRetail"`
}

// NewItemView filters one line item for the role.
func NewItemView(item model.LineItem, role model.Role) ItemView {
	v := ItemView{
		ID:             item.ID,
		SpecName:       item.SpecName,
		Mode:           item.Mode,
		RootsPerGram:   item.RootsPerGram,
		RootsPerBottle: item.RootsPerBottle,
		BottleCount:    item.BottleCount,
		ItemsPerUnit:   item.ItemsPerUnit,
		GramWeight:     item.GramWeight,
		BottleType:     item.BottleType,
		BoxType:        item.BoxType,
		PackagingColor: item.PackagingColor,
		Details:        item.Details,
		EcommerceSpec:  item.EcommerceSpec,
		TotalRoots:     item.TotalRoots,
		TotalRetail:    item.TotalRetail,
	}
	if role.ShowNagqu() {
		v.TotalNagquPrice = ptr(item.TotalNagquPrice)
	}
	if role.ShowChannel() {
		v.TotalChannelPrice = ptr(item.TotalChannelPrice)
	}
	return v
}

// NewItemViews filters a slice of line items for the role.
func NewItemViews(items []model.LineItem, role model.Role) []ItemView {
	out := make([]ItemView, len(items))
	for i, item := range items {
		out[i] = NewItemView(item, role)
	}
	return out
}

// QueueResponse is the working queue with role-filtered aggregates.
type QueueResponse struct {
	Items             []ItemView `json:"items"`
	TotalRoots        int        `json:"totalRoots"`
	TotalNagquPrice   *float64   `json:"totalNagquPrice,omitempty"`
	TotalChannelPrice *float64   `json:"totalChannelPrice,omitempty"`
	TotalRetail       float64    `json:"totalRetail"`
	Count             int        `json:"count"`
}

// NewQueueResponse filters queue items and their aggregate for the role.
func NewQueueResponse(items []model.LineItem, agg model.Aggregate, role model.Role) QueueResponse {
	r := QueueResponse{
		Items:       NewItemViews(items, role),
		TotalRoots:  agg.TotalRoots,
		TotalRetail: agg.TotalRetail,
		Count:       agg.Count,
	}
	if role.ShowNagqu() {
		r.TotalNagquPrice = ptr(agg.TotalNagquPrice)
	}
	if role.ShowChannel() {
		r.TotalChannelPrice = ptr(agg.TotalChannelPrice)
	}
	return r
}

// BatchView is a submitted batch with role-filtered totals.
type BatchView struct {
	ID                string     `json:"id"`
	Date              string     `json:"date"`
	Items             []ItemView `json:"items"`
	TotalNagquPrice   *float64   `json:"totalNagquPrice,omitempty"`
	TotalChannelPrice *float64   `json:"totalChannelPrice,omitempty"`
	TotalRetail       float64    `json:"totalRetail"`
	ItemCount         int        `json:"itemCount"`
}

// NewBatchView filters one batch for the role.
func NewBatchView(batch model.Batch, role model.Role) BatchView {
	v := BatchView{
		ID:          batch.ID,
		Date:        batch.Date,
		Items:       NewItemViews(batch.Items, role),
		TotalRetail: batch.TotalRetail,
		ItemCount:   batch.ItemCount,
	}
	if role.ShowNagqu() {
		v.TotalNagquPrice = ptr(batch.TotalNagquPrice)
	}
	if role.ShowChannel() {
		v.TotalChannelPrice = ptr(batch.TotalChannelPrice)
	}
	return v
}

// NewBatchViews filters a slice of batches for the role.
func NewBatchViews(batches []model.Batch, role model.Role) []BatchView {
	out := make([]BatchView, len(batches))
	for i, b := range batches {
		out[i] = NewBatchView(b, role)
	}
	return out
}

// CorrectionResponse is the normalized selection plus the option lists the
// caller needs to re-render its pickers.
type CorrectionResponse struct {
	Selection        model.Selection       `json:"selection"`
	AllowedPackaging []model.PackagingType `json:"allowedPackaging"`
	BoxConfigOptions []int                 `json:"boxConfigOptions"`
}

// ImportResponse reports the outcome of a merge-import.
type ImportResponse struct {
	// Added is the number of batches actually merged in.
	Added int `json:"added"`
	// Total is the history size after the merge.
	Total int `json:"total"`
}

func ptr(v float64) *float64 {
	return &v
}
