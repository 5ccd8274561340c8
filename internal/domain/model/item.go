package model

import "time"

// ItemMode distinguishes bottle-count line items from weight-based ones.
type ItemMode string

const (
	// ModeBottle counts roots by bottles and boxes.
	ModeBottle ItemMode = "bottle"
	// ModeBox counts roots by per-box weight.
	ModeBox ItemMode = "box"
)

// DerivedTotals is the pure output of one pricing computation. It is always
// recomputed from a valid selection and never mutated in place.
//
// @Description Derived quantities and price totals for a configuration
type DerivedTotals struct {
	// TotalRoots is the total number of roots in the configured order
	TotalRoots int `json:"totalRoots" example:"30"`
	// TotalNagquPrice is TotalRoots times the spec's Nagqu price
	TotalNagquPrice float64 `json:"totalNagquPrice" example:"4110"`
	// TotalChannelPrice is TotalRoots times the spec's channel price
	TotalChannelPrice float64 `json:"totalChannelPrice" example:"5850"`
	// TotalRetail is TotalRoots times the spec's retail price
	TotalRetail float64 `json:"totalRetail" example:"9000"`
	// Description is the composed human-readable configuration summary
	Description string `json:"description"`
	// EcommerceSpec is the copy-paste listing spec line
	EcommerceSpec string `json:"ecommerceSpec"`
	// EcommerceTitle is the copy-paste listing title
	EcommerceTitle string `json:"ecommerceTitle"`
}

// LineItem is an immutable snapshot of one configured order, materialized
// when a selection is added to the queue. Label-relevant quantities are
// carried as first-class fields so nothing downstream parses Description.
type LineItem struct {
	ID       string   `json:"id" bson:"id"`
	SpecName string   `json:"specName" bson:"specName" example:"1000"`
	Mode     ItemMode `json:"type" bson:"type" example:"bottle"`
	// RootsPerGram is the formatted roots-per-gram range, e.g. "2" or "3.2-3.6"
	RootsPerGram string `json:"rootsPerGram" bson:"rootsPerGram"`
	// RootsPerBottle is roots in one bottle; 0 in box mode
	RootsPerBottle int `json:"rootsPerBottle" bson:"rootsPerBottle"`
	// BottleCount is total bottles across the whole order; 0 in box mode
	BottleCount int `json:"bottleCount" bson:"bottleCount"`
	// ItemsPerUnit is bottles per sales unit (box), 1 for bulk; 1 in box mode
	ItemsPerUnit int `json:"itemsPerUnit" bson:"itemsPerUnit"`
	// GramWeight is the per-box weight in grams; 0 in bottle mode
	GramWeight     float64 `json:"gramWeight,omitempty" bson:"gramWeight,omitempty"`
	BottleType     string  `json:"bottleType" bson:"bottleType" example:"多根小瓶"`
	BoxType        string  `json:"boxType" bson:"boxType" example:"精致礼盒"`
	PackagingColor string  `json:"packagingColor" bson:"packagingColor" example:"帝王金"`
	Details        string  `json:"details" bson:"details"`
	EcommerceSpec  string  `json:"ecommerceSpec" bson:"ecommerceSpec"`

	TotalRoots        int     `json:"totalRoots" bson:"totalRoots"`
	TotalNagquPrice   float64 `json:"totalNagquPrice" bson:"totalNagquPrice"`
	TotalChannelPrice float64 `json:"totalChannelPrice" bson:"totalChannelPrice"`
	TotalRetail       float64 `json:"totalRetail" bson:"totalRetail"`

	CreatedAt time.Time `json:"timestamp" bson:"timestamp"`
}

// Batch is an immutable snapshot of a submitted queue plus aggregate totals.
type Batch struct {
	// ID is time-derived (milliseconds since epoch) and numerically sortable
	ID string `json:"id" bson:"id" example:"1735530000000"`
	// Date is the human-readable capture time
	Date              string     `json:"date" bson:"date"`
	Items             []LineItem `json:"items" bson:"items"`
	TotalNagquPrice   float64    `json:"totalNagquPrice" bson:"totalNagquPrice"`
	TotalChannelPrice float64    `json:"totalChannelPrice" bson:"totalChannelPrice"`
	TotalRetail       float64    `json:"totalRetail" bson:"totalRetail"`
	ItemCount         int        `json:"itemCount" bson:"itemCount"`
}

// Aggregate holds component-wise sums over a set of line items.
type Aggregate struct {
	TotalNagquPrice   float64 `json:"totalNagquPrice"`
	TotalChannelPrice float64 `json:"totalChannelPrice"`
	TotalRetail       float64 `json:"totalRetail"`
	TotalRoots        int     `json:"totalRoots"`
	Count             int     `json:"count"`
}

// AggregateItems sums the price fields and root counts across items.
func AggregateItems(items []LineItem) Aggregate {
	var agg Aggregate
	for _, it := range items {
		agg.TotalNagquPrice += it.TotalNagquPrice
		agg.TotalChannelPrice += it.TotalChannelPrice
		agg.TotalRetail += it.TotalRetail
		agg.TotalRoots += it.TotalRoots
	}
	agg.Count = len(items)
	return agg
}
