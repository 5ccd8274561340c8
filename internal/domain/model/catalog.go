// Package model defines the core domain entities for the pricing configurator.
package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidCatalog is returned when a catalog payload fails structural validation.
	ErrInvalidCatalog = errors.New("catalog must contain a non-empty specs array and a bottleRules collection")
)

// ProductSpec represents one product size grade and its per-root pricing.
//
// @Description Product specification with per-root prices
type ProductSpec struct {
	// ID is the unique spec key, e.g. "1000" or "1600-1800"
	ID string `json:"id" bson:"id" example:"1000"`
	// Name is the display label, usually identical to ID
	Name string `json:"name" bson:"name" example:"1000"`
	// RootsPerJin is the roots-per-jin grade, drives the color tier recommendation
	RootsPerJin int `json:"rootsPerJin" bson:"rootsPerJin" example:"1000"`
	// RootsPerGramMin is the lower bound of roots per gram
	RootsPerGramMin float64 `json:"rootsPerGramMin" bson:"rootsPerGramMin" example:"2.0"`
	// RootsPerGramMax is the upper bound of roots per gram, equal to min for fixed-ratio grades
	RootsPerGramMax float64 `json:"rootsPerGramMax" bson:"rootsPerGramMax" example:"2.0"`
	// NagquPrice is the Nagqu dispatch price per root
	NagquPrice float64 `json:"nagquPrice" bson:"nagquPrice" example:"137"`
	// ChannelPrice is the channel dispatch price per root
	ChannelPrice float64 `json:"channelPrice" bson:"channelPrice" example:"195"`
	// MinSalesPrice is the advisory floor price per root, never feeds into totals
	MinSalesPrice float64 `json:"minSalesPrice" bson:"minSalesPrice" example:"240"`
	// RetailPrice is the suggested retail price per root
	RetailPrice float64 `json:"retailPrice" bson:"retailPrice" example:"300"`
}

// RootsPerGramText formats the roots-per-gram range as a single number when
// min equals max, otherwise as "min-max".
func (s ProductSpec) RootsPerGramText() string {
	min := strconv.FormatFloat(s.RootsPerGramMin, 'f', -1, 64)
	if s.RootsPerGramMin == s.RootsPerGramMax {
		return min
	}
	return min + "-" + strconv.FormatFloat(s.RootsPerGramMax, 'f', -1, 64)
}

// AvgRootsPerGram returns the midpoint of the roots-per-gram range.
func (s ProductSpec) AvgRootsPerGram() float64 {
	return (s.RootsPerGramMin + s.RootsPerGramMax) / 2
}

// LowMarginWarning reports whether the advisory floor price undercuts 80% of
// retail. Presentational only; it never blocks a computation or a save.
func (s ProductSpec) LowMarginWarning() bool {
	return s.MinSalesPrice < s.RetailPrice*0.8
}

// BottleRule holds the per-spec container capacities and the valid
// bottles-per-box option lists. Exactly one rule per spec is expected; a spec
// without a rule is treated as unselectable, never as an error.
type BottleRule struct {
	SpecID string `json:"specId" bson:"specId" example:"1000"`
	// SmallBottleCount is the number of roots in one multi-root small bottle
	SmallBottleCount int `json:"smallBottleCount" bson:"smallBottleCount" example:"5"`
	// MediumBottleCount is the number of roots in one medium bottle
	MediumBottleCount int `json:"mediumBottleCount" bson:"mediumBottleCount" example:"12"`
	// SmallBottlesSmallBox lists valid small-bottle counts for the exquisite box
	SmallBottlesSmallBox []int `json:"smallBottlesSmallBox" bson:"smallBottlesSmallBox"`
	// SmallBottlesLargeBox lists valid small-bottle counts for the business box
	SmallBottlesLargeBox []int `json:"smallBottlesLargeBox" bson:"smallBottlesLargeBox"`
	// MediumBottlesPerBox lists valid medium-bottle counts for the luxury box
	MediumBottlesPerBox []int `json:"mediumBottlesPerBox" bson:"mediumBottlesPerBox"`
}

// Catalog is the full reference dataset: product specs plus bottle rules.
// It is replaced wholesale, never patched.
type Catalog struct {
	Specs       []ProductSpec `json:"specs" bson:"specs"`
	BottleRules []BottleRule  `json:"bottleRules" bson:"bottleRules"`
}

// FindSpec returns the spec with the given id, or nil if absent.
func (c *Catalog) FindSpec(specID string) *ProductSpec {
	for i := range c.Specs {
		if c.Specs[i].ID == specID {
			return &c.Specs[i]
		}
	}
	return nil
}

// FindRule returns the bottle rule for the given spec id, or nil if absent.
func (c *Catalog) FindRule(specID string) *BottleRule {
	for i := range c.BottleRules {
		if c.BottleRules[i].SpecID == specID {
			return &c.BottleRules[i]
		}
	}
	return nil
}

// Validate checks the structural shape required of an override payload: a
// non-empty specs array and a present bottleRules collection. Anything deeper
// (missing rules for a spec, empty option lists) degrades at computation time
// instead of being rejected here.
func (c *Catalog) Validate() error {
	if c == nil || len(c.Specs) == 0 || c.BottleRules == nil {
		return ErrInvalidCatalog
	}
	seen := make(map[string]struct{}, len(c.Specs))
	for _, s := range c.Specs {
		if strings.TrimSpace(s.ID) == "" {
			return fmt.Errorf("%w: spec with empty id", ErrInvalidCatalog)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("%w: duplicate spec id %q", ErrInvalidCatalog, s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}

// Clone returns a deep copy so replacements never alias a published catalog.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		Specs:       make([]ProductSpec, len(c.Specs)),
		BottleRules: make([]BottleRule, len(c.BottleRules)),
	}
	copy(out.Specs, c.Specs)
	for i, r := range c.BottleRules {
		r.SmallBottlesSmallBox = append([]int(nil), r.SmallBottlesSmallBox...)
		r.SmallBottlesLargeBox = append([]int(nil), r.SmallBottlesLargeBox...)
		r.MediumBottlesPerBox = append([]int(nil), r.MediumBottlesPerBox...)
		out.BottleRules[i] = r
	}
	return out
}
