package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/zangjing/ztq-pricing-service/internal/domain/model"
)

// ErrCatalogNotReady is returned when the catalog has no spec or bottle rule
// for the current selection. The selection is not computable yet; this is a
// reported condition, never a crash.
var ErrCatalogNotReady = errors.New("catalog data not ready for selection")

// PricingEngine derives totals and descriptive strings from a valid
// selection. Computation is pure: identical inputs yield identical outputs.
type PricingEngine struct{}

// NewPricingEngine creates a PricingEngine.
func NewPricingEngine() *PricingEngine {
	return &PricingEngine{}
}

// Compute derives the totals for a selection. It refuses with
// ErrCatalogNotReady when spec or rule is absent instead of computing
// garbage; every other input, including business-rule-violating prices,
// is computed as given.
func (e *PricingEngine) Compute(spec *model.ProductSpec, rule *model.BottleRule, sel model.Selection) (model.DerivedTotals, error) {
	if spec == nil || rule == nil {
		return model.DerivedTotals{}, ErrCatalogNotReady
	}

	if sel.IsBoxMode() {
		return e.computeBoxMode(spec, sel), nil
	}
	return e.computeBottleMode(spec, rule, sel), nil
}

// RootsPerBottle returns the roots held by one bottle of the given container
// type, per the spec's bottle rule. Round containers hold no bottles.
func RootsPerBottle(rule *model.BottleRule, container model.ContainerType) int {
	switch container {
	case model.ContainerSmallSingle:
		return 1
	case model.ContainerSmallMulti:
		return rule.SmallBottleCount
	case model.ContainerMedium:
		return rule.MediumBottleCount
	default:
		return 0
	}
}

// RootsPerBox returns the approximate roots in one weight-based box, rounded
// half away from zero. Deterministic for identical inputs.
func RootsPerBox(spec *model.ProductSpec, weight float64) int {
	return int(math.Round(weight * spec.AvgRootsPerGram()))
}

func (e *PricingEngine) computeBottleMode(spec *model.ProductSpec, rule *model.BottleRule, sel model.Selection) model.DerivedTotals {
	rootsPerBottle := RootsPerBottle(rule, sel.ContainerType)
	totalBottles := sel.Quantity * sel.BoxConfig
	totalRoots := totalBottles * rootsPerBottle

	var detail string
	if sel.PackagingType == model.PackagingBulk {
		detail = fmt.Sprintf("(%d瓶散装)", sel.Quantity)
	} else {
		detail = fmt.Sprintf("(共%d盒, 每盒%d瓶)", sel.Quantity, sel.BoxConfig)
	}

	rpg := spec.RootsPerGramText()
	description := fmt.Sprintf("规格:%s(%s根/克) - %s (%d根/瓶) x %d瓶 - %s %s",
		spec.Name, rpg, sel.ContainerType.Label(), rootsPerBottle, totalBottles,
		sel.PackagingType.DescriptionLabel(), detail)

	ecommerceSpec := fmt.Sprintf("%s规格(%s根/克) %s (%d根/瓶)x%d瓶",
		spec.Name, rpg, sel.ContainerType.Label(), rootsPerBottle, totalBottles)

	return model.DerivedTotals{
		TotalRoots:        totalRoots,
		TotalNagquPrice:   float64(totalRoots) * spec.NagquPrice,
		TotalChannelPrice: float64(totalRoots) * spec.ChannelPrice,
		TotalRetail:       float64(totalRoots) * spec.RetailPrice,
		Description:       description,
		EcommerceSpec:     ecommerceSpec,
		EcommerceTitle:    ecommerceTitle(spec, totalRoots),
	}
}

func (e *PricingEngine) computeBoxMode(spec *model.ProductSpec, sel model.Selection) model.DerivedTotals {
	weight := sel.EffectiveWeight()
	rootsPerBox := RootsPerBox(spec, weight)
	totalRoots := rootsPerBox * sel.Quantity

	rpg := spec.RootsPerGramText()
	weightText := formatWeight(weight)
	description := fmt.Sprintf("规格:%s(%s根/克) - 豪华圆盒/礼盒装 (%s克/盒) (约%d根) x %d盒",
		spec.Name, rpg, weightText, rootsPerBox, sel.Quantity)

	ecommerceSpec := fmt.Sprintf("%s规格(%s根/克) 圆盒/礼盒装 (%s克/盒)x%d盒",
		spec.Name, rpg, weightText, sel.Quantity)

	return model.DerivedTotals{
		TotalRoots:        totalRoots,
		TotalNagquPrice:   float64(totalRoots) * spec.NagquPrice,
		TotalChannelPrice: float64(totalRoots) * spec.ChannelPrice,
		TotalRetail:       float64(totalRoots) * spec.RetailPrice,
		Description:       description,
		EcommerceSpec:     ecommerceSpec,
		EcommerceTitle:    ecommerceTitle(spec, totalRoots),
	}
}

// MaterializeItem snapshots a computed selection into an immutable line item.
// Label-relevant quantities (ItemsPerUnit, GramWeight) are stored as
// first-class fields so labels never re-derive them from the description.
func (e *PricingEngine) MaterializeItem(spec *model.ProductSpec, rule *model.BottleRule, sel model.Selection, totals model.DerivedTotals) model.LineItem {
	item := model.LineItem{
		ID:                uuid.New().String(),
		SpecName:          spec.Name,
		RootsPerGram:      spec.RootsPerGramText(),
		PackagingColor:    model.RecommendColor(spec.RootsPerJin).Name,
		Details:           totals.Description,
		EcommerceSpec:     totals.EcommerceSpec,
		TotalRoots:        totals.TotalRoots,
		TotalNagquPrice:   totals.TotalNagquPrice,
		TotalChannelPrice: totals.TotalChannelPrice,
		TotalRetail:       totals.TotalRetail,
		CreatedAt:         time.Now(),
	}

	if sel.IsBoxMode() {
		item.Mode = model.ModeBox
		item.BottleType = "无(圆盒)"
		item.BoxType = "豪华圆盒"
		item.ItemsPerUnit = 1
		item.GramWeight = sel.EffectiveWeight()
		return item
	}

	item.Mode = model.ModeBottle
	item.RootsPerBottle = RootsPerBottle(rule, sel.ContainerType)
	item.BottleCount = sel.Quantity * sel.BoxConfig
	item.BottleType = sel.ContainerType.Label()
	item.BoxType = sel.PackagingType.Label()
	if sel.PackagingType == model.PackagingBulk {
		item.ItemsPerUnit = 1
	} else {
		item.ItemsPerUnit = sel.BoxConfig
	}
	return item
}

func ecommerceTitle(spec *model.ProductSpec, totalRoots int) string {
	return fmt.Sprintf("藏境扎塔奇-那曲野生冬虫夏草约%.1f根/g约%d根高端虫草礼盒营养品生日寿礼送人",
		spec.AvgRootsPerGram(), totalRoots)
}

func formatWeight(weight float64) string {
	return strconv.FormatFloat(weight, 'f', -1, 64)
}
