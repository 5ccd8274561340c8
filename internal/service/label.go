package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/zangjing/ztq-pricing-service/internal/domain/model"
)

// Compliance boilerplate printed on every outer-packaging sticker.
const (
	labelBrand       = "扎塔奇-藏境山水"
	labelProductName = "西藏那曲冬虫夏草"
	labelCategory    = "初级农产品"
	labelOrigin      = "西藏那曲"
	labelStandard    = "DB54/T006-2021"
	labelProducer    = "那曲市冬虫夏草有限公司"
	labelShelfLife   = "730天"
	labelSite        = "那曲市色尼区拉萨南路与滨河路交叉口西北260米"

	// barcodePrefix starts every production batch barcode.
	barcodePrefix = "NQDCXC"
	// defaultBatchSuffix is used when no suffix is given.
	defaultBatchSuffix = "01"
)

// Label is one printable outer-packaging sticker: fixed compliance fields
// plus quantities derived from a single line item. The barcode value is
// rendered client-side as CODE128.
type Label struct {
	Brand          string `json:"brand"`
	ProductName    string `json:"productName"`
	Category       string `json:"category"`
	Origin         string `json:"origin"`
	Standard       string `json:"standard"`
	Producer       string `json:"producer"`
	ShelfLife      string `json:"shelfLife"`
	ProductionDate string `json:"productionDate"`
	BatchNumber    string `json:"batchNumber"`
	Site           string `json:"site"`
	Spec           string `json:"spec"`
	Quantity       string `json:"quantity"`
	BarcodeValue   string `json:"barcodeValue"`
	BarcodeFormat  string `json:"barcodeFormat"`
}

// LabelService builds stickers from line items.
type LabelService struct {
	now func() time.Time
}

// NewLabelService creates a LabelService.
func NewLabelService() *LabelService {
	return &LabelService{now: time.Now}
}

// BuildLabel derives the sticker for one line item. The batch suffix is
// appended to today's date to form the production batch; an empty suffix
// falls back to the default. Quantities come from the item's first-class
// fields, never from parsing its description.
func (s *LabelService) BuildLabel(item model.LineItem, suffix string) Label {
	if suffix == "" {
		suffix = defaultBatchSuffix
	}
	now := s.now()
	batch := now.Format("20060102") + suffix

	return Label{
		Brand:          labelBrand,
		ProductName:    labelProductName,
		Category:       labelCategory,
		Origin:         labelOrigin,
		Standard:       labelStandard,
		Producer:       labelProducer,
		ShelfLife:      labelShelfLife,
		ProductionDate: fmt.Sprintf("%d年%d月%d日", now.Year(), int(now.Month()), now.Day()),
		BatchNumber:    batch,
		Site:           labelSite,
		Spec:           labelSpecText(item.SpecName),
		Quantity:       labelQuantityText(item),
		BarcodeValue:   barcodePrefix + batch,
		BarcodeFormat:  "CODE128",
	}
}

// labelSpecText shows bare spec names as a roots-per-jin grade.
func labelSpecText(specName string) string {
	if strings.Contains(specName, "规格") {
		return specName
	}
	return specName + "根/斤"
}

// labelQuantityText renders the per-unit fill quantity. Labels are printed
// one per sales unit, so bottle counts are per box and box weights are for
// a single box.
func labelQuantityText(item model.LineItem) string {
	if item.Mode == model.ModeBox {
		return formatWeight(item.GramWeight) + "克/盒"
	}
	return fmt.Sprintf("%d根/瓶  x %d瓶", item.RootsPerBottle, item.ItemsPerUnit)
}
