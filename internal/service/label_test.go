package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zangjing/ztq-pricing-service/internal/domain/model"
)

func TestBuildLabelBottleMode(t *testing.T) {
	s := NewLabelService()
	s.now = func() time.Time { return time.Date(2026, 3, 5, 10, 0, 0, 0, time.Local) }

	item := model.LineItem{
		SpecName:       "1500",
		Mode:           model.ModeBottle,
		RootsPerBottle: 5,
		ItemsPerUnit:   3,
	}

	label := s.BuildLabel(item, "")

	assert.Equal(t, "扎塔奇-藏境山水", label.Brand)
	assert.Equal(t, "西藏那曲冬虫夏草", label.ProductName)
	assert.Equal(t, "初级农产品", label.Category)
	assert.Equal(t, "西藏那曲", label.Origin)
	assert.Equal(t, "DB54/T006-2021", label.Standard)
	assert.Equal(t, "那曲市冬虫夏草有限公司", label.Producer)
	assert.Equal(t, "730天", label.ShelfLife)
	assert.Equal(t, "2026年3月5日", label.ProductionDate)
	assert.Equal(t, "2026030501", label.BatchNumber)
	assert.Equal(t, "那曲市色尼区拉萨南路与滨河路交叉口西北260米", label.Site)
	assert.Equal(t, "1500根/斤", label.Spec)
	assert.Equal(t, "5根/瓶  x 3瓶", label.Quantity)
	assert.Equal(t, "NQDCXC2026030501", label.BarcodeValue)
	assert.Equal(t, "CODE128", label.BarcodeFormat)
}

func TestBuildLabelBoxMode(t *testing.T) {
	s := NewLabelService()
	s.now = func() time.Time { return time.Date(2026, 11, 21, 8, 30, 0, 0, time.Local) }

	item := model.LineItem{
		SpecName:     "2100",
		Mode:         model.ModeBox,
		ItemsPerUnit: 1,
		GramWeight:   37.5,
	}

	label := s.BuildLabel(item, "07")

	assert.Equal(t, "2026年11月21日", label.ProductionDate)
	assert.Equal(t, "2026112107", label.BatchNumber)
	assert.Equal(t, "NQDCXC2026112107", label.BarcodeValue)
	assert.Equal(t, "37.5克/盒", label.Quantity)
}

func TestLabelSpecText(t *testing.T) {
	assert.Equal(t, "1500根/斤", labelSpecText("1500"))
	assert.Equal(t, "特级规格", labelSpecText("特级规格"))
}
