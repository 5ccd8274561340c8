package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/zangjing/ztq-pricing-service/internal/domain/model"
)

// csvBOM makes Excel open the UTF-8 file with Chinese headers intact.
const csvBOM = "\uFEFF"

// ExportService renders ledger history into downloadable documents. Price
// columns follow the caller's role: guests get retail only.
type ExportService struct {
	now func() time.Time
}

// NewExportService creates an ExportService.
func NewExportService() *ExportService {
	return &ExportService{now: time.Now}
}

// BuildCSV renders one row per line item across all batches, newest batch
// first. Cost and channel price columns appear only for roles allowed to
// see them, so an exported file never leaks a hidden tier.
func (s *ExportService) BuildCSV(batches []model.Batch, role model.Role) []byte {
	var b strings.Builder
	b.WriteString(csvBOM)
	b.WriteString("订单ID,提交日期,规格名称,规格(根/克),类型,装瓶数量(根),总瓶数/盒数,瓶型,盒型,包装辅助标志,详情描述,电商规格,总根数")
	if role.ShowNagqu() {
		b.WriteString(",那曲发货总价")
	}
	if role.ShowChannel() {
		b.WriteString(",藏境发货总价")
	}
	b.WriteString(",建议零售总价\n")

	for _, batch := range batches {
		for _, item := range batch.Items {
			b.WriteString(batch.ID)
			b.WriteByte(',')
			b.WriteString(batch.Date)
			b.WriteByte(',')
			b.WriteString(item.SpecName)
			b.WriteByte(',')
			b.WriteString(orDash(item.RootsPerGram))
			b.WriteByte(',')
			b.WriteString(typeLabel(item.Mode))
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(item.RootsPerBottle))
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(item.BottleCount))
			b.WriteByte(',')
			b.WriteString(orDash(item.BottleType))
			b.WriteByte(',')
			b.WriteString(orDash(item.BoxType))
			b.WriteByte(',')
			b.WriteString(orDash(item.PackagingColor))
			b.WriteByte(',')
			b.WriteString(quoted(item.Details))
			b.WriteByte(',')
			b.WriteString(quoted(item.EcommerceSpec))
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(item.TotalRoots))
			if role.ShowNagqu() {
				b.WriteByte(',')
				b.WriteString(formatPrice(item.TotalNagquPrice))
			}
			if role.ShowChannel() {
				b.WriteByte(',')
				b.WriteString(formatPrice(item.TotalChannelPrice))
			}
			b.WriteByte(',')
			b.WriteString(formatPrice(item.TotalRetail))
			b.WriteByte('\n')
		}
	}
	return []byte(b.String())
}

// CSVFilename returns the date-stamped download name for a CSV export.
func (s *ExportService) CSVFilename() string {
	return "藏境扎塔奇_销售记录_" + s.now().Format("2006-01-02") + ".csv"
}

// JSONFilename returns the date-stamped download name for a JSON backup.
func (s *ExportService) JSONFilename() string {
	return "ZTQ_History_Backup_" + s.now().Format("2006-01-02") + ".json"
}

// typeLabel is the Chinese mode label in export tables.
func typeLabel(mode model.ItemMode) string {
	if mode == model.ModeBottle {
		return "瓶装"
	}
	return "礼盒"
}

// quoted wraps a field in double quotes with CSV quote doubling. Empty
// fields render as a dash like legacy exports.
func quoted(s string) string {
	if s == "" {
		return "-"
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
