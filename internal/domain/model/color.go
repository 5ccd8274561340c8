package model

// ColorTier is the recommended packaging accent color for a size grade.
type ColorTier struct {
	ID    string `json:"id" example:"gold"`
	Name  string `json:"name" example:"帝王金"`
	Range string `json:"range" example:"900-1500规格"`
	Desc  string `json:"desc" example:"高端奢华 · 尊贵首选"`
}

var (
	// ColorGold is recommended for grades up to 1500 roots per jin.
	ColorGold = ColorTier{ID: "gold", Name: "帝王金", Range: "900-1500规格", Desc: "高端奢华 · 尊贵首选"}
	// ColorGreen is recommended for grades up to 2200 roots per jin.
	ColorGreen = ColorTier{ID: "green", Name: "松石绿", Range: "1600-2200规格", Desc: "清新典雅 · 自然纯粹"}
	// ColorRed is recommended for grades above 2200 roots per jin.
	ColorRed = ColorTier{ID: "red", Name: "朱砂红", Range: "2200-3000规格", Desc: "喜庆吉祥 · 礼赠佳品"}
)

// RecommendColor maps a roots-per-jin grade to its packaging color tier.
func RecommendColor(rootsPerJin int) ColorTier {
	switch {
	case rootsPerJin <= 1500:
		return ColorGold
	case rootsPerJin <= 2200:
		return ColorGreen
	default:
		return ColorRed
	}
}
