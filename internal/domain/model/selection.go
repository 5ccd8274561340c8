package model

// ContainerType identifies the bottle or container a configuration uses.
type ContainerType string

const (
	// ContainerSmallSingle is the single-root small bottle.
	ContainerSmallSingle ContainerType = "small-single"
	// ContainerSmallMulti is the multi-root small bottle.
	ContainerSmallMulti ContainerType = "small-multi"
	// ContainerMedium is the medium bottle.
	ContainerMedium ContainerType = "medium"
	// ContainerRound is the round box sold by weight instead of bottle count.
	ContainerRound ContainerType = "round"
)

// Valid reports whether the container type is one of the four known values.
func (t ContainerType) Valid() bool {
	switch t {
	case ContainerSmallSingle, ContainerSmallMulti, ContainerMedium, ContainerRound:
		return true
	}
	return false
}

// Label returns the Chinese display label for the container type.
func (t ContainerType) Label() string {
	switch t {
	case ContainerSmallSingle:
		return "单根小瓶"
	case ContainerSmallMulti:
		return "多根小瓶"
	case ContainerMedium:
		return "中瓶"
	case ContainerRound:
		return "圆盒"
	default:
		return "-"
	}
}

// PackagingType identifies the outer packaging tier.
type PackagingType string

const (
	// PackagingExquisite is the compact gift box.
	PackagingExquisite PackagingType = "exquisite"
	// PackagingBusiness is the larger business gift box.
	PackagingBusiness PackagingType = "business"
	// PackagingLuxury is the luxury gift box.
	PackagingLuxury PackagingType = "luxury"
	// PackagingBulk is loose bottles without a box.
	PackagingBulk PackagingType = "bulk"
)

// Valid reports whether the packaging type is one of the four known values.
func (p PackagingType) Valid() bool {
	switch p {
	case PackagingExquisite, PackagingBusiness, PackagingLuxury, PackagingBulk:
		return true
	}
	return false
}

// Label returns the Chinese display label for the packaging type.
func (p PackagingType) Label() string {
	switch p {
	case PackagingExquisite:
		return "精致礼盒"
	case PackagingBusiness:
		return "商务礼盒"
	case PackagingLuxury:
		return "豪华礼盒"
	case PackagingBulk:
		return "散装"
	default:
		return "-"
	}
}

// DescriptionLabel returns the longer label used inside composed descriptions.
// Bulk reads differently in a sentence than in a table cell.
func (p PackagingType) DescriptionLabel() string {
	if p == PackagingBulk {
		return "散装/简易包装"
	}
	return p.Label()
}

// Selection is one transient configuration: spec, container, packaging, box
// configuration and quantity. Weight fields only apply in round-box mode.
type Selection struct {
	SpecID        string        `json:"specId" example:"1000"`
	ContainerType ContainerType `json:"containerType" example:"small-multi"`
	PackagingType PackagingType `json:"packagingType" example:"exquisite"`
	// BoxConfig is bottles per box in bottle mode; 1 conceptually for bulk
	BoxConfig int `json:"boxConfig" example:"3"`
	// Quantity is the number of boxes, or loose bottles when packaging is bulk
	Quantity int `json:"quantity" example:"2"`
	// GramWeight is the preset per-box weight in grams, round-box mode only
	GramWeight float64 `json:"gramWeight,omitempty" example:"50"`
	// CustomGram overrides GramWeight when present and positive
	CustomGram *float64 `json:"customGram,omitempty" example:"80"`
}

// IsBoxMode reports whether the selection uses the weight-based round box.
func (s Selection) IsBoxMode() bool {
	return s.ContainerType == ContainerRound
}

// EffectiveWeight returns the custom weight when present and positive,
// otherwise the preset weight.
func (s Selection) EffectiveWeight() float64 {
	if s.CustomGram != nil && *s.CustomGram > 0 {
		return *s.CustomGram
	}
	return s.GramWeight
}
