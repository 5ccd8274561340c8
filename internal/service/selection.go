// Package service implements the pricing configurator's business logic:
// selection correction, pricing derivation, the working queue, the batch
// ledger, exports and labels.
package service

import (
	"github.com/zangjing/ztq-pricing-service/internal/domain/model"
)

// allowedPackaging maps each container type to its valid packaging types in
// priority order; the first entry is the container's default.
var allowedPackaging = map[model.ContainerType][]model.PackagingType{
	model.ContainerSmallSingle: {model.PackagingExquisite, model.PackagingBulk},
	model.ContainerSmallMulti:  {model.PackagingExquisite, model.PackagingBusiness, model.PackagingBulk},
	model.ContainerMedium:      {model.PackagingLuxury, model.PackagingBulk},
	model.ContainerRound:       {model.PackagingLuxury},
}

// singleSmallDefaultBottles is the fixed bottles-per-box default for the
// single-root small bottle in an exquisite box, independent of the catalog.
const singleSmallDefaultBottles = 10

// AllowedPackaging returns the valid packaging types for a container in
// priority order.
func AllowedPackaging(container model.ContainerType) []model.PackagingType {
	return allowedPackaging[container]
}

// DefaultPackaging returns the container's default packaging type.
func DefaultPackaging(container model.ContainerType) model.PackagingType {
	if opts := allowedPackaging[container]; len(opts) > 0 {
		return opts[0]
	}
	return model.PackagingExquisite
}

// PackagingValid reports whether the packaging type is allowed for the
// container type.
func PackagingValid(container model.ContainerType, packaging model.PackagingType) bool {
	for _, p := range allowedPackaging[container] {
		if p == packaging {
			return true
		}
	}
	return false
}

// BoxConfigOptions returns the valid bottles-per-box picker options for a
// container and packaging combination. Bulk always offers exactly 1; round
// mode has no box configuration and returns nil.
func BoxConfigOptions(rule *model.BottleRule, container model.ContainerType, packaging model.PackagingType) []int {
	if container == model.ContainerRound {
		return nil
	}
	switch packaging {
	case model.PackagingBulk:
		return []int{1}
	case model.PackagingExquisite:
		if container == model.ContainerSmallSingle {
			return []int{10, 11, 12}
		}
		if rule != nil {
			return append([]int(nil), rule.SmallBottlesSmallBox...)
		}
	case model.PackagingBusiness:
		if rule != nil {
			return append([]int(nil), rule.SmallBottlesLargeBox...)
		}
	case model.PackagingLuxury:
		if container == model.ContainerMedium && rule != nil {
			return append([]int(nil), rule.MediumBottlesPerBox...)
		}
	}
	return nil
}

// CorrectStep applies a single correction pass to a selection.
//
// If the packaging type is invalid for the container, only the packaging is
// replaced with the container's default; the box configuration is left for
// the next pass so a single pass never cascades. If the packaging is already
// valid, the default box configuration for the combination is applied.
// Without a bottle rule no correction happens at all: the selection is
// provisionally invalid and computation refuses separately.
func CorrectStep(rule *model.BottleRule, sel model.Selection) model.Selection {
	if rule == nil {
		return sel
	}

	if !PackagingValid(sel.ContainerType, sel.PackagingType) {
		sel.PackagingType = DefaultPackaging(sel.ContainerType)
		return sel
	}

	sel.BoxConfig = defaultBoxConfig(rule, sel.ContainerType, sel.PackagingType)
	return sel
}

// CorrectSelection corrects next after a change from prev, running CorrectStep
// to its fixed point (at most two passes). Correction fires only when a
// trigger field (spec, container or packaging) changed; a plain box-config or
// quantity edit passes through untouched so manual picks are never clobbered.
func CorrectSelection(rule *model.BottleRule, prev, next model.Selection) model.Selection {
	if prev.SpecID == next.SpecID &&
		prev.ContainerType == next.ContainerType &&
		prev.PackagingType == next.PackagingType {
		return next
	}

	corrected := CorrectStep(rule, next)
	if corrected.PackagingType != next.PackagingType {
		corrected = CorrectStep(rule, corrected)
	}
	return corrected
}

// defaultBoxConfig returns the default bottles-per-box for a valid
// container and packaging combination. Empty catalog option lists are
// degenerate data and fall back to 1 rather than failing.
func defaultBoxConfig(rule *model.BottleRule, container model.ContainerType, packaging model.PackagingType) int {
	switch packaging {
	case model.PackagingBulk:
		return 1
	case model.PackagingExquisite:
		if container == model.ContainerSmallSingle {
			return singleSmallDefaultBottles
		}
		return firstOrOne(rule.SmallBottlesSmallBox)
	case model.PackagingBusiness:
		return firstOrOne(rule.SmallBottlesLargeBox)
	case model.PackagingLuxury:
		if container == model.ContainerMedium {
			return firstOrOne(rule.MediumBottlesPerBox)
		}
		// Round mode ignores box configuration entirely.
		return 1
	}
	return 1
}

func firstOrOne(options []int) int {
	if len(options) > 0 {
		return options[0]
	}
	return 1
}
