package services

import (
	"fmt"

	"moving/internal/core/domain/model/inventory"
	"moving/internal/core/domain/model/kernel"
)

// tierLimits holds the maxima a tier can absorb before the next tier is
// recommended. Volume is deliberately absent: it is aggregated for display
// but does not drive escalation.
type tierLimits struct {
	maxPoints   int
	maxWeightKg float64
	maxItems    int
}

var (
	lightLimits   = tierLimits{maxPoints: 25, maxWeightKg: 200, maxItems: 15}
	regularLimits = tierLimits{maxPoints: 80, maxWeightKg: 800, maxItems: 40}
	// premium: anything above regular
)

// Approaching-limit points thresholds, 80% of the tier's points ceiling.
const (
	lightApproachingPoints   = 20
	regularApproachingPoints = 64
)

// exceeds reports whether any single dimension crosses the tier's limit.
// Dimensions are evaluated independently; one crossing suffices.
func (l tierLimits) exceeds(points int, weightKg float64, items int) bool {
	return points > l.maxPoints || weightKg > l.maxWeightKg || items > l.maxItems
}

// MoveClassifier scores an inventory into a recommended service tier.
//
// Classification is a pure computation: no side effects, no I/O, safe to
// call concurrently and on every selection change in the booking wizard.
// Numeric aggregates are independent of map iteration order; warning order
// follows catalog declaration order so it is reproducible.
//
// Example usage:
//
//	classifier := services.NewMoveClassifier()
//	result, err := classifier.Classify(selections, customItems, kernel.MoveTypeLight, catalog)
//	if err != nil {
//	    // declared tier was not a recognized value
//	}
//	if result.RequiresUpgrade {
//	    // prompt the client to upgrade from result.UpgradeFrom to result.UpgradeTo
//	}
type MoveClassifier struct{}

// NewMoveClassifier creates a MoveClassifier instance.
func NewMoveClassifier() MoveClassifier {
	return MoveClassifier{}
}

// Classify computes the classification of the given inventory against the
// caller's declared tier.
//
// Input handling is tolerant by design: selections with quantity ≤ 0 and
// custom items with quantity ≤ 0 are ignored, and selection ids without a
// catalog entry are silently skipped, because the catalog is configured
// independently of historical bookings. The only rejected input is a
// declared tier outside the known vocabulary.
//
// The algorithm:
//  1. accumulate points, weight, volume, and item count over catalog-backed
//     selections
//  2. emit a warning for every selected item whose minimum tier ranks above
//     the declared tier
//  3. add fixed default estimates for custom items
//  4. recommend the lowest tier whose limits absorb the aggregates, where
//     any single dimension (points, weight, items) crossing a limit
//     escalates
//  5. flag an upgrade when the recommendation ranks above the declared tier
//  6. append approaching-limit warnings at 80% of the declared tier's
//     points ceiling
func (MoveClassifier) Classify(
	selections map[string]int,
	customItems []inventory.CustomItem,
	currentType kernel.MoveType,
	catalog inventory.Catalog,
) (inventory.Classification, error) {
	if err := currentType.Validate(); err != nil {
		return inventory.Classification{}, err
	}

	var (
		totalPoints    int
		totalWeightKg  float64
		totalVolumeCm3 int64
		totalItems     int
		warnings       []string
	)

	// Iterating the catalog (not the selection map) keeps warning order
	// stable and skips unknown ids in one pass.
	for _, item := range catalog.Items() {
		quantity := selections[item.ID]
		if quantity <= 0 {
			continue
		}

		totalPoints += item.ClassificationPoints * quantity
		totalWeightKg += item.WeightKg * float64(quantity)
		totalVolumeCm3 += item.Dimensions.VolumeCm3() * int64(quantity)
		totalItems += quantity

		if item.MoveTypeMinimum.RanksAbove(currentType) {
			warnings = append(warnings, fmt.Sprintf(
				"%q requires at least a %s move", item.Name, tierLabel(item.MoveTypeMinimum)))
		}
	}

	for _, custom := range customItems {
		if custom.Quantity <= 0 {
			continue
		}

		totalItems += custom.Quantity
		totalPoints += inventory.CustomItemDefaultPoints * custom.Quantity
		totalWeightKg += custom.WeightKgPerUnit() * float64(custom.Quantity)
		totalVolumeCm3 += inventory.CustomItemDefaultVolumeCm3 * int64(custom.Quantity)
	}

	recommendedType := kernel.MoveTypeLight
	switch {
	case regularLimits.exceeds(totalPoints, totalWeightKg, totalItems):
		recommendedType = kernel.MoveTypePremium
	case lightLimits.exceeds(totalPoints, totalWeightKg, totalItems):
		recommendedType = kernel.MoveTypeRegular
	}

	requiresUpgrade := recommendedType.RanksAbove(currentType)

	if currentType == kernel.MoveTypeLight && totalPoints > lightApproachingPoints {
		warnings = append(warnings, "You are approaching the limit for a Light move")
	}
	if currentType == kernel.MoveTypeRegular && totalPoints > regularApproachingPoints {
		warnings = append(warnings, "You are approaching the limit for a Regular move")
	}

	result := inventory.Classification{
		RecommendedType: recommendedType,
		TotalPoints:     totalPoints,
		TotalWeightKg:   totalWeightKg,
		TotalVolumeCm3:  totalVolumeCm3,
		TotalItems:      totalItems,
		Warnings:        warnings,
		RequiresUpgrade: requiresUpgrade,
	}
	if requiresUpgrade {
		result.UpgradeFrom = currentType
		result.UpgradeTo = recommendedType
	}

	return result, nil
}

// tierLabel renders a tier for user-facing warning text.
func tierLabel(t kernel.MoveType) string {
	switch t {
	case kernel.MoveTypeLight:
		return "Light"
	case kernel.MoveTypeRegular:
		return "Regular"
	case kernel.MoveTypePremium:
		return "Premium"
	default:
		return string(t)
	}
}
