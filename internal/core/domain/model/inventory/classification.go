package inventory

import "moving/internal/core/domain/model/kernel"

// Classification is the ephemeral result of classifying an inventory.
// It is recomputed on every selection change and never persisted as
// authoritative until move creation.
//
// TotalVolumeCm3 is informational: it is aggregated and reported but does
// not feed the tier decision.
type Classification struct {
	// RecommendedType is the tier the aggregates call for.
	RecommendedType kernel.MoveType

	// Aggregate scalars, all non-negative.
	TotalPoints    int
	TotalWeightKg  float64
	TotalVolumeCm3 int64
	TotalItems     int

	// Warnings lists human-readable notices in a fixed order: per-item
	// minimum-tier warnings (catalog order) first, then approaching-limit
	// warnings.
	Warnings []string

	// RequiresUpgrade is true iff RecommendedType ranks strictly above the
	// caller's declared tier. UpgradeFrom/UpgradeTo are populated only then.
	RequiresUpgrade bool
	UpgradeFrom     kernel.MoveType
	UpgradeTo       kernel.MoveType
}
