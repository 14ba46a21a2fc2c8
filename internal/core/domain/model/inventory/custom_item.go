package inventory

// Default estimates for user-declared items that have no catalog entry.
// A custom item is scored as a 50x50x50 cm box of 20 kg worth 3 points
// unless the user supplied their own weight estimate.
const (
	// CustomItemDefaultPoints is the classification score per custom unit.
	CustomItemDefaultPoints = 3
	// CustomItemDefaultWeightKg is the weight estimate per custom unit when
	// the user supplied none.
	CustomItemDefaultWeightKg = 20.0
	// CustomItemDefaultVolumeCm3 is the volume proxy per custom unit.
	CustomItemDefaultVolumeCm3 = int64(50 * 50 * 50)
)

// CustomItem is a user-declared item outside the catalog. Quantities of zero
// or less are ignored by the classifier rather than rejected, matching the
// tolerant handling of catalog selections.
type CustomItem struct {
	ID       string
	Name     string
	Quantity int
	// EstimatedWeightKg is the user's own weight estimate per unit; nil
	// falls back to CustomItemDefaultWeightKg.
	EstimatedWeightKg *float64
}

// WeightKgPerUnit returns the user estimate or the default.
func (c CustomItem) WeightKgPerUnit() float64 {
	if c.EstimatedWeightKg != nil {
		return *c.EstimatedWeightKg
	}
	return CustomItemDefaultWeightKg
}
