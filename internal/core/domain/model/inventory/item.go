package inventory

import (
	"errors"
	"fmt"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"
)

// ErrDuplicateItemID is returned when building a catalog that declares the
// same item id twice.
var ErrDuplicateItemID = errors.New("duplicate item id in catalog")

// Dimensions holds an item's nominal size in centimeters. All three sides
// must be positive.
type Dimensions struct {
	WidthCm  int
	HeightCm int
	DepthCm  int
}

// VolumeCm3 returns the item's bounding-box volume in cubic centimeters.
func (d Dimensions) VolumeCm3() int64 {
	return int64(d.WidthCm) * int64(d.HeightCm) * int64(d.DepthCm)
}

// Validate checks that all sides are positive.
func (d Dimensions) Validate() error {
	if d.WidthCm <= 0 || d.HeightCm <= 0 || d.DepthCm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("dimensions",
			fmt.Errorf("%dx%dx%d cm: all sides must be greater than 0", d.WidthCm, d.HeightCm, d.DepthCm))
	}
	return nil
}

// ItemDefinition is an immutable catalog entry describing a movable item.
// Catalog entries are externally configured and loaded at startup; the
// classifier treats ids it cannot resolve as silently skippable so that
// catalog changes never break historical bookings.
type ItemDefinition struct {
	// ID is the unique string key the booking wizard selects by.
	ID string
	// Name is the display label used in warnings.
	Name string
	// Category groups items in the wizard UI; informational here.
	Category string
	// Dimensions is the nominal packed size.
	Dimensions Dimensions
	// WeightKg is the typical weight of one unit. Non-negative.
	WeightKg float64
	// ClassificationPoints is the per-unit synthetic difficulty score.
	// Non-negative.
	ClassificationPoints int
	// MoveTypeMinimum is the lowest tier this item may be moved under,
	// independent of aggregate scoring.
	MoveTypeMinimum kernel.MoveType
}

// Validate checks the catalog entry's invariants.
func (i ItemDefinition) Validate() error {
	return errors.Join(
		i.validateID(),
		i.validateName(),
		i.Dimensions.Validate(),
		i.validateWeight(),
		i.validatePoints(),
		i.MoveTypeMinimum.Validate(),
	)
}

func (i ItemDefinition) validateID() error {
	if i.ID == "" {
		return errs.NewValueIsRequiredError("item id")
	}
	return nil
}

func (i ItemDefinition) validateName() error {
	if i.Name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	return nil
}

func (i ItemDefinition) validateWeight() error {
	if i.WeightKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%v must not be negative", i.WeightKg))
	}
	return nil
}

func (i ItemDefinition) validatePoints() error {
	if i.ClassificationPoints < 0 {
		return errs.NewValueIsInvalidErrorWithCause("classificationPoints",
			fmt.Errorf("%d must not be negative", i.ClassificationPoints))
	}
	return nil
}

// Catalog is an immutable, id-keyed collection of item definitions.
// Lookup is constant time; iteration follows declaration order so that
// warning output is reproducible.
type Catalog struct {
	items []ItemDefinition
	index map[string]int
}

// NewCatalog builds a catalog from the given definitions, validating each
// entry and rejecting duplicate ids.
func NewCatalog(items []ItemDefinition) (Catalog, error) {
	catalog := Catalog{
		items: make([]ItemDefinition, 0, len(items)),
		index: make(map[string]int, len(items)),
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Catalog{}, fmt.Errorf("catalog item %q: %w", item.ID, err)
		}
		if _, exists := catalog.index[item.ID]; exists {
			return Catalog{}, fmt.Errorf("%w: %q", ErrDuplicateItemID, item.ID)
		}
		catalog.index[item.ID] = len(catalog.items)
		catalog.items = append(catalog.items, item)
	}

	return catalog, nil
}

// Get resolves an item definition by id.
func (c Catalog) Get(id string) (ItemDefinition, bool) {
	i, ok := c.index[id]
	if !ok {
		return ItemDefinition{}, false
	}
	return c.items[i], true
}

// Items returns the definitions in declaration order.
// The returned slice is a copy; the catalog itself stays immutable.
func (c Catalog) Items() []ItemDefinition {
	out := make([]ItemDefinition, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of catalog entries.
func (c Catalog) Len() int {
	return len(c.items)
}
