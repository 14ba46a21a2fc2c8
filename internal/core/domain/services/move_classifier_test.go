package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moving/internal/core/domain/model/inventory"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/pkg/errs"
)

func newTestCatalog(t *testing.T) inventory.Catalog {
	t.Helper()

	catalog, err := inventory.NewCatalog([]inventory.ItemDefinition{
		{
			ID:                   "box_small",
			Name:                 "Small box",
			Category:             "boxes",
			Dimensions:           inventory.Dimensions{WidthCm: 40, HeightCm: 40, DepthCm: 40},
			WeightKg:             5,
			ClassificationPoints: 1,
			MoveTypeMinimum:      kernel.MoveTypeLight,
		},
		{
			ID:                   "wardrobe",
			Name:                 "Wardrobe",
			Category:             "furniture",
			Dimensions:           inventory.Dimensions{WidthCm: 120, HeightCm: 200, DepthCm: 60},
			WeightKg:             30,
			ClassificationPoints: 5,
			MoveTypeMinimum:      kernel.MoveTypeLight,
		},
		{
			ID:                   "sofa_three_seat",
			Name:                 "Three-seat sofa",
			Category:             "furniture",
			Dimensions:           inventory.Dimensions{WidthCm: 220, HeightCm: 90, DepthCm: 95},
			WeightKg:             45,
			ClassificationPoints: 8,
			MoveTypeMinimum:      kernel.MoveTypeRegular,
		},
		{
			ID:                   "piano_upright",
			Name:                 "Upright piano",
			Category:             "special",
			Dimensions:           inventory.Dimensions{WidthCm: 150, HeightCm: 125, DepthCm: 60},
			WeightKg:             250,
			ClassificationPoints: 15,
			MoveTypeMinimum:      kernel.MoveTypePremium,
		},
	})
	require.NoError(t, err)

	return catalog
}

func TestMoveClassifierClassify(t *testing.T) {
	classifier := NewMoveClassifier()
	catalog := newTestCatalog(t)

	t.Run("should recommend light for an empty inventory", func(t *testing.T) {
		result, err := classifier.Classify(nil, nil, kernel.MoveTypeLight, catalog)

		require.NoError(t, err)
		assert.Equal(t, kernel.MoveTypeLight, result.RecommendedType)
		assert.Zero(t, result.TotalPoints)
		assert.Zero(t, result.TotalWeightKg)
		assert.Zero(t, result.TotalVolumeCm3)
		assert.Zero(t, result.TotalItems)
		assert.Empty(t, result.Warnings)
		assert.False(t, result.RequiresUpgrade)
	})

	t.Run("should keep light exactly at the points limit", func(t *testing.T) {
		// 5 wardrobes: 25 points, 150 kg, 5 items.
		result, err := classifier.Classify(
			map[string]int{"wardrobe": 5}, nil, kernel.MoveTypeLight, catalog)

		require.NoError(t, err)
		assert.Equal(t, 25, result.TotalPoints)
		assert.Equal(t, kernel.MoveTypeLight, result.RecommendedType)
		assert.False(t, result.RequiresUpgrade)
	})

	t.Run("should recommend regular one point above the light limit", func(t *testing.T) {
		// 5 wardrobes + 1 box: 26 points, 155 kg, 6 items.
		result, err := classifier.Classify(
			map[string]int{"wardrobe": 5, "box_small": 1}, nil, kernel.MoveTypeLight, catalog)

		require.NoError(t, err)
		assert.Equal(t, 26, result.TotalPoints)
		assert.Equal(t, kernel.MoveTypeRegular, result.RecommendedType)
		assert.True(t, result.RequiresUpgrade)
		assert.Equal(t, kernel.MoveTypeLight, result.UpgradeFrom)
		assert.Equal(t, kernel.MoveTypeRegular, result.UpgradeTo)
	})

	t.Run("should escalate on weight alone", func(t *testing.T) {
		// 1 piano: 15 points, 250 kg, 1 item. Weight crosses the light
		// limit while points and count do not.
		result, err := classifier.Classify(
			map[string]int{"piano_upright": 1}, nil, kernel.MoveTypeRegular, catalog)

		require.NoError(t, err)
		assert.Equal(t, kernel.MoveTypeRegular, result.RecommendedType)
		assert.False(t, result.RequiresUpgrade)
	})

	t.Run("should escalate on item count alone", func(t *testing.T) {
		// 16 boxes: 16 points, 80 kg, but one item over the light count.
		result, err := classifier.Classify(
			map[string]int{"box_small": 16}, nil, kernel.MoveTypeLight, catalog)

		require.NoError(t, err)
		assert.Equal(t, kernel.MoveTypeRegular, result.RecommendedType)
		assert.True(t, result.RequiresUpgrade)
	})

	t.Run("should recommend premium above the regular limits", func(t *testing.T) {
		// 6 pianos: 90 points, 1500 kg.
		result, err := classifier.Classify(
			map[string]int{"piano_upright": 6}, nil, kernel.MoveTypePremium, catalog)

		require.NoError(t, err)
		assert.Equal(t, kernel.MoveTypePremium, result.RecommendedType)
		assert.False(t, result.RequiresUpgrade)
	})

	t.Run("should never recommend an upgrade beyond premium", func(t *testing.T) {
		result, err := classifier.Classify(
			map[string]int{"piano_upright": 6}, nil, kernel.MoveTypePremium, catalog)

		require.NoError(t, err)
		assert.False(t, result.RequiresUpgrade)
		assert.Empty(t, result.UpgradeFrom)
		assert.Empty(t, result.UpgradeTo)
	})

	t.Run("should not escalate on volume", func(t *testing.T) {
		// 3 wardrobes: 4,320,000 cm³ of volume but only 15 points, 90 kg,
		// 3 items. Volume is reported, never scored.
		result, err := classifier.Classify(
			map[string]int{"wardrobe": 3}, nil, kernel.MoveTypeLight, catalog)

		require.NoError(t, err)
		assert.Equal(t, int64(4_320_000), result.TotalVolumeCm3)
		assert.Equal(t, kernel.MoveTypeLight, result.RecommendedType)
		assert.False(t, result.RequiresUpgrade)
	})

	t.Run("should skip unknown item ids", func(t *testing.T) {
		result, err := classifier.Classify(
			map[string]int{"box_small": 2, "hot_tub": 4}, nil, kernel.MoveTypeLight, catalog)

		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalPoints)
		assert.Equal(t, 2, result.TotalItems)
	})

	t.Run("should skip non-positive quantities", func(t *testing.T) {
		result, err := classifier.Classify(
			map[string]int{"box_small": 0, "wardrobe": -3},
			[]inventory.CustomItem{{ID: "c1", Name: "Aquarium", Quantity: 0}},
			kernel.MoveTypeLight, catalog)

		require.NoError(t, err)
		assert.Zero(t, result.TotalPoints)
		assert.Zero(t, result.TotalItems)
		assert.Equal(t, kernel.MoveTypeLight, result.RecommendedType)
	})

	t.Run("should warn when an item requires a higher tier", func(t *testing.T) {
		result, err := classifier.Classify(
			map[string]int{"sofa_three_seat": 1}, nil, kernel.MoveTypeLight, catalog)

		require.NoError(t, err)
		assert.Contains(t, result.Warnings, `"Three-seat sofa" requires at least a Regular move`)
	})

	t.Run("should not warn when the declared tier meets the item minimum", func(t *testing.T) {
		result, err := classifier.Classify(
			map[string]int{"sofa_three_seat": 1}, nil, kernel.MoveTypeRegular, catalog)

		require.NoError(t, err)
		assert.Empty(t, result.Warnings)
	})

	t.Run("should order minimum-tier warnings by catalog order", func(t *testing.T) {
		result, err := classifier.Classify(
			map[string]int{"piano_upright": 1, "sofa_three_seat": 1},
			nil, kernel.MoveTypeLight, catalog)

		require.NoError(t, err)
		require.Len(t, result.Warnings, 2)
		assert.Equal(t, `"Three-seat sofa" requires at least a Regular move`, result.Warnings[0])
		assert.Equal(t, `"Upright piano" requires at least a Premium move`, result.Warnings[1])
	})

	t.Run("should apply default estimates for custom items", func(t *testing.T) {
		result, err := classifier.Classify(nil,
			[]inventory.CustomItem{{ID: "c1", Name: "Aquarium", Quantity: 2}},
			kernel.MoveTypeLight, catalog)

		require.NoError(t, err)
		assert.Equal(t, 6, result.TotalPoints)
		assert.Equal(t, 40.0, result.TotalWeightKg)
		assert.Equal(t, int64(250_000), result.TotalVolumeCm3)
		assert.Equal(t, 2, result.TotalItems)
	})

	t.Run("should use the client's weight estimate for custom items", func(t *testing.T) {
		weight := 75.0
		result, err := classifier.Classify(nil,
			[]inventory.CustomItem{{ID: "c1", Name: "Safe", Quantity: 1, EstimatedWeightKg: &weight}},
			kernel.MoveTypeLight, catalog)

		require.NoError(t, err)
		assert.Equal(t, 75.0, result.TotalWeightKg)
	})

	t.Run("should warn when approaching the light points limit", func(t *testing.T) {
		// 21 boxes escalate by count; points alone also cross the 80%
		// mark, which is what drives the warning.
		result, err := classifier.Classify(
			map[string]int{"box_small": 14, "wardrobe": 2},
			nil, kernel.MoveTypeLight, catalog)

		require.NoError(t, err)
		assert.Equal(t, 24, result.TotalPoints)
		assert.Contains(t, result.Warnings, "You are approaching the limit for a Light move")
	})

	t.Run("should warn when approaching the regular points limit", func(t *testing.T) {
		// 13 wardrobes: 65 points, 390 kg, 13 items.
		result, err := classifier.Classify(
			map[string]int{"wardrobe": 13}, nil, kernel.MoveTypeRegular, catalog)

		require.NoError(t, err)
		assert.Equal(t, 65, result.TotalPoints)
		assert.Contains(t, result.Warnings, "You are approaching the limit for a Regular move")
	})

	t.Run("should not warn at the approaching threshold itself", func(t *testing.T) {
		// 4 wardrobes: exactly 20 points.
		result, err := classifier.Classify(
			map[string]int{"wardrobe": 4}, nil, kernel.MoveTypeLight, catalog)

		require.NoError(t, err)
		assert.Equal(t, 20, result.TotalPoints)
		assert.Empty(t, result.Warnings)
	})

	t.Run("should never lower the recommendation when items are added", func(t *testing.T) {
		selections := map[string]int{}
		previous := kernel.MoveTypeLight

		for i := 0; i < 50; i++ {
			selections["box_small"]++

			result, err := classifier.Classify(selections, nil, kernel.MoveTypeLight, catalog)
			require.NoError(t, err)

			assert.False(t, previous.RanksAbove(result.RecommendedType),
				"recommendation dropped from %s to %s at %d boxes",
				previous, result.RecommendedType, i+1)
			previous = result.RecommendedType
		}

		assert.Equal(t, kernel.MoveTypePremium, previous)
	})

	t.Run("should reject an unknown declared tier", func(t *testing.T) {
		_, err := classifier.Classify(nil, nil, kernel.MoveType("deluxe"), catalog)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an empty declared tier", func(t *testing.T) {
		_, err := classifier.Classify(nil, nil, "", catalog)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
