// Package catalog loads the inventory item catalog the classifier scores
// against. A default catalog ships embedded in the binary; deployments can
// point at their own YAML file to override it without rebuilding.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"moving/internal/core/domain/model/inventory"
	"moving/internal/core/domain/model/kernel"
)

//go:embed default_catalog.yaml
var defaultCatalogYAML []byte

type catalogFile struct {
	Items []itemEntry `yaml:"items"`
}

type itemEntry struct {
	ID                   string  `yaml:"id"`
	Name                 string  `yaml:"name"`
	Category             string  `yaml:"category"`
	WidthCm              int     `yaml:"widthCm"`
	HeightCm             int     `yaml:"heightCm"`
	DepthCm              int     `yaml:"depthCm"`
	WeightKg             float64 `yaml:"weightKg"`
	ClassificationPoints int     `yaml:"classificationPoints"`
	MoveTypeMinimum      string  `yaml:"moveTypeMinimum"`
}

// LoadDefault builds the catalog from the embedded default definitions.
func LoadDefault() (inventory.Catalog, error) {
	return parse(defaultCatalogYAML)
}

// LoadFile builds the catalog from a YAML file at the given path.
// An empty path falls back to the embedded default catalog.
func LoadFile(path string) (inventory.Catalog, error) {
	if path == "" {
		return LoadDefault()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return inventory.Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}

	return parse(data)
}

func parse(data []byte) (inventory.Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return inventory.Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Items) == 0 {
		return inventory.Catalog{}, fmt.Errorf("parse catalog: no items declared")
	}

	items := make([]inventory.ItemDefinition, 0, len(file.Items))
	for _, entry := range file.Items {
		minimum, err := kernel.ParseMoveType(entry.MoveTypeMinimum)
		if err != nil {
			return inventory.Catalog{}, fmt.Errorf("catalog item %q: %w", entry.ID, err)
		}

		items = append(items, inventory.ItemDefinition{
			ID:       entry.ID,
			Name:     entry.Name,
			Category: entry.Category,
			Dimensions: inventory.Dimensions{
				WidthCm:  entry.WidthCm,
				HeightCm: entry.HeightCm,
				DepthCm:  entry.DepthCm,
			},
			WeightKg:             entry.WeightKg,
			ClassificationPoints: entry.ClassificationPoints,
			MoveTypeMinimum:      minimum,
		})
	}

	return inventory.NewCatalog(items)
}
