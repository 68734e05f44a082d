package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

type seedProduct struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock"`
	Description string          `json:"description"`
	Featured    bool            `json:"featured"`
}

// DefaultSeed returns the built-in starter catalog used when no seed file is
// configured.
func DefaultSeed() []CreateProductInput {
	return []CreateProductInput{
		{Name: "Wireless Headphones", Price: decimal.NewFromFloat(59.99), Category: "electronics", Image: "🎧", Stock: 25, Description: "Over-ear wireless headphones with 30h battery.", Featured: true},
		{Name: "Mechanical Keyboard", Price: decimal.NewFromFloat(89.00), Category: "electronics", Image: "⌨️", Stock: 12, Description: "Hot-swappable switches, RGB backlight."},
		{Name: "Ceramic Mug", Price: decimal.NewFromFloat(14.50), Category: "home", Image: "☕", Stock: 40, Description: "350ml stoneware mug, dishwasher safe."},
		{Name: "Canvas Backpack", Price: decimal.NewFromFloat(42.00), Category: "accessories", Image: "🎒", Stock: 18, Description: "Water-resistant 20L daypack.", Featured: true},
		{Name: "Desk Plant", Price: decimal.NewFromFloat(9.99), Category: "home", Image: "🪴", Stock: 30, Description: "Low-maintenance succulent in a clay pot."},
		{Name: "Notebook Set", Price: decimal.NewFromFloat(12.00), Category: "stationery", Image: "📓", Stock: 50, Description: "Three dotted A5 notebooks."},
	}
}

// LoadSeedFile reads a JSON array of seed products from path. Every invalid
// entry is reported, not just the first.
func LoadSeedFile(path string) ([]CreateProductInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var entries []seedProduct
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	var invalid error
	inputs := make([]CreateProductInput, 0, len(entries))
	for i, entry := range entries {
		if entry.Name == "" {
			invalid = multierr.Append(invalid, fmt.Errorf("seed entry %d: name is required", i))
		}
		if entry.Price.IsNegative() {
			invalid = multierr.Append(invalid, fmt.Errorf("seed entry %d: price must be non-negative", i))
		}
		if entry.Stock < 0 {
			invalid = multierr.Append(invalid, fmt.Errorf("seed entry %d: stock must be non-negative", i))
		}
		inputs = append(inputs, CreateProductInput{
			Name:        entry.Name,
			Price:       entry.Price,
			Category:    entry.Category,
			Image:       entry.Image,
			Stock:       entry.Stock,
			Description: entry.Description,
			Featured:    entry.Featured,
		})
	}
	if invalid != nil {
		return nil, invalid
	}
	return inputs, nil
}
