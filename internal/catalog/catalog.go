// Package catalog embeds the static product catalog and provides
// read-only, order-preserving access to it.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/cardapio/storefront-service/internal/domain/model"
)

//go:embed products.json
var productsJSON []byte

// Catalog is the immutable in-memory catalog. Category and product
// order follow the embedded data.
type Catalog struct {
	categories []model.Category
	byCategory map[string]int
	byProduct  map[string]model.Product
}

type catalogFile struct {
	Categories []model.Category `json:"categories"`
}

// Load parses the embedded catalog data and builds lookup indexes.
func Load() (*Catalog, error) {
	var file catalogFile
	if err := json.Unmarshal(productsJSON, &file); err != nil {
		return nil, fmt.Errorf("catalog: parse embedded data: %w", err)
	}
	return New(file.Categories)
}

// New builds a catalog from the given categories, validating IDs.
func New(categories []model.Category) (*Catalog, error) {
	c := &Catalog{
		categories: categories,
		byCategory: make(map[string]int, len(categories)),
		byProduct:  make(map[string]model.Product),
	}
	for i, cat := range categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("catalog: category %d has no id", i)
		}
		if _, dup := c.byCategory[cat.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate category %q", cat.ID)
		}
		c.byCategory[cat.ID] = i
		for _, p := range cat.Products {
			if p.ID == "" {
				return nil, fmt.Errorf("catalog: product %q in %q has no id", p.Name, cat.ID)
			}
			if _, dup := c.byProduct[p.ID]; dup {
				return nil, fmt.Errorf("catalog: duplicate product %q", p.ID)
			}
			c.byProduct[p.ID] = p
		}
	}
	return c, nil
}

// MustLoad is Load for wiring paths where a malformed embed is a
// packaging defect.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Categories returns all categories in display order.
func (c *Catalog) Categories() []model.Category {
	return c.categories
}

// Category returns a category by ID.
func (c *Catalog) Category(id string) (model.Category, bool) {
	i, ok := c.byCategory[id]
	if !ok {
		return model.Category{}, false
	}
	return c.categories[i], true
}

// Product returns a product by its slug.
func (c *Catalog) Product(id string) (model.Product, bool) {
	p, ok := c.byProduct[id]
	return p, ok
}

// Option returns a product variant by index.
func (c *Catalog) Option(productID string, index int) (model.ProductOption, bool) {
	p, ok := c.byProduct[productID]
	if !ok || index < 0 || index >= len(p.Options) {
		return model.ProductOption{}, false
	}
	return p.Options[index], true
}
