// Package catalog loads the product catalog the dev cart service is seeded with.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iudanet/cartsync/pkg/api"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog wraps validation failures of a catalog file
var ErrInvalidCatalog = errors.New("invalid catalog")

// Entry товар в YAML каталоге
type Entry struct {
	ComparePrice *float64 `yaml:"compare_price"`
	NumericID    *int64   `yaml:"numeric_id"`
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Image        string   `yaml:"image"`
	Images       []string `yaml:"images"`
	Price        float64  `yaml:"price"`
}

type file struct {
	Products []Entry `yaml:"products"`
}

// Store is where seeded products go.
type Store interface {
	UpsertProduct(ctx context.Context, p *api.Product) error
}

// Load reads a catalog file.
func Load(path string) ([]*api.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses and validates a catalog document.
func Decode(r io.Reader) ([]*api.Product, error) {
	var doc file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	ids := make(map[string]bool, len(doc.Products))
	numeric := make(map[int64]bool, len(doc.Products))
	products := make([]*api.Product, 0, len(doc.Products))

	for i, e := range doc.Products {
		p, err := e.product()
		if err != nil {
			return nil, fmt.Errorf("%w: product #%d: %v", ErrInvalidCatalog, i+1, err)
		}
		if ids[p.ID] {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, p.ID)
		}
		ids[p.ID] = true
		if p.NumericID != nil {
			if numeric[*p.NumericID] {
				return nil, fmt.Errorf("%w: duplicate numeric_id %d", ErrInvalidCatalog, *p.NumericID)
			}
			numeric[*p.NumericID] = true
		}
		products = append(products, p)
	}

	return products, nil
}

func (e Entry) product() (*api.Product, error) {
	p := &api.Product{
		ID:           strings.TrimSpace(e.ID),
		NumericID:    e.NumericID,
		Name:         strings.TrimSpace(e.Name),
		Description:  e.Description,
		Image:        e.Image,
		Images:       e.Images,
		Price:        e.Price,
		ComparePrice: e.ComparePrice,
	}

	if p.ID == "" && p.NumericID != nil {
		p.ID = fmt.Sprintf("%d", *p.NumericID)
	}
	if p.ID == "" {
		return nil, errors.New("id or numeric_id is required")
	}
	if p.NumericID != nil && *p.NumericID < 1 {
		return nil, fmt.Errorf("numeric_id must be positive, got %d", *p.NumericID)
	}
	if p.Name == "" {
		return nil, errors.New("name is required")
	}
	if p.Price < 0 {
		return nil, fmt.Errorf("price must not be negative, got %v", p.Price)
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Image == "" && len(p.Images) > 0 {
		p.Image = p.Images[0]
	}
	return p, nil
}

// Seed upserts every product into store.
func Seed(ctx context.Context, store Store, products []*api.Product) error {
	for _, p := range products {
		if err := store.UpsertProduct(ctx, p); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
	}
	return nil
}
