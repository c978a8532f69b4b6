package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/iudanet/cartsync/internal/server/storage"
	"github.com/iudanet/cartsync/pkg/api"
)

const productColumns = `p.id, p.numeric_id, p.name, p.description, p.image, p.images, p.price, p.compare_price`

// UpsertProduct creates or replaces a product by its id
func (s *Storage) UpsertProduct(ctx context.Context, p *api.Product) error {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return fmt.Errorf("failed to encode images: %w", err)
	}

	query := `
		INSERT INTO products (id, numeric_id, name, description, image, images, price, compare_price, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			numeric_id = excluded.numeric_id,
			name = excluded.name,
			description = excluded.description,
			image = excluded.image,
			images = excluded.images,
			price = excluded.price,
			compare_price = excluded.compare_price,
			updated_at = excluded.updated_at
	`

	_, err = s.db.ExecContext(ctx, query,
		p.ID,
		nullInt64(p.NumericID),
		p.Name,
		p.Description,
		p.Image,
		string(imagesJSON),
		p.Price,
		nullFloat64(p.ComparePrice),
		s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert product %s: %w", p.ID, err)
	}
	return nil
}

// GetProduct finds a product by id, then by numeric id
func (s *Storage) GetProduct(ctx context.Context, id string) (*api.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = ?`
	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err == nil || !errors.Is(err, storage.ErrProductNotFound) {
		return p, err
	}

	n, convErr := strconv.ParseInt(id, 10, 64)
	if convErr != nil || strconv.FormatInt(n, 10) != id {
		return nil, storage.ErrProductNotFound
	}
	return s.getProductByNumericID(ctx, n)
}

func (s *Storage) getProductByNumericID(ctx context.Context, n int64) (*api.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.numeric_id = ?`
	return scanProduct(s.db.QueryRowContext(ctx, query, n))
}

// CountProducts returns the catalog size
func (s *Storage) CountProducts(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*api.Product, error) {
	p, err := scanProductColumns(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

// scanProductColumns reads productColumns, optionally followed by extra destinations
func scanProductColumns(row rowScanner, extra ...any) (*api.Product, error) {
	var (
		p            api.Product
		numericID    sql.NullInt64
		comparePrice sql.NullFloat64
		images       string
	)

	dest := append([]any{
		&p.ID, &numericID, &p.Name, &p.Description, &p.Image, &images, &p.Price, &comparePrice,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	if numericID.Valid {
		p.NumericID = &numericID.Int64
	}
	if comparePrice.Valid {
		p.ComparePrice = &comparePrice.Float64
	}
	if err := json.Unmarshal([]byte(images), &p.Images); err != nil {
		return nil, fmt.Errorf("failed to decode images of %s: %w", p.ID, err)
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return &p, nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullFloat64(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
