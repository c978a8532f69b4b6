package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iudanet/cartsync/internal/server/storage"
)

const lineColumns = `c.id, c.cart_token, c.quantity, c.created_at, c.updated_at`

const lineSelect = `SELECT ` + productColumns + `, ` + lineColumns + `
	FROM cart_items c
	JOIN products p ON p.numeric_id = c.product_id`

// ListItems returns lines of a cart in insertion order
func (s *Storage) ListItems(ctx context.Context, cartToken string) ([]*storage.CartLine, error) {
	rows, err := s.db.QueryContext(ctx, lineSelect+` WHERE c.cart_token = ? ORDER BY c.seq`, cartToken)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	lines := make([]*storage.CartLine, 0)
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cart items: %w", err)
	}
	return lines, nil
}

// AddItem adds quantity of a product, merging into an existing line
func (s *Storage) AddItem(ctx context.Context, cartToken string, productID int64, quantity int) (*storage.CartLine, error) {
	if quantity < 1 {
		return nil, storage.ErrInvalidQuantity
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM products WHERE numeric_id = ?`, productID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to check product: %w", err)
	}

	now := s.now().UnixMilli()
	query := `
		INSERT INTO cart_items (id, cart_token, product_id, quantity, seq, created_at, updated_at)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM cart_items), ?, ?)
		ON CONFLICT (cart_token, product_id) DO UPDATE SET
			quantity = cart_items.quantity + excluded.quantity,
			updated_at = excluded.updated_at
	`
	if _, err := tx.ExecContext(ctx, query, uuid.NewString(), cartToken, productID, quantity, now, now); err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	line, err := scanLine(tx.QueryRowContext(ctx,
		lineSelect+` WHERE c.cart_token = ? AND c.product_id = ?`, cartToken, productID))
	if err != nil {
		return nil, fmt.Errorf("failed to read cart item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return line, nil
}

// UpdateItem sets the quantity of a line
func (s *Storage) UpdateItem(ctx context.Context, cartToken, lineID string, quantity int) (*storage.CartLine, error) {
	if quantity < 1 {
		return nil, storage.ErrInvalidQuantity
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE cart_items SET quantity = ?, updated_at = ? WHERE id = ? AND cart_token = ?`,
		quantity, s.now().UnixMilli(), lineID, cartToken)
	if err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	if err := expectRow(res); err != nil {
		return nil, err
	}

	line, err := scanLine(s.db.QueryRowContext(ctx, lineSelect+` WHERE c.id = ?`, lineID))
	if err != nil {
		return nil, fmt.Errorf("failed to read cart item: %w", err)
	}
	return line, nil
}

// RemoveItem deletes a line
func (s *Storage) RemoveItem(ctx context.Context, cartToken, lineID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = ? AND cart_token = ?`, lineID, cartToken)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return expectRow(res)
}

// ClearCart deletes every line of a cart
func (s *Storage) ClearCart(ctx context.Context, cartToken string) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE cart_token = ?`, cartToken)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return int(n), nil
}

func expectRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return storage.ErrItemNotFound
	}
	return nil
}

func scanLine(row rowScanner) (*storage.CartLine, error) {
	var (
		line                 storage.CartLine
		createdAt, updatedAt int64
	)
	p, err := scanProductColumns(row, &line.ID, &line.CartToken, &line.Quantity, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	line.Product = *p
	line.CreatedAt = time.UnixMilli(createdAt)
	line.UpdatedAt = time.UnixMilli(updatedAt)
	return &line, nil
}
