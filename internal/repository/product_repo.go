package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inventory_control/internal/models"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Ensure implementation of Products interface at compile time.
var _ Products = (*ProductRepository)(nil)

var (
	// ErrNameMismatch signals an upsert against an existing SKU whose stored
	// name differs from the supplied one. The conditional update never fires
	// in that case, so nothing is written.
	ErrNameMismatch = errors.New("sku exists under a different name")

	// ErrNotFound signals an update against a missing product id.
	ErrNotFound = errors.New("product not found")
)

const (
	// Single-statement upsert: the UNIQUE(sku) constraint is the arbiter for
	// concurrent first inserts, and a lost race lands on the merge branch
	// instead of failing. The WHERE clause keeps a SKU bound to its first
	// name: on mismatch no row is touched and RETURNING yields nothing.
	upsertProductSQL = `
		INSERT INTO products (name, type, sku, image_url, description, quantity, price, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(sku) DO UPDATE SET quantity = quantity + excluded.quantity
		WHERE name = excluded.name
		RETURNING id
	`

	selectProductBySKU = `
		SELECT id, name, type, sku, image_url, description, quantity, price, user_id
		FROM products WHERE sku = ?
	`

	updateQuantitySQL = `UPDATE products SET quantity = ? WHERE id = ?`

	listProductsSQL = `
		SELECT id, name, type, sku, image_url, description, quantity, price, user_id
		FROM products ORDER BY id DESC LIMIT ? OFFSET ?
	`

	countProductsSQL = `SELECT COUNT(*) FROM products`

	mostStockedSQL = `
		SELECT id, name, type, sku, image_url, description, quantity, price, user_id
		FROM products ORDER BY quantity DESC LIMIT 1
	`

	mostExpensiveSQL = `
		SELECT id, name, type, sku, image_url, description, quantity, price, user_id
		FROM products ORDER BY price DESC LIMIT 1
	`
)

// Upsert inserts p or merges its quantity into the existing row with the same
// SKU and name, returning the row id either way. Returns ErrNameMismatch when
// the SKU is already bound to a different name.
func (r *ProductRepository) Upsert(ctx context.Context, p models.Product) (int, error) {
	var imageURL any
	if p.ImageURL != "" {
		imageURL = p.ImageURL
	}

	var id int
	err := r.db.QueryRowContext(ctx, upsertProductSQL,
		p.Name, p.Type, p.SKU, imageURL, p.Description, p.Quantity, p.Price, p.UserID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNameMismatch
		}
		return 0, fmt.Errorf("upsert product sku %q: %w", p.SKU, err)
	}
	return id, nil
}

// GetBySKU fetches a product by its SKU. Returns (nil, nil) if not found.
func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*models.Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, selectProductBySKU, sku))
	if err != nil {
		return nil, fmt.Errorf("select product sku %q: %w", sku, err)
	}
	return p, nil
}

// SetQuantity overwrites the stored quantity. Returns ErrNotFound when no row
// with this id exists.
func (r *ProductRepository) SetQuantity(ctx context.Context, id, quantity int) error {
	res, err := r.db.ExecContext(ctx, updateQuantitySQL, quantity, id)
	if err != nil {
		return fmt.Errorf("update quantity for product %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for product %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns up to limit products ordered by descending id.
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, listProductsSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	out := make([]models.Product, 0, limit)
	for rows.Next() {
		var (
			p        models.Product
			imageURL sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.SKU, &imageURL,
			&p.Description, &p.Quantity, &p.Price, &p.UserID); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		p.ImageURL = imageURL.String
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}
	return out, nil
}

// Count returns the total number of products.
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countProductsSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// MostStocked returns the product with the highest quantity, or (nil, nil) for
// an empty catalog. Ties break on whatever row sorts first.
func (r *ProductRepository) MostStocked(ctx context.Context) (*models.Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, mostStockedSQL))
	if err != nil {
		return nil, fmt.Errorf("select most stocked product: %w", err)
	}
	return p, nil
}

// MostExpensive returns the product with the highest price, or (nil, nil) for
// an empty catalog.
func (r *ProductRepository) MostExpensive(ctx context.Context) (*models.Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, mostExpensiveSQL))
	if err != nil {
		return nil, fmt.Errorf("select most expensive product: %w", err)
	}
	return p, nil
}

// scanProduct scans a single product row, mapping sql.ErrNoRows to (nil, nil).
func scanProduct(row *sql.Row) (*models.Product, error) {
	var (
		p        models.Product
		imageURL sql.NullString
	)
	err := row.Scan(&p.ID, &p.Name, &p.Type, &p.SKU, &imageURL,
		&p.Description, &p.Quantity, &p.Price, &p.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.ImageURL = imageURL.String
	return &p, nil
}
