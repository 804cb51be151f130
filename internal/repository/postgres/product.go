package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtroode/storefront/internal/model"
)

var _ model.ProductStore = (*ProductRepository)(nil)

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

const productColumns = `id, name, price, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (model.Product, error) {
	var product model.Product
	err := row.Scan(&product.ID, &product.Name, &product.Price, &product.CreatedAt, &product.UpdatedAt)
	return product, err
}

func (r *ProductRepository) Create(ctx context.Context, product model.Product) (model.Product, error) {
	query := `INSERT INTO products (name, price) VALUES ($1, $2) RETURNING ` + productColumns

	saved, err := scanProduct(r.db.QueryRowContext(ctx, query, product.Name, product.Price))
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return saved, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := queryOne(ctx, r.db, func(rows *sql.Rows) (model.Product, error) { return scanProduct(rows) }, query, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Product{}, err
		}
		return model.Product{}, fmt.Errorf("failed to get product by id: %w", err)
	}

	return product, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
}

// FindAllByIDs returns the products whose id is in ids, ordered by id.
// Unknown ids are skipped.
func (r *ProductRepository) FindAllByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE id = ANY($1) ORDER BY id`, ids)
}

func (r *ProductRepository) list(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// Delete removes the product's purchase transactions and then the product.
// Run it through Connection.WithinTx to make both statements atomic.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM purchase_transactions WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete product transactions: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}

	return nil
}
