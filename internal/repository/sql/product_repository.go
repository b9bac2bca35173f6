package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iyhunko/treko-inventory/internal/model"
	"github.com/iyhunko/treko-inventory/internal/repository"
)

const productColumns = "id, name, description, price, created_at, updated_at"

// ProductRepository implements repository.ProductRepository on Postgres.
type ProductRepository struct {
	db  *sql.DB
	txn *sql.Tx
}

// NewProductRepository creates a new ProductRepository instance.
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// getExecutor returns the active executor (transaction if exists, otherwise db)
func (r *ProductRepository) getExecutor() dbExecutor {
	if r.txn != nil {
		return r.txn
	}
	return r.db
}

// Create inserts a new product and fills in the database-assigned ID.
func (r *ProductRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if product.CreatedAt.IsZero() {
		product.InitMeta()
	}

	query := `INSERT INTO products (name, description, price, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`

	stmt, err := r.getExecutor().PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	err = stmt.QueryRowContext(ctx, product.Name, product.Description, product.Price, product.CreatedAt, product.UpdatedAt).
		Scan(&product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	return product, nil
}

// List returns every product, newest first.
func (r *ProductRepository) List(ctx context.Context) ([]*model.Product, error) {
	query := "SELECT " + productColumns + " FROM products ORDER BY created_at DESC, id DESC"

	stmt, err := r.getExecutor().PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := make([]*model.Product, 0)
	for rows.Next() {
		var product model.Product
		err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, &product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return products, nil
}

// FindByID retrieves a single product by ID.
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE id = $1"

	stmt, err := r.getExecutor().PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	var result model.Product
	err = stmt.QueryRowContext(ctx, id).Scan(
		&result.ID, &result.Name, &result.Description, &result.Price, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &result, nil
}

// Update overwrites name, description and price of an existing product and
// returns the stored row.
func (r *ProductRepository) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	product.Touch()

	query := `UPDATE products SET name = $1, description = $2, price = $3, updated_at = $4
	          WHERE id = $5 RETURNING ` + productColumns

	stmt, err := r.getExecutor().PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare update statement: %w", err)
	}
	defer stmt.Close()

	var result model.Product
	err = stmt.QueryRowContext(ctx, product.Name, product.Description, product.Price, product.UpdatedAt, product.ID).Scan(
		&result.ID, &result.Name, &result.Description, &result.Price, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", product.ID, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &result, nil
}

// DeleteByID deletes a product by ID.
func (r *ProductRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`

	stmt, err := r.getExecutor().PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare delete statement: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("product %d: %w", id, repository.ErrNotFound)
	}

	return nil
}
