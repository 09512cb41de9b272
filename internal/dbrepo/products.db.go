package dbrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mrigankar1134/DBProject/internal/models"
)

// ============================== Product Repository ==============================

type ProductRepo struct {
	db *pgxpool.Pool
}

func NewProductRepo(db *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{db: db}
}

// ListProducts fetches all products.
func (r *ProductRepo) ListProducts(ctx context.Context) ([]*models.Product, error) {
	query := `
		SELECT product_id, product_line, unit_price
		FROM products
		ORDER BY product_id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error fetching products: %w", err)
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ProductID, &p.ProductLine, &p.UnitPrice); err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return products, nil
}

// InsertProduct adds one product row and fills in the generated product_id.
func (r *ProductRepo) InsertProduct(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (product_line, unit_price)
		VALUES ($1, $2)
		RETURNING product_id
	`
	if err := r.db.QueryRow(ctx, query, p.ProductLine, p.UnitPrice).Scan(&p.ProductID); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// UpdateProduct updates the editable fields of the row matching the product_id.
func (r *ProductRepo) UpdateProduct(ctx context.Context, productID int64, p *models.Product) error {
	query := `
		UPDATE products
		SET product_line = $2, unit_price = $3
		WHERE product_id = $1
	`
	_, err := r.db.Exec(ctx, query, productID, p.ProductLine, p.UnitPrice)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// DeleteProduct removes the row matching the product_id.
func (r *ProductRepo) DeleteProduct(ctx context.Context, productID int64) error {
	query := `DELETE FROM products WHERE product_id = $1`
	_, err := r.db.Exec(ctx, query, productID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
