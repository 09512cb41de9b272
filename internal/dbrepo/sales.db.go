package dbrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mrigankar1134/DBProject/internal/models"
)

// ============================== Sale Repository ==============================

type SaleRepo struct {
	db *pgxpool.Pool
}

func NewSaleRepo(db *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{db: db}
}

// ListSales fetches all sales rows, newest transaction first.
func (r *SaleRepo) ListSales(ctx context.Context) ([]*models.Sale, error) {
	query := `
		SELECT id, invoice_id, transaction_date, total_amount, product_id, branch_id, payment_method
		FROM sales
		ORDER BY transaction_date DESC, id DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error fetching sales: %w", err)
	}
	defer rows.Close()

	sales := []*models.Sale{}
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(
			&s.ID, &s.InvoiceID, &s.TransactionDate, &s.TotalAmount,
			&s.ProductID, &s.BranchID, &s.PaymentMethod,
		); err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}
		sales = append(sales, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return sales, nil
}

// InsertSale adds one sales row and fills in the generated id.
func (r *SaleRepo) InsertSale(ctx context.Context, s *models.Sale) error {
	query := `
		INSERT INTO sales (invoice_id, transaction_date, total_amount, product_id, branch_id, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		s.InvoiceID, s.TransactionDate, s.TotalAmount,
		s.ProductID, s.BranchID, s.PaymentMethod,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// UpdateSale updates the editable fields of the row matching the invoice id.
// The invoice id itself is not updatable.
func (r *SaleRepo) UpdateSale(ctx context.Context, invoiceID string, s *models.Sale) error {
	query := `
		UPDATE sales
		SET transaction_date = $2, total_amount = $3, product_id = $4, branch_id = $5, payment_method = $6
		WHERE invoice_id = $1
	`
	_, err := r.db.Exec(ctx, query,
		invoiceID, s.TransactionDate, s.TotalAmount,
		s.ProductID, s.BranchID, s.PaymentMethod,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// DeleteSale removes the row matching the invoice id.
func (r *SaleRepo) DeleteSale(ctx context.Context, invoiceID string) error {
	query := `DELETE FROM sales WHERE invoice_id = $1`
	_, err := r.db.Exec(ctx, query, invoiceID)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}
