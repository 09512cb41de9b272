package dbrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mrigankar1134/DBProject/internal/models"
)

// ============================== Report Repository ==============================
// Read-only aggregations feeding the dashboard charts. Groups with no matching
// rows are simply absent from the result; zero-filling is the caller's job.

type ReportRepo struct {
	db *pgxpool.Pool
}

func NewReportRepo(db *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{db: db}
}

// GetMonthlySales sums sales per calendar month, ordered ascending by month
// number (1-12).
func (r *ReportRepo) GetMonthlySales(ctx context.Context) ([]*models.MonthlySales, error) {
	query := `
		SELECT
			EXTRACT(MONTH FROM transaction_date)::int AS month,
			COALESCE(SUM(total_amount), 0) AS total_sales
		FROM sales
		GROUP BY EXTRACT(MONTH FROM transaction_date)
		ORDER BY month;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error fetching monthly sales: %w", err)
	}
	defer rows.Close()

	result := []*models.MonthlySales{}
	for rows.Next() {
		var m models.MonthlySales
		if err := rows.Scan(&m.Month, &m.TotalSales); err != nil {
			return nil, fmt.Errorf("error scanning monthly sales: %w", err)
		}
		result = append(result, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return result, nil
}

// GetProductSales sums sales per product line. Products with no sales are
// absent because of the inner join.
func (r *ReportRepo) GetProductSales(ctx context.Context) ([]*models.ProductSales, error) {
	query := `
		SELECT
			p.product_line,
			COALESCE(SUM(s.total_amount), 0) AS total_sales
		FROM sales s
		INNER JOIN products p ON s.product_id = p.product_id
		GROUP BY p.product_line
		ORDER BY p.product_line;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error fetching product sales: %w", err)
	}
	defer rows.Close()

	result := []*models.ProductSales{}
	for rows.Next() {
		var p models.ProductSales
		if err := rows.Scan(&p.ProductLine, &p.TotalSales); err != nil {
			return nil, fmt.Errorf("error scanning product sales: %w", err)
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return result, nil
}

// GetCustomerGender counts customers per gender.
func (r *ReportRepo) GetCustomerGender(ctx context.Context) ([]*models.GenderCount, error) {
	query := `
		SELECT gender, COUNT(*) AS count
		FROM customers
		GROUP BY gender
		ORDER BY gender;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error fetching gender distribution: %w", err)
	}
	defer rows.Close()

	result := []*models.GenderCount{}
	for rows.Next() {
		var g models.GenderCount
		if err := rows.Scan(&g.Gender, &g.Count); err != nil {
			return nil, fmt.Errorf("error scanning gender count: %w", err)
		}
		result = append(result, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return result, nil
}

// GetPaymentMethods counts sales per payment method.
func (r *ReportRepo) GetPaymentMethods(ctx context.Context) ([]*models.PaymentMethodCount, error) {
	query := `
		SELECT payment_method, COUNT(*) AS count
		FROM sales
		GROUP BY payment_method
		ORDER BY payment_method;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error fetching payment methods: %w", err)
	}
	defer rows.Close()

	result := []*models.PaymentMethodCount{}
	for rows.Next() {
		var p models.PaymentMethodCount
		if err := rows.Scan(&p.PaymentMethod, &p.Count); err != nil {
			return nil, fmt.Errorf("error scanning payment method count: %w", err)
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return result, nil
}
