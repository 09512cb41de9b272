package dbrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mrigankar1134/DBProject/internal/models"
)

// ============================== Financial Repository ==============================

type FinancialRepo struct {
	db *pgxpool.Pool
}

func NewFinancialRepo(db *pgxpool.Pool) *FinancialRepo {
	return &FinancialRepo{db: db}
}

// ListFinancials fetches all financial rows.
func (r *FinancialRepo) ListFinancials(ctx context.Context) ([]*models.Financial, error) {
	query := `
		SELECT id, invoice_id, cogs, gross_margin_percentage, gross_income, customer_rating
		FROM financials
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error fetching financials: %w", err)
	}
	defer rows.Close()

	financials := []*models.Financial{}
	for rows.Next() {
		var f models.Financial
		if err := rows.Scan(
			&f.ID, &f.InvoiceID, &f.COGS,
			&f.GrossMarginPercentage, &f.GrossIncome, &f.CustomerRating,
		); err != nil {
			return nil, fmt.Errorf("error scanning financial: %w", err)
		}
		financials = append(financials, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return financials, nil
}

// InsertFinancial adds one financial row and fills in the generated id. The
// invoice id is supplied by the caller and shared with the sales row.
func (r *FinancialRepo) InsertFinancial(ctx context.Context, f *models.Financial) error {
	query := `
		INSERT INTO financials (invoice_id, cogs, gross_margin_percentage, gross_income, customer_rating)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		f.InvoiceID, f.COGS, f.GrossMarginPercentage, f.GrossIncome, f.CustomerRating,
	).Scan(&f.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return errors.New("Duplicate Invoice ID")
		}
		return fmt.Errorf("insert financial: %w", err)
	}
	return nil
}

// UpdateFinancial updates the editable fields of the row matching the invoice
// id. The invoice id itself is not updatable.
func (r *FinancialRepo) UpdateFinancial(ctx context.Context, invoiceID string, f *models.Financial) error {
	query := `
		UPDATE financials
		SET cogs = $2, gross_margin_percentage = $3, gross_income = $4, customer_rating = $5
		WHERE invoice_id = $1
	`
	_, err := r.db.Exec(ctx, query,
		invoiceID, f.COGS, f.GrossMarginPercentage, f.GrossIncome, f.CustomerRating,
	)
	if err != nil {
		return fmt.Errorf("update financial: %w", err)
	}
	return nil
}

// DeleteFinancial removes the row matching the invoice id.
func (r *FinancialRepo) DeleteFinancial(ctx context.Context, invoiceID string) error {
	query := `DELETE FROM financials WHERE invoice_id = $1`
	_, err := r.db.Exec(ctx, query, invoiceID)
	if err != nil {
		return fmt.Errorf("delete financial: %w", err)
	}
	return nil
}
