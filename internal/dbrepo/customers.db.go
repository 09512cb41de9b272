package dbrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mrigankar1134/DBProject/internal/models"
)

// ============================== Customer Repository ==============================

type CustomerRepo struct {
	db *pgxpool.Pool
}

func NewCustomerRepo(db *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// ListCustomers fetches all customers whose id or type contains the search
// term. An empty term matches every row.
func (r *CustomerRepo) ListCustomers(ctx context.Context, search string) ([]*models.Customer, error) {
	query := `
		SELECT customer_id, customer_type, gender
		FROM customers
		WHERE customer_id LIKE $1 OR customer_type LIKE $1
		ORDER BY customer_id;
	`
	rows, err := r.db.Query(ctx, query, "%"+search+"%")
	if err != nil {
		return nil, fmt.Errorf("error fetching customers: %w", err)
	}
	defer rows.Close()

	customers := []*models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.CustomerID, &c.CustomerType, &c.Gender); err != nil {
			return nil, fmt.Errorf("error scanning customer: %w", err)
		}
		customers = append(customers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return customers, nil
}

// InsertCustomer adds one customer row. The id is supplied by the caller, not
// generated.
func (r *CustomerRepo) InsertCustomer(ctx context.Context, c *models.Customer) error {
	query := `
		INSERT INTO customers (customer_id, customer_type, gender)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, c.CustomerID, c.CustomerType, c.Gender)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return errors.New("Duplicate Customer ID")
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// UpdateCustomer updates the editable fields of the row matching the path id.
// The identifier column itself is not updatable. Updating a missing id
// succeeds silently with zero rows affected.
func (r *CustomerRepo) UpdateCustomer(ctx context.Context, customerID string, c *models.Customer) error {
	query := `
		UPDATE customers
		SET customer_type = $2, gender = $3
		WHERE customer_id = $1
	`
	_, err := r.db.Exec(ctx, query, customerID, c.CustomerType, c.Gender)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// DeleteCustomer removes the row matching the id.
func (r *CustomerRepo) DeleteCustomer(ctx context.Context, customerID string) error {
	query := `DELETE FROM customers WHERE customer_id = $1`
	_, err := r.db.Exec(ctx, query, customerID)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
