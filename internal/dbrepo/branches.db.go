package dbrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mrigankar1134/DBProject/internal/models"
)

// ============================== Branch Repository ==============================

type BranchRepo struct {
	db *pgxpool.Pool
}

func NewBranchRepo(db *pgxpool.Pool) *BranchRepo {
	return &BranchRepo{db: db}
}

// ListBranches fetches all branches.
func (r *BranchRepo) ListBranches(ctx context.Context) ([]*models.Branch, error) {
	query := `
		SELECT id, branch, city
		FROM branches
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error fetching branches: %w", err)
	}
	defer rows.Close()

	branches := []*models.Branch{}
	for rows.Next() {
		var b models.Branch
		if err := rows.Scan(&b.ID, &b.Branch, &b.City); err != nil {
			return nil, fmt.Errorf("error scanning branch: %w", err)
		}
		branches = append(branches, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return branches, nil
}

// InsertBranch adds one branch row and fills in the generated id.
func (r *BranchRepo) InsertBranch(ctx context.Context, b *models.Branch) error {
	query := `
		INSERT INTO branches (branch, city)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, b.Branch, b.City).Scan(&b.ID); err != nil {
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// UpdateBranch updates the editable fields of the row matching the id.
func (r *BranchRepo) UpdateBranch(ctx context.Context, id int64, b *models.Branch) error {
	query := `
		UPDATE branches
		SET branch = $2, city = $3
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, id, b.Branch, b.City)
	if err != nil {
		return fmt.Errorf("update branch: %w", err)
	}
	return nil
}

// DeleteBranch removes a branch together with every sales row that references
// it. Both statements run inside one transaction so a failed branch delete can
// never leave the dependent sales rows orphan-deleted.
func (r *BranchRepo) DeleteBranch(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM sales WHERE branch_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete dependent sales: %w", err)
	}

	_, err = tx.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete branch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
