package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/engage/internal/db"
	"github.com/alexanderramin/engage/internal/domain"
)

const itemColumns = `id, work_package_id, phase_id, title, quantity, estimated_hours_each, status, created_at, updated_at`

// SQLiteItemRepo stores item rows. References are managed by
// SQLiteReferenceRepo and are not populated here.
type SQLiteItemRepo struct {
	db db.DBTX
}

func NewSQLiteItemRepo(db db.DBTX) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: db}
}

func (r *SQLiteItemRepo) Create(ctx context.Context, it *domain.Item) error {
	query := `INSERT INTO items (` + itemColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		it.ID,
		it.WorkPackageID,
		it.PhaseID,
		it.Title,
		it.Quantity,
		it.EstimatedHoursEach,
		string(it.Status),
		formatTimestamp(it.CreatedAt),
		formatTimestamp(it.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	it, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %s: %w", id, ErrNotFound)
	}
	return it, err
}

// ListByWorkPackage returns every item in the package in creation order.
func (r *SQLiteItemRepo) ListByWorkPackage(ctx context.Context, workPackageID string) ([]*domain.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE work_package_id = ? ORDER BY created_at, id`, workPackageID)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []*domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

func (r *SQLiteItemRepo) Update(ctx context.Context, it *domain.Item) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE items SET phase_id = ?, title = ?, quantity = ?, estimated_hours_each = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		it.PhaseID,
		it.Title,
		it.Quantity,
		it.EstimatedHoursEach,
		string(it.Status),
		formatTimestamp(it.UpdatedAt),
		it.ID,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return requireAffected(res, "item", it.ID)
}

func (r *SQLiteItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return requireAffected(res, "item", id)
}

func scanItem(s rowScanner) (*domain.Item, error) {
	var it domain.Item
	var phaseID sql.NullString
	var status, createdAt, updatedAt string
	err := s.Scan(&it.ID, &it.WorkPackageID, &phaseID, &it.Title, &it.Quantity,
		&it.EstimatedHoursEach, &status, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning item: %w", err)
	}
	it.PhaseID = nullableString(phaseID)
	it.Status = domain.ItemStatus(status)
	it.CreatedAt, it.UpdatedAt, err = parseTimestamps(createdAt, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing item timestamps: %w", err)
	}
	return &it, nil
}
