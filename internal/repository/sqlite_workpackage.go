package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/engage/internal/db"
	"github.com/alexanderramin/engage/internal/domain"
)

const workPackageColumns = `id, tenant_id, name, effective_start_date, created_at, updated_at`

// SQLiteWorkPackageRepo implements WorkPackageRepo. It reads and writes the
// work package row only; LoadTree assembles phases and items.
type SQLiteWorkPackageRepo struct {
	db db.DBTX
}

func NewSQLiteWorkPackageRepo(db db.DBTX) *SQLiteWorkPackageRepo {
	return &SQLiteWorkPackageRepo{db: db}
}

func (r *SQLiteWorkPackageRepo) Create(ctx context.Context, wp *domain.WorkPackage) error {
	query := `INSERT INTO work_packages (` + workPackageColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		wp.ID,
		wp.TenantID,
		wp.Name,
		nullableTimeToString(wp.EffectiveStartDate, dateLayout),
		formatTimestamp(wp.CreatedAt),
		formatTimestamp(wp.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting work package: %w", err)
	}
	return nil
}

func (r *SQLiteWorkPackageRepo) GetByID(ctx context.Context, id string) (*domain.WorkPackage, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+workPackageColumns+` FROM work_packages WHERE id = ?`, id)
	wp, err := scanWorkPackage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("work package %s: %w", id, ErrNotFound)
	}
	return wp, err
}

// List returns the tenant's work packages, oldest first. An empty tenantID
// lists every tenant.
func (r *SQLiteWorkPackageRepo) List(ctx context.Context, tenantID string) ([]*domain.WorkPackage, error) {
	query := `SELECT ` + workPackageColumns + ` FROM work_packages`
	var args []any
	if tenantID != "" {
		query += ` WHERE tenant_id = ?`
		args = append(args, tenantID)
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing work packages: %w", err)
	}
	defer rows.Close()

	var out []*domain.WorkPackage
	for rows.Next() {
		wp, err := scanWorkPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, wp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work packages: %w", err)
	}
	return out, nil
}

func (r *SQLiteWorkPackageRepo) Update(ctx context.Context, wp *domain.WorkPackage) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE work_packages SET tenant_id = ?, name = ?, effective_start_date = ?, updated_at = ? WHERE id = ?`,
		wp.TenantID,
		wp.Name,
		nullableTimeToString(wp.EffectiveStartDate, dateLayout),
		formatTimestamp(wp.UpdatedAt),
		wp.ID,
	)
	if err != nil {
		return fmt.Errorf("updating work package: %w", err)
	}
	return requireAffected(res, "work package", wp.ID)
}

func (r *SQLiteWorkPackageRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM work_packages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting work package: %w", err)
	}
	return requireAffected(res, "work package", id)
}

func scanWorkPackage(s rowScanner) (*domain.WorkPackage, error) {
	var wp domain.WorkPackage
	var start sql.NullString
	var createdAt, updatedAt string
	if err := s.Scan(&wp.ID, &wp.TenantID, &wp.Name, &start, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning work package: %w", err)
	}
	wp.EffectiveStartDate = parseNullableTime(start, dateLayout)

	var err error
	wp.CreatedAt, wp.UpdatedAt, err = parseTimestamps(createdAt, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing work package timestamps: %w", err)
	}
	return &wp, nil
}

func requireAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
	}
	return nil
}
