package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/engage/internal/db"
	"github.com/alexanderramin/engage/internal/domain"
)

const phaseColumns = `id, work_package_id, position, name, description, estimated_hours, created_at, updated_at`

type SQLitePhaseRepo struct {
	db db.DBTX
}

func NewSQLitePhaseRepo(db db.DBTX) *SQLitePhaseRepo {
	return &SQLitePhaseRepo{db: db}
}

func (r *SQLitePhaseRepo) Create(ctx context.Context, p *domain.Phase) error {
	query := `INSERT INTO phases (` + phaseColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.WorkPackageID,
		p.Position,
		p.Name,
		p.Description,
		nullableFloatToValue(p.EstimatedHours),
		formatTimestamp(p.CreatedAt),
		formatTimestamp(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting phase: %w", err)
	}
	return nil
}

func (r *SQLitePhaseRepo) GetByID(ctx context.Context, id string) (*domain.Phase, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+phaseColumns+` FROM phases WHERE id = ?`, id)
	p, err := scanPhase(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("phase %s: %w", id, ErrNotFound)
	}
	return p, err
}

// ListByWorkPackage returns phases ordered by position.
func (r *SQLitePhaseRepo) ListByWorkPackage(ctx context.Context, workPackageID string) ([]*domain.Phase, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+phaseColumns+` FROM phases WHERE work_package_id = ? ORDER BY position`, workPackageID)
	if err != nil {
		return nil, fmt.Errorf("listing phases: %w", err)
	}
	defer rows.Close()

	var phases []*domain.Phase
	for rows.Next() {
		p, err := scanPhase(rows)
		if err != nil {
			return nil, err
		}
		phases = append(phases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phases: %w", err)
	}
	return phases, nil
}

// MaxPosition returns the highest phase position in the package, or 0.
func (r *SQLitePhaseRepo) MaxPosition(ctx context.Context, workPackageID string) (int, error) {
	var max int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), 0) FROM phases WHERE work_package_id = ?`, workPackageID).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("computing max phase position: %w", err)
	}
	return max, nil
}

func (r *SQLitePhaseRepo) Update(ctx context.Context, p *domain.Phase) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE phases SET position = ?, name = ?, description = ?, estimated_hours = ?, updated_at = ? WHERE id = ?`,
		p.Position,
		p.Name,
		p.Description,
		nullableFloatToValue(p.EstimatedHours),
		formatTimestamp(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating phase: %w", err)
	}
	return requireAffected(res, "phase", p.ID)
}

func (r *SQLitePhaseRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM phases WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting phase: %w", err)
	}
	return requireAffected(res, "phase", id)
}

func scanPhase(s rowScanner) (*domain.Phase, error) {
	var p domain.Phase
	var est sql.NullFloat64
	var createdAt, updatedAt string
	err := s.Scan(&p.ID, &p.WorkPackageID, &p.Position, &p.Name, &p.Description, &est, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning phase: %w", err)
	}
	p.EstimatedHours = nullableFloat(est)
	p.CreatedAt, p.UpdatedAt, err = parseTimestamps(createdAt, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing phase timestamps: %w", err)
	}
	return &p, nil
}
