package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/engage/internal/db"
	"github.com/alexanderramin/engage/internal/domain"
)

const artifactColumns = `id, tenant_id, title, published, created_at, updated_at`

// SQLiteArtifactRepo stores artifacts of one kind in that kind's table.
type SQLiteArtifactRepo struct {
	db    db.DBTX
	kind  domain.ArtifactKind
	table string
}

// NewSQLiteArtifactRepo returns the repo for kind, or an error if the kind
// has no backing table.
func NewSQLiteArtifactRepo(database db.DBTX, kind domain.ArtifactKind) (*SQLiteArtifactRepo, error) {
	table, ok := db.ArtifactTables[string(kind)]
	if !ok {
		return nil, fmt.Errorf("no artifact table for kind %q", kind)
	}
	return &SQLiteArtifactRepo{db: database, kind: kind, table: table}, nil
}

// NewSQLiteArtifactRepos returns one repo per built-in artifact kind.
func NewSQLiteArtifactRepos(database db.DBTX) map[domain.ArtifactKind]*SQLiteArtifactRepo {
	repos := make(map[domain.ArtifactKind]*SQLiteArtifactRepo, len(domain.ArtifactKinds))
	for _, kind := range domain.ArtifactKinds {
		repo, err := NewSQLiteArtifactRepo(database, kind)
		if err != nil {
			continue
		}
		repos[kind] = repo
	}
	return repos
}

func (r *SQLiteArtifactRepo) Kind() domain.ArtifactKind { return r.kind }

func (r *SQLiteArtifactRepo) Create(ctx context.Context, a *domain.Artifact) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?)`, r.table, artifactColumns)
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.TenantID,
		a.Title,
		boolToInt(a.Published),
		formatTimestamp(a.CreatedAt),
		formatTimestamp(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting %s: %w", r.kind, err)
	}
	return nil
}

func (r *SQLiteArtifactRepo) GetByID(ctx context.Context, id string) (*domain.Artifact, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, artifactColumns, r.table)
	a, err := r.scan(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: %w", r.kind, id, ErrNotFound)
	}
	return a, err
}

// LookupArtifact resolves an artifact for the hydration engine. A missing
// row yields (nil, nil).
func (r *SQLiteArtifactRepo) LookupArtifact(ctx context.Context, id string) (*domain.Artifact, error) {
	a, err := r.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return a, err
}

// List returns the tenant's artifacts ordered by title. An empty tenantID
// lists every tenant.
func (r *SQLiteArtifactRepo) List(ctx context.Context, tenantID string) ([]*domain.Artifact, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, artifactColumns, r.table)
	var args []any
	if tenantID != "" {
		query += ` WHERE tenant_id = ?`
		args = append(args, tenantID)
	}
	query += ` ORDER BY title, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.table, err)
	}
	defer rows.Close()

	var out []*domain.Artifact
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", r.table, err)
	}
	return out, nil
}

func (r *SQLiteArtifactRepo) SetPublished(ctx context.Context, id string, published bool) error {
	query := fmt.Sprintf(`UPDATE %s SET published = ?, updated_at = ? WHERE id = ?`, r.table)
	res, err := r.db.ExecContext(ctx, query, boolToInt(published), formatTimestamp(time.Now()), id)
	if err != nil {
		return fmt.Errorf("updating %s: %w", r.kind, err)
	}
	return requireAffected(res, string(r.kind), id)
}

func (r *SQLiteArtifactRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, r.table), id)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", r.kind, err)
	}
	return requireAffected(res, string(r.kind), id)
}

func (r *SQLiteArtifactRepo) scan(s rowScanner) (*domain.Artifact, error) {
	a := domain.Artifact{Kind: r.kind}
	var published int
	var createdAt, updatedAt string
	if err := s.Scan(&a.ID, &a.TenantID, &a.Title, &published, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning %s: %w", r.kind, err)
	}
	a.Published = published != 0

	var err error
	a.CreatedAt, a.UpdatedAt, err = parseTimestamps(createdAt, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing %s timestamps: %w", r.kind, err)
	}
	return &a, nil
}
