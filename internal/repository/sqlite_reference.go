package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/engage/internal/db"
	"github.com/alexanderramin/engage/internal/domain"
)

// SQLiteReferenceRepo stores artifact references ("collateral links").
// reference_type is stored verbatim so unknown kinds survive round trips.
type SQLiteReferenceRepo struct {
	db db.DBTX
}

func NewSQLiteReferenceRepo(db db.DBTX) *SQLiteReferenceRepo {
	return &SQLiteReferenceRepo{db: db}
}

func (r *SQLiteReferenceRepo) Create(ctx context.Context, ref *domain.ArtifactReference) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO artifact_references (id, item_id, reference_type, referenced_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		ref.ID, ref.ItemID, string(ref.Kind), ref.ReferencedID, formatTimestamp(ref.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting artifact reference: %w", err)
	}
	return nil
}

func (r *SQLiteReferenceRepo) Delete(ctx context.Context, itemID string, kind domain.ArtifactKind, referencedID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM artifact_references WHERE item_id = ? AND reference_type = ? AND referenced_id = ?`,
		itemID, string(kind), referencedID,
	)
	if err != nil {
		return fmt.Errorf("deleting artifact reference: %w", err)
	}
	return requireAffected(res, "artifact reference", fmt.Sprintf("%s:%s", kind, referencedID))
}

func (r *SQLiteReferenceRepo) ListByItem(ctx context.Context, itemID string) ([]domain.ArtifactReference, error) {
	return r.list(ctx,
		`SELECT id, item_id, reference_type, referenced_id, created_at FROM artifact_references
		WHERE item_id = ? ORDER BY created_at, id`, itemID)
}

// ListByWorkPackage returns the references of every item in the package.
func (r *SQLiteReferenceRepo) ListByWorkPackage(ctx context.Context, workPackageID string) ([]domain.ArtifactReference, error) {
	return r.list(ctx,
		`SELECT ar.id, ar.item_id, ar.reference_type, ar.referenced_id, ar.created_at
		FROM artifact_references ar
		JOIN items i ON ar.item_id = i.id
		WHERE i.work_package_id = ?
		ORDER BY ar.created_at, ar.id`, workPackageID)
}

func (r *SQLiteReferenceRepo) list(ctx context.Context, query string, arg string) ([]domain.ArtifactReference, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("listing artifact references: %w", err)
	}
	defer rows.Close()

	var refs []domain.ArtifactReference
	for rows.Next() {
		var ref domain.ArtifactReference
		var kind, createdAt string
		if err := rows.Scan(&ref.ID, &ref.ItemID, &kind, &ref.ReferencedID, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning artifact reference: %w", err)
		}
		ref.Kind = domain.ArtifactKind(kind)
		ref.CreatedAt, err = time.Parse(timestampLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing artifact reference created_at: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating artifact references: %w", err)
	}
	return refs, nil
}
