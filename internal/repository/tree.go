package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/engage/internal/db"
	"github.com/alexanderramin/engage/internal/domain"
)

// SQLiteTreeReader loads a work package with its phases, items and
// references already attached.
type SQLiteTreeReader struct {
	packages   *SQLiteWorkPackageRepo
	phases     *SQLitePhaseRepo
	items      *SQLiteItemRepo
	references *SQLiteReferenceRepo
}

func NewSQLiteTreeReader(database db.DBTX) *SQLiteTreeReader {
	return &SQLiteTreeReader{
		packages:   NewSQLiteWorkPackageRepo(database),
		phases:     NewSQLitePhaseRepo(database),
		items:      NewSQLiteItemRepo(database),
		references: NewSQLiteReferenceRepo(database),
	}
}

// LoadTree returns the work package with phases ordered by position. Items
// whose phase is unset or belongs to another package become orphans.
func (r *SQLiteTreeReader) LoadTree(ctx context.Context, id string) (*domain.WorkPackage, error) {
	wp, err := r.packages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	phases, err := r.phases.ListByWorkPackage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading phases: %w", err)
	}
	items, err := r.items.ListByWorkPackage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	refs, err := r.references.ListByWorkPackage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading artifact references: %w", err)
	}

	refsByItem := make(map[string][]domain.ArtifactReference, len(items))
	for _, ref := range refs {
		refsByItem[ref.ItemID] = append(refsByItem[ref.ItemID], ref)
	}

	phaseByID := make(map[string]*domain.Phase, len(phases))
	for _, p := range phases {
		p.Items = []*domain.Item{}
		phaseByID[p.ID] = p
	}

	for _, it := range items {
		it.References = refsByItem[it.ID]
		if it.PhaseID != nil {
			if p, ok := phaseByID[*it.PhaseID]; ok {
				p.Items = append(p.Items, it)
				continue
			}
		}
		wp.OrphanItems = append(wp.OrphanItems, it)
	}

	wp.Phases = phases
	return wp, nil
}
