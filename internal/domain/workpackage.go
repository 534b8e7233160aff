package domain

import (
	"fmt"
	"sort"
	"time"
)

// WorkPackage is an engagement's top-level plan.
type WorkPackage struct {
	ID                 string
	TenantID           string
	Name               string
	EffectiveStartDate *time.Time
	Phases             []*Phase
	OrphanItems        []*Item
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate checks the fields required to persist a work package.
func (w *WorkPackage) Validate() error {
	if w.TenantID == "" {
		return fmt.Errorf("tenant ID is required")
	}
	if w.Name == "" {
		return fmt.Errorf("work package name is required")
	}
	return nil
}

// AllItems returns phase-assigned items in phase order followed by orphan items.
func (w *WorkPackage) AllItems() []*Item {
	var items []*Item
	for _, p := range w.SortedPhases() {
		items = append(items, p.Items...)
	}
	return append(items, w.OrphanItems...)
}

// SortedPhases returns a copy of Phases ordered by ascending position.
func (w *WorkPackage) SortedPhases() []*Phase {
	sorted := make([]*Phase, len(w.Phases))
	copy(sorted, w.Phases)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	return sorted
}
