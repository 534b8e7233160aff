package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/engage/internal/domain"
	"github.com/google/uuid"
)

// GeneratedPlan holds the domain objects produced from a plan, ready to persist
// in dependency order.
type GeneratedPlan struct {
	WorkPackage *domain.WorkPackage
	Phases      []*domain.Phase
	Items       []*domain.Item
	References  []*domain.ArtifactReference
}

// Convert transforms a validated plan into domain objects. Call ValidatePlan
// first.
func Convert(schema *PlanSchema, defaultTenant string) (*GeneratedPlan, error) {
	now := time.Now().UTC().Truncate(time.Second)

	var start *time.Time
	if d := schema.WorkPackage.StartDate; d != nil {
		t, err := time.Parse(dateLayout, *d)
		if err != nil {
			return nil, fmt.Errorf("parsing start_date: %w", err)
		}
		start = &t
	}

	tenant := schema.WorkPackage.TenantID
	if tenant == "" {
		tenant = defaultTenant
	}

	wp := &domain.WorkPackage{
		ID:                 uuid.New().String(),
		TenantID:           tenant,
		Name:               schema.WorkPackage.Name,
		EffectiveStartDate: start,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	out := &GeneratedPlan{WorkPackage: wp}
	phaseIDs := make(map[string]string, len(schema.Phases))
	for i, p := range schema.Phases {
		phase := &domain.Phase{
			ID:             uuid.New().String(),
			WorkPackageID:  wp.ID,
			Position:       phasePosition(p, i),
			Name:           p.Name,
			Description:    p.Description,
			EstimatedHours: p.EstimatedHours,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		phaseIDs[p.Ref] = phase.ID
		out.Phases = append(out.Phases, phase)
	}

	for i, it := range schema.Items {
		qty := 1
		if it.Quantity != nil {
			qty = *it.Quantity
		}
		status := domain.ItemTodo
		if it.Status != "" {
			status = domain.ItemStatus(it.Status)
		}
		// Stagger creation times so file order survives the creation-ordered load.
		created := now.Add(time.Duration(i) * time.Millisecond)
		item := &domain.Item{
			ID:                 uuid.New().String(),
			WorkPackageID:      wp.ID,
			Title:              it.Title,
			Quantity:           qty,
			EstimatedHoursEach: it.EstimatedHoursEach,
			Status:             status,
			CreatedAt:          created,
			UpdatedAt:          created,
		}
		if it.PhaseRef != "" {
			id, ok := phaseIDs[it.PhaseRef]
			if !ok {
				return nil, fmt.Errorf("items[%d]: unknown phase_ref %q", i, it.PhaseRef)
			}
			item.PhaseID = &id
		}
		out.Items = append(out.Items, item)

		for _, r := range it.References {
			refCreated := now.Add(time.Duration(len(out.References)) * time.Millisecond)
			out.References = append(out.References, &domain.ArtifactReference{
				ID:           uuid.New().String(),
				ItemID:       item.ID,
				Kind:         domain.ArtifactKind(r.Type),
				ReferencedID: r.ID,
				CreatedAt:    refCreated,
			})
		}
	}

	return out, nil
}
