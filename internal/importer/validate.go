package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/engage/internal/domain"
)

const dateLayout = "2006-01-02"

// ValidatePlan checks the plan for errors before conversion and returns all
// of them.
func ValidatePlan(schema *PlanSchema) []error {
	var errs []error

	if schema.WorkPackage.Name == "" {
		errs = append(errs, fmt.Errorf("work_package.name is required"))
	}
	if d := schema.WorkPackage.StartDate; d != nil {
		if _, err := time.Parse(dateLayout, *d); err != nil {
			errs = append(errs, fmt.Errorf("work_package.start_date: invalid date format %q (expected YYYY-MM-DD)", *d))
		}
	}

	phaseRefs := make(map[string]bool)
	positions := make(map[int]string)
	for i, p := range schema.Phases {
		prefix := fmt.Sprintf("phases[%d]", i)

		if p.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if phaseRefs[p.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, p.Ref))
		} else {
			phaseRefs[p.Ref] = true
		}
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}

		pos := phasePosition(p, i)
		if other, ok := positions[pos]; ok {
			errs = append(errs, fmt.Errorf("%s.position: %d already used by %q", prefix, pos, other))
		} else {
			positions[pos] = p.Ref
		}
	}

	for i, it := range schema.Items {
		prefix := fmt.Sprintf("items[%d]", i)

		if it.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if it.PhaseRef != "" && !phaseRefs[it.PhaseRef] {
			errs = append(errs, fmt.Errorf("%s.phase_ref: ref %q not found in phases", prefix, it.PhaseRef))
		}
		if it.Status != "" && !domain.ValidItemStatuses[it.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, it.Status))
		}
		seen := make(map[ReferenceImport]bool)
		for j, ref := range it.References {
			rp := fmt.Sprintf("%s.references[%d]", prefix, j)
			if ref.Type == "" {
				errs = append(errs, fmt.Errorf("%s.type is required", rp))
			}
			if ref.ID == "" {
				errs = append(errs, fmt.Errorf("%s.id is required", rp))
			}
			if seen[ref] {
				errs = append(errs, fmt.Errorf("%s: duplicate reference %s/%s", rp, ref.Type, ref.ID))
			}
			seen[ref] = true
		}
	}

	return errs
}

func phasePosition(p PhaseImport, index int) int {
	if p.Position != 0 {
		return p.Position
	}
	return index + 1
}
