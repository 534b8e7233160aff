package scheduler

import (
	"sort"
	"time"
)

// PhaseSlot is the scheduling view of one phase: its ordering key and the
// effort that pushes its successors back.
type PhaseSlot struct {
	ID          string
	Position    int
	EffortHours float64
}

// PhaseDates holds the derived dates of one phase. Both are nil when the
// work package has no start date.
type PhaseDates struct {
	EffectiveDate   *time.Time
	ExpectedEndDate *time.Time
}

// SortSlots returns slots ordered by ascending position. Ties keep their
// input order.
func SortSlots(slots []PhaseSlot) []PhaseSlot {
	sorted := make([]PhaseSlot, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	return sorted
}

// Cascade derives effective and expected end dates for every phase in a
// single ordered pass. Each phase starts where the cumulative effort of its
// predecessors ends; its own effort determines its expected end date.
func Cascade(start *time.Time, slots []PhaseSlot) map[string]PhaseDates {
	out := make(map[string]PhaseDates, len(slots))
	if start == nil {
		for _, s := range slots {
			out[s.ID] = PhaseDates{}
		}
		return out
	}

	cursor := *start
	for _, s := range SortSlots(slots) {
		effective := cursor
		end := AddDays(effective, EffortDays(s.EffortHours))
		out[s.ID] = PhaseDates{EffectiveDate: &effective, ExpectedEndDate: &end}
		cursor = end
	}
	return out
}
