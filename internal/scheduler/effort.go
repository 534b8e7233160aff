package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/engage/internal/domain"
)

const (
	// HoursPerDay converts effort hours to working days.
	HoursPerDay = 8
	// WarningWindowDays is the inclusive number of days before an expected
	// end date during which a phase is flagged as warning.
	WarningWindowDays = 3
)

// PhaseEffort sums quantity × hours-each over the given items. When the sum
// is zero the phase-level estimate is used, or zero if there is none.
func PhaseEffort(items []*domain.Item, estimate *float64) float64 {
	var total float64
	for _, it := range items {
		total += it.Effort()
	}
	if total == 0 && estimate != nil {
		return *estimate
	}
	return total
}

// EffortDays converts hours to calendar days, rounding up. Negative hours
// yield a non-positive day count.
func EffortDays(hours float64) int {
	return int(math.Ceil(hours / HoursPerDay))
}

// AddDays advances d by n calendar days. No weekend or holiday calendar is
// applied.
func AddDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}
