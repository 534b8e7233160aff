package domain

import "time"

// Phase is an ordered stage within a WorkPackage. Position is 1-based and
// unique among siblings.
type Phase struct {
	ID            string
	WorkPackageID string
	Position      int
	Name          string
	Description   string
	// EstimatedHours is a phase-level estimate used only when the phase's
	// items carry no effort of their own.
	EstimatedHours *float64
	Items          []*Item
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
