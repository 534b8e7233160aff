package domain

import (
	"fmt"
	"time"
)

// Item is a unit of deliverable work with a target quantity.
type Item struct {
	ID                 string
	WorkPackageID      string
	PhaseID            *string
	Title              string
	Quantity           int
	EstimatedHoursEach float64
	Status             ItemStatus
	References         []ArtifactReference
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Effort returns the item's total estimated hours. Negative inputs are
// taken at face value.
func (it *Item) Effort() float64 {
	return it.EstimatedHoursEach * float64(it.Quantity)
}

// SetStatus moves the item to the given status. Any transition between the
// three known statuses is allowed, including reopening a completed item.
func (it *Item) SetStatus(s ItemStatus, now time.Time) error {
	if !ValidItemStatuses[string(s)] {
		return fmt.Errorf("invalid item status %q", s)
	}
	it.Status = s
	it.UpdatedAt = now
	return nil
}

// InPhase reports whether the item is assigned to the phase with the given ID.
func (it *Item) InPhase(phaseID string) bool {
	return it.PhaseID != nil && *it.PhaseID == phaseID
}
