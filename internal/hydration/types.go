package hydration

import (
	"time"

	"github.com/alexanderramin/engage/internal/domain"
)

const dateLayout = "2006-01-02"

// ResolvedArtifact is an artifact that counted toward an item's progress,
// tagged with the reference type it was resolved through.
type ResolvedArtifact struct {
	ReferenceType domain.ArtifactKind `json:"reference_type"`
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Published     bool                `json:"published"`
}

type HydratedItem struct {
	ID                 string             `json:"id"`
	PhaseID            *string            `json:"phase_id"`
	Title              string             `json:"title"`
	Quantity           int                `json:"quantity"`
	EstimatedHoursEach float64            `json:"estimated_hours_each"`
	Status             domain.ItemStatus  `json:"status"`
	Artifacts          []ResolvedArtifact `json:"artifacts"`
	Progress           domain.Progress    `json:"progress"`
}

type HydratedPhase struct {
	ID               string                `json:"id"`
	Position         int                   `json:"position"`
	Name             string                `json:"name"`
	Description      string                `json:"description"`
	Status           domain.PhaseStatus    `json:"status"`
	TotalEffortHours float64               `json:"total_effort_hours"`
	EffectiveDate    *string               `json:"effective_date"`
	ExpectedEndDate  *string               `json:"expected_end_date"`
	TimelineStatus   domain.TimelineStatus `json:"timeline_status"`
	Items            []HydratedItem        `json:"items"`
	// Progress counts the phase's items whose own progress is complete.
	Progress domain.Progress `json:"progress"`
}

// TimelineSummary counts phases by timeline status.
type TimelineSummary struct {
	Complete int `json:"complete"`
	OnTrack  int `json:"on_track"`
	Warning  int `json:"warning"`
	Overdue  int `json:"overdue"`
}

// ResolutionStats tallies how artifact references were resolved. Missing,
// Hidden, Failed and Unsupported references all count as absent.
type ResolutionStats struct {
	Resolved    int `json:"resolved"`
	Missing     int `json:"missing"`
	Hidden      int `json:"hidden"`
	Failed      int `json:"failed"`
	Unsupported int `json:"unsupported"`
}

// Add accumulates other into s.
func (s *ResolutionStats) Add(other ResolutionStats) {
	s.Resolved += other.Resolved
	s.Missing += other.Missing
	s.Hidden += other.Hidden
	s.Failed += other.Failed
	s.Unsupported += other.Unsupported
}

// HydratedWorkPackage is the read-ready tree produced by Hydrate. None of
// its derived values are persisted.
type HydratedWorkPackage struct {
	ID                 string          `json:"id"`
	TenantID           string          `json:"tenant_id"`
	Name               string          `json:"name"`
	EffectiveStartDate *string         `json:"effective_start_date"`
	ViewMode           domain.ViewMode `json:"view_mode"`
	Phases             []HydratedPhase `json:"phases"`
	OrphanItems        []HydratedItem  `json:"orphan_items"`
	Progress           domain.Progress `json:"progress"`
	Timeline           TimelineSummary `json:"timeline"`
	Resolution         ResolutionStats `json:"resolution"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
