package domain

import "fmt"

type ItemStatus string

const (
	ItemTodo       ItemStatus = "todo"
	ItemInProgress ItemStatus = "in_progress"
	ItemCompleted  ItemStatus = "completed"
)

// ValidItemStatuses is the canonical set of accepted item status strings.
var ValidItemStatuses = map[string]bool{
	"todo": true, "in_progress": true, "completed": true,
}

type PhaseStatus string

const (
	PhaseActive     PhaseStatus = "active"
	PhaseInProgress PhaseStatus = "in_progress"
	PhaseCompleted  PhaseStatus = "completed"
)

type TimelineStatus string

const (
	TimelineComplete TimelineStatus = "complete"
	TimelineOnTrack  TimelineStatus = "on_track"
	TimelineWarning  TimelineStatus = "warning"
	TimelineOverdue  TimelineStatus = "overdue"
)

// ViewMode selects which artifacts count toward progress.
type ViewMode string

const (
	// ViewInternal counts every existing artifact.
	ViewInternal ViewMode = "internal"
	// ViewClient counts only published artifacts.
	ViewClient ViewMode = "client"
)

// ParseViewMode converts a user-supplied string to a ViewMode.
// The empty string maps to ViewInternal.
func ParseViewMode(s string) (ViewMode, error) {
	switch s {
	case "", string(ViewInternal):
		return ViewInternal, nil
	case string(ViewClient):
		return ViewClient, nil
	default:
		return "", fmt.Errorf("unknown view mode %q (expected internal or client)", s)
	}
}

// ArtifactKind is the reference type tag carried by an ArtifactReference.
type ArtifactKind string

const (
	ArtifactDocument    ArtifactKind = "document"
	ArtifactPersona     ArtifactKind = "persona"
	ArtifactTemplate    ArtifactKind = "template"
	ArtifactDeck        ArtifactKind = "deck"
	ArtifactLandingPage ArtifactKind = "landing_page"
)

// ArtifactKinds lists the built-in kinds in display order.
var ArtifactKinds = []ArtifactKind{
	ArtifactDocument,
	ArtifactPersona,
	ArtifactTemplate,
	ArtifactDeck,
	ArtifactLandingPage,
}

// IsKnown reports whether k is one of the built-in artifact kinds.
func (k ArtifactKind) IsKnown() bool {
	for _, known := range ArtifactKinds {
		if k == known {
			return true
		}
	}
	return false
}
