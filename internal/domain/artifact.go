package domain

import "time"

// ArtifactReference is a typed pointer from an Item to a concrete artifact.
// The target is not foreign-keyed, so it may dangle.
type ArtifactReference struct {
	ID           string
	ItemID       string
	Kind         ArtifactKind
	ReferencedID string
	CreatedAt    time.Time
}

// Artifact is the content object named by an ArtifactReference. The engine
// only reads artifacts; they are owned by the authoring side.
type Artifact struct {
	ID        string
	TenantID  string
	Kind      ArtifactKind
	Title     string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VisibleIn reports whether the artifact counts toward progress in the given
// view mode.
func (a *Artifact) VisibleIn(mode ViewMode) bool {
	if a == nil {
		return false
	}
	if mode == ViewClient {
		return a.Published
	}
	return true
}
