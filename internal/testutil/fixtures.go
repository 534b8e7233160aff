package testutil

import (
	"time"

	"github.com/alexanderramin/engage/internal/domain"
	"github.com/google/uuid"
)

// TestTenant is the tenant used by fixtures unless overridden.
const TestTenant = "tenant-test"

// Date returns midnight UTC on the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// WorkPackage options
type WorkPackageOption func(*domain.WorkPackage)

func WithStartDate(d time.Time) WorkPackageOption {
	return func(wp *domain.WorkPackage) {
		wp.EffectiveStartDate = &d
	}
}

func WithTenant(id string) WorkPackageOption {
	return func(wp *domain.WorkPackage) {
		wp.TenantID = id
	}
}

func NewTestWorkPackage(name string, opts ...WorkPackageOption) *domain.WorkPackage {
	now := time.Now().UTC().Truncate(time.Second)
	wp := &domain.WorkPackage{
		ID:        uuid.New().String(),
		TenantID:  TestTenant,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(wp)
	}
	return wp
}

// Phase options
type PhaseOption func(*domain.Phase)

func WithDescription(d string) PhaseOption {
	return func(p *domain.Phase) {
		p.Description = d
	}
}

func WithPhaseEstimate(hours float64) PhaseOption {
	return func(p *domain.Phase) {
		p.EstimatedHours = &hours
	}
}

func NewTestPhase(workPackageID string, position int, name string, opts ...PhaseOption) *domain.Phase {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.Phase{
		ID:            uuid.New().String(),
		WorkPackageID: workPackageID,
		Position:      position,
		Name:          name,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Item options
type ItemOption func(*domain.Item)

func WithPhase(phaseID string) ItemOption {
	return func(it *domain.Item) {
		it.PhaseID = &phaseID
	}
}

func WithQuantity(q int) ItemOption {
	return func(it *domain.Item) {
		it.Quantity = q
	}
}

func WithHoursEach(h float64) ItemOption {
	return func(it *domain.Item) {
		it.EstimatedHoursEach = h
	}
}

func WithItemStatus(s domain.ItemStatus) ItemOption {
	return func(it *domain.Item) {
		it.Status = s
	}
}

// WithCreatedAt pins the creation time, which orders items within a package.
func WithCreatedAt(t time.Time) ItemOption {
	return func(it *domain.Item) {
		it.CreatedAt = t
		it.UpdatedAt = t
	}
}

func NewTestItem(workPackageID, title string, opts ...ItemOption) *domain.Item {
	now := time.Now().UTC().Truncate(time.Second)
	it := &domain.Item{
		ID:            uuid.New().String(),
		WorkPackageID: workPackageID,
		Title:         title,
		Quantity:      1,
		Status:        domain.ItemTodo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Artifact options
type ArtifactOption func(*domain.Artifact)

func Published() ArtifactOption {
	return func(a *domain.Artifact) {
		a.Published = true
	}
}

func NewTestArtifact(kind domain.ArtifactKind, title string, opts ...ArtifactOption) *domain.Artifact {
	now := time.Now().UTC().Truncate(time.Second)
	a := &domain.Artifact{
		ID:        uuid.New().String(),
		TenantID:  TestTenant,
		Kind:      kind,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func NewTestReference(itemID string, kind domain.ArtifactKind, referencedID string) *domain.ArtifactReference {
	return &domain.ArtifactReference{
		ID:           uuid.New().String(),
		ItemID:       itemID,
		Kind:         kind,
		ReferencedID: referencedID,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}
