package service

import (
	"context"
	"time"

	"github.com/alexanderramin/engage/internal/app"
	"github.com/alexanderramin/engage/internal/domain"
	"github.com/alexanderramin/engage/internal/importer"
)

type WorkPackageService interface {
	Create(ctx context.Context, wp *domain.WorkPackage) error
	GetByID(ctx context.Context, id string) (*domain.WorkPackage, error)
	List(ctx context.Context, tenantID string) ([]*domain.WorkPackage, error)
	SetStartDate(ctx context.Context, id string, start *time.Time) error
	Delete(ctx context.Context, id string) error
}

type PhaseService interface {
	Create(ctx context.Context, p *domain.Phase) error
	GetByID(ctx context.Context, id string) (*domain.Phase, error)
	ListByWorkPackage(ctx context.Context, workPackageID string) ([]*domain.Phase, error)
	Update(ctx context.Context, p *domain.Phase) error
	Delete(ctx context.Context, id string) error
}

type ItemService interface {
	Create(ctx context.Context, it *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	ListByWorkPackage(ctx context.Context, workPackageID string) ([]*domain.Item, error)
	SetStatus(ctx context.Context, id string, status domain.ItemStatus) error
	AssignPhase(ctx context.Context, id string, phaseID *string) error
	Link(ctx context.Context, itemID string, kind domain.ArtifactKind, referencedID string) (*domain.ArtifactReference, error)
	Unlink(ctx context.Context, itemID string, kind domain.ArtifactKind, referencedID string) error
	Delete(ctx context.Context, id string) error
}

type ArtifactService interface {
	Create(ctx context.Context, a *domain.Artifact) error
	GetByID(ctx context.Context, kind domain.ArtifactKind, id string) (*domain.Artifact, error)
	List(ctx context.Context, kind domain.ArtifactKind, tenantID string) ([]*domain.Artifact, error)
	SetPublished(ctx context.Context, kind domain.ArtifactKind, id string, published bool) error
}

type ImportService interface {
	app.ImportPlanUseCase
	ImportPlanFromSchema(ctx context.Context, schema *importer.PlanSchema) (*app.ImportResult, error)
}

type HydrationService interface {
	app.HydrateUseCase
}
