package repository

import (
	"context"

	"github.com/alexanderramin/engage/internal/domain"
)

type WorkPackageRepo interface {
	Create(ctx context.Context, wp *domain.WorkPackage) error
	GetByID(ctx context.Context, id string) (*domain.WorkPackage, error)
	List(ctx context.Context, tenantID string) ([]*domain.WorkPackage, error)
	Update(ctx context.Context, wp *domain.WorkPackage) error
	Delete(ctx context.Context, id string) error
}

type PhaseRepo interface {
	Create(ctx context.Context, p *domain.Phase) error
	GetByID(ctx context.Context, id string) (*domain.Phase, error)
	ListByWorkPackage(ctx context.Context, workPackageID string) ([]*domain.Phase, error)
	MaxPosition(ctx context.Context, workPackageID string) (int, error)
	Update(ctx context.Context, p *domain.Phase) error
	Delete(ctx context.Context, id string) error
}

type ItemRepo interface {
	Create(ctx context.Context, it *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	ListByWorkPackage(ctx context.Context, workPackageID string) ([]*domain.Item, error)
	Update(ctx context.Context, it *domain.Item) error
	Delete(ctx context.Context, id string) error
}

type ReferenceRepo interface {
	Create(ctx context.Context, ref *domain.ArtifactReference) error
	Delete(ctx context.Context, itemID string, kind domain.ArtifactKind, referencedID string) error
	ListByItem(ctx context.Context, itemID string) ([]domain.ArtifactReference, error)
	ListByWorkPackage(ctx context.Context, workPackageID string) ([]domain.ArtifactReference, error)
}

// ArtifactRepo stores artifacts of a single kind.
type ArtifactRepo interface {
	Kind() domain.ArtifactKind
	Create(ctx context.Context, a *domain.Artifact) error
	GetByID(ctx context.Context, id string) (*domain.Artifact, error)
	List(ctx context.Context, tenantID string) ([]*domain.Artifact, error)
	SetPublished(ctx context.Context, id string, published bool) error
	Delete(ctx context.Context, id string) error
}

// WorkPackageReader materializes a whole work package tree.
type WorkPackageReader interface {
	LoadTree(ctx context.Context, id string) (*domain.WorkPackage, error)
}
