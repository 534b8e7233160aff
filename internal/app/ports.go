package app

import (
	"context"

	"github.com/alexanderramin/engage/internal/domain"
	"github.com/alexanderramin/engage/internal/hydration"
)

type HydrateUseCase interface {
	Hydrate(ctx context.Context, req HydrateRequest) (*hydration.HydratedWorkPackage, error)
}

type ImportResult struct {
	WorkPackage    *domain.WorkPackage
	PhaseCount     int
	ItemCount      int
	ReferenceCount int
}

type ImportPlanUseCase interface {
	ImportPlan(ctx context.Context, filePath string) (*ImportResult, error)
}
