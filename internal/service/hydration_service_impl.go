package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/engage/internal/app"
	"github.com/alexanderramin/engage/internal/domain"
	"github.com/alexanderramin/engage/internal/hydration"
	"github.com/alexanderramin/engage/internal/repository"
)

type hydrationService struct {
	reader   repository.WorkPackageReader
	hydrator *hydration.Hydrator
	observer UseCaseObserver
}

func NewHydrationService(reader repository.WorkPackageReader, hydrator *hydration.Hydrator, observers ...UseCaseObserver) HydrationService {
	return &hydrationService{
		reader:   reader,
		hydrator: hydrator,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Hydrate loads the package tree and computes its hydrated view. Only an
// unknown package or view mode is reported; per-reference failures are
// absorbed into the result's resolution counts.
func (s *hydrationService) Hydrate(ctx context.Context, req app.HydrateRequest) (out *hydration.HydratedWorkPackage, err error) {
	fields := map[string]any{"work_package_id": req.WorkPackageID, "view": req.ViewMode}
	done := observe(ctx, s.observer, "hydrate", fields)
	defer func() { done(err) }()

	mode, err := domain.ParseViewMode(req.ViewMode)
	if err != nil {
		return nil, &app.HydrateError{Code: app.HydrateErrInvalidViewMode, Message: err.Error()}
	}

	wp, err := s.reader.LoadTree(ctx, req.WorkPackageID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &app.HydrateError{
			Code:    app.HydrateErrNotFound,
			Message: fmt.Sprintf("work package %q not found", req.WorkPackageID),
		}
	}
	if err != nil {
		return nil, fmt.Errorf("loading work package: %w", err)
	}

	if req.Now != nil {
		out = s.hydrator.HydrateAt(ctx, wp, mode, *req.Now)
	} else {
		out = s.hydrator.Hydrate(ctx, wp, mode)
	}

	fields["phases"] = len(out.Phases)
	fields["resolved"] = out.Resolution.Resolved
	fields["failed"] = out.Resolution.Failed
	return out, nil
}
