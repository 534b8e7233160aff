package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/engage/internal/domain"
	"github.com/alexanderramin/engage/internal/repository"
	"github.com/google/uuid"
)

type phaseService struct {
	phases repository.PhaseRepo
}

func NewPhaseService(phases repository.PhaseRepo) PhaseService {
	return &phaseService{phases: phases}
}

// Create stores a phase. A zero Position appends it after the package's
// last phase.
func (s *phaseService) Create(ctx context.Context, p *domain.Phase) error {
	if p.Name == "" {
		return fmt.Errorf("phase name is required")
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Position == 0 {
		max, err := s.phases.MaxPosition(ctx, p.WorkPackageID)
		if err != nil {
			return err
		}
		p.Position = max + 1
	}
	now := timestamp()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.phases.Create(ctx, p); err != nil {
		return fmt.Errorf("creating phase %q: %w", p.Name, err)
	}
	return nil
}

func (s *phaseService) GetByID(ctx context.Context, id string) (*domain.Phase, error) {
	return s.phases.GetByID(ctx, id)
}

func (s *phaseService) ListByWorkPackage(ctx context.Context, workPackageID string) ([]*domain.Phase, error) {
	return s.phases.ListByWorkPackage(ctx, workPackageID)
}

func (s *phaseService) Update(ctx context.Context, p *domain.Phase) error {
	p.UpdatedAt = timestamp()
	return s.phases.Update(ctx, p)
}

// Delete removes the phase; its items become orphans.
func (s *phaseService) Delete(ctx context.Context, id string) error {
	return s.phases.Delete(ctx, id)
}
