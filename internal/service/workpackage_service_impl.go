package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/engage/internal/domain"
	"github.com/alexanderramin/engage/internal/repository"
	"github.com/google/uuid"
)

type workPackageService struct {
	packages repository.WorkPackageRepo
}

func NewWorkPackageService(packages repository.WorkPackageRepo) WorkPackageService {
	return &workPackageService{packages: packages}
}

func (s *workPackageService) Create(ctx context.Context, wp *domain.WorkPackage) error {
	if wp.ID == "" {
		wp.ID = uuid.New().String()
	}
	now := timestamp()
	wp.CreatedAt = now
	wp.UpdatedAt = now
	if err := wp.Validate(); err != nil {
		return err
	}
	return s.packages.Create(ctx, wp)
}

func (s *workPackageService) GetByID(ctx context.Context, id string) (*domain.WorkPackage, error) {
	return s.packages.GetByID(ctx, id)
}

func (s *workPackageService) List(ctx context.Context, tenantID string) ([]*domain.WorkPackage, error) {
	return s.packages.List(ctx, tenantID)
}

// SetStartDate anchors (or with nil, unanchors) the package schedule.
func (s *workPackageService) SetStartDate(ctx context.Context, id string, start *time.Time) error {
	wp, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if start != nil {
		d := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
		start = &d
	}
	wp.EffectiveStartDate = start
	wp.UpdatedAt = timestamp()
	if err := s.packages.Update(ctx, wp); err != nil {
		return fmt.Errorf("setting start date: %w", err)
	}
	return nil
}

func (s *workPackageService) Delete(ctx context.Context, id string) error {
	return s.packages.Delete(ctx, id)
}

// timestamp is the current time at the store's precision.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
