package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/engage/internal/domain"
	"github.com/alexanderramin/engage/internal/repository"
	"github.com/google/uuid"
)

type itemService struct {
	items  repository.ItemRepo
	phases repository.PhaseRepo
	refs   repository.ReferenceRepo
}

func NewItemService(items repository.ItemRepo, phases repository.PhaseRepo, refs repository.ReferenceRepo) ItemService {
	return &itemService{items: items, phases: phases, refs: refs}
}

func (s *itemService) Create(ctx context.Context, it *domain.Item) error {
	if it.Title == "" {
		return fmt.Errorf("item title is required")
	}
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	if it.Status == "" {
		it.Status = domain.ItemTodo
	}
	if !domain.ValidItemStatuses[string(it.Status)] {
		return fmt.Errorf("invalid item status %q", it.Status)
	}
	if it.PhaseID != nil {
		if err := s.checkPhase(ctx, it.WorkPackageID, *it.PhaseID); err != nil {
			return err
		}
	}
	now := timestamp()
	it.CreatedAt = now
	it.UpdatedAt = now
	return s.items.Create(ctx, it)
}

func (s *itemService) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	refs, err := s.refs.ListByItem(ctx, id)
	if err != nil {
		return nil, err
	}
	it.References = refs
	return it, nil
}

func (s *itemService) ListByWorkPackage(ctx context.Context, workPackageID string) ([]*domain.Item, error) {
	return s.items.ListByWorkPackage(ctx, workPackageID)
}

func (s *itemService) SetStatus(ctx context.Context, id string, status domain.ItemStatus) error {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := it.SetStatus(status, timestamp()); err != nil {
		return err
	}
	return s.items.Update(ctx, it)
}

// AssignPhase moves the item into a phase of its own package, or out of any
// phase when phaseID is nil.
func (s *itemService) AssignPhase(ctx context.Context, id string, phaseID *string) error {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if phaseID != nil {
		if err := s.checkPhase(ctx, it.WorkPackageID, *phaseID); err != nil {
			return err
		}
	}
	it.PhaseID = phaseID
	it.UpdatedAt = timestamp()
	return s.items.Update(ctx, it)
}

// Link attaches an artifact reference. Kinds without a registered source are
// accepted and resolve as absent.
func (s *itemService) Link(ctx context.Context, itemID string, kind domain.ArtifactKind, referencedID string) (*domain.ArtifactReference, error) {
	if kind == "" || referencedID == "" {
		return nil, fmt.Errorf("reference type and id are required")
	}
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	ref := &domain.ArtifactReference{
		ID:           uuid.New().String(),
		ItemID:       itemID,
		Kind:         kind,
		ReferencedID: referencedID,
		CreatedAt:    timestamp(),
	}
	if err := s.refs.Create(ctx, ref); err != nil {
		return nil, fmt.Errorf("linking %s %s: %w", kind, referencedID, err)
	}
	return ref, nil
}

func (s *itemService) Unlink(ctx context.Context, itemID string, kind domain.ArtifactKind, referencedID string) error {
	return s.refs.Delete(ctx, itemID, kind, referencedID)
}

func (s *itemService) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}

func (s *itemService) checkPhase(ctx context.Context, workPackageID, phaseID string) error {
	ph, err := s.phases.GetByID(ctx, phaseID)
	if err != nil {
		return err
	}
	if ph.WorkPackageID != workPackageID {
		return fmt.Errorf("phase %s belongs to another work package", phaseID)
	}
	return nil
}
