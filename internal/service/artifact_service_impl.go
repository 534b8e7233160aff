package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/engage/internal/domain"
	"github.com/alexanderramin/engage/internal/repository"
	"github.com/google/uuid"
)

type artifactService struct {
	repos map[domain.ArtifactKind]repository.ArtifactRepo
}

// NewArtifactService routes each call to the store for the artifact's kind.
func NewArtifactService(repos ...repository.ArtifactRepo) ArtifactService {
	m := make(map[domain.ArtifactKind]repository.ArtifactRepo, len(repos))
	for _, r := range repos {
		m[r.Kind()] = r
	}
	return &artifactService{repos: m}
}

func (s *artifactService) repo(kind domain.ArtifactKind) (repository.ArtifactRepo, error) {
	r, ok := s.repos[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported artifact kind %q", kind)
	}
	return r, nil
}

func (s *artifactService) Create(ctx context.Context, a *domain.Artifact) error {
	r, err := s.repo(a.Kind)
	if err != nil {
		return err
	}
	if a.Title == "" {
		return fmt.Errorf("artifact title is required")
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := timestamp()
	a.CreatedAt = now
	a.UpdatedAt = now
	return r.Create(ctx, a)
}

func (s *artifactService) GetByID(ctx context.Context, kind domain.ArtifactKind, id string) (*domain.Artifact, error) {
	r, err := s.repo(kind)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (s *artifactService) List(ctx context.Context, kind domain.ArtifactKind, tenantID string) ([]*domain.Artifact, error) {
	r, err := s.repo(kind)
	if err != nil {
		return nil, err
	}
	return r.List(ctx, tenantID)
}

func (s *artifactService) SetPublished(ctx context.Context, kind domain.ArtifactKind, id string, published bool) error {
	r, err := s.repo(kind)
	if err != nil {
		return err
	}
	return r.SetPublished(ctx, id, published)
}
