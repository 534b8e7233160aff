package hydration

import (
	"context"
	"errors"
	"sync"

	"github.com/alexanderramin/engage/internal/domain"
)

var errStoreDown = errors.New("store unavailable")

// memSource is an in-memory ArtifactSource keyed by ID. IDs listed in fail
// return errStoreDown.
type memSource struct {
	mu        sync.Mutex
	artifacts map[string]*domain.Artifact
	fail      map[string]bool
	calls     int
}

func newMemSource(artifacts ...*domain.Artifact) *memSource {
	s := &memSource{artifacts: make(map[string]*domain.Artifact), fail: make(map[string]bool)}
	for _, a := range artifacts {
		s.artifacts[a.ID] = a
	}
	return s
}

func (s *memSource) LookupArtifact(_ context.Context, id string) (*domain.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.fail[id] {
		return nil, errStoreDown
	}
	return s.artifacts[id], nil
}

// doc returns a document owned by tenant t1, the tenant of twoPhasePackage.
func doc(id string, published bool) *domain.Artifact {
	return &domain.Artifact{ID: id, TenantID: "t1", Kind: domain.ArtifactDocument, Title: "Doc " + id, Published: published}
}

// sourceFunc adapts a function to ArtifactSource.
type sourceFunc func(ctx context.Context, id string) (*domain.Artifact, error)

func (f sourceFunc) LookupArtifact(ctx context.Context, id string) (*domain.Artifact, error) {
	return f(ctx, id)
}

func ref(kind domain.ArtifactKind, id string) domain.ArtifactReference {
	return domain.ArtifactReference{ID: "ref-" + id, Kind: kind, ReferencedID: id}
}

func newTestResolver(sources map[domain.ArtifactKind]ArtifactSource) *Resolver {
	reg := NewRegistry()
	for k, s := range sources {
		reg.Register(k, s)
	}
	return NewResolver(reg, nil)
}
