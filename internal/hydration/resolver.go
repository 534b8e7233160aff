package hydration

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/alexanderramin/engage/internal/domain"
)

// ArtifactSource looks up artifacts of one kind. A nil artifact with a nil
// error means the artifact does not exist.
type ArtifactSource interface {
	LookupArtifact(ctx context.Context, id string) (*domain.Artifact, error)
}

// Registry maps reference types to the source that resolves them. Adding an
// artifact kind is a single Register call.
type Registry struct {
	mu      sync.RWMutex
	sources map[domain.ArtifactKind]ArtifactSource
}

func NewRegistry() *Registry {
	return &Registry{sources: make(map[domain.ArtifactKind]ArtifactSource)}
}

// Register installs src for kind, replacing any previous source.
func (r *Registry) Register(kind domain.ArtifactKind, src ArtifactSource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[kind] = src
}

// Source returns the source registered for kind.
func (r *Registry) Source(kind domain.ArtifactKind) (ArtifactSource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src, ok := r.sources[kind]
	return src, ok
}

// Outcome classifies a single reference resolution.
type Outcome int

const (
	OutcomeResolved Outcome = iota
	// OutcomeMissing: the referenced artifact does not exist.
	OutcomeMissing
	// OutcomeHidden: the artifact exists but is unpublished in client view.
	OutcomeHidden
	// OutcomeFailed: the lookup returned an error or panicked.
	OutcomeFailed
	// OutcomeUnsupported: no source is registered for the reference type.
	OutcomeUnsupported
)

func (o Outcome) String() string {
	switch o {
	case OutcomeResolved:
		return "resolved"
	case OutcomeMissing:
		return "missing"
	case OutcomeHidden:
		return "hidden"
	case OutcomeFailed:
		return "failed"
	case OutcomeUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Resolution is the result of resolving one reference. Artifact is set only
// when Outcome is OutcomeResolved.
type Resolution struct {
	Artifact *domain.Artifact
	Outcome  Outcome
}

// Resolver turns artifact references into artifacts, absorbing every
// per-reference failure.
type Resolver struct {
	registry *Registry
	logger   *slog.Logger
}

func NewResolver(registry *Registry, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{registry: registry, logger: logger}
}

// Resolve looks up the referenced artifact on behalf of tenantID and applies
// the view-mode gate. An artifact owned by another tenant resolves as
// missing; an empty tenantID skips the ownership check. Resolve never
// returns an error: failures resolve as absent and are logged.
func (r *Resolver) Resolve(ctx context.Context, tenantID string, ref domain.ArtifactReference, mode domain.ViewMode) Resolution {
	res := r.resolve(ctx, tenantID, ref, mode)
	if res.Outcome != OutcomeResolved && res.Outcome != OutcomeFailed {
		r.logger.DebugContext(ctx, "artifact_reference_absent",
			"outcome", res.Outcome.String(),
			"reference_type", string(ref.Kind),
			"referenced_id", ref.ReferencedID,
			"view", string(mode))
	}
	return res
}

func (r *Resolver) resolve(ctx context.Context, tenantID string, ref domain.ArtifactReference, mode domain.ViewMode) Resolution {
	src, ok := r.registry.Source(ref.Kind)
	if !ok {
		return Resolution{Outcome: OutcomeUnsupported}
	}

	artifact, err := r.lookup(ctx, src, ref.ReferencedID)
	if err != nil {
		r.logger.WarnContext(ctx, "artifact_resolution_failed",
			"outcome", OutcomeFailed.String(),
			"reference_type", string(ref.Kind),
			"referenced_id", ref.ReferencedID,
			"error", err.Error())
		return Resolution{Outcome: OutcomeFailed}
	}
	if artifact == nil || (tenantID != "" && artifact.TenantID != tenantID) {
		return Resolution{Outcome: OutcomeMissing}
	}
	if !artifact.VisibleIn(mode) {
		return Resolution{Outcome: OutcomeHidden}
	}
	return Resolution{Artifact: artifact, Outcome: OutcomeResolved}
}

func (r *Resolver) lookup(ctx context.Context, src ArtifactSource, id string) (a *domain.Artifact, err error) {
	defer func() {
		if p := recover(); p != nil {
			a, err = nil, fmt.Errorf("artifact source panic: %v", p)
		}
	}()
	return src.LookupArtifact(ctx, id)
}
