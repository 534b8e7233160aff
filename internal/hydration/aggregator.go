package hydration

import (
	"context"

	"github.com/alexanderramin/engage/internal/domain"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 8

// ItemResult is an item's resolved artifacts and progress.
type ItemResult struct {
	Item      *domain.Item
	Artifacts []ResolvedArtifact
	Progress  domain.Progress
	Stats     ResolutionStats
}

// Done reports whether the item's delivered artifacts reached its target.
func (r ItemResult) Done() bool {
	return r.Progress.IsComplete()
}

// Aggregator resolves an item's references and computes its progress.
type Aggregator struct {
	resolver    *Resolver
	concurrency int
}

func NewAggregator(resolver *Resolver, concurrency int) *Aggregator {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Aggregator{resolver: resolver, concurrency: concurrency}
}

// Aggregate resolves every reference on item concurrently. Completed counts
// resolved artifacts; Total is the item's target quantity regardless of how
// many references it carries. References are resolved on behalf of tenantID.
// It cannot fail as a whole.
func (a *Aggregator) Aggregate(ctx context.Context, tenantID string, item *domain.Item, mode domain.ViewMode) ItemResult {
	resolutions := make([]Resolution, len(item.References))

	var g errgroup.Group
	g.SetLimit(a.concurrency)
	for i, ref := range item.References {
		g.Go(func() error {
			resolutions[i] = a.resolver.Resolve(ctx, tenantID, ref, mode)
			return nil
		})
	}
	_ = g.Wait()

	result := ItemResult{
		Item:      item,
		Artifacts: make([]ResolvedArtifact, 0, len(resolutions)),
	}
	for i, res := range resolutions {
		switch res.Outcome {
		case OutcomeResolved:
			result.Stats.Resolved++
			result.Artifacts = append(result.Artifacts, ResolvedArtifact{
				ReferenceType: item.References[i].Kind,
				ID:            res.Artifact.ID,
				Title:         res.Artifact.Title,
				Published:     res.Artifact.Published,
			})
		case OutcomeMissing:
			result.Stats.Missing++
		case OutcomeHidden:
			result.Stats.Hidden++
		case OutcomeFailed:
			result.Stats.Failed++
		case OutcomeUnsupported:
			result.Stats.Unsupported++
		}
	}
	result.Progress = domain.NewProgress(len(result.Artifacts), item.Quantity)
	return result
}

func (r ItemResult) hydrated() HydratedItem {
	return HydratedItem{
		ID:                 r.Item.ID,
		PhaseID:            r.Item.PhaseID,
		Title:              r.Item.Title,
		Quantity:           r.Item.Quantity,
		EstimatedHoursEach: r.Item.EstimatedHoursEach,
		Status:             r.Item.Status,
		Artifacts:          r.Artifacts,
		Progress:           r.Progress,
	}
}
