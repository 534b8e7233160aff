package hydration

import (
	"context"
	"time"

	"github.com/alexanderramin/engage/internal/domain"
	"github.com/alexanderramin/engage/internal/scheduler"
	"golang.org/x/sync/errgroup"
)

// Hydrator assembles a HydratedWorkPackage from source records. It holds no
// state between calls; every derived value is recomputed.
type Hydrator struct {
	aggregator  *Aggregator
	concurrency int
	now         func() time.Time
	loc         *time.Location
}

type Option func(*Hydrator)

// WithClock overrides the time source used for timeline classification.
func WithClock(now func() time.Time) Option {
	return func(h *Hydrator) { h.now = now }
}

// WithLocation sets the location whose calendar date counts as "today".
func WithLocation(loc *time.Location) Option {
	return func(h *Hydrator) { h.loc = loc }
}

// WithConcurrency bounds parallel item aggregation and per-item lookups.
func WithConcurrency(n int) Option {
	return func(h *Hydrator) { h.concurrency = n }
}

func NewHydrator(resolver *Resolver, opts ...Option) *Hydrator {
	h := &Hydrator{
		concurrency: defaultConcurrency,
		now:         time.Now,
		loc:         time.UTC,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.concurrency <= 0 {
		h.concurrency = defaultConcurrency
	}
	h.aggregator = NewAggregator(resolver, h.concurrency)
	return h
}

// Hydrate aggregates every item, schedules every phase and computes
// package-level progress. Phases are returned in ascending position order.
func (h *Hydrator) Hydrate(ctx context.Context, wp *domain.WorkPackage, mode domain.ViewMode) *HydratedWorkPackage {
	return h.HydrateAt(ctx, wp, mode, h.now())
}

// HydrateAt is Hydrate with an explicit "now".
func (h *Hydrator) HydrateAt(ctx context.Context, wp *domain.WorkPackage, mode domain.ViewMode, now time.Time) *HydratedWorkPackage {
	results := h.aggregateAll(ctx, wp.TenantID, wp.AllItems(), mode)

	phases := wp.SortedPhases()
	dates := scheduler.Cascade(wp.EffectiveStartDate, phaseSlots(phases))

	out := &HydratedWorkPackage{
		ID:                 wp.ID,
		TenantID:           wp.TenantID,
		Name:               wp.Name,
		EffectiveStartDate: formatDate(wp.EffectiveStartDate),
		ViewMode:           mode,
		Phases:             make([]HydratedPhase, 0, len(phases)),
		OrphanItems:        make([]HydratedItem, 0, len(wp.OrphanItems)),
	}

	for _, p := range phases {
		hp := h.buildPhase(p, dates[p.ID], results, now)
		out.Phases = append(out.Phases, hp)
		countTimeline(&out.Timeline, hp.TimelineStatus)
	}
	for _, it := range wp.OrphanItems {
		out.OrphanItems = append(out.OrphanItems, results[it.ID].hydrated())
	}

	var completed, total int
	for _, r := range results {
		total++
		if r.Done() {
			completed++
		}
		out.Resolution.Add(r.Stats)
	}
	out.Progress = domain.NewProgress(completed, total)
	return out
}

// SchedulePhase derives the hydrated view of one phase among its siblings.
// results must contain an entry for each of the phase's items.
func (h *Hydrator) SchedulePhase(phase *domain.Phase, siblings []*domain.Phase, start *time.Time, results map[string]ItemResult, now time.Time) HydratedPhase {
	dates := scheduler.Cascade(start, phaseSlots(siblings))
	return h.buildPhase(phase, dates[phase.ID], results, now)
}

func (h *Hydrator) aggregateAll(ctx context.Context, tenantID string, items []*domain.Item, mode domain.ViewMode) map[string]ItemResult {
	ordered := make([]ItemResult, len(items))

	var g errgroup.Group
	g.SetLimit(h.concurrency)
	for i, it := range items {
		g.Go(func() error {
			ordered[i] = h.aggregator.Aggregate(ctx, tenantID, it, mode)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]ItemResult, len(ordered))
	for _, r := range ordered {
		results[r.Item.ID] = r
	}
	return results
}

func (h *Hydrator) buildPhase(p *domain.Phase, dates scheduler.PhaseDates, results map[string]ItemResult, now time.Time) HydratedPhase {
	items := make([]HydratedItem, 0, len(p.Items))
	states := make([]scheduler.ItemState, 0, len(p.Items))
	var completed int
	for _, it := range p.Items {
		r, ok := results[it.ID]
		if !ok {
			r = ItemResult{Item: it, Artifacts: []ResolvedArtifact{}, Progress: domain.NewProgress(0, it.Quantity)}
		}
		items = append(items, r.hydrated())
		states = append(states, scheduler.ItemState{Status: it.Status, Progress: r.Progress})
		if r.Done() {
			completed++
		}
	}

	status := scheduler.DerivePhaseStatus(states)
	return HydratedPhase{
		ID:               p.ID,
		Position:         p.Position,
		Name:             p.Name,
		Description:      p.Description,
		Status:           status,
		TotalEffortHours: scheduler.PhaseEffort(p.Items, p.EstimatedHours),
		EffectiveDate:    formatDate(dates.EffectiveDate),
		ExpectedEndDate:  formatDate(dates.ExpectedEndDate),
		TimelineStatus: scheduler.ClassifyTimeline(scheduler.TimelineInput{
			Now:         now,
			Location:    h.loc,
			PhaseStatus: status,
			ExpectedEnd: dates.ExpectedEndDate,
		}),
		Items:    items,
		Progress: domain.NewProgress(completed, len(p.Items)),
	}
}

func phaseSlots(phases []*domain.Phase) []scheduler.PhaseSlot {
	slots := make([]scheduler.PhaseSlot, 0, len(phases))
	for _, p := range phases {
		slots = append(slots, scheduler.PhaseSlot{
			ID:          p.ID,
			Position:    p.Position,
			EffortHours: scheduler.PhaseEffort(p.Items, p.EstimatedHours),
		})
	}
	return slots
}

func countTimeline(s *TimelineSummary, status domain.TimelineStatus) {
	switch status {
	case domain.TimelineComplete:
		s.Complete++
	case domain.TimelineOnTrack:
		s.OnTrack++
	case domain.TimelineWarning:
		s.Warning++
	case domain.TimelineOverdue:
		s.Overdue++
	}
}
