package scheduler

import (
	"time"

	"github.com/alexanderramin/engage/internal/domain"
)

// ItemState is the part of an item that phase status derivation reads.
type ItemState struct {
	Status   domain.ItemStatus
	Progress domain.Progress
}

// Done reports whether the item counts as finished, either by workflow
// status or by delivered quantity.
func (s ItemState) Done() bool {
	return s.Status == domain.ItemCompleted || s.Progress.IsComplete()
}

// DerivePhaseStatus computes a phase's status from its items. A phase with
// no items is always active.
func DerivePhaseStatus(items []ItemState) domain.PhaseStatus {
	if len(items) == 0 {
		return domain.PhaseActive
	}

	allDone := true
	anyInProgress := false
	for _, it := range items {
		if !it.Done() {
			allDone = false
		}
		if it.Status == domain.ItemInProgress {
			anyInProgress = true
		}
	}

	switch {
	case allDone:
		return domain.PhaseCompleted
	case anyInProgress:
		return domain.PhaseInProgress
	default:
		return domain.PhaseActive
	}
}

type TimelineInput struct {
	Now         time.Time
	Location    *time.Location
	PhaseStatus domain.PhaseStatus
	ExpectedEnd *time.Time
}

// ClassifyTimeline returns the traffic-light status of a phase. Precedence:
// complete, then on_track when there is no end date or more than
// WarningWindowDays remain, then warning, then overdue.
func ClassifyTimeline(in TimelineInput) domain.TimelineStatus {
	if in.PhaseStatus == domain.PhaseCompleted {
		return domain.TimelineComplete
	}
	if in.ExpectedEnd == nil {
		return domain.TimelineOnTrack
	}

	remaining := DaysUntil(Today(in.Now, in.Location), *in.ExpectedEnd)
	switch {
	case remaining > WarningWindowDays:
		return domain.TimelineOnTrack
	case remaining >= 0:
		return domain.TimelineWarning
	default:
		return domain.TimelineOverdue
	}
}

// Today returns the calendar date of now in loc as a UTC midnight. A nil
// loc means UTC.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysUntil counts whole calendar days from today to the date part of end.
func DaysUntil(today, end time.Time) int {
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(endDay.Sub(today).Hours() / 24)
}
