package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/engage/internal/hydration"
)

const hydrateProgressBarWidth = 10

// FormatHydrated renders a hydrated work package as a boxed timeline board.
func FormatHydrated(wp *hydration.HydratedWorkPackage) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s   %s %s\n",
		Dim("Start:"), DateOrDash(wp.EffectiveStartDate),
		Dim("View:"), StylePurple.Render(string(wp.ViewMode)))
	fmt.Fprintf(&b, "%s %s %s\n",
		Dim("Progress:"), RenderProgress(wp.Progress.Percentage, hydrateProgressBarWidth),
		Dim("("+Fraction(wp.Progress)+" items)"))
	b.WriteString(FormatTimelineSummary(wp.Timeline) + "\n")

	for _, p := range wp.Phases {
		b.WriteString("\n")
		b.WriteString(formatPhase(p))
	}

	if len(wp.OrphanItems) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Unassigned") + "\n")
		b.WriteString(formatItems(wp.OrphanItems))
	}

	if r := wp.Resolution; r.Missing+r.Hidden+r.Failed+r.Unsupported > 0 {
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("%d resolved, %d missing, %d hidden, %d failed, %d unsupported",
			r.Resolved, r.Missing, r.Hidden, r.Failed, r.Unsupported)))
		if r.Failed > 0 {
			b.WriteString("\n" + StyleYellow.Render("  WARNING: some artifacts could not be loaded"))
		}
		b.WriteString("\n")
	}

	return RenderBox(wp.Name, b.String())
}

// FormatTimelineSummary renders phase counts per timeline status.
func FormatTimelineSummary(s hydration.TimelineSummary) string {
	return fmt.Sprintf("%s, %s, %s, %s",
		StyleRed.Render(fmt.Sprintf("%d Overdue", s.Overdue)),
		StyleYellow.Render(fmt.Sprintf("%d Warning", s.Warning)),
		StyleGreen.Render(fmt.Sprintf("%d On Track", s.OnTrack)),
		StyleBlue.Render(fmt.Sprintf("%d Complete", s.Complete)),
	)
}

func formatPhase(p hydration.HydratedPhase) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%d. %s", p.Position, p.Name)) + "\n")
	if p.Description != "" {
		b.WriteString(Dim(p.Description) + "\n")
	}
	fmt.Fprintf(&b, "%s  %s  %s %s → %s  %s %s  %s\n",
		PhaseStatusPill(p.Status),
		TimelineIndicator(p.TimelineStatus),
		Dim("dates"), DateOrDash(p.EffectiveDate), DateOrDash(p.ExpectedEndDate),
		Dim("effort"), FormatHours(p.TotalEffortHours),
		RenderProgress(p.Progress.Percentage, hydrateProgressBarWidth),
	)
	if len(p.Items) == 0 {
		b.WriteString(Dim("  no items") + "\n")
		return b.String()
	}
	b.WriteString(formatItems(p.Items))
	return b.String()
}

func formatItems(items []hydration.HydratedItem) string {
	headers := []string{"ITEM", "STATUS", "QTY", "EFFORT", "DELIVERED", "ARTIFACTS"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			Bold(it.Title),
			ItemStatusPill(it.Status),
			fmt.Sprintf("%d", it.Quantity),
			FormatHours(float64(it.Quantity) * it.EstimatedHoursEach),
			RenderProgress(it.Progress.Percentage, hydrateProgressBarWidth),
			formatArtifacts(it.Artifacts),
		})
	}
	return RenderTable(headers, rows)
}

func formatArtifacts(arts []hydration.ResolvedArtifact) string {
	if len(arts) == 0 {
		return Dim("--")
	}
	parts := make([]string, 0, len(arts))
	for _, a := range arts {
		label := KindBadge(a.ReferenceType) + " " + a.Title
		if !a.Published {
			label += Dim(" (draft)")
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, ", ")
}
