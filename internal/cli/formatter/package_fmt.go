package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/engage/internal/domain"
)

func startDate(wp *domain.WorkPackage) string {
	if wp.EffectiveStartDate == nil {
		return Dim("unscheduled")
	}
	return StyleFg.Render(wp.EffectiveStartDate.Format("2006-01-02"))
}

// FormatWorkPackageList renders work packages as a table.
func FormatWorkPackageList(packages []*domain.WorkPackage) string {
	headers := []string{"ID", "NAME", "TENANT", "START"}
	rows := make([][]string, 0, len(packages))
	for _, wp := range packages {
		rows = append(rows, []string{TruncID(wp.ID), Bold(wp.Name), Dim(wp.TenantID), startDate(wp)})
	}
	return RenderTable(headers, rows)
}

// FormatPhaseList renders phases in position order.
func FormatPhaseList(phases []*domain.Phase) string {
	headers := []string{"POS", "ID", "NAME", "ESTIMATE"}
	rows := make([][]string, 0, len(phases))
	for _, p := range phases {
		est := Dim("--")
		if p.EstimatedHours != nil {
			est = FormatHours(*p.EstimatedHours)
		}
		rows = append(rows, []string{fmt.Sprintf("%d", p.Position), TruncID(p.ID), Bold(p.Name), est})
	}
	return RenderTable(headers, rows)
}

// FormatItemList renders items with their phase name, or "--" for orphans.
func FormatItemList(items []*domain.Item, phaseNames map[string]string) string {
	headers := []string{"ID", "TITLE", "PHASE", "QTY", "HOURS EACH", "STATUS"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		phase := Dim("--")
		if it.PhaseID != nil {
			if name, ok := phaseNames[*it.PhaseID]; ok {
				phase = name
			}
		}
		rows = append(rows, []string{
			TruncID(it.ID),
			Bold(it.Title),
			phase,
			fmt.Sprintf("%d", it.Quantity),
			FormatHours(it.EstimatedHoursEach),
			ItemStatusPill(it.Status),
		})
	}
	return RenderTable(headers, rows)
}

// FormatWorkPackageDetail renders a package with its phases and items.
func FormatWorkPackageDetail(wp *domain.WorkPackage, phases []*domain.Phase, items []*domain.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n%s %s\n%s %s\n",
		Dim("ID:    "), wp.ID,
		Dim("Tenant:"), wp.TenantID,
		Dim("Start: "), startDate(wp))

	b.WriteString("\n" + Header("Phases") + "\n")
	if len(phases) == 0 {
		b.WriteString(Dim("none") + "\n")
	} else {
		b.WriteString(FormatPhaseList(phases))
	}

	names := make(map[string]string, len(phases))
	for _, p := range phases {
		names[p.ID] = p.Name
	}
	b.WriteString("\n" + Header("Items") + "\n")
	if len(items) == 0 {
		b.WriteString(Dim("none") + "\n")
	} else {
		b.WriteString(FormatItemList(items, names))
	}
	return RenderBox(wp.Name, b.String())
}

// FormatArtifactList renders artifacts with publication state.
func FormatArtifactList(artifacts []*domain.Artifact) string {
	headers := []string{"ID", "KIND", "TITLE", "PUBLISHED"}
	rows := make([][]string, 0, len(artifacts))
	for _, a := range artifacts {
		pub := Dim("draft")
		if a.Published {
			pub = StyleGreen.Render("published")
		}
		rows = append(rows, []string{TruncID(a.ID), KindBadge(a.Kind), Bold(a.Title), pub})
	}
	return RenderTable(headers, rows)
}
