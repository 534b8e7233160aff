package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/engage/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// ItemStatusPill returns a colored workflow status for an item.
func ItemStatusPill(status domain.ItemStatus) string {
	switch status {
	case domain.ItemTodo:
		return StyleBlue.Render("○ Todo")
	case domain.ItemInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.ItemCompleted:
		return StyleDim.Render("✔ Completed")
	default:
		return StyleDim.Render(string(status))
	}
}

// PhaseStatusPill returns a colored derived status for a phase.
func PhaseStatusPill(status domain.PhaseStatus) string {
	switch status {
	case domain.PhaseActive:
		return StyleBlue.Render("○ Active")
	case domain.PhaseInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.PhaseCompleted:
		return StyleDim.Render("✔ Completed")
	default:
		return StyleDim.Render(string(status))
	}
}

// KindBadge renders an artifact kind as a purple label.
func KindBadge(kind domain.ArtifactKind) string {
	if kind == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(strings.ReplaceAll(string(kind), "_", " "))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatHours renders an hour count without trailing zeros, e.g. "12.5h".
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h"
}

// DateOrDash renders an optional YYYY-MM-DD date.
func DateOrDash(d *string) string {
	if d == nil {
		return Dim("--")
	}
	return StyleFg.Render(*d)
}

// Fraction renders completed/total, e.g. "3/5".
func Fraction(p domain.Progress) string {
	return fmt.Sprintf("%d/%d", p.Completed, p.Total)
}
