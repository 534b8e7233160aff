package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/engage/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TimelineColor maps a timeline status to its traffic-light style.
func TimelineColor(s domain.TimelineStatus) lipgloss.Style {
	switch s {
	case domain.TimelineComplete:
		return StyleBlue
	case domain.TimelineOnTrack:
		return StyleGreen
	case domain.TimelineWarning:
		return StyleYellow
	case domain.TimelineOverdue:
		return StyleRed
	default:
		return StyleDim
	}
}

// TimelineIndicator returns a colored label such as "● OVERDUE".
func TimelineIndicator(s domain.TimelineStatus) string {
	switch s {
	case domain.TimelineComplete:
		return StyleBlue.Render("✔ COMPLETE")
	case domain.TimelineOnTrack:
		return StyleGreen.Render("● ON TRACK")
	case domain.TimelineWarning:
		return StyleYellow.Render("● WARNING")
	case domain.TimelineOverdue:
		return StyleRed.Render("● OVERDUE")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// Header renders an upper-cased section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
