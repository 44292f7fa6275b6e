package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fuelplan/internal/domain"
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

// ContextBadge returns a colored label for the day's macro context.
func ContextBadge(ctx domain.MacroContext) string {
	label := strings.ToUpper(strings.ReplaceAll(string(ctx), "_", " "))
	switch ctx {
	case domain.ContextRace:
		return StyleRed.Render("▲ " + label)
	case domain.ContextWorkout:
		return StyleYellow.Render("● " + label)
	case domain.ContextFatLoss:
		return StylePurple.Render("● " + label)
	case domain.ContextRecovery:
		return StyleBlue.Render("○ " + label)
	default:
		return StyleGreen.Render("● " + label)
	}
}

// RoleStyle picks the row color for a timeline entry.
func RoleStyle(role domain.EntryRole) lipgloss.Style {
	switch role {
	case domain.RoleWorkout:
		return StyleYellow
	case domain.RolePreWorkout, domain.RolePostWorkout:
		return StyleBlue
	case domain.RoleLocked:
		return StylePurple
	default:
		return StyleFg
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
