package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fuelplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatDelta renders a signed difference, dimmed when zero.
func FormatDelta(d int) string {
	switch {
	case d == 0:
		return Dim("0")
	case d > 0:
		return StyleYellow.Render(fmt.Sprintf("+%d", d))
	default:
		return StyleBlue.Render(fmt.Sprintf("%d", d))
	}
}

// EntryLabel names a timeline entry for display. Unnamed regular meals get a
// dimmed placeholder.
func EntryLabel(e domain.TimelineEntry) string {
	if e.Type == domain.EntryWorkout {
		label := e.WorkoutType
		if label == "" {
			label = "workout"
		}
		return fmt.Sprintf("%s %s (%s)", label, formatMinutes(e.DurationMin), e.Intensity)
	}
	if e.Name != nil && *e.Name != "" {
		return *e.Name
	}
	return Dim(strings.ReplaceAll(string(e.Role), "_", "-") + " meal")
}

// WarningList renders coded warnings as a bulleted list.
func WarningList(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(StyleYellow.Render(fmt.Sprintf("%d warning(s):", len(warnings))) + "\n")
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("  - ") + w + "\n")
	}
	return b.String()
}

func formatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h, m := min/60, min%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
