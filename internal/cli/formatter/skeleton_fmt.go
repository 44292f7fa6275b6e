package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fuelplan/internal/domain"
)

const coverageBarWidth = 10

// coverageTolerance colors the totals bars; it matches the default
// reconciliation tolerance.
const coverageTolerance = 0.02

// FormatSkeleton renders the day's timeline followed by totals against targets.
func FormatSkeleton(sk *domain.Skeleton) string {
	var b strings.Builder

	headers := []string{"TIME", "ENTRY", "CARBS", "PROTEIN", "FAT", "SODIUM", "FLUID", "KCAL"}
	rows := make([][]string, 0, len(sk.Timeline))
	for _, e := range sk.Timeline {
		style := RoleStyle(e.Role)
		label := EntryLabel(e)
		if e.Locked {
			label += Dim(" [locked]")
		}
		if e.GenericFallback {
			label += StyleRed.Render(" [fallback]")
		}
		rows = append(rows, []string{
			style.Render(e.Time),
			label,
			fmt.Sprintf("%dg", e.CarbsG),
			fmt.Sprintf("%dg", e.ProteinG),
			fmt.Sprintf("%dg", e.FatG),
			fmt.Sprintf("%dmg", e.SodiumMg),
			fmt.Sprintf("%dml", e.HydrationMl),
			fmt.Sprintf("%d", e.Calories),
		})
	}
	numeric := map[int]bool{2: true, 3: true, 4: true, 5: true, 6: true, 7: true}
	b.WriteString(RenderTableAligned(headers, rows, numeric))

	b.WriteString("\n" + Header("Totals vs targets") + "\n")
	target := sk.Targets.AsTotals()
	actual := sk.Totals.Fields()
	delta := sk.TargetDelta.Fields()
	totalRows := make([][]string, 0, len(actual))
	for i, f := range target.Fields() {
		totalRows = append(totalRows, []string{
			f.Name,
			fmt.Sprintf("%d", actual[i].Value),
			fmt.Sprintf("%d", f.Value),
			FormatDelta(delta[i].Value),
			RenderCoverage(actual[i].Value, f.Value, coverageBarWidth, coverageTolerance),
		})
	}
	b.WriteString(RenderTableAligned([]string{"FIELD", "PLANNED", "TARGET", "DELTA", "COVERAGE"}, totalRows,
		map[int]bool{1: true, 2: true, 3: true}))

	c := sk.Counts
	b.WriteString(fmt.Sprintf("\n%s  %d workout, %d locked, %d regular (%d total)\n",
		Dim("ENTRIES"), c.Workout, c.Locked, c.Regular, c.Total))

	if w := WarningList(sk.Warnings); w != "" {
		b.WriteString("\n" + w)
	}
	return b.String()
}
