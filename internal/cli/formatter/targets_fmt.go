package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fuelplan/internal/domain"
)

// FormatTargets renders daily targets with their rationale.
func FormatTargets(t *domain.DailyTargets) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  load %.2f  %s\n\n",
		ContextBadge(t.Context), t.TrainingLoad, Dim(fmt.Sprintf("%.1f kg", t.WeightKg))))

	rows := [][]string{
		{"Energy", fmt.Sprintf("%d kcal", t.EnergyKcal), t.Rationale.Calories},
		{"Protein", fmt.Sprintf("%d g", t.ProteinG), t.Rationale.Protein},
		{"Carbs", fmt.Sprintf("%d g", t.CarbG), t.Rationale.Carbs},
		{"Fat", fmt.Sprintf("%d g", t.FatG), t.Rationale.Fat},
		{"Hydration", fmt.Sprintf("%.1f L", t.HydrationL), t.Rationale.Hydration},
		{"Sodium", fmt.Sprintf("%d mg", t.SodiumMg), t.Rationale.Sodium},
	}
	for i := range rows {
		rows[i][0] = Bold(rows[i][0])
		rows[i][2] = Dim(rows[i][2])
	}
	b.WriteString(RenderTableAligned([]string{"TARGET", "AMOUNT", "WHY"}, rows, map[int]bool{1: true}))

	bd := t.Breakdown
	energy := fmt.Sprintf("BMR %d  ×%g (%s)  TDEE %d\nmacros supply %d kcal",
		bd.BMR, bd.ActivityFactor, bd.ActivityLevel, bd.TDEE, bd.CaloriesFromMacros)
	if bd.DeficitPercent != 0 {
		energy += fmt.Sprintf("\n%d%% deficit below TDEE", bd.DeficitPercent)
	}
	b.WriteString("\n" + RenderBox("Energy", energy) + "\n")

	if w := WarningList(t.Warnings); w != "" {
		b.WriteString("\n" + w)
	}
	return b.String()
}
