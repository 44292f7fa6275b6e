package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/fuelplan/internal/app"
	"github.com/alexanderramin/fuelplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderTableAligned(t *testing.T) {
	out := stripANSI(RenderTableAligned(
		[]string{"NAME", "QTY"},
		[][]string{{"Oats", "5"}, {"Rice Bowl", "120"}},
		map[int]bool{1: true},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NAME       QTY", lines[0])
	assert.Equal(t, "─────────  ───", lines[1])
	assert.Equal(t, "Oats         5", lines[2])
	assert.Equal(t, "Rice Bowl  120", lines[3])
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderCoverage(t *testing.T) {
	tests := []struct {
		name           string
		actual, target int
		want           string
	}{
		{"on target", 100, 100, "[██████████] 100%"},
		{"half", 50, 100, "[█████░░░░░]  50%"},
		{"over clamps bar", 150, 100, "[██████████] 150%"},
		{"negative clamps bar", -20, 100, "[░░░░░░░░░░] -20%"},
		{"no target", 10, 0, "[░░░░░░░░░░]   --"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderCoverage(tt.actual, tt.target, 10, 0.02)))
		})
	}
}

func TestFormatDelta(t *testing.T) {
	assert.Equal(t, "+12", stripANSI(FormatDelta(12)))
	assert.Equal(t, "-3", stripANSI(FormatDelta(-3)))
	assert.Equal(t, "0", stripANSI(FormatDelta(0)))
}

func TestEntryLabel(t *testing.T) {
	name := "Overnight Oats"
	assert.Equal(t, "Overnight Oats", EntryLabel(domain.TimelineEntry{Type: domain.EntryMeal, Name: &name}))
	assert.Equal(t, "pre-workout meal", stripANSI(EntryLabel(domain.TimelineEntry{Type: domain.EntryMeal, Role: domain.RolePreWorkout})))
	assert.Equal(t, "run 1h 30m (high)", EntryLabel(domain.TimelineEntry{
		Type: domain.EntryWorkout, WorkoutType: "run", DurationMin: 90, Intensity: domain.IntensityHigh,
	}))
}

func TestFormatTargets(t *testing.T) {
	targets := &domain.DailyTargets{
		WeightKg: 70, EnergyKcal: 2332, ProteinG: 126, CarbG: 380, FatG: 70, HydrationL: 2.9, SodiumMg: 3500,
		TrainingLoad: 1.2, Context: domain.ContextNormal,
		Breakdown: domain.CalorieBreakdown{BMR: 1696, TDEE: 2332, ActivityFactor: 1.375, ActivityLevel: "lightly active"},
		Rationale: domain.Rationale{Protein: "1.8 g/kg for performance in base phase"},
		Warnings:  []string{"RECONCILIATION_FAILURE: protein alone supplies too much"},
	}
	out := stripANSI(FormatTargets(targets))
	assert.Contains(t, out, "● NORMAL")
	assert.Contains(t, out, "2332 kcal")
	assert.Contains(t, out, "1.8 g/kg for performance in base phase")
	assert.Contains(t, out, "BMR 1696")
	assert.Contains(t, out, "×1.375")
	assert.Contains(t, out, "1 warning(s):")
	assert.Contains(t, out, "ENERGY")
	assert.NotContains(t, out, "deficit")
}

func TestFormatSkeleton(t *testing.T) {
	lunch := "Team Lunch"
	entries := []domain.TimelineEntry{
		{Time: "07:30", Type: domain.EntryMeal, Role: domain.RolePreWorkout, CarbsG: 70, ProteinG: 14, FatG: 4, Calories: 372},
		{Time: "09:00", Type: domain.EntryWorkout, Role: domain.RoleWorkout, WorkoutType: "run", DurationMin: 60, Intensity: domain.IntensityModerate},
		{Time: "12:30", Type: domain.EntryMeal, Role: domain.RoleLocked, Name: &lunch, Locked: true, CarbsG: 60, ProteinG: 30, FatG: 15, Calories: 495},
		{Time: "08:00", Type: domain.EntryMeal, Role: domain.RoleRegular, GenericFallback: true},
	}
	sk := &domain.Skeleton{
		Timeline: entries,
		Totals:   domain.SumEntries(entries),
		Targets:  domain.DailyTargets{EnergyKcal: 2000, CarbG: 250, ProteinG: 120, FatG: 60, HydrationL: 2.5, SodiumMg: 3000},
		Counts:   domain.SkeletonCounts{Workout: 2, Locked: 1, Regular: 1, Total: 4},
		Warnings: []string{"ALLOCATION_EXHAUSTED: only 0 of 1 regular meals fit"},
	}
	sk.TargetDelta = sk.Totals.Sub(sk.Targets.AsTotals())

	out := stripANSI(FormatSkeleton(sk))
	assert.Contains(t, out, "run 1h (moderate)")
	assert.Contains(t, out, "Team Lunch [locked]")
	assert.Contains(t, out, "regular meal [fallback]")
	assert.Contains(t, out, "TOTALS VS TARGETS")
	assert.Contains(t, out, "-1133")
	assert.Contains(t, out, "2 workout, 1 locked, 1 regular (4 total)")
	assert.Contains(t, out, "ALLOCATION_EXHAUSTED")
}

func TestFormatNamingReport(t *testing.T) {
	r := &app.NamingReport{
		OK: false, Tolerance: 0.05, Entries: 3, NamedCount: 2, Unnamed: []int{1}, Normalized: true,
		Fields: []app.FieldDeviation{
			{Field: "carbs_g", Expected: 300, Actual: 330, DeviationPct: 10, Within: false},
			{Field: "protein_g", Expected: 120, Actual: 121, DeviationPct: 0.8, Within: true},
		},
	}
	out := stripANSI(FormatNamingReport(r))
	assert.Contains(t, out, "drifts from the skeleton")
	assert.Contains(t, out, "(±5%)")
	assert.Contains(t, out, "10.0%")
	assert.Contains(t, out, "drift")
	assert.Contains(t, out, "2 of 3 entries named")
	assert.Contains(t, out, "unnamed entries: 1")
	assert.Contains(t, out, "hydration converted from litres")
}

func TestContextBadge(t *testing.T) {
	assert.Equal(t, "▲ RACE", stripANSI(ContextBadge(domain.ContextRace)))
	assert.Equal(t, "● FAT LOSS", stripANSI(ContextBadge(domain.ContextFatLoss)))
	assert.Equal(t, "○ RECOVERY", stripANSI(ContextBadge(domain.ContextRecovery)))
}
