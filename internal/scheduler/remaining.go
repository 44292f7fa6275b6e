package scheduler

import "github.com/alexanderramin/fuelplan/internal/domain"

// Remaining subtracts workout fuel and locked meals from the daily targets.
// Fields can go negative when fixed intake already exceeds a target.
func Remaining(targets *domain.DailyTargets, workoutEntries []domain.TimelineEntry, locked []domain.LockedMeal) domain.Totals {
	rem := targets.AsTotals().Sub(domain.SumEntries(workoutEntries))
	for i := range locked {
		rem = rem.Sub(domain.Totals{}.AddEntry(locked[i].ToEntry()))
	}
	return rem
}

// RegularMealCount is the number of meals left to place once locked meals
// have taken their share of meals_per_day.
func RegularMealCount(mealsPerDay, lockedCount int) int {
	return max(0, mealsPerDay-lockedCount)
}

// PerMealShare splits remaining evenly across n meals. Calories are derived
// from the rounded macros, so the shares need not sum to remaining exactly.
func PerMealShare(remaining domain.Totals, n int) domain.Totals {
	if n <= 0 {
		return domain.Totals{}
	}
	div := func(v int) int { return domain.RoundHalfUp(float64(v) / float64(n)) }
	share := domain.Totals{
		CarbsG:      div(remaining.CarbsG),
		ProteinG:    div(remaining.ProteinG),
		FatG:        div(remaining.FatG),
		SodiumMg:    div(remaining.SodiumMg),
		HydrationMl: div(remaining.HydrationMl),
	}
	share.Calories = domain.MacroCalories(share.CarbsG, share.ProteinG, share.FatG)
	return share
}
