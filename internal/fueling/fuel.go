// Package fueling computes the pre, intra and post workout fuel for each
// session and places it on the clock.
package fueling

import (
	"math"

	"github.com/alexanderramin/fuelplan/internal/domain"
)

const (
	preProteinG    = 12
	preFatG        = 5
	preSodiumMg    = 200
	preHydrationMl = 250

	postProteinPerKg = 0.35
	postFatG         = 5
	postSodiumMg     = 500
	postHydrationMl  = 500
	postDelayMin     = 30

	intraMinDurationMin = 90
	sodiumMgPerMl       = 0.75
)

// Fuel is the macro content of one fueling event.
type Fuel = domain.Totals

// PreWorkout returns the meal eaten ahead of a session: 1 g/kg carbs and a
// small fixed amount of protein, fat, sodium and fluid.
func PreWorkout(weightKg float64) Fuel {
	f := Fuel{
		CarbsG:      domain.RoundHalfUp(weightKg),
		ProteinG:    preProteinG,
		FatG:        preFatG,
		SodiumMg:    preSodiumMg,
		HydrationMl: preHydrationMl,
	}
	f.Calories = domain.MacroCalories(f.CarbsG, f.ProteinG, f.FatG)
	return f
}

// PostWorkout returns the recovery meal: 1 g/kg carbs and 0.35 g/kg protein.
func PostWorkout(weightKg float64) Fuel {
	f := Fuel{
		CarbsG:      domain.RoundHalfUp(weightKg),
		ProteinG:    domain.RoundHalfUp(weightKg * postProteinPerKg),
		FatG:        postFatG,
		SodiumMg:    postSodiumMg,
		HydrationMl: postHydrationMl,
	}
	f.Calories = domain.MacroCalories(f.CarbsG, f.ProteinG, f.FatG)
	return f
}

// carbRate returns g/kg/hr and the gut absorption ceiling in g/hr.
func carbRate(i domain.Intensity) (perKg, ceiling float64) {
	switch i {
	case domain.IntensityVeryHigh, domain.IntensityHigh:
		return 1.2, 90
	case domain.IntensityLow:
		return 0.5, 45
	default:
		return 0.8, 60
	}
}

// IntraWorkout returns the fuel taken during a session. Sessions shorter than
// 90 minutes get nothing. sweatRate overrides the estimate when non-nil.
func IntraWorkout(weightKg float64, w *domain.Workout, sweatRate *float64) Fuel {
	if w.DurationMin < intraMinDurationMin {
		return Fuel{}
	}
	perKg, ceiling := carbRate(w.Intensity)
	hours := w.Hours()

	rate := EstimateSweatRate(w)
	if sweatRate != nil {
		rate = *sweatRate
	}
	hydration := domain.RoundHalfUp(hours * rate)
	carbs := domain.RoundHalfUp(hours * math.Min(weightKg*perKg, ceiling))

	return Fuel{
		CarbsG:      carbs,
		SodiumMg:    domain.RoundHalfUp(float64(hydration) * sodiumMgPerMl),
		HydrationMl: hydration,
		Calories:    carbs * domain.KcalPerGramCarb,
	}
}

func sweatIntensityFactor(i domain.Intensity) float64 {
	switch i {
	case domain.IntensityVeryHigh:
		return 1.4
	case domain.IntensityHigh:
		return 1.2
	case domain.IntensityLow:
		return 0.7
	default:
		return 1.0
	}
}

// EstimateSweatRate predicts ml/hr from conditions and intensity, clamped to
// [400, 2000].
func EstimateSweatRate(w *domain.Workout) float64 {
	rate := 800.0
	temp := w.EffectiveTempC()
	switch {
	case temp > 25:
		rate += (temp - 25) * 40
	case temp < 15:
		rate -= (15 - temp) * 20
	}
	if hum := w.EffectiveHumidityPct(); hum > 70 {
		rate += (hum - 70) * 5
	}
	rate *= sweatIntensityFactor(w.Intensity)
	return math.Min(math.Max(rate, 400), 2000)
}
