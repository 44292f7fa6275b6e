package nutrition

import (
	"fmt"
	"math"

	"github.com/alexanderramin/fuelplan/internal/domain"
)

const (
	sodiumBaseMg = 3000.0
	sodiumMaxMg  = 6000.0
	raceFluidMl  = 500.0
)

// macroTarget is an unrounded gram target with the g/kg rate that produced it.
type macroTarget struct {
	Grams     float64
	PerKg     float64
	Rationale string
}

func proteinTarget(weight float64, goal domain.Goal, phase domain.TrainingPhase, workouts []domain.Workout) macroTarget {
	perKg := 1.6
	switch {
	case goal.IsFatLoss():
		perKg = 2.3
	case goal == domain.GoalPerformance:
		switch phase {
		case domain.PhaseBase, domain.PhaseBuild:
			perKg = 1.8
		case domain.PhaseRace:
			perKg = 1.6
		case domain.PhaseRecovery:
			perKg = 1.7
		}
	case goal == domain.GoalHypertrophy:
		perKg = 2.0
	}

	bumped := hasLongOrIntenseSession(workouts)
	if bumped {
		perKg += 0.2
	}
	grams := weight * perKg

	var why string
	switch {
	case goal.IsFatLoss():
		why = "Higher protein during a deficit preserves lean mass (Morton2018); spread it over 3-4 meals of 0.25-0.4 g/kg."
	case bumped:
		why = fmt.Sprintf("%s phase baseline plus 0.2 g/kg for a long or intense session that needs extra recovery (ISSN2017).", phase)
	default:
		why = fmt.Sprintf("Moderate protein supports adaptation in the %s phase (ACSM2016).", phase)
	}

	return macroTarget{
		Grams:     grams,
		PerKg:     perKg,
		Rationale: fmt.Sprintf("Protein %d g (%s g/kg × %s kg). %s", domain.RoundHalfUp(grams), trimFloat(perKg), trimFloat(weight), why),
	}
}

// hasLongOrIntenseSession reports any workout over 90 minutes or above high intensity.
func hasLongOrIntenseSession(workouts []domain.Workout) bool {
	for i := range workouts {
		if workouts[i].DurationMin > 90 || workouts[i].Intensity.Factor() > 1.5 {
			return true
		}
	}
	return false
}

func baseCarbPerKg(band LoadBand) float64 {
	switch band {
	case BandRest:
		return 3.5
	case BandLight:
		return 6.0
	case BandModerateHigh:
		return 8.0
	default:
		return 10.0
	}
}

// fatLossCarbFactor is the carb multiplier for fat-loss goals. Harder days get
// the smaller cut.
func fatLossCarbFactor(band LoadBand) float64 {
	switch band {
	case BandRest:
		return 0.60
	case BandLight:
		return 0.65
	case BandModerateHigh:
		return 0.70
	default:
		return 0.75
	}
}

func carbTarget(weight float64, goal domain.Goal, load float64) macroTarget {
	band := BandForLoad(load)
	perKg := baseCarbPerKg(band)

	cut := ""
	if goal.IsFatLoss() {
		factor := fatLossCarbFactor(band)
		perKg *= factor
		cut = fmt.Sprintf(", cut %d%% for fat loss", domain.RoundHalfUp((1-factor)*100))
	}
	grams := weight * perKg

	var why string
	switch {
	case goal.IsFatLoss() && band == BandRest:
		why = "Low demand on a rest day, so carbs carry most of the deficit (Burke2011)."
	case goal.IsFatLoss():
		why = "Deficit comes mostly from carbs while pre/post-workout fuel stays intact (Thomas2016)."
	case band == BandVeryHigh:
		why = "Heavy training needs 8-12 g/kg to keep glycogen stocked (ISSN2017)."
	case band == BandModerateHigh:
		why = "6-10 g/kg supports intensive sessions and glycogen repletion (ACSM2016)."
	case band == BandLight:
		why = "5-7 g/kg covers the current training volume (IOC2018)."
	default:
		why = "Rest-day carbs maintain baseline glycogen without excess."
	}

	return macroTarget{
		Grams: grams,
		PerKg: perKg,
		Rationale: fmt.Sprintf("Carbs %d g (%.1f g/kg × %s kg%s). Training load %.2f, %s band. %s",
			domain.RoundHalfUp(grams), perKg, trimFloat(weight), cut, load, band.Label(), why),
	}
}

func fatTarget(weight float64, ctx domain.MacroContext, goal domain.Goal) macroTarget {
	perKg := 0.8
	why := "Balanced fat supports hormones, vitamin absorption and satiety (ACSM2016, 20-35% of energy)."
	switch {
	case ctx == domain.ContextRace:
		perKg = 0.6
		why = "Lower fat on race day keeps room for carbs and eases digestion."
	case goal.IsFatLoss():
		perKg = 0.9
		why = "Moderate fat keeps the deficit tolerable and supports hormone production."
	}
	grams := weight * perKg
	return macroTarget{
		Grams:     grams,
		PerKg:     perKg,
		Rationale: fmt.Sprintf("Fat %d g (%s g/kg × %s kg). %s", domain.RoundHalfUp(grams), trimFloat(perKg), trimFloat(weight), why),
	}
}

// hydrationTarget returns millilitres: 35 ml/kg plus 400-800 ml per training hour.
func hydrationTarget(weight float64, workouts []domain.Workout, ctx domain.MacroContext) (float64, string) {
	base := weight * 35
	ml := base
	for i := range workouts {
		w := &workouts[i]
		perHour := 400 + 400*clamp(w.Intensity.Factor()-1, 0, 1)
		ml += w.Hours() * perHour
	}
	if ctx == domain.ContextRace {
		ml += raceFluidMl
	}
	rationale := fmt.Sprintf("Hydration %d ml (%.1f L): base %d ml at 35 ml/kg plus %d ml for training and race needs (ACSM2016).",
		domain.RoundHalfUp(ml), ml/1000, domain.RoundHalfUp(base), domain.RoundHalfUp(ml-base))
	return ml, rationale
}

// sodiumTarget returns milligrams clamped to [3000, 6000].
func sodiumTarget(workouts []domain.Workout) (float64, string) {
	mg := sodiumBaseMg
	for i := range workouts {
		w := &workouts[i]
		f := w.Intensity.Factor()
		perHour := 500.0
		if f > 1.2 {
			perHour = 700
		}
		if f > 1.5 {
			perHour = 900
		}
		if w.HeatIndexFlag {
			perHour += 300
		}
		mg += w.Hours() * perHour
	}
	mg = clamp(mg, sodiumBaseMg, sodiumMaxMg)
	rationale := fmt.Sprintf("Sodium %d mg: 3000 mg athlete baseline plus %d mg sweat replacement (McCubbin2025), capped at 6000 mg.",
		domain.RoundHalfUp(mg), domain.RoundHalfUp(mg-sodiumBaseMg))
	return mg, rationale
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// trimFloat formats without trailing zeros, so 1.8 prints as "1.8" and 70 as "70".
func trimFloat(v float64) string {
	return fmt.Sprintf("%g", math.Round(v*100)/100)
}
