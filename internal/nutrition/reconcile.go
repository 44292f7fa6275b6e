package nutrition

import (
	"math"

	"github.com/alexanderramin/fuelplan/internal/app"
	"github.com/alexanderramin/fuelplan/internal/domain"
)

const (
	convergenceBand = 0.001
	maxRescalePass  = 32
)

type macroGrams struct {
	Protein float64
	Carbs   float64
	Fat     float64
}

func (g macroGrams) calories() float64 {
	return g.Protein*domain.KcalPerGramProtein + g.Carbs*domain.KcalPerGramCarb + g.Fat*domain.KcalPerGramFat
}

func (g macroGrams) rounded() (protein, carbs, fat int) {
	return domain.RoundHalfUp(g.Protein), domain.RoundHalfUp(g.Carbs), domain.RoundHalfUp(g.Fat)
}

type reconciliation struct {
	Grams    macroGrams
	Passes   int
	Warnings []string
}

// reconcile scales carbs and fat so the macro energy matches energy. Protein is
// never touched. Nothing changes while the rounded macro energy is already
// within tolerance of the target.
func reconcile(g macroGrams, energy int, tolerance float64) reconciliation {
	target := float64(energy)
	res := reconciliation{Grams: g}
	if energy <= 0 {
		res.Warnings = append(res.Warnings, app.Warning(app.WarnReconciliationFailure,
			"energy target %d kcal is not positive; macros left unscaled", energy))
		return res
	}

	if math.Abs(float64(domain.RoundHalfUp(g.calories()))-target) > tolerance*target {
		for res.Passes < maxRescalePass {
			cal := res.Grams.calories()
			if cal <= 0 || math.Abs(cal-target) <= convergenceBand*target {
				break
			}
			scale := target / cal
			res.Grams.Carbs *= scale
			res.Grams.Fat *= scale
			res.Passes++
		}
	}

	p, c, f := res.Grams.rounded()
	got := domain.MacroCalories(c, p, f)
	if math.Abs(float64(got-energy)) > tolerance*target {
		res.Warnings = append(res.Warnings, app.Warning(app.WarnReconciliationFailure,
			"macros provide %d kcal against a %d kcal target after %d rescale pass(es); protein alone supplies %d kcal",
			got, energy, res.Passes, p*domain.KcalPerGramProtein))
	}
	return res
}
