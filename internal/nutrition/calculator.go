package nutrition

import (
	"fmt"

	"github.com/alexanderramin/fuelplan/internal/app"
	"github.com/alexanderramin/fuelplan/internal/domain"
)

// DefaultReconcileTolerance is the allowed relative gap between macro energy
// and the energy target.
const DefaultReconcileTolerance = 0.02

type Options struct {
	ReconcileTolerance float64
}

func DefaultOptions() Options {
	return Options{ReconcileTolerance: DefaultReconcileTolerance}
}

// Calculator computes daily targets. It holds no per-call state and is safe
// for concurrent use.
type Calculator struct {
	opts Options
}

func NewCalculator(opts Options) *Calculator {
	if opts.ReconcileTolerance <= 0 || opts.ReconcileTolerance >= 1 {
		opts.ReconcileTolerance = DefaultReconcileTolerance
	}
	return &Calculator{opts: opts}
}

// ComputeTargets validates the inputs and derives the reconciled daily targets.
// Neither argument is modified.
func (c *Calculator) ComputeTargets(profile *domain.AthleteProfile, workouts []domain.Workout) (*domain.DailyTargets, error) {
	errs := domain.ValidateProfile(profile)
	errs = append(errs, domain.ValidateWorkouts(workouts)...)
	if pe := app.InvalidInput(errs); pe != nil {
		return nil, pe
	}

	weight := profile.WeightKg
	load := TrainingLoad(workouts)
	ctx := DetermineContext(workouts, load, profile.Goal)

	protein := proteinTarget(weight, profile.Goal, profile.TrainingPhase, workouts)
	carbs := carbTarget(weight, profile.Goal, load)
	fat := fatTarget(weight, ctx, profile.Goal)
	hydrationMl, hydrationWhy := hydrationTarget(weight, workouts, ctx)
	sodiumMg, sodiumWhy := sodiumTarget(workouts)

	bmr := BMR(weight, profile.HeightCm, profile.EffectiveAge(), profile.Gender)
	if bmr <= 0 {
		return nil, app.InvalidInput([]error{
			fmt.Errorf("athlete: basal metabolic rate %.0f kcal is not positive for this weight, height and age", bmr),
		})
	}
	af := ActivityFactor(load)
	tdee := domain.RoundHalfUp(bmr * af)
	energy := energyTarget(tdee, profile.Goal, profile.Gender)

	rec := reconcile(macroGrams{Protein: protein.Grams, Carbs: carbs.Grams, Fat: fat.Grams}, energy.Target, c.opts.ReconcileTolerance)
	p, cg, f := rec.Grams.rounded()
	carbsWhy, fatWhy := carbs.Rationale, fat.Rationale
	if rec.Passes > 0 {
		carbsWhy += fmt.Sprintf(" Reconciled to %d g to meet %d kcal.", cg, energy.Target)
		fatWhy += fmt.Sprintf(" Reconciled to %d g to meet %d kcal.", f, energy.Target)
	}

	return &domain.DailyTargets{
		WeightKg:     weight,
		EnergyKcal:   energy.Target,
		ProteinG:     p,
		CarbG:        cg,
		FatG:         f,
		HydrationL:   domain.RoundTenth(hydrationMl / 1000),
		SodiumMg:     domain.RoundHalfUp(sodiumMg),
		TrainingLoad: load,
		Context:      ctx,
		Breakdown: domain.CalorieBreakdown{
			Total:              energy.Target,
			BMR:                domain.RoundHalfUp(bmr),
			TDEE:               tdee,
			ActivityFactor:     af,
			ActivityLevel:      ActivityLevel(af),
			IsFatLoss:          profile.Goal.IsFatLoss(),
			IsSurplus:          profile.Goal.IsSurplus(),
			DeficitPercent:     energy.DeficitPercent,
			CaloriesFromMacros: domain.MacroCalories(cg, p, f),
		},
		Rationale: domain.Rationale{
			Protein:   protein.Rationale,
			Carbs:     carbsWhy,
			Fat:       fatWhy,
			Hydration: hydrationWhy,
			Sodium:    sodiumWhy,
			Calories:  calorieRationale(bmr, tdee, af, profile.Goal, profile.Gender, energy),
		},
		Warnings: rec.Warnings,
	}, nil
}
