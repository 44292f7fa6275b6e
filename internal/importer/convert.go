package importer

import (
	"github.com/alexanderramin/fuelplan/internal/app"
	"github.com/alexanderramin/fuelplan/internal/domain"
)

// Convert transforms a plan file into a skeleton request. Validation runs
// first; a plan with problems yields an INVALID_INPUT PlanError.
func Convert(plan *PlanFile) (*app.SkeletonRequest, error) {
	if errs := Validate(plan); len(errs) > 0 {
		return nil, app.InvalidInput(errs)
	}
	profile, workouts, locked := convert(plan)
	req := &app.SkeletonRequest{
		Athlete:     profile,
		Workouts:    workouts,
		LockedMeals: locked,
	}
	if plan.Targets != nil {
		t := *plan.Targets
		req.Targets = &t
	}
	return req, nil
}

func convert(plan *PlanFile) (*domain.AthleteProfile, []domain.Workout, []domain.LockedMeal) {
	a := plan.Athlete
	profile := &domain.AthleteProfile{
		WeightKg:            a.WeightKg,
		HeightCm:            a.HeightCm,
		Gender:              domain.Gender(a.Gender),
		Age:                 a.Age,
		Goal:                domain.Goal(a.Goal),
		TrainingPhase:       domain.TrainingPhase(a.TrainingPhase),
		Populations:         append([]string(nil), a.Populations...),
		MealsPerDay:         a.MealsPerDay,
		PreWorkoutTimingMin: a.PreWorkoutTimingMin,
		SweatRateMlPerHr:    firstFloat(a.SweatRateMlPerHr, a.SweatRate),
	}

	workouts := make([]domain.Workout, 0, len(plan.Workouts))
	for _, w := range plan.Workouts {
		start := w.StartTime
		if start == "" {
			start = w.StartTimeCamel
		}
		workouts = append(workouts, domain.Workout{
			Type:          w.Type,
			DurationMin:   w.DurationMin,
			Intensity:     domain.Intensity(w.Intensity),
			StartTime:     start,
			TempC:         w.TempC,
			HumidityPct:   firstFloat(w.HumidityPct, w.HumidityPercent),
			HeatIndexFlag: w.HeatIndexFlag,
			Race:          w.Race,
		})
	}

	locked := make([]domain.LockedMeal, 0, len(plan.LockedMeals))
	for _, m := range plan.LockedMeals {
		locked = append(locked, domain.LockedMeal(m))
	}
	return profile, workouts, locked
}

func firstFloat(vals ...*float64) *float64 {
	for _, v := range vals {
		if v != nil {
			f := *v
			return &f
		}
	}
	return nil
}
