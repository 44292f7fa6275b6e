package importer

import (
	"fmt"

	"github.com/alexanderramin/fuelplan/internal/domain"
)

// Validate checks the plan file for errors before conversion. It reports
// conflicting aliases and then everything the domain validators find.
// Returns a slice of all validation errors found.
func Validate(plan *PlanFile) []error {
	var errs []error

	a := &plan.Athlete
	if a.SweatRate != nil && a.SweatRateMlPerHr != nil && *a.SweatRate != *a.SweatRateMlPerHr {
		errs = append(errs, fmt.Errorf("athlete: sweat_rate and sweat_rate_ml_per_hr disagree (%v vs %v)", *a.SweatRate, *a.SweatRateMlPerHr))
	}
	for i, w := range plan.Workouts {
		if w.StartTime != "" && w.StartTimeCamel != "" && w.StartTime != w.StartTimeCamel {
			errs = append(errs, fmt.Errorf("workouts[%d]: start_time %q and startTime %q disagree", i, w.StartTime, w.StartTimeCamel))
		}
		if w.HumidityPct != nil && w.HumidityPercent != nil && *w.HumidityPct != *w.HumidityPercent {
			errs = append(errs, fmt.Errorf("workouts[%d]: humidity_pct and humidity_percent disagree", i))
		}
	}

	profile, workouts, locked := convert(plan)
	errs = append(errs, domain.ValidateProfile(profile)...)
	errs = append(errs, domain.ValidateWorkouts(workouts)...)
	errs = append(errs, domain.ValidateLockedMeals(locked)...)
	if plan.Targets != nil {
		errs = append(errs, domain.ValidateTargets(plan.Targets)...)
	}

	return errs
}
