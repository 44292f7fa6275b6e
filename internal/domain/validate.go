package domain

import (
	"fmt"
	"math"
)

// Physiological bounds for the profile. Harris-Benedict goes negative well
// below the minimums.
const (
	MinWeightKg = 20
	MaxWeightKg = 300
	MinHeightCm = 100
	MaxHeightCm = 250
)

// ValidateProfile checks the athlete profile and returns every problem found.
func ValidateProfile(p *AthleteProfile) []error {
	if p == nil {
		return []error{fmt.Errorf("athlete is required")}
	}
	var errs []error

	errs = append(errs, boundedPositive("athlete.weight_kg", p.WeightKg, MinWeightKg, MaxWeightKg)...)
	errs = append(errs, boundedPositive("athlete.height_cm", p.HeightCm, MinHeightCm, MaxHeightCm)...)
	if !ValidGenders[p.Gender] {
		errs = append(errs, fmt.Errorf("athlete.gender: invalid value %q (expected male or female)", p.Gender))
	}
	if !ValidGoals[p.Goal] {
		errs = append(errs, fmt.Errorf("athlete.goal: invalid value %q", p.Goal))
	}
	if !ValidPhases[p.TrainingPhase] {
		errs = append(errs, fmt.Errorf("athlete.training_phase: invalid value %q", p.TrainingPhase))
	}
	if p.Age != nil && (*p.Age <= 0 || *p.Age > 120) {
		errs = append(errs, fmt.Errorf("athlete.age: %d out of range (1-120)", *p.Age))
	}
	if p.MealsPerDay != nil && (*p.MealsPerDay < 0 || *p.MealsPerDay > 12) {
		errs = append(errs, fmt.Errorf("athlete.meals_per_day: %d out of range (0-12)", *p.MealsPerDay))
	}
	if p.PreWorkoutTimingMin != nil && (*p.PreWorkoutTimingMin < 0 || *p.PreWorkoutTimingMin > 720) {
		errs = append(errs, fmt.Errorf("athlete.pre_workout_timing_min: %d out of range (0-720)", *p.PreWorkoutTimingMin))
	}
	if p.SweatRateMlPerHr != nil {
		errs = append(errs, positiveFinite("athlete.sweat_rate_ml_per_hr", *p.SweatRateMlPerHr)...)
	}

	return errs
}

// ValidateWorkouts checks each workout and returns every problem found.
func ValidateWorkouts(workouts []Workout) []error {
	var errs []error
	for i := range workouts {
		w := &workouts[i]
		prefix := fmt.Sprintf("workouts[%d]", i)

		if w.DurationMin <= 0 {
			errs = append(errs, fmt.Errorf("%s.duration_min must be positive", prefix))
		}
		if _, err := ParseClock(w.StartTime); err != nil {
			errs = append(errs, fmt.Errorf("%s.start_time: %v", prefix, err))
		}
		if w.TempC != nil && (math.IsNaN(*w.TempC) || *w.TempC < -50 || *w.TempC > 60) {
			errs = append(errs, fmt.Errorf("%s.temp_c: %v out of range (-50 to 60)", prefix, *w.TempC))
		}
		if w.HumidityPct != nil && (math.IsNaN(*w.HumidityPct) || *w.HumidityPct < 0 || *w.HumidityPct > 100) {
			errs = append(errs, fmt.Errorf("%s.humidity_pct: %v out of range (0-100)", prefix, *w.HumidityPct))
		}
	}
	return errs
}

// ValidateLockedMeals checks each locked meal and returns every problem found.
func ValidateLockedMeals(meals []LockedMeal) []error {
	var errs []error
	for i := range meals {
		m := &meals[i]
		prefix := fmt.Sprintf("locked_meals[%d]", i)

		if _, err := ParseClock(m.Time); err != nil {
			errs = append(errs, fmt.Errorf("%s.time: %v", prefix, err))
		}
		for _, f := range []struct {
			name string
			v    int
		}{
			{"carbs_g", m.CarbsG}, {"protein_g", m.ProteinG}, {"fat_g", m.FatG},
			{"sodium_mg", m.SodiumMg}, {"hydration_ml", m.HydrationMl},
		} {
			if f.v < 0 {
				errs = append(errs, fmt.Errorf("%s.%s must not be negative", prefix, f.name))
			}
		}
	}
	return errs
}

// ValidateTargets checks caller-supplied targets before they seed a skeleton.
func ValidateTargets(t *DailyTargets) []error {
	if t == nil {
		return []error{fmt.Errorf("targets are required")}
	}
	var errs []error
	if t.EnergyKcal <= 0 {
		errs = append(errs, fmt.Errorf("targets.energy_kcal must be positive"))
	}
	for _, f := range []struct {
		name string
		v    int
	}{
		{"protein_g", t.ProteinG}, {"carb_g", t.CarbG}, {"fat_g", t.FatG}, {"sodium_mg", t.SodiumMg},
	} {
		if f.v < 0 {
			errs = append(errs, fmt.Errorf("targets.%s must not be negative", f.name))
		}
	}
	if math.IsNaN(t.HydrationL) || t.HydrationL < 0 {
		errs = append(errs, fmt.Errorf("targets.hydration_l must not be negative"))
	}
	return errs
}

func boundedPositive(field string, v, lo, hi float64) []error {
	if errs := positiveFinite(field, v); errs != nil {
		return errs
	}
	if v < lo || v > hi {
		return []error{fmt.Errorf("%s: %v out of range (%v-%v)", field, v, lo, hi)}
	}
	return nil
}

func positiveFinite(field string, v float64) []error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []error{fmt.Errorf("%s must be a finite number", field)}
	}
	if v <= 0 {
		return []error{fmt.Errorf("%s must be positive", field)}
	}
	return nil
}
