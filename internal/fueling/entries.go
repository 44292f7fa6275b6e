package fueling

import (
	"fmt"

	"github.com/alexanderramin/fuelplan/internal/domain"
)

// MealTimes places the pre-workout meal preTimingMin before start and the
// post-workout meal 30 minutes after the session ends. Both wrap at midnight.
func MealTimes(start domain.ClockTime, durationMin, preTimingMin int) (pre, post domain.ClockTime) {
	return start.Add(-preTimingMin), start.Add(durationMin + postDelayMin)
}

// WorkoutEntries builds the three entries for every workout: the pre-workout
// meal, the session itself carrying any intra fuel, and the recovery meal.
// Each workout is handled independently; nothing carries over between them.
func WorkoutEntries(profile *domain.AthleteProfile, workouts []domain.Workout) ([]domain.TimelineEntry, error) {
	preTiming := profile.EffectivePreWorkoutTiming()
	entries := make([]domain.TimelineEntry, 0, 3*len(workouts))

	for i := range workouts {
		w := &workouts[i]
		start, err := domain.ParseClock(w.StartTime)
		if err != nil {
			return nil, fmt.Errorf("workouts[%d]: %w", i, err)
		}
		pre, post := MealTimes(start, w.DurationMin, preTiming)

		entries = append(entries,
			mealEntry(pre, domain.RolePreWorkout, PreWorkout(profile.WeightKg)),
			sessionEntry(start, w, IntraWorkout(profile.WeightKg, w, profile.SweatRateMlPerHr)),
			mealEntry(post, domain.RolePostWorkout, PostWorkout(profile.WeightKg)),
		)
	}
	return entries, nil
}

func mealEntry(at domain.ClockTime, role domain.EntryRole, f Fuel) domain.TimelineEntry {
	return domain.TimelineEntry{
		Time:        at.String(),
		Type:        domain.EntryMeal,
		Role:        role,
		CarbsG:      f.CarbsG,
		ProteinG:    f.ProteinG,
		FatG:        f.FatG,
		SodiumMg:    f.SodiumMg,
		HydrationMl: f.HydrationMl,
		Calories:    f.Calories,
	}
}

func sessionEntry(at domain.ClockTime, w *domain.Workout, f Fuel) domain.TimelineEntry {
	e := mealEntry(at, domain.RoleWorkout, f)
	e.Type = domain.EntryWorkout
	e.WorkoutType = w.Type
	e.DurationMin = w.DurationMin
	e.Intensity = w.Intensity
	return e
}
