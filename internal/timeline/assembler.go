// Package timeline assembles the day's fueling skeleton from workout fuel,
// locked meals and evenly split regular meals.
package timeline

import (
	"fmt"

	"github.com/alexanderramin/fuelplan/internal/app"
	"github.com/alexanderramin/fuelplan/internal/domain"
	"github.com/alexanderramin/fuelplan/internal/fueling"
	"github.com/alexanderramin/fuelplan/internal/scheduler"
)

// Assembler builds timeline skeletons. It is safe for concurrent use.
type Assembler struct {
	slots scheduler.Options
}

// NewAssembler fills any zero-valued option from scheduler.DefaultOptions.
func NewAssembler(slots scheduler.Options) *Assembler {
	def := scheduler.DefaultOptions()
	if len(slots.Slots) == 0 {
		slots.Slots = def.Slots
	}
	if slots.BufferMin <= 0 {
		slots.BufferMin = def.BufferMin
	}
	if slots.FallbackTime == "" {
		slots.FallbackTime = def.FallbackTime
	}
	return &Assembler{slots: slots}
}

// GenerateSkeleton lays out workout fuel, locked meals and regular meals for
// the day and totals them. No input is modified.
func (a *Assembler) GenerateSkeleton(
	profile *domain.AthleteProfile,
	workouts []domain.Workout,
	locked []domain.LockedMeal,
	targets *domain.DailyTargets,
) (*domain.Skeleton, error) {
	errs := domain.ValidateProfile(profile)
	errs = append(errs, domain.ValidateWorkouts(workouts)...)
	errs = append(errs, domain.ValidateLockedMeals(locked)...)
	errs = append(errs, domain.ValidateTargets(targets)...)
	if pe := app.InvalidInput(errs); pe != nil {
		return nil, pe
	}

	workoutEntries, err := fueling.WorkoutEntries(profile, workouts)
	if err != nil {
		return nil, fmt.Errorf("workout fuel: %w", err)
	}
	lockedEntries := make([]domain.TimelineEntry, len(locked))
	for i := range locked {
		lockedEntries[i] = locked[i].ToEntry()
	}

	remaining := scheduler.Remaining(targets, workoutEntries, locked)
	warnings := budgetWarnings(remaining)

	occupied, err := scheduler.OccupiedTimes(append(append([]domain.TimelineEntry{}, workoutEntries...), lockedEntries...))
	if err != nil {
		return nil, fmt.Errorf("occupied times: %w", err)
	}
	n := scheduler.RegularMealCount(profile.EffectiveMealsPerDay(), len(locked))
	alloc, err := scheduler.AllocateMeals(remaining, n, occupied, a.slots)
	if err != nil {
		return nil, fmt.Errorf("allocate meals: %w", err)
	}
	if alloc.GenericFallback {
		placed := 0
		for _, m := range alloc.Meals {
			if !m.GenericFallback {
				placed++
			}
		}
		warnings = append(warnings, app.Warning(app.WarnAllocationExhausted,
			"only %d of %d regular meals fit the slot table; %d placed at %s",
			placed, n, n-placed, a.slots.FallbackTime))
	}

	entries := make([]domain.TimelineEntry, 0, len(workoutEntries)+len(lockedEntries)+len(alloc.Meals))
	entries = append(entries, workoutEntries...)
	entries = append(entries, lockedEntries...)
	entries = append(entries, alloc.Meals...)
	scheduler.SortTimeline(entries)

	totals := domain.SumEntries(entries)
	return &domain.Skeleton{
		Timeline:                        entries,
		Totals:                          totals,
		Targets:                         *targets,
		RemainingAfterLockedAndWorkouts: remaining,
		TargetDelta:                     totals.Sub(targets.AsTotals()),
		Counts: domain.SkeletonCounts{
			Workout: len(workoutEntries),
			Locked:  len(lockedEntries),
			Regular: len(alloc.Meals),
			Total:   len(entries),
		},
		GenericFallback: alloc.GenericFallback,
		Warnings:        warnings,
	}, nil
}

func budgetWarnings(remaining domain.Totals) []string {
	var out []string
	for _, f := range remaining.Fields() {
		if f.Value < 0 {
			out = append(out, app.Warning(app.WarnBudgetExceeded,
				"workout fuel and locked meals exceed the %s target by %d", f.Name, -f.Value))
		}
	}
	return out
}
