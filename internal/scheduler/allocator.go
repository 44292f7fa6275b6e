package scheduler

import (
	"fmt"

	"github.com/alexanderramin/fuelplan/internal/domain"
)

// Allocation is the result of placing regular meals.
type Allocation struct {
	Meals []domain.TimelineEntry
	// Share is the per-meal macro split applied to every meal.
	Share domain.Totals
	// Rejected lists slots dropped for sitting too close to an occupied time.
	Rejected []MealSlot
	// GenericFallback is set when the slot table ran out and at least one
	// meal was placed at the fallback time.
	GenericFallback bool
}

// AllocateMeals places n regular meals carrying an even share of remaining.
// Slots are taken first-fit in table order, skipping any within the buffer of
// an occupied time. Meals the table cannot hold become "Meal N" entries at the
// fallback time.
func AllocateMeals(remaining domain.Totals, n int, occupied []domain.ClockTime, opts Options) (Allocation, error) {
	if n <= 0 {
		return Allocation{}, nil
	}
	fallback, err := domain.ParseClock(opts.FallbackTime)
	if err != nil {
		return Allocation{}, fmt.Errorf("fallback time: %w", err)
	}

	share := PerMealShare(remaining, n)
	alloc := Allocation{Share: share, Meals: make([]domain.TimelineEntry, 0, n)}

	for i, slot := range opts.Slots {
		at, err := domain.ParseClock(slot.Time)
		if err != nil {
			return Allocation{}, fmt.Errorf("meal slot %d: %w", i, err)
		}
		if Conflicts(at, occupied, opts.BufferMin) {
			alloc.Rejected = append(alloc.Rejected, slot)
			continue
		}
		if len(alloc.Meals) < n {
			alloc.Meals = append(alloc.Meals, regularEntry(at, slot.Name, share))
		}
	}

	for len(alloc.Meals) < n {
		e := regularEntry(fallback, fmt.Sprintf("Meal %d", len(alloc.Meals)+1), share)
		e.GenericFallback = true
		alloc.Meals = append(alloc.Meals, e)
		alloc.GenericFallback = true
	}

	return alloc, nil
}

func regularEntry(at domain.ClockTime, name string, share domain.Totals) domain.TimelineEntry {
	return domain.TimelineEntry{
		Time:        at.String(),
		Type:        domain.EntryMeal,
		Role:        domain.RoleRegular,
		Name:        domain.StrPtr(name),
		CarbsG:      share.CarbsG,
		ProteinG:    share.ProteinG,
		FatG:        share.FatG,
		SodiumMg:    share.SodiumMg,
		HydrationMl: share.HydrationMl,
		Calories:    share.Calories,
	}
}
