package scheduler

import (
	"testing"

	"github.com/alexanderramin/fuelplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clocks(times ...string) []domain.ClockTime {
	out := make([]domain.ClockTime, len(times))
	for i, s := range times {
		out[i] = domain.MustParseClock(s)
	}
	return out
}

func mealNames(entries []domain.TimelineEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		if e.Name != nil {
			names[i] = *e.Name
		}
	}
	return names
}

func TestAllocateMeals_SkipsSlotsNearMorningWorkout(t *testing.T) {
	// 09:00 session with pre at 07:30 and post at 10:30.
	occupied := clocks("07:30", "09:00", "10:30")
	remaining := domain.Totals{CarbsG: 200, ProteinG: 80, FatG: 40, SodiumMg: 2000, HydrationMl: 2000}

	alloc, err := AllocateMeals(remaining, 4, occupied, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"Lunch", "Afternoon Snack", "Pre-Dinner Snack", "Dinner"}, mealNames(alloc.Meals))
	assert.Equal(t, "12:30", alloc.Meals[0].Time)
	assert.False(t, alloc.GenericFallback)
	require.Len(t, alloc.Rejected, 2)
	assert.Equal(t, "Breakfast", alloc.Rejected[0].Name)
	assert.Equal(t, "Mid-Morning Snack", alloc.Rejected[1].Name)

	for _, m := range alloc.Meals {
		assert.Equal(t, domain.RoleRegular, m.Role)
		assert.Equal(t, domain.EntryMeal, m.Type)
		assert.Equal(t, 50, m.CarbsG)
		assert.Equal(t, 20, m.ProteinG)
		assert.Equal(t, 10, m.FatG)
		assert.Equal(t, 500, m.SodiumMg)
		assert.Equal(t, 500, m.HydrationMl)
		assert.Equal(t, 50*4+20*4+10*9, m.Calories)
		assert.False(t, m.GenericFallback)
	}
}

func TestAllocateMeals_BufferIsExclusive(t *testing.T) {
	alloc, err := AllocateMeals(domain.Totals{CarbsG: 10}, 1, clocks("08:00"), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, alloc.Meals, 1)
	assert.Equal(t, "Breakfast", *alloc.Meals[0].Name, "exactly 60 minutes away is allowed")

	alloc, err = AllocateMeals(domain.Totals{CarbsG: 10}, 1, clocks("07:59"), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Mid-Morning Snack", *alloc.Meals[0].Name)
}

func TestAllocateMeals_FallbackWhenTableExhausted(t *testing.T) {
	occupied := clocks("07:00", "10:00", "15:00", "18:00", "19:30", "21:00")
	alloc, err := AllocateMeals(domain.Totals{CarbsG: 90}, 3, occupied, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"Lunch", "Meal 2", "Meal 3"}, mealNames(alloc.Meals))
	assert.True(t, alloc.GenericFallback)
	assert.False(t, alloc.Meals[0].GenericFallback)
	for _, m := range alloc.Meals[1:] {
		assert.Equal(t, DefaultFallbackTime, m.Time)
		assert.True(t, m.GenericFallback)
		assert.Equal(t, 30, m.CarbsG)
	}
}

func TestAllocateMeals_MoreMealsThanSlots(t *testing.T) {
	alloc, err := AllocateMeals(domain.Totals{CarbsG: 900}, 9, nil, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, alloc.Meals, 9)
	assert.Equal(t, "Evening Snack", *alloc.Meals[6].Name)
	assert.Equal(t, "Meal 8", *alloc.Meals[7].Name)
	assert.Equal(t, "Meal 9", *alloc.Meals[8].Name)
	assert.True(t, alloc.GenericFallback)
}

func TestAllocateMeals_ZeroMealsDoesNotDivide(t *testing.T) {
	for _, n := range []int{0, -2} {
		alloc, err := AllocateMeals(domain.Totals{CarbsG: 100, Calories: 400}, n, nil, DefaultOptions())
		require.NoError(t, err)
		assert.Empty(t, alloc.Meals)
		assert.Equal(t, domain.Totals{}, alloc.Share)
		assert.False(t, alloc.GenericFallback)
	}
}

func TestAllocateMeals_CustomTable(t *testing.T) {
	opts := Options{
		Slots:        []MealSlot{{Time: "06:00", Name: "Early"}, {Time: "13:00", Name: "Midday"}},
		BufferMin:    30,
		FallbackTime: "20:00",
	}
	alloc, err := AllocateMeals(domain.Totals{ProteinG: 60}, 3, clocks("06:20"), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"Midday", "Meal 2", "Meal 3"}, mealNames(alloc.Meals))
	assert.Equal(t, "20:00", alloc.Meals[2].Time)
}

func TestAllocateMeals_BadSlotTime(t *testing.T) {
	opts := DefaultOptions()
	opts.Slots = []MealSlot{{Time: "lunchtime", Name: "Lunch"}}
	_, err := AllocateMeals(domain.Totals{}, 1, nil, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "meal slot 0")
}

func TestPerMealShare_RoundsHalfUp(t *testing.T) {
	share := PerMealShare(domain.Totals{CarbsG: 301, ProteinG: -5, FatG: 10, SodiumMg: 1001, HydrationMl: 2999, Calories: 9999}, 4)
	assert.Equal(t, 75, share.CarbsG)
	assert.Equal(t, -1, share.ProteinG)
	assert.Equal(t, 3, share.FatG)
	assert.Equal(t, 250, share.SodiumMg)
	assert.Equal(t, 750, share.HydrationMl)
	assert.Equal(t, 75*4-1*4+3*9, share.Calories, "derived from rounded macros, not from remaining calories")
}

func TestOptionsValidate(t *testing.T) {
	assert.Empty(t, DefaultOptions().Validate())

	bad := Options{
		Slots:        []MealSlot{{Time: "25:00", Name: "Late"}, {Time: "12:00"}},
		BufferMin:    0,
		FallbackTime: "8",
	}
	assert.Len(t, bad.Validate(), 4)
}

func TestConflicts(t *testing.T) {
	occupied := clocks("12:00")
	assert.True(t, Conflicts(domain.MustParseClock("12:00"), occupied, 60))
	assert.True(t, Conflicts(domain.MustParseClock("11:01"), occupied, 60))
	assert.False(t, Conflicts(domain.MustParseClock("13:00"), occupied, 60))
	assert.False(t, Conflicts(domain.MustParseClock("12:00"), nil, 60))
	// No wrap: 23:30 and 00:10 are 1400 minutes apart within the day.
	assert.False(t, Conflicts(domain.MustParseClock("00:10"), clocks("23:30"), 60))
}
