package scheduler

import (
	"fmt"

	"github.com/alexanderramin/fuelplan/internal/domain"
)

const (
	DefaultBufferMin    = 60
	DefaultFallbackTime = "08:00"
)

// MealSlot is a candidate clock time for a regular meal.
type MealSlot struct {
	Time string `json:"time" yaml:"time"`
	Name string `json:"name" yaml:"name"`
}

// DefaultSlots is the standard day of meal times, tried in order.
func DefaultSlots() []MealSlot {
	return []MealSlot{
		{Time: "07:00", Name: "Breakfast"},
		{Time: "10:00", Name: "Mid-Morning Snack"},
		{Time: "12:30", Name: "Lunch"},
		{Time: "15:00", Name: "Afternoon Snack"},
		{Time: "18:00", Name: "Pre-Dinner Snack"},
		{Time: "19:30", Name: "Dinner"},
		{Time: "21:00", Name: "Evening Snack"},
	}
}

// Options controls slot placement.
type Options struct {
	Slots        []MealSlot
	BufferMin    int
	FallbackTime string
}

func DefaultOptions() Options {
	return Options{
		Slots:        DefaultSlots(),
		BufferMin:    DefaultBufferMin,
		FallbackTime: DefaultFallbackTime,
	}
}

// Validate returns every problem with the slot table and buffer.
func (o Options) Validate() []error {
	var errs []error
	for i, s := range o.Slots {
		if _, err := domain.ParseClock(s.Time); err != nil {
			errs = append(errs, fmt.Errorf("meal_slots[%d].time: %v", i, err))
		}
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("meal_slots[%d].name is required", i))
		}
	}
	if o.BufferMin <= 0 {
		errs = append(errs, fmt.Errorf("slot_buffer_min must be positive"))
	}
	if _, err := domain.ParseClock(o.FallbackTime); err != nil {
		errs = append(errs, fmt.Errorf("fallback_time: %v", err))
	}
	return errs
}

// Conflicts reports whether at lies within buffer minutes of any occupied time.
// Distances are measured within the day and do not wrap at midnight.
func Conflicts(at domain.ClockTime, occupied []domain.ClockTime, buffer int) bool {
	for _, o := range occupied {
		d := at.Minutes() - o.Minutes()
		if d < 0 {
			d = -d
		}
		if d < buffer {
			return true
		}
	}
	return false
}
