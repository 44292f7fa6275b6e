package domain

// TimelineEntry is one scheduled fueling event. Name stays nil until the
// downstream naming step fills it, except for locked and slot-named meals.
type TimelineEntry struct {
	Time            string    `json:"time" yaml:"time"`
	Type            EntryType `json:"type" yaml:"type"`
	Role            EntryRole `json:"role" yaml:"role"`
	Name            *string   `json:"name" yaml:"name"`
	CarbsG          int       `json:"carbs_g" yaml:"carbs_g"`
	ProteinG        int       `json:"protein_g" yaml:"protein_g"`
	FatG            int       `json:"fat_g" yaml:"fat_g"`
	SodiumMg        int       `json:"sodium_mg" yaml:"sodium_mg"`
	HydrationMl     int       `json:"hydration_ml" yaml:"hydration_ml"`
	Calories        int       `json:"calories" yaml:"calories"`
	Locked          bool      `json:"locked,omitempty" yaml:"locked,omitempty"`
	GenericFallback bool      `json:"generic_fallback,omitempty" yaml:"generic_fallback,omitempty"`

	// Workout metadata, set on workout entries only.
	WorkoutType string    `json:"workout_type,omitempty" yaml:"workout_type,omitempty"`
	DurationMin int       `json:"duration_min,omitempty" yaml:"duration_min,omitempty"`
	Intensity   Intensity `json:"intensity,omitempty" yaml:"intensity,omitempty"`
}

// Totals aggregates the numeric fields of a set of entries.
type Totals struct {
	CarbsG      int `json:"carbs_g" yaml:"carbs_g"`
	ProteinG    int `json:"protein_g" yaml:"protein_g"`
	FatG        int `json:"fat_g" yaml:"fat_g"`
	SodiumMg    int `json:"sodium_mg" yaml:"sodium_mg"`
	HydrationMl int `json:"hydration_ml" yaml:"hydration_ml"`
	Calories    int `json:"calories" yaml:"calories"`
}

// AddEntry returns t plus the numeric fields of e.
func (t Totals) AddEntry(e TimelineEntry) Totals {
	return Totals{
		CarbsG:      t.CarbsG + e.CarbsG,
		ProteinG:    t.ProteinG + e.ProteinG,
		FatG:        t.FatG + e.FatG,
		SodiumMg:    t.SodiumMg + e.SodiumMg,
		HydrationMl: t.HydrationMl + e.HydrationMl,
		Calories:    t.Calories + e.Calories,
	}
}

// Sub returns the field-wise difference t - o.
func (t Totals) Sub(o Totals) Totals {
	return Totals{
		CarbsG:      t.CarbsG - o.CarbsG,
		ProteinG:    t.ProteinG - o.ProteinG,
		FatG:        t.FatG - o.FatG,
		SodiumMg:    t.SodiumMg - o.SodiumMg,
		HydrationMl: t.HydrationMl - o.HydrationMl,
		Calories:    t.Calories - o.Calories,
	}
}

// Fields returns the totals as ordered name/value pairs.
func (t Totals) Fields() []TotalsField {
	return []TotalsField{
		{"carbs_g", t.CarbsG},
		{"protein_g", t.ProteinG},
		{"fat_g", t.FatG},
		{"sodium_mg", t.SodiumMg},
		{"hydration_ml", t.HydrationMl},
		{"calories", t.Calories},
	}
}

type TotalsField struct {
	Name  string
	Value int
}

// SumEntries totals every numeric field across entries.
func SumEntries(entries []TimelineEntry) Totals {
	var t Totals
	for _, e := range entries {
		t = t.AddEntry(e)
	}
	return t
}

// SkeletonCounts reports how many entries came from each source.
type SkeletonCounts struct {
	Workout int `json:"workout" yaml:"workout"`
	Locked  int `json:"locked" yaml:"locked"`
	Regular int `json:"regular" yaml:"regular"`
	Total   int `json:"total" yaml:"total"`
}

// Skeleton is the fully numeric, pre-naming day schedule.
type Skeleton struct {
	Timeline                        []TimelineEntry `json:"timeline" yaml:"timeline"`
	Totals                          Totals          `json:"totals" yaml:"totals"`
	Targets                         DailyTargets    `json:"targets" yaml:"targets"`
	RemainingAfterLockedAndWorkouts Totals          `json:"remaining_after_locked_and_workouts" yaml:"remaining_after_locked_and_workouts"`
	TargetDelta                     Totals          `json:"target_delta" yaml:"target_delta"`
	Counts                          SkeletonCounts  `json:"counts" yaml:"counts"`
	GenericFallback                 bool            `json:"generic_fallback" yaml:"generic_fallback"`
	Warnings                        []string        `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}
