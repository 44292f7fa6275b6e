package domain

// CalorieBreakdown explains how the energy target was reached.
type CalorieBreakdown struct {
	Total              int     `json:"total" yaml:"total"`
	BMR                int     `json:"bmr" yaml:"bmr"`
	TDEE               int     `json:"tdee" yaml:"tdee"`
	ActivityFactor     float64 `json:"activity_factor" yaml:"activity_factor"`
	ActivityLevel      string  `json:"activity_level" yaml:"activity_level"`
	IsFatLoss          bool    `json:"is_fat_loss" yaml:"is_fat_loss"`
	IsSurplus          bool    `json:"is_surplus" yaml:"is_surplus"`
	DeficitPercent     int     `json:"deficit_percent" yaml:"deficit_percent"`
	CaloriesFromMacros int     `json:"calories_from_macros" yaml:"calories_from_macros"`
}

// Rationale holds a human-readable explanation per target. Display only.
type Rationale struct {
	Protein   string `json:"protein" yaml:"protein"`
	Carbs     string `json:"carbs" yaml:"carbs"`
	Fat       string `json:"fat" yaml:"fat"`
	Hydration string `json:"hydration" yaml:"hydration"`
	Sodium    string `json:"sodium" yaml:"sodium"`
	Calories  string `json:"calories" yaml:"calories"`
}

// DailyTargets is the reconciled set of daily nutrition targets.
type DailyTargets struct {
	WeightKg     float64          `json:"weight_kg" yaml:"weight_kg"`
	EnergyKcal   int              `json:"energy_kcal" yaml:"energy_kcal"`
	ProteinG     int              `json:"protein_g" yaml:"protein_g"`
	CarbG        int              `json:"carb_g" yaml:"carb_g"`
	FatG         int              `json:"fat_g" yaml:"fat_g"`
	HydrationL   float64          `json:"hydration_l" yaml:"hydration_l"`
	SodiumMg     int              `json:"sodium_mg" yaml:"sodium_mg"`
	TrainingLoad float64          `json:"training_load" yaml:"training_load"`
	Context      MacroContext     `json:"context" yaml:"context"`
	Breakdown    CalorieBreakdown `json:"calorie_breakdown" yaml:"calorie_breakdown"`
	Rationale    Rationale        `json:"rationale" yaml:"rationale"`
	Warnings     []string         `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// MacroCalories returns the energy implied by the gram targets.
func (t *DailyTargets) MacroCalories() int {
	return MacroCalories(t.CarbG, t.ProteinG, t.FatG)
}

// HydrationMl returns the hydration target in millilitres.
func (t *DailyTargets) HydrationMl() int {
	return RoundHalfUp(t.HydrationL * 1000)
}

// AsTotals projects the targets onto the Totals shape for budget arithmetic.
func (t *DailyTargets) AsTotals() Totals {
	return Totals{
		CarbsG:      t.CarbG,
		ProteinG:    t.ProteinG,
		FatG:        t.FatG,
		SodiumMg:    t.SodiumMg,
		HydrationMl: t.HydrationMl(),
		Calories:    t.EnergyKcal,
	}
}
