package domain

// Energy densities in kcal per gram.
const (
	KcalPerGramCarb    = 4
	KcalPerGramProtein = 4
	KcalPerGramFat     = 9
)

// MacroCalories returns the energy of the given macro grams.
func MacroCalories(carbsG, proteinG, fatG int) int {
	return carbsG*KcalPerGramCarb + proteinG*KcalPerGramProtein + fatG*KcalPerGramFat
}

// LockedMeal is a meal the athlete has fixed in advance. Its macros count as
// already-consumed budget and are never redistributed.
type LockedMeal struct {
	Time        string `json:"time" yaml:"time"`
	Name        string `json:"name" yaml:"name"`
	CarbsG      int    `json:"carbs_g" yaml:"carbs_g"`
	ProteinG    int    `json:"protein_g" yaml:"protein_g"`
	FatG        int    `json:"fat_g" yaml:"fat_g"`
	SodiumMg    int    `json:"sodium_mg" yaml:"sodium_mg"`
	HydrationMl int    `json:"hydration_ml" yaml:"hydration_ml"`
}

// Calories derives the meal energy from its macros.
func (m *LockedMeal) Calories() int {
	return MacroCalories(m.CarbsG, m.ProteinG, m.FatG)
}

// ToEntry converts the locked meal into a timeline entry. A parseable time is
// rewritten as zero-padded HH:MM so the entry sorts with the rest of the day.
func (m *LockedMeal) ToEntry() TimelineEntry {
	name := m.Name
	at := m.Time
	if c, err := ParseClock(m.Time); err == nil {
		at = c.String()
	}
	return TimelineEntry{
		Time:        at,
		Type:        EntryMeal,
		Role:        RoleLocked,
		Name:        &name,
		CarbsG:      m.CarbsG,
		ProteinG:    m.ProteinG,
		FatG:        m.FatG,
		SodiumMg:    m.SodiumMg,
		HydrationMl: m.HydrationMl,
		Calories:    m.Calories(),
		Locked:      true,
	}
}
