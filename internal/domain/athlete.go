package domain

const (
	DefaultAge                 = 30
	DefaultMealsPerDay         = 4
	DefaultPreWorkoutTimingMin = 90
)

// AthleteProfile is the per-request description of the athlete. It is never
// mutated once target calculation begins. Populations are passed through to
// the naming step; no target depends on them.
type AthleteProfile struct {
	WeightKg            float64       `json:"weight_kg" yaml:"weight_kg"`
	HeightCm            float64       `json:"height_cm" yaml:"height_cm"`
	Gender              Gender        `json:"gender" yaml:"gender"`
	Age                 *int          `json:"age,omitempty" yaml:"age,omitempty"`
	Goal                Goal          `json:"goal" yaml:"goal"`
	TrainingPhase       TrainingPhase `json:"training_phase" yaml:"training_phase"`
	Populations         []string      `json:"populations,omitempty" yaml:"populations,omitempty"`
	MealsPerDay         *int          `json:"meals_per_day,omitempty" yaml:"meals_per_day,omitempty"`
	PreWorkoutTimingMin *int          `json:"pre_workout_timing_min,omitempty" yaml:"pre_workout_timing_min,omitempty"`
	SweatRateMlPerHr    *float64      `json:"sweat_rate_ml_per_hr,omitempty" yaml:"sweat_rate_ml_per_hr,omitempty"`
}

func (p *AthleteProfile) EffectiveAge() int {
	return IntFromPtrWithDefault(DefaultAge, p.Age)
}

func (p *AthleteProfile) EffectiveMealsPerDay() int {
	return IntFromPtrWithDefault(DefaultMealsPerDay, p.MealsPerDay)
}

// EffectivePreWorkoutTiming treats an explicit 0 as unset.
func (p *AthleteProfile) EffectivePreWorkoutTiming() int {
	if p.PreWorkoutTimingMin != nil && *p.PreWorkoutTimingMin == 0 {
		return DefaultPreWorkoutTimingMin
	}
	return IntFromPtrWithDefault(DefaultPreWorkoutTimingMin, p.PreWorkoutTimingMin)
}
