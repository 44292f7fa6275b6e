package domain

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Goal string

const (
	GoalPerformance            Goal = "performance"
	GoalFatLoss                Goal = "fat_loss"
	GoalFatLossWithPerformance Goal = "fat_loss_with_performance"
	GoalHypertrophy            Goal = "hypertrophy"
	GoalMuscleGain             Goal = "muscle_gain"
)

// IsFatLoss reports whether the goal calls for an energy deficit.
func (g Goal) IsFatLoss() bool {
	return g == GoalFatLoss || g == GoalFatLossWithPerformance
}

// IsSurplus reports whether the goal calls for an energy surplus.
func (g Goal) IsSurplus() bool {
	return g == GoalMuscleGain || g == GoalHypertrophy
}

type TrainingPhase string

const (
	PhaseBase     TrainingPhase = "base"
	PhaseBuild    TrainingPhase = "build"
	PhaseRace     TrainingPhase = "race"
	PhaseRecovery TrainingPhase = "recovery"
)

type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
	IntensityVeryHigh Intensity = "very_high"
)

// Factor maps an intensity tag to its training-load multiplier.
// Unknown tags count as 1.0.
func (i Intensity) Factor() float64 {
	switch i {
	case IntensityLow:
		return 0.8
	case IntensityModerate:
		return 1.2
	case IntensityHigh:
		return 1.5
	case IntensityVeryHigh:
		return 1.8
	default:
		return 1.0
	}
}

// MacroContext is the day classification that selects fat and hydration branches.
type MacroContext string

const (
	ContextRace     MacroContext = "race"
	ContextWorkout  MacroContext = "workout"
	ContextFatLoss  MacroContext = "fat_loss"
	ContextRecovery MacroContext = "recovery"
	ContextNormal   MacroContext = "normal"
)

type EntryType string

const (
	EntryMeal    EntryType = "meal"
	EntryWorkout EntryType = "workout"
)

type EntryRole string

const (
	RolePreWorkout  EntryRole = "pre_workout"
	RoleWorkout     EntryRole = "workout"
	RolePostWorkout EntryRole = "post_workout"
	RoleLocked      EntryRole = "locked"
	RoleRegular     EntryRole = "regular"
)

// ValidGenders, ValidGoals and ValidPhases are the canonical accepted values.
var (
	ValidGenders = map[Gender]bool{GenderMale: true, GenderFemale: true}
	ValidGoals   = map[Goal]bool{
		GoalPerformance: true, GoalFatLoss: true, GoalFatLossWithPerformance: true,
		GoalHypertrophy: true, GoalMuscleGain: true,
	}
	ValidPhases = map[TrainingPhase]bool{
		PhaseBase: true, PhaseBuild: true, PhaseRace: true, PhaseRecovery: true,
	}
)
