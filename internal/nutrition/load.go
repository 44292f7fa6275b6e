package nutrition

import "github.com/alexanderramin/fuelplan/internal/domain"

// TrainingLoad sums hours × intensity factor over the day's workouts.
func TrainingLoad(workouts []domain.Workout) float64 {
	var load float64
	for i := range workouts {
		load += workouts[i].Hours() * workouts[i].Intensity.Factor()
	}
	return load
}

// LoadBand groups training load for carbohydrate and fat-loss lookups.
type LoadBand int

const (
	BandRest LoadBand = iota
	BandLight
	BandModerateHigh
	BandVeryHigh
)

// BandForLoad maps a training load onto its band.
func BandForLoad(load float64) LoadBand {
	switch {
	case load < 0.5:
		return BandRest
	case load < 1.5:
		return BandLight
	case load < 3.0:
		return BandModerateHigh
	default:
		return BandVeryHigh
	}
}

// Label is the display name used in rationale text.
func (b LoadBand) Label() string {
	switch b {
	case BandRest:
		return "rest/recovery"
	case BandLight:
		return "moderate"
	case BandModerateHigh:
		return "high"
	default:
		return "very high"
	}
}

// DetermineContext classifies the day. A race workout wins outright; otherwise
// training load dominates the fat-loss goal.
func DetermineContext(workouts []domain.Workout, load float64, goal domain.Goal) domain.MacroContext {
	for i := range workouts {
		if workouts[i].Race {
			return domain.ContextRace
		}
	}
	switch {
	case load > 1.5:
		return domain.ContextWorkout
	case goal == domain.GoalFatLoss:
		return domain.ContextFatLoss
	case load < 0.5:
		return domain.ContextRecovery
	default:
		return domain.ContextNormal
	}
}
