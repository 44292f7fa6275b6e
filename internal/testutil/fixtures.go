package testutil

import (
	"github.com/alexanderramin/fuelplan/internal/domain"
)

// Athlete options
type AthleteOption func(*domain.AthleteProfile)

func WithWeight(kg float64) AthleteOption {
	return func(a *domain.AthleteProfile) {
		a.WeightKg = kg
	}
}

func WithGender(g domain.Gender) AthleteOption {
	return func(a *domain.AthleteProfile) {
		a.Gender = g
	}
}

func WithGoal(g domain.Goal) AthleteOption {
	return func(a *domain.AthleteProfile) {
		a.Goal = g
	}
}

func WithPhase(p domain.TrainingPhase) AthleteOption {
	return func(a *domain.AthleteProfile) {
		a.TrainingPhase = p
	}
}

func WithAge(age int) AthleteOption {
	return func(a *domain.AthleteProfile) {
		a.Age = &age
	}
}

func WithMealsPerDay(n int) AthleteOption {
	return func(a *domain.AthleteProfile) {
		a.MealsPerDay = &n
	}
}

func WithPreWorkoutTiming(min int) AthleteOption {
	return func(a *domain.AthleteProfile) {
		a.PreWorkoutTimingMin = &min
	}
}

func WithSweatRate(mlPerHr float64) AthleteOption {
	return func(a *domain.AthleteProfile) {
		a.SweatRateMlPerHr = &mlPerHr
	}
}

// NewTestAthlete returns a 70 kg, 175 cm male in base-phase performance
// training, the reference athlete used throughout the calculator tests.
func NewTestAthlete(opts ...AthleteOption) *domain.AthleteProfile {
	a := &domain.AthleteProfile{
		WeightKg:      70,
		HeightCm:      175,
		Gender:        domain.GenderMale,
		Goal:          domain.GoalPerformance,
		TrainingPhase: domain.PhaseBase,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Workout options
type WorkoutOption func(*domain.Workout)

func WithIntensity(i domain.Intensity) WorkoutOption {
	return func(w *domain.Workout) {
		w.Intensity = i
	}
}

func WithWorkoutType(t string) WorkoutOption {
	return func(w *domain.Workout) {
		w.Type = t
	}
}

func WithConditions(tempC, humidityPct float64) WorkoutOption {
	return func(w *domain.Workout) {
		w.TempC = &tempC
		w.HumidityPct = &humidityPct
	}
}

func WithHeat() WorkoutOption {
	return func(w *domain.Workout) {
		w.HeatIndexFlag = true
	}
}

func AsRace() WorkoutOption {
	return func(w *domain.Workout) {
		w.Race = true
	}
}

func NewTestWorkout(start string, durationMin int, opts ...WorkoutOption) domain.Workout {
	w := domain.Workout{
		Type:        "run",
		DurationMin: durationMin,
		Intensity:   domain.IntensityModerate,
		StartTime:   start,
	}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// Locked meal options
type LockedMealOption func(*domain.LockedMeal)

func WithMacros(carbsG, proteinG, fatG int) LockedMealOption {
	return func(m *domain.LockedMeal) {
		m.CarbsG = carbsG
		m.ProteinG = proteinG
		m.FatG = fatG
	}
}

func WithFluids(sodiumMg, hydrationMl int) LockedMealOption {
	return func(m *domain.LockedMeal) {
		m.SodiumMg = sodiumMg
		m.HydrationMl = hydrationMl
	}
}

func NewTestLockedMeal(at, name string, opts ...LockedMealOption) domain.LockedMeal {
	m := domain.LockedMeal{
		Time:        at,
		Name:        name,
		CarbsG:      60,
		ProteinG:    30,
		FatG:        15,
		SodiumMg:    600,
		HydrationMl: 400,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// NewTestTargets returns fixed daily targets for skeleton tests that should
// not depend on the calculator.
func NewTestTargets(energyKcal, proteinG, carbG, fatG int) *domain.DailyTargets {
	return &domain.DailyTargets{
		WeightKg:   70,
		EnergyKcal: energyKcal,
		ProteinG:   proteinG,
		CarbG:      carbG,
		FatG:       fatG,
		HydrationL: 3.0,
		SodiumMg:   3500,
		Context:    domain.ContextNormal,
	}
}
