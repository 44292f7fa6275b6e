package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/fuelplan/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format selects the decoder for a plan file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// PlanFile is the top-level structure of a plan file.
type PlanFile struct {
	Athlete     AthleteImport        `json:"athlete" yaml:"athlete"`
	Workouts    []WorkoutImport      `json:"workouts" yaml:"workouts"`
	LockedMeals []LockedMealImport   `json:"locked_meals,omitempty" yaml:"locked_meals,omitempty"`
	Targets     *domain.DailyTargets `json:"targets,omitempty" yaml:"targets,omitempty"`
}

// AthleteImport mirrors domain.AthleteProfile with the legacy sweat_rate key.
type AthleteImport struct {
	WeightKg            float64  `json:"weight_kg" yaml:"weight_kg"`
	HeightCm            float64  `json:"height_cm" yaml:"height_cm"`
	Gender              string   `json:"gender" yaml:"gender"`
	Age                 *int     `json:"age,omitempty" yaml:"age,omitempty"`
	Goal                string   `json:"goal" yaml:"goal"`
	TrainingPhase       string   `json:"training_phase" yaml:"training_phase"`
	Populations         []string `json:"populations,omitempty" yaml:"populations,omitempty"`
	MealsPerDay         *int     `json:"meals_per_day,omitempty" yaml:"meals_per_day,omitempty"`
	PreWorkoutTimingMin *int     `json:"pre_workout_timing_min,omitempty" yaml:"pre_workout_timing_min,omitempty"`
	SweatRateMlPerHr    *float64 `json:"sweat_rate_ml_per_hr,omitempty" yaml:"sweat_rate_ml_per_hr,omitempty"`
	SweatRate           *float64 `json:"sweat_rate,omitempty" yaml:"sweat_rate,omitempty"`
}

// WorkoutImport accepts both start_time and startTime, and both
// humidity_pct and humidity_percent.
type WorkoutImport struct {
	Type            string   `json:"type" yaml:"type"`
	DurationMin     int      `json:"duration_min" yaml:"duration_min"`
	Intensity       string   `json:"intensity" yaml:"intensity"`
	StartTime       string   `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	StartTimeCamel  string   `json:"startTime,omitempty" yaml:"startTime,omitempty"`
	TempC           *float64 `json:"temp_c,omitempty" yaml:"temp_c,omitempty"`
	HumidityPct     *float64 `json:"humidity_pct,omitempty" yaml:"humidity_pct,omitempty"`
	HumidityPercent *float64 `json:"humidity_percent,omitempty" yaml:"humidity_percent,omitempty"`
	HeatIndexFlag   bool     `json:"heat_index_flag,omitempty" yaml:"heat_index_flag,omitempty"`
	Race            bool     `json:"race,omitempty" yaml:"race,omitempty"`
}

type LockedMealImport struct {
	Time        string `json:"time" yaml:"time"`
	Name        string `json:"name" yaml:"name"`
	CarbsG      int    `json:"carbs_g" yaml:"carbs_g"`
	ProteinG    int    `json:"protein_g" yaml:"protein_g"`
	FatG        int    `json:"fat_g" yaml:"fat_g"`
	SodiumMg    int    `json:"sodium_mg" yaml:"sodium_mg"`
	HydrationMl int    `json:"hydration_ml" yaml:"hydration_ml"`
}

// FormatForPath picks the decoder from the file extension. Anything other
// than .yaml or .yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadPlanFile reads and parses a plan file.
func LoadPlanFile(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePlan(data, FormatForPath(path))
}

// ParsePlan decodes a plan from data in the given format.
func ParsePlan(data []byte, format Format) (*PlanFile, error) {
	var plan PlanFile
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &plan); err != nil {
			return nil, fmt.Errorf("parsing plan file: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &plan); err != nil {
			return nil, fmt.Errorf("parsing plan file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported plan format %q", format)
	}
	return &plan, nil
}
