package app

import (
	"context"

	"github.com/alexanderramin/fuelplan/internal/domain"
)

type TargetsRequest struct {
	Athlete  *domain.AthleteProfile `json:"athlete" yaml:"athlete"`
	Workouts []domain.Workout       `json:"workouts" yaml:"workouts"`
}

// SkeletonRequest carries everything needed to lay out the day. When Targets
// is nil they are computed from the athlete and workouts first.
type SkeletonRequest struct {
	Athlete     *domain.AthleteProfile `json:"athlete" yaml:"athlete"`
	Workouts    []domain.Workout       `json:"workouts" yaml:"workouts"`
	LockedMeals []domain.LockedMeal    `json:"locked_meals" yaml:"locked_meals"`
	Targets     *domain.DailyTargets   `json:"targets,omitempty" yaml:"targets,omitempty"`
}

type PlanResponse struct {
	Targets  *domain.DailyTargets `json:"targets" yaml:"targets"`
	Skeleton *domain.Skeleton     `json:"skeleton" yaml:"skeleton"`
}

// VerifyRequest pairs a skeleton with the raw text returned by the naming
// step. Named may be bare JSON or JSON embedded in prose.
type VerifyRequest struct {
	Skeleton *domain.Skeleton `json:"skeleton" yaml:"skeleton"`
	Named    string           `json:"named" yaml:"named"`
}

// FieldDeviation compares one aggregate field of the named timeline with the
// skeleton it came from.
type FieldDeviation struct {
	Field        string  `json:"field" yaml:"field"`
	Expected     int     `json:"expected" yaml:"expected"`
	Actual       int     `json:"actual" yaml:"actual"`
	DeviationPct float64 `json:"deviation_pct" yaml:"deviation_pct"`
	Within       bool    `json:"within_tolerance" yaml:"within_tolerance"`
}

type NamingReport struct {
	OK         bool                   `json:"ok" yaml:"ok"`
	Tolerance  float64                `json:"tolerance" yaml:"tolerance"`
	Entries    int                    `json:"entries" yaml:"entries"`
	NamedCount int                    `json:"named_count" yaml:"named_count"`
	Fields     []FieldDeviation       `json:"fields" yaml:"fields"`
	Timeline   []domain.TimelineEntry `json:"timeline" yaml:"timeline"`
	Totals     domain.Totals          `json:"totals" yaml:"totals"`
	Unnamed    []int                  `json:"unnamed,omitempty" yaml:"unnamed,omitempty"`
	Normalized bool                   `json:"normalized_hydration,omitempty" yaml:"normalized_hydration,omitempty"`
}

type TargetsUseCase interface {
	ComputeTargets(ctx context.Context, req TargetsRequest) (*domain.DailyTargets, error)
}

type SkeletonUseCase interface {
	GenerateSkeleton(ctx context.Context, req SkeletonRequest) (*domain.Skeleton, error)
}

type PlanUseCase interface {
	Plan(ctx context.Context, req SkeletonRequest) (*PlanResponse, error)
}

type VerifyNamingUseCase interface {
	VerifyNaming(ctx context.Context, req VerifyRequest) (*NamingReport, error)
}
