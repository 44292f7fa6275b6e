package service

import (
	"context"
	"time"

	"github.com/alexanderramin/fuelplan/internal/app"
	"github.com/alexanderramin/fuelplan/internal/domain"
	"github.com/alexanderramin/fuelplan/internal/naming"
	"github.com/alexanderramin/fuelplan/internal/nutrition"
	"github.com/alexanderramin/fuelplan/internal/timeline"
)

type plannerService struct {
	calc            *nutrition.Calculator
	assembler       *timeline.Assembler
	namingTolerance float64
	observer        UseCaseObserver
}

func NewPlannerService(
	calc *nutrition.Calculator,
	assembler *timeline.Assembler,
	namingTolerance float64,
	observers ...UseCaseObserver,
) PlannerService {
	return &plannerService{
		calc:            calc,
		assembler:       assembler,
		namingTolerance: namingTolerance,
		observer:        useCaseObserverOrNoop(observers),
	}
}

func (s *plannerService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		RequestID: RequestIDFrom(ctx),
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *plannerService) ComputeTargets(ctx context.Context, req app.TargetsRequest) (targets *domain.DailyTargets, err error) {
	startedAt := time.Now()
	fields := map[string]any{"workouts": len(req.Workouts)}
	defer func() { s.observe(ctx, "compute-targets", startedAt, fields, err) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	targets, err = s.calc.ComputeTargets(req.Athlete, req.Workouts)
	if err != nil {
		return nil, err
	}
	targetFields(fields, targets)
	return targets, nil
}

func (s *plannerService) GenerateSkeleton(ctx context.Context, req app.SkeletonRequest) (skeleton *domain.Skeleton, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"workouts":     len(req.Workouts),
		"locked_meals": len(req.LockedMeals),
	}
	defer func() { s.observe(ctx, "generate-skeleton", startedAt, fields, err) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	var targets *domain.DailyTargets
	targets, err = s.targetsFor(req)
	if err != nil {
		return nil, err
	}
	skeleton, err = s.assembler.GenerateSkeleton(req.Athlete, req.Workouts, req.LockedMeals, targets)
	if err != nil {
		return nil, err
	}
	skeletonFields(fields, skeleton)
	return skeleton, nil
}

func (s *plannerService) Plan(ctx context.Context, req app.SkeletonRequest) (resp *app.PlanResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"workouts":     len(req.Workouts),
		"locked_meals": len(req.LockedMeals),
	}
	defer func() { s.observe(ctx, "plan", startedAt, fields, err) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	var targets *domain.DailyTargets
	targets, err = s.targetsFor(req)
	if err != nil {
		return nil, err
	}
	targetFields(fields, targets)

	var skeleton *domain.Skeleton
	skeleton, err = s.assembler.GenerateSkeleton(req.Athlete, req.Workouts, req.LockedMeals, targets)
	if err != nil {
		return nil, err
	}
	skeletonFields(fields, skeleton)
	return &app.PlanResponse{Targets: targets, Skeleton: skeleton}, nil
}

func (s *plannerService) VerifyNaming(ctx context.Context, req app.VerifyRequest) (report *app.NamingReport, err error) {
	startedAt := time.Now()
	fields := map[string]any{"named_bytes": len(req.Named)}
	defer func() { s.observe(ctx, "verify-naming", startedAt, fields, err) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	report, err = naming.Verify(req.Skeleton, req.Named, s.namingTolerance)
	if report != nil {
		fields["entries"] = report.Entries
		fields["named"] = report.NamedCount
		fields["ok"] = report.OK
	}
	return report, err
}

// targetsFor returns a copy of caller-supplied targets or computes them.
func (s *plannerService) targetsFor(req app.SkeletonRequest) (*domain.DailyTargets, error) {
	if req.Targets != nil {
		t := *req.Targets
		return &t, nil
	}
	return s.calc.ComputeTargets(req.Athlete, req.Workouts)
}

func targetFields(fields map[string]any, t *domain.DailyTargets) {
	fields["load"] = t.TrainingLoad
	fields["context"] = string(t.Context)
	fields["energy_kcal"] = t.EnergyKcal
	fields["warnings"] = len(t.Warnings)
}

func skeletonFields(fields map[string]any, sk *domain.Skeleton) {
	fields["entries"] = sk.Counts.Total
	fields["regular_meals"] = sk.Counts.Regular
	fields["generic_fallback"] = sk.GenericFallback
	fields["skeleton_warnings"] = len(sk.Warnings)
}
