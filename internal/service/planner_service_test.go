package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/alexanderramin/fuelplan/internal/app"
	"github.com/alexanderramin/fuelplan/internal/domain"
	"github.com/alexanderramin/fuelplan/internal/naming"
	"github.com/alexanderramin/fuelplan/internal/nutrition"
	"github.com/alexanderramin/fuelplan/internal/scheduler"
	"github.com/alexanderramin/fuelplan/internal/testutil"
	"github.com/alexanderramin/fuelplan/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.events)
	return r.events[len(r.events)-1]
}

func newTestService(observers ...UseCaseObserver) PlannerService {
	return NewPlannerService(
		nutrition.NewCalculator(nutrition.DefaultOptions()),
		timeline.NewAssembler(scheduler.DefaultOptions()),
		naming.DefaultTolerance,
		observers...,
	)
}

func referenceRequest() app.SkeletonRequest {
	return app.SkeletonRequest{
		Athlete:  testutil.NewTestAthlete(),
		Workouts: []domain.Workout{testutil.NewTestWorkout("09:00", 60, testutil.WithConditions(20, 60))},
		LockedMeals: []domain.LockedMeal{
			testutil.NewTestLockedMeal("12:30", "Team Lunch"),
		},
	}
}

func TestComputeTargets_EmitsEvent(t *testing.T) {
	obs := &recordingObserver{}
	svc := newTestService(obs)
	ctx := WithRequestID(context.Background(), "req-1")

	req := referenceRequest()
	targets, err := svc.ComputeTargets(ctx, app.TargetsRequest{Athlete: req.Athlete, Workouts: req.Workouts})
	require.NoError(t, err)
	assert.InDelta(t, 1.2, targets.TrainingLoad, 1e-9)
	assert.Equal(t, 126, targets.ProteinG)

	ev := obs.last(t)
	assert.Equal(t, "compute-targets", ev.Name)
	assert.Equal(t, "req-1", ev.RequestID)
	assert.True(t, ev.Success)
	assert.Equal(t, targets.EnergyKcal, ev.Fields["energy_kcal"])
	assert.Equal(t, "normal", ev.Fields["context"])
}

func TestComputeTargets_InvalidInputReported(t *testing.T) {
	obs := &recordingObserver{}
	svc := newTestService(obs)

	_, err := svc.ComputeTargets(context.Background(), app.TargetsRequest{
		Athlete: testutil.NewTestAthlete(testutil.WithWeight(0)),
	})
	assert.Equal(t, app.ErrInvalidInput, app.CodeOf(err))

	ev := obs.last(t)
	assert.False(t, ev.Success)
	assert.Error(t, ev.Err)
}

func TestGenerateSkeleton_ComputesTargetsWhenAbsent(t *testing.T) {
	svc := newTestService()
	req := referenceRequest()

	sk, err := svc.GenerateSkeleton(context.Background(), req)
	require.NoError(t, err)

	want, err := svc.ComputeTargets(context.Background(), app.TargetsRequest{Athlete: req.Athlete, Workouts: req.Workouts})
	require.NoError(t, err)
	assert.Equal(t, *want, sk.Targets)
	assert.Equal(t, 3, sk.Counts.Workout)
	assert.Equal(t, 1, sk.Counts.Locked)
	assert.Equal(t, 3, sk.Counts.Regular)
}

func TestGenerateSkeleton_UsesSuppliedTargets(t *testing.T) {
	obs := &recordingObserver{}
	svc := newTestService(obs)
	req := referenceRequest()
	req.Targets = testutil.NewTestTargets(2600, 140, 330, 75)

	sk, err := svc.GenerateSkeleton(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2600, sk.Targets.EnergyKcal)
	assert.Equal(t, sk.Totals.Sub(req.Targets.AsTotals()), sk.TargetDelta)

	ev := obs.last(t)
	assert.Equal(t, "generate-skeleton", ev.Name)
	assert.Equal(t, 3, ev.Fields["regular_meals"])
	assert.Equal(t, false, ev.Fields["generic_fallback"])
}

func TestPlan_ReturnsTargetsAndSkeleton(t *testing.T) {
	svc := newTestService()
	resp, err := svc.Plan(context.Background(), referenceRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Targets)
	require.NotNil(t, resp.Skeleton)
	assert.Equal(t, *resp.Targets, resp.Skeleton.Targets)
	assert.Equal(t, domain.SumEntries(resp.Skeleton.Timeline), resp.Skeleton.Totals)
}

func TestPlan_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService().Plan(ctx, referenceRequest())
	assert.True(t, errors.Is(err, context.Canceled))
}

func namedTimeline(t *testing.T, sk *domain.Skeleton, carbDrift int) string {
	t.Helper()
	entries := make([]domain.TimelineEntry, len(sk.Timeline))
	copy(entries, sk.Timeline)
	for i := range entries {
		name := fmt.Sprintf("Meal idea %d", i+1)
		entries[i].Name = &name
	}
	entries[0].CarbsG += carbDrift
	data, err := json.Marshal(map[string]any{"timeline": entries})
	require.NoError(t, err)
	return "```json\n" + string(data) + "\n```"
}

func TestVerifyNaming_RoundTrip(t *testing.T) {
	obs := &recordingObserver{}
	svc := newTestService(obs)
	sk, err := svc.GenerateSkeleton(context.Background(), referenceRequest())
	require.NoError(t, err)

	report, err := svc.VerifyNaming(context.Background(), app.VerifyRequest{Skeleton: sk, Named: namedTimeline(t, sk, 0)})
	require.NoError(t, err)
	assert.True(t, report.OK)
	assert.Equal(t, sk.Counts.Total, report.NamedCount)
	assert.Equal(t, sk.Totals, report.Totals)

	ev := obs.last(t)
	assert.Equal(t, "verify-naming", ev.Name)
	assert.Equal(t, true, ev.Fields["ok"])
}

func TestVerifyNaming_Deviation(t *testing.T) {
	svc := newTestService()
	sk, err := svc.GenerateSkeleton(context.Background(), referenceRequest())
	require.NoError(t, err)

	report, err := svc.VerifyNaming(context.Background(), app.VerifyRequest{Skeleton: sk, Named: namedTimeline(t, sk, sk.Totals.CarbsG)})
	assert.Equal(t, app.ErrNamingDeviation, app.CodeOf(err))
	require.NotNil(t, report)
	assert.False(t, report.OK)
}

func TestLogUseCaseObserver_WritesRequestID(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestService(NewLogUseCaseObserver(&buf))
	ctx := WithRequestID(context.Background(), "abc-123")

	_, err := svc.Plan(ctx, referenceRequest())
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "use_case=plan")
	assert.Contains(t, out, "request_id=abc-123")
	assert.Contains(t, out, "regular_meals=3")
}

func TestObserverFallbacks(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{nil}))
	assert.Equal(t, "", RequestIDFrom(context.Background()))
}
