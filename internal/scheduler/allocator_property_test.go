package scheduler

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/fuelplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllocateMeals_Invariants property-tests placement: exactly n meals,
// no slot meal inside the buffer, table order kept, and fallback flagged
// exactly when the table runs short.
func TestAllocateMeals_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	opts := DefaultOptions()

	for trial := 0; trial < 300; trial++ {
		occupied := make([]domain.ClockTime, rng.Intn(8))
		for i := range occupied {
			occupied[i] = domain.ClockTime(rng.Intn(24 * 60))
		}
		n := rng.Intn(10)
		remaining := domain.Totals{
			CarbsG:      rng.Intn(600) - 100,
			ProteinG:    rng.Intn(200),
			FatG:        rng.Intn(120),
			SodiumMg:    rng.Intn(5000),
			HydrationMl: rng.Intn(4000),
		}

		alloc, err := AllocateMeals(remaining, n, occupied, opts)
		require.NoError(t, err, "trial %d", trial)

		// Invariant 1: exactly n meals
		assert.Len(t, alloc.Meals, n, "trial %d", trial)

		free := 0
		for _, s := range opts.Slots {
			if !Conflicts(domain.MustParseClock(s.Time), occupied, opts.BufferMin) {
				free++
			}
		}

		// Invariant 2: fallback iff the free slots cannot hold n meals
		assert.Equal(t, n > free, alloc.GenericFallback, "trial %d: n=%d free=%d", trial, n, free)
		assert.Len(t, alloc.Rejected, len(opts.Slots)-free, "trial %d", trial)

		prev := -1
		for j, m := range alloc.Meals {
			// Invariant 3: every meal carries the same share
			assert.Equal(t, alloc.Share.CarbsG, m.CarbsG, "trial %d meal %d", trial, j)
			assert.Equal(t, alloc.Share.Calories, m.Calories, "trial %d meal %d", trial, j)

			if m.GenericFallback {
				assert.Equal(t, opts.FallbackTime, m.Time, "trial %d meal %d", trial, j)
				continue
			}
			// Invariant 4: slot meals avoid the buffer and follow table order
			at := domain.MustParseClock(m.Time)
			assert.False(t, Conflicts(at, occupied, opts.BufferMin), "trial %d meal %d at %s", trial, j, m.Time)
			assert.Greater(t, at.Minutes(), prev, "trial %d meal %d", trial, j)
			prev = at.Minutes()
		}

		// Invariant 5: shares never drift more than half a unit per meal
		if n > 0 {
			assert.InDelta(t, remaining.CarbsG, alloc.Share.CarbsG*n, float64(n)/2, "trial %d", trial)
			assert.InDelta(t, remaining.SodiumMg, alloc.Share.SodiumMg*n, float64(n)/2, "trial %d", trial)
		}
	}
}
