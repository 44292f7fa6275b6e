package scheduler

import (
	"sort"

	"github.com/alexanderramin/fuelplan/internal/domain"
)

// SortTimeline orders entries by HH:MM. The sort is stable, so entries at the
// same time keep their insertion order: workout fuel, then locked, then regular.
func SortTimeline(entries []domain.TimelineEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})
}

// OccupiedTimes parses the times of entries that regular meals must avoid.
func OccupiedTimes(entries []domain.TimelineEntry) ([]domain.ClockTime, error) {
	out := make([]domain.ClockTime, 0, len(entries))
	for _, e := range entries {
		c, err := domain.ParseClock(e.Time)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
