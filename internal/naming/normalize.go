package naming

import (
	"fmt"

	"github.com/alexanderramin/fuelplan/internal/domain"
)

// NamedEntry is one timeline entry as returned by the naming step. Numbers
// are decoded as floats since models do not reliably emit integers.
type NamedEntry struct {
	Time        string           `json:"time"`
	Type        domain.EntryType `json:"type"`
	Name        *string          `json:"name"`
	Description string           `json:"description,omitempty"`
	CarbsG      float64          `json:"carbs_g"`
	ProteinG    float64          `json:"protein_g"`
	FatG        float64          `json:"fat_g"`
	SodiumMg    float64          `json:"sodium_mg"`
	HydrationMl *float64         `json:"hydration_ml"`
	HydrationL  *float64         `json:"hydration_l"`
	Calories    float64          `json:"calories"`
	Locked      bool             `json:"locked"`
}

// NamedResponse is the envelope the naming step returns.
type NamedResponse struct {
	Timeline     []NamedEntry   `json:"timeline"`
	DailySummary map[string]any `json:"daily_summary,omitempty"`
	DailyTip     string         `json:"daily_tip,omitempty"`
}

func validateResponse(r NamedResponse) error {
	if len(r.Timeline) == 0 {
		return fmt.Errorf("timeline is empty")
	}
	for i, e := range r.Timeline {
		if _, err := domain.ParseClock(e.Time); err != nil {
			return fmt.Errorf("timeline[%d].time: %v", i, err)
		}
	}
	return nil
}

// Normalize converts named entries into timeline entries. Hydration given only
// in liters is converted to millilitres and missing hydration becomes 0. The
// bool reports whether any liter value was converted.
func Normalize(entries []NamedEntry) ([]domain.TimelineEntry, bool) {
	out := make([]domain.TimelineEntry, len(entries))
	converted := false
	for i, e := range entries {
		var ml float64
		switch {
		case e.HydrationMl != nil:
			ml = *e.HydrationMl
		case e.HydrationL != nil:
			ml = *e.HydrationL * 1000
			converted = true
		}
		out[i] = domain.TimelineEntry{
			Time:        e.Time,
			Type:        e.Type,
			Name:        e.Name,
			CarbsG:      domain.RoundHalfUp(e.CarbsG),
			ProteinG:    domain.RoundHalfUp(e.ProteinG),
			FatG:        domain.RoundHalfUp(e.FatG),
			SodiumMg:    domain.RoundHalfUp(e.SodiumMg),
			HydrationMl: domain.RoundHalfUp(ml),
			Calories:    domain.RoundHalfUp(e.Calories),
			Locked:      e.Locked,
		}
	}
	return out, converted
}
