package domain

const (
	DefaultTempC       = 20.0
	DefaultHumidityPct = 60.0
)

// Workout is one training session of the day.
type Workout struct {
	Type          string    `json:"type" yaml:"type"`
	DurationMin   int       `json:"duration_min" yaml:"duration_min"`
	Intensity     Intensity `json:"intensity" yaml:"intensity"`
	StartTime     string    `json:"start_time" yaml:"start_time"`
	TempC         *float64  `json:"temp_c,omitempty" yaml:"temp_c,omitempty"`
	HumidityPct   *float64  `json:"humidity_pct,omitempty" yaml:"humidity_pct,omitempty"`
	HeatIndexFlag bool      `json:"heat_index_flag,omitempty" yaml:"heat_index_flag,omitempty"`
	Race          bool      `json:"race,omitempty" yaml:"race,omitempty"`
}

// Hours returns the session duration in hours.
func (w *Workout) Hours() float64 {
	return float64(w.DurationMin) / 60
}

func (w *Workout) EffectiveTempC() float64 {
	return Float64FromPtrWithDefault(DefaultTempC, w.TempC)
}

func (w *Workout) EffectiveHumidityPct() float64 {
	return Float64FromPtrWithDefault(DefaultHumidityPct, w.HumidityPct)
}
