// Package naming checks a timeline returned by the meal-naming step against
// the skeleton it was generated from.
package naming

import (
	"fmt"
	"math"

	"github.com/alexanderramin/fuelplan/internal/app"
	"github.com/alexanderramin/fuelplan/internal/domain"
)

const DefaultTolerance = 0.05

// Verify parses raw and compares the named timeline with skeleton. The naming
// step may fill names and shift each aggregate field by at most tolerance;
// anything more is reported as NAMING_DEVIATION. On deviation the report is
// returned together with the error.
func Verify(skeleton *domain.Skeleton, raw string, tolerance float64) (*app.NamingReport, error) {
	if skeleton == nil {
		return nil, &app.PlanError{Code: app.ErrInvalidInput, Message: "skeleton is required"}
	}
	if tolerance <= 0 || tolerance >= 1 {
		tolerance = DefaultTolerance
	}

	resp, err := ExtractJSON(raw, validateResponse)
	if err != nil {
		return nil, &app.PlanError{
			Code:    app.ErrInvalidInput,
			Message: "named timeline could not be parsed",
			Details: []string{err.Error()},
		}
	}

	entries, converted := Normalize(resp.Timeline)
	report := &app.NamingReport{
		OK:         true,
		Tolerance:  tolerance,
		Entries:    len(entries),
		Timeline:   entries,
		Totals:     domain.SumEntries(entries),
		Normalized: converted,
	}
	for i, e := range entries {
		if e.Name == nil || *e.Name == "" {
			report.Unnamed = append(report.Unnamed, i)
		} else {
			report.NamedCount++
		}
	}

	var details []string
	if want := len(skeleton.Timeline); want != len(entries) {
		details = append(details, fmt.Sprintf("entry count changed from %d to %d", want, len(entries)))
	}

	actual := report.Totals.Fields()
	for i, exp := range skeleton.Totals.Fields() {
		fd := compareField(exp.Name, exp.Value, actual[i].Value, tolerance)
		report.Fields = append(report.Fields, fd)
		if !fd.Within {
			details = append(details, fmt.Sprintf("%s %d vs %d (%.1f%%)", fd.Field, fd.Actual, fd.Expected, fd.DeviationPct))
		}
	}

	if len(details) > 0 {
		report.OK = false
		return report, &app.PlanError{
			Code:    app.ErrNamingDeviation,
			Message: fmt.Sprintf("named timeline drifts beyond %.0f%% of the skeleton", tolerance*100),
			Details: details,
		}
	}
	return report, nil
}

// compareField treats a zero expectation as exact: it must stay zero.
func compareField(name string, expected, actual int, tolerance float64) app.FieldDeviation {
	fd := app.FieldDeviation{Field: name, Expected: expected, Actual: actual}
	diff := math.Abs(float64(actual - expected))
	if expected == 0 {
		fd.Within = actual == 0
		if !fd.Within {
			fd.DeviationPct = 100
		}
		return fd
	}
	base := math.Abs(float64(expected))
	fd.DeviationPct = math.Round(diff/base*1000) / 10
	fd.Within = diff <= tolerance*base
	return fd
}
