package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fuelplan/internal/app"
)

// FormatNamingReport renders a naming verification result.
func FormatNamingReport(r *app.NamingReport) string {
	var b strings.Builder

	if r.OK {
		b.WriteString(StyleGreen.Render("✔ Named timeline matches the skeleton"))
	} else {
		b.WriteString(StyleRed.Render("✖ Named timeline drifts from the skeleton"))
	}
	b.WriteString(Dim(fmt.Sprintf("  (±%.0f%%)", r.Tolerance*100)) + "\n\n")

	rows := make([][]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		mark := StyleGreen.Render("ok")
		if !f.Within {
			mark = StyleRed.Render("drift")
		}
		rows = append(rows, []string{
			f.Field,
			fmt.Sprintf("%d", f.Expected),
			fmt.Sprintf("%d", f.Actual),
			fmt.Sprintf("%.1f%%", f.DeviationPct),
			mark,
		})
	}
	b.WriteString(RenderTableAligned([]string{"FIELD", "EXPECTED", "NAMED", "DEVIATION", ""}, rows,
		map[int]bool{1: true, 2: true, 3: true}))

	b.WriteString(fmt.Sprintf("\n%s  %d of %d entries named\n", Dim("NAMES"), r.NamedCount, r.Entries))
	if len(r.Unnamed) > 0 {
		idx := make([]string, len(r.Unnamed))
		for i, n := range r.Unnamed {
			idx[i] = fmt.Sprintf("%d", n)
		}
		b.WriteString(StyleYellow.Render("  unnamed entries: "+strings.Join(idx, ", ")) + "\n")
	}
	if r.Normalized {
		b.WriteString(Dim("  hydration converted from litres") + "\n")
	}
	return b.String()
}
