package formatter

import (
	"fmt"
	"math"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderCoverage renders how much of a target an amount covers, like
// [████████░░]  82%. Green within tolerance of the target, yellow within
// three times the tolerance, red beyond.
func RenderCoverage(actual, target int, width int, tolerance float64) string {
	if width < 2 {
		width = 2
	}
	if target <= 0 {
		return fmt.Sprintf("[%s]   --", StyleDim.Render(strings.Repeat(emptyBlock, width)))
	}

	pct := float64(actual) / float64(target)
	filled := int(math.Max(0, math.Min(pct, 1)) * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	off := math.Abs(pct - 1)
	style := StyleGreen
	switch {
	case off > 3*tolerance:
		style = StyleRed
	case off > tolerance:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}
