package figure

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// PercentAxis builds a zero-anchored range and tick set for an axis whose
// values are fractions of 1 but labeled as percentages. maxFrac is the largest
// data value; the range tops out at the next nice step above it.
func PercentAxis(maxFrac float64, n int) (*chart.ContinuousRange, []chart.Tick) {
	if maxFrac <= 0 || math.IsNaN(maxFrac) {
		maxFrac = 0.01
	}
	step := niceStep(maxFrac, n)
	top := math.Ceil(maxFrac/step) * step
	if top <= 0 {
		top = step
	}
	ticks := make([]chart.Tick, 0, n+2)
	for v := 0.0; v <= top+step/2; v += step {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatPercentTick(v, step)})
	}
	return &chart.ContinuousRange{Min: 0, Max: top}, ticks
}

// niceStep picks a 1/2/2.5/5-style step so that [0,max] splits into about n ticks.
func niceStep(max float64, n int) float64 {
	if n < 2 {
		n = 2
	}
	raw := max / float64(n-1)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	best := 10 * mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Ceil(max / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			best = step
		}
	}
	return best
}

// formatPercentTick labels a fractional value as a percentage, with enough
// decimals to distinguish adjacent ticks at the given step.
func formatPercentTick(v, step float64) string {
	pct := v * 100
	stepPct := step * 100
	switch {
	case stepPct >= 1:
		return fmt.Sprintf("%.0f%%", pct)
	case stepPct >= 0.1:
		return fmt.Sprintf("%.1f%%", pct)
	default:
		return fmt.Sprintf("%.2f%%", pct)
	}
}
