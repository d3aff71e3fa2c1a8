package figure

import (
	"strings"
	"testing"
)

func TestPercentAxis_ZeroAnchoredAndCoversData(t *testing.T) {
	rng, ticks := PercentAxis(0.062, 6)
	if rng.Min != 0 {
		t.Fatalf("percent axis must anchor at zero, got %v", rng.Min)
	}
	if rng.Max < 0.062 {
		t.Fatalf("range must cover the data max: %v < 0.062", rng.Max)
	}
	if len(ticks) < 2 {
		t.Fatalf("expected at least 2 ticks, got %d", len(ticks))
	}
	for i, tk := range ticks {
		if tk.Label == "" {
			t.Fatalf("empty tick label at %d", i)
		}
		if !strings.HasSuffix(tk.Label, "%") {
			t.Fatalf("tick label %q not percent-formatted", tk.Label)
		}
	}
}

func TestPercentAxis_DegenerateInput(t *testing.T) {
	rng, ticks := PercentAxis(0, 6)
	if rng.Max <= rng.Min {
		t.Fatalf("degenerate input must still yield a positive span: [%v,%v]", rng.Min, rng.Max)
	}
	if len(ticks) < 2 {
		t.Fatalf("expected ticks for degenerate input")
	}
}

func TestNiceStep_Pattern(t *testing.T) {
	// step must land on a 1/2/2.5/5/10 * 10^k value
	for _, max := range []float64{0.01, 0.062, 0.4, 1.0, 37} {
		step := niceStep(max, 6)
		if step <= 0 {
			t.Fatalf("non-positive step for max=%v", max)
		}
		if step > max {
			t.Fatalf("step %v larger than data max %v", step, max)
		}
	}
}

func TestFormatPercentTick_Decimals(t *testing.T) {
	if got := formatPercentTick(0.25, 0.05); got != "25%" {
		t.Fatalf("coarse steps use whole percents, got %q", got)
	}
	if got := formatPercentTick(0.025, 0.005); got != "2.5%" {
		t.Fatalf("sub-percent steps use one decimal, got %q", got)
	}
	if got := formatPercentTick(0.0025, 0.0005); got != "0.25%" {
		t.Fatalf("fine steps use two decimals, got %q", got)
	}
}
