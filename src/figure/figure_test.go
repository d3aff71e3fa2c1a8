package figure

import (
	"strings"
	"testing"

	"github.com/foodinsight/FoodInsecurityViewer/src/dataset"
)

func testTraces() (Trace, Trace) {
	all := dataset.AllCountries{
		"Canada":  {ConfirmedCases: 3.2, FoodInsecurity: 15.0},
		"Japan":   {ConfirmedCases: 1.1, FoodInsecurity: 8.0},
		"Germany": {ConfirmedCases: 2.0, FoodInsecurity: 4.0},
	}
	sel, err := dataset.BuildSelected(all, []string{"Canada", "Japan"})
	if err != nil {
		panic(err)
	}
	return BuildAllCountriesTrace(all), BuildSelectedTrace(sel)
}

func TestBuildAllCountriesTrace_ScalesAndOrders(t *testing.T) {
	allTrace, _ := testTraces()
	if !allTrace.Visible {
		t.Fatalf("all-countries trace must start visible")
	}
	if allTrace.Mode != MarkerOnly {
		t.Fatalf("all-countries trace must be marker-only")
	}
	// deterministic name order: Canada, Germany, Japan
	wantLabels := []string{"Canada", "Germany", "Japan"}
	for i, w := range wantLabels {
		if allTrace.Labels[i] != w {
			t.Fatalf("label order: got %v want %v", allTrace.Labels, wantLabels)
		}
	}
	// raw percentages divided by 100
	if allTrace.XValues[0] != 0.032 || allTrace.YValues[0] != 0.15 {
		t.Fatalf("Canada point not scaled to fractions: (%v, %v)", allTrace.XValues[0], allTrace.YValues[0])
	}
}

func TestBuildSelectedTrace_KeepsSortedOrderAndStartsHidden(t *testing.T) {
	_, selTrace := testTraces()
	if selTrace.Visible {
		t.Fatalf("selected trace must start hidden")
	}
	if selTrace.Mode != LineAndMarker {
		t.Fatalf("selected trace must be line+marker")
	}
	// BuildSelected sorts by confirmed cases: Japan (1.1) before Canada (3.2)
	if selTrace.Labels[0] != "Japan" || selTrace.Labels[1] != "Canada" {
		t.Fatalf("selected order not preserved: %v", selTrace.Labels)
	}
}

func TestHoverText_Formatting(t *testing.T) {
	allTrace, _ := testTraces()
	// Canada: confirmed 3.2 -> "3.20%", insecurity 15.0 -> "15.0%"
	txt := allTrace.HoverText(0)
	if !strings.Contains(txt, "Canada") {
		t.Fatalf("hover text missing country name: %q", txt)
	}
	if !strings.Contains(txt, "Confirmed Cases: 3.20%") {
		t.Fatalf("confirmed cases must use 2 decimals: %q", txt)
	}
	if !strings.Contains(txt, "Food Insecurity: 15.0%") {
		t.Fatalf("food insecurity must use 1 decimal: %q", txt)
	}
	if allTrace.HoverText(99) != "" {
		t.Fatalf("out-of-range hover text must be empty")
	}
}

func TestFigure_InitialStateAndToggleLockstep(t *testing.T) {
	allTrace, selTrace := testTraces()
	f := NewFigure(allTrace, selTrace)

	if f.View() != ViewAllCountries {
		t.Fatalf("initial view must be all countries")
	}
	if !f.All.Visible || f.Selected.Visible {
		t.Fatalf("initial visibility wrong: all=%v selected=%v", f.All.Visible, f.Selected.Visible)
	}

	f.Toggle()
	if f.View() != ViewSelectedCountries {
		t.Fatalf("toggle did not switch view")
	}
	if f.All.Visible || !f.Selected.Visible {
		t.Fatalf("visibility flags not flipped in lockstep: all=%v selected=%v", f.All.Visible, f.Selected.Visible)
	}
	if f.ActiveTrace().Name != "Selected Countries" {
		t.Fatalf("active trace mismatch: %s", f.ActiveTrace().Name)
	}

	f.Toggle()
	if f.View() != ViewAllCountries || !f.All.Visible || f.Selected.Visible {
		t.Fatalf("double toggle must restore the initial state")
	}
}

func TestFigure_RenderBothViews(t *testing.T) {
	allTrace, selTrace := testTraces()
	f := NewFigure(allTrace, selTrace)

	img, err := f.Render(640, 360)
	if err != nil {
		t.Fatalf("render all-countries view: %v", err)
	}
	if img.Bounds().Dx() == 0 {
		t.Fatalf("empty image")
	}

	f.SetView(ViewSelectedCountries)
	if _, err := f.Render(640, 360); err != nil {
		t.Fatalf("render selected view: %v", err)
	}
}

func TestFigure_RenderEmptyTraceFails(t *testing.T) {
	f := NewFigure(Trace{Name: "All Countries"}, Trace{Name: "Selected Countries"})
	if _, err := f.Render(640, 360); err == nil {
		t.Fatalf("expected error for empty trace")
	}
}
