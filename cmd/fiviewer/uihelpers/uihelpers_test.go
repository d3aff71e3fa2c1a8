package uihelpers

import (
	"reflect"
	"testing"
)

func TestComputeChartDimensions_Clamps(t *testing.T) {
	w, h := ComputeChartDimensions(100)
	if w != 640 {
		t.Fatalf("narrow widths clamp to 640, got %d", w)
	}
	if h < 320 || h > 640 {
		t.Fatalf("height out of bounds: %d", h)
	}

	w, h = ComputeChartDimensions(2000)
	if w != 2000 {
		t.Fatalf("wide widths pass through, got %d", w)
	}
	if h != 640 {
		t.Fatalf("height must clamp at 640 for wide charts, got %d", h)
	}
}

func TestComputeTableColumnWidths_Breakpoints(t *testing.T) {
	wide := ComputeTableColumnWidths(1100)
	narrow := ComputeTableColumnWidths(600)
	if wide[0] <= narrow[0] {
		t.Fatalf("wide layout should give the country column more room: %d vs %d", wide[0], narrow[0])
	}
	for i, w := range narrow {
		if w <= 0 {
			t.Fatalf("column %d collapsed in narrow layout", i)
		}
	}
}

func TestFormatPopulation(t *testing.T) {
	if got := FormatPopulation(38005238); got != "38,005,238" {
		t.Fatalf("got %q", got)
	}
	if got := FormatPopulation(900); got != "900" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatUSD(t *testing.T) {
	if got := FormatUSD(56674.16); got != "56,674.16" {
		t.Fatalf("got %q", got)
	}
	if got := FormatUSD(900); got != "900.00" {
		t.Fatalf("got %q", got)
	}
}

func TestSplitCountryList(t *testing.T) {
	got := SplitCountryList("Canada, United States ,Japan,,United Kingdom")
	want := []string{"Canada", "United States", "Japan", "United Kingdom"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	if SplitCountryList("") != nil {
		t.Fatalf("empty input must yield nil")
	}
}
