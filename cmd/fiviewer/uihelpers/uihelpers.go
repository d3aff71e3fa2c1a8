// Package uihelpers holds pure layout and formatting math for the viewer so it
// can be tested without creating any UI objects.
package uihelpers

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ComputeChartDimensions applies the width/height clamp rules used for charts.
// Input: desired raw width (e.g. canvas width). Returns clamped width & height.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 640 {
		w = 640
	}
	h := int(float32(w) * 0.55)
	if h < 320 {
		h = 320
	}
	if h > 640 {
		h = 640
	}
	return w, h
}

// ComputeTableColumnWidths returns the 7 column widths for the countries table
// given a window width. Order: Country, Population, Food Insecurity,
// Confirmed Cases, Unemployment, CPI, Income.
func ComputeTableColumnWidths(winW float32) [7]int {
	const compactBreakpoint = 760
	if winW < compactBreakpoint {
		return [7]int{130, 90, 90, 90, 90, 70, 100}
	}
	return [7]int{180, 130, 130, 130, 130, 100, 130}
}

var popPrinter = message.NewPrinter(language.English)

// FormatPopulation renders a population count with thousands separators,
// e.g. 38005238 -> "38,005,238".
func FormatPopulation(n int) string {
	return popPrinter.Sprintf("%d", n)
}

// FormatUSD renders a dollar amount with thousands separators and cents,
// e.g. 56674.16 -> "56,674.16".
func FormatUSD(v float64) string {
	return popPrinter.Sprintf("%.2f", v)
}

// SplitCountryList parses the -countries flag value: a comma-separated,
// order-preserving list of display names. Blank entries are dropped.
func SplitCountryList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}
