package figure

import (
	"fmt"

	"github.com/foodinsight/FoodInsecurityViewer/src/dataset"
)

// Mode selects how a trace is drawn.
type Mode int

const (
	// MarkerOnly renders unconnected points.
	MarkerOnly Mode = iota
	// LineAndMarker connects the points in order.
	LineAndMarker
)

// Trace is one renderable series: coordinates as fractions (raw percent / 100),
// one country label per point, a draw mode and a visibility flag.
type Trace struct {
	Name    string
	XValues []float64
	YValues []float64
	Labels  []string
	Mode    Mode
	Visible bool
}

// BuildAllCountriesTrace shapes the joined dataset into a marker-only trace.
// Points are emitted in country-name order so repeated renders are identical;
// the dataset itself carries no order.
func BuildAllCountriesTrace(all dataset.AllCountries) Trace {
	names := all.Names()
	tr := Trace{
		Name:    "All Countries",
		XValues: make([]float64, 0, len(names)),
		YValues: make([]float64, 0, len(names)),
		Labels:  names,
		Mode:    MarkerOnly,
		Visible: true,
	}
	for _, name := range names {
		p := all[name]
		tr.XValues = append(tr.XValues, p.ConfirmedCases/100)
		tr.YValues = append(tr.YValues, p.FoodInsecurity/100)
	}
	return tr
}

// BuildSelectedTrace shapes the ordered selected-countries series into a
// line+marker trace, keeping the ascending tuple order. It starts hidden;
// the figure's toggle brings it into view.
func BuildSelectedTrace(selected []dataset.CountryMetric) Trace {
	tr := Trace{
		Name:    "Selected Countries",
		XValues: make([]float64, 0, len(selected)),
		YValues: make([]float64, 0, len(selected)),
		Labels:  make([]string, 0, len(selected)),
		Mode:    LineAndMarker,
		Visible: false,
	}
	for _, m := range selected {
		tr.XValues = append(tr.XValues, m.ConfirmedCases/100)
		tr.YValues = append(tr.YValues, m.FoodInsecurity/100)
		tr.Labels = append(tr.Labels, m.Name)
	}
	return tr
}

// HoverText returns the hover label for point i: country name, confirmed cases
// to two decimals and food insecurity to one.
func (t Trace) HoverText(i int) string {
	if i < 0 || i >= len(t.Labels) {
		return ""
	}
	return fmt.Sprintf("%s\nConfirmed Cases: %.2f%%\nFood Insecurity: %.1f%%",
		t.Labels[i], t.XValues[i]*100, t.YValues[i]*100)
}

// Len returns the number of points in the trace.
func (t Trace) Len() int { return len(t.XValues) }
