package figure

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// View identifies which of the two traces is currently shown.
type View int

const (
	ViewAllCountries View = iota
	ViewSelectedCountries
)

// Title is shared by both views, matching the single-chart presentation.
const Title = "Confirmed COVID-19 Cases vs Food Insecurity"

const (
	xAxisTitle = "Confirmed Cases (%)"
	yAxisTitle = "Food Insecurity (%)"
)

// Figure composes exactly two traces (all countries, selected countries) into
// one chart with a binary toggle. The visibility flags of the traces flip in
// lockstep: exactly one trace is visible at any time. Initial state shows the
// all-countries trace.
type Figure struct {
	All      Trace
	Selected Trace
	view     View
}

// NewFigure pairs the two traces and fixes the initial visibility state.
func NewFigure(all, selected Trace) *Figure {
	f := &Figure{All: all, Selected: selected}
	f.SetView(ViewAllCountries)
	return f
}

// View reports the active view.
func (f *Figure) View() View { return f.view }

// SetView switches the active trace, keeping both visibility flags in lockstep.
func (f *Figure) SetView(v View) {
	f.view = v
	f.All.Visible = v == ViewAllCountries
	f.Selected.Visible = v == ViewSelectedCountries
}

// Toggle flips between the two views.
func (f *Figure) Toggle() {
	if f.view == ViewAllCountries {
		f.SetView(ViewSelectedCountries)
	} else {
		f.SetView(ViewAllCountries)
	}
}

// ActiveTrace returns the currently visible trace.
func (f *Figure) ActiveTrace() *Trace {
	if f.view == ViewSelectedCountries {
		return &f.Selected
	}
	return &f.All
}

func markerStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    5,
		DotColor:    col,
	}
}

func lineMarkerStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
		DotWidth:    5,
		DotColor:    col,
	}
}

// Render draws the visible trace as a PNG-backed image of the given size.
func (f *Figure) Render(width, height int) (image.Image, error) {
	tr := f.ActiveTrace()
	if tr.Len() == 0 {
		return nil, fmt.Errorf("%s trace has no points", tr.Name)
	}

	var st chart.Style
	if tr.Mode == LineAndMarker {
		st = lineMarkerStyle(chart.ColorBlue)
	} else {
		st = markerStyle(chart.ColorAlternateGray)
	}
	series := chart.ContinuousSeries{
		Name:    tr.Name,
		XValues: tr.XValues,
		YValues: tr.YValues,
		Style:   st,
	}

	xRange, xTicks := PercentAxis(maxOf(tr.XValues), 6)
	yRange, yTicks := PercentAxis(maxOf(tr.YValues), 6)

	ch := chart.Chart{
		Title:      Title,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: xAxisTitle, Range: xRange, Ticks: xTicks},
		YAxis:      chart.YAxis{Name: yAxisTitle, Range: yRange, Ticks: yTicks},
		Series:     []chart.Series{series},
		Width:      width,
		Height:     height,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", tr.Name, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", tr.Name, err)
	}
	return img, nil
}

func maxOf(vs []float64) float64 {
	m := 0.0
	for _, v := range vs {
		if v > m {
			m = v
		}
	}
	return m
}
