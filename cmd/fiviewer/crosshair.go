package main

import (
	"image/color"
	"math"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/foodinsight/FoodInsecurityViewer/src/figure"
)

// Insets of the plot area inside a rendered chart image, in image pixel
// space. go-chart takes the Background padding off the outside and then
// reserves extra room for the title at the top, the x tick labels at the
// bottom and the y axis it draws along the right edge; these extents were
// measured on charts rendered at the default font size.
const (
	plotInsetLeft   = float32(21)
	plotInsetRight  = float32(60)
	plotInsetTop    = float32(40)
	plotInsetBottom = float32(50)
)

// plotBox returns the estimated plot area of a rendered chart image.
func plotBox(imgW, imgH float32) (x0, y0, w, h float32) {
	x0, y0 = plotInsetLeft, plotInsetTop
	w = imgW - plotInsetLeft - plotInsetRight
	h = imgH - plotInsetTop - plotInsetBottom
	if w < 1 {
		x0, w = 0, imgW
	}
	if h < 1 {
		y0, h = 0, imgH
	}
	return x0, y0, w, h
}

// nearestPoint picks the trace point closest to a cursor position, both in
// image pixel space, and returns its index. The axis ranges are recomputed the
// same way the chart renderer builds them, so projections line up with the
// drawn markers up to the plot-box estimate.
func nearestPoint(tr *figure.Trace, imgW, imgH, px, py float32) int {
	n := tr.Len()
	if n == 0 {
		return -1
	}
	x0, y0, w, h := plotBox(imgW, imgH)
	xRange, _ := figure.PercentAxis(maxFloat(tr.XValues), 6)
	yRange, _ := figure.PercentAxis(maxFloat(tr.YValues), 6)

	idx := 0
	best := float64(math.MaxFloat64)
	for i := 0; i < n; i++ {
		cx := x0 + float32(tr.XValues[i]/xRange.Max)*w
		cy := y0 + float32(1-tr.YValues[i]/yRange.Max)*h
		d := float64((cx-px)*(cx-px) + (cy-py)*(cy-py))
		if d < best {
			best = d
			idx = i
		}
	}
	return idx
}

// crosshairOverlay draws a crosshair over the figure chart and shows the hover
// text of the nearest country under the cursor.
type crosshairOverlay struct {
	widget.BaseWidget
	state    *uiState
	enabled  bool
	mouse    fyne.Position
	hovering bool
}

func newCrosshairOverlay(state *uiState) *crosshairOverlay {
	c := &crosshairOverlay{state: state, enabled: state != nil && state.crosshairEnabled}
	c.ExtendBaseWidget(c)
	return c
}

func (c *crosshairOverlay) CreateRenderer() fyne.WidgetRenderer {
	// background to ensure a full hit-area for hover events
	bg := canvas.NewRectangle(color.RGBA{})
	lineV := canvas.NewLine(color.RGBA{R: 200, G: 200, B: 200, A: 220})
	lineV.StrokeWidth = 1.0
	lineH := canvas.NewLine(color.RGBA{R: 200, G: 200, B: 200, A: 220})
	lineH.StrokeWidth = 1.0
	dot := canvas.NewCircle(color.RGBA{R: 240, G: 240, B: 240, A: 220})
	label := widget.NewRichText()
	label.Wrapping = fyne.TextWrapOff
	labelBG := canvas.NewRectangle(color.RGBA{R: 0, G: 0, B: 0, A: 170})
	objs := []fyne.CanvasObject{bg, lineV, lineH, dot, labelBG, label}
	return &crosshairRenderer{c: c, bg: bg, lineV: lineV, lineH: lineH, dot: dot, labelBG: labelBG, label: label, objs: objs}
}

type crosshairRenderer struct {
	c       *crosshairOverlay
	bg      *canvas.Rectangle
	lineV   *canvas.Line
	lineH   *canvas.Line
	dot     *canvas.Circle
	labelBG *canvas.Rectangle
	label   *widget.RichText
	objs    []fyne.CanvasObject
}

func (r *crosshairRenderer) Destroy() {}

func (r *crosshairRenderer) hide() {
	r.lineV.Position1 = fyne.NewPos(-10, -10)
	r.lineV.Position2 = fyne.NewPos(-10, -10)
	r.lineH.Position1 = fyne.NewPos(-10, -10)
	r.lineH.Position2 = fyne.NewPos(-10, -10)
	r.dot.Move(fyne.NewPos(-10, -10))
	r.labelBG.Resize(fyne.NewSize(0, 0))
	r.labelBG.Move(fyne.NewPos(-1000, -1000))
	r.label.Move(fyne.NewPos(-1000, -1000))
}

func (r *crosshairRenderer) Layout(size fyne.Size) {
	if r.c == nil {
		return
	}
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))
	st := r.c.state
	if !r.c.enabled || !r.c.hovering || st == nil || st.fig == nil {
		r.hide()
		return
	}
	x := clamp(r.c.mouse.X, 0, size.Width)
	y := clamp(r.c.mouse.Y, 0, size.Height)

	// Underlying image size and the drawn rectangle inside this overlay
	// (ImageFillContain aware).
	var imgW, imgH float32
	if st.chartImgCanvas != nil && st.chartImgCanvas.Image != nil {
		b := st.chartImgCanvas.Image.Bounds()
		imgW = float32(b.Dx())
		imgH = float32(b.Dy())
	}
	if imgW <= 0 || imgH <= 0 {
		imgW, imgH = size.Width, size.Height
	}
	sx := size.Width / imgW
	sy := size.Height / imgH
	scale := sx
	if sy < sx {
		scale = sy
	}
	drawW := imgW * scale
	drawH := imgH * scale
	drawX := (size.Width - drawW) / 2
	drawY := (size.Height - drawH) / 2
	if x < drawX || x > drawX+drawW || y < drawY || y > drawY+drawH {
		r.hide()
		return
	}

	tr := st.fig.ActiveTrace()
	if tr.Len() == 0 {
		r.hide()
		return
	}
	// Map the cursor from overlay space back to image pixel space, and use
	// the projection only to choose the label. The plot box is an estimate,
	// so the dot rides the mouse intersection instead of claiming an exact
	// marker position.
	imgX := (x - drawX) / scale
	imgY := (y - drawY) / scale
	idx := nearestPoint(tr, imgW, imgH, imgX, imgY)
	if idx < 0 {
		r.hide()
		return
	}

	r.lineV.Position1 = fyne.NewPos(x, 0)
	r.lineV.Position2 = fyne.NewPos(x, size.Height)
	r.lineH.Position1 = fyne.NewPos(0, y)
	r.lineH.Position2 = fyne.NewPos(size.Width, y)
	r.dot.Resize(fyne.NewSize(7, 7))
	r.dot.Move(fyne.NewPos(x-3.5, y-3.5))

	r.label.Segments = []widget.RichTextSegment{&widget.TextSegment{Text: tr.HoverText(idx)}}
	r.label.Refresh()
	pad := float32(6)
	ts := r.label.MinSize()
	bgW := ts.Width + 2*pad
	bgH := ts.Height + 2*pad
	tx, ty := x+8, y+8
	if tx+bgW > size.Width {
		tx = size.Width - bgW
	}
	if ty+bgH > size.Height {
		ty = size.Height - bgH
	}
	r.labelBG.Resize(fyne.NewSize(bgW, bgH))
	r.labelBG.Move(fyne.NewPos(tx, ty))
	r.label.Move(fyne.NewPos(tx+pad, ty+pad))
}

func (r *crosshairRenderer) MinSize() fyne.Size           { return fyne.NewSize(10, 10) }
func (r *crosshairRenderer) Objects() []fyne.CanvasObject { return r.objs }
func (r *crosshairRenderer) Refresh() {
	r.Layout(r.c.Size())
	r.bg.Refresh()
	r.lineV.StrokeColor = theme.Color(theme.ColorNameDisabled)
	r.lineH.StrokeColor = theme.Color(theme.ColorNameDisabled)
	r.lineV.Refresh()
	r.lineH.Refresh()
	r.dot.Refresh()
	r.labelBG.Refresh()
	r.label.Refresh()
}

func (c *crosshairOverlay) MouseMoved(ev *desktop.MouseEvent) {
	if !c.enabled {
		return
	}
	c.hovering = true
	c.mouse = ev.Position
	c.Refresh()
}
func (c *crosshairOverlay) MouseIn(ev *desktop.MouseEvent) { c.hovering = true; c.Refresh() }
func (c *crosshairOverlay) MouseOut()                      { c.hovering = false; c.Refresh() }

var _ desktop.Hoverable = (*crosshairOverlay)(nil)

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxFloat(vs []float64) float64 {
	m := 0.0
	for _, v := range vs {
		if v > m {
			m = v
		}
	}
	return m
}
