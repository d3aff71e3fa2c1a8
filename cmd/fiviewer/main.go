package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	png "image/png"
	"os"
	"sort"
	"strings"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/foodinsight/FoodInsecurityViewer/cmd/fiviewer/uihelpers"
	"github.com/foodinsight/FoodInsecurityViewer/src/dataset"
	"github.com/foodinsight/FoodInsecurityViewer/src/figure"
	"github.com/foodinsight/FoodInsecurityViewer/src/sources"
)

// defaultCountries is the observed allow-list configuration. Override with
// -countries to compare a different set.
var defaultCountries = []string{"Canada", "United States", "Japan", "Australia", "United Kingdom"}

const (
	viewAllLabel      = "All Countries"
	viewSelectedLabel = "Selected Countries"
)

type datasetPaths struct {
	food         string
	cases        string
	population   string
	unemployment string
	cpi          string
	income       string
	rates        string
}

type uiState struct {
	app    fyne.App
	window fyne.Window

	paths     datasetPaths
	allowList []string

	factors   sources.Factors
	fig       *figure.Figure
	countries []sources.Country

	// toggles
	crosshairEnabled bool
	showHints        bool

	// widgets
	chartImgCanvas  *canvas.Image
	unempImgCanvas  *canvas.Image
	cpiImgCanvas    *canvas.Image
	incomeImgCanvas *canvas.Image
	table          *widget.Table
	viewRadio      *widget.RadioGroup
	overlay        *crosshairOverlay
}

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var (
		foodFlag     string
		casesFlag    string
		popFlag      string
		unempFlag    string
		cpiFlag      string
		incomeFlag   string
		ratesFlag    string
		countryFlag  string
		shotsFlag    string
		logLevelFlag string
	)
	flag.StringVar(&foodFlag, "food", "datasets/food_security.json", "Food security index feed (.json, .xlsx or .xls)")
	flag.StringVar(&casesFlag, "cases", "datasets/owid-covid-data.csv", "OWID confirmed-cases CSV")
	flag.StringVar(&popFlag, "population", "datasets/population.csv", "World Bank population CSV")
	flag.StringVar(&unempFlag, "unemployment", "datasets/unemployment.csv", "World Bank unemployment CSV")
	flag.StringVar(&cpiFlag, "cpi", "datasets/cpi.csv", "FAOSTAT food consumer-price-index CSV")
	flag.StringVar(&incomeFlag, "income", "datasets/income.csv", "OECD average annual wage CSV")
	flag.StringVar(&ratesFlag, "rates", "datasets/exchange_rates.csv", "Treasury year-end exchange rate CSV")
	flag.StringVar(&countryFlag, "countries", "", "Comma-separated country allow-list (default: "+strings.Join(defaultCountries, ", ")+")")
	flag.StringVar(&shotsFlag, "screenshots", "", "Render charts as PNGs into this directory and exit (no window)")
	flag.StringVar(&logLevelFlag, "log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	sources.SetLogLevel(logLevelFlag)

	paths := datasetPaths{
		food:         foodFlag,
		cases:        casesFlag,
		population:   popFlag,
		unemployment: unempFlag,
		cpi:          cpiFlag,
		income:       incomeFlag,
		rates:        ratesFlag,
	}
	allowList := defaultCountries
	if countryFlag != "" {
		allowList = uihelpers.SplitCountryList(countryFlag)
	}

	if shotsFlag != "" {
		if err := RunScreenshotsMode(paths, allowList, shotsFlag); err != nil {
			sources.Errorf("screenshots mode failed: %v", err)
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("com.foodinsight.fiviewer")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("Food Insecurity Viewer")
	w.Resize(fyne.NewSize(1000, 760))

	state := &uiState{
		app:       a,
		window:    w,
		paths:     paths,
		allowList: allowList,
	}
	// Crosshair/hints preferences load before the controls are created so the
	// checkboxes reflect them immediately.
	state.crosshairEnabled = a.Preferences().BoolWithFallback("crosshair", false)
	state.showHints = a.Preferences().BoolWithFallback("showHints", false)

	// top bar controls; callbacks wired after the canvases exist
	viewRadio := widget.NewRadioGroup([]string{viewAllLabel, viewSelectedLabel}, nil)
	viewRadio.Horizontal = true
	viewRadio.Selected = viewAllLabel
	state.viewRadio = viewRadio

	crosshairChk := widget.NewCheck("Crosshair", nil)
	crosshairChk.SetChecked(state.crosshairEnabled)
	hintsChk := widget.NewCheck("Hints", nil)
	hintsChk.SetChecked(state.showHints)

	reloadBtn := widget.NewButton("Reload", nil)

	// chart placeholders
	state.chartImgCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.chartImgCanvas.FillMode = canvas.ImageFillContain
	state.chartImgCanvas.SetMinSize(fyne.NewSize(860, 420))
	state.unempImgCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.unempImgCanvas.FillMode = canvas.ImageFillContain
	state.unempImgCanvas.SetMinSize(fyne.NewSize(860, 420))
	state.cpiImgCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.cpiImgCanvas.FillMode = canvas.ImageFillContain
	state.cpiImgCanvas.SetMinSize(fyne.NewSize(860, 420))
	state.incomeImgCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.incomeImgCanvas.FillMode = canvas.ImageFillContain
	state.incomeImgCanvas.SetMinSize(fyne.NewSize(860, 420))

	state.overlay = newCrosshairOverlay(state)

	// countries table
	state.table = widget.NewTable(
		func() (int, int) { return len(state.countries) + 1, 7 },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			lbl := o.(*widget.Label)
			if id.Row == 0 {
				switch id.Col {
				case 0:
					lbl.SetText("Country")
				case 1:
					lbl.SetText("Population")
				case 2:
					lbl.SetText("Food Insecurity (%)")
				case 3:
					lbl.SetText("Confirmed Cases (%)")
				case 4:
					lbl.SetText("Unemployment (%)")
				case 5:
					lbl.SetText("CPI (%)")
				case 6:
					lbl.SetText("Income (USD)")
				}
				return
			}
			rix := id.Row - 1
			if rix < 0 || rix >= len(state.countries) {
				lbl.SetText("")
				return
			}
			c := state.countries[rix]
			switch id.Col {
			case 0:
				lbl.SetText(c.Name)
			case 1:
				lbl.SetText(uihelpers.FormatPopulation(c.Population))
			case 2:
				lbl.SetText(fmt.Sprintf("%.1f", c.FoodInsecurity))
			case 3:
				lbl.SetText(fmt.Sprintf("%.2f", c.ConfirmedCases))
			case 4:
				lbl.SetText(fmt.Sprintf("%.1f", c.Unemployment))
			case 5:
				lbl.SetText(fmt.Sprintf("%.0f", c.CPI))
			case 6:
				lbl.SetText(uihelpers.FormatUSD(c.Income))
			}
		},
	)
	applyTableColumnWidths(state)

	top := container.NewHBox(
		reloadBtn,
		widget.NewLabel("Food Insecurity:"), viewRadio,
		crosshairChk, hintsChk,
	)

	chartTab := container.NewStack(state.chartImgCanvas, state.overlay)
	tabs := container.NewAppTabs(
		container.NewTabItem("Chart", chartTab),
		container.NewTabItem("Unemployment", state.unempImgCanvas),
		container.NewTabItem("CPI", state.cpiImgCanvas),
		container.NewTabItem("Income", state.incomeImgCanvas),
		container.NewTabItem("Countries", state.table),
	)
	tabs.SetTabLocation(container.TabLocationTop)
	tabs.OnSelected = func(ti *container.TabItem) {
		state.app.Preferences().SetInt("selectedTabIndex", tabs.SelectedIndex())
	}
	w.SetContent(container.NewBorder(top, nil, nil, nil, tabs))

	// Redraw charts on window resize so they scale with width
	if w.Canvas() != nil {
		prevW := int(w.Canvas().Size().Width)
		done := make(chan struct{})
		w.SetOnClosed(func() {
			savePrefs(state)
			close(done)
		})
		go func() {
			t := time.NewTicker(300 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					c := w.Canvas()
					if c == nil {
						continue
					}
					curW := int(c.Size().Width)
					if curW != prevW {
						prevW = curW
						fyne.Do(func() {
							redrawCharts(state)
							applyTableColumnWidths(state)
						})
					}
				}
			}
		}()
	}

	// wire callbacks now that canvases exist
	viewRadio.OnChanged = func(v string) {
		if state.fig == nil {
			return
		}
		if v == viewSelectedLabel {
			state.fig.SetView(figure.ViewSelectedCountries)
		} else {
			state.fig.SetView(figure.ViewAllCountries)
		}
		savePrefs(state)
		redrawCharts(state)
		if state.overlay != nil {
			state.overlay.Refresh()
		}
	}
	crosshairChk.OnChanged = func(b bool) {
		state.crosshairEnabled = b
		savePrefs(state)
		if state.overlay != nil {
			state.overlay.enabled = b
			state.overlay.Refresh()
		}
	}
	hintsChk.OnChanged = func(b bool) {
		state.showHints = b
		savePrefs(state)
		redrawCharts(state)
	}
	reloadBtn.OnTapped = func() { loadAll(state) }

	loadPrefs(state, tabs)
	if state.overlay != nil {
		state.overlay.enabled = state.crosshairEnabled
	}
	loadAll(state)

	w.ShowAndRun()
}

// loadAll loads the datasets, joins them and rebuilds figure and countries.
// A failure here is a data/config mismatch and surfaces as an error dialog.
func loadAll(state *uiState) {
	factors, err := loadFactors(state.paths)
	if err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	state.factors = factors

	fig, err := buildFigure(factors, state.allowList)
	if err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	// keep the previously selected view across reloads
	if state.fig != nil {
		fig.SetView(state.fig.View())
	} else if state.viewRadio != nil && state.viewRadio.Selected == viewSelectedLabel {
		fig.SetView(figure.ViewSelectedCountries)
	}
	state.fig = fig

	countries, err := sources.SelectedCountries(state.allowList, factors)
	if err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	state.countries = countries

	fmt.Printf("[viewer] loaded %d joined countries, %d selected\n", state.fig.All.Len(), len(state.countries))
	if state.table != nil {
		state.table.Refresh()
	}
	redrawCharts(state)
	if state.overlay != nil {
		state.overlay.Refresh()
	}
}

func loadFactors(p datasetPaths) (sources.Factors, error) {
	fi, err := sources.LoadFoodInsecurity(p.food)
	if err != nil {
		return sources.Factors{}, err
	}
	pops, err := sources.LoadPopulations(p.population)
	if err != nil {
		return sources.Factors{}, err
	}
	cc, err := sources.LoadConfirmedCases(p.cases, pops)
	if err != nil {
		return sources.Factors{}, err
	}
	un, err := sources.LoadUnemployment(p.unemployment)
	if err != nil {
		return sources.Factors{}, err
	}
	cpi, err := sources.LoadCPI(p.cpi)
	if err != nil {
		return sources.Factors{}, err
	}
	incomes, err := sources.LoadIncomes(p.income)
	if err != nil {
		return sources.Factors{}, err
	}
	rates, err := sources.LoadExchangeRates(p.rates)
	if err != nil {
		return sources.Factors{}, err
	}
	return sources.Factors{
		FoodInsecurity: fi,
		ConfirmedCases: cc,
		Populations:    pops,
		Unemployment:   un,
		CPI:            cpi,
		Income:         sources.IncomeUSD(incomes, rates),
	}, nil
}

// buildFigure runs the data join and shapes both traces.
func buildFigure(f sources.Factors, allowList []string) (*figure.Figure, error) {
	all := dataset.BuildAllCountries(f.FoodInsecurity, f.ConfirmedCases)
	selected, err := dataset.BuildSelected(all, allowList)
	if err != nil {
		return nil, err
	}
	return figure.NewFigure(figure.BuildAllCountriesTrace(all), figure.BuildSelectedTrace(selected)), nil
}

func redrawCharts(state *uiState) {
	cw, chh := chartSize(state)
	if img := renderFigureChart(state); img != nil && state.chartImgCanvas != nil {
		state.chartImgCanvas.Image = img
		state.chartImgCanvas.SetMinSize(fyne.NewSize(float32(cw), float32(chh)))
		state.chartImgCanvas.Refresh()
	}
	if img := renderUnemploymentChart(state); img != nil && state.unempImgCanvas != nil {
		state.unempImgCanvas.Image = img
		state.unempImgCanvas.SetMinSize(fyne.NewSize(float32(cw), float32(chh)))
		state.unempImgCanvas.Refresh()
	}
	if img := renderCPIChart(state); img != nil && state.cpiImgCanvas != nil {
		state.cpiImgCanvas.Image = img
		state.cpiImgCanvas.SetMinSize(fyne.NewSize(float32(cw), float32(chh)))
		state.cpiImgCanvas.Refresh()
	}
	if img := renderIncomeChart(state); img != nil && state.incomeImgCanvas != nil {
		state.incomeImgCanvas.Image = img
		state.incomeImgCanvas.SetMinSize(fyne.NewSize(float32(cw), float32(chh)))
		state.incomeImgCanvas.Refresh()
	}
	if state.overlay != nil {
		state.overlay.Refresh()
	}
}

// chartSize computes a chart size based on the current window width so charts
// use the available horizontal space.
func chartSize(state *uiState) (int, int) {
	if state == nil || state.window == nil || state.window.Canvas() == nil {
		return uihelpers.ComputeChartDimensions(1000)
	}
	sz := state.window.Canvas().Size()
	return uihelpers.ComputeChartDimensions(int(sz.Width*0.95) - 12)
}

func renderFigureChart(state *uiState) image.Image {
	cw, chh := chartSize(state)
	if state.fig == nil {
		return blank(cw, chh)
	}
	img, err := state.fig.Render(cw, chh)
	if err != nil {
		fmt.Printf("[viewer] chart render error: %v; showing blank fallback\n", err)
		return blank(cw, chh)
	}
	if state.showHints {
		if state.fig.View() == figure.ViewSelectedCountries {
			return drawHint(img, "Hint: line order follows confirmed-case rates; a rising line suggests insecurity grows with case load.")
		}
		return drawHint(img, "Hint: each marker is one country at the end of 2020. Hover with the crosshair for exact rates.")
	}
	return img
}

// renderUnemploymentChart draws confirmed cases vs unemployment for the
// selected countries, with a least-squares fit overlaid.
func renderUnemploymentChart(state *uiState) image.Image {
	cw, chh := chartSize(state)
	if len(state.countries) < 2 {
		return blank(cw, chh)
	}
	type pt struct {
		cases, unemployment float64
		name                string
	}
	pts := make([]pt, 0, len(state.countries))
	for _, c := range state.countries {
		pts = append(pts, pt{cases: c.ConfirmedCases, unemployment: c.Unemployment, name: c.Name})
	}
	sort.Slice(pts, func(i, j int) bool {
		a, b := pts[i], pts[j]
		if a.cases != b.cases {
			return a.cases < b.cases
		}
		if a.unemployment != b.unemployment {
			return a.unemployment < b.unemployment
		}
		return a.name < b.name
	})
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.cases / 100
		ys[i] = p.unemployment / 100
	}

	series := []chart.Series{chart.ContinuousSeries{
		Name:    "Selected Countries",
		XValues: xs,
		YValues: ys,
		Style:   chart.Style{StrokeWidth: 2, StrokeColor: chart.ColorBlue, DotWidth: 5, DotColor: chart.ColorBlue},
	}}
	maxY := ys[len(ys)-1]
	for _, y := range ys {
		if y > maxY {
			maxY = y
		}
	}
	if slope, intercept, ok := figure.FitLine(xs, ys); ok {
		fx, fy := figure.LinePoints(slope, intercept, xs[0], xs[len(xs)-1], maxY*1.5, 50)
		if len(fx) >= 2 {
			series = append(series, chart.ContinuousSeries{
				Name:    "Line of Best Fit",
				XValues: fx,
				YValues: fy,
				Style:   chart.Style{StrokeWidth: 2, StrokeColor: chart.ColorRed},
			})
		}
	}

	xRange, xTicks := figure.PercentAxis(xs[len(xs)-1], 6)
	yRange, yTicks := figure.PercentAxis(maxY, 6)
	ch := chart.Chart{
		Title:      "Confirmed COVID-19 Cases vs Unemployment",
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: "Confirmed Cases (%)", Range: xRange, Ticks: xTicks},
		YAxis:      chart.YAxis{Name: "Unemployment (%)", Range: yRange, Ticks: yTicks},
		Series:     series,
		Width:      cw,
		Height:     chh,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	img, err := renderChartPNG(ch)
	if err != nil {
		fmt.Printf("[viewer] unemployment chart render error: %v; showing blank fallback\n", err)
		return blank(cw, chh)
	}
	if state.showHints {
		return drawHint(img, "Hint: the red line is a least-squares fit across the selected countries.")
	}
	return img
}

// renderCPIChart draws confirmed cases vs the food consumer-price change for
// the selected countries.
func renderCPIChart(state *uiState) image.Image {
	cw, chh := chartSize(state)
	if len(state.countries) == 0 {
		return blank(cw, chh)
	}
	type pt struct {
		cases, cpi float64
		name       string
	}
	pts := make([]pt, 0, len(state.countries))
	for _, c := range state.countries {
		pts = append(pts, pt{cases: c.ConfirmedCases, cpi: c.CPI, name: c.Name})
	}
	sort.Slice(pts, func(i, j int) bool {
		a, b := pts[i], pts[j]
		if a.cases != b.cases {
			return a.cases < b.cases
		}
		if a.cpi != b.cpi {
			return a.cpi < b.cpi
		}
		return a.name < b.name
	})
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	maxY := 0.0
	for i, p := range pts {
		xs[i] = p.cases / 100
		ys[i] = p.cpi / 100
		if ys[i] > maxY {
			maxY = ys[i]
		}
	}

	xRange, xTicks := figure.PercentAxis(xs[len(xs)-1], 6)
	yRange, yTicks := figure.PercentAxis(maxY, 6)
	ch := chart.Chart{
		Title:      "Confirmed COVID-19 Cases vs Consumer Price Index",
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: "Confirmed Cases (%)", Range: xRange, Ticks: xTicks},
		YAxis:      chart.YAxis{Name: "Consumer Price Index (%)", Range: yRange, Ticks: yTicks},
		Series: []chart.Series{chart.ContinuousSeries{
			Name:    "Selected Countries",
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeWidth: 0, DotWidth: 5, DotColor: chart.ColorBlue},
		}},
		Width:  cw,
		Height: chh,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	img, err := renderChartPNG(ch)
	if err != nil {
		fmt.Printf("[viewer] CPI chart render error: %v; showing blank fallback\n", err)
		return blank(cw, chh)
	}
	if state.showHints {
		return drawHint(img, "Hint: CPI is the 2020 change in food prices against a 2015 base of 100.")
	}
	return img
}

// renderIncomeChart draws confirmed cases vs average annual income in USD for
// the selected countries. Incomes stay in dollars, so only the x axis is a
// percent axis.
func renderIncomeChart(state *uiState) image.Image {
	cw, chh := chartSize(state)
	if len(state.countries) == 0 {
		return blank(cw, chh)
	}
	xs := make([]float64, len(state.countries))
	ys := make([]float64, len(state.countries))
	maxX := 0.0
	for i, c := range state.countries {
		xs[i] = c.ConfirmedCases / 100
		ys[i] = c.Income
		if xs[i] > maxX {
			maxX = xs[i]
		}
	}

	xRange, xTicks := figure.PercentAxis(maxX, 6)
	ch := chart.Chart{
		Title:      "Confirmed COVID-19 Cases vs Income",
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: "Confirmed Cases (%)", Range: xRange, Ticks: xTicks},
		YAxis:      chart.YAxis{Name: "Income (USD)"},
		Series: []chart.Series{chart.ContinuousSeries{
			Name:    "Selected Countries",
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeWidth: 0, DotWidth: 5, DotColor: chart.ColorBlue},
		}},
		Width:  cw,
		Height: chh,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	img, err := renderChartPNG(ch)
	if err != nil {
		fmt.Printf("[viewer] income chart render error: %v; showing blank fallback\n", err)
		return blank(cw, chh)
	}
	if state.showHints {
		return drawHint(img, "Hint: incomes are 2020 average annual wages converted at year-end exchange rates.")
	}
	return img
}

func applyTableColumnWidths(state *uiState) {
	if state == nil || state.table == nil {
		return
	}
	winW := float32(1000)
	if state.window != nil && state.window.Canvas() != nil {
		winW = state.window.Canvas().Size().Width
	}
	widths := uihelpers.ComputeTableColumnWidths(winW)
	for i, w := range widths {
		state.table.SetColumnWidth(i, float32(w))
	}
	state.table.Refresh()
}

// renderChartPNG renders a go-chart chart and decodes it back into an image.
func renderChartPNG(ch chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}

// drawHint draws a small hint string onto the provided image near the bottom-left.
func drawHint(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	pad := 6
	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	shadowCol := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 180})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	drShadow := &font.Drawer{Dst: rgba, Src: shadowCol, Face: face, Dot: fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)}}
	drShadow.DrawString(text)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}

// prefs
func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	view := viewAllLabel
	if state.fig != nil && state.fig.View() == figure.ViewSelectedCountries {
		view = viewSelectedLabel
	}
	prefs.SetString("viewMode", view)
	prefs.SetBool("crosshair", state.crosshairEnabled)
	prefs.SetBool("showHints", state.showHints)
}

func loadPrefs(state *uiState, tabs *container.AppTabs) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	if v := prefs.StringWithFallback("viewMode", viewAllLabel); v == viewSelectedLabel {
		if state.viewRadio != nil {
			state.viewRadio.Selected = viewSelectedLabel
			state.viewRadio.Refresh()
		}
	}
	state.crosshairEnabled = prefs.BoolWithFallback("crosshair", state.crosshairEnabled)
	state.showHints = prefs.BoolWithFallback("showHints", state.showHints)
	if tabs != nil {
		idx := prefs.IntWithFallback("selectedTabIndex", 0)
		if idx >= 0 && idx < len(tabs.Items) {
			tabs.SelectIndex(idx)
		}
	}
}
