package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/foodinsight/FoodInsecurityViewer/src/dataset"
	"github.com/foodinsight/FoodInsecurityViewer/src/figure"
	"github.com/foodinsight/FoodInsecurityViewer/src/sources"
)

func fixturePaths() datasetPaths {
	td := filepath.Join("..", "..", "src", "sources", "testdata")
	return datasetPaths{
		food:         filepath.Join(td, "food_security.json"),
		cases:        filepath.Join(td, "confirmed_cases.csv"),
		population:   filepath.Join(td, "population.csv"),
		unemployment: filepath.Join(td, "unemployment.csv"),
		cpi:          filepath.Join(td, "cpi.csv"),
		income:       filepath.Join(td, "income.csv"),
		rates:        filepath.Join(td, "exchange_rates.csv"),
	}
}

var fixtureAllowList = []string{"Canada", "Japan", "United States"}

func TestLoadFactors_FromFixtures(t *testing.T) {
	f, err := loadFactors(fixturePaths())
	if err != nil {
		t.Fatalf("loadFactors: %v", err)
	}
	if len(f.FoodInsecurity) == 0 || len(f.ConfirmedCases) == 0 {
		t.Fatalf("factors incomplete: %+v", f)
	}
}

func TestBuildFigure_InitialViewAndToggle(t *testing.T) {
	f, err := loadFactors(fixturePaths())
	if err != nil {
		t.Fatalf("loadFactors: %v", err)
	}
	fig, err := buildFigure(f, fixtureAllowList)
	if err != nil {
		t.Fatalf("buildFigure: %v", err)
	}
	if fig.View() != figure.ViewAllCountries {
		t.Fatalf("figure must start in all-countries view")
	}
	if fig.Selected.Len() != len(fixtureAllowList) {
		t.Fatalf("selected trace length %d, want %d", fig.Selected.Len(), len(fixtureAllowList))
	}
	fig.Toggle()
	if !fig.Selected.Visible || fig.All.Visible {
		t.Fatalf("toggle must flip both visibility flags")
	}
}

func TestBuildFigure_UnknownCountryFails(t *testing.T) {
	f, err := loadFactors(fixturePaths())
	if err != nil {
		t.Fatalf("loadFactors: %v", err)
	}
	_, err = buildFigure(f, []string{"Canada", "Mars"})
	if err == nil {
		t.Fatalf("expected lookup failure for Mars")
	}
	if !errors.Is(err, dataset.ErrCountryMissing) {
		t.Fatalf("expected ErrCountryMissing, got %v", err)
	}
}

// Smoke test: both chart renderers must produce an image for a window-less
// state, including the blank fallbacks.
func TestRenderCharts_Smoke(t *testing.T) {
	f, err := loadFactors(fixturePaths())
	if err != nil {
		t.Fatalf("loadFactors: %v", err)
	}
	fig, err := buildFigure(f, fixtureAllowList)
	if err != nil {
		t.Fatalf("buildFigure: %v", err)
	}
	countries, err := sources.SelectedCountries(fixtureAllowList, f)
	if err != nil {
		t.Fatalf("SelectedCountries: %v", err)
	}
	s := &uiState{fig: fig, countries: countries, showHints: true}

	if img := renderFigureChart(s); img == nil {
		t.Fatalf("figure chart returned nil image")
	}
	s.fig.SetView(figure.ViewSelectedCountries)
	if img := renderFigureChart(s); img == nil {
		t.Fatalf("selected view returned nil image")
	}
	if img := renderUnemploymentChart(s); img == nil {
		t.Fatalf("unemployment chart returned nil image")
	}
	if img := renderCPIChart(s); img == nil {
		t.Fatalf("CPI chart returned nil image")
	}
	if img := renderIncomeChart(s); img == nil {
		t.Fatalf("income chart returned nil image")
	}
}

func TestRenderCharts_EmptyStateFallsBackToBlank(t *testing.T) {
	s := &uiState{}
	if img := renderFigureChart(s); img == nil {
		t.Fatalf("expected blank fallback with no figure")
	}
	if img := renderUnemploymentChart(s); img == nil {
		t.Fatalf("expected blank fallback with no countries")
	}
	if img := renderCPIChart(s); img == nil {
		t.Fatalf("expected blank CPI fallback with no countries")
	}
	if img := renderIncomeChart(s); img == nil {
		t.Fatalf("expected blank income fallback with no countries")
	}
}
