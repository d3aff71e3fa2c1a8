package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/foodinsight/FoodInsecurityViewer/src/figure"
	"github.com/foodinsight/FoodInsecurityViewer/src/sources"
)

// RunScreenshotsMode renders the charts and writes them as PNGs under outDir.
// It runs headlessly without creating a UI window.
func RunScreenshotsMode(paths datasetPaths, allowList []string, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	factors, err := loadFactors(paths)
	if err != nil {
		return err
	}
	fig, err := buildFigure(factors, allowList)
	if err != nil {
		return err
	}
	countries, err := sources.SelectedCountries(allowList, factors)
	if err != nil {
		return err
	}
	st := &uiState{
		paths:     paths,
		allowList: allowList,
		factors:   factors,
		fig:       fig,
		countries: countries,
	}

	toRender := []struct {
		name string
		fn   func(*uiState) image.Image
	}{
		{"all_countries.png", func(s *uiState) image.Image {
			s.fig.SetView(figure.ViewAllCountries)
			return renderFigureChart(s)
		}},
		{"selected_countries.png", func(s *uiState) image.Image {
			s.fig.SetView(figure.ViewSelectedCountries)
			return renderFigureChart(s)
		}},
		{"unemployment.png", renderUnemploymentChart},
		{"cpi.png", renderCPIChart},
		{"income.png", renderIncomeChart},
	}

	for _, item := range toRender {
		img := item.fn(st)
		if img == nil {
			continue
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("png encode %s: %w", item.name, err)
		}
		outPath := filepath.Join(outDir, item.name)
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		sources.Infof("wrote %s", outPath)
	}
	return nil
}
