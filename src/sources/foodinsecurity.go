package sources

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/anrid/xls"
)

// LoadFoodInsecurity reads the Global Food Security Index year-to-year table
// and returns food insecurity per country as a percentage in [0,100].
// The index reports a food *security* score out of 100, so insecurity is
// 100 minus the score, rounded to one decimal.
//
// Accepted inputs, selected by file extension:
//   - .json: the scraped feed, an array of single-entry objects mapping
//     country name to score (as a string)
//   - .xlsx / .xls: the same table exported as a workbook, country in the
//     first column and score in the second
func LoadFoodInsecurity(path string) (map[string]float64, error) {
	start := time.Now()

	scores := map[string]float64{}
	collect := func(country string, score float64) {
		scores[country] = round1(100 - score)
	}

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = foodSecurityFromJSON(path, collect)
	case ".xlsx":
		err = foodSecurityFromXLSX(path, collect)
	case ".xls":
		err = foodSecurityFromXLS(path, collect)
	default:
		return nil, fmt.Errorf("unsupported food security file %q", path)
	}
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return nil, fmt.Errorf("no food security scores found in %q", path)
	}
	Infof("loaded food insecurity for %d countries from %s in %s",
		len(scores), path, time.Since(start).Round(time.Millisecond))
	return scores, nil
}

func foodSecurityFromJSON(path string, collect func(string, float64)) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read food security feed: %w", err)
	}
	// One object per scraped table row, each holding a single country: score pair.
	var rows []map[string]string
	if err := json.Unmarshal(raw, &rows); err != nil {
		return fmt.Errorf("parse food security feed %q: %w", path, err)
	}
	for _, row := range rows {
		for country, raw := range row {
			score, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				Warnf("skipping %q: bad score %q", country, raw)
				continue
			}
			collect(country, score)
		}
	}
	return nil
}

func foodSecurityFromXLSX(path string, collect func(string, float64)) error {
	wb, err := xlsx.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open workbook %q: %w", path, err)
	}
	sheet := wb.GetSheetList()[0]
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	for _, r := range rows {
		collectWorkbookRow(r, collect)
	}
	return nil
}

func foodSecurityFromXLS(path string, collect func(string, float64)) error {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return fmt.Errorf("open workbook %q: %w", path, err)
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return fmt.Errorf("workbook %q has no sheets", path)
	}
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		var cols []string
		for j := 0; j <= row.LastCol(); j++ {
			cols = append(cols, row.Col(j))
		}
		collectWorkbookRow(cols, collect)
	}
	return nil
}

// collectWorkbookRow keeps rows shaped like [country, score, ...]; header and
// blank rows simply fail the parse and are skipped.
func collectWorkbookRow(cols []string, collect func(string, float64)) {
	if len(cols) < 2 {
		return
	}
	country := strings.TrimSpace(cols[0])
	if country == "" {
		return
	}
	score, err := strconv.ParseFloat(strings.TrimSpace(cols[1]), 64)
	if err != nil {
		return
	}
	collect(country, score)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
