package sources

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"
)

// Column layout of the OWID confirmed-cases export. The file carries an
// 8-line preamble before the header row.
const (
	owidPreambleLines = 8
	owidISOCol        = 1
	owidCountryCol    = 2
	owidDateCol       = 3
	owidTotalCasesCol = 4
)

// snapshotDate is the single day the analysis is pinned to: the end of 2020,
// matching the 2020 food security index year.
const snapshotDate = "2020-12-31"

// LoadConfirmedCases reads the OWID cumulative-cases CSV and returns confirmed
// cases as a percent of each country's population, rounded to two decimals.
// Countries without a known population are dropped.
func LoadConfirmedCases(path string, populations map[string]int) (map[string]float64, error) {
	start := time.Now()

	rows, err := readCSVSkipping(path, owidPreambleLines)
	if err != nil {
		return nil, err
	}
	cases := map[string]float64{}
	for _, row := range rows {
		if len(row) <= owidTotalCasesCol {
			continue
		}
		if row[owidISOCol] == "" || row[owidDateCol] != snapshotDate || row[owidTotalCasesCol] == "" {
			continue
		}
		country := row[owidCountryCol]
		pop := populations[country]
		if pop == 0 {
			continue
		}
		confirmed, err := strconv.ParseFloat(row[owidTotalCasesCol], 64)
		if err != nil {
			Warnf("skipping %q: bad case count %q", country, row[owidTotalCasesCol])
			continue
		}
		cases[country] = Percentage(confirmed, float64(pop))
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("no confirmed-case rows for %s in %q", snapshotDate, path)
	}
	Infof("loaded confirmed cases for %d countries from %s in %s",
		len(cases), path, time.Since(start).Round(time.Millisecond))
	return cases, nil
}

// LoadPopulations reads the World Bank population CSV (5 preamble lines,
// country name in the first column, 2020 population in the second-to-last).
// The dataset stores South Korea as "Korea, Rep."; the friendlier name is
// added as an alias so lookups with either spelling work.
func LoadPopulations(path string) (map[string]int, error) {
	start := time.Now()

	rows, err := readCSVSkipping(path, worldBankPreambleLines)
	if err != nil {
		return nil, err
	}
	populations := map[string]int{}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		country := row[0]
		raw := row[len(row)-2]
		pop, err := strconv.Atoi(raw)
		if err != nil || pop <= 0 {
			continue
		}
		populations[country] = pop
	}
	if pop, ok := populations["Korea, Rep."]; ok {
		populations["South Korea"] = pop
	}
	if len(populations) == 0 {
		return nil, fmt.Errorf("no population rows in %q", path)
	}
	Debugf("population table: %d countries in %s", len(populations), time.Since(start).Round(time.Millisecond))
	return populations, nil
}

// Percentage returns numerator/denominator as a percent, rounded to two decimals.
func Percentage(numerator, denominator float64) float64 {
	return math.Round(numerator/denominator*100*100) / 100
}

const worldBankPreambleLines = 5

// readCSVSkipping parses a CSV file after discarding the given number of
// preamble lines. Records may have ragged lengths.
func readCSVSkipping(path string, skip int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	var rows [][]string
	for i := 0; ; i++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", path, err)
		}
		if i < skip {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
