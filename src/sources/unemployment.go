package sources

import (
	"fmt"
	"strconv"
	"time"
)

// LoadUnemployment reads the World Bank unemployment CSV (same shape as the
// population export: 5 preamble lines, country in the first column, the 2020
// rate in the second-to-last). Rates are percentages in [0,100].
func LoadUnemployment(path string) (map[string]float64, error) {
	start := time.Now()

	rows, err := readCSVSkipping(path, worldBankPreambleLines)
	if err != nil {
		return nil, err
	}
	rates := map[string]float64{}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		rate, err := strconv.ParseFloat(row[len(row)-2], 64)
		if err != nil || rate == 0 {
			continue
		}
		rates[row[0]] = rate
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("no unemployment rows in %q", path)
	}
	Debugf("unemployment table: %d countries in %s", len(rates), time.Since(start).Round(time.Millisecond))
	return rates, nil
}
