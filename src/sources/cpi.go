package sources

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Column layout of the FAOSTAT food consumer-price-index export: one row per
// country and month, country name in the fourth column, index value in the
// twelfth. The index uses 2015 = 100 as its base.
const (
	faostatCountryCol = 3
	faostatValueCol   = 11
	cpiBaseValue      = 100
)

// LoadCPI reads the FAOSTAT monthly food CPI CSV and returns each country's
// 2020 price change as a whole percent: the mean of the monthly index values
// minus the base, truncated.
func LoadCPI(path string) (map[string]float64, error) {
	start := time.Now()

	rows, err := readCSVSkipping(path, 1)
	if err != nil {
		return nil, err
	}
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, row := range rows {
		if len(row) <= faostatValueCol {
			continue
		}
		country := row[faostatCountryCol]
		if country == "" {
			continue
		}
		v, err := strconv.ParseFloat(row[faostatValueCol], 64)
		if err != nil {
			Warnf("skipping %q: bad CPI value %q", country, row[faostatValueCol])
			continue
		}
		sums[country] += v
		counts[country]++
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("no CPI rows in %q", path)
	}
	cpi := make(map[string]float64, len(counts))
	for country, n := range counts {
		cpi[country] = math.Trunc(sums[country]/float64(n) - cpiBaseValue)
	}
	Debugf("CPI table: %d countries in %s", len(cpi), time.Since(start).Round(time.Millisecond))
	return cpi, nil
}
