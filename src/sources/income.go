package sources

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Column layout of the OECD average-annual-wage export: country name in the
// second column, observation year in the sixth, wage (in national currency)
// in the thirteenth.
const (
	wageCountryCol = 1
	wageYearCol    = 5
	wageValueCol   = 12
	wageYear       = "2020"
)

// Column layout of the Treasury exchange-rate report: country in the second
// column, units of national currency per US dollar in the fifth.
const (
	fxCountryCol = 1
	fxRateCol    = 4
)

// LoadIncomes reads the OECD wage CSV and returns the 2020 average annual
// income per country in its national currency, rounded to two decimals.
func LoadIncomes(path string) (map[string]float64, error) {
	start := time.Now()

	rows, err := readCSVSkipping(path, 1)
	if err != nil {
		return nil, err
	}
	incomes := map[string]float64{}
	for _, row := range rows {
		if len(row) <= wageValueCol || row[wageYearCol] != wageYear {
			continue
		}
		income, err := strconv.ParseFloat(row[wageValueCol], 64)
		if err != nil {
			Warnf("skipping %q: bad income %q", row[wageCountryCol], row[wageValueCol])
			continue
		}
		incomes[row[wageCountryCol]] = round2(income)
	}
	if len(incomes) == 0 {
		return nil, fmt.Errorf("no %s income rows in %q", wageYear, path)
	}
	Debugf("income table: %d countries in %s", len(incomes), time.Since(start).Round(time.Millisecond))
	return incomes, nil
}

// LoadExchangeRates reads the Treasury year-end exchange-rate CSV and returns
// national-currency-per-USD rates keyed by country.
func LoadExchangeRates(path string) (map[string]float64, error) {
	rows, err := readCSVSkipping(path, 1)
	if err != nil {
		return nil, err
	}
	rates := map[string]float64{}
	for _, row := range rows {
		if len(row) <= fxRateCol {
			continue
		}
		rate, err := strconv.ParseFloat(row[fxRateCol], 64)
		if err != nil || rate <= 0 {
			continue
		}
		rates[row[fxCountryCol]] = rate
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("no exchange-rate rows in %q", path)
	}
	return rates, nil
}

// IncomeUSD converts national-currency incomes to US dollars. Incomes are
// already in USD for the United States; every other country needs a rate, and
// countries without one are dropped.
func IncomeUSD(incomes, rates map[string]float64) map[string]float64 {
	usd := make(map[string]float64, len(incomes))
	for country, income := range incomes {
		if country == "United States" {
			usd[country] = income
			continue
		}
		rate, ok := rates[country]
		if !ok {
			Warnf("no exchange rate for %q, dropping its income", country)
			continue
		}
		usd[country] = round2(income / rate)
	}
	return usd
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
