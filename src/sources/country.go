package sources

import (
	"errors"
	"fmt"
)

// ErrCountryUnavailable is returned when a dataset has no row for a requested
// country. Factor lookups for explicitly requested countries are fail-fast.
var ErrCountryUnavailable = errors.New("data on this country is not available")

// Country bundles the pandemic factors of a single country.
//
// Invariants: Name is non-empty, Population > 0, and the percentage fields
// are raw 0..100 values.
type Country struct {
	Name           string
	Population     int
	FoodInsecurity float64 // percent of population that is food insecure
	ConfirmedCases float64 // confirmed cases as percent of population
	Unemployment   float64 // unemployment rate, percent
	CPI            float64 // 2020 food consumer-price change, whole percent
	Income         float64 // average annual income, USD
}

// Factors holds the loaded per-country mappings the viewer draws from.
type Factors struct {
	FoodInsecurity map[string]float64
	ConfirmedCases map[string]float64
	Populations    map[string]int
	Unemployment   map[string]float64
	CPI            map[string]float64
	Income         map[string]float64
}

// NewCountry assembles a Country from the loaded factors. Every factor must be
// present; a gap means the configured country list and the datasets disagree.
func NewCountry(name string, f Factors) (Country, error) {
	c := Country{Name: name}
	var ok bool
	if c.Population, ok = f.Populations[name]; !ok || c.Population <= 0 {
		return Country{}, fmt.Errorf("population of %q: %w", name, ErrCountryUnavailable)
	}
	if c.FoodInsecurity, ok = f.FoodInsecurity[name]; !ok {
		return Country{}, fmt.Errorf("food insecurity of %q: %w", name, ErrCountryUnavailable)
	}
	if c.ConfirmedCases, ok = f.ConfirmedCases[name]; !ok {
		return Country{}, fmt.Errorf("confirmed cases of %q: %w", name, ErrCountryUnavailable)
	}
	if c.Unemployment, ok = f.Unemployment[name]; !ok {
		return Country{}, fmt.Errorf("unemployment of %q: %w", name, ErrCountryUnavailable)
	}
	if c.CPI, ok = f.CPI[name]; !ok {
		return Country{}, fmt.Errorf("consumer price index of %q: %w", name, ErrCountryUnavailable)
	}
	if c.Income, ok = f.Income[name]; !ok {
		return Country{}, fmt.Errorf("income of %q: %w", name, ErrCountryUnavailable)
	}
	return c, nil
}

// SelectedCountries builds a Country per allow-listed name, in list order.
func SelectedCountries(names []string, f Factors) ([]Country, error) {
	out := make([]Country, 0, len(names))
	for _, name := range names {
		c, err := NewCountry(name, f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
