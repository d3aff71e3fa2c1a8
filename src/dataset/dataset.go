package dataset

import (
	"errors"
	"fmt"
	"sort"
)

// ErrCountryMissing is returned by BuildSelected when a requested country is
// absent from the joined dataset. This indicates a data/configuration mismatch
// and is intentionally fatal for callers.
var ErrCountryMissing = errors.New("country not present in joined dataset")

// Point holds the two raw percentages for one country, both on a 0..100 scale.
// Scaling to fractional values for display is the figure layer's job.
type Point struct {
	ConfirmedCases float64 // confirmed COVID-19 cases as a percent of population
	FoodInsecurity float64 // food-insecure share of population
}

// CountryMetric is one plot-ready entry of the selected-countries series.
type CountryMetric struct {
	ConfirmedCases float64
	FoodInsecurity float64
	Name           string
}

// AllCountries maps country name to its metric pair. Key order is irrelevant;
// the map is built once and not mutated afterwards.
type AllCountries map[string]Point

// BuildAllCountries joins the two input mappings on country name.
// It walks the food-insecurity keys and keeps only countries that also appear
// in the confirmed-cases mapping; countries present in just one source are
// dropped silently. Both inputs are expected to be non-empty.
func BuildAllCountries(foodInsecurity, confirmedCases map[string]float64) AllCountries {
	all := make(AllCountries, len(foodInsecurity))
	for country, fi := range foodInsecurity {
		cc, ok := confirmedCases[country]
		if !ok {
			continue
		}
		all[country] = Point{ConfirmedCases: cc, FoodInsecurity: fi}
	}
	return all
}

// BuildSelected extracts the allow-listed countries from the joined dataset and
// returns them sorted ascending by (confirmed cases, food insecurity, name).
// Unlike the join above, a missing country here is an error: the allow-list is
// configuration and must be a subset of the joined countries.
func BuildSelected(all AllCountries, allowList []string) ([]CountryMetric, error) {
	selected := make([]CountryMetric, 0, len(allowList))
	for _, name := range allowList {
		p, ok := all[name]
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrCountryMissing)
		}
		selected = append(selected, CountryMetric{
			ConfirmedCases: p.ConfirmedCases,
			FoodInsecurity: p.FoodInsecurity,
			Name:           name,
		})
	}
	sort.Slice(selected, func(i, j int) bool {
		a, b := selected[i], selected[j]
		if a.ConfirmedCases != b.ConfirmedCases {
			return a.ConfirmedCases < b.ConfirmedCases
		}
		if a.FoodInsecurity != b.FoodInsecurity {
			return a.FoodInsecurity < b.FoodInsecurity
		}
		return a.Name < b.Name
	})
	return selected, nil
}

// Names returns the joined country names in sorted order. Handy for
// deterministic iteration when rendering or dumping the map.
func (a AllCountries) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
