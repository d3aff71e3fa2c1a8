package dataset

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuildAllCountries_KeyIntersection(t *testing.T) {
	foodInsecurity := map[string]float64{"Canada": 15.0, "Japan": 8.0, "Ghana": 40.0}
	confirmedCases := map[string]float64{"Canada": 3.2, "Japan": 1.1, "France": 4.4}

	all := BuildAllCountries(foodInsecurity, confirmedCases)

	want := AllCountries{
		"Canada": {ConfirmedCases: 3.2, FoodInsecurity: 15.0},
		"Japan":  {ConfirmedCases: 1.1, FoodInsecurity: 8.0},
	}
	if !reflect.DeepEqual(all, want) {
		t.Fatalf("join mismatch: got %v want %v", all, want)
	}
	// Ghana only in food insecurity, France only in confirmed cases: both dropped.
	if _, ok := all["Ghana"]; ok {
		t.Fatalf("Ghana should have been filtered out")
	}
	if _, ok := all["France"]; ok {
		t.Fatalf("France should have been filtered out")
	}
}

func TestBuildAllCountries_OutputKeysSubsetOfFoodInsecurity(t *testing.T) {
	foodInsecurity := map[string]float64{"A": 1, "B": 2, "C": 3}
	confirmedCases := map[string]float64{"A": 10, "B": 20, "C": 30, "D": 40}

	all := BuildAllCountries(foodInsecurity, confirmedCases)
	if len(all) != len(foodInsecurity) {
		t.Fatalf("expected %d joined countries, got %d", len(foodInsecurity), len(all))
	}
	for name := range all {
		if _, ok := foodInsecurity[name]; !ok {
			t.Fatalf("joined key %q not in food-insecurity input", name)
		}
	}
}

func TestBuildAllCountries_Idempotent(t *testing.T) {
	foodInsecurity := map[string]float64{"Canada": 15.0, "Japan": 8.0}
	confirmedCases := map[string]float64{"Canada": 3.2, "Japan": 1.1}

	first := BuildAllCountries(foodInsecurity, confirmedCases)
	second := BuildAllCountries(foodInsecurity, confirmedCases)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("join is not idempotent: %v vs %v", first, second)
	}
}

func TestBuildSelected_SortedTupleOrder(t *testing.T) {
	all := AllCountries{
		"Canada":         {ConfirmedCases: 3.2, FoodInsecurity: 15.0},
		"Japan":          {ConfirmedCases: 1.1, FoodInsecurity: 8.0},
		"Australia":      {ConfirmedCases: 1.1, FoodInsecurity: 6.5},
		"United Kingdom": {ConfirmedCases: 3.2, FoodInsecurity: 5.0},
	}
	allowList := []string{"Canada", "Japan", "Australia", "United Kingdom"}

	sel, err := BuildSelected(all, allowList)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sel) != len(allowList) {
		t.Fatalf("expected %d entries, got %d", len(allowList), len(sel))
	}
	wantOrder := []string{"Australia", "Japan", "United Kingdom", "Canada"}
	for i, name := range wantOrder {
		if sel[i].Name != name {
			t.Fatalf("position %d: got %q want %q (full: %v)", i, sel[i].Name, name, sel)
		}
	}
	// Verify the full tuple ordering invariant, not just the example order.
	for i := 1; i < len(sel); i++ {
		a, b := sel[i-1], sel[i]
		if a.ConfirmedCases > b.ConfirmedCases {
			t.Fatalf("confirmed-cases order violated at %d: %v > %v", i, a, b)
		}
		if a.ConfirmedCases == b.ConfirmedCases && a.FoodInsecurity > b.FoodInsecurity {
			t.Fatalf("food-insecurity tie-break violated at %d: %v > %v", i, a, b)
		}
		if a.ConfirmedCases == b.ConfirmedCases && a.FoodInsecurity == b.FoodInsecurity && a.Name > b.Name {
			t.Fatalf("name tie-break violated at %d: %v > %v", i, a, b)
		}
	}
}

func TestBuildSelected_NameTieBreak(t *testing.T) {
	all := AllCountries{
		"B": {ConfirmedCases: 2.0, FoodInsecurity: 9.0},
		"A": {ConfirmedCases: 2.0, FoodInsecurity: 9.0},
	}
	sel, err := BuildSelected(all, []string{"B", "A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel[0].Name != "A" || sel[1].Name != "B" {
		t.Fatalf("expected name tie-break A before B, got %v", sel)
	}
}

func TestBuildSelected_MissingCountryFails(t *testing.T) {
	all := AllCountries{
		"Canada": {ConfirmedCases: 3.2, FoodInsecurity: 15.0},
	}
	_, err := BuildSelected(all, []string{"Canada", "Mars"})
	if err == nil {
		t.Fatalf("expected lookup failure for Mars")
	}
	if !errors.Is(err, ErrCountryMissing) {
		t.Fatalf("expected ErrCountryMissing, got %v", err)
	}
}

func TestBuildSelected_ExampleFromDatasets(t *testing.T) {
	foodInsecurity := map[string]float64{"Canada": 15.0, "Japan": 8.0, "Ghana": 40.0}
	confirmedCases := map[string]float64{"Canada": 3.2, "Japan": 1.1}

	all := BuildAllCountries(foodInsecurity, confirmedCases)
	sel, err := BuildSelected(all, []string{"Canada", "Japan"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []CountryMetric{
		{ConfirmedCases: 1.1, FoodInsecurity: 8.0, Name: "Japan"},
		{ConfirmedCases: 3.2, FoodInsecurity: 15.0, Name: "Canada"},
	}
	if !reflect.DeepEqual(sel, want) {
		t.Fatalf("selected mismatch: got %v want %v", sel, want)
	}
}

func TestNames_Sorted(t *testing.T) {
	all := AllCountries{"C": {}, "A": {}, "B": {}}
	names := all.Names()
	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("got %v want %v", names, want)
	}
}
