package db_models

import (
	"math"
	"testing"
	"time"
)

func locationAt(name string, lat, lng float64) Location {
	return Location{
		Name:      name,
		Latitude:  lat,
		Longitude: lng,
		Category:  CategoryAttraction,
	}
}

func newTestItinerary(destinations ...Location) *Itinerary {
	return NewItinerary(
		"Test trip", "",
		destinations,
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
		StyleBalanced, TransportMixed, nil, "",
	)
}

func TestTotalDistanceWithAtMostOneDestination(t *testing.T) {
	empty := newTestItinerary()
	if empty.TotalDistanceKm != 0 {
		t.Fatalf("empty itinerary distance = %f, want 0", empty.TotalDistanceKm)
	}
	if !empty.EcoFriendly {
		t.Fatal("empty itinerary should be eco-friendly")
	}
	if empty.EcoScore != 5 {
		t.Fatalf("empty itinerary eco score = %d, want 5", empty.EcoScore)
	}

	single := newTestItinerary(locationAt("A", 10, 10))
	if single.TotalDistanceKm != 0 {
		t.Fatalf("single-destination distance = %f, want 0", single.TotalDistanceKm)
	}
}

func TestCollinearEquatorMetrics(t *testing.T) {
	it := newTestItinerary(
		locationAt("A", 0, 0),
		locationAt("B", 0, 1),
		locationAt("C", 0, 2),
	)

	wantDistance := 222.4
	if math.Abs(it.TotalDistanceKm-wantDistance) > wantDistance*0.01 {
		t.Fatalf("total distance = %f, want %f within 1%%", it.TotalDistanceKm, wantDistance)
	}

	wantCarbon := it.TotalDistanceKm * TripEmissionFactorKgPerKm
	if math.Abs(it.EstimatedCarbonKg-wantCarbon) > 1e-9 {
		t.Fatalf("carbon = %f, want %f", it.EstimatedCarbonKg, wantCarbon)
	}
	if !it.EcoFriendly {
		t.Fatalf("carbon %f <= %f should be eco-friendly", it.EstimatedCarbonKg, EcoFriendlyMaxCarbonKg)
	}
}

func TestMalformedSegmentIsSkippedNotFatal(t *testing.T) {
	it := newTestItinerary(
		locationAt("A", 0, 0),
		locationAt("broken", math.NaN(), 500),
		locationAt("B", 0, 1),
	)

	if math.IsNaN(it.TotalDistanceKm) || math.IsInf(it.TotalDistanceKm, 0) {
		t.Fatalf("total distance must stay finite, got %f", it.TotalDistanceKm)
	}
	// Both segments touch the broken destination, so nothing accumulates.
	if it.TotalDistanceKm != 0 {
		t.Fatalf("total distance = %f, want 0 with both segments skipped", it.TotalDistanceKm)
	}
}

func TestCarbonFootprintGuards(t *testing.T) {
	inf := math.Inf(1)
	neg := -3.0
	ok := 2.5

	it := newTestItinerary(
		Location{Name: "inf", Latitude: 0, Longitude: 0, CarbonFootprintKg: &inf},
		Location{Name: "neg", Latitude: 0, Longitude: 0.001, CarbonFootprintKg: &neg},
		Location{Name: "ok", Latitude: 0, Longitude: 0.002, CarbonFootprintKg: &ok},
	)

	if math.IsNaN(it.EstimatedCarbonKg) || math.IsInf(it.EstimatedCarbonKg, 0) {
		t.Fatalf("carbon must stay finite, got %f", it.EstimatedCarbonKg)
	}
	if it.EstimatedCarbonKg < 0 {
		t.Fatalf("carbon = %f, want >= 0", it.EstimatedCarbonKg)
	}
	if it.EstimatedCarbonKg < ok {
		t.Fatalf("carbon = %f, want at least the one well-formed footprint %f", it.EstimatedCarbonKg, ok)
	}
}

func TestEstimatedCostTable(t *testing.T) {
	it := newTestItinerary(
		Location{Name: "free", PriceLevel: PriceFree},
		Location{Name: "budget", PriceLevel: PriceBudget},
		Location{Name: "moderate", PriceLevel: PriceModerate},
		Location{Name: "expensive", PriceLevel: PriceExpensive},
		Location{Name: "luxury", PriceLevel: PriceLuxury},
	)
	if it.EstimatedCost != 0+15+35+75+150 {
		t.Fatalf("cost = %f, want 275", it.EstimatedCost)
	}
}

func TestEcoScoreFormula(t *testing.T) {
	cases := []struct {
		carbon float64
		want   int
	}{
		{0, 5},
		{10, 5},
		{50, 3}, // round(2.5) rounds half away from zero
		{80, 1},
		{100, 0},
		{250, 0},
	}
	for _, tc := range cases {
		if got := EcoScore(tc.carbon); got != tc.want {
			t.Fatalf("EcoScore(%f) = %d, want %d", tc.carbon, got, tc.want)
		}
	}
}

func TestEcoFriendlyFlagMatchesThreshold(t *testing.T) {
	heavy := 60.0
	it := newTestItinerary(
		Location{Name: "heavy", Latitude: 0, Longitude: 0, CarbonFootprintKg: &heavy},
	)
	if it.EcoFriendly != (it.EstimatedCarbonKg <= EcoFriendlyMaxCarbonKg) {
		t.Fatal("eco flag inconsistent with threshold")
	}
	if it.EcoFriendly {
		t.Fatalf("carbon %f should not be eco-friendly", it.EstimatedCarbonKg)
	}
}

func TestRecomputeDerivedIsIdempotent(t *testing.T) {
	fp := 1.5
	it := newTestItinerary(
		Location{Name: "A", Latitude: 0, Longitude: 0, CarbonFootprintKg: &fp, PriceLevel: PriceModerate},
		Location{Name: "B", Latitude: 0, Longitude: 1, PriceLevel: PriceBudget},
	)

	it.RecomputeDerived()
	first := *it
	it.RecomputeDerived()

	if it.TotalDistanceKm != first.TotalDistanceKm ||
		it.EstimatedCarbonKg != first.EstimatedCarbonKg ||
		it.EstimatedCost != first.EstimatedCost ||
		it.EcoFriendly != first.EcoFriendly ||
		it.EcoScore != first.EcoScore {
		t.Fatal("recompute changed derived fields without a mutation")
	}
}

func TestRemoveDestinationAtOutOfRangeIsFullNoOp(t *testing.T) {
	it := newTestItinerary(
		locationAt("A", 0, 0),
		locationAt("B", 0, 1),
		locationAt("C", 0, 2),
	)
	it.UpdatedAt = 12345

	it.RemoveDestinationAt(5)
	if len(it.Destinations) != 3 {
		t.Fatalf("destination count = %d, want 3", len(it.Destinations))
	}
	if it.UpdatedAt != 12345 {
		t.Fatal("out-of-range remove must not bump UpdatedAt")
	}

	it.RemoveDestinationAt(-1)
	if len(it.Destinations) != 3 || it.UpdatedAt != 12345 {
		t.Fatal("negative index remove must be a no-op")
	}
}

func TestRemoveDestinationAtRecomputes(t *testing.T) {
	it := newTestItinerary(
		locationAt("A", 0, 0),
		locationAt("B", 0, 1),
		locationAt("C", 0, 2),
	)
	before := it.TotalDistanceKm

	it.RemoveDestinationAt(2)
	if len(it.Destinations) != 2 {
		t.Fatalf("destination count = %d, want 2", len(it.Destinations))
	}
	if it.TotalDistanceKm >= before {
		t.Fatalf("distance = %f, want less than %f after removal", it.TotalDistanceKm, before)
	}
}

func TestAddDestinationRecomputes(t *testing.T) {
	it := newTestItinerary(locationAt("A", 0, 0))
	it.AddDestination(locationAt("B", 0, 1))

	if len(it.Destinations) != 2 {
		t.Fatalf("destination count = %d, want 2", len(it.Destinations))
	}
	if it.TotalDistanceKm == 0 {
		t.Fatal("distance should be recomputed after adding a second destination")
	}
}

func TestReorderDestinationsMoveSemantics(t *testing.T) {
	it := newTestItinerary(
		locationAt("A", 0, 0),
		locationAt("B", 0, 1),
		locationAt("C", 0, 2),
		locationAt("D", 0, 3),
	)

	// Move A before the element at index 3: A B C D -> B C A D.
	it.ReorderDestinations([]int{0}, 3)

	got := []string{}
	for _, d := range it.Destinations {
		got = append(got, d.Name)
	}
	want := []string{"B", "C", "A", "D"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestReorderDestinationsOutOfRangeIsNoOp(t *testing.T) {
	it := newTestItinerary(
		locationAt("A", 0, 0),
		locationAt("B", 0, 1),
	)
	it.UpdatedAt = 777

	it.ReorderDestinations([]int{7, -2}, 0)

	if it.Destinations[0].Name != "A" || it.Destinations[1].Name != "B" {
		t.Fatal("invalid reorder must leave order untouched")
	}
	if it.UpdatedAt != 777 {
		t.Fatal("invalid reorder must not bump UpdatedAt")
	}
}

func TestDayCount(t *testing.T) {
	day := int64(86400)
	cases := []struct {
		name       string
		start, end int64
		want       int
	}{
		{"same instant", 1000, 1000, 1},
		{"one full day", 1000, 1000 + day, 2},
		{"partial day", 1000, 1000 + day/2, 1},
		{"end before start clamps", 5000, 1000, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DayCount(tc.start, tc.end); got != tc.want {
				t.Fatalf("DayCount = %d, want %d", got, tc.want)
			}
		})
	}
}
