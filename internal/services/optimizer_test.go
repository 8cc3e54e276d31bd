package services

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"wander/internal/models/db_models"
)

func testLocation(name string, lat, lng float64) db_models.Location {
	loc := db_models.Location{
		Name:      name,
		Latitude:  lat,
		Longitude: lng,
		Category:  db_models.CategoryAttraction,
	}
	loc.ID = uuid.New()
	return loc
}

func orderNames(locations []db_models.Location) []string {
	names := make([]string, 0, len(locations))
	for _, l := range locations {
		names = append(names, l.Name)
	}
	return names
}

func TestOptimizeFewerThanThreeUnchanged(t *testing.T) {
	var none []db_models.Location
	if got := OptimizeDestinations(none); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}

	one := []db_models.Location{testLocation("A", 0, 0)}
	if got := OptimizeDestinations(one); len(got) != 1 || got[0].Name != "A" {
		t.Fatalf("single destination changed: %v", orderNames(got))
	}

	two := []db_models.Location{testLocation("A", 0, 0), testLocation("B", 10, 10)}
	got := OptimizeDestinations(two)
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "B" {
		t.Fatalf("two destinations reordered: %v", orderNames(got))
	}
}

func TestOptimizeAnchorsFirstAndWalksNearest(t *testing.T) {
	// A is far from the cluster; B, C, D sit close together. Starting from A
	// the greedy walk must visit the cluster nearest-first.
	a := testLocation("A", 50, 50)
	b := testLocation("B", 0, 0.2)
	c := testLocation("C", 0, 0.1)
	d := testLocation("D", 0, 0.3)

	got := OptimizeDestinations([]db_models.Location{a, b, c, d})

	want := []string{"A", "D", "B", "C"}
	names := orderNames(got)
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}

func TestOptimizePreservesMultiset(t *testing.T) {
	input := []db_models.Location{
		testLocation("A", 0, 0),
		testLocation("B", 1, 1),
		testLocation("C", 2, 2),
		testLocation("D", 3, 3),
		testLocation("E", -5, 10),
	}
	got := OptimizeDestinations(input)

	if len(got) != len(input) {
		t.Fatalf("length changed: %d -> %d", len(input), len(got))
	}
	counts := make(map[uuid.UUID]int)
	for _, l := range input {
		counts[l.ID]++
	}
	for _, l := range got {
		counts[l.ID]--
	}
	for id, n := range counts {
		if n != 0 {
			t.Fatalf("destination %s count off by %d", id, n)
		}
	}
}

func TestOptimizeMalformedCoordinateSortsLast(t *testing.T) {
	a := testLocation("A", 0, 0)
	broken := testLocation("broken", math.NaN(), 0)
	b := testLocation("B", 0, 0.1)
	c := testLocation("C", 0, 0.2)

	got := OptimizeDestinations([]db_models.Location{a, broken, b, c})

	names := orderNames(got)
	if names[len(names)-1] != "broken" {
		t.Fatalf("order = %v, want malformed destination last", names)
	}
	if names[0] != "A" || names[1] != "B" || names[2] != "C" {
		t.Fatalf("order = %v, want A B C broken", names)
	}
}

func TestOptimizeDoesNotMutateInput(t *testing.T) {
	input := []db_models.Location{
		testLocation("A", 0, 0),
		testLocation("B", 0, 2),
		testLocation("C", 0, 1),
	}
	before := orderNames(input)

	OptimizeDestinations(input)

	after := orderNames(input)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("input mutated: %v -> %v", before, after)
		}
	}
}
