package db_models

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"wander/pkg/utils"
)

type TravelStyle string

const (
	StyleAdventure  TravelStyle = "adventure"
	StyleRelaxation TravelStyle = "relaxation"
	StyleCultural   TravelStyle = "cultural"
	StyleBalanced   TravelStyle = "balanced"
)

func (s TravelStyle) DisplayName() string {
	switch s {
	case StyleAdventure:
		return "Adventure"
	case StyleRelaxation:
		return "Relaxation"
	case StyleCultural:
		return "Cultural"
	default:
		return "Balanced"
	}
}

type Transportation string

const (
	TransportWalking Transportation = "walking"
	TransportCycling Transportation = "cycling"
	TransportPublic  Transportation = "public-transport"
	TransportCar     Transportation = "car"
	TransportMixed   Transportation = "mixed"
)

// TransportEmissionKgPerKm is the fixed per-mode emission factor table.
var TransportEmissionKgPerKm = map[Transportation]float64{
	TransportWalking: 0,
	TransportCycling: 0,
	TransportPublic:  0.089,
	TransportCar:     0.171,
	TransportMixed:   0.1,
}

func (t Transportation) EmissionFactorKgPerKm() float64 {
	return TransportEmissionKgPerKm[t]
}

const (
	// TripEmissionFactorKgPerKm is the generic trip-level factor applied to
	// total distance when estimating an itinerary's footprint, independent
	// of the preferred transportation mode.
	TripEmissionFactorKgPerKm = 0.21

	// EcoFriendlyMaxCarbonKg is the footprint at or below which an
	// itinerary counts as eco-friendly.
	EcoFriendlyMaxCarbonKg = 50.0
)

// Itinerary is an ordered multi-destination trip. The destination list is a
// jsonb snapshot so visit order and intentional revisits survive round-trips
// through the store. Derived metric fields are kept consistent with the
// destination list: every structural mutation goes through RecomputeDerived.
type Itinerary struct {
	BaseModel
	AccountID      uuid.UUID                     `gorm:"type:uuid;index" json:"account_id"`
	Title          string                        `json:"title"`
	Description    string                        `json:"description"`
	Destinations   datatypes.JSONSlice[Location] `gorm:"type:jsonb" json:"destinations"`
	StartDate      int64                         `json:"start_date"`
	EndDate        int64                         `json:"end_date"`
	TravelStyle    TravelStyle                   `json:"travel_style"`
	Transportation Transportation                `json:"transportation"`
	Tags           datatypes.JSONSlice[string]   `gorm:"type:jsonb" json:"tags"`
	Notes          string                        `json:"notes"`

	TotalDistanceKm   float64 `json:"total_distance_km"`
	EstimatedCarbonKg float64 `json:"estimated_carbon_kg"`
	EstimatedCost     float64 `json:"estimated_cost"`
	EcoFriendly       bool    `json:"eco_friendly"`
	EcoScore          int     `json:"eco_score"`
}

func NewItinerary(
	title, description string,
	destinations []Location,
	startDate, endDate time.Time,
	style TravelStyle,
	transportation Transportation,
	tags []string,
	notes string,
) *Itinerary {
	now := time.Now().Unix()
	it := &Itinerary{
		BaseModel: BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:          title,
		Description:    description,
		Destinations:   destinations,
		StartDate:      startDate.Unix(),
		EndDate:        endDate.Unix(),
		TravelStyle:    style,
		Transportation: transportation,
		Tags:           tags,
		Notes:          notes,
	}
	it.RecomputeDerived()
	return it
}

// DayCount is the number of calendar days an epoch-seconds window spans,
// never less than 1. A window that ends before it starts counts as one day.
func DayCount(startDate, endDate int64) int {
	diff := endDate - startDate
	if diff < 0 {
		diff = 0
	}
	return int(diff/86400) + 1
}

func (it *Itinerary) DurationDays() int {
	return DayCount(it.StartDate, it.EndDate)
}

func (it *Itinerary) AddDestination(loc Location) {
	it.Destinations = append(it.Destinations, loc)
	it.RecomputeDerived()
	it.touch()
}

// RemoveDestinationAt ignores out-of-range indexes entirely: no removal, no
// recompute, no timestamp bump. Callers feed it positions from stale client
// state, so a bad index is not an error.
func (it *Itinerary) RemoveDestinationAt(index int) {
	if index < 0 || index >= len(it.Destinations) {
		return
	}
	it.Destinations = append(it.Destinations[:index], it.Destinations[index+1:]...)
	it.RecomputeDerived()
	it.touch()
}

// ReorderDestinations moves the destinations at fromIndices (interpreted
// against the current order) so that they sit, in their original relative
// order, before the element currently at toIndex. Out-of-range source
// indexes are dropped; if none survive, the call is a no-op.
func (it *Itinerary) ReorderDestinations(fromIndices []int, toIndex int) {
	n := len(it.Destinations)
	sources := make([]int, 0, len(fromIndices))
	seen := make(map[int]bool, len(fromIndices))
	for _, i := range fromIndices {
		if i >= 0 && i < n && !seen[i] {
			sources = append(sources, i)
			seen[i] = true
		}
	}
	if len(sources) == 0 {
		return
	}
	sort.Ints(sources)

	moved := make([]Location, 0, len(sources))
	for _, i := range sources {
		moved = append(moved, it.Destinations[i])
	}

	remaining := make([]Location, 0, n-len(sources))
	insertAt := toIndex
	for i, loc := range it.Destinations {
		if seen[i] {
			if i < toIndex {
				insertAt--
			}
			continue
		}
		remaining = append(remaining, loc)
	}
	if insertAt < 0 {
		insertAt = 0
	}
	if insertAt > len(remaining) {
		insertAt = len(remaining)
	}

	reordered := make([]Location, 0, n)
	reordered = append(reordered, remaining[:insertAt]...)
	reordered = append(reordered, moved...)
	reordered = append(reordered, remaining[insertAt:]...)

	it.Destinations = reordered
	it.RecomputeDerived()
	it.touch()
}

// RecomputeDerived recalculates every derived metric from the current
// destination list. Pure and idempotent: two calls with no mutation in
// between produce identical fields.
func (it *Itinerary) RecomputeDerived() {
	it.TotalDistanceKm = it.computeTotalDistanceKm()
	it.EstimatedCarbonKg = it.computeCarbonKg(it.TotalDistanceKm)
	it.EstimatedCost = it.computeCost()
	it.EcoFriendly = it.EstimatedCarbonKg <= EcoFriendlyMaxCarbonKg
	it.EcoScore = EcoScore(it.EstimatedCarbonKg)
}

// Partial-failure accumulation: a destination with a bad coordinate drops
// its segments from the total instead of poisoning the whole sum.
func (it *Itinerary) computeTotalDistanceKm() float64 {
	total := 0.0
	for i := 0; i+1 < len(it.Destinations); i++ {
		a, b := &it.Destinations[i], &it.Destinations[i+1]
		d, err := utils.HaversineKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
		if err != nil {
			continue
		}
		if math.IsNaN(d) || math.IsInf(d, 0) {
			continue
		}
		total += d
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0
	}
	return total
}

func (it *Itinerary) computeCarbonKg(distanceKm float64) float64 {
	travel := distanceKm * TripEmissionFactorKgPerKm
	if math.IsNaN(travel) || math.IsInf(travel, 0) {
		travel = 0
	}

	visits := 0.0
	for i := range it.Destinations {
		fp := it.Destinations[i].CarbonFootprintKg
		if fp == nil {
			continue
		}
		if math.IsNaN(*fp) || math.IsInf(*fp, 0) || *fp < 0 {
			continue
		}
		visits += *fp
	}
	if math.IsNaN(visits) || math.IsInf(visits, 0) {
		visits = 0
	}

	total := travel + visits
	if math.IsNaN(total) || math.IsInf(total, 0) || total < 0 {
		return 0
	}
	return total
}

func (it *Itinerary) computeCost() float64 {
	total := 0.0
	for i := range it.Destinations {
		total += it.Destinations[i].PriceLevel.Cost()
	}
	return total
}

// EcoScore grades a footprint on a 0..5 scale:
// min(5, max(0, round((1 - footprint/100) * 5))).
func EcoScore(carbonKg float64) int {
	raw := math.Round((1 - carbonKg/100) * 5)
	if raw < 0 {
		return 0
	}
	if raw > 5 {
		return 5
	}
	return int(raw)
}

func (it *Itinerary) touch() {
	it.UpdatedAt = time.Now().Unix()
}
