package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"wander/internal/models/db_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

// nearbyRadiusMeters is the fixed search radius around the trip origin.
const nearbyRadiusMeters = 10000.0

type timeSlot string

const (
	slotMorning   timeSlot = "morning"
	slotLunch     timeSlot = "lunch"
	slotAfternoon timeSlot = "afternoon"
	slotEvening   timeSlot = "evening"
)

var daySlots = []timeSlot{slotMorning, slotLunch, slotAfternoon, slotEvening}

type interestRule struct {
	interest db_models.InterestCategory
	category db_models.Category
}

// Per-slot category policy. Interest-driven rules are tried in table order;
// a slot with no matching interest falls back to the fixed list.
var slotInterestRules = map[timeSlot][]interestRule{
	slotMorning: {
		{db_models.InterestNature, db_models.CategoryNature},
		{db_models.InterestWellness, db_models.CategoryWellness},
		{db_models.InterestArt, db_models.CategoryMuseum},
	},
	slotAfternoon: {
		{db_models.InterestShopping, db_models.CategoryShopping},
		{db_models.InterestHistory, db_models.CategoryMuseum},
		{db_models.InterestArt, db_models.CategoryMuseum},
	},
	slotEvening: {
		{db_models.InterestNightlife, db_models.CategoryEntertainment},
		{db_models.InterestFood, db_models.CategoryRestaurant},
	},
}

var slotFallbackCategories = map[timeSlot][]db_models.Category{
	slotMorning:   {db_models.CategoryNature, db_models.CategoryMuseum, db_models.CategoryAttraction},
	slotLunch:     {db_models.CategoryRestaurant},
	slotAfternoon: {db_models.CategoryAttraction, db_models.CategoryShopping, db_models.CategoryMuseum},
	slotEvening:   {db_models.CategoryEntertainment, db_models.CategoryRestaurant},
}

// Travel-style whitelists. Balanced keeps everything, so it has no entry.
var styleAllowedCategories = map[db_models.TravelStyle][]db_models.Category{
	db_models.StyleAdventure:  {db_models.CategoryNature, db_models.CategoryAttraction},
	db_models.StyleRelaxation: {db_models.CategoryWellness, db_models.CategoryNature},
	db_models.StyleCultural:   {db_models.CategoryMuseum, db_models.CategoryAttraction},
}

// PickFunc selects an index in [0,n). Production uses math/rand; tests
// inject a deterministic picker.
type PickFunc func(n int) int

type GenerateItineraryParams struct {
	AccountID   uuid.UUID
	Title       string
	StartDate   time.Time
	EndDate     time.Time
	OriginLat   float64
	OriginLng   float64
	Preferences db_models.TravelPreferences
}

type PlannerServiceInterface interface {
	GenerateSmartItinerary(ctx context.Context, params GenerateItineraryParams) (*db_models.Itinerary, error)
}

type PlannerService struct {
	source        DestinationSource
	itineraryRepo repositories.ItineraryRepository
	pick          PickFunc
}

func NewPlannerService(source DestinationSource, itineraryRepo repositories.ItineraryRepository, pick PickFunc) PlannerServiceInterface {
	if pick == nil {
		pick = rand.Intn
	}
	return &PlannerService{
		source:        source,
		itineraryRepo: itineraryRepo,
		pick:          pick,
	}
}

// GenerateSmartItinerary walks every day of the trip window and, per day,
// the four time slots, picking at most one destination per slot from the
// destination source. A slot that yields no surviving candidate contributes
// nothing; the worst case is a stored itinerary with zero destinations.
// Cancellation abandons the whole generation without persisting a partial
// itinerary.
func (p *PlannerService) GenerateSmartItinerary(ctx context.Context, params GenerateItineraryParams) (*db_models.Itinerary, error) {
	if params.Title == "" {
		return nil, utils.ErrInvalidInput
	}
	if !utils.ValidLatLng(params.OriginLat, params.OriginLng) {
		return nil, utils.ErrInvalidCoordinate
	}

	prefs := params.Preferences
	days := db_models.DayCount(params.StartDate.Unix(), params.EndDate.Unix())

	var selected []db_models.Location
	var pickedCategories []db_models.Category
	seenCategory := make(map[db_models.Category]bool)

	for day := 0; day < days; day++ {
		for _, slot := range daySlots {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if slot == slotEvening && !prefs.HasInterest(db_models.InterestNightlife) {
				continue
			}

			loc, ok := p.pickForSlot(ctx, slot, params, prefs)
			if !ok {
				continue
			}
			selected = append(selected, loc)
			if !seenCategory[loc.Category] {
				seenCategory[loc.Category] = true
				pickedCategories = append(pickedCategories, loc.Category)
			}
		}
	}

	itinerary := db_models.NewItinerary(
		params.Title,
		buildDescription(prefs, days, pickedCategories),
		selected,
		params.StartDate,
		params.EndDate,
		prefs.Style,
		prefs.Transportation,
		buildTags(prefs, pickedCategories),
		"",
	)
	itinerary.AccountID = params.AccountID

	if _, err := p.itineraryRepo.Create(ctx, itinerary); err != nil {
		log.Printf("Error storing generated itinerary: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return itinerary, nil
}

// pickForSlot tries the slot's candidate categories in order and stops at
// the first category with a survivor after preference filtering.
func (p *PlannerService) pickForSlot(ctx context.Context, slot timeSlot, params GenerateItineraryParams, prefs db_models.TravelPreferences) (db_models.Location, bool) {
	for _, category := range candidateCategories(slot, prefs) {
		locations, err := p.source.Nearby(ctx, &category, nearbyRadiusMeters, params.OriginLat, params.OriginLng)
		if err != nil {
			log.Printf("Nearby lookup failed for category %s: %v", category, err)
			continue
		}

		filtered := filterByPreferences(locations, prefs)
		if len(filtered) == 0 {
			continue
		}
		return filtered[p.pick(len(filtered))], true
	}
	return db_models.Location{}, false
}

// candidateCategories builds the ordered category list for a slot from the
// interest rules, deduplicated first-wins; an empty result falls back to the
// slot's fixed list.
func candidateCategories(slot timeSlot, prefs db_models.TravelPreferences) []db_models.Category {
	var categories []db_models.Category
	seen := make(map[db_models.Category]bool)
	for _, rule := range slotInterestRules[slot] {
		if prefs.HasInterest(rule.interest) && !seen[rule.category] {
			seen[rule.category] = true
			categories = append(categories, rule.category)
		}
	}
	if len(categories) == 0 {
		return slotFallbackCategories[slot]
	}
	return categories
}

func filterByPreferences(locations []db_models.Location, prefs db_models.TravelPreferences) []db_models.Location {
	allowed := styleAllowedCategories[prefs.Style]

	filtered := make([]db_models.Location, 0, len(locations))
	for _, loc := range locations {
		if prefs.EcoFriendlyMode && !loc.IsEcoFriendly() {
			continue
		}
		if len(allowed) > 0 && !containsCategory(allowed, loc.Category) {
			continue
		}
		filtered = append(filtered, loc)
	}
	return filtered
}

func containsCategory(categories []db_models.Category, category db_models.Category) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}

func buildDescription(prefs db_models.TravelPreferences, days int, categories []db_models.Category) string {
	desc := fmt.Sprintf("%s itinerary over %d day(s)", prefs.Style.DisplayName(), days)
	if len(categories) > 0 {
		names := make([]string, 0, len(categories))
		for _, c := range categories {
			names = append(names, string(c))
		}
		desc += " featuring " + strings.Join(names, ", ")
	}
	if prefs.EcoFriendlyMode {
		desc += " with eco-friendly picks"
	}
	return desc
}

func buildTags(prefs db_models.TravelPreferences, categories []db_models.Category) []string {
	tags := []string{string(prefs.Style)}
	for _, c := range categories {
		tags = append(tags, string(c))
	}
	if prefs.EcoFriendlyMode {
		tags = append(tags, "eco-friendly")
	}
	return tags
}
