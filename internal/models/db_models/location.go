package db_models

import (
	"math"

	"gorm.io/datatypes"
	"wander/pkg/utils"
)

// Category is the closed set of point-of-interest categories.
type Category string

const (
	CategoryRestaurant    Category = "restaurant"
	CategoryAttraction    Category = "attraction"
	CategoryHotel         Category = "hotel"
	CategoryShopping      Category = "shopping"
	CategoryNature        Category = "nature"
	CategoryMuseum        Category = "museum"
	CategoryEntertainment Category = "entertainment"
	CategoryTransport     Category = "transport"
	CategoryWellness      Category = "wellness"
	CategoryOutdoor       Category = "outdoor"
)

var allCategories = []Category{
	CategoryRestaurant, CategoryAttraction, CategoryHotel, CategoryShopping,
	CategoryNature, CategoryMuseum, CategoryEntertainment, CategoryTransport,
	CategoryWellness, CategoryOutdoor,
}

func (c Category) Valid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

// PriceLevel is an ordered price bracket, free through luxury.
type PriceLevel int

const (
	PriceFree PriceLevel = iota
	PriceBudget
	PriceModerate
	PriceExpensive
	PriceLuxury
)

// PriceLevelCost is the fixed bracket-to-estimated-cost table used for
// itinerary cost totals. Unknown brackets cost nothing.
var PriceLevelCost = map[PriceLevel]float64{
	PriceFree:      0,
	PriceBudget:    15,
	PriceModerate:  35,
	PriceExpensive: 75,
	PriceLuxury:    150,
}

func (p PriceLevel) Cost() float64 {
	return PriceLevelCost[p]
}

// LocationEcoFootprintMaxKg is the per-visit footprint above which a
// location stops counting as eco-friendly.
const LocationEcoFootprintMaxKg = 5.0

type Location struct {
	BaseModel
	Name              string                      `json:"name"`
	Description       string                      `json:"description"`
	Latitude          float64                     `json:"latitude"`
	Longitude         float64                     `json:"longitude"`
	Category          Category                    `gorm:"index" json:"category"`
	Rating            float64                     `json:"rating"`
	PriceLevel        PriceLevel                  `json:"price_level"`
	CarbonFootprintKg *float64                    `json:"carbon_footprint_kg,omitempty"`
	VisitDurationSec  int64                       `json:"visit_duration_sec"`
	OpeningHours      datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"opening_hours"`
	Tags              datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
}

func (l *Location) HasValidCoordinate() bool {
	return utils.ValidLatLng(l.Latitude, l.Longitude)
}

// IsEcoFriendly treats an unknown footprint as eco-friendly; only a known
// footprint above the threshold (or a malformed one) disqualifies.
func (l *Location) IsEcoFriendly() bool {
	if l.CarbonFootprintKg == nil {
		return true
	}
	fp := *l.CarbonFootprintKg
	if math.IsNaN(fp) || math.IsInf(fp, 0) {
		return false
	}
	return fp <= LocationEcoFootprintMaxKg
}
