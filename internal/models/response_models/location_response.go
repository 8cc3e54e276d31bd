package response_models

import "wander/internal/models/db_models"

type Location struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	Category          string   `json:"category"`
	Rating            float64  `json:"rating"`
	PriceLevel        int      `json:"price_level"`
	EstimatedCost     float64  `json:"estimated_cost"`
	CarbonFootprintKg *float64 `json:"carbon_footprint_kg,omitempty"`
	EcoFriendly       bool     `json:"eco_friendly"`
	VisitDurationSec  int64    `json:"visit_duration_sec"`
	OpeningHours      []string `json:"opening_hours,omitempty"`
	Tags              []string `json:"tags,omitempty"`
}

func BuildLocation(loc *db_models.Location) Location {
	return Location{
		ID:                loc.ID.String(),
		Name:              loc.Name,
		Description:       loc.Description,
		Latitude:          loc.Latitude,
		Longitude:         loc.Longitude,
		Category:          string(loc.Category),
		Rating:            loc.Rating,
		PriceLevel:        int(loc.PriceLevel),
		EstimatedCost:     loc.PriceLevel.Cost(),
		CarbonFootprintKg: loc.CarbonFootprintKg,
		EcoFriendly:       loc.IsEcoFriendly(),
		VisitDurationSec:  loc.VisitDurationSec,
		OpeningHours:      loc.OpeningHours,
		Tags:              loc.Tags,
	}
}

func BuildLocations(locations []db_models.Location) []Location {
	out := make([]Location, 0, len(locations))
	for i := range locations {
		out = append(out, BuildLocation(&locations[i]))
	}
	return out
}
