package response_models

import (
	"wander/internal/models/db_models"
	"wander/pkg/utils"
)

type ItinerarySummary struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	StartDate         string  `json:"start_date"`
	EndDate           string  `json:"end_date"`
	DurationDays      int     `json:"duration_days"`
	DestinationCount  int     `json:"destination_count"`
	TotalDistanceKm   float64 `json:"total_distance_km"`
	EstimatedCarbonKg float64 `json:"estimated_carbon_kg"`
	EstimatedCost     float64 `json:"estimated_cost"`
	EcoFriendly       bool    `json:"eco_friendly"`
	EcoScore          int     `json:"eco_score"`
}

type ItineraryDetail struct {
	ItinerarySummary
	Description             string     `json:"description,omitempty"`
	TravelStyle             string     `json:"travel_style"`
	Transportation          string     `json:"transportation"`
	TransportEmissionFactor float64    `json:"transport_emission_kg_per_km"`
	Destinations            []Location `json:"destinations"`
	Tags                    []string   `json:"tags,omitempty"`
	Notes                   string     `json:"notes,omitempty"`
	CreatedAt               string     `json:"created_at"`
	UpdatedAt               string     `json:"updated_at"`
}

func BuildItinerarySummary(it *db_models.Itinerary) ItinerarySummary {
	return ItinerarySummary{
		ID:                it.ID.String(),
		Title:             it.Title,
		StartDate:         utils.FormatRFC3339(utils.FromUnixSeconds(it.StartDate)),
		EndDate:           utils.FormatRFC3339(utils.FromUnixSeconds(it.EndDate)),
		DurationDays:      it.DurationDays(),
		DestinationCount:  len(it.Destinations),
		TotalDistanceKm:   it.TotalDistanceKm,
		EstimatedCarbonKg: it.EstimatedCarbonKg,
		EstimatedCost:     it.EstimatedCost,
		EcoFriendly:       it.EcoFriendly,
		EcoScore:          it.EcoScore,
	}
}

func BuildItineraryDetail(it *db_models.Itinerary) *ItineraryDetail {
	return &ItineraryDetail{
		ItinerarySummary:        BuildItinerarySummary(it),
		Description:             it.Description,
		TravelStyle:             string(it.TravelStyle),
		Transportation:          string(it.Transportation),
		TransportEmissionFactor: it.Transportation.EmissionFactorKgPerKm(),
		Destinations:            BuildLocations(it.Destinations),
		Tags:                    it.Tags,
		Notes:                   it.Notes,
		CreatedAt:               utils.FormatRFC3339(utils.FromUnixSeconds(it.CreatedAt)),
		UpdatedAt:               utils.FormatRFC3339(utils.FromUnixSeconds(it.UpdatedAt)),
	}
}

func BuildItinerarySummaries(itineraries []db_models.Itinerary) []ItinerarySummary {
	out := make([]ItinerarySummary, 0, len(itineraries))
	for i := range itineraries {
		out = append(out, BuildItinerarySummary(&itineraries[i]))
	}
	return out
}
