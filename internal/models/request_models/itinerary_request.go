package request_models

import "time"

type CreateItineraryRequest struct {
	Title          string    `json:"title" binding:"required"`
	Description    string    `json:"description"`
	StartDate      time.Time `json:"start_date" binding:"required"`
	EndDate        time.Time `json:"end_date" binding:"required"`
	TravelStyle    string    `json:"travel_style"`
	Transportation string    `json:"transportation"`
	Tags           []string  `json:"tags"`
	Notes          string    `json:"notes"`
	// Optional initial destinations, resolved by location id in request order.
	LocationIDs []string `json:"location_ids"`
}

type UpdateItineraryRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Notes          *string    `json:"notes"`
	Tags           *[]string  `json:"tags"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	TravelStyle    *string    `json:"travel_style"`
	Transportation *string    `json:"transportation"`
}

type AddDestinationRequest struct {
	LocationID string `json:"location_id" binding:"required,uuid4"`
}

type ReorderDestinationsRequest struct {
	FromIndices []int `json:"from_indices" binding:"required"`
	ToIndex     int   `json:"to_index"`
}

type GenerateItineraryRequest struct {
	Title     string    `json:"title" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	OriginLat float64   `json:"origin_lat"`
	OriginLng float64   `json:"origin_lng"`
	// Inline preferences override the account's stored ones when present.
	Preferences *PreferencesPayload `json:"preferences"`
}

type PreferencesPayload struct {
	TravelStyle     string   `json:"travel_style"`
	Interests       []string `json:"interests"`
	EcoFriendlyMode bool     `json:"eco_friendly_mode"`
	Transportation  string   `json:"transportation"`
}
