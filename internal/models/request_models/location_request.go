package request_models

import "github.com/google/uuid"

type CreateLocationRequest struct {
	Name              string   `json:"name" binding:"required"`
	Description       string   `json:"description"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	Category          string   `json:"category" binding:"required"`
	Rating            float64  `json:"rating" binding:"gte=0,lte=5"`
	PriceLevel        int      `json:"price_level" binding:"gte=0,lte=4"`
	CarbonFootprintKg *float64 `json:"carbon_footprint_kg"`
	VisitDurationSec  int64    `json:"visit_duration_sec" binding:"gt=0"`
	OpeningHours      []string `json:"opening_hours"`
	Tags              []string `json:"tags"`
}

type UpdateLocationRequest struct {
	ID                uuid.UUID `json:"id" binding:"required"`
	Name              string    `json:"name" binding:"required"`
	Description       string    `json:"description"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	Category          string    `json:"category" binding:"required"`
	Rating            float64   `json:"rating" binding:"gte=0,lte=5"`
	PriceLevel        int       `json:"price_level" binding:"gte=0,lte=4"`
	CarbonFootprintKg *float64  `json:"carbon_footprint_kg"`
	VisitDurationSec  int64     `json:"visit_duration_sec" binding:"gt=0"`
	OpeningHours      []string  `json:"opening_hours"`
	Tags              []string  `json:"tags"`
}
