package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

type LocationServiceInterface interface {
	GetLocationByID(ctx context.Context, id string) (*db_models.Location, error)
	ListLocations(ctx context.Context, page, pageSize int) ([]db_models.Location, error)
	CreateLocation(ctx context.Context, req request_models.CreateLocationRequest) (*db_models.Location, error)
	UpdateLocation(ctx context.Context, req request_models.UpdateLocationRequest) error
	DeleteLocation(ctx context.Context, id uuid.UUID) error

	NearbyLocations(ctx context.Context, category string, radiusMeters, lat, lng float64) ([]db_models.Location, error)
	SearchLocations(ctx context.Context, query string, lat, lng float64) ([]db_models.Location, error)
}

type LocationService struct {
	locationRepo repositories.LocationRepository
	source       DestinationSource
}

func NewLocationService(locationRepo repositories.LocationRepository, source DestinationSource) LocationServiceInterface {
	return &LocationService{
		locationRepo: locationRepo,
		source:       source,
	}
}

func (s *LocationService) GetLocationByID(ctx context.Context, id string) (*db_models.Location, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching location: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if location == nil {
		return nil, utils.ErrLocationNotFound
	}
	return location, nil
}

func (s *LocationService) ListLocations(ctx context.Context, page, pageSize int) ([]db_models.Location, error) {
	locations, err := s.locationRepo.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing locations: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return locations, nil
}

func (s *LocationService) CreateLocation(ctx context.Context, req request_models.CreateLocationRequest) (*db_models.Location, error) {
	if !utils.ValidLatLng(req.Latitude, req.Longitude) {
		return nil, utils.ErrInvalidCoordinate
	}
	category := db_models.Category(req.Category)
	if !category.Valid() {
		return nil, utils.ErrInvalidInput
	}

	location := &db_models.Location{
		Name:              req.Name,
		Description:       req.Description,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		Category:          category,
		Rating:            req.Rating,
		PriceLevel:        db_models.PriceLevel(req.PriceLevel),
		CarbonFootprintKg: req.CarbonFootprintKg,
		VisitDurationSec:  req.VisitDurationSec,
		OpeningHours:      req.OpeningHours,
		Tags:              req.Tags,
	}
	if _, err := s.locationRepo.Create(ctx, location); err != nil {
		log.Printf("Error creating location: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return location, nil
}

func (s *LocationService) UpdateLocation(ctx context.Context, req request_models.UpdateLocationRequest) error {
	existing, err := s.locationRepo.GetByID(ctx, req.ID.String())
	if err != nil {
		log.Printf("Error fetching location: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrLocationNotFound
	}
	if !utils.ValidLatLng(req.Latitude, req.Longitude) {
		return utils.ErrInvalidCoordinate
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Latitude = req.Latitude
	existing.Longitude = req.Longitude
	existing.Category = db_models.Category(req.Category)
	existing.Rating = req.Rating
	existing.PriceLevel = db_models.PriceLevel(req.PriceLevel)
	existing.CarbonFootprintKg = req.CarbonFootprintKg
	existing.VisitDurationSec = req.VisitDurationSec
	existing.OpeningHours = req.OpeningHours
	existing.Tags = req.Tags

	if err := s.locationRepo.Update(ctx, existing); err != nil {
		log.Printf("Error updating location: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *LocationService) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	existing, err := s.locationRepo.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching location: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrLocationNotFound
	}
	if err := s.locationRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting location: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *LocationService) NearbyLocations(ctx context.Context, category string, radiusMeters, lat, lng float64) ([]db_models.Location, error) {
	var categoryFilter *db_models.Category
	if category != "" {
		c := db_models.Category(category)
		if !c.Valid() {
			return nil, utils.ErrInvalidInput
		}
		categoryFilter = &c
	}

	locations, err := s.source.Nearby(ctx, categoryFilter, radiusMeters, lat, lng)
	if err != nil {
		if err == utils.ErrInvalidCoordinate {
			return nil, err
		}
		log.Printf("Error in nearby lookup: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return locations, nil
}

func (s *LocationService) SearchLocations(ctx context.Context, query string, lat, lng float64) ([]db_models.Location, error) {
	if query == "" {
		return nil, utils.ErrInvalidInput
	}
	locations, err := s.source.Search(ctx, query, lat, lng)
	if err != nil {
		log.Printf("Error searching locations: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return locations, nil
}
