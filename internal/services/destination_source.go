package services

import (
	"context"

	"wander/internal/models/db_models"
	"wander/internal/repositories"
)

// DestinationSource supplies candidate points of interest. The planner only
// depends on this interface; the production implementation is backed by the
// location table, tests substitute fixtures.
type DestinationSource interface {
	// Nearby returns locations within radiusMeters of the given point.
	// A nil category means all categories.
	Nearby(ctx context.Context, category *db_models.Category, radiusMeters float64, lat, lng float64) ([]db_models.Location, error)

	// Search returns locations matching a free-text query, closest first.
	Search(ctx context.Context, query string, lat, lng float64) ([]db_models.Location, error)
}

type repositoryDestinationSource struct {
	locationRepo repositories.LocationRepository
}

func NewRepositoryDestinationSource(locationRepo repositories.LocationRepository) DestinationSource {
	return &repositoryDestinationSource{locationRepo: locationRepo}
}

func (s *repositoryDestinationSource) Nearby(ctx context.Context, category *db_models.Category, radiusMeters float64, lat, lng float64) ([]db_models.Location, error) {
	return s.locationRepo.Nearby(ctx, category, radiusMeters, lat, lng)
}

func (s *repositoryDestinationSource) Search(ctx context.Context, query string, lat, lng float64) ([]db_models.Location, error) {
	return s.locationRepo.Search(ctx, query, lat, lng)
}
