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

type ItineraryServiceInterface interface {
	CreateItinerary(ctx context.Context, accountID string, req request_models.CreateItineraryRequest) (*db_models.Itinerary, error)
	GetItinerary(ctx context.Context, accountID, itineraryID string) (*db_models.Itinerary, error)
	ListItineraries(ctx context.Context, accountID string, page, pageSize int) ([]db_models.Itinerary, error)
	UpdateItinerary(ctx context.Context, accountID, itineraryID string, req request_models.UpdateItineraryRequest) (*db_models.Itinerary, error)
	DeleteItinerary(ctx context.Context, accountID, itineraryID string) error

	AddDestination(ctx context.Context, accountID, itineraryID, locationID string) (*db_models.Itinerary, error)
	RemoveDestinationAt(ctx context.Context, accountID, itineraryID string, index int) (*db_models.Itinerary, error)
	ReorderDestinations(ctx context.Context, accountID, itineraryID string, fromIndices []int, toIndex int) (*db_models.Itinerary, error)
	OptimizeItinerary(ctx context.Context, accountID, itineraryID string) (*db_models.Itinerary, error)
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	locationRepo  repositories.LocationRepository
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository, locationRepo repositories.LocationRepository) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		locationRepo:  locationRepo,
	}
}

func (s *ItineraryService) CreateItinerary(ctx context.Context, accountID string, req request_models.CreateItineraryRequest) (*db_models.Itinerary, error) {
	owner, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	destinations := make([]db_models.Location, 0, len(req.LocationIDs))
	for _, id := range req.LocationIDs {
		loc, err := s.locationRepo.GetByID(ctx, id)
		if err != nil {
			log.Printf("Error fetching location %s: %v", id, err)
			return nil, utils.ErrDatabaseError
		}
		if loc == nil {
			return nil, utils.ErrLocationNotFound
		}
		destinations = append(destinations, *loc)
	}

	itinerary := db_models.NewItinerary(
		req.Title,
		req.Description,
		destinations,
		req.StartDate,
		req.EndDate,
		db_models.TravelStyle(req.TravelStyle),
		db_models.Transportation(req.Transportation),
		req.Tags,
		req.Notes,
	)
	itinerary.AccountID = owner

	if _, err := s.itineraryRepo.Create(ctx, itinerary); err != nil {
		log.Printf("Error creating itinerary: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return itinerary, nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, accountID, itineraryID string) (*db_models.Itinerary, error) {
	return s.loadOwned(ctx, accountID, itineraryID)
}

func (s *ItineraryService) ListItineraries(ctx context.Context, accountID string, page, pageSize int) ([]db_models.Itinerary, error) {
	itineraries, err := s.itineraryRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		log.Printf("Error listing itineraries: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return itineraries, nil
}

func (s *ItineraryService) UpdateItinerary(ctx context.Context, accountID, itineraryID string, req request_models.UpdateItineraryRequest) (*db_models.Itinerary, error) {
	itinerary, err := s.loadOwned(ctx, accountID, itineraryID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		itinerary.Title = *req.Title
	}
	if req.Description != nil {
		itinerary.Description = *req.Description
	}
	if req.Notes != nil {
		itinerary.Notes = *req.Notes
	}
	if req.Tags != nil {
		itinerary.Tags = *req.Tags
	}
	if req.StartDate != nil {
		itinerary.StartDate = req.StartDate.Unix()
	}
	if req.EndDate != nil {
		itinerary.EndDate = req.EndDate.Unix()
	}
	if req.TravelStyle != nil {
		itinerary.TravelStyle = db_models.TravelStyle(*req.TravelStyle)
	}
	if req.Transportation != nil {
		itinerary.Transportation = db_models.Transportation(*req.Transportation)
	}
	itinerary.RecomputeDerived()

	if err := s.itineraryRepo.Update(ctx, itinerary); err != nil {
		log.Printf("Error updating itinerary: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return itinerary, nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, accountID, itineraryID string) error {
	itinerary, err := s.loadOwned(ctx, accountID, itineraryID)
	if err != nil {
		return err
	}
	if err := s.itineraryRepo.Delete(ctx, itinerary.ID); err != nil {
		log.Printf("Error deleting itinerary: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) AddDestination(ctx context.Context, accountID, itineraryID, locationID string) (*db_models.Itinerary, error) {
	itinerary, err := s.loadOwned(ctx, accountID, itineraryID)
	if err != nil {
		return nil, err
	}

	location, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		log.Printf("Error fetching location: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if location == nil {
		return nil, utils.ErrLocationNotFound
	}

	itinerary.AddDestination(*location)
	if err := s.itineraryRepo.Update(ctx, itinerary); err != nil {
		log.Printf("Error updating itinerary: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return itinerary, nil
}

// RemoveDestinationAt forwards the entity's lenient index policy: an
// out-of-range index leaves the itinerary untouched and skips the store
// write entirely.
func (s *ItineraryService) RemoveDestinationAt(ctx context.Context, accountID, itineraryID string, index int) (*db_models.Itinerary, error) {
	itinerary, err := s.loadOwned(ctx, accountID, itineraryID)
	if err != nil {
		return nil, err
	}

	before := len(itinerary.Destinations)
	itinerary.RemoveDestinationAt(index)
	if len(itinerary.Destinations) == before {
		return itinerary, nil
	}

	if err := s.itineraryRepo.Update(ctx, itinerary); err != nil {
		log.Printf("Error updating itinerary: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return itinerary, nil
}

func (s *ItineraryService) ReorderDestinations(ctx context.Context, accountID, itineraryID string, fromIndices []int, toIndex int) (*db_models.Itinerary, error) {
	itinerary, err := s.loadOwned(ctx, accountID, itineraryID)
	if err != nil {
		return nil, err
	}

	before := destinationOrder(itinerary)
	itinerary.ReorderDestinations(fromIndices, toIndex)
	if destinationOrder(itinerary) == before {
		return itinerary, nil
	}

	if err := s.itineraryRepo.Update(ctx, itinerary); err != nil {
		log.Printf("Error updating itinerary: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return itinerary, nil
}

func (s *ItineraryService) OptimizeItinerary(ctx context.Context, accountID, itineraryID string) (*db_models.Itinerary, error) {
	itinerary, err := s.loadOwned(ctx, accountID, itineraryID)
	if err != nil {
		return nil, err
	}

	itinerary.Destinations = OptimizeDestinations(itinerary.Destinations)
	itinerary.RecomputeDerived()

	if err := s.itineraryRepo.Update(ctx, itinerary); err != nil {
		log.Printf("Error updating itinerary: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return itinerary, nil
}

func (s *ItineraryService) loadOwned(ctx context.Context, accountID, itineraryID string) (*db_models.Itinerary, error) {
	itinerary, err := s.itineraryRepo.GetByID(ctx, itineraryID)
	if err != nil {
		log.Printf("Error fetching itinerary: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	if itinerary.AccountID.String() != accountID {
		return nil, utils.ErrNotOwner
	}
	return itinerary, nil
}

func destinationOrder(itinerary *db_models.Itinerary) string {
	order := ""
	for i := range itinerary.Destinations {
		order += itinerary.Destinations[i].ID.String() + ";"
	}
	return order
}
