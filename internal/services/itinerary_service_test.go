package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/pkg/utils"
)

type stubLocationRepo struct {
	byID map[string]*db_models.Location
}

func newStubLocationRepo(locations ...db_models.Location) *stubLocationRepo {
	repo := &stubLocationRepo{byID: make(map[string]*db_models.Location)}
	for i := range locations {
		loc := locations[i]
		repo.byID[loc.ID.String()] = &loc
	}
	return repo
}

func (r *stubLocationRepo) Create(ctx context.Context, location *db_models.Location) (uuid.UUID, error) {
	r.byID[location.ID.String()] = location
	return location.ID, nil
}

func (r *stubLocationRepo) Update(ctx context.Context, location *db_models.Location) error {
	r.byID[location.ID.String()] = location
	return nil
}

func (r *stubLocationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.byID, id.String())
	return nil
}

func (r *stubLocationRepo) GetByID(ctx context.Context, id string) (*db_models.Location, error) {
	return r.byID[id], nil
}

func (r *stubLocationRepo) List(ctx context.Context, page, pageSize int) ([]db_models.Location, error) {
	var out []db_models.Location
	for _, loc := range r.byID {
		out = append(out, *loc)
	}
	return out, nil
}

func (r *stubLocationRepo) Nearby(ctx context.Context, category *db_models.Category, radiusMeters float64, lat, lng float64) ([]db_models.Location, error) {
	return nil, nil
}

func (r *stubLocationRepo) Search(ctx context.Context, query string, lat, lng float64) ([]db_models.Location, error) {
	return nil, nil
}

func seedItinerary(repo *stubItineraryRepo, owner uuid.UUID, destinations ...db_models.Location) *db_models.Itinerary {
	it := newServiceTestItinerary(destinations...)
	it.AccountID = owner
	repo.stored[it.ID.String()] = it
	return it
}

func newServiceTestItinerary(destinations ...db_models.Location) *db_models.Itinerary {
	it := &db_models.Itinerary{
		Title:          "Weekend",
		Destinations:   destinations,
		TravelStyle:    db_models.StyleBalanced,
		Transportation: db_models.TransportMixed,
	}
	it.ID = uuid.New()
	it.RecomputeDerived()
	return it
}

func TestRemoveDestinationAtOutOfRangeSkipsStoreWrite(t *testing.T) {
	owner := uuid.New()
	itRepo := newStubItineraryRepo()
	it := seedItinerary(itRepo, owner,
		testLocation("A", 0, 0),
		testLocation("B", 0, 1),
		testLocation("C", 0, 2),
	)
	svc := NewItineraryService(itRepo, newStubLocationRepo())

	got, err := svc.RemoveDestinationAt(context.Background(), owner.String(), it.ID.String(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Destinations) != 3 {
		t.Fatalf("destination count = %d, want 3", len(got.Destinations))
	}
	if itRepo.updated != 0 {
		t.Fatalf("updates = %d, want 0 for a no-op remove", itRepo.updated)
	}
}

func TestRemoveDestinationAtPersistsChange(t *testing.T) {
	owner := uuid.New()
	itRepo := newStubItineraryRepo()
	it := seedItinerary(itRepo, owner,
		testLocation("A", 0, 0),
		testLocation("B", 0, 1),
	)
	svc := NewItineraryService(itRepo, newStubLocationRepo())

	got, err := svc.RemoveDestinationAt(context.Background(), owner.String(), it.ID.String(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Destinations) != 1 {
		t.Fatalf("destination count = %d, want 1", len(got.Destinations))
	}
	if itRepo.updated != 1 {
		t.Fatalf("updates = %d, want 1", itRepo.updated)
	}
}

func TestOptimizeItineraryReordersAndRecomputes(t *testing.T) {
	owner := uuid.New()
	itRepo := newStubItineraryRepo()
	it := seedItinerary(itRepo, owner,
		testLocation("A", 0, 0),
		testLocation("far", 0, 5),
		testLocation("near", 0, 1),
	)
	before := it.TotalDistanceKm
	svc := NewItineraryService(itRepo, newStubLocationRepo())

	got, err := svc.OptimizeItinerary(context.Background(), owner.String(), it.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := orderNames(got.Destinations)
	want := []string{"A", "near", "far"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
	if got.TotalDistanceKm >= before {
		t.Fatalf("distance = %f, want less than %f after optimization", got.TotalDistanceKm, before)
	}
	if itRepo.updated != 1 {
		t.Fatalf("updates = %d, want 1", itRepo.updated)
	}
}

func TestItineraryOwnershipEnforced(t *testing.T) {
	owner := uuid.New()
	itRepo := newStubItineraryRepo()
	it := seedItinerary(itRepo, owner, testLocation("A", 0, 0))
	svc := NewItineraryService(itRepo, newStubLocationRepo())

	stranger := uuid.New().String()
	if _, err := svc.GetItinerary(context.Background(), stranger, it.ID.String()); err != utils.ErrNotOwner {
		t.Fatalf("err = %v, want ErrNotOwner", err)
	}
}

func TestGetItineraryNotFound(t *testing.T) {
	svc := NewItineraryService(newStubItineraryRepo(), newStubLocationRepo())
	if _, err := svc.GetItinerary(context.Background(), uuid.New().String(), uuid.New().String()); err != utils.ErrItineraryNotFound {
		t.Fatalf("err = %v, want ErrItineraryNotFound", err)
	}
}

func TestAddDestinationUnknownLocation(t *testing.T) {
	owner := uuid.New()
	itRepo := newStubItineraryRepo()
	it := seedItinerary(itRepo, owner, testLocation("A", 0, 0))
	svc := NewItineraryService(itRepo, newStubLocationRepo())

	if _, err := svc.AddDestination(context.Background(), owner.String(), it.ID.String(), uuid.New().String()); err != utils.ErrLocationNotFound {
		t.Fatalf("err = %v, want ErrLocationNotFound", err)
	}
}

func TestAddDestinationAppendsAndPersists(t *testing.T) {
	owner := uuid.New()
	itRepo := newStubItineraryRepo()
	it := seedItinerary(itRepo, owner, testLocation("A", 0, 0))
	extra := testLocation("B", 0, 1)
	svc := NewItineraryService(itRepo, newStubLocationRepo(extra))

	got, err := svc.AddDestination(context.Background(), owner.String(), it.ID.String(), extra.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Destinations) != 2 || got.Destinations[1].Name != "B" {
		t.Fatalf("destinations = %v, want A then B", orderNames(got.Destinations))
	}
	if got.TotalDistanceKm == 0 {
		t.Fatal("metrics should be recomputed after add")
	}
	if itRepo.updated != 1 {
		t.Fatalf("updates = %d, want 1", itRepo.updated)
	}
}

func TestCreateItineraryResolvesLocations(t *testing.T) {
	owner := uuid.New()
	itRepo := newStubItineraryRepo()
	a := testLocation("A", 0, 0)
	b := testLocation("B", 0, 1)
	svc := NewItineraryService(itRepo, newStubLocationRepo(a, b))

	got, err := svc.CreateItinerary(context.Background(), owner.String(), request_models.CreateItineraryRequest{
		Title:          "Coast run",
		StartDate:      utils.FromUnixSeconds(1780000000),
		EndDate:        utils.FromUnixSeconds(1780086400),
		TravelStyle:    string(db_models.StyleBalanced),
		Transportation: string(db_models.TransportCar),
		LocationIDs:    []string{a.ID.String(), b.ID.String()},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Destinations) != 2 {
		t.Fatalf("destination count = %d, want 2", len(got.Destinations))
	}
	if got.TotalDistanceKm == 0 {
		t.Fatal("metrics should be computed at creation")
	}
	if len(itRepo.created) != 1 {
		t.Fatalf("stored itineraries = %d, want 1", len(itRepo.created))
	}
}
