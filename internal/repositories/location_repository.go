package repositories

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"wander/internal/models/db_models"
	"wander/pkg/utils"
)

type LocationRepository interface {
	Create(ctx context.Context, location *db_models.Location) (uuid.UUID, error)
	Update(ctx context.Context, location *db_models.Location) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Location, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Location, error)
	Nearby(ctx context.Context, category *db_models.Category, radiusMeters float64, lat, lng float64) ([]db_models.Location, error)
	Search(ctx context.Context, query string, lat, lng float64) ([]db_models.Location, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, location *db_models.Location) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(location).Error; err != nil {
		return uuid.Nil, err
	}
	return location.ID, nil
}

func (r *locationRepository) Update(ctx context.Context, location *db_models.Location) error {
	result := r.db.WithContext(ctx).Save(location)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Location{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *locationRepository) GetByID(ctx context.Context, id string) (*db_models.Location, error) {
	var location db_models.Location
	err := r.db.WithContext(ctx).First(&location, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Location, error) {
	var locations []db_models.Location
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(pageSize).
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

// Nearby does a cheap bounding-box query in SQL and an exact great-circle
// check in Go. One degree of latitude is ~111 km; the longitude window
// widens with latitude.
func (r *locationRepository) Nearby(ctx context.Context, category *db_models.Category, radiusMeters float64, lat, lng float64) ([]db_models.Location, error) {
	if !utils.ValidLatLng(lat, lng) || radiusMeters <= 0 {
		return nil, utils.ErrInvalidCoordinate
	}

	radiusKm := radiusMeters / 1000.0
	latDelta := radiusKm / 111.0
	lngDelta := 180.0
	if cosLat := math.Cos(lat * math.Pi / 180); cosLat > 1e-6 {
		lngDelta = radiusKm / (111.0 * cosLat)
	}

	q := r.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", lat-latDelta, lat+latDelta).
		Where("longitude BETWEEN ? AND ?", lng-lngDelta, lng+lngDelta)
	if category != nil {
		q = q.Where("category = ?", *category)
	}

	var candidates []db_models.Location
	if err := q.Find(&candidates).Error; err != nil {
		return nil, err
	}

	results := make([]db_models.Location, 0, len(candidates))
	for _, loc := range candidates {
		d, err := utils.HaversineKm(lat, lng, loc.Latitude, loc.Longitude)
		if err != nil {
			continue
		}
		if d <= radiusKm {
			results = append(results, loc)
		}
	}
	return results, nil
}

func (r *locationRepository) Search(ctx context.Context, query string, lat, lng float64) ([]db_models.Location, error) {
	var locations []db_models.Location
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR description ILIKE ?", "%"+query+"%", "%"+query+"%").
		Limit(50).
		Find(&locations).Error
	if err != nil {
		return nil, err
	}

	if utils.ValidLatLng(lat, lng) {
		sortByDistance(locations, lat, lng)
	}
	return locations, nil
}

func sortByDistance(locations []db_models.Location, lat, lng float64) {
	type keyed struct {
		loc  db_models.Location
		dist float64
	}
	items := make([]keyed, len(locations))
	for i, loc := range locations {
		d, err := utils.HaversineKm(lat, lng, loc.Latitude, loc.Longitude)
		if err != nil {
			d = math.MaxFloat64
		}
		items[i] = keyed{loc: loc, dist: d}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].dist < items[j].dist })
	for i := range items {
		locations[i] = items[i].loc
	}
}
