package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mealbridge/mealbridge/internal/pkg/apperrors"
	"github.com/mealbridge/mealbridge/internal/pkg/constants"
	"github.com/mealbridge/mealbridge/internal/pkg/database"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/internal/utils"
	"github.com/mealbridge/mealbridge/services/location"
)

// DefaultFindLimit caps GEORADIUS results when the caller does not
const DefaultFindLimit = 50

type locationRepo struct {
	redisClient *database.RedisClient
}

// NewLocationRepository creates a new geo index backed by Redis
func NewLocationRepository(redisClient *database.RedisClient) location.LocationRepo {
	return &locationRepo{
		redisClient: redisClient,
	}
}

func geoKey(entityType models.EntityType) string {
	return fmt.Sprintf(constants.KeyEntityGeo, entityType)
}

func metaKey(entityID string, entityType models.EntityType) string {
	return fmt.Sprintf(constants.KeyEntityLocation, entityType, entityID)
}

// Upsert replaces any existing entry for (entityID, entityType). GEOADD on
// an existing member updates its coordinates, so replace semantics hold
// without a separate delete.
func (r *locationRepo) Upsert(ctx context.Context, loc *models.Location) error {
	if err := r.redisClient.GeoAdd(ctx, geoKey(loc.EntityType), loc.Point.Longitude, loc.Point.Latitude, loc.EntityID); err != nil {
		return fmt.Errorf("failed to index location: %w", err)
	}

	meta := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(loc.Point.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(loc.Point.Longitude, 'f', -1, 64),
		constants.FieldAddress:   loc.Address,
		constants.FieldPlaceID:   loc.PlaceID,
		constants.FieldGeohash:   loc.Geohash,
		constants.FieldUpdatedAt: strconv.FormatInt(loc.UpdatedAt.Unix(), 10),
	}
	if err := r.redisClient.HMSet(ctx, metaKey(loc.EntityID, loc.EntityType), meta); err != nil {
		return fmt.Errorf("failed to store location metadata: %w", err)
	}

	return nil
}

// Get returns the location for the key, or apperrors.ErrNotFound
func (r *locationRepo) Get(ctx context.Context, entityID string, entityType models.EntityType) (*models.Location, error) {
	values, err := r.redisClient.HGetAll(ctx, metaKey(entityID, entityType))
	if err != nil {
		return nil, fmt.Errorf("failed to get location metadata: %w", err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("location for %s %s: %w", entityType, entityID, apperrors.ErrNotFound)
	}

	lat, err := strconv.ParseFloat(values[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	loc := &models.Location{
		EntityID:   entityID,
		EntityType: entityType,
		Point:      models.GeoPoint{Longitude: lng, Latitude: lat},
		Address:    values[constants.FieldAddress],
		PlaceID:    values[constants.FieldPlaceID],
		Geohash:    values[constants.FieldGeohash],
	}
	if ts, err := strconv.ParseInt(values[constants.FieldUpdatedAt], 10, 64); err == nil {
		loc.UpdatedAt = time.Unix(ts, 0)
	}

	return loc, nil
}

// Delete removes the entry from the geo set and its metadata
func (r *locationRepo) Delete(ctx context.Context, entityID string, entityType models.EntityType) error {
	if err := r.redisClient.GeoRemove(ctx, geoKey(entityType), entityID); err != nil {
		return fmt.Errorf("failed to remove from geo index: %w", err)
	}
	if err := r.redisClient.Delete(ctx, metaKey(entityID, entityType)); err != nil {
		return fmt.Errorf("failed to remove location metadata: %w", err)
	}
	return nil
}

// FindNear returns entries within maxDistanceMeters, ascending by distance.
// Redis computes distances on its spherical model and sorts ASC; ties keep
// the index's stable member order.
func (r *locationRepo) FindNear(ctx context.Context, point models.GeoPoint, maxDistanceMeters float64, entityType models.EntityType, limit int) ([]models.NearbyLocation, error) {
	if limit <= 0 {
		limit = DefaultFindLimit
	}

	hits, err := r.redisClient.GeoRadius(ctx, geoKey(entityType), point.Longitude, point.Latitude, maxDistanceMeters, "m", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}

	results := make([]models.NearbyLocation, 0, len(hits))
	for _, hit := range hits {
		loc, err := r.Get(ctx, hit.Name, entityType)
		if err != nil {
			// Metadata can lag behind the geo set; fall back to coordinates
			// from the index itself.
			loc = &models.Location{
				EntityID:   hit.Name,
				EntityType: entityType,
				Point:      models.GeoPoint{Longitude: hit.Longitude, Latitude: hit.Latitude},
				Geohash:    utils.EncodeLocation(models.GeoPoint{Longitude: hit.Longitude, Latitude: hit.Latitude}),
			}
		}
		results = append(results, models.NearbyLocation{
			Location:       *loc,
			DistanceMeters: hit.Dist,
		})
	}

	return results, nil
}
