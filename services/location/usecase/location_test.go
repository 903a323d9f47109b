package usecase

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/mealbridge/mealbridge/internal/pkg/apperrors"
	"github.com/mealbridge/mealbridge/internal/pkg/database"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/services/location"
	"github.com/mealbridge/mealbridge/services/location/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResolver satisfies location.AddressResolver without a provider
type fakeResolver struct {
	geocodeResult *models.GeocodeResult
	geocodeErr    error
}

func (f *fakeResolver) Geocode(ctx context.Context, address string) (*models.GeocodeResult, error) {
	return f.geocodeResult, f.geocodeErr
}

func (f *fakeResolver) ReverseGeocode(ctx context.Context, point models.GeoPoint) (*models.GeocodeResult, error) {
	return f.geocodeResult, f.geocodeErr
}

func (f *fakeResolver) Autocomplete(ctx context.Context, partial string) ([]models.AddressSuggestion, error) {
	return nil, f.geocodeErr
}

func setupUC(t *testing.T) location.LocationUC {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	repo := repository.NewLocationRepository(client)

	cfg := &models.Config{}
	cfg.Dispatch.MaxCandidates = 10

	return NewLocationUC(repo, &fakeResolver{}, cfg)
}

func TestUpsertLocation_SetsGeohashAndTimestamp(t *testing.T) {
	uc := setupUC(t)

	loc, err := uc.UpsertLocation(context.Background(), &models.Location{
		EntityID:   "rest-1",
		EntityType: models.EntityTypeRestaurant,
		Point:      models.GeoPoint{Longitude: 79.8612, Latitude: 6.9271},
		Address:    "Colombo Fort",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, loc.Geohash)
	assert.False(t, loc.UpdatedAt.IsZero())
}

func TestUpsertLocation_Validation(t *testing.T) {
	uc := setupUC(t)
	ctx := context.Background()

	_, err := uc.UpsertLocation(ctx, &models.Location{
		EntityType: models.EntityTypeRestaurant,
		Point:      models.GeoPoint{Longitude: 79.85, Latitude: 6.90},
	})
	assert.True(t, apperrors.IsValidation(err))

	_, err = uc.UpsertLocation(ctx, &models.Location{
		EntityID:   "rest-1",
		EntityType: "warehouse",
		Point:      models.GeoPoint{Longitude: 79.85, Latitude: 6.90},
	})
	assert.True(t, apperrors.IsValidation(err))

	_, err = uc.UpsertLocation(ctx, &models.Location{
		EntityID:   "rest-1",
		EntityType: models.EntityTypeRestaurant,
		Point:      models.GeoPoint{Longitude: 200, Latitude: 6.90},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)
}

func TestFindCandidates_OrderedWithinRadius(t *testing.T) {
	uc := setupUC(t)
	ctx := context.Background()

	origin := models.GeoPoint{Longitude: 79.85, Latitude: 6.90}

	// One restaurant ~2km out, one ~8km out
	_, err := uc.UpsertLocation(ctx, &models.Location{
		EntityID:   "rest-near",
		EntityType: models.EntityTypeRestaurant,
		Point:      models.GeoPoint{Longitude: 79.85, Latitude: 6.918},
	})
	require.NoError(t, err)
	_, err = uc.UpsertLocation(ctx, &models.Location{
		EntityID:   "rest-far",
		EntityType: models.EntityTypeRestaurant,
		Point:      models.GeoPoint{Longitude: 79.85, Latitude: 6.972},
	})
	require.NoError(t, err)

	candidates, err := uc.FindCandidates(ctx, origin, models.EntityTypeRestaurant, 5000)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "rest-near", candidates[0].Location.EntityID)
	assert.InDelta(t, 2000, candidates[0].DistanceMeters, 100)
}

func TestFindCandidates_EmptyResultIsNormal(t *testing.T) {
	uc := setupUC(t)

	candidates, err := uc.FindCandidates(context.Background(), models.GeoPoint{Longitude: 0, Latitude: 0}, models.EntityTypeDriver, 5000)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestFindCandidates_DefaultRadius(t *testing.T) {
	uc := setupUC(t)
	ctx := context.Background()

	origin := models.GeoPoint{Longitude: 79.85, Latitude: 6.90}

	// ~8km out, inside the 10km default
	_, err := uc.UpsertLocation(ctx, &models.Location{
		EntityID:   "rest-far",
		EntityType: models.EntityTypeRestaurant,
		Point:      models.GeoPoint{Longitude: 79.85, Latitude: 6.972},
	})
	require.NoError(t, err)

	candidates, err := uc.FindCandidates(ctx, origin, models.EntityTypeRestaurant, 0)
	require.NoError(t, err)
	assert.Len(t, candidates, 1)
}

func TestFindCandidates_InvalidOrigin(t *testing.T) {
	uc := setupUC(t)

	_, err := uc.FindCandidates(context.Background(), models.GeoPoint{Longitude: 0, Latitude: 99}, models.EntityTypeDriver, 5000)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)
}

func TestGeocode_EmptyAddress(t *testing.T) {
	uc := setupUC(t)

	_, err := uc.Geocode(context.Background(), "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestRemoveLocation_DriverOffShift(t *testing.T) {
	uc := setupUC(t)
	ctx := context.Background()

	origin := models.GeoPoint{Longitude: 79.85, Latitude: 6.90}
	_, err := uc.UpsertLocation(ctx, &models.Location{
		EntityID:   "driver-1",
		EntityType: models.EntityTypeDriver,
		Point:      origin,
	})
	require.NoError(t, err)

	require.NoError(t, uc.RemoveLocation(ctx, "driver-1", models.EntityTypeDriver))

	candidates, err := uc.FindCandidates(ctx, origin, models.EntityTypeDriver, 5000)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}
