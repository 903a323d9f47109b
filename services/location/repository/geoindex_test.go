package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/mealbridge/mealbridge/internal/pkg/apperrors"
	"github.com/mealbridge/mealbridge/internal/pkg/database"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, &database.RedisClient{Client: client}
}

func testLocation(entityID string, entityType models.EntityType, lng, lat float64) *models.Location {
	return &models.Location{
		EntityID:   entityID,
		EntityType: entityType,
		Point:      models.GeoPoint{Longitude: lng, Latitude: lat},
		Address:    "1 Test Street",
		PlaceID:    "place-" + entityID,
		UpdatedAt:  time.Now(),
	}
}

func TestUpsertAndGet(t *testing.T) {
	_, client := setupMiniredis(t)
	repo := NewLocationRepository(client)
	ctx := context.Background()

	loc := testLocation("rest-1", models.EntityTypeRestaurant, 79.8612, 6.9271)
	require.NoError(t, repo.Upsert(ctx, loc))

	got, err := repo.Get(ctx, "rest-1", models.EntityTypeRestaurant)
	require.NoError(t, err)
	assert.Equal(t, "rest-1", got.EntityID)
	assert.Equal(t, models.EntityTypeRestaurant, got.EntityType)
	assert.InDelta(t, 79.8612, got.Point.Longitude, 0.0001)
	assert.InDelta(t, 6.9271, got.Point.Latitude, 0.0001)
	assert.Equal(t, "1 Test Street", got.Address)
	assert.Equal(t, "place-rest-1", got.PlaceID)
}

func TestUpsert_ReplacesExisting(t *testing.T) {
	_, client := setupMiniredis(t)
	repo := NewLocationRepository(client)
	ctx := context.Background()

	first := testLocation("rest-1", models.EntityTypeRestaurant, 79.8612, 6.9271)
	require.NoError(t, repo.Upsert(ctx, first))

	moved := testLocation("rest-1", models.EntityTypeRestaurant, 80.6337, 7.2906)
	moved.Address = "2 New Street"
	require.NoError(t, repo.Upsert(ctx, moved))

	// Get always returns exactly one record, the latest
	got, err := repo.Get(ctx, "rest-1", models.EntityTypeRestaurant)
	require.NoError(t, err)
	assert.InDelta(t, 80.6337, got.Point.Longitude, 0.0001)
	assert.Equal(t, "2 New Street", got.Address)

	// The geo set holds a single member for the key
	near, err := repo.FindNear(ctx, models.GeoPoint{Longitude: 80.6337, Latitude: 7.2906}, 1_000_000, models.EntityTypeRestaurant, 0)
	require.NoError(t, err)
	assert.Len(t, near, 1)
}

func TestGet_NotFound(t *testing.T) {
	_, client := setupMiniredis(t)
	repo := NewLocationRepository(client)

	_, err := repo.Get(context.Background(), "ghost", models.EntityTypeCustomer)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDelete_RemovesEntry(t *testing.T) {
	_, client := setupMiniredis(t)
	repo := NewLocationRepository(client)
	ctx := context.Background()

	loc := testLocation("driver-1", models.EntityTypeDriver, 79.8612, 6.9271)
	require.NoError(t, repo.Upsert(ctx, loc))
	require.NoError(t, repo.Delete(ctx, "driver-1", models.EntityTypeDriver))

	_, err := repo.Get(ctx, "driver-1", models.EntityTypeDriver)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	near, err := repo.FindNear(ctx, loc.Point, 1_000_000, models.EntityTypeDriver, 0)
	require.NoError(t, err)
	assert.Empty(t, near)
}

func TestFindNear_RadiusAndOrdering(t *testing.T) {
	_, client := setupMiniredis(t)
	repo := NewLocationRepository(client)
	ctx := context.Background()

	origin := models.GeoPoint{Longitude: 79.85, Latitude: 6.90}

	// ~2km north of origin
	near := testLocation("rest-near", models.EntityTypeRestaurant, 79.85, 6.918)
	// ~8km north of origin
	far := testLocation("rest-far", models.EntityTypeRestaurant, 79.85, 6.972)
	require.NoError(t, repo.Upsert(ctx, near))
	require.NoError(t, repo.Upsert(ctx, far))

	// Only the 2km restaurant falls inside a 5km radius
	got, err := repo.FindNear(ctx, origin, 5000, models.EntityTypeRestaurant, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "rest-near", got[0].Location.EntityID)
	assert.InDelta(t, 2000, got[0].DistanceMeters, 100)

	// A wider radius returns both, ascending by distance and bounded
	got, err = repo.FindNear(ctx, origin, 10000, models.EntityTypeRestaurant, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "rest-near", got[0].Location.EntityID)
	assert.Equal(t, "rest-far", got[1].Location.EntityID)
	assert.LessOrEqual(t, got[0].DistanceMeters, got[1].DistanceMeters)
	for _, n := range got {
		assert.LessOrEqual(t, n.DistanceMeters, 10000.0)
	}
}

func TestFindNear_EmptyIsNotAnError(t *testing.T) {
	_, client := setupMiniredis(t)
	repo := NewLocationRepository(client)

	got, err := repo.FindNear(context.Background(), models.GeoPoint{Longitude: 0, Latitude: 0}, 5000, models.EntityTypeDriver, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindNear_FiltersByEntityType(t *testing.T) {
	_, client := setupMiniredis(t)
	repo := NewLocationRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testLocation("rest-1", models.EntityTypeRestaurant, 79.85, 6.90)))
	require.NoError(t, repo.Upsert(ctx, testLocation("driver-1", models.EntityTypeDriver, 79.85, 6.90)))

	got, err := repo.FindNear(ctx, models.GeoPoint{Longitude: 79.85, Latitude: 6.90}, 5000, models.EntityTypeDriver, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "driver-1", got[0].Location.EntityID)
}
