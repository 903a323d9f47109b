package geocoder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mealbridge/mealbridge/internal/pkg/apperrors"
	"github.com/mealbridge/mealbridge/internal/pkg/logger"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log, err := logger.NewAppLogger(models.LoggerConfig{Level: "error"}, "location-service-test")
	require.NoError(t, err)

	resolver := NewClient(models.GeocoderConfig{
		BaseURL:        srv.URL,
		APIKey:         "test-key",
		TimeoutSeconds: 2,
		PageSize:       3,
	}, log)

	return srv, resolver.(*Client)
}

func TestGeocode_Success(t *testing.T) {
	_, client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode", r.URL.Path)
		assert.Equal(t, "221B Baker Street", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"formatted_address": "221B Baker St, London",
				"place_id": "place-221b",
				"geometry": {"location": {"lat": 51.5238, "lng": -0.1586}}
			}]
		}`))
	})

	result, err := client.Geocode(context.Background(), "221B Baker Street")
	require.NoError(t, err)
	assert.Equal(t, "221B Baker St, London", result.FormattedAddress)
	assert.Equal(t, "place-221b", result.PlaceID)
	assert.InDelta(t, 51.5238, result.Point.Latitude, 0.0001)
	assert.InDelta(t, -0.1586, result.Point.Longitude, 0.0001)
}

func TestGeocode_ZeroResultsFailsClosed(t *testing.T) {
	_, client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	result, err := client.Geocode(context.Background(), "invalid-garbage-address")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrResolutionFailed)
}

func TestGeocode_ProviderErrorIsUpstreamUnavailable(t *testing.T) {
	_, client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Geocode(context.Background(), "221B Baker Street")
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	assert.NotErrorIs(t, err, apperrors.ErrResolutionFailed)
}

func TestGeocode_NetworkErrorIsUpstreamUnavailable(t *testing.T) {
	srv, client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := client.Geocode(context.Background(), "221B Baker Street")
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestReverseGeocode_Success(t *testing.T) {
	_, client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("latlng"))
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"formatted_address": "Galle Face Green, Colombo",
				"place_id": "place-ggf",
				"geometry": {"location": {"lat": 6.9271, "lng": 79.8612}}
			}]
		}`))
	})

	result, err := client.ReverseGeocode(context.Background(), models.GeoPoint{Longitude: 79.8612, Latitude: 6.9271})
	require.NoError(t, err)
	assert.Equal(t, "Galle Face Green, Colombo", result.FormattedAddress)
	assert.Equal(t, "place-ggf", result.PlaceID)
}

func TestAutocomplete_BoundedToPageSize(t *testing.T) {
	_, client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/autocomplete", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"predictions": [
				{"description": "Baker Street 1", "place_id": "p1"},
				{"description": "Baker Street 2", "place_id": "p2"},
				{"description": "Baker Street 3", "place_id": "p3"},
				{"description": "Baker Street 4", "place_id": "p4"},
				{"description": "Baker Street 5", "place_id": "p5"}
			]
		}`))
	})

	suggestions, err := client.Autocomplete(context.Background(), "Baker")
	require.NoError(t, err)
	// Page size configured as 3 in newTestClient
	require.Len(t, suggestions, 3)
	assert.Equal(t, "Baker Street 1", suggestions[0].Description)
	assert.Equal(t, "p1", suggestions[0].PlaceID)
}

func TestAutocomplete_NoPredictions(t *testing.T) {
	_, client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "OK", "predictions": []}`))
	})

	_, err := client.Autocomplete(context.Background(), "zzzzz")
	assert.ErrorIs(t, err, apperrors.ErrResolutionFailed)
}
