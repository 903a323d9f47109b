package http_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	httpclient "github.com/mealbridge/mealbridge/internal/pkg/http"
	"github.com/mealbridge/mealbridge/internal/pkg/logger"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/services/gateway"
	gatewayHTTP "github.com/mealbridge/mealbridge/services/gateway/gateway/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelopeJSON(data interface{}) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"success": true,
		"data":    data,
	})
	return body
}

func testGateway(t *testing.T, deliveryURL, locationURL, orderURL, authURL string) gateway.GatewayGW {
	t.Helper()
	log, err := logger.NewAppLogger(models.LoggerConfig{Level: "error"}, "gateway-client-test")
	require.NoError(t, err)

	cfg := &models.Config{
		APIKey: models.APIKeyConfig{
			DeliveryService: "delivery-key",
			LocationService: "location-key",
			GatewayService:  "gateway-key",
		},
		Services: models.ServicesConfig{
			DeliveryServiceURL: deliveryURL,
			LocationServiceURL: locationURL,
			OrderServiceURL:    orderURL,
			AuthServiceURL:     authURL,
		},
	}
	return gatewayHTTP.NewHTTPGateway(cfg, log)
}

func TestGetDelivery_DecodesEnvelope(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/internal/deliveries/d-1", r.URL.Path)
		assert.Equal(t, "delivery-key", r.Header.Get("X-API-Key"))
		w.Write(envelopeJSON(map[string]interface{}{
			"order_id":           "order-1",
			"delivery_person_id": "driver-1",
			"status":             "assigned",
		}))
	}))
	defer server.Close()

	gw := testGateway(t, server.URL, "", "", "")

	record, err := gw.GetDelivery(context.Background(), "d-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", record.OrderID)
	assert.Equal(t, models.DeliveryStatusAssigned, record.Status)
}

func TestUpdateDeliveryStatus_ConflictBecomesUpstreamError(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPut, r.Method)
		w.WriteHeader(nethttp.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "illegal status transition",
		})
	}))
	defer server.Close()

	gw := testGateway(t, server.URL, "", "", "")

	_, err := gw.UpdateDeliveryStatus(context.Background(), "d-1", models.DeliveryStatusDelivered)
	require.Error(t, err)

	ue, ok := httpclient.AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, nethttp.StatusConflict, ue.StatusCode)
	assert.Equal(t, "illegal status transition", ue.Message)
}

func TestFindNearbyRestaurants_BuildsQuery(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/internal/locations/nearby", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, string(models.EntityTypeRestaurant), q.Get("entityType"))
		assert.NotEmpty(t, q.Get("lat"))
		assert.NotEmpty(t, q.Get("lng"))
		w.Write(envelopeJSON([]map[string]interface{}{
			{"entityId": "rest-1", "location": map[string]float64{"longitude": 79.85, "latitude": 6.9}, "distance": 420.5},
		}))
	}))
	defer server.Close()

	gw := testGateway(t, "", server.URL, "", "")

	results, err := gw.FindNearbyRestaurants(context.Background(), models.GeoPoint{Longitude: 79.86, Latitude: 6.91}, 5000)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "rest-1", results[0].Location.EntityID)
	assert.Equal(t, models.EntityTypeRestaurant, results[0].Location.EntityType)
	assert.Equal(t, 420.5, results[0].DistanceMeters)
}

func TestGetOrderSummary_ServiceDown(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
	server.Close()

	gw := testGateway(t, "", "", server.URL, "")

	_, err := gw.GetOrderSummary(context.Background(), "order-1")
	assert.Error(t, err)
}

func TestLogin_ReturnsRawReply(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/internal/auth/login", r.URL.Path)
		w.Write(envelopeJSON(map[string]string{"token": "jwt-token", "role": "driver"}))
	}))
	defer server.Close()

	gw := testGateway(t, "", "", "", server.URL)

	raw, err := gw.Login(context.Background(), &models.LoginRequest{Email: "driver@example.com", Password: "secret"})
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "jwt-token", decoded["token"])
}
