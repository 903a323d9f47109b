package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	httpclient "github.com/mealbridge/mealbridge/internal/pkg/http"
	"github.com/mealbridge/mealbridge/internal/pkg/logger"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/services/gateway"
)

// HTTPGateway implements GatewayGW over the sibling services' internal APIs
type HTTPGateway struct {
	deliveryClient *httpclient.APIKeyClient
	locationClient *httpclient.APIKeyClient
	orderClient    *httpclient.APIKeyClient
	authClient     *httpclient.APIKeyClient
}

// NewHTTPGateway creates API-key clients for each sibling service
func NewHTTPGateway(cfg *models.Config, log *logger.AppLogger) gateway.GatewayGW {
	return &HTTPGateway{
		deliveryClient: httpclient.NewAPIKeyClient(cfg.APIKey.DeliveryService, cfg.Services.DeliveryServiceURL, "gateway-service", log),
		locationClient: httpclient.NewAPIKeyClient(cfg.APIKey.LocationService, cfg.Services.LocationServiceURL, "gateway-service", log),
		orderClient:    httpclient.NewAPIKeyClient(cfg.APIKey.GatewayService, cfg.Services.OrderServiceURL, "gateway-service", log),
		authClient:     httpclient.NewAPIKeyClient(cfg.APIKey.GatewayService, cfg.Services.AuthServiceURL, "gateway-service", log),
	}
}

// AssignDelivery forwards an explicit assignment to the delivery service
func (g *HTTPGateway) AssignDelivery(ctx context.Context, req *models.AssignDeliveryRequest) (*models.DeliveryRecord, error) {
	var record models.DeliveryRecord
	if err := g.deliveryClient.PostJSON(ctx, "/internal/deliveries", req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// AutoAssignDelivery forwards an auto-dispatch request to the delivery service
func (g *HTTPGateway) AutoAssignDelivery(ctx context.Context, req *models.AutoAssignDeliveryRequest) (*models.DeliveryRecord, error) {
	var record models.DeliveryRecord
	if err := g.deliveryClient.PostJSON(ctx, "/internal/deliveries/auto-assign", req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateDeliveryStatus forwards a status transition to the delivery service
func (g *HTTPGateway) UpdateDeliveryStatus(ctx context.Context, deliveryID string, status models.DeliveryStatus) (*models.DeliveryRecord, error) {
	endpoint := fmt.Sprintf("/internal/deliveries/%s/status", deliveryID)
	body := map[string]models.DeliveryStatus{"status": status}

	var record models.DeliveryRecord
	if err := g.deliveryClient.PutJSON(ctx, endpoint, body, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// GetDelivery fetches a delivery record from the delivery service
func (g *HTTPGateway) GetDelivery(ctx context.Context, deliveryID string) (*models.DeliveryRecord, error) {
	var record models.DeliveryRecord
	if err := g.deliveryClient.GetJSON(ctx, "/internal/deliveries/"+deliveryID, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

type nearbyEntry struct {
	EntityID string          `json:"entityId"`
	Address  string          `json:"address"`
	Location models.GeoPoint `json:"location"`
	Distance float64         `json:"distance"`
}

// FindNearbyRestaurants queries the location service for restaurants around a point
func (g *HTTPGateway) FindNearbyRestaurants(ctx context.Context, origin models.GeoPoint, radiusMeters float64) ([]models.NearbyLocation, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", origin.Latitude))
	params.Set("lng", fmt.Sprintf("%f", origin.Longitude))
	params.Set("distance", fmt.Sprintf("%f", radiusMeters))
	params.Set("entityType", string(models.EntityTypeRestaurant))

	var entries []nearbyEntry
	if err := g.locationClient.GetJSON(ctx, "/internal/locations/nearby?"+params.Encode(), &entries); err != nil {
		return nil, err
	}

	results := make([]models.NearbyLocation, 0, len(entries))
	for _, e := range entries {
		results = append(results, models.NearbyLocation{
			Location: models.Location{
				EntityID:   e.EntityID,
				EntityType: models.EntityTypeRestaurant,
				Point:      e.Location,
				Address:    e.Address,
			},
			DistanceMeters: e.Distance,
		})
	}
	return results, nil
}

// GetOrderSummary fetches order details from the order service
func (g *HTTPGateway) GetOrderSummary(ctx context.Context, orderID string) (*models.OrderSummary, error) {
	var summary models.OrderSummary
	if err := g.orderClient.GetJSON(ctx, "/internal/orders/"+orderID, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

type restaurantInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GetRestaurantName fetches a restaurant's display name from the order service
func (g *HTTPGateway) GetRestaurantName(ctx context.Context, restaurantID string) (string, error) {
	var info restaurantInfo
	if err := g.orderClient.GetJSON(ctx, "/internal/restaurants/"+restaurantID, &info); err != nil {
		return "", err
	}
	return info.Name, nil
}

// Login forwards credentials to the auth service and returns its reply verbatim
func (g *HTTPGateway) Login(ctx context.Context, req *models.LoginRequest) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := g.authClient.PostJSON(ctx, "/internal/auth/login", req, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
