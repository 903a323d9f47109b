package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mealbridge/mealbridge/internal/pkg/constants"
	httpclient "github.com/mealbridge/mealbridge/internal/pkg/http"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/internal/pkg/nsq"
	"github.com/mealbridge/mealbridge/services/delivery"
)

type deliveryGW struct {
	locationClient *httpclient.APIKeyClient
	producer       *nsq.Producer
}

// NewDeliveryGW creates the delivery service's outbound gateway
func NewDeliveryGW(locationClient *httpclient.APIKeyClient, producer *nsq.Producer) delivery.DeliveryGW {
	return &deliveryGW{
		locationClient: locationClient,
		producer:       producer,
	}
}

type geocodeRequest struct {
	Address string `json:"address"`
}

type geocodeResponse struct {
	Coordinates      []float64 `json:"coordinates"`
	FormattedAddress string    `json:"formattedAddress"`
	PlaceID          string    `json:"placeId"`
}

type nearbyEntry struct {
	EntityID string          `json:"entityId"`
	Address  string          `json:"address"`
	Location models.GeoPoint `json:"location"`
	Distance float64         `json:"distance"`
}

// GeocodeAddress resolves an address through the location service
func (g *deliveryGW) GeocodeAddress(ctx context.Context, address string) (*models.GeocodeResult, error) {
	var resp geocodeResponse
	err := g.locationClient.PostJSON(ctx, "/internal/locations/geocode", geocodeRequest{Address: address}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Coordinates) != 2 {
		return nil, fmt.Errorf("location service returned malformed coordinates for %q", address)
	}

	return &models.GeocodeResult{
		Point:            models.GeoPoint{Longitude: resp.Coordinates[0], Latitude: resp.Coordinates[1]},
		FormattedAddress: resp.FormattedAddress,
		PlaceID:          resp.PlaceID,
	}, nil
}

// FindNearbyDrivers asks the location service for available drivers around a point
func (g *deliveryGW) FindNearbyDrivers(ctx context.Context, origin models.GeoPoint, radiusMeters float64) ([]models.NearbyLocation, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", origin.Latitude))
	params.Set("lng", fmt.Sprintf("%f", origin.Longitude))
	params.Set("distance", fmt.Sprintf("%f", radiusMeters))
	params.Set("entityType", string(models.EntityTypeDriver))

	var entries []nearbyEntry
	if err := g.locationClient.GetJSON(ctx, "/internal/locations/nearby?"+params.Encode(), &entries); err != nil {
		return nil, err
	}

	drivers := make([]models.NearbyLocation, 0, len(entries))
	for _, e := range entries {
		drivers = append(drivers, models.NearbyLocation{
			Location: models.Location{
				EntityID:   e.EntityID,
				EntityType: models.EntityTypeDriver,
				Point:      e.Location,
				Address:    e.Address,
			},
			DistanceMeters: e.Distance,
		})
	}
	return drivers, nil
}

// PublishDeliveryEvent emits a lifecycle event on the matching topic
func (g *deliveryGW) PublishDeliveryEvent(ctx context.Context, event *models.DeliveryEvent) error {
	topic := constants.TopicDeliveryAssigned
	if event.Status == models.DeliveryStatusDelivered {
		topic = constants.TopicDeliveryCompleted
	}
	return g.producer.Publish(topic, event)
}

// PublishNotification enqueues a notification request for the worker
func (g *deliveryGW) PublishNotification(ctx context.Context, req *models.NotificationRequest) error {
	return g.producer.Publish(constants.TopicNotificationRequests, req)
}
