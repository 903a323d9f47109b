package usecase

import (
	"context"
	"encoding/json"

	"github.com/mealbridge/mealbridge/internal/pkg/logger"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/services/gateway"
	"github.com/sirupsen/logrus"
)

// placeholder shown when best-effort enrichment fails
const unavailable = "N/A"

type GatewayUC struct {
	cfg *models.Config
	gw  gateway.GatewayGW
	log *logger.AppLogger
}

// NewGatewayUC creates a new gateway usecase
func NewGatewayUC(cfg *models.Config, gw gateway.GatewayGW, log *logger.AppLogger) *GatewayUC {
	return &GatewayUC{
		cfg: cfg,
		gw:  gw,
		log: log,
	}
}

// DeliveryView returns a delivery enriched with order details. The delivery
// fetch is the primary call and its failure propagates untouched; order
// enrichment failures degrade to placeholder values.
func (uc *GatewayUC) DeliveryView(ctx context.Context, deliveryID string) (*models.DeliveryView, error) {
	record, err := uc.gw.GetDelivery(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	view := &models.DeliveryView{
		Delivery:       record,
		RestaurantName: unavailable,
		CustomerName:   unavailable,
	}

	summary, err := uc.gw.GetOrderSummary(ctx, record.OrderID)
	if err != nil {
		uc.log.WithFields(logrus.Fields{
			"delivery_id": deliveryID,
			"order_id":    record.OrderID,
			"error":       err.Error(),
		}).Warn("Order enrichment unavailable, serving degraded view")
		return view, nil
	}

	if summary.RestaurantName != "" {
		view.RestaurantName = summary.RestaurantName
	}
	if summary.CustomerName != "" {
		view.CustomerName = summary.CustomerName
	}
	return view, nil
}

// NearbyRestaurants returns restaurants around a point with display names.
// Name lookups are sequential and best-effort; a failed lookup leaves the
// placeholder in place without dropping the entry.
func (uc *GatewayUC) NearbyRestaurants(ctx context.Context, origin models.GeoPoint, radiusMeters float64) ([]models.RestaurantView, error) {
	nearby, err := uc.gw.FindNearbyRestaurants(ctx, origin, radiusMeters)
	if err != nil {
		return nil, err
	}

	views := make([]models.RestaurantView, 0, len(nearby))
	for _, entry := range nearby {
		view := models.RestaurantView{
			EntityID:       entry.Location.EntityID,
			Name:           unavailable,
			Address:        entry.Location.Address,
			Location:       entry.Location.Point,
			DistanceMeters: entry.DistanceMeters,
		}

		name, err := uc.gw.GetRestaurantName(ctx, entry.Location.EntityID)
		if err != nil {
			uc.log.WithFields(logrus.Fields{
				"restaurant_id": entry.Location.EntityID,
				"error":         err.Error(),
			}).Warn("Restaurant name enrichment unavailable")
		} else if name != "" {
			view.Name = name
		}

		views = append(views, view)
	}
	return views, nil
}

// AssignDelivery forwards an explicit assignment
func (uc *GatewayUC) AssignDelivery(ctx context.Context, req *models.AssignDeliveryRequest) (*models.DeliveryRecord, error) {
	return uc.gw.AssignDelivery(ctx, req)
}

// AutoAssignDelivery forwards an auto-dispatch request
func (uc *GatewayUC) AutoAssignDelivery(ctx context.Context, req *models.AutoAssignDeliveryRequest) (*models.DeliveryRecord, error) {
	return uc.gw.AutoAssignDelivery(ctx, req)
}

// UpdateDeliveryStatus forwards a status transition
func (uc *GatewayUC) UpdateDeliveryStatus(ctx context.Context, deliveryID string, status models.DeliveryStatus) (*models.DeliveryRecord, error) {
	return uc.gw.UpdateDeliveryStatus(ctx, deliveryID, status)
}

// Login forwards credentials to the auth service
func (uc *GatewayUC) Login(ctx context.Context, req *models.LoginRequest) (json.RawMessage, error) {
	return uc.gw.Login(ctx, req)
}
