package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mealbridge/mealbridge/internal/pkg/apperrors"
	"github.com/mealbridge/mealbridge/internal/pkg/logger"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/services/delivery"
	"github.com/sirupsen/logrus"
)

type DeliveryUC struct {
	cfg  *models.Config
	repo delivery.DeliveryRepo
	gw   delivery.DeliveryGW
	log  *logger.AppLogger
}

// NewDeliveryUC creates a new delivery usecase
func NewDeliveryUC(cfg *models.Config, repo delivery.DeliveryRepo, gw delivery.DeliveryGW, log *logger.AppLogger) *DeliveryUC {
	return &DeliveryUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
		log:  log,
	}
}

// Assign creates a delivery record binding a driver to an order
func (uc *DeliveryUC) Assign(ctx context.Context, req *delivery.AssignRequest) (*models.DeliveryRecord, error) {
	if req.OrderID == "" {
		return nil, apperrors.NewValidation("order_id", "must not be empty")
	}
	if req.DeliveryPersonID == "" {
		return nil, apperrors.NewValidation("delivery_person_id", "must not be empty")
	}

	record := &models.DeliveryRecord{
		ID:               uuid.New(),
		OrderID:          req.OrderID,
		DeliveryPersonID: req.DeliveryPersonID,
		Status:           models.DeliveryStatusAssigned,
		AssignedAt:       time.Now().UTC(),
		Notes:            req.Notes,
	}

	if err := uc.repo.CreateAssignment(ctx, record); err != nil {
		return nil, err
	}

	uc.afterCommit(ctx, record)
	return record, nil
}

// AutoAssign geocodes the restaurant address, then walks nearby drivers in
// ascending distance order until one assignment sticks. A driver lost to a
// concurrent assignment of the same order surfaces as ErrAlreadyAssigned and
// stops the walk; any other insert failure moves on to the next candidate.
func (uc *DeliveryUC) AutoAssign(ctx context.Context, req *delivery.AutoAssignRequest) (*models.DeliveryRecord, error) {
	if req.OrderID == "" {
		return nil, apperrors.NewValidation("order_id", "must not be empty")
	}
	if req.RestaurantAddress == "" {
		return nil, apperrors.NewValidation("restaurant_address", "must not be empty")
	}

	origin, err := uc.gw.GeocodeAddress(ctx, req.RestaurantAddress)
	if err != nil {
		return nil, err
	}

	radius := req.SearchRadiusMeters
	if radius <= 0 {
		radius = uc.cfg.Dispatch.SearchRadiusMeters
	}

	drivers, err := uc.gw.FindNearbyDrivers(ctx, origin.Point, radius)
	if err != nil {
		return nil, err
	}
	if len(drivers) == 0 {
		return nil, fmt.Errorf("order %s: %w", req.OrderID, apperrors.ErrNoDriversAvailable)
	}

	for _, candidate := range drivers {
		record := &models.DeliveryRecord{
			ID:               uuid.New(),
			OrderID:          req.OrderID,
			DeliveryPersonID: candidate.Location.EntityID,
			Status:           models.DeliveryStatusAssigned,
			AssignedAt:       time.Now().UTC(),
			Notes:            req.Notes,
		}

		err := uc.repo.CreateAssignment(ctx, record)
		if err == nil {
			uc.afterCommit(ctx, record)
			return record, nil
		}
		if errors.Is(err, apperrors.ErrAlreadyAssigned) {
			return nil, err
		}
		uc.log.WithFields(logrus.Fields{
			"order_id":  req.OrderID,
			"driver_id": candidate.Location.EntityID,
			"error":     err.Error(),
		}).Warn("Skipping dispatch candidate after failed assignment")
	}

	return nil, fmt.Errorf("order %s: %w", req.OrderID, apperrors.ErrNoDriversAvailable)
}

// Transition advances a delivery to the target status. Only the immediate
// successor of the current status is accepted; everything else is rejected
// without touching the record.
func (uc *DeliveryUC) Transition(ctx context.Context, deliveryID string, target models.DeliveryStatus) (*models.DeliveryRecord, error) {
	if deliveryID == "" {
		return nil, apperrors.NewValidation("delivery_id", "must not be empty")
	}

	current, err := uc.repo.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	next, ok := current.Status.Next()
	if !ok || next != target {
		return nil, fmt.Errorf("delivery %s cannot move from %s to %s: %w",
			deliveryID, current.Status, target, apperrors.ErrIllegalTransition)
	}

	updated, err := uc.repo.UpdateStatus(ctx, deliveryID, current.Status, target)
	if err != nil {
		return nil, err
	}

	uc.afterCommit(ctx, updated)
	return updated, nil
}

// GetByID retrieves a single delivery record
func (uc *DeliveryUC) GetByID(ctx context.Context, deliveryID string) (*models.DeliveryRecord, error) {
	if deliveryID == "" {
		return nil, apperrors.NewValidation("delivery_id", "must not be empty")
	}
	return uc.repo.GetByID(ctx, deliveryID)
}

// ListByDriver retrieves all deliveries for a driver
func (uc *DeliveryUC) ListByDriver(ctx context.Context, deliveryPersonID string) ([]*models.DeliveryRecord, error) {
	if deliveryPersonID == "" {
		return nil, apperrors.NewValidation("delivery_person_id", "must not be empty")
	}
	return uc.repo.ListByDriver(ctx, deliveryPersonID)
}

// ListCompletedByDriver retrieves a driver's delivered records
func (uc *DeliveryUC) ListCompletedByDriver(ctx context.Context, deliveryPersonID string) ([]*models.DeliveryRecord, error) {
	if deliveryPersonID == "" {
		return nil, apperrors.NewValidation("delivery_person_id", "must not be empty")
	}
	return uc.repo.ListCompletedByDriver(ctx, deliveryPersonID)
}

// afterCommit runs post-commit side effects. The record is already persisted,
// so failures here are logged and swallowed rather than surfaced to the
// caller.
func (uc *DeliveryUC) afterCommit(ctx context.Context, record *models.DeliveryRecord) {
	uc.runHook(ctx, record, "notification", func(ctx context.Context) error {
		return uc.gw.PublishNotification(ctx, notificationFor(record))
	})
	uc.runHook(ctx, record, "lifecycle_event", func(ctx context.Context) error {
		return uc.gw.PublishDeliveryEvent(ctx, &models.DeliveryEvent{
			DeliveryID:       record.ID.String(),
			OrderID:          record.OrderID,
			DeliveryPersonID: record.DeliveryPersonID,
			Status:           record.Status,
			OccurredAt:       time.Now().UTC(),
		})
	})
}

func (uc *DeliveryUC) runHook(ctx context.Context, record *models.DeliveryRecord, name string, fn func(context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			uc.log.WithFields(logrus.Fields{
				"hook":        name,
				"delivery_id": record.ID.String(),
				"panic":       fmt.Sprintf("%v", r),
			}).Error("Post-commit hook panicked")
		}
	}()

	if err := fn(ctx); err != nil {
		uc.log.WithFields(logrus.Fields{
			"hook":        name,
			"delivery_id": record.ID.String(),
			"order_id":    record.OrderID,
			"error":       err.Error(),
		}).Warn("Post-commit hook failed")
	}
}

func notificationFor(record *models.DeliveryRecord) *models.NotificationRequest {
	templateKey := "delivery_assigned"
	switch record.Status {
	case models.DeliveryStatusPickedUp:
		templateKey = "delivery_picked_up"
	case models.DeliveryStatusDelivered:
		templateKey = "delivery_completed"
	}

	return &models.NotificationRequest{
		Channel:     models.ChannelChat,
		Recipient:   record.DeliveryPersonID,
		TemplateKey: templateKey,
		Data: map[string]string{
			"order_id":    record.OrderID,
			"delivery_id": record.ID.String(),
			"status":      string(record.Status),
		},
	}
}
