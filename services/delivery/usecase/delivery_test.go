package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mealbridge/mealbridge/internal/pkg/apperrors"
	"github.com/mealbridge/mealbridge/internal/pkg/logger"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/services/delivery"
	"github.com/mealbridge/mealbridge/services/delivery/mocks"
	"github.com/mealbridge/mealbridge/services/delivery/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		Dispatch: models.DispatchConfig{
			SearchRadiusMeters: 10000,
			MaxCandidates:      10,
		},
	}
}

func testLogger(t *testing.T) *logger.AppLogger {
	log, err := logger.NewAppLogger(models.LoggerConfig{Level: "error"}, "delivery-test")
	require.NoError(t, err)
	return log
}

func driverAt(id string, distance float64) models.NearbyLocation {
	return models.NearbyLocation{
		Location: models.Location{
			EntityID:   id,
			EntityType: models.EntityTypeDriver,
		},
		DistanceMeters: distance,
	}
}

func TestAssign_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeliveryRepo(ctrl)
	mockGW := mocks.NewMockDeliveryGW(ctrl)
	uc := usecase.NewDeliveryUC(testConfig(), mockRepo, mockGW, testLogger(t))

	mockRepo.EXPECT().
		CreateAssignment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *models.DeliveryRecord) error {
			assert.Equal(t, "order-1", rec.OrderID)
			assert.Equal(t, "driver-1", rec.DeliveryPersonID)
			assert.Equal(t, models.DeliveryStatusAssigned, rec.Status)
			assert.False(t, rec.AssignedAt.IsZero())
			return nil
		})
	mockGW.EXPECT().PublishNotification(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishDeliveryEvent(gomock.Any(), gomock.Any()).Return(nil)

	rec, err := uc.Assign(context.Background(), &delivery.AssignRequest{
		OrderID:          "order-1",
		DeliveryPersonID: "driver-1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryStatusAssigned, rec.Status)
}

func TestAssign_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := usecase.NewDeliveryUC(testConfig(), mocks.NewMockDeliveryRepo(ctrl), mocks.NewMockDeliveryGW(ctrl), testLogger(t))

	_, err := uc.Assign(context.Background(), &delivery.AssignRequest{DeliveryPersonID: "driver-1"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = uc.Assign(context.Background(), &delivery.AssignRequest{OrderID: "order-1"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestAssign_OrderAlreadyTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeliveryRepo(ctrl)
	mockGW := mocks.NewMockDeliveryGW(ctrl)
	uc := usecase.NewDeliveryUC(testConfig(), mockRepo, mockGW, testLogger(t))

	mockRepo.EXPECT().
		CreateAssignment(gomock.Any(), gomock.Any()).
		Return(apperrors.ErrAlreadyAssigned)

	_, err := uc.Assign(context.Background(), &delivery.AssignRequest{
		OrderID:          "order-1",
		DeliveryPersonID: "driver-2",
	})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyAssigned)
}

func TestTransition_FullLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeliveryRepo(ctrl)
	mockGW := mocks.NewMockDeliveryGW(ctrl)
	uc := usecase.NewDeliveryUC(testConfig(), mockRepo, mockGW, testLogger(t))

	id := uuid.New()
	now := time.Now().UTC()
	assigned := &models.DeliveryRecord{ID: id, OrderID: "order-1", DeliveryPersonID: "driver-1", Status: models.DeliveryStatusAssigned, AssignedAt: now}
	pickedUp := &models.DeliveryRecord{ID: id, OrderID: "order-1", DeliveryPersonID: "driver-1", Status: models.DeliveryStatusPickedUp, AssignedAt: now, PickedUpAt: &now}
	delivered := &models.DeliveryRecord{ID: id, OrderID: "order-1", DeliveryPersonID: "driver-1", Status: models.DeliveryStatusDelivered, AssignedAt: now, PickedUpAt: &now, DeliveredAt: &now}

	mockGW.EXPECT().PublishNotification(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	mockGW.EXPECT().PublishDeliveryEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	mockRepo.EXPECT().GetByID(gomock.Any(), id.String()).Return(assigned, nil)
	mockRepo.EXPECT().
		UpdateStatus(gomock.Any(), id.String(), models.DeliveryStatusAssigned, models.DeliveryStatusPickedUp).
		Return(pickedUp, nil)

	rec, err := uc.Transition(context.Background(), id.String(), models.DeliveryStatusPickedUp)
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryStatusPickedUp, rec.Status)

	mockRepo.EXPECT().GetByID(gomock.Any(), id.String()).Return(pickedUp, nil)
	mockRepo.EXPECT().
		UpdateStatus(gomock.Any(), id.String(), models.DeliveryStatusPickedUp, models.DeliveryStatusDelivered).
		Return(delivered, nil)

	rec, err = uc.Transition(context.Background(), id.String(), models.DeliveryStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryStatusDelivered, rec.Status)
}

func TestTransition_SkippingStatusRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeliveryRepo(ctrl)
	mockGW := mocks.NewMockDeliveryGW(ctrl)
	uc := usecase.NewDeliveryUC(testConfig(), mockRepo, mockGW, testLogger(t))

	id := uuid.New()
	assigned := &models.DeliveryRecord{ID: id, OrderID: "order-1", DeliveryPersonID: "driver-1", Status: models.DeliveryStatusAssigned, AssignedAt: time.Now().UTC()}

	mockRepo.EXPECT().GetByID(gomock.Any(), id.String()).Return(assigned, nil)

	// No UpdateStatus expectation: an illegal jump must not touch the record.
	_, err := uc.Transition(context.Background(), id.String(), models.DeliveryStatusDelivered)
	assert.ErrorIs(t, err, apperrors.ErrIllegalTransition)
}

func TestTransition_TerminalStatusRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeliveryRepo(ctrl)
	mockGW := mocks.NewMockDeliveryGW(ctrl)
	uc := usecase.NewDeliveryUC(testConfig(), mockRepo, mockGW, testLogger(t))

	id := uuid.New()
	now := time.Now().UTC()
	delivered := &models.DeliveryRecord{ID: id, Status: models.DeliveryStatusDelivered, AssignedAt: now, PickedUpAt: &now, DeliveredAt: &now}

	mockRepo.EXPECT().GetByID(gomock.Any(), id.String()).Return(delivered, nil)

	_, err := uc.Transition(context.Background(), id.String(), models.DeliveryStatusPickedUp)
	assert.ErrorIs(t, err, apperrors.ErrIllegalTransition)
}

func TestTransition_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeliveryRepo(ctrl)
	mockGW := mocks.NewMockDeliveryGW(ctrl)
	uc := usecase.NewDeliveryUC(testConfig(), mockRepo, mockGW, testLogger(t))

	mockRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, apperrors.ErrNotFound)

	_, err := uc.Transition(context.Background(), "missing", models.DeliveryStatusPickedUp)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTransition_NotificationFailureDoesNotPropagate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeliveryRepo(ctrl)
	mockGW := mocks.NewMockDeliveryGW(ctrl)
	uc := usecase.NewDeliveryUC(testConfig(), mockRepo, mockGW, testLogger(t))

	id := uuid.New()
	now := time.Now().UTC()
	assigned := &models.DeliveryRecord{ID: id, OrderID: "order-1", DeliveryPersonID: "driver-1", Status: models.DeliveryStatusAssigned, AssignedAt: now}
	pickedUp := &models.DeliveryRecord{ID: id, OrderID: "order-1", DeliveryPersonID: "driver-1", Status: models.DeliveryStatusPickedUp, AssignedAt: now, PickedUpAt: &now}

	mockRepo.EXPECT().GetByID(gomock.Any(), id.String()).Return(assigned, nil)
	mockRepo.EXPECT().
		UpdateStatus(gomock.Any(), id.String(), models.DeliveryStatusAssigned, models.DeliveryStatusPickedUp).
		Return(pickedUp, nil)

	mockGW.EXPECT().PublishNotification(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	mockGW.EXPECT().PublishDeliveryEvent(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	rec, err := uc.Transition(context.Background(), id.String(), models.DeliveryStatusPickedUp)
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryStatusPickedUp, rec.Status)
}

func TestAutoAssign_PicksNearestDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeliveryRepo(ctrl)
	mockGW := mocks.NewMockDeliveryGW(ctrl)
	uc := usecase.NewDeliveryUC(testConfig(), mockRepo, mockGW, testLogger(t))

	origin := models.GeoPoint{Longitude: 79.85, Latitude: 6.9}
	mockGW.EXPECT().
		GeocodeAddress(gomock.Any(), "1 Galle Road, Colombo").
		Return(&models.GeocodeResult{Point: origin}, nil)
	mockGW.EXPECT().
		FindNearbyDrivers(gomock.Any(), origin, 10000.0).
		Return([]models.NearbyLocation{driverAt("driver-near", 500), driverAt("driver-far", 3000)}, nil)
	mockRepo.EXPECT().
		CreateAssignment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *models.DeliveryRecord) error {
			assert.Equal(t, "driver-near", rec.DeliveryPersonID)
			return nil
		})
	mockGW.EXPECT().PublishNotification(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishDeliveryEvent(gomock.Any(), gomock.Any()).Return(nil)

	rec, err := uc.AutoAssign(context.Background(), &delivery.AutoAssignRequest{
		OrderID:           "order-1",
		RestaurantAddress: "1 Galle Road, Colombo",
	})
	require.NoError(t, err)
	assert.Equal(t, "driver-near", rec.DeliveryPersonID)
}

func TestAutoAssign_FallsBackToNextCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeliveryRepo(ctrl)
	mockGW := mocks.NewMockDeliveryGW(ctrl)
	uc := usecase.NewDeliveryUC(testConfig(), mockRepo, mockGW, testLogger(t))

	origin := models.GeoPoint{Longitude: 79.85, Latitude: 6.9}
	mockGW.EXPECT().GeocodeAddress(gomock.Any(), gomock.Any()).Return(&models.GeocodeResult{Point: origin}, nil)
	mockGW.EXPECT().
		FindNearbyDrivers(gomock.Any(), origin, 10000.0).
		Return([]models.NearbyLocation{driverAt("driver-a", 500), driverAt("driver-b", 900)}, nil)

	gomock.InOrder(
		mockRepo.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).Return(errors.New("insert failed")),
		mockRepo.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec *models.DeliveryRecord) error {
			assert.Equal(t, "driver-b", rec.DeliveryPersonID)
			return nil
		}),
	)
	mockGW.EXPECT().PublishNotification(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishDeliveryEvent(gomock.Any(), gomock.Any()).Return(nil)

	rec, err := uc.AutoAssign(context.Background(), &delivery.AutoAssignRequest{
		OrderID:           "order-1",
		RestaurantAddress: "somewhere",
	})
	require.NoError(t, err)
	assert.Equal(t, "driver-b", rec.DeliveryPersonID)
}

func TestAutoAssign_StopsWhenOrderAlreadyAssigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeliveryRepo(ctrl)
	mockGW := mocks.NewMockDeliveryGW(ctrl)
	uc := usecase.NewDeliveryUC(testConfig(), mockRepo, mockGW, testLogger(t))

	origin := models.GeoPoint{Longitude: 79.85, Latitude: 6.9}
	mockGW.EXPECT().GeocodeAddress(gomock.Any(), gomock.Any()).Return(&models.GeocodeResult{Point: origin}, nil)
	mockGW.EXPECT().
		FindNearbyDrivers(gomock.Any(), origin, 10000.0).
		Return([]models.NearbyLocation{driverAt("driver-a", 500), driverAt("driver-b", 900)}, nil)

	// A concurrent dispatcher already claimed the order; trying the next
	// driver could double-assign it, so the walk stops.
	mockRepo.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).Return(apperrors.ErrAlreadyAssigned)

	_, err := uc.AutoAssign(context.Background(), &delivery.AutoAssignRequest{
		OrderID:           "order-1",
		RestaurantAddress: "somewhere",
	})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyAssigned)
}

func TestAutoAssign_NoDrivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeliveryRepo(ctrl)
	mockGW := mocks.NewMockDeliveryGW(ctrl)
	uc := usecase.NewDeliveryUC(testConfig(), mockRepo, mockGW, testLogger(t))

	origin := models.GeoPoint{Longitude: 79.85, Latitude: 6.9}
	mockGW.EXPECT().GeocodeAddress(gomock.Any(), gomock.Any()).Return(&models.GeocodeResult{Point: origin}, nil)
	mockGW.EXPECT().FindNearbyDrivers(gomock.Any(), origin, 10000.0).Return(nil, nil)

	_, err := uc.AutoAssign(context.Background(), &delivery.AutoAssignRequest{
		OrderID:           "order-1",
		RestaurantAddress: "somewhere",
	})
	assert.ErrorIs(t, err, apperrors.ErrNoDriversAvailable)
}

func TestAutoAssign_GeocodeFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeliveryRepo(ctrl)
	mockGW := mocks.NewMockDeliveryGW(ctrl)
	uc := usecase.NewDeliveryUC(testConfig(), mockRepo, mockGW, testLogger(t))

	mockGW.EXPECT().GeocodeAddress(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrResolutionFailed)

	_, err := uc.AutoAssign(context.Background(), &delivery.AutoAssignRequest{
		OrderID:           "order-1",
		RestaurantAddress: "nowhere at all",
	})
	assert.ErrorIs(t, err, apperrors.ErrResolutionFailed)
}

func TestAutoAssign_RadiusOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDeliveryRepo(ctrl)
	mockGW := mocks.NewMockDeliveryGW(ctrl)
	uc := usecase.NewDeliveryUC(testConfig(), mockRepo, mockGW, testLogger(t))

	origin := models.GeoPoint{Longitude: 79.85, Latitude: 6.9}
	mockGW.EXPECT().GeocodeAddress(gomock.Any(), gomock.Any()).Return(&models.GeocodeResult{Point: origin}, nil)
	mockGW.EXPECT().FindNearbyDrivers(gomock.Any(), origin, 2500.0).Return(nil, nil)

	_, err := uc.AutoAssign(context.Background(), &delivery.AutoAssignRequest{
		OrderID:            "order-1",
		RestaurantAddress:  "somewhere",
		SearchRadiusMeters: 2500,
	})
	assert.ErrorIs(t, err, apperrors.ErrNoDriversAvailable)
}
