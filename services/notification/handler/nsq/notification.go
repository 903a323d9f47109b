package nsq

import (
	"context"

	"github.com/mealbridge/mealbridge/internal/pkg/constants"
	"github.com/mealbridge/mealbridge/internal/pkg/logger"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	nsqpkg "github.com/mealbridge/mealbridge/internal/pkg/nsq"
	"github.com/mealbridge/mealbridge/services/notification"
	"github.com/sirupsen/logrus"
)

// NotificationHandler consumes notification requests from NSQ
type NotificationHandler struct {
	notificationUC notification.NotificationUC
	cfg            *models.Config
	log            *logger.AppLogger
	consumer       *nsqpkg.Consumer
}

// NewNotificationHandler creates a new NSQ notification handler
func NewNotificationHandler(notificationUC notification.NotificationUC, cfg *models.Config, log *logger.AppLogger) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
		cfg:            cfg,
		log:            log,
	}
}

// InitConsumers starts consuming the notification request topic
func (h *NotificationHandler) InitConsumers() error {
	consumer, err := nsqpkg.NewConsumer(
		constants.TopicNotificationRequests,
		constants.ChannelNotificationWorker,
		h.cfg.NSQ.Address,
		h.handleNotificationRequest,
	)
	if err != nil {
		return err
	}
	h.consumer = consumer
	return nil
}

// Stop shuts down the consumer
func (h *NotificationHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}

// handleNotificationRequest dispatches one queued notification. Delivery is
// best-effort: failures are logged and the message is finished rather than
// requeued, so one bad message never loops forever.
func (h *NotificationHandler) handleNotificationRequest(message []byte) error {
	var req models.NotificationRequest
	if err := nsqpkg.UnmarshalMessage(message, &req); err != nil {
		h.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to unmarshal notification request")
		return nil
	}

	if err := h.notificationUC.Dispatch(context.Background(), &req); err != nil {
		h.log.WithFields(logrus.Fields{
			"channel":      string(req.Channel),
			"template_key": req.TemplateKey,
			"error":        err.Error(),
		}).Warn("Dropping failed notification request")
	}
	return nil
}
