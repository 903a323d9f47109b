package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mealbridge/mealbridge/internal/pkg/apperrors"
	"github.com/mealbridge/mealbridge/internal/pkg/logger"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/services/notification"
	"github.com/sirupsen/logrus"
)

const defaultSendTimeout = 5 * time.Second

type NotificationUC struct {
	senders     map[models.NotificationChannel]notification.Sender
	sendTimeout time.Duration
	log         *logger.AppLogger
}

// NewNotificationUC creates a dispatcher over the given channel senders
func NewNotificationUC(cfg *models.Config, senders []notification.Sender, log *logger.AppLogger) *NotificationUC {
	byChannel := make(map[models.NotificationChannel]notification.Sender, len(senders))
	for _, s := range senders {
		byChannel[s.Channel()] = s
	}

	timeout := defaultSendTimeout
	if cfg.Notification.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.Notification.TimeoutSeconds) * time.Second
	}

	return &NotificationUC{
		senders:     byChannel,
		sendTimeout: timeout,
		log:         log,
	}
}

// Dispatch renders the request's template and hands it to the channel's
// sender. Exactly one attempt is made; the send is bounded by the configured
// timeout so a slow provider cannot stall the worker.
func (uc *NotificationUC) Dispatch(ctx context.Context, req *models.NotificationRequest) error {
	if req.Recipient == "" {
		return apperrors.NewValidation("recipient", "must not be empty")
	}

	sender, ok := uc.senders[req.Channel]
	if !ok {
		return fmt.Errorf("no sender registered for channel %q", req.Channel)
	}

	message, err := renderTemplate(req.TemplateKey, req.Data)
	if err != nil {
		return err
	}

	sendCtx, cancel := context.WithTimeout(ctx, uc.sendTimeout)
	defer cancel()

	if err := sender.Send(sendCtx, req.Recipient, message); err != nil {
		uc.log.WithFields(logrus.Fields{
			"channel":      string(req.Channel),
			"template_key": req.TemplateKey,
			"error":        err.Error(),
		}).Warn("Notification delivery failed")
		return err
	}

	uc.log.WithFields(logrus.Fields{
		"channel":      string(req.Channel),
		"template_key": req.TemplateKey,
	}).Info("Notification delivered")
	return nil
}
