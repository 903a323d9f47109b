package notification

import (
	"context"

	"github.com/mealbridge/mealbridge/internal/pkg/models"
)

// NotificationUC defines the notification dispatch interface
type NotificationUC interface {
	// Dispatch renders the request's template and makes a single delivery
	// attempt on the matching channel.
	Dispatch(ctx context.Context, req *models.NotificationRequest) error
}
