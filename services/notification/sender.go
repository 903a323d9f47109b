package notification

import (
	"context"

	"github.com/mealbridge/mealbridge/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_sender.go -package=mocks github.com/mealbridge/mealbridge/services/notification Sender

// Sender delivers one rendered message over a single channel. Implementations
// make exactly one attempt; retry policy belongs to the caller, and today
// there is none.
type Sender interface {
	Channel() models.NotificationChannel
	Send(ctx context.Context, recipient, message string) error
}
