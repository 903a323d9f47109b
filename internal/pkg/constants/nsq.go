package constants

// NSQ topics
const (
	// Delivery lifecycle events
	TopicDeliveryAssigned  = "delivery.assigned"
	TopicDeliveryCompleted = "delivery.completed"

	// Notification requests consumed by the notification worker
	TopicNotificationRequests = "notification.requests"
)

// NSQ channels
const (
	ChannelNotificationWorker = "notification-worker"
)
