package models

// NotificationChannel identifies the delivery channel for a notification
type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "email"
	ChannelSMS   NotificationChannel = "sms"
	ChannelChat  NotificationChannel = "chat"
)

// NotificationRequest is a templated message to be delivered best-effort
// over a single channel. Dispatch is a single attempt; failure is logged
// and never affects the business state that triggered it.
type NotificationRequest struct {
	Channel     NotificationChannel `json:"channel"`
	Recipient   string              `json:"recipient"`
	TemplateKey string              `json:"template_key"`
	Data        map[string]string   `json:"data,omitempty"`
}
