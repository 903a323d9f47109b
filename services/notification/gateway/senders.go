package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mealbridge/mealbridge/internal/pkg/apperrors"
	"github.com/mealbridge/mealbridge/internal/pkg/models"
	"github.com/mealbridge/mealbridge/services/notification"
)

// providerSender posts rendered messages to an external provider endpoint.
// One sender instance serves one channel.
type providerSender struct {
	channel models.NotificationChannel
	url     string
	apiKey  string
	client  *http.Client
}

func newProviderSender(channel models.NotificationChannel, url, apiKey string, cfg models.NotificationConfig) notification.Sender {
	timeout := 5 * time.Second
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &providerSender{
		channel: channel,
		url:     url,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// NewEmailSender creates the email channel sender
func NewEmailSender(cfg models.NotificationConfig) notification.Sender {
	return newProviderSender(models.ChannelEmail, cfg.EmailProviderURL, cfg.EmailAPIKey, cfg)
}

// NewSMSSender creates the SMS channel sender
func NewSMSSender(cfg models.NotificationConfig) notification.Sender {
	return newProviderSender(models.ChannelSMS, cfg.SMSProviderURL, cfg.SMSAPIKey, cfg)
}

// NewChatSender creates the in-app chat channel sender
func NewChatSender(cfg models.NotificationConfig) notification.Sender {
	return newProviderSender(models.ChannelChat, cfg.ChatWebhookURL, "", cfg)
}

func (s *providerSender) Channel() models.NotificationChannel {
	return s.channel
}

type providerPayload struct {
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
}

// Send makes a single delivery attempt against the provider
func (s *providerSender) Send(ctx context.Context, recipient, message string) error {
	if s.url == "" {
		return fmt.Errorf("channel %s: no provider configured", s.channel)
	}

	body, err := json.Marshal(providerPayload{Recipient: recipient, Message: message})
	if err != nil {
		return fmt.Errorf("failed to marshal provider payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("channel %s provider unreachable: %w", s.channel, apperrors.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("channel %s provider returned %s", s.channel, resp.Status)
	}
	return nil
}
