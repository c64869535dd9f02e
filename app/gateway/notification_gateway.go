package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"admin-gate/app/domain"
)

// Publisher is the transport the gateway publishes notification envelopes
// through, one channel per session.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// NotificationGateway adapts a raw publisher to the push-channel contract:
// it wraps the event in a JSON envelope and addresses it to the session's
// channel. Delivery is fire-and-forget.
type NotificationGateway struct {
	publisher Publisher
	logger    *slog.Logger
}

// NewNotificationGateway creates a new notification gateway.
func NewNotificationGateway(publisher Publisher, logger *slog.Logger) *NotificationGateway {
	return &NotificationGateway{
		publisher: publisher,
		logger:    logger.With("component", "notification_gateway"),
	}
}

// Push publishes the event to the session's notification channel.
func (g *NotificationGateway) Push(ctx context.Context, session domain.SessionHandle, eventType string, payload map[string]any) error {
	envelope := map[string]any{
		"event":      eventType,
		"session_id": session.ID(),
		"payload":    payload,
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to encode push envelope: %w", err)
	}

	channel := SessionChannel(session.ID())
	if err := g.publisher.Publish(ctx, channel, body); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", channel, err)
	}

	g.logger.Debug("push delivered", "channel", channel, "event", eventType)
	return nil
}

// SessionChannel returns the notification channel name for a session.
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}
