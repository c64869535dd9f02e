package port

//go:generate mockgen -source=push_port.go -destination=../mocks/mock_push_port.go -package=mocks

import (
	"context"

	"admin-gate/app/domain"
)

// Push event types dispatched through the notification channel.
const (
	PushEventTerminate = "terminate"
)

// PushChannel delivers fire-and-forget notifications to a session's client.
// The eviction notice uses PushEventTerminate with the evicting admin's
// login name under "kick_by".
type PushChannel interface {
	Push(ctx context.Context, session domain.SessionHandle, eventType string, payload map[string]any) error
}
