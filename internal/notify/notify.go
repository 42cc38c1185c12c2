// Package notify publishes domain events to RabbitMQ. Budget breach events
// let downstream consumers (mailers, push services) react without coupling
// them to the API.
package notify

import (
	"context"

	"finmate/internal/analytics"
)

// BreachEvent is the message published when a budget ceiling is exceeded.
type BreachEvent struct {
	UserID     string                   `json:"user_id"`
	OccurredAt string                   `json:"occurred_at"`
	Breaches   []analytics.BudgetStatus `json:"breaches"`
}

// Notifier publishes breach events. Implementations must be safe for
// concurrent use.
type Notifier interface {
	PublishBreaches(ctx context.Context, event BreachEvent) error
	Close() error
}

// Noop is a Notifier that discards events. Used when no broker is
// configured and in tests.
type Noop struct{}

func (Noop) PublishBreaches(ctx context.Context, event BreachEvent) error { return nil }
func (Noop) Close() error                                                 { return nil }
