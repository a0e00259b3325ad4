package ports

import (
	"context"
	"errors"

	"buildcard/internal/domain/model"
)

// ErrNotConfigured is returned when a notifier has no destination.
var ErrNotConfigured = errors.New("notifier: not configured")

// Notifier delivers a card to a downstream channel (e.g. Office 365, Discord).
type Notifier interface {
	Send(ctx context.Context, card model.Card) error
}
