package fanout

import (
	"context"
	"errors"

	"buildcard/internal/domain/model"
	"buildcard/internal/domain/ports"
)

// Notifier sends every card to all of its notifiers.
type Notifier struct {
	logger    ports.Logger
	notifiers []ports.Notifier
}

var _ ports.Notifier = (*Notifier)(nil)

// New constructs a notifier delivering through the given notifiers in order. Nil entries are skipped.
func New(logger ports.Logger, notifiers ...ports.Notifier) *Notifier {
	active := make([]ports.Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			active = append(active, n)
		}
	}
	return &Notifier{
		logger:    logger,
		notifiers: active,
	}
}

// Len returns the number of active notifiers.
func (f *Notifier) Len() int {
	return len(f.notifiers)
}

// Send delivers the card everywhere. It fails only when no notifier succeeded.
func (f *Notifier) Send(ctx context.Context, card model.Card) error {
	if len(f.notifiers) == 0 {
		return ports.ErrNotConfigured
	}

	var errs []error
	for _, n := range f.notifiers {
		if err := n.Send(ctx, card); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) == len(f.notifiers) {
		return errors.Join(errs...)
	}
	if len(errs) > 0 && f.logger != nil {
		f.logger.Warn(ctx, "card partially delivered", "failed", len(errs), "total", len(f.notifiers), "error", errors.Join(errs...))
	}
	return nil
}
