package usecase

import (
	"context"
	"fmt"
	"time"

	"buildcard/internal/domain/model"
	"buildcard/internal/domain/ports"
)

// BuildNotifier loads a run, builds its card and sends it.
type BuildNotifier struct {
	runs     ports.RunSource
	notifier ports.Notifier
	logger   ports.Logger
	now      func() time.Time
}

// NewBuildNotifier constructs a BuildNotifier use case.
func NewBuildNotifier(runs ports.RunSource, notifier ports.Notifier, logger ports.Logger) *BuildNotifier {
	return &BuildNotifier{
		runs:     runs,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Preview builds the card for a build without sending it.
func (n *BuildNotifier) Preview(ctx context.Context, jobPath string, number int, event model.Event) (model.Card, error) {
	run, err := n.runs.Run(ctx, jobPath, number)
	if err != nil {
		return model.Card{}, fmt.Errorf("load run %s #%d: %w", jobPath, number, err)
	}
	return NewCardBuilder(run).WithClock(n.now).Build(event)
}

// Notify builds the card for a build and sends it.
func (n *BuildNotifier) Notify(ctx context.Context, jobPath string, number int, event model.Event) (model.Card, error) {
	run, err := n.runs.Run(ctx, jobPath, number)
	if err != nil {
		n.logger.Error(ctx, "failed to load run", "job", jobPath, "build", number, "error", err)
		return model.Card{}, fmt.Errorf("load run %s #%d: %w", jobPath, number, err)
	}
	return n.NotifyRun(ctx, run, event)
}

// NotifyRun builds the card for an already loaded run and sends it.
func (n *BuildNotifier) NotifyRun(ctx context.Context, run ports.Run, event model.Event) (model.Card, error) {
	start := n.now()

	card, err := NewCardBuilder(run).WithClock(n.now).Build(event)
	if err != nil {
		return model.Card{}, err
	}

	if err := n.notifier.Send(ctx, card); err != nil {
		n.logger.Error(ctx, "failed to send card", "summary", card.Summary, "error", err)
		return card, err
	}

	n.logger.Info(ctx, "card sent", "summary", card.Summary, "event", event.Kind.String(), "duration", n.now().Sub(start))
	return card, nil
}
