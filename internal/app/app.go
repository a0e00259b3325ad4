package app

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"

	"buildcard/internal/domain/model"
	"buildcard/internal/domain/ports"
	"buildcard/internal/usecase"
)

// App manages the watch scheduler and one-shot notifications.
type App struct {
	cron     *cron.Cron
	notifier *usecase.BuildNotifier
	watcher  *Watcher
	logger   ports.Logger
	schedule string
}

// New constructs an App instance.
func New(notifier *usecase.BuildNotifier, watcher *Watcher, logger ports.Logger, schedule string) *App {
	return &App{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		notifier: notifier,
		watcher:  watcher,
		logger:   logger,
		schedule: schedule,
	}
}

// Run polls the watched jobs once immediately and then according to the cron schedule.
func (a *App) Run(ctx context.Context) error {
	if len(a.watcher.jobs) == 0 {
		return errors.New("no jobs to watch, set JENKINS_JOBS")
	}

	if err := a.scheduleJob(); err != nil {
		return err
	}

	a.logger.Info(ctx, "running first poll immediately")
	a.watcher.Poll(ctx)

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

// Notify sends the card for one build.
func (a *App) Notify(ctx context.Context, jobPath string, number int, event model.Event) (model.Card, error) {
	return a.notifier.Notify(ctx, jobPath, number, event)
}

// Preview builds the card for one build without sending it.
func (a *App) Preview(ctx context.Context, jobPath string, number int, event model.Event) (model.Card, error) {
	return a.notifier.Preview(ctx, jobPath, number, event)
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		a.watcher.Poll(ctx)
	})
	if err != nil {
		return err
	}
	return nil
}
