package di

import (
	"log/slog"
	"os"

	"buildcard/internal/adapter/discord"
	"buildcard/internal/adapter/fanout"
	"buildcard/internal/adapter/jenkins"
	"buildcard/internal/adapter/logging"
	"buildcard/internal/adapter/office365"
	"buildcard/internal/app"
	"buildcard/internal/config"
	"buildcard/internal/domain/ports"
	"buildcard/internal/usecase"
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	logger := logging.NewJSON(os.Stdout, cfg.Logging.Level)
	logger.Debug("loaded configuration", "config", cfg.String())
	return logger
}

func provideRunSource(cfg *config.Config, logger ports.Logger) ports.RunSource {
	return jenkins.NewClient(cfg.JenkinsURL, cfg.RequestTimeout, cfg.HistoryDepth, logger).
		WithBasicAuth(cfg.JenkinsUser, cfg.JenkinsToken)
}

func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	var notifiers []ports.Notifier
	if cfg.Office365WebhookURL != "" {
		notifiers = append(notifiers, office365.NewWebhook(cfg.Office365WebhookURL, cfg.RequestTimeout, logger))
	}
	if cfg.DiscordWebhookURL != "" {
		notifiers = append(notifiers, discord.NewWebhook(cfg.DiscordWebhookURL, cfg.RequestTimeout, logger))
	}
	return fanout.New(logger, notifiers...)
}

func provideWatcher(cfg *config.Config, runs ports.RunSource, notifier *usecase.BuildNotifier, logger ports.Logger) *app.Watcher {
	return app.NewWatcher(runs, notifier, logger, cfg.Jobs, cfg.NotifyStarted)
}

func provideSchedule(cfg *config.Config) string {
	return cfg.ScheduleCron
}
