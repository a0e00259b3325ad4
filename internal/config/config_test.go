package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JENKINS_URL", "http://jenkins.local")
	t.Setenv("OFFICE365_WEBHOOK_URL", "https://example.webhook.office.com/hook")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.HistoryDepth)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "@every 1m", cfg.ScheduleCron)
	assert.True(t, cfg.NotifyStarted)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Jobs)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JENKINS_URL", " http://jenkins.local ")
	t.Setenv("DISCORD_WEBHOOK_URL", "https://discord.com/api/webhooks/1/abc")
	t.Setenv("JENKINS_JOBS", "folder/app, tools/lint,")
	t.Setenv("HISTORY_DEPTH", "10")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("NOTIFY_STARTED", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://jenkins.local", cfg.JenkinsURL)
	assert.Equal(t, []string{"folder/app", "tools/lint"}, cfg.Jobs)
	assert.Equal(t, 10, cfg.HistoryDepth)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.NotifyStarted)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRequiresJenkins(t *testing.T) {
	t.Setenv("JENKINS_URL", "")
	t.Setenv("OFFICE365_WEBHOOK_URL", "https://example.webhook.office.com/hook")

	_, err := Load()
	assert.ErrorContains(t, err, "JENKINS_URL")
}

func TestLoadRequiresWebhook(t *testing.T) {
	t.Setenv("JENKINS_URL", "http://jenkins.local")
	t.Setenv("OFFICE365_WEBHOOK_URL", "")
	t.Setenv("DISCORD_WEBHOOK_URL", "")

	_, err := Load()
	assert.ErrorContains(t, err, "WEBHOOK_URL")
}

func TestStringHidesSecrets(t *testing.T) {
	cfg := &Config{
		JenkinsURL:          "http://jenkins.local",
		JenkinsToken:        "s3cr3t",
		Office365WebhookURL: "https://example.webhook.office.com/hook",
	}

	out := cfg.String()
	assert.Contains(t, out, "jenkinsURL: http://jenkins.local")
	assert.NotContains(t, out, "s3cr3t")
	assert.NotContains(t, out, "webhook.office.com")
}
