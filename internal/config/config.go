package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config contains runtime configuration values.
type Config struct {
	JenkinsURL     string        `envconfig:"JENKINS_URL" yaml:"jenkinsURL"`
	JenkinsUser    string        `envconfig:"JENKINS_USER" yaml:"jenkinsUser"`
	JenkinsToken   string        `envconfig:"JENKINS_TOKEN" yaml:"-"`
	Jobs           []string      `envconfig:"JENKINS_JOBS" yaml:"jobs"`
	HistoryDepth   int           `envconfig:"HISTORY_DEPTH" default:"50" yaml:"historyDepth"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s" yaml:"requestTimeout"`

	Office365WebhookURL string `envconfig:"OFFICE365_WEBHOOK_URL" yaml:"-"`
	DiscordWebhookURL   string `envconfig:"DISCORD_WEBHOOK_URL" yaml:"-"`

	ScheduleCron  string `envconfig:"SCHEDULE_CRON" default:"@every 1m" yaml:"scheduleCron"`
	NotifyStarted bool   `envconfig:"NOTIFY_STARTED" default:"true" yaml:"notifyStarted"`

	Logging Logging `yaml:"logging"`
}

// Logging provides the logging configuration.
type Logging struct {
	Level string `envconfig:"LOG_LEVEL" default:"info" yaml:"level"`
}

const (
	defaultHistoryDepth = 50
	defaultTimeout      = 30 * time.Second
)

// Load builds a Config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	cfg.JenkinsURL = strings.TrimSpace(cfg.JenkinsURL)
	if cfg.JenkinsURL == "" {
		return nil, fmt.Errorf("JENKINS_URL is required")
	}

	if cfg.Office365WebhookURL == "" && cfg.DiscordWebhookURL == "" {
		return nil, fmt.Errorf("OFFICE365_WEBHOOK_URL or DISCORD_WEBHOOK_URL is required")
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if cfg.HistoryDepth <= 0 {
		cfg.HistoryDepth = defaultHistoryDepth
	}

	jobs := make([]string, 0, len(cfg.Jobs))
	for _, j := range cfg.Jobs {
		if j = strings.TrimSpace(j); j != "" {
			jobs = append(jobs, j)
		}
	}
	cfg.Jobs = jobs

	return cfg, nil
}

// String returns the configuration in YAML without secrets.
func (c *Config) String() string {
	out, _ := yaml.Marshal(c)
	return string(out)
}
