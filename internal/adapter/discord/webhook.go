package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"buildcard/internal/domain/model"
	"buildcard/internal/domain/ports"
)

const (
	defaultColor = 0x5865F2 // Discord blurple color
	maxFields    = 25
)

// Webhook is a Discord webhook notifier.
type Webhook struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
	now        func() time.Time
}

var _ ports.Notifier = (*Webhook)(nil)

// NewWebhook creates a new Discord webhook notifier.
func NewWebhook(webhookURL string, timeout time.Duration, logger ports.Logger) *Webhook {
	return &Webhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
	}
}

// Send posts the card to Discord as a single embed.
func (w *Webhook) Send(ctx context.Context, card model.Card) error {
	if w.webhookURL == "" {
		return ports.ErrNotConfigured
	}

	body, err := json.Marshal(w.params(card))
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}

	w.logger.Info(ctx, "card sent to discord", "summary", card.Summary)
	return nil
}

func (w *Webhook) params(card model.Card) *discordgo.WebhookParams {
	embed := &discordgo.MessageEmbed{
		Type:        discordgo.EmbedTypeRich,
		Title:       truncate(card.Section.Title, 256),
		Description: truncate(strings.ReplaceAll(card.Section.Subtitle, `\n`, "\n"), 4096),
		Fields:      convertFields(card.Section.Facts),
		Timestamp:   w.now().UTC().Format(time.RFC3339),
		Color:       parseColor(card.ThemeColor),
		Footer:      &discordgo.MessageEmbedFooter{Text: truncate(card.Summary, 2048)},
	}
	if len(card.PotentialAction) > 0 {
		embed.URL = card.PotentialAction[0].URL
	}

	return &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
}

func convertFields(facts []model.Fact) []*discordgo.MessageEmbedField {
	if len(facts) == 0 {
		return nil
	}
	if len(facts) > maxFields {
		facts = facts[:maxFields]
	}

	result := make([]*discordgo.MessageEmbedField, 0, len(facts))
	for _, f := range facts {
		result = append(result, &discordgo.MessageEmbedField{
			Name:   truncate(f.Name, 256),
			Value:  truncate(f.Value, 1024),
			Inline: true,
		})
	}
	return result
}

// parseColor reads "#rrggbb" theme colors, anything else gets the default.
func parseColor(color string) int {
	hex := strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(hex) != 6 {
		return defaultColor
	}
	v, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return defaultColor
	}
	return int(v)
}

// truncate limits value to limit characters, as counted by Discord.
func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return strings.TrimSpace(string(runes[:limit-3])) + "..."
}
