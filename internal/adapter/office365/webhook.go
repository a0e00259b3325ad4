package office365

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"buildcard/internal/domain/model"
	"buildcard/internal/domain/ports"
)

// Webhook posts cards as Office 365 connector MessageCards.
type Webhook struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.Notifier = (*Webhook)(nil)

// NewWebhook creates a new Office 365 webhook notifier.
func NewWebhook(webhookURL string, timeout time.Duration, logger ports.Logger) *Webhook {
	return &Webhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type messageCard struct {
	Type            string          `json:"@type"`
	Context         string          `json:"@context"`
	Summary         string          `json:"summary"`
	ThemeColor      string          `json:"themeColor,omitempty"`
	Sections        []section       `json:"sections"`
	PotentialAction []potentialLink `json:"potentialAction,omitempty"`
}

type section struct {
	Markdown         bool   `json:"markdown"`
	ActivityTitle    string `json:"activityTitle"`
	ActivitySubtitle string `json:"activitySubtitle"`
	Facts            []fact `json:"facts,omitempty"`
}

type fact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type potentialLink struct {
	Type    string   `json:"@type"`
	Name    string   `json:"name"`
	Targets []target `json:"targets"`
}

type target struct {
	OS  string `json:"os"`
	URI string `json:"uri"`
}

// Payload renders the MessageCard JSON for a card.
func Payload(card model.Card) ([]byte, error) {
	return json.Marshal(toMessageCard(card))
}

func toMessageCard(card model.Card) messageCard {
	facts := make([]fact, 0, len(card.Section.Facts))
	for _, f := range card.Section.Facts {
		facts = append(facts, fact{Name: f.Name, Value: f.Value})
	}

	links := make([]potentialLink, 0, len(card.PotentialAction))
	for _, a := range card.PotentialAction {
		links = append(links, potentialLink{
			Type:    "OpenUri",
			Name:    a.Name,
			Targets: []target{{OS: "default", URI: a.URL}},
		})
	}

	return messageCard{
		Type:       "MessageCard",
		Context:    "http://schema.org/extensions",
		Summary:    card.Summary,
		ThemeColor: card.ThemeColor,
		Sections: []section{{
			Markdown:         true,
			ActivityTitle:    card.Section.Title,
			ActivitySubtitle: card.Section.Subtitle,
			Facts:            facts,
		}},
		PotentialAction: links,
	}
}

// Send posts the card to the connector.
func (w *Webhook) Send(ctx context.Context, card model.Card) error {
	if w.webhookURL == "" {
		return ports.ErrNotConfigured
	}

	body, err := Payload(card)
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
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("office 365 webhook returned status %d: %s", resp.StatusCode, string(data))
	}

	w.logger.Info(ctx, "card sent to office 365", "summary", card.Summary)
	return nil
}
