package usecase

import (
	"fmt"
	"time"

	"buildcard/internal/domain/model"
	"buildcard/internal/domain/ports"
)

const (
	colorSuccess = "#2eb886"
	colorFailure = "#a3020c"

	statusStarted = "Started"

	// escaped line breaks, not newline characters
	subtitleSeparator = `\n\n`
)

// CardBuilder builds the card of a single notification for one run.
// It is not safe for concurrent use.
type CardBuilder struct {
	run     ports.Run
	facts   *FactsBuilder
	actions *ActionableBuilder
	now     func() time.Time
}

// NewCardBuilder creates a CardBuilder for run.
func NewCardBuilder(run ports.Run) *CardBuilder {
	return &CardBuilder{
		run:     run,
		facts:   NewFactsBuilder(run),
		actions: NewActionableBuilder(run),
		now:     time.Now,
	}
}

// WithClock sets the clock used to measure runs that are still building.
func (b *CardBuilder) WithClock(now func() time.Time) *CardBuilder {
	b.now = now
	return b
}

// Build creates the card for event.
func (b *CardBuilder) Build(event model.Event) (model.Card, error) {
	switch event.Kind {
	case model.EventStarted:
		return b.createStartedCard(event.Facts), nil
	case model.EventCompleted:
		return b.createCompletedCard(event.Facts), nil
	case model.EventMessage:
		return b.createBuildMessageCard(event.Message, event.Facts), nil
	default:
		return model.Card{}, fmt.Errorf("unsupported event kind %d", event.Kind)
	}
}

func (b *CardBuilder) createStartedCard(defs []model.FactDefinition) model.Card {
	b.addCommonFacts(statusStarted, defs)

	section := b.buildSection(statusStarted, "")
	card := model.NewCard(b.summary(), section)
	card.PotentialAction = b.actions.BuildActionable()
	return card
}

func (b *CardBuilder) createCompletedCard(defs []model.FactDefinition) model.Card {
	// a finished build should always have a result
	lastResult, ok := b.run.Result()
	if !ok {
		lastResult = model.ResultSuccess
	}

	previousResult := model.ResultSuccess
	if previous := b.run.PreviousBuild(); previous != nil {
		if r, ok := previous.Result(); ok {
			previousResult = r
		}
	}
	lastNotFailed := b.run.PreviousNotFailedBuild()

	repeated := isRepeatedFailure(b.run, previousResult, lastNotFailed)
	summary := fmt.Sprintf("%s %s", b.summary(), CalculateSummary(lastResult, previousResult, repeated))
	status := CalculateStatus(lastResult, previousResult, repeated)

	if lastResult == model.ResultFailure && previousResult == model.ResultFailure {
		if since := failingSinceBuild(b.run, lastNotFailed); since != nil {
			b.facts.AddFailingSinceBuild(since.Number())
		}
	}

	b.addCommonFacts(status, defs)

	section := b.buildSection(status, b.duration(repeated))
	card := model.NewCard(summary, section)
	card.ThemeColor = themeColor(lastResult)
	card.PotentialAction = b.actions.BuildActionable()
	return card
}

func (b *CardBuilder) createBuildMessageCard(params model.MessageParams, defs []model.FactDefinition) model.Card {
	if params.Status != "" {
		b.facts.AddStatus(params.Status)
	}
	b.facts.AddUserFacts(defs)

	section := model.Section{
		Title:    "Notification from " + EscapeDisplayName(displayName(b.run)),
		Subtitle: params.Message,
		Facts:    b.facts.Collect(),
	}
	card := model.NewCard(b.summary(), section)
	if params.Color != "" {
		card.ThemeColor = params.Color
	}
	card.PotentialAction = b.actions.BuildActionable()
	return card
}

func (b *CardBuilder) addCommonFacts(status string, defs []model.FactDefinition) {
	b.facts.AddStatus(status)
	b.facts.AddRemarks()
	b.facts.AddCommitters()
	b.facts.AddDevelopers()
	b.facts.AddUserFacts(defs)
}

func (b *CardBuilder) summary() string {
	return displayName(b.run) + ": Build " + runName(b.run)
}

func (b *CardBuilder) buildSection(status, duration string) model.Section {
	title := "_" + EscapeDisplayName(displayName(b.run)) + "_ - " + runName(b.run) + " *" + status + "*"
	if duration != "" {
		title += " after " + duration
	}
	return model.Section{
		Title:    title,
		Subtitle: TestSummary(b.run) + subtitleSeparator + CauseSummary(b.run),
		Facts:    b.facts.Collect(),
	}
}

func (b *CardBuilder) duration(repeatedFailure bool) string {
	if !repeatedFailure {
		return DurationString(b.run, b.now())
	}
	if d, ok := backToNormalDuration(b.run); ok {
		return FormatTimeSpan(d)
	}
	return ""
}

func themeColor(result model.Result) string {
	switch result {
	case model.ResultSuccess:
		return colorSuccess
	case model.ResultFailure:
		return colorFailure
	default:
		return result.Color()
	}
}
