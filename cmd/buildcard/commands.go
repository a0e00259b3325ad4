package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"buildcard/internal/adapter/office365"
	"buildcard/internal/di"
	"buildcard/internal/domain/model"
)

func buildFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "job",
			Aliases:  []string{"j"},
			Usage:    "full job path, folders separated by / (mandatory)",
			Required: true,
		},
		&cli.IntFlag{
			Name:    "build",
			Aliases: []string{"b"},
			Usage:   "build number, the last build when omitted",
		},
		&cli.StringSliceFlag{
			Name:  "fact",
			Usage: "extra facts in a name=value format",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "print the card instead of sending it",
		},
	}
}

func newCLI(out io.Writer) *cli.App {
	return &cli.App{
		Name:   "buildcard",
		Usage:  "Sends Jenkins build notification cards to Office 365 and Discord",
		Writer: out,
		Commands: []*cli.Command{
			{
				Name:   "watch",
				Usage:  "Polls JENKINS_JOBS and notifies about started and completed builds",
				Action: watch,
			},
			{
				Name:      "started",
				Usage:     "Sends the started card of a build",
				UsageText: "buildcard started --job folder/app --build 42",
				Flags:     buildFlags(),
				Action: notify(out, func(_ *cli.Context, facts []model.FactDefinition) model.Event {
					return model.Started(facts...)
				}),
			},
			{
				Name:      "completed",
				Usage:     "Sends the completed card of a build",
				UsageText: "buildcard completed --job folder/app --build 42 --fact Environment=staging",
				Flags:     buildFlags(),
				Action: notify(out, func(_ *cli.Context, facts []model.FactDefinition) model.Event {
					return model.Completed(facts...)
				}),
			},
			{
				Name:  "message",
				Usage: "Sends a custom message about a build",
				UsageText: `buildcard message --job folder/app \
     --text "Deployed to staging" \
     --status Deployed --color "#2eb886"`,
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "text", Usage: "message body (mandatory)", Required: true},
					&cli.StringFlag{Name: "status", Usage: "status fact"},
					&cli.StringFlag{Name: "color", Usage: "theme color"},
				}, buildFlags()...),
				Action: notify(out, func(c *cli.Context, facts []model.FactDefinition) model.Event {
					return model.Message(model.MessageParams{
						Message: c.String("text"),
						Status:  c.String("status"),
						Color:   c.String("color"),
					}, facts...)
				}),
			},
		},
	}
}

func watch(c *cli.Context) error {
	application, err := di.InitializeApp()
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	return application.Run(c.Context)
}

type eventFunc func(c *cli.Context, facts []model.FactDefinition) model.Event

func notify(out io.Writer, newEvent eventFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		facts, err := parseFacts(c.StringSlice("fact"))
		if err != nil {
			return err
		}
		event := newEvent(c, facts)

		application, err := di.InitializeApp()
		if err != nil {
			return fmt.Errorf("initialize application: %w", err)
		}

		if !c.Bool("dry-run") {
			_, err := application.Notify(c.Context, c.String("job"), c.Int("build"), event)
			return err
		}

		card, err := application.Preview(c.Context, c.String("job"), c.Int("build"), event)
		if err != nil {
			return err
		}
		payload, err := office365.Payload(card)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(payload))
		return err
	}
}

// parseFacts turns name=value pairs into fact definitions. The value may contain '='.
func parseFacts(raw []string) ([]model.FactDefinition, error) {
	facts := make([]model.FactDefinition, 0, len(raw))
	for _, f := range raw {
		name, value, ok := strings.Cut(f, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid fact %q, expected name=value", f)
		}
		facts = append(facts, model.FactDefinition{Name: name, Template: value})
	}
	return facts, nil
}
