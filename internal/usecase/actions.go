package usecase

import (
	"strings"

	"buildcard/internal/domain/model"
	"buildcard/internal/domain/ports"
)

// ActionableBuilder creates the links attached below a card.
type ActionableBuilder struct {
	run ports.Run
}

func NewActionableBuilder(run ports.Run) *ActionableBuilder {
	return &ActionableBuilder{run: run}
}

// BuildActionable returns the potential actions, none when the run has no URL.
func (a *ActionableBuilder) BuildActionable() []model.Action {
	url := a.run.URL()
	if url == "" {
		return nil
	}
	if !strings.HasSuffix(url, "/") {
		url += "/"
	}

	actions := []model.Action{{Name: "View Build", URL: url}}
	if len(a.run.Committers()) > 0 {
		actions = append(actions, model.Action{Name: "View Changes", URL: url + "changes"})
	}
	return actions
}
