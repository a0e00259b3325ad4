package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildcard/internal/domain/model"
)

func TestParseFacts(t *testing.T) {
	facts, err := parseFacts([]string{"Environment=staging", " Query = a=b", "Empty="})
	require.NoError(t, err)
	assert.Equal(t, []model.FactDefinition{
		{Name: "Environment", Template: "staging"},
		{Name: "Query", Template: " a=b"},
		{Name: "Empty", Template: ""},
	}, facts)
}

func TestParseFactsInvalid(t *testing.T) {
	for _, raw := range []string{"noequals", "=value", "  =x"} {
		_, err := parseFacts([]string{raw})
		assert.Error(t, err, raw)
	}
}

func TestCLICommands(t *testing.T) {
	app := newCLI(&bytes.Buffer{})
	names := make([]string, 0, len(app.Commands))
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"watch", "started", "completed", "message"}, names)
}

func TestCLIRequiresJob(t *testing.T) {
	var out bytes.Buffer
	app := newCLI(&out)
	app.ErrWriter = &out
	err := app.Run([]string{"buildcard", "completed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job")
}
