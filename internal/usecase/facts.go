package usecase

import (
	"strconv"
	"strings"

	"buildcard/internal/domain/model"
	"buildcard/internal/domain/ports"
)

const (
	FactStatus       = "Status"
	FactRemarks      = "Remarks"
	FactCommitters   = "Committers"
	FactDevelopers   = "Developers"
	FactFailingSince = "Failing since"
)

// FactsBuilder accumulates the facts of one card.
type FactsBuilder struct {
	run   ports.Run
	facts []model.Fact
}

// NewFactsBuilder creates a FactsBuilder reading from run.
func NewFactsBuilder(run ports.Run) *FactsBuilder {
	return &FactsBuilder{run: run}
}

func (f *FactsBuilder) AddStatus(status string) {
	f.add(FactStatus, status)
}

// AddRemarks adds the build description.
func (f *FactsBuilder) AddRemarks() {
	f.add(FactRemarks, strings.TrimSpace(f.run.Description()))
}

func (f *FactsBuilder) AddCommitters() {
	f.add(FactCommitters, joinUnique(f.run.Committers()))
}

func (f *FactsBuilder) AddDevelopers() {
	f.add(FactDevelopers, joinUnique(f.run.Culprits()))
}

func (f *FactsBuilder) AddFailingSinceBuild(number int) {
	f.add(FactFailingSince, "build #"+strconv.Itoa(number))
}

func (f *FactsBuilder) AddUserFacts(defs []model.FactDefinition) {
	for _, def := range defs {
		f.add(def.Name, def.Template)
	}
}

// Collect returns a copy of the facts added so far.
func (f *FactsBuilder) Collect() []model.Fact {
	out := make([]model.Fact, len(f.facts))
	copy(out, f.facts)
	return out
}

func (f *FactsBuilder) add(name, value string) {
	if name == "" || value == "" {
		return
	}
	f.facts = append(f.facts, model.Fact{Name: name, Value: value})
}

func joinUnique(names []string) string {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		unique = append(unique, n)
	}
	return strings.Join(unique, ", ")
}
