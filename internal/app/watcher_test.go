package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildcard/internal/domain/model"
	"buildcard/internal/domain/ports"
)

type stubJob struct{}

func (stubJob) FullDisplayName() string { return "app" }
func (stubJob) FirstBuild() ports.Run { return nil }

type stubRun struct {
	number   int
	building bool
	result   model.Result
}

func (r *stubRun) Result() (model.Result, bool) { return r.result, r.result != "" }
func (r *stubRun) Building() bool { return r.building }
func (r *stubRun) StartTime() time.Time { return time.Time{} }
func (r *stubRun) Duration() time.Duration { return time.Minute }
func (r *stubRun) Number() int { return r.number }
func (r *stubRun) DisplayName() string { return "" }
func (r *stubRun) HasCustomDisplayName() bool { return false }
func (r *stubRun) URL() string { return "" }
func (r *stubRun) Description() string { return "" }
func (r *stubRun) Causes() []string { return nil }
func (r *stubRun) TestResult() *ports.TestResult { return nil }
func (r *stubRun) Committers() []string { return nil }
func (r *stubRun) Culprits() []string { return nil }
func (r *stubRun) Parent() ports.Job { return stubJob{} }
func (r *stubRun) PreviousBuild() ports.Run { return nil }
func (r *stubRun) PreviousSuccessfulBuild() ports.Run { return nil }
func (r *stubRun) PreviousNotFailedBuild() ports.Run { return nil }
func (r *stubRun) NextBuild() ports.Run { return nil }

type stubSource struct {
	runs map[string][]ports.Run
	err  error
}

func (s *stubSource) Run(context.Context, string, int) (ports.Run, error) {
	return nil, ports.ErrBuildNotFound
}

func (s *stubSource) Runs(_ context.Context, job string) ([]ports.Run, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.runs[job], nil
}

type sent struct {
	number int
	kind   model.EventKind
}

type recordingSender struct {
	sent []sent
}

func (r *recordingSender) NotifyRun(_ context.Context, run ports.Run, event model.Event) (model.Card, error) {
	r.sent = append(r.sent, sent{number: run.Number(), kind: event.Kind})
	return model.Card{Summary: "x"}, nil
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any) {}
func (nopLogger) Warn(context.Context, string, ...any) {}
func (nopLogger) Error(context.Context, string, ...any) {}

func TestWatcherFirstPollOnlyRecords(t *testing.T) {
	source := &stubSource{runs: map[string][]ports.Run{
		"app": {&stubRun{number: 2, building: true}, &stubRun{number: 1, result: model.ResultSuccess}},
	}}
	sender := &recordingSender{}
	w := NewWatcher(source, sender, nopLogger{}, []string{"app"}, true)

	w.Poll(context.Background())

	assert.Empty(t, sender.sent)
	require.Contains(t, w.state, "app")
	assert.Equal(t, 2, w.state["app"].last)
	assert.Contains(t, w.state["app"].building, 2)
}

func TestWatcherEmitsStartedAndCompleted(t *testing.T) {
	build2 := &stubRun{number: 2, building: true}
	source := &stubSource{runs: map[string][]ports.Run{
		"app": {build2, &stubRun{number: 1, result: model.ResultSuccess}},
	}}
	sender := &recordingSender{}
	w := NewWatcher(source, sender, nopLogger{}, []string{"app"}, true)
	w.Poll(context.Background())

	build2.building = false
	build2.result = model.ResultFailure
	build3 := &stubRun{number: 3, building: true}
	build4 := &stubRun{number: 4, result: model.ResultAborted}
	source.runs["app"] = []ports.Run{build4, build3, build2}
	w.Poll(context.Background())

	assert.Equal(t, []sent{
		{number: 2, kind: model.EventCompleted},
		{number: 3, kind: model.EventStarted},
		{number: 4, kind: model.EventCompleted},
	}, sender.sent)

	build3.building = false
	build3.result = model.ResultSuccess
	w.Poll(context.Background())

	assert.Equal(t, sent{number: 3, kind: model.EventCompleted}, sender.sent[len(sender.sent)-1])
	assert.Len(t, sender.sent, 4)

	w.Poll(context.Background())
	assert.Len(t, sender.sent, 4)
}

func TestWatcherWithoutStartedCards(t *testing.T) {
	source := &stubSource{runs: map[string][]ports.Run{"app": {}}}
	sender := &recordingSender{}
	w := NewWatcher(source, sender, nopLogger{}, []string{"app"}, false)
	w.Poll(context.Background())

	source.runs["app"] = []ports.Run{&stubRun{number: 1, building: true}}
	w.Poll(context.Background())
	assert.Empty(t, sender.sent)
}

func TestWatcherKeepsGoingOnErrors(t *testing.T) {
	source := &stubSource{err: errors.New("jenkins down")}
	sender := &recordingSender{}
	w := NewWatcher(source, sender, nopLogger{}, []string{"a", "b"}, true)

	assert.NotPanics(t, func() { w.Poll(context.Background()) })
	assert.Empty(t, w.state)
}
