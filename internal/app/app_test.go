package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildcard/internal/domain/ports"
	"buildcard/internal/usecase"
)

func TestRunRequiresJobs(t *testing.T) {
	source := &stubSource{}
	notifier := usecase.NewBuildNotifier(source, nil, nopLogger{})
	a := New(notifier, NewWatcher(source, notifier, nopLogger{}, nil, true), nopLogger{}, "@every 1h")

	assert.Error(t, a.Run(context.Background()))
}

func TestRunRejectsBadSchedule(t *testing.T) {
	source := &stubSource{}
	notifier := usecase.NewBuildNotifier(source, nil, nopLogger{})
	a := New(notifier, NewWatcher(source, notifier, nopLogger{}, []string{"app"}, true), nopLogger{}, "not a schedule")

	assert.Error(t, a.Run(context.Background()))
}

func TestRunStopsOnCancel(t *testing.T) {
	source := &stubSource{runs: map[string][]ports.Run{"app": {&stubRun{number: 1}}}}
	notifier := usecase.NewBuildNotifier(source, nil, nopLogger{})
	watcher := NewWatcher(source, notifier, nopLogger{}, []string{"app"}, true)
	a := New(notifier, watcher, nopLogger{}, "@every 1h")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool {
		watcher.mu.Lock()
		defer watcher.mu.Unlock()
		_, ok := watcher.state["app"]
		return ok
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}
