package app

import (
	"context"
	"sort"
	"sync"

	"buildcard/internal/domain/model"
	"buildcard/internal/domain/ports"
)

// CardSender sends the card for a run that was already loaded.
type CardSender interface {
	NotifyRun(ctx context.Context, run ports.Run, event model.Event) (model.Card, error)
}

type jobState struct {
	last     int
	building map[int]struct{}
}

// Watcher polls jobs and emits started and completed cards for new builds.
// The first poll of a job only records its state.
type Watcher struct {
	runs          ports.RunSource
	sender        CardSender
	logger        ports.Logger
	jobs          []string
	notifyStarted bool

	mu    sync.Mutex
	state map[string]*jobState
}

// NewWatcher constructs a Watcher for jobs.
func NewWatcher(runs ports.RunSource, sender CardSender, logger ports.Logger, jobs []string, notifyStarted bool) *Watcher {
	return &Watcher{
		runs:          runs,
		sender:        sender,
		logger:        logger,
		jobs:          jobs,
		notifyStarted: notifyStarted,
		state:         make(map[string]*jobState),
	}
}

// Poll checks every job once. Failures are logged per job.
func (w *Watcher) Poll(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, job := range w.jobs {
		if err := w.pollJob(ctx, job); err != nil {
			w.logger.Error(ctx, "failed to poll job", "job", job, "error", err)
		}
	}
}

func (w *Watcher) pollJob(ctx context.Context, job string) error {
	runs, err := w.runs.Runs(ctx, job)
	if err != nil {
		return err
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Number() < runs[j].Number() })

	st, known := w.state[job]
	if !known {
		st = &jobState{building: make(map[int]struct{})}
		for _, r := range runs {
			st.observe(r)
		}
		w.state[job] = st
		w.logger.Info(ctx, "watching job", "job", job, "last_build", st.last)
		return nil
	}

	for _, r := range runs {
		_, wasBuilding := st.building[r.Number()]
		isNew := r.Number() > st.last

		switch {
		case isNew && r.Building():
			if w.notifyStarted {
				w.send(ctx, r, model.Started())
			}
		case isNew, wasBuilding && !r.Building():
			w.send(ctx, r, model.Completed())
		}
		st.observe(r)
	}
	return nil
}

func (w *Watcher) send(ctx context.Context, run ports.Run, event model.Event) {
	if _, err := w.sender.NotifyRun(ctx, run, event); err != nil {
		w.logger.Error(ctx, "failed to notify", "build", run.Number(), "event", event.Kind.String(), "error", err)
	}
}

func (s *jobState) observe(r ports.Run) {
	if r.Number() > s.last {
		s.last = r.Number()
	}
	if r.Building() {
		s.building[r.Number()] = struct{}{}
	} else {
		delete(s.building, r.Number())
	}
}
