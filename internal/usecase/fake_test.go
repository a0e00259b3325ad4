package usecase

import (
	"context"
	"time"

	"buildcard/internal/domain/model"
	"buildcard/internal/domain/ports"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeJob struct {
	name   string
	builds []*fakeRun
}

func (j *fakeJob) FullDisplayName() string { return j.name }

func (j *fakeJob) FirstBuild() ports.Run {
	if len(j.builds) == 0 {
		return nil
	}
	return j.builds[0]
}

// newJob creates a job whose builds are numbered from first, oldest first,
// each one running ten minutes and starting when the previous one ended.
func newJob(name string, first int, results ...model.Result) *fakeJob {
	job := &fakeJob{name: name}
	for i, r := range results {
		job.builds = append(job.builds, &fakeRun{
			job:       job,
			index:     i,
			number:    first + i,
			result:    r,
			hasResult: true,
			start:     t0.Add(time.Duration(i) * 10 * time.Minute),
			duration:  10 * time.Minute,
		})
	}
	return job
}

func (j *fakeJob) last() *fakeRun {
	return j.builds[len(j.builds)-1]
}

func (j *fakeJob) build(number int) *fakeRun {
	for _, b := range j.builds {
		if b.number == number {
			return b
		}
	}
	return nil
}

type fakeRun struct {
	job   *fakeJob
	index int

	number      int
	result      model.Result
	hasResult   bool
	building    bool
	start       time.Time
	duration    time.Duration
	displayName string
	custom      bool
	url         string
	description string
	causes      []string
	tests       *ports.TestResult
	committers  []string
	culprits    []string
	noNext      bool
}

func (r *fakeRun) Result() (model.Result, bool) { return r.result, r.hasResult }
func (r *fakeRun) Building() bool { return r.building }
func (r *fakeRun) StartTime() time.Time { return r.start }
func (r *fakeRun) Duration() time.Duration { return r.duration }
func (r *fakeRun) Number() int { return r.number }
func (r *fakeRun) DisplayName() string { return r.displayName }
func (r *fakeRun) HasCustomDisplayName() bool { return r.custom }
func (r *fakeRun) URL() string { return r.url }
func (r *fakeRun) Description() string { return r.description }
func (r *fakeRun) Causes() []string { return r.causes }
func (r *fakeRun) TestResult() *ports.TestResult { return r.tests }
func (r *fakeRun) Committers() []string { return r.committers }
func (r *fakeRun) Culprits() []string { return r.culprits }

func (r *fakeRun) Parent() ports.Job {
	if r.job == nil {
		return nil
	}
	return r.job
}

func (r *fakeRun) PreviousBuild() ports.Run {
	return r.walkBack(func(*fakeRun) bool { return true })
}

func (r *fakeRun) PreviousSuccessfulBuild() ports.Run {
	return r.walkBack(func(b *fakeRun) bool { return !b.building && b.result == model.ResultSuccess })
}

func (r *fakeRun) PreviousNotFailedBuild() ports.Run {
	return r.walkBack(func(b *fakeRun) bool { return b.result != model.ResultFailure })
}

func (r *fakeRun) NextBuild() ports.Run {
	if r.job == nil || r.noNext || r.index+1 >= len(r.job.builds) {
		return nil
	}
	return r.job.builds[r.index+1]
}

func (r *fakeRun) walkBack(match func(*fakeRun) bool) ports.Run {
	if r.job == nil {
		return nil
	}
	for i := r.index - 1; i >= 0; i-- {
		if b := r.job.builds[i]; match(b) {
			return b
		}
	}
	return nil
}

type fakeSource struct {
	jobs map[string]*fakeJob
}

func (s *fakeSource) Run(_ context.Context, jobPath string, number int) (ports.Run, error) {
	job, ok := s.jobs[jobPath]
	if !ok || len(job.builds) == 0 {
		return nil, ports.ErrBuildNotFound
	}
	if number <= 0 {
		return job.last(), nil
	}
	if b := job.build(number); b != nil {
		return b, nil
	}
	return nil, ports.ErrBuildNotFound
}

func (s *fakeSource) Runs(_ context.Context, jobPath string) ([]ports.Run, error) {
	job, ok := s.jobs[jobPath]
	if !ok {
		return nil, ports.ErrBuildNotFound
	}
	runs := make([]ports.Run, 0, len(job.builds))
	for i := len(job.builds) - 1; i >= 0; i-- {
		runs = append(runs, job.builds[i])
	}
	return runs, nil
}

type recordingNotifier struct {
	cards []model.Card
	err   error
}

func (n *recordingNotifier) Send(_ context.Context, card model.Card) error {
	if n.err != nil {
		return n.err
	}
	n.cards = append(n.cards, card)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any) {}
func (nopLogger) Warn(context.Context, string, ...any) {}
func (nopLogger) Error(context.Context, string, ...any) {}
