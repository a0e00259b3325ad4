package jenkins

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"buildcard/internal/domain/model"
	"buildcard/internal/domain/ports"
)

// history is an in-memory snapshot of a job's recent builds, oldest first.
// Links that point outside of the snapshot resolve to nil, except searches
// running past a truncated snapshot, which resolve to horizon.
type history struct {
	name    string
	builds  []*build
	first   *build
	horizon *build
}

func newHistory(job jobResponse) *history {
	h := &history{name: job.FullDisplayName}

	sorted := make([]buildResponse, len(job.Builds))
	copy(sorted, job.Builds)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })

	for i, raw := range sorted {
		h.builds = append(h.builds, newBuild(h, i, raw))
	}

	if job.FirstBuild != nil {
		h.first = h.byNumber(job.FirstBuild.Number)
		if h.first == nil {
			// the first build is older than the fetched history
			h.first = &build{history: h, index: -1, number: job.FirstBuild.Number, displayName: "#" + strconv.Itoa(job.FirstBuild.Number)}
			// an unfetched build older than the snapshot, its successor is unknown
			h.horizon = &build{history: h, index: -1}
		}
	}
	return h
}

func (h *history) FullDisplayName() string { return h.name }

func (h *history) FirstBuild() ports.Run {
	if h.first == nil {
		return nil
	}
	return h.first
}

func (h *history) newest() *build {
	if len(h.builds) == 0 {
		return nil
	}
	return h.builds[len(h.builds)-1]
}

func (h *history) byNumber(number int) *build {
	for _, b := range h.builds {
		if b.number == number {
			return b
		}
	}
	return nil
}

type build struct {
	history *history
	index   int

	number      int
	url         string
	result      model.Result
	building    bool
	start       time.Time
	duration    time.Duration
	displayName string
	description string
	causes      []string
	tests       *ports.TestResult
	committers  []string
	culprits    []string
}

var _ ports.Run = (*build)(nil)

func newBuild(h *history, index int, raw buildResponse) *build {
	b := &build{
		history:     h,
		index:       index,
		number:      raw.Number,
		url:         raw.URL,
		result:      model.Result(raw.Result),
		building:    raw.Building,
		start:       time.UnixMilli(raw.Timestamp),
		duration:    time.Duration(raw.Duration) * time.Millisecond,
		displayName: raw.DisplayName,
		description: htmlToText(raw.Description),
	}

	for _, msg := range raw.Actions {
		var a action
		if err := json.Unmarshal(msg, &a); err != nil {
			continue
		}
		for _, c := range a.Causes {
			b.causes = append(b.causes, c.ShortDescription)
		}
		if a.TotalCount != nil && b.tests == nil {
			b.tests = &ports.TestResult{Total: *a.TotalCount, Failed: deref(a.FailCount), Skipped: deref(a.SkipCount)}
		}
	}

	for _, cs := range raw.ChangeSets {
		for _, item := range cs.Items {
			b.committers = append(b.committers, item.Author.FullName)
		}
	}
	for _, p := range raw.Culprits {
		b.culprits = append(b.culprits, p.FullName)
	}
	return b
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func (b *build) Result() (model.Result, bool) {
	if b.result == "" {
		return "", false
	}
	return b.result, true
}

func (b *build) Building() bool { return b.building }

func (b *build) StartTime() time.Time { return b.start }

func (b *build) Duration() time.Duration { return b.duration }

func (b *build) Number() int { return b.number }

func (b *build) DisplayName() string { return b.displayName }

// HasCustomDisplayName reports whether the name differs from Jenkins' default "#<number>".
func (b *build) HasCustomDisplayName() bool {
	return b.displayName != "" && b.displayName != "#"+strconv.Itoa(b.number)
}

func (b *build) URL() string { return b.url }

func (b *build) Description() string { return b.description }

func (b *build) Causes() []string { return b.causes }

func (b *build) TestResult() *ports.TestResult { return b.tests }

func (b *build) Committers() []string { return b.committers }

func (b *build) Culprits() []string { return b.culprits }

func (b *build) Parent() ports.Job { return b.history }

func (b *build) PreviousBuild() ports.Run {
	if b.index < 1 {
		return nil
	}
	return b.history.builds[b.index-1]
}

func (b *build) PreviousSuccessfulBuild() ports.Run {
	return b.walkBack(func(p *build) bool { return !p.building && p.result.IsBetterOrEqualTo(model.ResultSuccess) })
}

// PreviousNotFailedBuild follows Jenkins: any earlier build whose result is not FAILURE.
func (b *build) PreviousNotFailedBuild() ports.Run {
	return b.walkBack(func(p *build) bool { return p.result != model.ResultFailure })
}

func (b *build) NextBuild() ports.Run {
	if b.index < 0 || b.index+1 >= len(b.history.builds) {
		return nil
	}
	return b.history.builds[b.index+1]
}

func (b *build) walkBack(match func(*build) bool) ports.Run {
	for i := b.index - 1; i >= 0; i-- {
		if p := b.history.builds[i]; match(p) {
			return p
		}
	}
	if b.index >= 0 && b.history.horizon != nil {
		return b.history.horizon
	}
	return nil
}
