package ports

import (
	"time"

	"buildcard/internal/domain/model"
)

// TestResult holds the counts of an attached test report.
type TestResult struct {
	Total   int
	Failed  int
	Skipped int
}

// Run is a read-only view of one build execution. Links to neighbouring
// builds return nil when the host does not know them.
type Run interface {
	// Result returns the build result, ok is false while it is not known.
	Result() (result model.Result, ok bool)
	Building() bool
	StartTime() time.Time
	Duration() time.Duration
	Number() int
	DisplayName() string
	HasCustomDisplayName() bool
	URL() string
	Description() string
	Causes() []string
	// TestResult returns nil when no test report is attached.
	TestResult() *TestResult
	Committers() []string
	Culprits() []string

	Parent() Job
	PreviousBuild() Run
	// PreviousSuccessfulBuild and PreviousNotFailedBuild return nil when no
	// such build exists. A source that cannot see far enough back returns a
	// run whose NextBuild is nil instead.
	PreviousSuccessfulBuild() Run
	PreviousNotFailedBuild() Run
	NextBuild() Run
}

// Job is the persistent entity owning a sequence of runs.
type Job interface {
	FullDisplayName() string
	// FirstBuild returns nil for a job without builds.
	FirstBuild() Run
}
