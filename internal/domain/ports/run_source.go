package ports

import (
	"context"
	"errors"
)

// ErrBuildNotFound is returned when a build is not part of the job history.
var ErrBuildNotFound = errors.New("build not found")

// RunSource loads runs from the build orchestration system.
type RunSource interface {
	// Run returns the given build of a job. A number <= 0 selects the last build.
	Run(ctx context.Context, jobPath string, number int) (Run, error)
	// Runs returns the recent history of a job, newest first.
	Runs(ctx context.Context, jobPath string) ([]Run, error)
}
