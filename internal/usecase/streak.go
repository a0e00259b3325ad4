package usecase

import (
	"time"

	"buildcard/internal/domain/model"
	"buildcard/internal/domain/ports"
)

// failingSinceBuild returns the first build of the current failing streak.
// Without a known not-failed build the streak starts at the job's first build.
func failingSinceBuild(run, lastNotFailed ports.Run) ports.Run {
	if lastNotFailed != nil {
		return lastNotFailed.NextBuild()
	}
	if job := run.Parent(); job != nil {
		return job.FirstBuild()
	}
	return nil
}

func isRepeatedFailure(run ports.Run, previous model.Result, lastNotFailed ports.Run) bool {
	return failingSinceBuild(run, lastNotFailed) != nil && previous == model.ResultFailure
}

// backToNormalDuration measures from the end of the build that broke the job
// after its previous success until the end of run.
func backToNormalDuration(run ports.Run) (time.Duration, bool) {
	lastSuccess := run.PreviousSuccessfulBuild()
	if lastSuccess == nil {
		return 0, false
	}
	initialFailure := lastSuccess.NextBuild()
	if initialFailure == nil {
		return 0, false
	}
	return endTime(run).Sub(endTime(initialFailure)), true
}

func endTime(run ports.Run) time.Time {
	return run.StartTime().Add(run.Duration())
}
