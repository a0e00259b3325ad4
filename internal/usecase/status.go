package usecase

import "buildcard/internal/domain/model"

const (
	labelBackToNormal    = "Back to Normal"
	labelRepeatedFailure = "Repeated Failure"
)

// CalculateStatus returns the label shown in the section title.
func CalculateStatus(current, previous model.Result, repeatedFailure bool) string {
	switch current {
	case model.ResultSuccess:
		if isBroken(previous) {
			return labelBackToNormal
		}
		return "Build Success"
	case model.ResultFailure:
		if repeatedFailure {
			return labelRepeatedFailure
		}
		return "Build Failed"
	case model.ResultAborted:
		return "Build Aborted"
	case model.ResultUnstable:
		return "Build Unstable"
	default:
		return current.String()
	}
}

// CalculateSummary returns the short label appended to the card summary.
func CalculateSummary(current, previous model.Result, repeatedFailure bool) string {
	switch current {
	case model.ResultSuccess:
		if isBroken(previous) {
			return labelBackToNormal
		}
		return "Success"
	case model.ResultFailure:
		if repeatedFailure {
			return labelRepeatedFailure
		}
		return "Failed"
	case model.ResultAborted:
		return "Aborted"
	case model.ResultUnstable:
		return "Unstable"
	default:
		return current.String()
	}
}

func isBroken(r model.Result) bool {
	return r == model.ResultFailure || r == model.ResultUnstable
}
