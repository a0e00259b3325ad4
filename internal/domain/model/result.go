package model

// Result is the outcome of a build as reported by Jenkins.
type Result string

const (
	ResultSuccess  Result = "SUCCESS"
	ResultUnstable Result = "UNSTABLE"
	ResultFailure  Result = "FAILURE"
	ResultNotBuilt Result = "NOT_BUILT"
	ResultAborted  Result = "ABORTED"
)

// Jenkins ball colors (ColorPalette) for each result.
var resultColors = map[Result]string{
	ResultSuccess:  "#729FCF",
	ResultUnstable: "#FCE94F",
	ResultFailure:  "#EF2929",
	ResultNotBuilt: "#D3D7CF",
	ResultAborted:  "#555753",
}

const unknownResultColor = "#ABABAB"

// String returns the textual name of the result.
func (r Result) String() string {
	return string(r)
}

// Color returns the host's html base color for the result.
func (r Result) Color() string {
	if c, ok := resultColors[r]; ok {
		return c
	}
	return unknownResultColor
}

// IsBetterOrEqualTo reports whether r is at least as good as other in the
// Jenkins ordering SUCCESS > UNSTABLE > FAILURE > NOT_BUILT > ABORTED.
// Unknown results rank below ABORTED.
func (r Result) IsBetterOrEqualTo(other Result) bool {
	return r.ordinal() <= other.ordinal()
}

func (r Result) ordinal() int {
	switch r {
	case ResultSuccess:
		return 0
	case ResultUnstable:
		return 1
	case ResultFailure:
		return 2
	case ResultNotBuilt:
		return 3
	case ResultAborted:
		return 4
	default:
		return 5
	}
}
