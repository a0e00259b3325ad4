package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"buildcard/internal/domain/ports"
)

var markdownSpecial = regexp.MustCompile(`([*_#-])`)

// displayName is the full name of the job including its folders.
func displayName(run ports.Run) string {
	if job := run.Parent(); job != nil {
		return job.FullDisplayName()
	}
	return ""
}

// EscapeDisplayName keeps chat clients from formatting job names.
func EscapeDisplayName(name string) string {
	return markdownSpecial.ReplaceAllString(name, `\${1}`)
}

func runName(run ports.Run) string {
	if run.HasCustomDisplayName() {
		return run.DisplayName()
	}
	return "#" + strconv.Itoa(run.Number())
}

// TestSummary describes the test report attached to the run.
func TestSummary(run ports.Run) string {
	tr := run.TestResult()
	if tr == nil {
		return "No tests found."
	}
	passed := tr.Total - tr.Failed - tr.Skipped
	return fmt.Sprintf("Test status: passed %d, failed: %d, skipped: %d", passed, tr.Failed, tr.Skipped)
}

// CauseSummary lists what triggered the run. Every cause keeps its trailing comma.
func CauseSummary(run ports.Run) string {
	causes := run.Causes()
	parts := make([]string, 0, len(causes))
	for _, c := range causes {
		parts = append(parts, c+",")
	}
	return strings.Join(parts, " ")
}
