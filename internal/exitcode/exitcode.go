// Package exitcode defines the exit codes nbgate reports and the mapping
// applied to the validation tool's own exit status.
//
// The constants mirror pytest's conventions so that CI configuration can
// check codes symbolically rather than using magic numbers.
package exitcode

// Exit codes as reported by pytest and forwarded by nbgate.
const (
	// Success indicates every collected notebook passed validation.
	Success = 0

	// TestsFailed indicates at least one notebook cell produced an
	// unexpected output or raised.
	TestsFailed = 1

	// Interrupted indicates the validation run was interrupted.
	Interrupted = 2

	// InternalError indicates the validation tool itself crashed.
	InternalError = 3

	// UsageError indicates the validation tool was invoked incorrectly.
	UsageError = 4

	// NoTestsCollected is pytest's "no matching test items were found"
	// status. An empty notebook set is not a failure for gating purposes.
	NoTestsCollected = 5

	// LaunchFailure is nbgate's own status when the validation tool could
	// not be started at all. It follows the shell convention for "command
	// not found" and is never produced by pytest, so CI can tell an
	// environment problem apart from a validation result.
	LaunchFailure = 127
)

// Normalize maps the validation tool's exit code to the code nbgate should
// report. The empty-suite code becomes Success; everything else passes
// through verbatim.
func Normalize(ret, emptySuite int) int {
	if ret == emptySuite {
		return Success
	}
	return ret
}
