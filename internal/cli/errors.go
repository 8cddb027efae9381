package cli

import "fmt"

// ExitError tells main which status to exit with. A nil Err means the
// underlying tool already reported the failure on its own streams and
// nbgate should add nothing.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
