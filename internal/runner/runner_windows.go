//go:build windows

package runner

import (
	"os"
	"os/exec"
	"os/signal"
)

// setProcessGroup is a no-op on Windows (process groups not supported).
func setProcessGroup(cmd *exec.Cmd) {
}

// registerSignals registers the signals forwarded to the tool on Windows.
// Only Ctrl+C is available.
func registerSignals(sigChan chan os.Signal) {
	signal.Notify(sigChan, os.Interrupt)
}
