package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ebmdatalab/nbgate/internal/cli"
)

func main() {
	err := cli.Execute()
	if err == nil {
		return
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		// A launch failure carries a message worth surfacing; a plain
		// validation failure was already reported by the tool itself.
		if exitErr.Err != nil {
			fmt.Fprintln(os.Stderr, "nbgate:", exitErr.Err)
		}
		os.Exit(exitErr.Code)
	}

	fmt.Fprintln(os.Stderr, "nbgate:", err)
	os.Exit(1)
}
