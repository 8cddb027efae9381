// Package envfile assembles the environment for the validation tool.
package envfile

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Merge builds the child process environment. When inherit is true the
// parent environment comes first, then variables from the optional .env
// file at path, then the explicit overrides. Later entries win, so
// overrides take precedence over the file, which takes precedence over
// the inherited environment.
func Merge(inherit bool, path string, overrides map[string]string) ([]string, error) {
	env := make([]string, 0)
	if inherit {
		env = os.Environ()
	}

	if path != "" {
		// Expand so config can say env_file: $HOME/.config/nbgate/env
		expandedPath := os.ExpandEnv(path)
		vars, err := godotenv.Read(expandedPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file at '%s': %w", expandedPath, err)
		}
		for key, value := range vars {
			env = append(env, fmt.Sprintf("%s=%s", key, value))
		}
	}

	for key, value := range overrides {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}

	return env, nil
}
