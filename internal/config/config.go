package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults reproduce the original CI wrapper invocation:
//
//	pytest --nbval notebooks/ --sanitize-with config/nbval_sanitize.cfg
const (
	DefaultPath           = ".nbgate.yml"
	DefaultTool           = "pytest"
	DefaultNotebookDir    = "notebooks"
	DefaultSanitizeConfig = "config/nbval_sanitize.cfg"

	// DefaultEmptySuiteCode is pytest's "no tests collected" status.
	DefaultEmptySuiteCode = 5
)

// Config describes how nbgate invokes the notebook-validation tool.
// All relative paths are resolved against the process working directory,
// which CI sets to the repository root.
type Config struct {
	Tool           string            `yaml:"tool"`             // validation command, resolved via PATH
	Args           []string          `yaml:"args"`             // extra arguments appended after the fixed ones
	NotebookDir    string            `yaml:"notebook_dir"`     // directory of notebooks to validate
	SanitizeConfig string            `yaml:"sanitize_config"`  // output sanitization file, opaque to nbgate
	EmptySuiteCode int               `yaml:"empty_suite_code"` // tool's "no tests collected" status
	Inherit        bool              `yaml:"inherit"`          // inherit the parent environment (default: true)
	EnvFile        string            `yaml:"env_file"`         // optional .env file merged into the child environment
	Env            map[string]string `yaml:"env"`              // explicit overrides, win over env_file
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Tool:           DefaultTool,
		NotebookDir:    DefaultNotebookDir,
		SanitizeConfig: DefaultSanitizeConfig,
		EmptySuiteCode: DefaultEmptySuiteCode,
		Inherit:        true,
	}
}

// Load reads and parses the configuration file. A missing file is not an
// error: the built-in defaults describe the standard layout.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// yaml cannot distinguish `inherit: false` from an absent key once we
	// unmarshal over defaults, so re-check the raw document.
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err == nil {
		if _, explicitlySet := raw["inherit"]; !explicitlySet {
			config.Inherit = true
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the invariants a loaded configuration must satisfy.
func (c *Config) Validate() error {
	if c.Tool == "" {
		return fmt.Errorf("config field 'tool' must not be empty")
	}
	if c.NotebookDir == "" {
		return fmt.Errorf("config field 'notebook_dir' must not be empty")
	}
	if c.EmptySuiteCode < 1 || c.EmptySuiteCode > 255 {
		return fmt.Errorf("config field 'empty_suite_code' must be in 1..255, got %d", c.EmptySuiteCode)
	}
	return nil
}

// Command returns the argv nbgate launches: the tool followed by the fixed
// nbval arguments and then any extra user arguments.
func (c *Config) Command() []string {
	argv := []string{c.Tool, "--nbval", c.NotebookDir}
	if c.SanitizeConfig != "" {
		argv = append(argv, "--sanitize-with", c.SanitizeConfig)
	}
	return append(argv, c.Args...)
}
