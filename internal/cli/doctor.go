package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/ebmdatalab/nbgate/internal/config"
	"github.com/ebmdatalab/nbgate/internal/exitcode"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the validation environment is usable",
	Long: `Check that the validation tool is on PATH and that the configured
sanitization config and notebook directory exist. A missing tool exits
with the same code a failed launch would, so CI surfaces environment
problems before a run is attempted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		out := cmd.OutOrStdout()
		toolMissing := false
		failed := false

		if path, err := exec.LookPath(cfg.Tool); err != nil {
			fmt.Fprintf(out, "tool %q: NOT FOUND on PATH\n", cfg.Tool)
			toolMissing = true
		} else {
			fmt.Fprintf(out, "tool %q: ok (%s)\n", cfg.Tool, path)
		}

		if cfg.SanitizeConfig != "" {
			if _, err := os.Stat(cfg.SanitizeConfig); err != nil {
				fmt.Fprintf(out, "sanitize config %q: MISSING\n", cfg.SanitizeConfig)
				failed = true
			} else {
				fmt.Fprintf(out, "sanitize config %q: ok\n", cfg.SanitizeConfig)
			}
		}

		if info, err := os.Stat(cfg.NotebookDir); err != nil || !info.IsDir() {
			fmt.Fprintf(out, "notebook directory %q: MISSING\n", cfg.NotebookDir)
			failed = true
		} else {
			fmt.Fprintf(out, "notebook directory %q: ok\n", cfg.NotebookDir)
		}

		if toolMissing {
			return &ExitError{Code: exitcode.LaunchFailure, Err: fmt.Errorf("validation tool %q is not installed", cfg.Tool)}
		}
		if failed {
			return &ExitError{Code: 1, Err: fmt.Errorf("environment checks failed")}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
