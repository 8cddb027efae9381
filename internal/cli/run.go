package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/ebmdatalab/nbgate/internal/config"
	"github.com/ebmdatalab/nbgate/internal/envfile"
	"github.com/ebmdatalab/nbgate/internal/exitcode"
	"github.com/ebmdatalab/nbgate/internal/notebook"
	"github.com/ebmdatalab/nbgate/internal/runner"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the notebook validation tool and normalize its exit status",
	Long: `Run the configured validation tool against the notebook directory. The
tool's stdout and stderr are forwarded unmodified. nbgate exits with the
tool's own exit code, except that the "no tests collected" status maps to
0; if the tool cannot be started at all, nbgate exits 127.

Example:
  nbgate run
  nbgate run --config ci/nbgate.yml -v`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGate(cmd.Context())
	},
}

func runGate(ctx context.Context) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger()

	env, err := envfile.Merge(cfg.Inherit, cfg.EnvFile, cfg.Env)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger.Info("starting notebook validation",
		"run_id", runID,
		"tool", cfg.Tool,
		"notebook_dir", cfg.NotebookDir,
		"sanitize_config", cfg.SanitizeConfig,
	)

	// Informational only; collection is the tool's job.
	if notebooks, err := notebook.Discover(cfg.NotebookDir); err != nil {
		logger.Warn("could not enumerate notebooks", "run_id", runID, "error", err)
	} else {
		logger.Info("notebooks discovered", "run_id", runID, "count", len(notebooks))
	}

	ret, err := runner.New(logger).Run(ctx, runner.Spec{
		Argv: cfg.Command(),
		Env:  env,
	})
	if err != nil {
		var launchErr *runner.LaunchError
		if errors.As(err, &launchErr) {
			return &ExitError{Code: exitcode.LaunchFailure, Err: launchErr}
		}
		return err
	}

	code := exitcode.Normalize(ret, cfg.EmptySuiteCode)
	if code != ret {
		logger.Info("no notebooks were collected, treating as success",
			"run_id", runID,
			"tool_exit_code", ret,
		)
	}
	if code != exitcode.Success {
		return &ExitError{Code: code}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
