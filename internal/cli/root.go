package cli

import (
	"log/slog"
	"os"

	"github.com/ebmdatalab/nbgate/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "nbgate",
	Short: "Exit-status gate for notebook validation in CI",
	Long: `nbgate runs a notebook-validation tool (pytest with the nbval plugin by
default) against a directory of notebooks and normalizes its exit status
for CI gating: the tool's "no tests collected" status counts as success,
since an empty notebook set is not itself an error. Every other exit code
passes through unchanged.

Invoked with no arguments it behaves exactly like the run subcommand, so a
CI step can call nbgate directly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGate(cmd.Context())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds the CLI logger. The run path inherits the tool's stdout
// and stderr unmodified, so our own messages stay below warning unless -v
// is given.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
