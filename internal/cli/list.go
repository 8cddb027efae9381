package cli

import (
	"fmt"

	"github.com/ebmdatalab/nbgate/internal/config"
	"github.com/ebmdatalab/nbgate/internal/notebook"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the notebooks a validation run would cover",
	Long: `List the notebook files under the configured notebook directory, one per
line, skipping Jupyter checkpoint copies. An empty listing is not an
error, matching the gate's treatment of an empty suite.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		notebooks, err := notebook.Discover(cfg.NotebookDir)
		if err != nil {
			return err
		}
		for _, nb := range notebooks {
			fmt.Fprintln(cmd.OutOrStdout(), nb)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
