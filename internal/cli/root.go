// Package cli implements the moai-statusline command tree.
package cli

import (
	"os"

	"github.com/moai-adk/moai-statusline/internal/paths"
	"github.com/spf13/cobra"
)

// Global flag values.
var (
	moaiDir    string
	configFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "moai-statusline",
	Short: "Report the active MoAI task for editor statuslines",
	Long: `moai-statusline reads ~/.moai/memory/last-session-state.json and prints the
active task (command, spec ID, stage) as a statusline segment.

Running without a subcommand is the same as "moai-statusline render".`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set MOAI_DIR so all path helpers use the override.
		if moaiDir != "" {
			if err := os.Setenv(paths.EnvMoaiDir, moaiDir); err != nil {
				return err
			}
		}
		return nil
	},
	RunE: runRender,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&moaiDir, "moai-dir", "", "base directory for moai data (overrides ~/.moai)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ~/.config/moai-statusline/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	addRenderFlags(rootCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
