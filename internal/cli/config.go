package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/moai-adk/moai-statusline/internal/config"
	"github.com/moai-adk/moai-statusline/internal/paths"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the statusline configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config file for errors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		if cfg == nil {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "🗿 no config at %s (using defaults)\n", path)
			return nil
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s:\n%w", path, err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "🗿 %s is valid\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(effective(cfg))
	},
}

// effective resolves every default so "config show" prints complete values.
func effective(c *config.Config) *config.Config {
	color := c.GetColor()
	icon := c.GetIcon()
	state := c.GetSessionState()
	if state == "" {
		state, _ = paths.SessionStatePath()
	}
	return &config.Config{
		LogLevel: c.GetLogLevel(),
		LogFile:  c.GetLogFile(),
		Detector: config.DetectorConfig{
			CacheTTL:     c.GetCacheTTL().String(),
			SessionState: state,
		},
		Display: config.DisplayConfig{
			Format:   c.GetFormat(),
			MaxWidth: c.GetMaxWidth(),
			Color:    &color,
			Icon:     &icon,
		},
	}
}

func init() {
	configCmd.AddCommand(configPathCmd, configValidateCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
