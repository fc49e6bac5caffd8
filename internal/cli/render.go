package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Render flag values, shared by the root command and "render".
var (
	renderFormat   string
	renderMaxWidth int
	renderNoColor  bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the statusline segment for the active task",
	Long: `Print the active task as a single statusline segment.

render never fails: a missing or malformed session-state file, a broken
config, or an unwritable log file all produce an empty segment (or the
default format) and exit status 0.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&renderFormat, "format", "f", "", "output format: text, json, yaml (overrides config)")
	cmd.Flags().IntVarP(&renderMaxWidth, "max-width", "w", -1, "truncate text output to this many cells (0 = unlimited)")
	cmd.Flags().BoolVar(&renderNoColor, "no-color", false, "disable ANSI styling")
}

func runRender(cmd *cobra.Command, args []string) error {
	env, _ := newAppEnv(true)
	defer env.close()

	out := cmd.OutOrStdout()
	r, err := env.renderer(out)
	if err != nil {
		env.logger.Debug("render: bad format, using text", "error", err)
	}

	d := env.detector()
	seg, err := r.Render(d.Detect())
	if err != nil {
		env.logger.Debug("render: encode task", "error", err)
		seg = ""
	}
	_, _ = fmt.Fprintln(out, seg)
	return nil
}

func init() {
	addRenderFlags(renderCmd)
	rootCmd.AddCommand(renderCmd)
}
