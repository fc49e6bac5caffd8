package cli

import (
	"time"

	"github.com/moai-adk/moai-statusline/internal/render"
	"github.com/moai-adk/moai-statusline/internal/watch"
	"github.com/spf13/cobra"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Preview the statusline segment live",
	Long: `Open a terminal preview that polls the session-state file and shows the
segment as the statusline would render it. Polls inside the cache TTL are
served from cache; press r to force a re-read.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newAppEnv(false)
		if err != nil {
			return err
		}
		defer env.close()

		opts, err := env.renderOptions()
		if err != nil {
			return err
		}
		opts.Format = render.FormatText

		d := env.detector()
		return watch.Run(d, render.New(cmd.OutOrStdout(), opts), watchInterval, d.Path())
	},
}

func init() {
	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "i", watch.DefaultInterval, "poll interval")
	rootCmd.AddCommand(watchCmd)
}
