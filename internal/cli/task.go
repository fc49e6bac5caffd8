package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/moai-adk/moai-statusline/internal/render"
	"github.com/spf13/cobra"
)

var taskFormat string

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Show the raw active task",
	Long: `Show the active task as read from the session-state file.

Unlike render, task reports config errors and always prints every field,
including unset ones.`,
	Args: cobra.NoArgs,
	RunE: runTask,
}

func runTask(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv(false)
	if err != nil {
		return err
	}
	defer env.close()

	format, err := render.ParseFormat(taskFormat)
	if err != nil {
		return err
	}

	d := env.detector()
	t := d.Detect()
	out := cmd.OutOrStdout()

	if format != render.FormatText {
		s, err := render.New(out, render.Options{Format: format}).Render(t)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, s)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "SOURCE\t%s\n", d.Path())
	_, _ = fmt.Fprintf(w, "ACTIVE\t%t\n", t.Active())
	_, _ = fmt.Fprintf(w, "COMMAND\t%s\n", fieldOrDash(t.Command))
	_, _ = fmt.Fprintf(w, "SPEC\t%s\n", fieldOrDash(t.SpecID))
	_, _ = fmt.Fprintf(w, "STAGE\t%s\n", fieldOrDash(t.Stage))
	return w.Flush()
}

func fieldOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func init() {
	taskCmd.Flags().StringVarP(&taskFormat, "format", "f", "text", "output format: text, json, yaml")
	rootCmd.AddCommand(taskCmd)
}
