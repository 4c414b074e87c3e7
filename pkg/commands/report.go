package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/medbook/pkg/commands/options"
	"tableflip.dev/medbook/pkg/runner/report"
	"tableflip.dev/medbook/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	r := report.Report{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "List appointments in a window around now, grouped by person.",
		Long: `Report lists every appointment from --last before now until --next after now.

Examples:
  medbook report
  medbook report --next 2w
  medbook report --last 3d --next 1w --calendar`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output.Out = cmd.OutOrStdout()
			book, err := options.OpenBook(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			r.Service = book.Service
			r.JSON = output.JSON
			r.Out = cmd.OutOrStdout()
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&r.Last, "last", "", "how far back to look (for example 3d, 1w)")
	cmd.Flags().StringVar(&r.Next, "next", timeutil.DefaultWindow, "how far ahead to look (for example 3d, 1w)")
	cmd.Flags().BoolVar(&r.Calendar, "calendar", false, "also print a calendar of each month in the window")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
