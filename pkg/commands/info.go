package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/medbook/pkg/commands/options"
	"tableflip.dev/medbook/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Where the record book is stored and what it holds.",
		Example: `
medbook info
MEDBOOK_CONFIG_PATH=/etc/medbook medbook info --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output.Out = cmd.OutOrStdout()
			book, err := options.OpenBook(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			s := info.Info{
				Config:  book.Settings,
				Service: book.Service,
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
