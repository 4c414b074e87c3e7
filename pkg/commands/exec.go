package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/medbook/pkg/commands/options"
	"tableflip.dev/medbook/pkg/parser"
	"tableflip.dev/medbook/pkg/runner/exec"
)

func addExec(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "exec COMMAND [ARGS]...",
		Short: "Run one record book command and print what it changed.",
		Example: `
medbook exec add n/John Doe id/S1234567A p/98765432 t/diabetic
medbook exec find john
medbook exec --json view 1
`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: verbCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.Out = cmd.OutOrStdout()
			book, err := options.OpenBook(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			e := exec.Exec{
				Service: book.Service,
				Text:    strings.Join(args, " "),
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(e.Do(cmd.Context()))
		},
	}
	// Everything after the verb belongs to the command text, including
	// words that look like flags.
	cmd.Flags().SetInterspersed(false)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func verbCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, v := range parser.Verbs() {
		if strings.HasPrefix(v, toComplete) {
			out = append(out, v)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
