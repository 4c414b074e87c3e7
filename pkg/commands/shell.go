package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/medbook/pkg/commands/options"
	"tableflip.dev/medbook/pkg/runner/shell"
)

func addShell(topLevel *cobra.Command) {
	var themeName string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive record book.",
		Example: `
medbook shell
medbook shell --theme light
medbook shell < commands.txt
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, themeName)
		},
	}
	cmd.Flags().StringVar(&themeName, "theme", "", "Theme to start with when none is remembered: dark or light.")

	topLevel.AddCommand(cmd)
}

func runShell(cmd *cobra.Command, themeName string) error {
	book, err := options.OpenBook(cmd.Context())
	if err != nil {
		return err
	}
	if themeName == "" {
		themeName = book.Settings.Theme
	}
	s := shell.Shell{
		Service: book.Service,
		Theme:   themeName,
		In:      cmd.InOrStdin(),
		Out:     cmd.OutOrStdout(),
	}
	return s.Do(cmd.Context())
}
