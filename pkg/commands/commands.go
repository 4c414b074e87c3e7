package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "medbook",
		Short: base.Wrap80("Patient records and appointments on the command line."),
		Long: base.Wrap80("medbook keeps a book of patients and their appointments. " +
			"Run it without arguments to open the interactive shell, or use exec to run a single command."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, "")
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addShell(topLevel)
	addExec(topLevel)
	addReport(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
