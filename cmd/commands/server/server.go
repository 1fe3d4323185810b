package server

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "server" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Inspect and manage game servers",
		Long: `List the fleet, choose the server other commands act on, and edit
server settings.

The selected server is remembered per backend in ~/.config/svrmgr/svrmgr.db.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(SelectCommand())
	cmd.AddCommand(UpdateCommand())
	cmd.AddCommand(FlushCommand())

	return cmd
}
