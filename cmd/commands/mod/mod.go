package mod

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "mod" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mod",
		Short: "Inspect mods and edit their configuration",
		Long: `Inspect the mods installed on a server and edit their configuration.

Commands act on the selected server unless --server is given.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ConfigsCommand())
	cmd.AddCommand(ConfigCommand())

	cmd.PersistentFlags().String("server", "", "Server id (defaults to the selected server)")

	return cmd
}
