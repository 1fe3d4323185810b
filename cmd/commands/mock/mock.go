package mock

import (
	"github.com/spf13/cobra"
)

// NewCommand returns the "mock" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Run the in-memory mock backend",
		Long: `Run an in-memory backend that implements the console API, for local
development and demos.

Settings are read from SVRMGR_MOCK_* environment variables and can be
overridden with flags.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(ServeCommand())
	cmd.AddCommand(TokenCommand())

	return cmd
}
