package auth

import (
	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the backend access token",
		Long: `Manage the access token sent to the console backend.

Tokens are stored in the system keychain, one per backend host.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(LogoutCommand())
	cmd.AddCommand(StatusCommand())

	return cmd
}
