package config

import (
	"nathanbeddoewebdev/svrmgr/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage svrmgr configuration",
		Long: "View and modify persistent svrmgr settings.\n\n" +
			"Configuration is stored at ~/.config/svrmgr/config.json. The environment\n" +
			"variables SVRMGR_API_URL, SVRMGR_TIMEOUT, SVRMGR_LOG_LEVEL and\n" +
			"SVRMGR_LOG_FILE (also read from a .env file) override stored values.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
