package server

import (
	"context"
	"fmt"

	"nathanbeddoewebdev/svrmgr/internal/app"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all servers",
		Long: `List every server known to the backend.

When no server is selected yet, the first online server is selected
automatically and remembered.

Examples:
  svrmgr server list
  svrmgr server list -o json`,
		Args:         cobra.NoArgs,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	a, err := app.FromCommand(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	err = app.Fetch(cmd, "Fetching servers...", func(ctx context.Context) error {
		return a.Servers.FetchServers(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to list servers: %w", err)
	}
	a.PersistSelection()

	servers := a.Servers.Servers()
	if output == "json" {
		return app.PrintJSON(cmd, servers)
	}

	if len(servers) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No servers found.")
		return nil
	}
	printServerTable(cmd, servers, a.Servers.SelectedServer())
	return nil
}
