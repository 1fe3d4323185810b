package server

import (
	"context"
	"fmt"

	"nathanbeddoewebdev/svrmgr/internal/app"
	"nathanbeddoewebdev/svrmgr/internal/domain"

	"github.com/spf13/cobra"
)

func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show details for a server",
		Long: `Show details for a server. Defaults to the selected server.

Examples:
  svrmgr server show
  svrmgr server show srv-003 -o json`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runShow,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	a, err := app.FromCommand(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.ResolveServer(argOrEmpty(args))
	if err != nil {
		return err
	}

	var server *domain.Server
	err = app.Fetch(cmd, "Fetching server...", func(ctx context.Context) error {
		var err error
		server, err = a.ServerAPI.Get(ctx, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to fetch server: %w", err)
	}

	if output == "json" {
		return app.PrintJSON(cmd, server)
	}
	printServerDetail(cmd, server, server.ID == a.Servers.SelectedServer())
	return nil
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
