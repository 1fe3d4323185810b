package server

import (
	"context"
	"fmt"
	"strings"

	"nathanbeddoewebdev/svrmgr/internal/app"
	"nathanbeddoewebdev/svrmgr/internal/auditlog"
	"nathanbeddoewebdev/svrmgr/internal/domain"
	"nathanbeddoewebdev/svrmgr/internal/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func UpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a server's name or player counts",
		Long: `Update a server's writable fields. Only the flags you pass are sent.

Examples:
  svrmgr server update srv-001 --name "Weekend Server"
  svrmgr server update srv-001 --players 5 --max-players 20`,
		Args:         cobra.ExactArgs(1),
		RunE:         runUpdate,
		SilenceUsage: true,
		Annotations:  map[string]string{app.AuditAnnotation: "true"},
	}

	cmd.Flags().String("name", "", "New display name")
	cmd.Flags().Int("players", 0, "Current player count")
	cmd.Flags().Int("max-players", 0, "Player capacity")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	var update domain.ServerUpdate
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		if err := util.ValidateServerName(name); err != nil {
			return err
		}
		name = strings.TrimSpace(name)
		update.Name = &name
	}
	if cmd.Flags().Changed("players") {
		players, _ := cmd.Flags().GetInt("players")
		update.Players = &players
	}
	if cmd.Flags().Changed("max-players") {
		maxPlayers, _ := cmd.Flags().GetInt("max-players")
		update.MaxPlayers = &maxPlayers
	}
	if update.IsEmpty() {
		return fmt.Errorf("nothing to update: pass --name, --players or --max-players")
	}

	a, err := app.FromCommand(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	id := args[0]
	a.Audit(cmd, auditlog.ResourceServer, id, "")

	var server *domain.Server
	err = app.Fetch(cmd, "Updating server...", func(ctx context.Context) error {
		var err error
		server, err = a.Servers.UpdateServer(ctx, id, update)
		return err
	})
	if server == nil {
		return fmt.Errorf("failed to update server: %w", err)
	}
	a.Audit(cmd, auditlog.ResourceServer, id, server.Name)
	if err != nil {
		a.Logger.Warn("server list refresh failed after update", zap.Error(err))
	}

	if output == "json" {
		return app.PrintJSON(cmd, server)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Server %s updated.\n\n", server.ID)
	printServerDetail(cmd, server, server.ID == a.Servers.SelectedServer())
	return nil
}
