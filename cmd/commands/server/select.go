package server

import (
	"context"
	"errors"
	"fmt"

	"nathanbeddoewebdev/svrmgr/internal/app"
	"nathanbeddoewebdev/svrmgr/internal/auditlog"
	"nathanbeddoewebdev/svrmgr/internal/tui"

	"github.com/spf13/cobra"
)

func SelectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select [id]",
		Short: "Choose the server other commands act on",
		Long: `Choose the server that mod and console commands act on.

Only online servers can be selected. Without an id, an interactive
picker is shown when running in a terminal.

Examples:
  svrmgr server select srv-002
  svrmgr server select          # interactive picker
  svrmgr server select --clear`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runSelect,
		SilenceUsage: true,
		Annotations:  map[string]string{app.AuditAnnotation: "true"},
	}

	cmd.Flags().Bool("clear", false, "Forget the selected server")

	return cmd
}

func runSelect(cmd *cobra.Command, args []string) error {
	a, err := app.FromCommand(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if clear, _ := cmd.Flags().GetBool("clear"); clear {
		previous := a.Servers.SelectedServer()
		a.Servers.ClearSelection()
		a.PersistSelection()
		a.Audit(cmd, auditlog.ResourceServer, previous, "")
		fmt.Fprintln(cmd.OutOrStdout(), "Server selection cleared.")
		return nil
	}

	id := argOrEmpty(args)
	if id == "" {
		if !app.Interactive() {
			return fmt.Errorf("server id is required when not running in a terminal")
		}
		id, err = pickServer(cmd, a)
		if err != nil {
			return err
		}
	}

	a.Audit(cmd, auditlog.ResourceServer, id, "")
	err = app.Fetch(cmd, "Connecting...", func(ctx context.Context) error {
		return a.Servers.SelectServer(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to select server: %w", err)
	}
	a.PersistSelection()

	fmt.Fprintf(cmd.OutOrStdout(), "Selected server %s\n", a.Servers.SelectedServer())
	return nil
}

func pickServer(cmd *cobra.Command, a *app.App) (string, error) {
	err := app.Fetch(cmd, "Fetching servers...", func(ctx context.Context) error {
		return a.Servers.FetchServers(ctx)
	})
	if err != nil {
		return "", fmt.Errorf("failed to list servers: %w", err)
	}

	id, err := tui.PickServer(a.Servers.Servers(), a.Servers.SelectedServer())
	if errors.Is(err, tui.ErrAborted) {
		return "", fmt.Errorf("server selection aborted")
	}
	return id, err
}
