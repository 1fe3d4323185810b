package server

import (
	"context"
	"fmt"

	"nathanbeddoewebdev/svrmgr/internal/app"
	"nathanbeddoewebdev/svrmgr/internal/auditlog"

	"github.com/spf13/cobra"
)

func FlushCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flush [id]",
		Short: "Flush a server's page cache",
		Long: `Ask a server to flush its page cache. Defaults to the selected server.

Examples:
  svrmgr server flush
  svrmgr server flush srv-004`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runFlush,
		SilenceUsage: true,
		Annotations:  map[string]string{app.AuditAnnotation: "true"},
	}

	return cmd
}

func runFlush(cmd *cobra.Command, args []string) error {
	a, err := app.FromCommand(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.ResolveServer(argOrEmpty(args))
	if err != nil {
		return err
	}
	a.Audit(cmd, auditlog.ResourceServer, id, "")

	err = app.Fetch(cmd, "Flushing pages...", func(ctx context.Context) error {
		return a.Servers.FlushPages(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to flush pages: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Flushed pages on %s.\n", id)
	return nil
}
