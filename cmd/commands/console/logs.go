package console

import (
	"context"
	"fmt"

	"nathanbeddoewebdev/svrmgr/internal/api"
	"nathanbeddoewebdev/svrmgr/internal/app"

	"github.com/spf13/cobra"
)

func LogsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show a server's console log",
		Long: `Show the newest console log entries, oldest first.

--offset skips that many of the newest entries, which pages back
through history.

Examples:
  svrmgr console logs
  svrmgr console logs --limit 20 --offset 20
  svrmgr console logs -o json`,
		Args:         cobra.NoArgs,
		RunE:         runLogs,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 50, "Maximum number of entries")
	cmd.Flags().Int("offset", 0, "Skip this many of the newest entries")
	cmd.Flags().StringP("output", "o", "text", "Output format: text or json")

	return cmd
}

func runLogs(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")
	output, _ := cmd.Flags().GetString("output")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}
	if offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	if output != "text" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	a, serverID, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	err = app.Fetch(cmd, "Fetching logs...", func(ctx context.Context) error {
		return a.Console.FetchLogs(ctx, serverID, api.LogQuery{Limit: limit, Offset: offset})
	})
	if err != nil {
		return fmt.Errorf("failed to fetch logs: %w", err)
	}

	logs := a.Console.Logs()
	if output == "json" {
		return app.PrintJSON(cmd, logs)
	}
	if len(logs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No log entries.")
		return nil
	}
	printLogs(cmd.OutOrStdout(), logs)
	return nil
}
