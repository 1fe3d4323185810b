package console

import (
	"context"
	"fmt"
	"strings"

	"nathanbeddoewebdev/svrmgr/internal/app"
	"nathanbeddoewebdev/svrmgr/internal/auditlog"
	"nathanbeddoewebdev/svrmgr/internal/domain"
	"nathanbeddoewebdev/svrmgr/internal/tui/styles"

	"github.com/spf13/cobra"
)

// tailLines is how many refreshed log entries exec prints.
const tailLines = 10

func ExecCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <command...>",
		Short: "Run a console command",
		Long: `Run a console command on a server and print the response followed
by the newest log entries.

Examples:
  svrmgr console exec status
  svrmgr console exec say "Restart in 5 minutes"
  svrmgr console exec --server srv-003 save`,
		Args:         cobra.MinimumNArgs(1),
		RunE:         runExec,
		SilenceUsage: true,
		Annotations:  map[string]string{app.AuditAnnotation: "true"},
	}

	cmd.Flags().StringP("output", "o", "text", "Output format: text or json")

	return cmd
}

func runExec(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "text" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	a, serverID, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	command := strings.Join(args, " ")
	a.Audit(cmd, auditlog.ResourceCommand, serverID, command)

	var (
		result     *domain.ServerCommand
		refreshErr error
	)
	err = app.Fetch(cmd, "Running command...", func(ctx context.Context) error {
		result, refreshErr = a.Console.ExecuteCommand(ctx, serverID, command)
		if result == nil {
			return refreshErr
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to execute command: %w", err)
	}

	if output == "json" {
		return app.PrintJSON(cmd, result)
	}

	status := styles.SuccessText.Render(result.Status)
	if result.Status == domain.CommandError {
		status = styles.ErrorText.Render(result.Status)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", status, result.Response)

	if refreshErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: command ran but the log could not be refreshed: %v\n", refreshErr)
		return nil
	}

	logs := a.Console.Logs()
	if len(logs) > tailLines {
		logs = logs[len(logs)-tailLines:]
	}
	fmt.Fprintln(cmd.OutOrStdout())
	printLogs(cmd.OutOrStdout(), logs)
	return nil
}
