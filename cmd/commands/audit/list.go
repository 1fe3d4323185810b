package audit

import (
	"fmt"
	"text/tabwriter"
	"time"

	"nathanbeddoewebdev/svrmgr/internal/app"
	"nathanbeddoewebdev/svrmgr/internal/auditlog"
	"nathanbeddoewebdev/svrmgr/internal/util"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent audit entries",
		Long: `List recent audit entries stored locally.

Examples:
  svrmgr audit list
  svrmgr audit list --limit 50
  svrmgr audit list --command "svrmgr console exec"
  svrmgr audit list --resource server --id srv-002
  svrmgr audit list --outcome error -o json
  svrmgr audit list --profile panel.example.com`,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 25, "Number of entries to display")
	cmd.Flags().String("command", "", "Filter by exact command path")
	cmd.Flags().String("resource", "", "Filter by resource type (server, mod_config, console_command, session)")
	cmd.Flags().String("id", "", "Filter by resource id")
	cmd.Flags().String("outcome", "", "Filter by outcome (success or error)")
	cmd.Flags().String("profile", "", "Filter by backend host (e.g. localhost:8080)")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	filter := auditlog.Filter{Limit: limit}
	filter.Command, _ = cmd.Flags().GetString("command")
	filter.ResourceType, _ = cmd.Flags().GetString("resource")
	filter.ResourceID, _ = cmd.Flags().GetString("id")
	filter.Outcome, _ = cmd.Flags().GetString("outcome")
	filter.Profile, _ = cmd.Flags().GetString("profile")
	if filter.Outcome != "" && filter.Outcome != auditlog.OutcomeSuccess && filter.Outcome != auditlog.OutcomeError {
		return fmt.Errorf("invalid outcome %q: expected success or error", filter.Outcome)
	}

	repo, err := auditlog.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	entries, err := repo.List(filter)
	if err != nil {
		return err
	}

	if output == "json" {
		if entries == nil {
			entries = []auditlog.AuditEntry{}
		}
		return app.PrintJSON(cmd, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No audit entries found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tBACKEND\tCOMMAND\tOUTCOME\tDURATION\tRESOURCE\tDETAIL")
	fmt.Fprintln(w, "----\t-------\t-------\t-------\t--------\t--------\t------")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			entry.Timestamp.Local().Format("2006-01-02 15:04:05"),
			orDash(entry.Profile),
			entry.Command,
			entry.Outcome,
			formatDuration(entry.DurationMs),
			formatResource(entry),
			orDash(util.Truncate(entry.Detail, maxDetailWidth)),
		)
	}
	w.Flush()
	return nil
}

func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	d := time.Duration(ms) * time.Millisecond
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}

// maxDetailWidth keeps long error messages from wrapping the table.
const maxDetailWidth = 60

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// formatResource renders type:id (name), omitting empty parts.
func formatResource(entry auditlog.AuditEntry) string {
	resource := entry.ResourceType
	if entry.ResourceID != "" {
		if resource != "" {
			resource += ":"
		}
		resource += entry.ResourceID
	}
	if entry.ResourceName != "" {
		if resource != "" {
			resource += " (" + entry.ResourceName + ")"
		} else {
			resource = entry.ResourceName
		}
	}
	if resource == "" {
		return "-"
	}
	return resource
}
