package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"time"

	"nathanbeddoewebdev/svrmgr/cmd/commands/audit"
	"nathanbeddoewebdev/svrmgr/cmd/commands/auth"
	cfgcmd "nathanbeddoewebdev/svrmgr/cmd/commands/config"
	"nathanbeddoewebdev/svrmgr/cmd/commands/console"
	"nathanbeddoewebdev/svrmgr/cmd/commands/mock"
	"nathanbeddoewebdev/svrmgr/cmd/commands/mod"
	"nathanbeddoewebdev/svrmgr/cmd/commands/overview"
	"nathanbeddoewebdev/svrmgr/cmd/commands/server"
	"nathanbeddoewebdev/svrmgr/internal/app"
	"nathanbeddoewebdev/svrmgr/internal/auditlog"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "svrmgr",
		Short: "A CLI console for managing a fleet of game servers",
		Long: `svrmgr is a command-line console for a game-server fleet. It lists
servers, remembers which one you are working on, edits mod
configuration and runs console commands.

Quick start:
  svrmgr mock serve &              # Start a local mock backend
  svrmgr server list               # List servers and select the first online one
  svrmgr mod list                  # Mods on the selected server
  svrmgr console exec status       # Run a console command`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String(app.APIURLFlag, "", "Backend base URL (overrides config and SVRMGR_API_URL)")

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(server.NewCommand())
	cmd.AddCommand(mod.NewCommand())
	cmd.AddCommand(console.NewCommand())
	cmd.AddCommand(overview.NewCommand())
	cmd.AddCommand(audit.NewCommand())
	cmd.AddCommand(mock.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var root = rootCmd()
	start := time.Now()
	executed, err := root.ExecuteContextC(ctx)
	recordAudit(executed, os.Args[1:], start, err)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// recordAudit writes an audit entry for commands carrying the audit
// annotation. Failures to record never change the command's outcome.
func recordAudit(cmd *cobra.Command, args []string, start time.Time, runErr error) {
	if cmd == nil || cmd.Annotations[app.AuditAnnotation] == "" {
		return
	}

	repo, err := auditlog.Open()
	if err != nil {
		return
	}
	defer repo.Close()

	_ = repo.Save(newAuditEntry(cmd, args, start, runErr))
}

func newAuditEntry(cmd *cobra.Command, args []string, start time.Time, runErr error) *auditlog.AuditEntry {
	entry := &auditlog.AuditEntry{
		Timestamp:  start.UTC(),
		Command:    cmd.CommandPath(),
		Args:       strings.Join(auditlog.SanitizeArgs(args), " "),
		Outcome:    auditlog.OutcomeSuccess,
		DurationMs: time.Since(start).Milliseconds(),
	}
	auditlog.MetadataFromContext(cmd.Context()).Apply(entry)
	if runErr != nil {
		entry.Outcome = auditlog.OutcomeError
		entry.Detail = runErr.Error()
	}
	return entry
}
