package console

import (
	"fmt"
	"io"

	"nathanbeddoewebdev/svrmgr/internal/app"
	"nathanbeddoewebdev/svrmgr/internal/domain"
	"nathanbeddoewebdev/svrmgr/internal/tui/styles"

	"github.com/spf13/cobra"
)

// NewCommand returns the "console" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Read server logs and run console commands",
		Long: `Read a server's console log and run commands on it.

Commands act on the selected server unless --server is given.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(LogsCommand())
	cmd.AddCommand(ExecCommand())

	cmd.PersistentFlags().String("server", "", "Server id (defaults to the selected server)")

	return cmd
}

// setup builds the app and resolves the target server.
func setup(cmd *cobra.Command) (*app.App, string, error) {
	a, err := app.FromCommand(cmd)
	if err != nil {
		return nil, "", err
	}
	flag, _ := cmd.Flags().GetString("server")
	serverID, err := a.ResolveServer(flag)
	if err != nil {
		a.Close()
		return nil, "", err
	}
	return a, serverID, nil
}

// printLogs writes one line per entry, oldest first.
func printLogs(w io.Writer, logs []domain.ConsoleLog) {
	for _, l := range logs {
		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			styles.MutedText.Render(l.Timestamp.Local().Format("2006-01-02 15:04:05")),
			styles.LevelStyle(l.Level).Render(fmt.Sprintf("%-7s", l.Level)),
			styles.SourceStyle(l.Source).Render(fmt.Sprintf("%-6s", l.Source)),
			l.Message,
		)
	}
}
