package overview

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"nathanbeddoewebdev/svrmgr/internal/api"
	"nathanbeddoewebdev/svrmgr/internal/app"
	"nathanbeddoewebdev/svrmgr/internal/domain"
	"nathanbeddoewebdev/svrmgr/internal/tui/styles"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Summary is everything the overview shows for one server.
type Summary struct {
	Server  *domain.Server      `json:"server"`
	Mods    []domain.Mod        `json:"mods"`
	Configs []domain.ModConfig  `json:"configs"`
	Logs    []domain.ConsoleLog `json:"logs"`
}

// NewCommand returns the "overview" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Summarize a server's status, mods and recent log",
		Long: `Load a server's details, mods, configs and recent console output in
parallel and print a single summary.

Examples:
  svrmgr overview
  svrmgr overview --server srv-003 --logs 20
  svrmgr overview -o json`,
		Args:         cobra.NoArgs,
		RunE:         runOverview,
		SilenceUsage: true,
	}

	cmd.Flags().String("server", "", "Server id (defaults to the selected server)")
	cmd.Flags().Int("logs", 5, "Number of recent log entries to show")
	cmd.Flags().StringP("output", "o", "text", "Output format: text or json")

	return cmd
}

func runOverview(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "text" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}
	logLimit, _ := cmd.Flags().GetInt("logs")
	if logLimit <= 0 {
		return fmt.Errorf("logs must be greater than 0")
	}

	a, err := app.FromCommand(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	flag, _ := cmd.Flags().GetString("server")
	serverID, err := a.ResolveServer(flag)
	if err != nil {
		return err
	}

	var summary Summary
	err = app.Fetch(cmd, "Loading overview...", func(ctx context.Context) error {
		var err error
		summary, err = load(ctx, a, serverID, logLimit)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to load overview: %w", err)
	}

	if output == "json" {
		return app.PrintJSON(cmd, summary)
	}
	printSummary(cmd.OutOrStdout(), summary)
	return nil
}

// load fetches every section concurrently. The first failure cancels
// the remaining requests.
func load(ctx context.Context, a *app.App, serverID string, logLimit int) (Summary, error) {
	var summary Summary
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		summary.Server, err = a.ServerAPI.Get(ctx, serverID)
		return err
	})
	g.Go(func() error {
		return a.Mods.FetchMods(ctx, serverID)
	})
	g.Go(func() error {
		return a.Mods.FetchConfigs(ctx, serverID)
	})
	g.Go(func() error {
		return a.Console.FetchLogs(ctx, serverID, api.LogQuery{Limit: logLimit})
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary.Mods = a.Mods.Mods()
	summary.Configs = a.Mods.Configs()
	summary.Logs = a.Console.Logs()
	return summary, nil
}

func printSummary(out io.Writer, s Summary) {
	fmt.Fprintln(out, styles.Title.Render(s.Server.Name))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID:\t%s\n", s.Server.ID)
	fmt.Fprintf(w, "  Address:\t%s\n", s.Server.Address)
	fmt.Fprintf(w, "  Status:\t%s\n", styles.StatusIndicator(s.Server.Status))
	fmt.Fprintf(w, "  Players:\t%d/%d\n", s.Server.Players, s.Server.MaxPlayers)
	fmt.Fprintf(w, "  Version:\t%s\n", s.Server.Version)
	w.Flush()

	configured := make(map[string]bool, len(s.Configs))
	for _, c := range s.Configs {
		configured[c.ModID] = true
	}

	fmt.Fprintf(out, "\n%s\n", styles.Label.Render(fmt.Sprintf("Mods (%d)", len(s.Mods))))
	w = tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	for _, m := range s.Mods {
		state := "disabled"
		if m.Enabled {
			state = "enabled"
		}
		cfg := ""
		if configured[m.ID] {
			cfg = "config"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", m.Title, m.Version, state, cfg)
	}
	w.Flush()

	fmt.Fprintf(out, "\n%s\n", styles.Label.Render("Recent log"))
	if len(s.Logs) == 0 {
		fmt.Fprintln(out, styles.MutedText.Render("  (empty)"))
		return
	}
	for _, l := range s.Logs {
		fmt.Fprintf(out, "  %s  %s  %s\n",
			styles.MutedText.Render(l.Timestamp.Local().Format("15:04:05")),
			styles.LevelStyle(l.Level).Render(fmt.Sprintf("%-7s", l.Level)),
			l.Message,
		)
	}
}
