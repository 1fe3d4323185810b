package mod

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"nathanbeddoewebdev/svrmgr/internal/app"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed mods",
		Long: `List the mods installed on a server.

Examples:
  svrmgr mod list
  svrmgr mod list --server srv-003 -o json`,
		Args:         cobra.NoArgs,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	a, serverID, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	err = app.Fetch(cmd, "Fetching mods...", func(ctx context.Context) error {
		return a.Mods.FetchMods(ctx, serverID)
	})
	if err != nil {
		return fmt.Errorf("failed to list mods: %w", err)
	}

	mods := a.Mods.Mods()
	if output == "json" {
		return app.PrintJSON(cmd, mods)
	}
	if len(mods) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No mods installed.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVERSION\tAUTHOR\tENABLED\tCONFIGURABLE\tDEPENDENCIES")
	fmt.Fprintln(w, "--\t----\t-------\t------\t-------\t------------\t------------")
	for _, m := range mods {
		deps := "-"
		if len(m.Dependencies) > 0 {
			deps = strings.Join(m.Dependencies, ",")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			m.ID,
			m.Title,
			m.Version,
			m.Author,
			yesNo(m.Enabled),
			yesNo(m.Configurable),
			deps,
		)
	}
	w.Flush()
	return nil
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

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
