package mod

import (
	"context"
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/svrmgr/internal/app"
	"nathanbeddoewebdev/svrmgr/internal/domain"

	"github.com/spf13/cobra"
)

func ConfigsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configs",
		Short: "List mod configuration files",
		Long: `List the configuration files of every mod on a server.

Examples:
  svrmgr mod configs
  svrmgr mod configs -o json`,
		Args:         cobra.NoArgs,
		RunE:         runConfigs,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runConfigs(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	a, serverID, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	err = app.Fetch(cmd, "Fetching configs...", func(ctx context.Context) error {
		return a.Mods.FetchConfigs(ctx, serverID)
	})
	if err != nil {
		return fmt.Errorf("failed to list configs: %w", err)
	}

	configs := a.Mods.Configs()
	if output == "json" {
		return app.PrintJSON(cmd, configs)
	}
	printConfigTable(cmd, configs)
	return nil
}

func printConfigTable(cmd *cobra.Command, configs []domain.ModConfig) {
	if len(configs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No mod configs found.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tMOD\tNAME\tLINES\tLAST MODIFIED")
	fmt.Fprintln(w, "--\t---\t----\t-----\t-------------")
	for _, c := range configs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			c.ID,
			c.ModID,
			c.Name,
			countLines(c.Content),
			c.LastModified.UTC().Format("2006-01-02 15:04:05 UTC"),
		)
	}
	w.Flush()
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := 1
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
