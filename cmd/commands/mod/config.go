package mod

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"nathanbeddoewebdev/svrmgr/internal/app"
	"nathanbeddoewebdev/svrmgr/internal/auditlog"
	"nathanbeddoewebdev/svrmgr/internal/domain"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ConfigCommand returns the "mod config" command group.
func ConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or replace a mod's configuration",
	}

	cmd.AddCommand(configShowCommand())
	cmd.AddCommand(configSetCommand())

	return cmd
}

func configShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <mod-id>",
		Short: "Print a mod's configuration",
		Long: `Print a mod's configuration text.

Examples:
  svrmgr mod config show mod-001
  svrmgr mod config show mod-001 > cllc.cfg`,
		Args:         cobra.ExactArgs(1),
		RunE:         runConfigShow,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "raw", "Output format: raw or json")

	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "raw" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	a, serverID, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	var cfg *domain.ModConfig
	err = app.Fetch(cmd, "Fetching config...", func(ctx context.Context) error {
		var err error
		cfg, err = a.ModAPI.GetConfig(ctx, serverID, args[0])
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to fetch config: %w", err)
	}

	if output == "json" {
		return app.PrintJSON(cmd, cfg)
	}
	fmt.Fprint(cmd.OutOrStdout(), cfg.Content)
	if !strings.HasSuffix(cfg.Content, "\n") {
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

func configSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <mod-id>",
		Short: "Replace a mod's configuration",
		Long: `Replace a mod's configuration text. The new content is taken from
--content, from --file, or from stdin when neither is given.

Examples:
  svrmgr mod config set mod-001 --file cllc.cfg
  svrmgr mod config set mod-002 --content "[General]
enabled=false"
  cat cllc.cfg | svrmgr mod config set mod-001`,
		Args:         cobra.ExactArgs(1),
		RunE:         runConfigSet,
		SilenceUsage: true,
		Annotations:  map[string]string{app.AuditAnnotation: "true"},
	}

	cmd.Flags().String("content", "", "New configuration text")
	cmd.Flags().String("file", "", "Read the new configuration from this file")
	cmd.MarkFlagsMutuallyExclusive("content", "file")

	return cmd
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	content, err := readContent(cmd)
	if err != nil {
		return err
	}

	a, serverID, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	modID := args[0]
	a.Audit(cmd, auditlog.ResourceModConfig, serverID+"/"+modID, "")

	err = app.Fetch(cmd, "Saving config...", func(ctx context.Context) error {
		return a.Mods.UpdateConfig(ctx, serverID, modID, content)
	})
	if err != nil {
		return fmt.Errorf("failed to update config: %w", err)
	}

	if cfg, ok := a.Mods.Config(modID); ok {
		a.Audit(cmd, auditlog.ResourceModConfig, serverID+"/"+modID, cfg.Name)
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s config (%d lines, modified %s).\n",
			cfg.Name, countLines(cfg.Content), cfg.LastModified.UTC().Format("2006-01-02 15:04:05 UTC"))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved config for %s.\n", modID)
	return nil
}

// readContent returns the new configuration text from --content, --file
// or piped stdin, in that order.
func readContent(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("content") {
		content, _ := cmd.Flags().GetString("content")
		return content, nil
	}

	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return string(data), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", fmt.Errorf("no content given: pass --content, --file or pipe the config on stdin")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
