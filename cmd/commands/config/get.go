package config

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"nathanbeddoewebdev/svrmgr/internal/config"
	"nathanbeddoewebdev/svrmgr/internal/util"

	"github.com/spf13/cobra"
)

// GetCommand returns the "config get" command.
func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Get a configuration value",
		Long: "Get a persistent configuration value.\n\n" +
			"Without a key, every stored value is listed next to the effective\n" +
			"value after environment overrides and defaults.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  svrmgr config get            # list all settings\n" +
			"  svrmgr config get api-url    # print a single stored value",
		Args:         cobra.MaximumNArgs(1),
		RunE:         runGet,
		SilenceUsage: true,
	}

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if len(args) == 0 {
		return printAll(cmd, cfg)
	}

	key := util.NormalizeKey(args[0])
	spec := config.Lookup(key)
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
	}

	value := spec.Get(cfg)
	if value == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "not set")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}
	return nil
}

func printAll(cmd *cobra.Command, cfg *config.Config) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	settings, err := cfg.Resolve()
	if err != nil {
		return err
	}
	effective := map[string]string{
		"api-url":   settings.APIURL,
		"timeout":   settings.Timeout.String(),
		"log-level": settings.LogLevel,
		"log-file":  settings.LogFile,
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "KEY\tSTORED\tEFFECTIVE")
	fmt.Fprintln(w, "---\t------\t---------")
	for _, spec := range config.Keys {
		stored := spec.Get(cfg)
		if stored == "" {
			stored = "(not set)"
		}
		eff := effective[spec.Name]
		if eff == "" {
			eff = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", spec.Name, stored, eff)
	}
	return w.Flush()
}
