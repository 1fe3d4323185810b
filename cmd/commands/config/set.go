package config

import (
	"fmt"
	"net/url"
	"strings"

	"nathanbeddoewebdev/svrmgr/internal/config"
	"nathanbeddoewebdev/svrmgr/internal/logging"
	"nathanbeddoewebdev/svrmgr/internal/util"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  svrmgr config set api-url https://panel.example.com\n" +
			"  svrmgr config set timeout 30s\n" +
			"  svrmgr config set log-level debug",
		Args: cobra.ExactArgs(2),
		Run:  runSet,
	}
	// Values such as "-5s" are arguments, not shorthand flags.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// validators maps key names to optional pre-save validation functions.
// Keys not present in this map have no extra validation.
var validators = map[string]func(value string) error{
	"api-url":   validateAPIURL,
	"timeout":   validateTimeout,
	"log-level": validateLogLevel,
}

func runSet(cmd *cobra.Command, args []string) {
	key := util.NormalizeKey(args[0])
	value := strings.TrimSpace(args[1])

	spec := config.Lookup(key)
	if spec == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: unknown configuration key %q\n", args[0])
		fmt.Fprintf(cmd.ErrOrStderr(), "Valid keys: %s\n", strings.Join(config.KeyNames(), ", "))
		return
	}

	if validate, ok := validators[spec.Name]; ok {
		if err := validate(value); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	spec.Set(cfg, value)
	if err := cfg.Save(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, spec.Get(cfg))
}

// validateAPIURL requires an absolute http or https URL.
func validateAPIURL(value string) error {
	u, err := url.Parse(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid api-url %q: expected http(s)://host[:port]", value)
	}
	return nil
}

func validateTimeout(value string) error {
	_, err := config.ParseTimeout(value)
	return err
}

func validateLogLevel(value string) error {
	if !logging.ValidLevel(value) {
		return fmt.Errorf("invalid log-level %q: expected debug, info, warn or error", value)
	}
	return nil
}
