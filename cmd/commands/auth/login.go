package auth

import (
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/svrmgr/internal/app"
	"nathanbeddoewebdev/svrmgr/internal/auditlog"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an access token for the backend",
		Long: `Store an access token for the configured backend in the local keychain.

Examples:
  svrmgr auth login
  svrmgr auth login --token "$SVRMGR_TOKEN"
  svrmgr --api-url https://panel.example.com auth login`,
		Args:         cobra.NoArgs,
		RunE:         runLogin,
		SilenceUsage: true,
		Annotations:  map[string]string{app.AuditAnnotation: "true"},
	}

	cmd.Flags().String("token", "", "Access token (optional, overrides prompt)")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	token, _ := cmd.Flags().GetString("token")
	token = strings.TrimSpace(token)

	a, err := app.FromCommand(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	a.Audit(cmd, auditlog.ResourceSession, a.Profile(), "")

	if token == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("token cannot be empty: pass --token when not running in a terminal")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Enter access token for %s: ", a.Profile())
		bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		token = strings.TrimSpace(string(bytes))
	}

	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if err := a.Tokens.SetToken(a.Profile(), token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved token for %s\n", a.Profile())
	return nil
}
