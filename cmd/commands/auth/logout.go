package auth

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/svrmgr/internal/app"
	"nathanbeddoewebdev/svrmgr/internal/auditlog"
	"nathanbeddoewebdev/svrmgr/internal/services/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored access token",
		Long: `Remove the access token stored for the configured backend.

Example:
  svrmgr auth logout`,
		Args:         cobra.NoArgs,
		RunE:         runLogout,
		SilenceUsage: true,
		Annotations:  map[string]string{app.AuditAnnotation: "true"},
	}

	return cmd
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := app.FromCommand(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	a.Audit(cmd, auditlog.ResourceSession, a.Profile(), "")

	err = a.Tokens.DeleteToken(a.Profile())
	switch {
	case errors.Is(err, auth.ErrTokenNotFound):
		fmt.Fprintf(cmd.OutOrStdout(), "No token stored for %s\n", a.Profile())
		return nil
	case err != nil:
		return fmt.Errorf("failed to remove token: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed token for %s\n", a.Profile())
	return nil
}
