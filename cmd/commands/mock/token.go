package mock

import (
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/svrmgr/internal/app"
	"nathanbeddoewebdev/svrmgr/internal/mockserver"

	"github.com/spf13/cobra"
)

func TokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a secured mock backend",
		Long: `Issue an HS256 bearer token accepted by a mock backend started with
the same secret. With --save the token is stored for the configured
backend, as if entered with 'svrmgr auth login'.

Examples:
  svrmgr mock token --secret dev-secret
  svrmgr mock token --secret dev-secret --ttl 1h --save`,
		Args:         cobra.NoArgs,
		RunE:         runToken,
		SilenceUsage: true,
	}

	cmd.Flags().String("secret", "", "Signing secret (default $SVRMGR_MOCK_SECRET)")
	cmd.Flags().String("subject", "svrmgr", "Token subject")
	cmd.Flags().Duration("ttl", mockserver.DefaultTokenTTL, "Token lifetime")
	cmd.Flags().Bool("save", false, "Store the token for the configured backend")

	return cmd
}

func runToken(cmd *cobra.Command, args []string) error {
	secret, _ := cmd.Flags().GetString("secret")
	if strings.TrimSpace(secret) == "" {
		secret = os.Getenv(mockserver.EnvPrefix + "_SECRET")
	}
	subject, _ := cmd.Flags().GetString("subject")
	ttl, _ := cmd.Flags().GetDuration("ttl")

	token, err := mockserver.IssueToken(secret, subject, ttl)
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); !save {
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	}

	a, err := app.FromCommand(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Tokens.SetToken(a.Profile(), token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved token for %s (expires in %s)\n", a.Profile(), ttl)
	return nil
}
