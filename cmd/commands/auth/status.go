package auth

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/svrmgr/internal/app"
	"nathanbeddoewebdev/svrmgr/internal/services/auth"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show authentication status for the backend",
		Long: `Show which backend is configured and whether a token is stored for it.

Example:
  svrmgr auth status`,
		Args:         cobra.NoArgs,
		RunE:         runStatus,
		SilenceUsage: true,
	}

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := app.FromCommand(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	state := "logged in"
	_, err = a.Tokens.GetToken(a.Profile())
	switch {
	case errors.Is(err, auth.ErrTokenNotFound):
		state = "not logged in"
	case err != nil:
		state = fmt.Sprintf("error (%v)", err)
	}

	selected := a.Servers.SelectedServer()
	if selected == "" {
		selected = "(none)"
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Backend:\t%s\n", a.Settings.APIURL)
	fmt.Fprintf(w, "  Profile:\t%s\n", a.Profile())
	fmt.Fprintf(w, "  Status:\t%s\n", state)
	fmt.Fprintf(w, "  Selected server:\t%s\n", selected)
	w.Flush()
	return nil
}
