package server

import (
	"fmt"
	"text/tabwriter"
	"time"

	"nathanbeddoewebdev/svrmgr/internal/domain"
	"nathanbeddoewebdev/svrmgr/internal/tui/styles"

	"github.com/spf13/cobra"
)

// printServerTable prints the fleet with the selected server marked.
func printServerTable(cmd *cobra.Command, servers []domain.Server, selected string) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, " \tID\tNAME\tADDRESS\tSTATUS\tPLAYERS\tVERSION\tLAST PING")
	fmt.Fprintln(w, " \t--\t----\t-------\t------\t-------\t-------\t---------")

	for _, s := range servers {
		marker := " "
		if s.ID == selected {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d/%d\t%s\t%s\n",
			marker,
			s.ID,
			s.Name,
			s.Address,
			s.Status,
			s.Players, s.MaxPlayers,
			s.Version,
			formatPing(s),
		)
	}

	w.Flush()
}

// printServerDetail prints a vertical key-value table of all server fields.
func printServerDetail(cmd *cobra.Command, server *domain.Server, selected bool) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "  ID:\t%s\n", server.ID)
	fmt.Fprintf(w, "  Name:\t%s\n", server.Name)
	fmt.Fprintf(w, "  Address:\t%s\n", server.Address)
	fmt.Fprintf(w, "  Status:\t%s\n", styles.StatusIndicator(server.Status))
	fmt.Fprintf(w, "  Players:\t%d/%d\n", server.Players, server.MaxPlayers)
	fmt.Fprintf(w, "  Version:\t%s\n", server.Version)
	fmt.Fprintf(w, "  Last ping:\t%s\n", formatPing(*server))
	if selected {
		fmt.Fprintf(w, "  Selected:\t%s\n", styles.AccentText.Render("yes"))
	}

	w.Flush()
}

func formatPing(s domain.Server) string {
	ping := s.LastPingTime()
	if ping.IsZero() {
		return "-"
	}
	return formatAge(time.Since(ping))
}

func formatAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
