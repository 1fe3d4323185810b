package audit

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"nathanbeddoewebdev/svrmgr/internal/auditlog"

	"github.com/spf13/cobra"
)

func PruneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete audit entries older than a duration",
		Long: `Delete audit entries older than a duration. Durations accept a day
suffix in addition to Go duration units.

Examples:
  svrmgr audit prune --older-than 30d
  svrmgr audit prune --older-than 72h --dry-run`,
		RunE:         runPrune,
		SilenceUsage: true,
	}

	cmd.Flags().String("older-than", "", "Remove entries older than this duration (e.g. 30d, 72h)")
	cmd.Flags().Bool("dry-run", false, "Only report how many entries would be removed")

	return cmd
}

func runPrune(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("older-than")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("--older-than is required")
	}

	olderThan, err := parseDuration(raw)
	if err != nil {
		return err
	}

	repo, err := auditlog.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		n, err := repo.CountOlderThan(olderThan)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Would remove %d audit %s.\n", n, plural(n))
		return nil
	}

	removed, err := repo.Prune(olderThan)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d audit %s.\n", removed, plural(removed))
	return nil
}

func plural(n int64) string {
	if n == 1 {
		return "entry"
	}
	return "entries"
}

// parseDuration accepts "<n>d" for whole days and anything
// time.ParseDuration understands.
func parseDuration(input string) (time.Duration, error) {
	var d time.Duration
	if days, ok := strings.CutSuffix(input, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", input)
		}
		d = time.Duration(n) * 24 * time.Hour
	} else {
		var err error
		d, err = time.ParseDuration(input)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", input)
		}
	}

	if d < 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return d, nil
}
