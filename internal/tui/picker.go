// Package tui holds the small interactive pieces svrmgr uses when
// attached to a terminal: a server picker and a spinner for slow calls.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/svrmgr/internal/domain"
	"nathanbeddoewebdev/svrmgr/internal/tui/styles"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user cancels an interactive prompt.
var ErrAborted = errors.New("aborted by user")

// Accessible reports whether huh should run in accessible mode.
func Accessible() bool {
	return os.Getenv("ACCESSIBLE") != ""
}

// PickServer asks the user to choose one of servers. Offline servers are
// listed but cannot be connected to, so the caller's selection rule still
// applies to whatever is picked.
func PickServer(servers []domain.Server, current string) (string, error) {
	if len(servers) == 0 {
		return "", fmt.Errorf("no servers found")
	}

	selected := current
	options := buildServerOptions(servers)

	selectField := huh.NewSelect[string]().
		Title("Select a server").
		Options(options...).
		Value(&selected).
		Height(selectHeight(len(options), 12))

	if err := runForm(Accessible(), huh.NewGroup(selectField)); err != nil {
		return "", err
	}
	return selected, nil
}

func buildServerOptions(servers []domain.Server) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(servers))
	for _, s := range servers {
		label := fmt.Sprintf("%s  %s  %d/%d  %s",
			s.Name, s.Address, s.Players, s.MaxPlayers, styles.StatusIndicator(s.Status))
		options = append(options, huh.NewOption(label, s.ID))
	}
	return options
}

func selectHeight(n, max int) int {
	if n < 5 {
		return 5
	}
	if n > max {
		return max
	}
	return n
}

func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return ErrAborted
		}
		return err
	}
	return nil
}
