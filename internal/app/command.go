package app

import (
	"context"
	"encoding/json"
	"os"

	"nathanbeddoewebdev/svrmgr/internal/auditlog"
	"nathanbeddoewebdev/svrmgr/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// APIURLFlag is the persistent root flag that overrides the backend URL.
const APIURLFlag = "api-url"

// AuditAnnotation marks commands whose runs are written to the audit log.
const AuditAnnotation = "svrmgr/audit"

// FromCommand builds an App for cmd, honoring --api-url when the flag
// exists on the command tree.
func FromCommand(cmd *cobra.Command) (*App, error) {
	opts := Options{ErrOut: cmd.ErrOrStderr()}
	if f := cmd.Flag(APIURLFlag); f != nil {
		opts.APIURL = f.Value.String()
	}
	return New(opts)
}

// Interactive reports whether stdout is attached to a terminal.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Fetch runs fn with cmd's context, behind a spinner when interactive.
func Fetch(cmd *cobra.Command, title string, fn func(ctx context.Context) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if !Interactive() {
		return fn(ctx)
	}
	return tui.WithSpinner(ctx, title, fn)
}

// Audit records the resource a command acted on so the root command can
// write it to the audit log.
func (a *App) Audit(cmd *cobra.Command, resourceType, resourceID, resourceName string) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(auditlog.WithMetadata(ctx, auditlog.Metadata{
		Profile:      a.Profile(),
		ResourceType: resourceType,
		ResourceID:   resourceID,
		ResourceName: resourceName,
	}))
}

// PrintJSON encodes v as indented JSON to cmd's stdout.
func PrintJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
