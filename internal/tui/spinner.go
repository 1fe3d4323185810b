package tui

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// WithSpinner runs action while showing a spinner on stderr. Errors from
// action are returned unchanged.
func WithSpinner(ctx context.Context, title string, action func(context.Context) error) error {
	err := spinner.New().
		Title(title).
		Context(ctx).
		Accessible(Accessible()).
		Output(os.Stderr).
		ActionWithErr(action).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}
