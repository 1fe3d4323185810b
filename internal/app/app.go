// Package app assembles the pieces a single svrmgr invocation needs:
// resolved settings, a logger, the backend client, the stores and the
// persisted server selection.
package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"nathanbeddoewebdev/svrmgr/internal/api"
	"nathanbeddoewebdev/svrmgr/internal/config"
	"nathanbeddoewebdev/svrmgr/internal/logging"
	"nathanbeddoewebdev/svrmgr/internal/request"
	"nathanbeddoewebdev/svrmgr/internal/selection"
	"nathanbeddoewebdev/svrmgr/internal/services/auth"
	selsvc "nathanbeddoewebdev/svrmgr/internal/services/selection"
	"nathanbeddoewebdev/svrmgr/internal/stores"

	"go.uber.org/zap"
)

// ErrNoServerSelected is returned when a server-scoped command has
// neither --server nor a remembered selection.
var ErrNoServerSelected = errors.New("no server selected (run 'svrmgr server select <id>')")

// Options controls how an App is built.
type Options struct {
	// APIURL overrides the configured backend URL when non-empty.
	APIURL string

	// ErrOut receives the login hint printed after a 401.
	ErrOut io.Writer
}

// App is the wired object graph for one command run.
type App struct {
	Settings config.Settings
	Logger   *zap.Logger
	Tokens   auth.Store
	Client   *request.Client

	ServerAPI  *api.ServerAPI
	ModAPI     *api.ModAPI
	ConsoleAPI *api.ConsoleAPI

	Servers *stores.ServerStore
	Mods    *stores.ModStore
	Console *stores.ConsoleStore

	selection *selsvc.Service
}

// New loads configuration and builds the object graph. The remembered
// selection for the backend profile is restored into the ServerStore.
func New(opts Options) (*App, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	settings, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	if u := strings.TrimSpace(opts.APIURL); u != "" {
		settings.APIURL = strings.TrimRight(u, "/")
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:  settings.LogLevel,
		Format: "text",
		File:   settings.LogFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	errOut := opts.ErrOut
	if errOut == nil {
		errOut = io.Discard
	}

	tokens := auth.DefaultStore()
	client := request.New(settings.APIURL,
		request.WithTokenStore(tokens),
		request.WithTimeout(settings.Timeout),
		request.WithLogger(logger.Named("request")),
		request.WithLoginHandler(func() {
			fmt.Fprintln(errOut, "Session expired or missing. Run 'svrmgr auth login' to authenticate.")
		}),
	)

	a := &App{
		Settings:   settings,
		Logger:     logger,
		Tokens:     tokens,
		Client:     client,
		ServerAPI:  api.NewServerAPI(client),
		ModAPI:     api.NewModAPI(client),
		ConsoleAPI: api.NewConsoleAPI(client),
	}
	a.Servers = stores.NewServerStore(a.ServerAPI)
	a.Mods = stores.NewModStore(a.ModAPI)
	a.Console = stores.NewConsoleStore(a.ConsoleAPI)

	repo, err := selection.Open()
	if err != nil {
		logger.Warn("server selection will not be remembered", zap.Error(err))
		a.selection = selsvc.NewService(nil)
	} else {
		a.selection = selsvc.NewService(repo)
	}
	a.Servers.Restore(a.selection.Recall(a.Profile()))

	logger.Debug("app ready",
		zap.String("api_url", settings.APIURL),
		zap.Duration("timeout", settings.Timeout),
		zap.String("selected", a.Servers.SelectedServer()))
	return a, nil
}

// Profile is the credential and selection key for the configured backend.
func (a *App) Profile() string {
	return a.Client.Profile()
}

// ResolveServer returns flagValue when set, otherwise the remembered
// selection.
func (a *App) ResolveServer(flagValue string) (string, error) {
	if id := strings.TrimSpace(flagValue); id != "" {
		return id, nil
	}
	if id := a.Servers.SelectedServer(); id != "" {
		return id, nil
	}
	return "", ErrNoServerSelected
}

// PersistSelection stores the ServerStore's current selection for the
// next invocation.
func (a *App) PersistSelection() {
	a.selection.Remember(a.Profile(), a.Servers.SelectedServer())
}

// Close flushes the logger and releases the selection database.
func (a *App) Close() error {
	_ = a.Logger.Sync()
	return a.selection.Close()
}
