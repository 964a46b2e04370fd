package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storefront/internal/api"
	"github.com/alexisbeaulieu97/storefront/internal/catalog"
	"github.com/alexisbeaulieu97/storefront/internal/config"
	"github.com/alexisbeaulieu97/storefront/internal/logger"
	"github.com/alexisbeaulieu97/storefront/internal/navigation"
	"github.com/alexisbeaulieu97/storefront/internal/persist"
	"github.com/alexisbeaulieu97/storefront/internal/state"
)

const (
	logFileName = "storefront.log"
	dbFileName  = "state.db"

	closeTimeout = 5 * time.Second
)

// App bundles long-lived services created at startup.
type App struct {
	Config    *config.Config
	Log       *logger.Logger
	Storage   persist.Storage
	Store     *state.Store
	Persister *persist.Persister
	Navigator *navigation.Navigator
	Client    *api.Client
	Browser   *catalog.Browser

	logFile io.Closer
}

// logTarget decides where an App logs.
type logTarget int

const (
	// logToStderr writes human-readable output for one-shot commands.
	logToStderr logTarget = iota
	// logToFile keeps the alt-screen clean while the TUI runs.
	logToFile
)

// openApp runs the bootstrap shared by every command: configuration, logger,
// storage, rehydration, store, persister, navigator and gateway.
func openApp(ctx context.Context, cmd *cobra.Command, flags *rootFlags, component string, target logTarget) (*App, error) {
	overrides := config.Overrides{
		BaseURL:    flags.apiURL,
		StorageDir: flags.stateDir,
		Backend:    flags.storage,
	}
	if flags.verbose {
		overrides.LogLevel = "debug"
	}
	cfg, err := config.Load(flags.configPath, overrides)
	if err != nil {
		return nil, newCommandError(component, "loading configuration", err, "Check the config file and command-line flags.")
	}

	app := &App{Config: cfg}

	log, err := app.newLogger(cmd, flags, target)
	if err != nil {
		return nil, newCommandError(component, "creating logger", err, "Check log.level in the config file.")
	}
	app.Log = log.WithFields(map[string]any{
		"correlation_id": uuid.NewString(),
		"command":        component,
	})

	storage, err := openStorage(ctx, cfg)
	if err != nil {
		app.closeLog()
		return nil, newCommandError(component, "opening session storage", err, fmt.Sprintf("Ensure %s is writable.", cfg.Storage.Dir))
	}
	app.Storage = storage

	app.Store = state.NewStore(state.Initial(), state.WithLogger(app.Log))
	if persist.Restore(ctx, app.Store, storage, app.Log) {
		app.Log.Debug("session restored")
	}
	app.Persister = persist.NewPersister(app.Store, storage, app.Log)
	app.Navigator = navigation.NewNavigator(app.Store)

	app.Client = api.NewClient(
		api.WithBaseURL(cfg.API.BaseURL),
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(app.Log),
	)
	app.Browser = catalog.NewBrowser(app.Client, app.Store, catalog.Options{
		HomePageSize:    cfg.UI.HomePageSize,
		ListingPageSize: cfg.UI.ListingPageSize,
		Logger:          app.Log,
	})

	return app, nil
}

func (a *App) newLogger(cmd *cobra.Command, flags *rootFlags, target logTarget) (*logger.Logger, error) {
	switch target {
	case logToFile:
		if err := os.MkdirAll(a.Config.Storage.Dir, 0o700); err != nil {
			return nil, err
		}
		file, err := os.OpenFile(filepath.Join(a.Config.Storage.Dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, err
		}
		a.logFile = file

		return logger.New(logger.Options{Level: a.Config.Log.Level, Writer: file, Component: "tui"})

	default:
		// One-shot commands stay quiet unless --verbose raised the configured level.
		level := "warn"
		if flags.verbose {
			level = a.Config.Log.Level
		}
		return logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr(), Component: "cli"})
	}
}

func openStorage(ctx context.Context, cfg *config.Config) (persist.Storage, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		return persist.OpenSQLite(ctx, filepath.Join(cfg.Storage.Dir, dbFileName))
	default:
		return persist.NewFileStorage(cfg.Storage.Dir)
	}
}

// Close writes any queued snapshot and releases storage.
func (a *App) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	var errs []error
	if err := a.Persister.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("flush session: %w", err))
	}
	a.Navigator.Close()
	if err := a.Storage.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close storage: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		a.Log.Error(err, "shutdown incomplete")
	}
	a.closeLog()
	return errors.Join(errs...)
}

func (a *App) closeLog() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// withApp opens the App for one command and closes it afterwards.
func withApp(cmd *cobra.Command, flags *rootFlags, operation string, fn func(ctx context.Context, app *App) error) error {
	ctx := cmd.Context()
	app, err := openApp(ctx, cmd, flags, operation, logToStderr)
	if err != nil {
		return err
	}

	runErr := fn(ctx, app)
	closeErr := app.Close()
	if runErr != nil {
		return runErr
	}
	if closeErr != nil {
		return newCommandError(operation, "saving session", closeErr, "Check that the state directory is writable.")
	}
	return nil
}

// requireGate refuses catalog commands until the user has signed in or
// chosen to browse as a guest.
func requireGate(app *App, operation string) error {
	if app.Navigator.Graph() == navigation.Authenticated {
		return nil
	}
	return newCommandError(operation, "checking session", errors.New("not signed in"), "Run 'storefront login' or 'storefront skip' first.")
}
