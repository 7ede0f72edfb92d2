// Package app wires together all adapters and domain logic.
// It provides lifecycle management for the dashboard server: create, start, stop.
package app

import (
	"fmt"
	"log/slog"

	fsw "github.com/corey/svcdash/internal/adapters/fsnotify"
	"github.com/corey/svcdash/internal/adapters/servicefile"
	"github.com/corey/svcdash/internal/adapters/web"
	"github.com/corey/svcdash/internal/domain/directory"
	"github.com/corey/svcdash/internal/ports"
)

// Config holds the settings needed to run the dashboard server.
type Config struct {
	Addr          string
	DashboardPath string // empty serves the embedded dashboard
	ServicesFile  string // empty uses the built-in table and bindings
	Watch         bool   // reload DashboardPath when it changes
	Logger        *slog.Logger
}

// App is the running dashboard: directory, HTTP server and optional watcher.
type App struct {
	Directory *directory.Directory
	Bindings  []directory.Binding
	WebServer *web.Server
	Watcher   ports.Watcher

	addr   string
	logger *slog.Logger
}

// LoadServices returns the port table and bindings for servicesFile, or the
// built-in ones when it is empty.
func LoadServices(servicesFile string) (directory.Table, []directory.Binding, error) {
	if servicesFile == "" {
		return directory.DefaultTable(), directory.DefaultBindings(), nil
	}
	table, bindings, err := servicefile.Load(servicesFile)
	if err != nil {
		return directory.Table{}, nil, err
	}
	return table, bindings, nil
}

// New creates a fully wired App. Nothing listens until Start.
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	table, bindings, err := LoadServices(cfg.ServicesFile)
	if err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}

	metrics := web.NewMetrics()
	dir := directory.New(table, "",
		directory.WithLogger(logger),
		directory.WithObserver(metrics),
	)

	srv, err := web.NewServer(web.Options{
		Directory:     dir,
		Bindings:      bindings,
		DashboardPath: cfg.DashboardPath,
		Metrics:       metrics,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init dashboard: %w", err)
	}

	a := &App{
		Directory: dir,
		Bindings:  bindings,
		WebServer: srv,
		addr:      cfg.Addr,
		logger:    logger,
	}

	if cfg.Watch && cfg.DashboardPath != "" {
		w, err := fsw.NewWatcher()
		if err != nil {
			return nil, fmt.Errorf("create watcher: %w", err)
		}
		a.Watcher = w
	}

	return a, nil
}

// Start begins serving and, if configured, watching the dashboard file.
func (a *App) Start() error {
	if err := a.WebServer.Start(a.addr); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	a.logger.Info("dashboard listening", "url", a.WebServer.URL(), "services", a.Directory.Table().Len())

	// File watcher is non-fatal: the dashboard still serves the loaded template
	if a.Watcher != nil {
		if err := a.Watcher.Watch(a.WebServer.DashboardPath(), a.onDashboardChanged); err != nil {
			a.logger.Warn("dashboard watcher unavailable", "error", err)
		}
	}
	return nil
}

// Stop shuts down the watcher and HTTP server. Safe to call more than once.
func (a *App) Stop() error {
	var err error
	if a.Watcher != nil {
		if werr := a.Watcher.Stop(); werr != nil {
			err = fmt.Errorf("stop watcher: %w", werr)
		}
	}
	a.WebServer.Stop()
	return err
}

func (a *App) onDashboardChanged(path string) {
	if err := a.WebServer.Reload(); err != nil {
		a.logger.Warn("dashboard reload failed", "path", path, "error", err)
		return
	}
	a.logger.Info("dashboard reloaded", "path", path)
}
