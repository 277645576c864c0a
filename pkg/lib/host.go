package lib

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/oklog/run"

	"github.com/hostkit/hostkit/internal/app/history"
	"github.com/hostkit/hostkit/internal/app/reset"
	"github.com/hostkit/hostkit/internal/app/track"
	"github.com/hostkit/hostkit/internal/log"
	"github.com/hostkit/hostkit/internal/logsink"
	"github.com/hostkit/hostkit/internal/model"
	"github.com/hostkit/hostkit/internal/storage"
	"github.com/hostkit/hostkit/internal/storage/sqlite"
	"github.com/hostkit/hostkit/internal/version"
)

const (
	defaultDataDir = ".hostkit"
	defaultDBFile  = "hostkit.db"
)

// Config configures the host.
//
// All fields are optional and have sensible defaults. At minimum, an empty
// Config{} will use ~/.hostkit/hostkit.db for the run history and stay silent.
type Config struct {
	// DataDir is the base directory for host data.
	// Default: ~/.hostkit.
	DataDir string

	// DBPath is the run history SQLite database path.
	// Default: <DataDir>/hostkit.db.
	DBPath string

	// Logger receives structured log output from the host for the embedding
	// application's own logging setup.
	// Default: noop (silent). See the log sub-package for the interface.
	Logger log.Logger

	// LogSink is the application callback that receives every log line the
	// host produces, as (level, message bytes). It is registered on the
	// process-wide sink registry, replacing any previous registration. Leave
	// nil to keep the current registration (or none). See the logsink
	// sub-package.
	LogSink logsink.Sink

	// KeepRuns is how many finished runs to keep in the run history.
	// 0 (default) keeps all.
	KeepRuns int
}

func (c *Config) defaults() error {
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("could not get user home dir: %w", err)
		}
		c.DataDir = filepath.Join(home, defaultDataDir)
	}

	if c.DBPath == "" {
		c.DBPath = filepath.Join(c.DataDir, defaultDBFile)
	}

	if c.KeepRuns < 0 {
		return fmt.Errorf("keep runs can't be negative: %w", model.ErrNotValid)
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Host is the main SDK entry point for embedding a hosted service.
//
// Create a Host with [New] and release its resources with [Host.Close].
// A Host is safe for concurrent use.
type Host struct {
	repo     storage.Repository
	logger   log.Logger
	dataDir  string
	dbPath   string
	keepRuns int
	closeFn  func() error

	mu      sync.Mutex
	running bool
	stop    context.CancelFunc
}

// New creates a new host backed by a SQLite run history database.
//
// If cfg.LogSink is set it is registered on the process-wide sink registry
// before anything else, so even setup log lines reach the application.
//
// The caller must call [Host.Close] when done to release the database
// connection. Typically used with defer:
//
//	host, err := lib.New(ctx, lib.Config{})
//	if err != nil {
//	    return err
//	}
//	defer host.Close()
func New(ctx context.Context, cfg Config) (*Host, error) {
	if err := cfg.defaults(); err != nil {
		return nil, mapError(fmt.Errorf("invalid config: %w", err))
	}

	if cfg.LogSink != nil {
		logsink.Register(cfg.LogSink)
	}

	// Everything the host logs is also dispatched to the sink registry.
	logger := logsink.WrapLogger(cfg.Logger, logsink.Default())

	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("could not create data directory: %w", err)
	}

	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: cfg.DBPath,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create repository: %w", err)
	}

	return &Host{
		repo:     repo,
		logger:   logger,
		dataDir:  cfg.DataDir,
		dbPath:   cfg.DBPath,
		keepRuns: cfg.KeepRuns,
		closeFn:  repo.Close,
	}, nil
}

// Close releases resources held by the host, including the database
// connection. After Close returns, the host must not be used.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closeFn != nil {
		return h.closeFn()
	}
	return nil
}

// Run serves svc, blocking until the service returns, ctx is canceled, or
// [Host.Stop] is called. The run is recorded in the run history.
//
// Only one run per host may be in flight, a second concurrent Run returns
// [ErrAlreadyRunning]. The error the service returned (if any) is returned
// as-is.
func (h *Host) Run(ctx context.Context, svc Service) error {
	if svc == nil {
		return mapError(fmt.Errorf("service is required: %w", model.ErrNotValid))
	}

	runCtx, cancel := context.WithCancel(ctx)

	h.mu.Lock()
	if h.running {
		h.mu.Unlock()
		cancel()
		return mapError(fmt.Errorf("host: %w", model.ErrAlreadyRunning))
	}
	h.running = true
	h.stop = cancel
	repo := h.repo // ResetDatabase may swap it, pin the one this run uses.
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		h.running = false
		h.stop = nil
		h.mu.Unlock()
		cancel()
	}()

	tracker, err := track.NewService(track.ServiceConfig{
		Repository: repo,
		Logger:     h.logger,
		KeepRuns:   h.keepRuns,
	})
	if err != nil {
		return fmt.Errorf("could not create track service: %w", err)
	}

	rec, err := tracker.Begin(ctx)
	if err != nil {
		return mapError(fmt.Errorf("could not record run start: %w", err))
	}

	h.logger.Infof("host run started: %s (version %s)", rec.ID, version.Version)

	var g run.Group

	// Hosted service.
	{
		g.Add(
			func() error {
				return svc.Serve(runCtx)
			},
			func(_ error) {
				cancel()
			},
		)
	}

	// Stop watcher.
	{
		g.Add(
			func() error {
				<-runCtx.Done()
				h.logger.Debugf("host run stop requested")
				return nil
			},
			func(_ error) {
				cancel()
			},
		)
	}

	serveErr := g.Run()

	// Record the outcome even when the caller's context is already gone.
	if err := tracker.Finish(context.WithoutCancel(ctx), *rec, serveErr); err != nil {
		h.logger.Errorf("could not record run end: %v", err)
	}

	if serveErr != nil {
		h.logger.Errorf("host run failed: %s: %v", rec.ID, serveErr)
		return serveErr
	}

	h.logger.Infof("host run stopped: %s", rec.ID)
	return nil
}

// Stop requests the shutdown of the in-flight run, if any. It returns
// immediately, [Host.Run] returns once the service has wound down. Stopping
// an idle host is a no-op.
func (h *Host) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stop != nil {
		h.stop()
	}
}

// ListRuns returns the run history, newest first.
func (h *Host) ListRuns(ctx context.Context) ([]Run, error) {
	svc, err := history.NewService(history.ServiceConfig{
		Repository: h.repository(),
		Logger:     h.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	runs, err := svc.Run(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return fromInternalRuns(runs), nil
}

func (h *Host) repository() storage.Repository {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.repo
}

// ResetDatabase deletes the run history database and recreates it empty.
// It fails with [ErrAlreadyRunning] when a run is in flight.
func (h *Host) ResetDatabase(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.running {
		return mapError(fmt.Errorf("cannot reset database: %w", model.ErrAlreadyRunning))
	}

	if err := h.closeFn(); err != nil {
		return fmt.Errorf("could not close repository: %w", err)
	}

	svc, err := reset.NewService(reset.ServiceConfig{
		DBPath: h.dbPath,
		Logger: h.logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	if err := svc.Run(ctx); err != nil {
		return mapError(err)
	}

	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: h.dbPath,
		Logger: h.logger,
	})
	if err != nil {
		return fmt.Errorf("could not recreate repository: %w", err)
	}
	h.repo = repo
	h.closeFn = repo.Close

	return nil
}

// Version returns the short hostkit version.
func Version() string {
	return version.Version
}

// LongVersion returns the long hostkit version including runtime information.
func LongVersion() string {
	return version.Long()
}
