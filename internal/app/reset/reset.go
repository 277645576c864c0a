package reset

import (
	"context"
	"fmt"
	"os"

	"github.com/hostkit/hostkit/internal/log"
)

// ServiceConfig is the configuration for the reset service.
type ServiceConfig struct {
	// DBPath is the run history database path.
	DBPath string
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service deletes the run history database so it gets recreated from scratch
// on the next host start.
type Service struct {
	dbPath string
	logger log.Logger
}

// NewService creates a new reset service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		dbPath: cfg.DBPath,
		logger: cfg.Logger,
	}, nil
}

// Run deletes the database file and its WAL sidecar files. Missing files are
// not an error, resetting an absent database is a no-op.
func (s *Service) Run(ctx context.Context) error {
	// SQLite in WAL mode leaves -wal and -shm next to the database file.
	for _, path := range []string{s.dbPath, s.dbPath + "-wal", s.dbPath + "-shm"} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("could not remove %s: %w", path, err)
		}
	}

	s.logger.Infof("run history database reset: %s", s.dbPath)
	return nil
}
