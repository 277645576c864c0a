package track

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hostkit/hostkit/internal/log"
	"github.com/hostkit/hostkit/internal/model"
	"github.com/hostkit/hostkit/internal/storage"
	"github.com/hostkit/hostkit/internal/version"
)

// ServiceConfig is the configuration for the track service.
type ServiceConfig struct {
	Repository storage.Repository
	Logger     log.Logger
	// KeepRuns is how many finished runs to keep when finishing a run,
	// 0 keeps all.
	KeepRuns int
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.KeepRuns < 0 {
		return fmt.Errorf("keep runs can't be negative")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service records host runs in the run history.
type Service struct {
	repo     storage.Repository
	logger   log.Logger
	keepRuns int
}

// NewService creates a new track service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:     cfg.Repository,
		logger:   cfg.Logger,
		keepRuns: cfg.KeepRuns,
	}, nil
}

// Begin records the start of a host run and returns it.
func (s *Service) Begin(ctx context.Context) (*model.Run, error) {
	run := model.Run{
		ID:        ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String(),
		Status:    model.RunStatusRunning,
		Version:   version.Version,
		StartedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("could not create run: %w", err)
	}

	s.logger.Debugf("recorded run start: %s", run.ID)
	return &run, nil
}

// Finish records the end of a host run. serveErr is the error the hosted
// service returned, nil for a clean stop. Finished runs beyond the configured
// keep amount are pruned.
func (s *Service) Finish(ctx context.Context, run model.Run, serveErr error) error {
	now := time.Now().UTC()
	run.StoppedAt = &now
	run.Status = model.RunStatusStopped
	if serveErr != nil {
		run.Status = model.RunStatusFailed
		run.Err = serveErr.Error()
	}

	if err := s.repo.UpdateRun(ctx, run); err != nil {
		return fmt.Errorf("could not update run: %w", err)
	}

	if err := s.repo.PruneRuns(ctx, s.keepRuns); err != nil {
		// Pruning is housekeeping, a failure shouldn't fail the run itself.
		s.logger.Warningf("could not prune run history: %v", err)
	}

	s.logger.Debugf("recorded run end: %s (%s)", run.ID, run.Status)
	return nil
}
