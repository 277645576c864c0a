package lib

import (
	"context"
	"time"

	"github.com/hostkit/hostkit/internal/model"
)

// Service is what the embedding application wants hosted.
//
// Serve must block until the service is done or the context is canceled, and
// return the error that made it stop (nil for a clean stop).
type Service interface {
	Serve(ctx context.Context) error
}

// ServiceFunc is a function adapter for [Service].
type ServiceFunc func(ctx context.Context) error

// Serve implements [Service].
func (f ServiceFunc) Serve(ctx context.Context) error { return f(ctx) }

// RunStatus represents the lifecycle state of a host run.
type RunStatus string

const (
	// RunStatusRunning indicates the hosted service is currently being served.
	RunStatusRunning RunStatus = "running"
	// RunStatusStopped indicates the run finished cleanly.
	RunStatusStopped RunStatus = "stopped"
	// RunStatusFailed indicates the hosted service returned an error.
	RunStatusFailed RunStatus = "failed"
)

// Run represents a single execution of a hosted service, as recorded in the
// run history.
//
// This is a read-only snapshot, use [Host.ListRuns] to get the latest state.
type Run struct {
	// ID is the unique identifier (ULID) assigned when the run started.
	ID string
	// Status is the run lifecycle state.
	Status RunStatus
	// Version is the hostkit version the run was started with.
	Version string
	// Err is the error message the hosted service returned, empty for clean
	// stops and in-flight runs.
	Err string
	// StartedAt is when the run started.
	StartedAt time.Time
	// StoppedAt is when the run finished. Nil while in flight.
	StoppedAt *time.Time
}

func fromInternalRun(r model.Run) Run {
	return Run{
		ID:        r.ID,
		Status:    RunStatus(r.Status),
		Version:   r.Version,
		Err:       r.Err,
		StartedAt: r.StartedAt,
		StoppedAt: r.StoppedAt,
	}
}

func fromInternalRuns(rs []model.Run) []Run {
	result := make([]Run, len(rs))
	for i, r := range rs {
		result[i] = fromInternalRun(r)
	}
	return result
}
