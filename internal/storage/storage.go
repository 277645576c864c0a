package storage

import (
	"context"

	"github.com/hostkit/hostkit/internal/model"
)

// Repository is the interface for run history persistence.
type Repository interface {
	CreateRun(ctx context.Context, r model.Run) error
	GetRun(ctx context.Context, id string) (*model.Run, error)
	ListRuns(ctx context.Context) ([]model.Run, error)
	UpdateRun(ctx context.Context, r model.Run) error
	// PruneRuns deletes finished runs, keeping the newest keep ones.
	// keep <= 0 keeps everything.
	PruneRuns(ctx context.Context, keep int) error
}
