package sqlite_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostkit/hostkit/internal/log"
	"github.com/hostkit/hostkit/internal/model"
	"github.com/hostkit/hostkit/internal/storage/sqlite"
)

func runFixture(id string, startedAt time.Time) model.Run {
	return model.Run{
		ID:        id,
		Status:    model.RunStatusRunning,
		Version:   "v0.1.0",
		StartedAt: startedAt,
	}
}

func newRepo(t *testing.T) *sqlite.Repository {
	t.Helper()
	repo, err := sqlite.NewRepository(context.Background(), sqlite.RepositoryConfig{
		DBPath: filepath.Join(t.TempDir(), "test.db"),
		Logger: log.Noop,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	startedAt := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	run := runFixture("01K2QWERTYASDFGZXCVBNMLKJH", startedAt)
	require.NoError(t, repo.CreateRun(ctx, run))

	got, err := repo.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusRunning, got.Status)
	assert.Equal(t, "v0.1.0", got.Version)
	assert.Equal(t, startedAt, got.StartedAt)
	assert.Nil(t, got.StoppedAt)

	stoppedAt := startedAt.Add(42 * time.Second)
	run.Status = model.RunStatusFailed
	run.Err = "service exploded"
	run.StoppedAt = &stoppedAt
	require.NoError(t, repo.UpdateRun(ctx, run))

	updated, err := repo.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusFailed, updated.Status)
	assert.Equal(t, "service exploded", updated.Err)
	require.NotNil(t, updated.StoppedAt)
	assert.Equal(t, stoppedAt, *updated.StoppedAt)
}

func TestRepositoryCreateRunAlreadyExists(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	run := runFixture("id-1", time.Now().UTC())
	require.NoError(t, repo.CreateRun(ctx, run))

	err := repo.CreateRun(ctx, run)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrAlreadyExists))
}

func TestRepositoryGetRunNotFound(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.GetRun(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestRepositoryUpdateRunNotFound(t *testing.T) {
	repo := newRepo(t)

	err := repo.UpdateRun(context.Background(), runFixture("missing", time.Now().UTC()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestRepositoryListRunsOrder(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateRun(ctx, runFixture(fmt.Sprintf("id-%d", i), base.Add(time.Duration(i)*time.Minute))))
	}

	runs, err := repo.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "id-2", runs[0].ID)
	assert.Equal(t, "id-1", runs[1].ID)
	assert.Equal(t, "id-0", runs[2].ID)
}

func TestRepositoryPruneRuns(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	// 4 finished runs and a running one.
	for i := 0; i < 4; i++ {
		run := runFixture(fmt.Sprintf("id-%d", i), base.Add(time.Duration(i)*time.Minute))
		run.Status = model.RunStatusStopped
		stoppedAt := run.StartedAt.Add(30 * time.Second)
		run.StoppedAt = &stoppedAt
		require.NoError(t, repo.CreateRun(ctx, run))
	}
	require.NoError(t, repo.CreateRun(ctx, runFixture("id-running", base.Add(time.Hour))))

	require.NoError(t, repo.PruneRuns(ctx, 2))

	runs, err := repo.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	// Running run untouched, newest 2 finished runs kept.
	assert.Equal(t, "id-running", runs[0].ID)
	assert.Equal(t, "id-3", runs[1].ID)
	assert.Equal(t, "id-2", runs[2].ID)
}

func TestRepositoryPruneRunsKeepAll(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	run := runFixture("id-1", time.Now().UTC())
	run.Status = model.RunStatusStopped
	require.NoError(t, repo.CreateRun(ctx, run))

	require.NoError(t, repo.PruneRuns(ctx, 0))

	runs, err := repo.ListRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
