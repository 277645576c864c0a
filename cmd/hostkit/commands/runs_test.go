package commands_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostkit/hostkit/cmd/hostkit/commands"
	"github.com/hostkit/hostkit/internal/log"
	"github.com/hostkit/hostkit/internal/model"
	"github.com/hostkit/hostkit/internal/storage/sqlite"
)

func TestRunsCommand(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// Seed the database with a run.
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{DBPath: dbPath, Logger: log.Noop})
	require.NoError(t, err)
	require.NoError(t, repo.CreateRun(ctx, model.Run{
		ID:        "01K2QWERTYASDFGZXCVBNMLKJH",
		Status:    model.RunStatusRunning,
		Version:   "v0.1.0",
		StartedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, repo.Close())

	app := kingpin.New("hostkit-test", "")
	rootCmd := &commands.RootCommand{DBPath: dbPath, Logger: log.Noop}
	cmd := commands.NewRunsCommand(rootCmd, app)

	var stdout bytes.Buffer
	rootCmd.Stdout = &stdout

	_, err = app.Parse([]string{"runs"})
	require.NoError(t, err)
	require.NoError(t, cmd.Run(ctx))

	out := stdout.String()
	assert.Contains(t, out, "01K2QWERTYASDFGZXCVBNMLKJH")
	assert.Contains(t, out, "running")
	assert.Contains(t, out, "v0.1.0")
}
