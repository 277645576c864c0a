package io_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostkit/hostkit/internal/model"
	storageio "github.com/hostkit/hostkit/internal/storage/io"
)

func TestGetConfig(t *testing.T) {
	tests := map[string]struct {
		yaml      string
		expConfig model.HostConfig
		expErr    bool
		expErrIs  error
	}{
		"a full config should load all the fields": {
			yaml: `
data_dir: /var/lib/hostkit
db_path: /var/lib/hostkit/hostkit.db
keep_runs: 50
log_level: debug
`,
			expConfig: model.HostConfig{
				DataDir:  "/var/lib/hostkit",
				DBPath:   "/var/lib/hostkit/hostkit.db",
				KeepRuns: 50,
				LogLevel: "debug",
			},
		},

		"an empty config should load zero values": {
			yaml:      `{}`,
			expConfig: model.HostConfig{},
		},

		"a negative keep_runs should fail validation": {
			yaml:     `keep_runs: -1`,
			expErr:   true,
			expErrIs: model.ErrNotValid,
		},

		"an unknown log level should fail validation": {
			yaml:     `log_level: loud`,
			expErr:   true,
			expErrIs: model.ErrNotValid,
		},

		"invalid YAML should fail": {
			yaml:   `data_dir: [`,
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"config.yaml": &fstest.MapFile{Data: []byte(test.yaml)},
			}

			repo := storageio.NewConfigYAMLRepository(fsys)
			cfg, err := repo.GetConfig(context.Background(), "config.yaml")

			if test.expErr {
				require.Error(t, err)
				if test.expErrIs != nil {
					assert.True(t, errors.Is(err, test.expErrIs))
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expConfig, cfg)
		})
	}
}

func TestGetConfigMissingFile(t *testing.T) {
	repo := storageio.NewConfigYAMLRepository(fstest.MapFS{})
	_, err := repo.GetConfig(context.Background(), "config.yaml")
	require.Error(t, err)
}
