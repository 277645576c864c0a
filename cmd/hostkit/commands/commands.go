package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"k8s.io/client-go/util/homedir"

	"github.com/hostkit/hostkit/internal/log"
	storageio "github.com/hostkit/hostkit/internal/storage/io"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	DataDir    string
	DBPath     string
	ConfigFile string

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)

	defaultDataDir := filepath.Join(homedir.HomeDir(), ".hostkit")
	app.Flag("data-dir", "Base directory for hostkit data.").Envar("HOSTKIT_DATA_DIR").Default(defaultDataDir).StringVar(&c.DataDir)
	app.Flag("db-path", "Path to the run history SQLite database file.").Envar("HOSTKIT_DB_PATH").Default(filepath.Join(defaultDataDir, "hostkit.db")).StringVar(&c.DBPath)
	app.Flag("config", "Path to a YAML host configuration file.").Envar("HOSTKIT_CONFIG").StringVar(&c.ConfigFile)

	return c
}

// LoadConfigFile loads the YAML configuration file (if one was given) and
// applies its values over the root command flags.
func (c *RootCommand) LoadConfigFile(ctx context.Context) error {
	if c.ConfigFile == "" {
		return nil
	}

	configPath := c.ConfigFile
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return fmt.Errorf("could not resolve config path: %w", err)
		}
		configPath = absPath
	}

	configRepo := storageio.NewConfigYAMLRepository(os.DirFS("/"))
	cfg, err := configRepo.GetConfig(ctx, configPath[1:])
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}

	if cfg.DataDir != "" {
		c.DataDir = cfg.DataDir
	}
	if cfg.DBPath != "" {
		c.DBPath = cfg.DBPath
	} else if cfg.DataDir != "" {
		c.DBPath = filepath.Join(cfg.DataDir, "hostkit.db")
	}
	if cfg.LogLevel == "debug" {
		c.Debug = true
	}

	return nil
}
