package model

// HostConfig is the host configuration an embedding application or the CLI
// can load from a config file.
type HostConfig struct {
	// DataDir is the base directory for host data.
	DataDir string
	// DBPath is the run history database path.
	DBPath string
	// KeepRuns is how many finished runs to keep in history, 0 keeps all.
	KeepRuns int
	// LogLevel is the minimum internal log level (debug, info, warning, error).
	LogLevel string
}
