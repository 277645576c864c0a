package logsink

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Hook is a logrus hook that forwards every fired entry to a sink registry as
// a rendered line. It is how the host's internal logging reaches the
// embedding application.
type Hook struct {
	registry *Registry
}

// NewHook returns a hook forwarding to registry, the default registry when nil.
func NewHook(registry *Registry) *Hook {
	if registry == nil {
		registry = Default()
	}
	return &Hook{registry: registry}
}

// Levels implements logrus.Hook.
func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook. Empty messages are skipped.
func (h *Hook) Fire(entry *logrus.Entry) error {
	msg := []byte(strings.TrimRight(entry.Message, "\n"))
	if len(msg) == 0 {
		return nil
	}

	h.registry.Dispatch(levelFromLogrus(entry.Level), msg)
	return nil
}

func levelFromLogrus(l logrus.Level) int32 {
	switch l {
	case logrus.TraceLevel, logrus.DebugLevel:
		return LevelDebug
	case logrus.InfoLevel:
		return LevelInfo
	case logrus.WarnLevel:
		return LevelWarning
	default: // Error, fatal and panic.
		return LevelError
	}
}
