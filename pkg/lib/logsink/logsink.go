// Package logsink is the boundary an embedding application uses to receive
// the host's log lines.
//
// The process holds a single, optionally-absent sink. Before registration
// (and after registering nil) every line the host produces is silently
// dropped at the dispatch point. Registration always succeeds and silently
// replaces any previous sink, last registration wins, also when racing
// in-flight dispatches.
//
// The sink runs synchronously on whatever goroutine produced the line:
// keep it fast, copy the message if it must outlive the call, and keep your
// own failures in check, errors or panics inside the sink are not handled by
// the host.
package logsink

import "github.com/hostkit/hostkit/internal/logsink"

// Sink receives a single log line as a severity level and the raw message
// bytes. The slice carries its own length, may contain zero bytes, and must
// not be retained after the call returns.
type Sink = logsink.Sink

// Severity levels passed to a sink.
const (
	LevelDebug   = logsink.LevelDebug
	LevelVerbose = logsink.LevelVerbose
	LevelInfo    = logsink.LevelInfo
	LevelWarning = logsink.LevelWarning
	LevelError   = logsink.LevelError
)

// Register stores s as the process-wide log sink, silently replacing any
// previous registration. Registering nil unregisters.
func Register(s Sink) {
	logsink.Register(s)
}

// Registered returns whether a sink is currently registered.
func Registered() bool {
	return logsink.Default().Registered()
}
