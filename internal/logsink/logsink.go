// Package logsink implements the process-wide log sink used to hand the
// library's log lines over to an embedding application.
//
// A sink is an optional, application-owned callback. The library never
// requires one to be present: dispatching without a registered sink is a
// no-op. The registry holds at most one sink, does no buffering, no level
// filtering and no formatting, and has no visibility into what the sink does
// with a line. Errors or panics raised inside the sink are the embedder's
// responsibility and propagate to the dispatching goroutine untouched; they
// cannot corrupt the registry state.
package logsink

import "sync/atomic"

// Severity levels passed to a sink along with each message.
const (
	LevelDebug int32 = iota
	LevelVerbose
	LevelInfo
	LevelWarning
	LevelError
)

// Sink receives a single log line. The message byte slice carries its own
// explicit length and may contain zero bytes, no terminator is implied. The
// slice must not be retained after the call returns.
type Sink func(level int32, message []byte)

// Registry holds at most one registered sink.
//
// The slot is accessed atomically: Register may be called concurrently with
// Dispatch, an in-flight dispatch completes with whichever sink it observed.
// Last registration wins.
type Registry struct {
	slot atomic.Pointer[Sink]
}

// NewRegistry returns a new empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register stores s as the registry's sink, silently replacing any previous
// registration. Registering nil clears the slot, which is equivalent to never
// having registered at all.
func (r *Registry) Register(s Sink) {
	if s == nil {
		r.slot.Store(nil)
		return
	}
	r.slot.Store(&s)
}

// Dispatch invokes the registered sink synchronously on the calling goroutine
// passing level and message through unchanged. When no sink is registered it
// returns immediately having done nothing observable.
func (r *Registry) Dispatch(level int32, message []byte) {
	s := r.slot.Load()
	if s == nil {
		return
	}
	(*s)(level, message)
}

// Registered returns whether the registry currently has a sink.
func (r *Registry) Registered() bool {
	return r.slot.Load() != nil
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the library internals.
func Default() *Registry {
	return defaultRegistry
}

// Register registers s on the default registry.
func Register(s Sink) {
	defaultRegistry.Register(s)
}

// Dispatch dispatches a log line on the default registry.
func Dispatch(level int32, message []byte) {
	defaultRegistry.Dispatch(level, message)
}
