package logsink

import (
	"context"
	"fmt"

	"github.com/hostkit/hostkit/internal/log"
)

// WrapLogger decorates a log.Logger so every logged line is also dispatched
// to the registry. Internal code keeps logging through the regular logger
// without ever checking whether a sink is registered, dispatch takes care of
// the absent case.
func WrapLogger(next log.Logger, registry *Registry) log.Logger {
	if next == nil {
		next = log.Noop
	}
	if registry == nil {
		registry = Default()
	}
	return forwardingLogger{next: next, registry: registry}
}

type forwardingLogger struct {
	next     log.Logger
	registry *Registry
}

func (l forwardingLogger) Infof(format string, args ...any) {
	l.registry.Dispatch(LevelInfo, []byte(fmt.Sprintf(format, args...)))
	l.next.Infof(format, args...)
}

func (l forwardingLogger) Warningf(format string, args ...any) {
	l.registry.Dispatch(LevelWarning, []byte(fmt.Sprintf(format, args...)))
	l.next.Warningf(format, args...)
}

func (l forwardingLogger) Errorf(format string, args ...any) {
	l.registry.Dispatch(LevelError, []byte(fmt.Sprintf(format, args...)))
	l.next.Errorf(format, args...)
}

func (l forwardingLogger) Debugf(format string, args ...any) {
	l.registry.Dispatch(LevelDebug, []byte(fmt.Sprintf(format, args...)))
	l.next.Debugf(format, args...)
}

// WithValues forwards the structured values to the wrapped logger only, the
// sink receives plain rendered lines.
func (l forwardingLogger) WithValues(values map[string]any) log.Logger {
	return forwardingLogger{next: l.next.WithValues(values), registry: l.registry}
}

func (l forwardingLogger) WithCtxValues(ctx context.Context) log.Logger {
	return forwardingLogger{next: l.next.WithCtxValues(ctx), registry: l.registry}
}

func (l forwardingLogger) SetValuesOnCtx(parent context.Context, values map[string]any) context.Context {
	return l.next.SetValuesOnCtx(parent, values)
}
