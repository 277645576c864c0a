// Package lib provides a Go SDK for embedding a hostkit-managed service
// inside an application.
//
// The host takes care of the lifecycle chores around a long-running service:
// a managed data directory, a SQLite-backed run history, version reporting
// and, centrally, handing every internal log line over to the embedding
// application through a registered log sink.
//
// # Quick Start
//
// Create a host, register a log sink, and run a service:
//
//	host, err := lib.New(ctx, lib.Config{
//	    LogSink: func(level int32, message []byte) {
//	        fmt.Fprintf(os.Stderr, "[%d] %s\n", level, message)
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer host.Close()
//
//	err = host.Run(ctx, lib.ServiceFunc(func(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}))
//
// # Log Sink
//
// The log sink is a process-wide, optionally-absent callback owned by the
// embedding application. When none is registered, the host's log lines are
// silently discarded at the dispatch point: internal code never needs to check
// whether a sink exists. Registering a new sink replaces the previous one;
// registering nil unregisters. The sink is invoked synchronously on whatever
// goroutine produced the line, and must not retain the message slice. Errors
// or panics inside the sink are the application's own responsibility. See the
// logsink sub-package to register a sink without creating a host.
//
// # Lifecycle
//
// [Host.Run] blocks serving the given [Service] until the service returns,
// the context is canceled, or [Host.Stop] is called. Only one run per host
// may be in flight; a second Run returns [ErrAlreadyRunning]. Every run is
// recorded in the run history database, query it with [Host.ListRuns] and
// wipe it with [Host.ResetDatabase].
//
// # Error Handling
//
// All methods return errors that can be inspected with [errors.Is]:
//
//   - [ErrNotFound]: Resource does not exist.
//   - [ErrNotValid]: Invalid input or operation.
//   - [ErrAlreadyRunning]: A run is already in flight.
//
// # Thread Safety
//
// A [Host] is safe for concurrent use from multiple goroutines. Registering a
// sink concurrently with in-flight log dispatches is safe: a dispatch already
// under way completes with whichever sink it observed, later dispatches see
// the last registration.
package lib
