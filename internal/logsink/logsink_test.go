package logsink_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostkit/hostkit/internal/logsink"
)

type capture struct {
	mu    sync.Mutex
	calls []capturedCall
}

type capturedCall struct {
	level   int32
	message []byte
}

func (c *capture) sink() logsink.Sink {
	return func(level int32, message []byte) {
		c.mu.Lock()
		defer c.mu.Unlock()
		msg := make([]byte, len(message))
		copy(msg, message)
		c.calls = append(c.calls, capturedCall{level: level, message: msg})
	}
}

func (c *capture) recorded() []capturedCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestRegistryDispatch(t *testing.T) {
	tests := map[string]struct {
		dispatch func(r *logsink.Registry, c1, c2 *capture)
		expC1    []capturedCall
		expC2    []capturedCall
	}{
		"dispatching without a registered sink should be a no-op": {
			dispatch: func(r *logsink.Registry, c1, c2 *capture) {
				r.Dispatch(logsink.LevelWarning, []byte("hello"))
			},
			expC1: nil,
			expC2: nil,
		},

		"dispatching with a registered sink should deliver the record unchanged": {
			dispatch: func(r *logsink.Registry, c1, c2 *capture) {
				r.Register(c1.sink())
				r.Dispatch(logsink.LevelWarning, []byte("hello"))
			},
			expC1: []capturedCall{{level: logsink.LevelWarning, message: []byte("hello")}},
			expC2: nil,
		},

		"re-registering should make dispatch reach the last sink only": {
			dispatch: func(r *logsink.Registry, c1, c2 *capture) {
				r.Register(c1.sink())
				r.Register(c2.sink())
				r.Dispatch(logsink.LevelVerbose, []byte("x"))
			},
			expC1: nil,
			expC2: []capturedCall{{level: logsink.LevelVerbose, message: []byte("x")}},
		},

		"registering nil should clear the slot and make dispatch a no-op": {
			dispatch: func(r *logsink.Registry, c1, c2 *capture) {
				r.Register(c1.sink())
				r.Register(nil)
				r.Dispatch(logsink.LevelInfo, []byte("dropped"))
			},
			expC1: nil,
			expC2: nil,
		},

		"message bytes should pass through byte-for-byte, zero bytes included": {
			dispatch: func(r *logsink.Registry, c1, c2 *capture) {
				r.Register(c1.sink())
				r.Dispatch(logsink.LevelDebug, []byte{'a', 0x00, 'b', 0x00})
			},
			expC1: []capturedCall{{level: logsink.LevelDebug, message: []byte{'a', 0x00, 'b', 0x00}}},
			expC2: nil,
		},

		"every dispatch should result in exactly one sink invocation": {
			dispatch: func(r *logsink.Registry, c1, c2 *capture) {
				r.Register(c1.sink())
				r.Dispatch(logsink.LevelInfo, []byte("one"))
				r.Dispatch(logsink.LevelError, []byte("two"))
			},
			expC1: []capturedCall{
				{level: logsink.LevelInfo, message: []byte("one")},
				{level: logsink.LevelError, message: []byte("two")},
			},
			expC2: nil,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			r := logsink.NewRegistry()
			c1, c2 := &capture{}, &capture{}

			test.dispatch(r, c1, c2)

			assert.Equal(t, test.expC1, c1.recorded())
			assert.Equal(t, test.expC2, c2.recorded())
		})
	}
}

func TestRegistryRegistered(t *testing.T) {
	r := logsink.NewRegistry()
	assert.False(t, r.Registered())

	r.Register(func(int32, []byte) {})
	assert.True(t, r.Registered())

	r.Register(nil)
	assert.False(t, r.Registered())
}

func TestRegistrySinkPanicLeavesSlotUsable(t *testing.T) {
	r := logsink.NewRegistry()
	c := &capture{}

	r.Register(func(int32, []byte) { panic("embedder bug") })
	require.Panics(t, func() { r.Dispatch(logsink.LevelError, []byte("boom")) })

	// The slot must survive the escape: re-registering and dispatching works.
	r.Register(c.sink())
	r.Dispatch(logsink.LevelInfo, []byte("after"))
	require.Len(t, c.recorded(), 1)
	assert.Equal(t, []byte("after"), c.recorded()[0].message)
}

func TestRegistryConcurrentRegisterAndDispatch(t *testing.T) {
	r := logsink.NewRegistry()
	c := &capture{}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Register(c.sink())
		}()
		go func() {
			defer wg.Done()
			r.Dispatch(logsink.LevelInfo, []byte("racing"))
		}()
	}
	wg.Wait()

	// Whatever interleaving happened, every delivered record must be intact.
	for _, call := range c.recorded() {
		assert.Equal(t, logsink.LevelInfo, call.level)
		assert.Equal(t, []byte("racing"), call.message)
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Cleanup(func() { logsink.Register(nil) })

	c := &capture{}
	logsink.Register(c.sink())
	logsink.Dispatch(logsink.LevelInfo, []byte("global"))

	require.Len(t, c.recorded(), 1)
	assert.Equal(t, logsink.LevelInfo, c.recorded()[0].level)
	assert.Equal(t, []byte("global"), c.recorded()[0].message)
	assert.Same(t, logsink.Default(), logsink.Default())
}
