package shutdown

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/logger"
)

func TestShutdownRunsInReverseOrder(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})

	var mu sync.Mutex
	var order []string
	record := func(name string) Func {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}

	m.Register(record("window"))
	m.Register(record("app"))
	m.Register(record("logger"))

	m.Shutdown()

	assert.Equal(t, []string{"logger", "app", "window"}, order)
	assert.ErrorIs(t, m.Context().Err(), context.Canceled)

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownOnlyOnce(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})

	var calls int
	var mu sync.Mutex
	m.Register(Func(func() {
		mu.Lock()
		calls++
		mu.Unlock()
	}))

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Shutdown()
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
}

func TestShutdownStepTimeout(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	m.SetStepTimeout(20 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)

	var ranFirst bool
	m.Register(Func(func() { ranFirst = true }))
	m.Register(Func(func() { <-release }))

	finished := make(chan struct{})
	go func() {
		m.Shutdown()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown blocked on a stuck component")
	}
	require.True(t, ranFirst)
}
