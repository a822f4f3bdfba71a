package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stanza/internal/adapters/watcher"
)

func TestDebouncer_CoalescesWithinWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var calls [][]string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			mu.Lock()
			calls = append(calls, paths)
			mu.Unlock()
		})

		d.Add("/p/stanza.yaml")
		d.Add("/p/stanza.lock.json")
		d.Add("/p/stanza.yaml")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, calls, 1)
		assert.ElementsMatch(t, []string{"/p/stanza.yaml", "/p/stanza.lock.json"}, calls[0])
	})
}

func TestDebouncer_AddResetsWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			mu.Lock()
			callCount++
			mu.Unlock()
		})

		d.Add("/p/stanza.yaml")
		time.Sleep(60 * time.Millisecond)
		d.Add("/p/stanza.yaml")
		time.Sleep(60 * time.Millisecond)

		mu.Lock()
		assert.Zero(t, callCount)
		mu.Unlock()

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		assert.Equal(t, 1, callCount)
		mu.Unlock()
	})
}

func TestDebouncer_FlushIsSynchronous(t *testing.T) {
	var received []string
	d := watcher.NewDebouncer(time.Hour, func(paths []string) {
		received = paths
	})

	d.Add("/p/stanza.yaml")
	d.Flush()

	require.Len(t, received, 1)
	assert.Equal(t, "/p/stanza.yaml", received[0])
}

func TestDebouncer_FlushWithNothingPending(t *testing.T) {
	called := false
	d := watcher.NewDebouncer(time.Hour, func([]string) {
		called = true
	})

	d.Flush()
	assert.False(t, called)
}
