package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted when the underlying slot changes on disk, typically
// because another voiceos process wrote the collection.
type Event struct{}

// Watchable is implemented by slots that live on the filesystem.
type Watchable interface {
	SlotPath() string
}

// Watch streams change events for the slot until ctx is cancelled. Callers
// should drain the returned channel; bursts of writes are coalesced so the
// UI redraws once per burst. Slots without a backing file cannot be watched.
func Watch(ctx context.Context, slot Slot) (<-chan Event, error) {
	w, ok := slot.(Watchable)
	if !ok {
		return nil, errors.New("store: slot is not watchable")
	}
	path := w.SlotPath()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 8)

	go func() {
		defer close(events)
		defer watcher.Close()

		send := func() {
			select {
			case events <- Event{}:
			default:
				// Drop when the consumer is behind; the next refresh reads
				// the whole slot anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != filepath.Clean(path) {
					continue
				}
				throttle.Enqueue(send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so a burst of writes
// produces a single event.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

func (t *eventThrottle) Enqueue(send func()) {
	t.mu.Lock()
	t.pending = true
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func()) {
	t.mu.Lock()
	fire := t.pending
	t.pending = false
	t.timer = nil
	t.mu.Unlock()

	if fire {
		send()
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
