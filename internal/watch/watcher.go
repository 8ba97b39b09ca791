// Package watch runs the periodic background scan and publishes its
// results as immutable snapshots. Readers take the current snapshot
// and render from it; the lock is never held during a scan or while
// rendering, so a slow scan cannot stall the UI.
package watch

import (
	"context"
	"sync"
	"time"

	"github.com/portslayer/portslayer/pkg/model"
)

// DefaultInterval is how often the background scan runs.
const DefaultInterval = 10 * time.Second

// Snapshot is one published scan result. The port slice is frozen once
// published; an update replaces the whole snapshot.
type Snapshot struct {
	Version uint64
	Taken   time.Time
	Ports   []model.PortRecord
}

// Watcher owns the shared port-list state.
type Watcher struct {
	scan     func() []model.PortRecord
	interval time.Duration

	mu      sync.RWMutex
	current Snapshot
}

func New(interval time.Duration, scan func() []model.PortRecord) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{scan: scan, interval: interval}
}

// Refresh runs a scan immediately and publishes the result. Scanning
// happens outside the lock; only the snapshot swap is guarded.
func (w *Watcher) Refresh() Snapshot {
	ports := w.scan()

	w.mu.Lock()
	defer w.mu.Unlock()
	w.current = Snapshot{
		Version: w.current.Version + 1,
		Taken:   time.Now(),
		Ports:   ports,
	}
	return w.current
}

// Run rescans on the configured interval until ctx is cancelled.
// An in-flight scan is never interrupted; cancellation takes effect at
// the next tick.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Refresh()
		}
	}
}

// Current returns the last published snapshot. A zero-version snapshot
// means no scan has completed yet.
func (w *Watcher) Current() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}
