// Package watch reports batches of filesystem changes to asset rebuilders
package watch

import (
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rjeczalik/notify"
)

// Settle is how long a burst of events must be quiet before it's delivered
const Settle = 25 * time.Millisecond

// A Watcher receives notifications of changes
type Watcher interface {
	Changed(evs Events)
}

// Watch wraps a notify watch and delivers settled batches of events
type Watch struct {
	evs      chan notify.EventInfo
	watchers chan Watcher
	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a new Watch that monitors the given paths. A path ending in
// "/..." is watched recursively.
func New(paths ...string) (*Watch, error) {
	w := &Watch{
		evs:      make(chan notify.EventInfo, 64),
		watchers: make(chan Watcher, 1),
		stop:     make(chan struct{}),
	}

	for _, path := range paths {
		err := notify.Watch(path, w.evs, notify.Write|notify.Create|notify.Rename)
		if err != nil {
			notify.Stop(w.evs)
			return nil, errors.Wrapf(err, "failed to watch %q", path)
		}
	}

	go w.run()
	return w, nil
}

// Notify notifies the given Watcher of changes as they happen
func (w *Watch) Notify(wr Watcher) {
	if wr != nil {
		w.watchers <- wr
	}
}

// Stop terminates this instance
func (w *Watch) Stop() {
	w.stopOnce.Do(func() {
		notify.Stop(w.evs)
		close(w.stop)
	})
}

func (w *Watch) run() {
	delay := time.NewTimer(time.Hour)
	delay.Stop()

	var evs Events
	var watchers []Watcher

	for {
		select {
		case <-w.stop:
			delay.Stop()
			return

		case wr := <-w.watchers:
			watchers = append(watchers, wr)

		case ev := <-w.evs:
			evs = append(evs, ev)
			delay.Reset(Settle)

		case <-delay.C:
			for _, wr := range watchers {
				wr.Changed(evs)
			}

			evs = nil
		}
	}
}

// Events is a collection of change events
type Events []notify.EventInfo

// Paths gives the sorted, de-duplicated paths that changed. If keep is
// non-nil, only paths it accepts are returned.
func (evs Events) Paths(keep func(path string) bool) []string {
	seen := make(map[string]struct{}, len(evs))
	var paths []string

	for _, ev := range evs {
		path := filepath.Clean(ev.Path())
		if _, ok := seen[path]; ok {
			continue
		}

		seen[path] = struct{}{}
		if keep == nil || keep(path) {
			paths = append(paths, path)
		}
	}

	sort.Strings(paths)
	return paths
}
