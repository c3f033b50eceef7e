package dirillusion

import "github.com/selkies-project/joystick-interposer/internal/slot"

// RegisterWatch records a successful inotify_add_watch("/dev/input", ...)
// result. A second watch added on the same inotify fd is appended as a
// second entry rather than replacing the first, rather than re-arming the
// existing watch.
func (e *Engine) RegisterWatch(inotifyFD, watchDescriptor int32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.watches = append(e.watches, &inotifyWatch{
		inotifyFD:       inotifyFD,
		watchDescriptor: watchDescriptor,
	})
}

// UnregisterWatches drops every watch registered on inotifyFD, called when
// that descriptor is closed.
func (e *Engine) UnregisterWatches(inotifyFD int32) {
	var kept []*inotifyWatch

	e.mu.Lock()
	defer e.mu.Unlock()

	kept = e.watches[:0]
	for _, w := range e.watches {
		if w.inotifyFD != inotifyFD {
			kept = append(kept, w)
		}
	}

	e.watches = kept
}

// PendingBurst finds the first not-yet-delivered watch on inotifyFD,
// matching the original's array-scan-and-stop-on-first-match behaviour,
// marks it delivered, and returns the FAKE-list burst the caller should
// frame as inotify_event records. ok is false if inotifyFD has no
// undelivered watch, in which case the caller forwards read() to the
// trampoline.
func (e *Engine) PendingBurst(inotifyFD int32) (fake []string, watchDescriptor int32, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, w := range e.watches {
		if w.inotifyFD == inotifyFD && !w.eventsDelivered {
			w.eventsDelivered = true

			return slot.FakeEntries(), w.watchDescriptor, true
		}
	}

	return nil, 0, false
}
