package dirillusion

import (
	"sync"

	"github.com/selkies-project/joystick-interposer/internal/slot"
)

// Engine tracks every open directory-enumeration and inotify-watch session
// touching /dev/input. The zero value is ready to use.
type Engine struct {
	mu      sync.Mutex
	dirs    map[uintptr]int // opendir() handle -> next FAKE index
	dirFDs  map[int32]int   // open(O_DIRECTORY) fd -> next FAKE index
	watches []*inotifyWatch // inotify_add_watch() registrations on /dev/input
}

type inotifyWatch struct {
	inotifyFD       int32
	watchDescriptor int32
	eventsDelivered bool
}

func (e *Engine) init() {
	if e.dirs == nil {
		e.dirs = make(map[uintptr]int)
	}

	if e.dirFDs == nil {
		e.dirFDs = make(map[int32]int)
	}
}

// RegisterDir records a successful opendir("/dev/input") result so the
// next readdir on handle returns synthetic entries instead of whatever the
// trampoline's own stream would have produced.
func (e *Engine) RegisterDir(handle uintptr) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.init()
	e.dirs[handle] = 0
}

// UnregisterDir drops a closedir()'d handle.
func (e *Engine) UnregisterDir(handle uintptr) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.dirs, handle)
}

// NextDirEntry returns the next synthetic leaf name for a registered
// opendir handle, and whether handle is registered at all. ok is false for
// an unregistered handle (caller should forward to the trampoline); when
// handle is registered but exhausted, name is "" and atEnd is true.
func (e *Engine) NextDirEntry(handle uintptr) (name string, atEnd bool, ok bool) {
	var (
		cursor int
		fake   []string
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	cursor, ok = e.dirs[handle]
	if !ok {
		return "", false, false
	}

	fake = slot.FakeEntries()
	if cursor >= len(fake) {
		return "", true, true
	}

	e.dirs[handle] = cursor + 1

	return fake[cursor], false, true
}

// RegisterDirFD records a successful open("/dev/input", O_DIRECTORY) fd so
// getdents64 on it serves synthetic records.
func (e *Engine) RegisterDirFD(fd int32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.init()
	e.dirFDs[fd] = 0
}

// UnregisterDirFD drops a close()'d directory fd.
func (e *Engine) UnregisterDirFD(fd int32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.dirFDs, fd)
}

// DirFDCursor returns the registered directory fd's current FAKE-list
// cursor and whether it is registered.
func (e *Engine) DirFDCursor(fd int32) (cursor int, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cursor, ok = e.dirFDs[fd]

	return cursor, ok
}

// AdvanceDirFD moves a registered directory fd's cursor forward by n
// records.
func (e *Engine) AdvanceDirFD(fd int32, n int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if cursor, ok := e.dirFDs[fd]; ok {
		e.dirFDs[fd] = cursor + n
	}
}
