//go:build linux

package lifecycle

import (
	"github.com/selkies-project/joystick-interposer/internal/dirillusion"
	"github.com/selkies-project/joystick-interposer/internal/slot"
	"github.com/selkies-project/joystick-interposer/internal/socketattach"
)

// EPollCtlAdd is the epoll_ctl op value that triggers the non-blocking
// transition (EPOLL_CTL_ADD from sys/epoll.h).
const EPollCtlAdd = 1

// Close releases every piece of tracked state keyed by fd: if fd is bound
// to a slot, the slot is unbound; any directory-fd or inotify
// registration on fd in engine is also dropped. It never fails; the
// caller always forwards close(fd) to the trampoline afterwards.
func Close(engine *dirillusion.Engine, fd int32) {
	var (
		s  *slot.Slot
		ok bool
	)

	s, ok = slot.ByFD(fd)
	if ok {
		s.Unbind()
	}

	engine.UnregisterDirFD(fd)
	engine.UnregisterWatches(fd)
}

// EpollCtl performs the non-blocking transition for a registered
// descriptor on EPOLL_CTL_ADD. It is a no-op, returning false, for any
// other op or an fd not bound to a slot; the transition itself is
// idempotent so a socket already non-blocking is set again harmlessly.
func EpollCtl(op int, fd int32) (handled bool, err error) {
	var ok bool

	if op != EPollCtlAdd {
		return false, nil
	}

	_, ok = slot.ByFD(fd)
	if !ok {
		return false, nil
	}

	err = socketattach.SetNonblock(int(fd))
	if err != nil {
		return true, err
	}

	return true, nil
}
