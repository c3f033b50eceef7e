package slot

import (
	"fmt"
	"path"
	"sync/atomic"

	"github.com/selkies-project/joystick-interposer/internal/inputabi"
)

// Kind distinguishes the two emulated character-device ABIs a slot can
// speak.
type Kind int

const (
	// JS marks a slot that speaks the legacy joystick ioctl ABI.
	JS Kind = iota

	// EV marks a slot that speaks the evdev ioctl ABI.
	EV
)

// String returns "js" or "ev".
func (k Kind) String() string {
	if k == EV {
		return "ev"
	}

	return "js"
}

// Unbound is the sentinel fd value of a slot with no live descriptor.
const Unbound int32 = -1

// Slot is one of the eight fixed virtual-device entries.
type Slot struct {
	// Kind selects which ioctl ABI this slot answers.
	Kind Kind

	// DevicePath is the fixed path this slot is matched against, e.g.
	// "/dev/input/js0".
	DevicePath string

	// SocketPath is the fixed AF_UNIX socket this slot connects to on
	// bind, e.g. "/tmp/selkies_js0.sock".
	SocketPath string

	// Corr is the joystick correction record returned unmodified by
	// JSIOCGCORR. It is always zero: the interposer performs no
	// calibration of its own.
	Corr inputabi.JSCorr

	fd     atomic.Int32
	config atomic.Pointer[ConfigBlob]
}

// FD returns the slot's current live descriptor, or Unbound.
func (s *Slot) FD() int32 {
	return s.fd.Load()
}

// Bind atomically transitions the slot from unbound to fd. It reports
// false if the slot was already bound, which the caller should treat as a
// programming error: at most one slot may have any given fd.
func (s *Slot) Bind(fd int32) bool {
	return s.fd.CompareAndSwap(Unbound, fd)
}

// Unbind clears the slot's fd and cached configuration, making it
// rebindable. It is always a plain store: close() is never concurrent with
// itself on the same fd.
func (s *Slot) Unbind() {
	s.fd.Store(Unbound)
	s.config.Store(nil)
}

// SetConfig caches the configuration blob a bind received from the
// supervisor.
func (s *Slot) SetConfig(cfg ConfigBlob) {
	s.config.Store(&cfg)
}

// Config returns the slot's cached configuration and whether one has been
// set since the last bind.
func (s *Slot) Config() (ConfigBlob, bool) {
	var p *ConfigBlob

	p = s.config.Load()
	if p == nil {
		return ConfigBlob{}, false
	}

	return *p, true
}

// leafName returns the basename of DevicePath, e.g. "js0" for
// "/dev/input/js0".
func (s *Slot) leafName() string {
	return path.Base(s.DevicePath)
}

// Registry is the fixed, ordered set of virtual device slots. Ordering is
// an externally visible contract: JS0..JS3 precede
// EV0..EV3, and both groups preserve their numeric order.
var Registry = [8]*Slot{
	{Kind: JS, DevicePath: "/dev/input/js0", SocketPath: "/tmp/selkies_js0.sock"},
	{Kind: JS, DevicePath: "/dev/input/js1", SocketPath: "/tmp/selkies_js1.sock"},
	{Kind: JS, DevicePath: "/dev/input/js2", SocketPath: "/tmp/selkies_js2.sock"},
	{Kind: JS, DevicePath: "/dev/input/js3", SocketPath: "/tmp/selkies_js3.sock"},
	{Kind: EV, DevicePath: "/dev/input/event1000", SocketPath: "/tmp/selkies_event1000.sock"},
	{Kind: EV, DevicePath: "/dev/input/event1001", SocketPath: "/tmp/selkies_event1001.sock"},
	{Kind: EV, DevicePath: "/dev/input/event1002", SocketPath: "/tmp/selkies_event1002.sock"},
	{Kind: EV, DevicePath: "/dev/input/event1003", SocketPath: "/tmp/selkies_event1003.sock"},
}

func init() {
	for _, s := range Registry {
		s.fd.Store(Unbound)
	}
}

// InputDir is the one directory path the illusion applies to.
const InputDir = "/dev/input"

// IsInputDir reports whether p is exactly the /dev/input directory path.
func IsInputDir(p string) bool {
	return p == InputDir
}

// ByPath returns the slot whose DevicePath matches p, if any.
func ByPath(p string) (*Slot, bool) {
	for _, s := range Registry {
		if s.DevicePath == p {
			return s, true
		}
	}

	return nil, false
}

// ByFD returns the slot currently bound to fd, if any. Lookup is linear
// over the fixed 8-slot registry; at most one slot can ever hold a given fd.
func ByFD(fd int32) (*Slot, bool) {
	if fd == Unbound {
		return nil, false
	}

	for _, s := range Registry {
		if s.FD() == fd {
			return s, true
		}
	}

	return nil, false
}

// FakeEntries returns the FAKE list: the leaf names of every registry slot,
// in registry order. This is both the set readdir/getdents64 synthesise
// for /dev/input and the set inotify_add_watch's one-shot burst announces.
func FakeEntries() []string {
	var names []string

	names = make([]string, 0, len(Registry))
	for _, s := range Registry {
		names = append(names, s.leafName())
	}

	return names
}

// Describe formats a slot's identity for diagnostics, e.g.
// "js0 (kind=js fd=7 name=\"Pad\" axes=2 btns=1)".
func (s *Slot) Describe() string {
	var (
		cfg   ConfigBlob
		bound bool
	)

	cfg, bound = s.Config()
	if !bound {
		return fmt.Sprintf("%s (kind=%s fd=%d unconfigured)", s.leafName(), s.Kind, s.FD())
	}

	return fmt.Sprintf("%s (kind=%s fd=%d name=%q axes=%d btns=%d)",
		s.leafName(), s.Kind, s.FD(), cfg.NameString(), cfg.NumAxes, cfg.NumBtns)
}
