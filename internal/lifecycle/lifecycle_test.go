//go:build linux

package lifecycle

import (
	"os"
	"testing"

	"github.com/selkies-project/joystick-interposer/internal/dirillusion"
	"github.com/selkies-project/joystick-interposer/internal/slot"
)

func TestCloseUnbindsSlotAndDropsEngineState(t *testing.T) {
	var engine dirillusion.Engine

	s := slot.Registry[0]
	s.Unbind()
	defer s.Unbind()

	const fd = int32(123456)

	if !s.Bind(fd) {
		t.Fatal("Bind failed")
	}

	engine.RegisterDirFD(fd)
	engine.RegisterWatch(fd, 1)

	Close(&engine, fd)

	if s.FD() != slot.Unbound {
		t.Errorf("slot FD() = %d after Close, want Unbound", s.FD())
	}
	if _, ok := engine.DirFDCursor(fd); ok {
		t.Error("directory fd registration survived Close")
	}
	if _, _, ok := engine.PendingBurst(fd); ok {
		t.Error("inotify watch registration survived Close")
	}
}

func TestCloseOnUntrackedFDIsNoop(t *testing.T) {
	var engine dirillusion.Engine

	Close(&engine, 424242)
}

func TestEpollCtlIgnoresOtherOps(t *testing.T) {
	handled, err := EpollCtl(2, 0)
	if handled || err != nil {
		t.Errorf("EpollCtl(non-ADD) = %v, %v, want false, nil", handled, err)
	}
}

func TestEpollCtlIgnoresUnboundFD(t *testing.T) {
	handled, err := EpollCtl(EPollCtlAdd, 999999)
	if handled || err != nil {
		t.Errorf("EpollCtl(ADD, unbound fd) = %v, %v, want false, nil", handled, err)
	}
}

func TestEpollCtlSetsNonblockForBoundFD(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	s := slot.Registry[1]
	s.Unbind()
	defer s.Unbind()

	fd := int32(r.Fd())
	if !s.Bind(fd) {
		t.Fatal("Bind failed")
	}

	handled, err := EpollCtl(EPollCtlAdd, fd)
	if !handled || err != nil {
		t.Errorf("EpollCtl(ADD, bound fd) = %v, %v, want true, nil", handled, err)
	}
}
