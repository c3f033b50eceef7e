package inputabi

import (
	"encoding/binary"
	"testing"

	"golang.org/x/sys/unix"
)

func TestAppendInotifyEventFraming(t *testing.T) {
	var buf []byte

	buf = AppendInotifyEvent(buf, 3, unix.IN_CREATE, "js0")

	if len(buf) != InotifyEventSize("js0") {
		t.Fatalf("AppendInotifyEvent wrote %d bytes, InotifyEventSize reports %d", len(buf), InotifyEventSize("js0"))
	}

	wd := int32(binary.NativeEndian.Uint32(buf[0:4]))
	mask := binary.NativeEndian.Uint32(buf[4:8])
	cookie := binary.NativeEndian.Uint32(buf[8:12])
	nameLen := binary.NativeEndian.Uint32(buf[12:16])

	if wd != 3 {
		t.Errorf("wd = %d, want 3", wd)
	}
	if mask != unix.IN_CREATE {
		t.Errorf("mask = %#x, want IN_CREATE", mask)
	}
	if cookie != 0 {
		t.Errorf("cookie = %d, want 0", cookie)
	}
	if int(nameLen) != len("js0")+1 {
		t.Errorf("len = %d, want %d", nameLen, len("js0")+1)
	}

	name := buf[unix.SizeofInotifyEvent:]
	if string(name[:3]) != "js0" || name[3] != 0 {
		t.Errorf("name field = %q, want NUL-terminated \"js0\"", name)
	}
}

func TestAppendInotifyEventUnpadded(t *testing.T) {
	// The interposer frames a raw name+NUL with no rounding to a word
	// boundary, unlike the kernel's own inotify writer.
	buf := AppendInotifyEvent(nil, 1, unix.IN_CREATE, "ab")

	if len(buf) != unix.SizeofInotifyEvent+3 {
		t.Errorf("len = %d, want %d", len(buf), unix.SizeofInotifyEvent+3)
	}
}
