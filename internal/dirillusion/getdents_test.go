package dirillusion

import (
	"testing"

	"github.com/selkies-project/joystick-interposer/internal/inputabi"
	"github.com/selkies-project/joystick-interposer/internal/slot"
)

func TestFillGetdents64UnregisteredFD(t *testing.T) {
	var e Engine

	if _, ok := e.FillGetdents64(3, 4096); ok {
		t.Error("FillGetdents64 on an unregistered fd should not be ok")
	}
}

func TestFillGetdents64EmitsWholeRecordsOnly(t *testing.T) {
	var e Engine

	e.RegisterDirFD(3)

	first := slot.FakeEntries()[0]
	recLen := int(inputabi.Dirent64Len(first))

	// A buffer one byte too small for the first record must yield no
	// data and must not advance the cursor.
	data, ok := e.FillGetdents64(3, recLen-1)
	if !ok {
		t.Fatal("FillGetdents64 should be ok for a registered fd even with a tiny buffer")
	}
	if len(data) != 0 {
		t.Errorf("FillGetdents64 emitted %d bytes into a buffer too small for one record", len(data))
	}

	cursor, _ := e.DirFDCursor(3)
	if cursor != 0 {
		t.Errorf("cursor advanced to %d despite emitting nothing", cursor)
	}

	data, ok = e.FillGetdents64(3, recLen)
	if !ok || len(data) != recLen {
		t.Fatalf("FillGetdents64(exact size) = %d bytes, ok=%v, want %d bytes, true", len(data), ok, recLen)
	}

	cursor, _ = e.DirFDCursor(3)
	if cursor != 1 {
		t.Errorf("cursor = %d after one record, want 1", cursor)
	}
}

func TestFillGetdents64DrainsEntireFakeSet(t *testing.T) {
	var e Engine

	e.RegisterDirFD(3)

	var total int
	for {
		data, ok := e.FillGetdents64(3, 4096)
		if !ok {
			t.Fatal("FillGetdents64 stopped being ok mid-drain")
		}
		if len(data) == 0 {
			break
		}
		total += len(data)
	}

	var want int
	for _, name := range slot.FakeEntries() {
		want += int(inputabi.Dirent64Len(name))
	}

	if total != want {
		t.Errorf("drained %d bytes total, want %d", total, want)
	}
}
