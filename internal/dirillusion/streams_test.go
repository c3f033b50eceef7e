package dirillusion

import (
	"testing"

	"github.com/selkies-project/joystick-interposer/internal/slot"
)

func TestRegisterDirEnumeratesFullFakeSet(t *testing.T) {
	var e Engine

	e.RegisterDir(1)

	want := slot.FakeEntries()
	for i, wantName := range want {
		name, atEnd, ok := e.NextDirEntry(1)
		if !ok {
			t.Fatalf("entry %d: NextDirEntry not ok", i)
		}
		if atEnd {
			t.Fatalf("entry %d: unexpected atEnd before exhausting the fake set", i)
		}
		if name != wantName {
			t.Errorf("entry %d: name = %q, want %q", i, name, wantName)
		}
	}

	_, atEnd, ok := e.NextDirEntry(1)
	if !ok {
		t.Fatal("final NextDirEntry not ok")
	}
	if !atEnd {
		t.Error("expected atEnd once every fake entry has been returned")
	}
}

func TestNextDirEntryUnregisteredHandle(t *testing.T) {
	var e Engine

	if _, _, ok := e.NextDirEntry(99); ok {
		t.Error("NextDirEntry on an unregistered handle should not be ok")
	}
}

func TestUnregisterDirDropsHandle(t *testing.T) {
	var e Engine

	e.RegisterDir(1)
	e.UnregisterDir(1)

	if _, _, ok := e.NextDirEntry(1); ok {
		t.Error("NextDirEntry after UnregisterDir should not be ok")
	}
}

func TestDirFDCursorLifecycle(t *testing.T) {
	var e Engine

	if _, ok := e.DirFDCursor(5); ok {
		t.Fatal("DirFDCursor on an unregistered fd should not be ok")
	}

	e.RegisterDirFD(5)

	cursor, ok := e.DirFDCursor(5)
	if !ok || cursor != 0 {
		t.Fatalf("DirFDCursor after RegisterDirFD = %d, %v, want 0, true", cursor, ok)
	}

	e.AdvanceDirFD(5, 3)

	cursor, ok = e.DirFDCursor(5)
	if !ok || cursor != 3 {
		t.Fatalf("DirFDCursor after AdvanceDirFD(3) = %d, %v, want 3, true", cursor, ok)
	}

	e.UnregisterDirFD(5)

	if _, ok = e.DirFDCursor(5); ok {
		t.Error("DirFDCursor after UnregisterDirFD should not be ok")
	}
}

func TestAdvanceDirFDOnUnregisteredFDIsNoop(t *testing.T) {
	var e Engine

	e.AdvanceDirFD(7, 2)

	if _, ok := e.DirFDCursor(7); ok {
		t.Error("AdvanceDirFD should not implicitly register an fd")
	}
}
