package dirillusion

import (
	"testing"

	"github.com/selkies-project/joystick-interposer/internal/slot"
)

func TestPendingBurstOneShot(t *testing.T) {
	var e Engine

	e.RegisterWatch(10, 7)

	fake, wd, ok := e.PendingBurst(10)
	if !ok {
		t.Fatal("PendingBurst not ok for a freshly registered watch")
	}
	if wd != 7 {
		t.Errorf("watch descriptor = %d, want 7", wd)
	}
	if len(fake) != len(slot.FakeEntries()) {
		t.Errorf("burst has %d entries, want %d", len(fake), len(slot.FakeEntries()))
	}

	if _, _, ok = e.PendingBurst(10); ok {
		t.Error("PendingBurst should not fire a second time for the same watch")
	}
}

func TestPendingBurstUnregisteredFD(t *testing.T) {
	var e Engine

	if _, _, ok := e.PendingBurst(99); ok {
		t.Error("PendingBurst on an unwatched fd should not be ok")
	}
}

func TestRegisterWatchAppendsRatherThanReplaces(t *testing.T) {
	var e Engine

	e.RegisterWatch(10, 1)
	e.RegisterWatch(10, 2)

	_, wd, ok := e.PendingBurst(10)
	if !ok || wd != 1 {
		t.Fatalf("first PendingBurst = %d, %v, want 1, true", wd, ok)
	}

	_, wd, ok = e.PendingBurst(10)
	if !ok || wd != 2 {
		t.Fatalf("second PendingBurst = %d, %v, want 2, true", wd, ok)
	}
}

func TestUnregisterWatchesDropsOnlyMatchingFD(t *testing.T) {
	var e Engine

	e.RegisterWatch(10, 1)
	e.RegisterWatch(20, 2)

	e.UnregisterWatches(10)

	if _, _, ok := e.PendingBurst(10); ok {
		t.Error("PendingBurst should fail for an unregistered inotify fd")
	}

	_, wd, ok := e.PendingBurst(20)
	if !ok || wd != 2 {
		t.Errorf("PendingBurst(20) = %d, %v, want 2, true", wd, ok)
	}
}
