package inputabi

import (
	"testing"

	"github.com/selkies-project/joystick-interposer/internal/ioctlcodec"
)

func TestJSIOCGNAMEEncodesRequestedLength(t *testing.T) {
	req := JSIOCGNAME(128)

	if got := ioctlcodec.Type(req); got != JSType {
		t.Errorf("Type() = %c, want %c", got, JSType)
	}
	if got := ioctlcodec.Nr(req); got != JSIOCGNAMENr {
		t.Errorf("Nr() = %#x, want %#x", got, JSIOCGNAMENr)
	}
	if got := ioctlcodec.Size(req); got != 128 {
		t.Errorf("Size() = %d, want 128", got)
	}
	if got := ioctlcodec.Dir(req); got != ioctlcodec.DirRead {
		t.Errorf("Dir() = %d, want DirRead", got)
	}
}

func TestJoystickRequestNumbersAreDistinct(t *testing.T) {
	reqs := map[uint]string{
		JSIOCGVERSION: "JSIOCGVERSION",
		JSIOCGAXES:    "JSIOCGAXES",
		JSIOCGBUTTONS: "JSIOCGBUTTONS",
		JSIOCSCORR:    "JSIOCSCORR",
		JSIOCGCORR:    "JSIOCGCORR",
		JSIOCSAXMAP:   "JSIOCSAXMAP",
		JSIOCGAXMAP:   "JSIOCGAXMAP",
		JSIOCSBTNMAP:  "JSIOCSBTNMAP",
		JSIOCGBTNMAP:  "JSIOCGBTNMAP",
	}

	if len(reqs) != 9 {
		t.Fatalf("expected 9 distinct request codes, got %d", len(reqs))
	}
}

func TestJSIOCGAXMAPSize(t *testing.T) {
	if got := ioctlcodec.Size(JSIOCGAXMAP); got != 64 {
		t.Errorf("JSIOCGAXMAP size = %d, want 64", got)
	}
}

func TestJSIOCGBTNMAPSize(t *testing.T) {
	if got := ioctlcodec.Size(JSIOCGBTNMAP); got != 512*2 {
		t.Errorf("JSIOCGBTNMAP size = %d, want %d", got, 512*2)
	}
}
