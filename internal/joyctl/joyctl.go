package joyctl

import (
	"unsafe"

	"github.com/selkies-project/joystick-interposer/internal/inputabi"
	"github.com/selkies-project/joystick-interposer/internal/ioctlcodec"
	"github.com/selkies-project/joystick-interposer/internal/slot"
)

// Handle answers a 'j'-type ioctl request on s, writing through argp as
// the real kernel driver would. ok is false for any request number the
// ABI does not define here, in which case the caller should forward the
// call to the real ioctl.
func Handle(s *slot.Slot, request uint, argp unsafe.Pointer) (ok bool) {
	var cfg slot.ConfigBlob

	cfg, _ = s.Config()

	switch ioctlcodec.Nr(request) {
	case inputabi.JSIOCGVERSIONNr:
		*(*uint32)(argp) = inputabi.JSVersion

	case inputabi.JSIOCGAXESNr:
		*(*uint8)(argp) = uint8(cfg.NumAxes)

	case inputabi.JSIOCGBUTTONSNr:
		*(*uint8)(argp) = uint8(cfg.NumBtns)

	case inputabi.JSIOCGNAMENr:
		writeName(argp, cfg.NameString(), ioctlcodec.Size(request))

	case inputabi.JSIOCSCORRNr:
		// Correction values are accepted and discarded; the shim performs
		// no calibration of its own.

	case inputabi.JSIOCGCORRNr:
		*(*inputabi.JSCorr)(argp) = s.Corr

	case inputabi.JSIOCSAXMAPNr:
		// Axis remapping is accepted and discarded.

	case inputabi.JSIOCGAXMAPNr:
		copy(unsafe.Slice((*uint8)(argp), cfg.NumAxes), cfg.AxesMap[:cfg.NumAxes])

	case inputabi.JSIOCSBTNMAPNr:
		// Button remapping is accepted and discarded.

	case inputabi.JSIOCGBTNMAPNr:
		copy(unsafe.Slice((*uint16)(argp), cfg.NumBtns), cfg.BtnMap[:cfg.NumBtns])

	default:
		return false
	}

	return true
}

// writeName copies name into the caller's buffer of the given capacity,
// NUL-terminated, truncating rather than overflowing if name is longer
// than length allows.
func writeName(argp unsafe.Pointer, name string, length uint) {
	var (
		buf []byte
		n   int
	)

	buf = unsafe.Slice((*byte)(argp), length)
	n = len(name)

	if uint(n) >= length {
		n = int(length) - 1
	}

	copy(buf, name[:n])
	buf[n] = 0
}
