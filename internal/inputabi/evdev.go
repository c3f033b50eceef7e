package inputabi

import "github.com/selkies-project/joystick-interposer/internal/ioctlcodec"

// EVType is the magic type byte for the evdev ioctl family.
const EVType = 'E'

// Event type codes, from input-event-codes.h. The interposer's
// EVIOCGBIT(EV_SYN, ...) reply claims only EV_SYN/EV_KEY/EV_ABS support.
const (
	EV_SYN       = 0x00
	EV_KEY       = 0x01
	EV_REL       = 0x02
	EV_ABS       = 0x03
	EV_MSC       = 0x04
	EV_SW        = 0x05
	EV_LED       = 0x11
	EV_SND       = 0x12
	EV_REP       = 0x14
	EV_FF        = 0x15
	EV_PWR       = 0x16
	EV_FF_STATUS = 0x17
	EV_MAX       = 0x1f
	EV_CNT       = EV_MAX + 1
)

// Absolute axis codes, from input-event-codes.h.
const (
	ABS_X        = 0x00
	ABS_Y        = 0x01
	ABS_Z        = 0x02
	ABS_RX       = 0x03
	ABS_RY       = 0x04
	ABS_RZ       = 0x05
	ABS_THROTTLE = 0x06
	ABS_RUDDER   = 0x07
	ABS_WHEEL    = 0x08
	ABS_GAS      = 0x09
	ABS_BRAKE    = 0x0a
	ABS_HAT0X    = 0x10
	ABS_HAT0Y    = 0x11
	ABS_HAT1X    = 0x12
	ABS_HAT1Y    = 0x13
	ABS_HAT2X    = 0x14
	ABS_HAT2Y    = 0x15
	ABS_HAT3X    = 0x16
	ABS_HAT3Y    = 0x17
	ABS_MAX      = 0x3f
	ABS_CNT      = ABS_MAX + 1
)

// Per-type highest valid code, from input-event-codes.h. The EVIOCGBIT
// handler does not read these; it takes the reply buffer length from the
// request word's size field.
const (
	SYN_MAX       = 0x0f
	KEY_MAX       = 0x2ff
	REL_MAX       = 0x0f
	MSC_MAX       = 0x07
	SW_MAX        = 0x11
	LED_MAX       = 0x0f
	SND_MAX       = 0x07
	REP_MAX       = 0x01
	FF_MAX        = 0x7f
	FF_STATUS_MAX = 0x01
)

// BUS_VIRTUAL marks a device as attached to a software bus, reported in
// InputID.Bustype for every interposed device.
const BUS_VIRTUAL = 0x06

// EVIOCGVersion is the fixed evdev driver version the interposer reports:
// EVIOCGVERSION always returns 0x010100 regardless of host kernel version.
const EVIOCGVersion uint32 = 0x010100

// InputID mirrors struct input_id from input.h.
type InputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// AbsInfo mirrors struct input_absinfo from input.h, the payload of
// EVIOCGABS(k).
type AbsInfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

// Evdev ioctl numbers (the low byte of an 'E'-type request) that are not
// parametric.
const (
	EVIOCGVERSIONNr = 0x01
	EVIOCGIDNr      = 0x02
	EVIOCGNAMENr    = 0x06
	EVIOCGPHYSNr    = 0x07
	EVIOCGUNIQNr    = 0x08
	EVIOCGPROPNr    = 0x09
	EVIOCGKEYNr     = 0x18
	EVIOCRMFFNr     = 0x81
	EVIOCGRABNr     = 0x90

	// eviocgbitBase is added to an event type to form EVIOCGBIT(type,
	// len)'s command number: EVIOCGBIT(0, len) asks which event types the
	// device emits, EVIOCGBIT(EV_ABS, len) asks which axis codes it
	// supports, and so on.
	eviocgbitBase = 0x20

	// eviocgabsLow and eviocgabsHigh bound the parametric EVIOCGABS(k)
	// range: k = nr - eviocgabsLow, for nr in [eviocgabsLow, eviocgabsHigh].
	eviocgabsLow  = 0x40
	eviocgabsHigh = 0x7f
)

// EVIOCGVERSION is the ioctl request code to read the evdev driver version.
var EVIOCGVERSION = ioctlcodec.Read(EVType, EVIOCGVERSIONNr, uint32(0))

// EVIOCGID is the ioctl request code to read the device identifier.
var EVIOCGID = ioctlcodec.Read(EVType, EVIOCGIDNr, InputID{})

// EVIOCGNAME returns the ioctl request code to read up to length bytes of
// the device name.
func EVIOCGNAME(length uint) uint {
	return ioctlcodec.Encode(ioctlcodec.DirRead, EVType, EVIOCGNAMENr, length)
}

// EVIOCGPHYS returns the ioctl request code to read up to length bytes of
// the device's physical location path.
func EVIOCGPHYS(length uint) uint {
	return ioctlcodec.Encode(ioctlcodec.DirRead, EVType, EVIOCGPHYSNr, length)
}

// EVIOCGUNIQ returns the ioctl request code to read up to length bytes of
// the device's unique identifier.
func EVIOCGUNIQ(length uint) uint {
	return ioctlcodec.Encode(ioctlcodec.DirRead, EVType, EVIOCGUNIQNr, length)
}

// EVIOCGPROP returns the ioctl request code to read up to length bytes of
// the device property bitmask.
func EVIOCGPROP(length uint) uint {
	return ioctlcodec.Encode(ioctlcodec.DirRead, EVType, EVIOCGPROPNr, length)
}

// EVIOCGKEY returns the ioctl request code to read up to length bytes of
// the current key/button state bitmap.
func EVIOCGKEY(length uint) uint {
	return ioctlcodec.Encode(ioctlcodec.DirRead, EVType, EVIOCGKEYNr, length)
}

// EVIOCGBIT returns the ioctl request code to read up to length bytes of
// the supported-code bitmap for event type evType. evType == 0 asks which
// event types the device emits.
func EVIOCGBIT(evType uint, length uint) uint {
	return ioctlcodec.Encode(ioctlcodec.DirRead, EVType, eviocgbitBase+evType, length)
}

// EVIOCGABS returns the ioctl request code to read the AbsInfo for axis
// code k.
func EVIOCGABS(k uint) uint {
	return ioctlcodec.Read(EVType, eviocgabsLow+k, AbsInfo{})
}

// EVIOCGABSAxis reports whether nr falls in the parametric EVIOCGABS(k)
// range and, if so, the axis code k it addresses.
func EVIOCGABSAxis(nr uint) (k uint, ok bool) {
	if nr < eviocgabsLow || nr > eviocgabsHigh {
		return 0, false
	}

	return nr - eviocgabsLow, true
}

// AbsRange returns the (minimum, maximum, fuzz, flat) the interposer
// reports for axis code k, per the axis-class table: ABS_Z/ABS_RZ report
// an unsigned trigger range, axes up to and including ABS_BRAKE report the
// kernel's classic signed joystick range with its default fuzz/flat, and
// the four hat axes report a tri-state range.
func AbsRange(k uint) (minimum, maximum, fuzz, flat int32) {
	switch {
	case k == ABS_Z || k == ABS_RZ:
		return 0, 255, 0, 0
	case k <= ABS_BRAKE:
		return -32767, 32767, 16, 128
	case k >= ABS_HAT0X && k <= ABS_HAT3Y:
		return -1, 1, 0, 0
	default:
		return 0, 0, 0, 0
	}
}
