package inputabi

import "github.com/selkies-project/joystick-interposer/internal/ioctlcodec"

// JSVersion is the driver version reported by JSIOCGVERSION. It mirrors
// JS_VERSION from joystick.h.
const JSVersion uint32 = 0x020100

// JSCorr mirrors struct js_corr from joystick.h. The interposer never
// calibrates axes itself; JSIOCGCORR returns a zero-initialised JSCorr for
// every slot and JSIOCSCORR is accepted as a no-op (correction is out
// of scope, the kernel's own default is the identity correction).
type JSCorr struct {
	Coef [8]int32
	Prec uint16
	Type uint16
}

// Joystick ioctl numbers (the low byte of a 'j'-type request), named after
// their joystick.h macros.
const (
	JSIOCGVERSIONNr = 0x01
	JSIOCGAXESNr    = 0x11
	JSIOCGBUTTONSNr = 0x12
	JSIOCGNAMENr    = 0x13
	JSIOCSCORRNr    = 0x21
	JSIOCGCORRNr    = 0x22
	JSIOCSAXMAPNr   = 0x31
	JSIOCGAXMAPNr   = 0x32
	JSIOCSBTNMAPNr  = 0x33
	JSIOCGBTNMAPNr  = 0x34
)

// JSType is the magic type byte for the legacy joystick ioctl family.
const JSType = 'j'

var (
	// JSIOCGVERSION is the ioctl request code to read the joystick driver
	// version into a uint32.
	JSIOCGVERSION = ioctlcodec.Read(JSType, JSIOCGVERSIONNr, uint32(0))

	// JSIOCGAXES is the ioctl request code to read the axis count into a
	// uint8.
	JSIOCGAXES = ioctlcodec.Read(JSType, JSIOCGAXESNr, uint8(0))

	// JSIOCGBUTTONS is the ioctl request code to read the button count
	// into a uint8.
	JSIOCGBUTTONS = ioctlcodec.Read(JSType, JSIOCGBUTTONSNr, uint8(0))

	// JSIOCSCORR is the ioctl request code to write axis correction
	// values.
	JSIOCSCORR = ioctlcodec.Write(JSType, JSIOCSCORRNr, JSCorr{})

	// JSIOCGCORR is the ioctl request code to read axis correction
	// values.
	JSIOCGCORR = ioctlcodec.Read(JSType, JSIOCGCORRNr, JSCorr{})

	// JSIOCSAXMAP is the ioctl request code to write the axis map.
	JSIOCSAXMAP = ioctlcodec.Write(JSType, JSIOCSAXMAPNr, [64]uint8{})

	// JSIOCGAXMAP is the ioctl request code to read the axis map.
	JSIOCGAXMAP = ioctlcodec.Read(JSType, JSIOCGAXMAPNr, [64]uint8{})

	// JSIOCSBTNMAP is the ioctl request code to write the button map.
	JSIOCSBTNMAP = ioctlcodec.Write(JSType, JSIOCSBTNMAPNr, [512]uint16{})

	// JSIOCGBTNMAP is the ioctl request code to read the button map.
	JSIOCGBTNMAP = ioctlcodec.Read(JSType, JSIOCGBTNMAPNr, [512]uint16{})
)

// JSIOCGNAME returns the ioctl request code to read up to length bytes of
// the joystick's identifier string.
func JSIOCGNAME(length uint) uint {
	return ioctlcodec.Encode(ioctlcodec.DirRead, JSType, JSIOCGNAMENr, length)
}
