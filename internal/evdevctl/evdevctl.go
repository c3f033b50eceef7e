package evdevctl

import (
	"unsafe"

	"github.com/selkies-project/joystick-interposer/internal/inputabi"
	"github.com/selkies-project/joystick-interposer/internal/ioctlcodec"
	"github.com/selkies-project/joystick-interposer/internal/slot"
)

// Handle answers an 'E'-type ioctl request on s, writing through argp as
// the real kernel driver would, and returns the value ioctl(2) itself
// should return. ok is false for any request number the ABI does not
// define here, in which case the caller should forward the call to the
// real ioctl.
func Handle(s *slot.Slot, request uint, argp unsafe.Pointer) (ret int32, ok bool) {
	var (
		cfg cfgOrZero
		nr  uint
		k   uint
	)

	cfg = loadConfig(s)
	nr = ioctlcodec.Nr(request)

	if k, ok = inputabi.EVIOCGABSAxis(nr); ok {
		return handleAbs(argp, k), true
	}

	switch nr {
	case inputabi.EVIOCGVERSIONNr:
		*(*uint32)(argp) = inputabi.EVIOCGVersion
		return 0, true

	case inputabi.EVIOCGIDNr:
		*(*inputabi.InputID)(argp) = inputabi.InputID{
			Bustype: inputabi.BUS_VIRTUAL,
			Vendor:  cfg.Vendor,
			Product: cfg.Product,
			Version: cfg.Version,
		}
		return 0, true

	case inputabi.EVIOCGNAMENr:
		return writeNameTerminated(argp, cfg.Name, ioctlcodec.Size(request)), true

	case inputabi.EVIOCGPHYSNr:
		zeroFill(argp, ioctlcodec.Size(request))
		return 0, true

	case inputabi.EVIOCGUNIQNr:
		zeroFill(argp, ioctlcodec.Size(request))
		return -1, true

	case inputabi.EVIOCGPROPNr:
		zeroFill(argp, ioctlcodec.Size(request))
		return 0, true

	case inputabi.EVIOCGKEYNr:
		zeroFill(argp, ioctlcodec.Size(request))
		return int32(cfg.NumBtns), true

	case inputabi.EVIOCRMFFNr:
		return 0, true

	case inputabi.EVIOCGRABNr:
		return 0, true

	default:
		return bit(cfg, nr, argp, ioctlcodec.Size(request))
	}
}

// handleAbs implements the EVIOCGABS(k) parametric range law.
func handleAbs(argp unsafe.Pointer, k uint) int32 {
	var (
		minimum, maximum, fuzz, flat int32
		info                         *inputabi.AbsInfo
	)

	minimum, maximum, fuzz, flat = inputabi.AbsRange(k)
	info = (*inputabi.AbsInfo)(argp)
	*info = inputabi.AbsInfo{Minimum: minimum, Maximum: maximum, Fuzz: fuzz, Flat: flat}

	return 1
}

// bit implements EVIOCGBIT(type, len): the command number is
// eviocgbitBase plus the event type, so type is recovered as nr minus
// eviocgbitBase. Handle only calls this fallback for a number that is not
// in its non-parametric command table.
func bit(cfg cfgOrZero, nr uint, argp unsafe.Pointer, length uint) (int32, bool) {
	const eviocgbitBase = 0x20

	var (
		evType uint
		buf    []byte
	)

	if nr < eviocgbitBase {
		return 0, false
	}

	evType = nr - eviocgbitBase
	buf = unsafe.Slice((*byte)(argp), length)

	for i := range buf {
		buf[i] = 0
	}

	switch evType {
	case inputabi.EV_SYN:
		setBit(buf, inputabi.EV_SYN)
		setBit(buf, inputabi.EV_KEY)
		setBit(buf, inputabi.EV_ABS)

		return 0, true

	case inputabi.EV_ABS:
		for i := uint16(0); i < cfg.NumAxes; i++ {
			setBit(buf, uint(cfg.AxesMap[i]))
		}

		return int32(cfg.NumAxes), true

	case inputabi.EV_KEY:
		for i := uint16(0); i < cfg.NumBtns; i++ {
			setBit(buf, uint(cfg.BtnMap[i]))
		}

		return int32(cfg.NumBtns), true

	case inputabi.EV_REL:
		return 0, true

	case inputabi.EV_FF:
		return -1, true

	default:
		return 0, false
	}
}

func setBit(buf []byte, bit uint) {
	if int(bit/8) < len(buf) {
		buf[bit/8] |= 1 << (bit % 8)
	}
}

func zeroFill(argp unsafe.Pointer, length uint) {
	var buf []byte

	buf = unsafe.Slice((*byte)(argp), length)
	for i := range buf {
		buf[i] = 0
	}
}

func writeNameTerminated(argp unsafe.Pointer, name string, length uint) int32 {
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
	if uint(n) < length {
		buf[n] = 0
	}

	return int32(n)
}

// cfgOrZero is the subset of slot.ConfigBlob evdevctl reads, resolved
// once per call whether or not the slot has been configured yet.
type cfgOrZero struct {
	Name    string
	Vendor  uint16
	Product uint16
	Version uint16
	NumBtns uint16
	NumAxes uint16
	BtnMap  [512]uint16
	AxesMap [64]uint8
}

func loadConfig(s *slot.Slot) cfgOrZero {
	var (
		cfg slot.ConfigBlob
		ok  bool
	)

	cfg, ok = s.Config()
	if !ok {
		return cfgOrZero{}
	}

	return cfgOrZero{
		Name:    cfg.NameString(),
		Vendor:  cfg.Vendor,
		Product: cfg.Product,
		Version: cfg.Version,
		NumBtns: cfg.NumBtns,
		NumAxes: cfg.NumAxes,
		BtnMap:  cfg.BtnMap,
		AxesMap: cfg.AxesMap,
	}
}
