package ioctlcodec

import "unsafe"

const (
	// NRBits is the width of the command-number field.
	NRBits = 8

	// TypeBits is the width of the magic/type field.
	TypeBits = 8

	// SizeBits is the width of the size field.
	SizeBits = 14

	// DirBits is the width of the direction field.
	DirBits = 2

	nrMask   = 1<<NRBits - 1
	typeMask = 1<<TypeBits - 1
	sizeMask = 1<<SizeBits - 1
	dirMask  = 1<<DirBits - 1

	nrShift   = 0
	typeShift = nrShift + NRBits
	sizeShift = typeShift + TypeBits
	dirShift  = sizeShift + SizeBits
)

const (
	// DirNone marks an ioctl that carries no data.
	DirNone = 0

	// DirWrite marks an ioctl that writes data from userspace to the kernel.
	DirWrite = 1

	// DirRead marks an ioctl that reads data from the kernel into userspace.
	DirRead = 2
)

// sizeOf returns the size in bytes of a zero value's type. Pass a zero
// value of the argument type an ioctl transfers (e.g. JSCorr{}) to compute
// the size field for [Encode].
func sizeOf[T any](zero T) uint {
	return uint(unsafe.Sizeof(zero))
}

// Encode packs a direction/type/number/size quadruple into an ioctl
// request word, matching the kernel's _IOC() macro.
func Encode(dir, typ, nr, size uint) uint {
	return dir<<dirShift | typ<<typeShift | nr<<nrShift | size<<sizeShift
}

// IO returns a no-data ioctl request code (the kernel's _IO() macro).
func IO(typ, nr uint) uint {
	return Encode(DirNone, typ, nr, 0)
}

// Read returns a request code for an ioctl that reads argtype-sized data
// from the kernel (the kernel's _IOR() macro). Pass a zero value of the
// transferred type.
func Read[T any](typ, nr uint, argtype T) uint {
	return Encode(DirRead, typ, nr, sizeOf(argtype))
}

// Write returns a request code for an ioctl that writes argtype-sized data
// to the kernel (the kernel's _IOW() macro).
func Write[T any](typ, nr uint, argtype T) uint {
	return Encode(DirWrite, typ, nr, sizeOf(argtype))
}

// ReadWrite returns a request code for a bidirectional ioctl (the kernel's
// _IOWR() macro).
func ReadWrite[T any](typ, nr uint, argtype T) uint {
	return Encode(DirRead|DirWrite, typ, nr, sizeOf(argtype))
}

// Dir extracts the direction field from a request word.
func Dir(req uint) uint {
	return req >> dirShift & dirMask
}

// Type extracts the magic/type field from a request word. For the
// interposed character devices this is 'j' (joystick) or 'E' (evdev).
func Type(req uint) uint {
	return req >> typeShift & typeMask
}

// Nr extracts the command-number field from a request word.
func Nr(req uint) uint {
	return req >> nrShift & nrMask
}

// Size extracts the size field (in bytes) from a request word. Parametric
// ioctls such as JSIOCGNAME(len) and EVIOCGBIT(type, len) encode their
// caller-chosen buffer length here.
func Size(req uint) uint {
	return req >> sizeShift & sizeMask
}
