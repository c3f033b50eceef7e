// Package slot implements the fixed virtual-device registry:
// eight statically-declared slots — four legacy joystick devices
// (/dev/input/js0..js3) and four evdev devices
// (/dev/input/event1000..event1003) — along with the path and fd lookups
// the rest of the interposer dispatches on.
//
// A Slot's fd transitions unbound -> bound -> unbound over its lifetime and
// is rebindable; Bind is a compare-and-swap against the unbound sentinel so
// that a multi-threaded host opening distinct slots from distinct threads
// cannot double-bind one slot.
package slot
