// Package joyctl answers the legacy joystick ioctl ABI ('j' type) for a
// bound slot: version, axis/button counts and the device name, the
// slot's zero calibration record, and the mapping tables served verbatim
// from the slot's cached configuration.
package joyctl
