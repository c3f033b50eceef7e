// Package inputabi mirrors the two kernel character-device ABIs the
// interposer emulates: the legacy joystick ioctl family from [joystick.h]
// (type byte 'j') and the evdev ioctl family from [input.h] and
// [input-event-codes.h] (type byte 'E'). It also carries the wire framing
// constants for [getdents64] and [inotify_event] that the directory and
// inotify illusion need to reproduce byte-for-byte.
//
// [joystick.h]: https://github.com/torvalds/linux/blob/master/include/uapi/linux/joystick.h
// [input.h]: https://github.com/torvalds/linux/blob/master/include/uapi/linux/input.h
// [input-event-codes.h]: https://github.com/torvalds/linux/blob/master/include/uapi/linux/input-event-codes.h
// [getdents64]: https://man7.org/linux/man-pages/man2/getdents64.2.html
package inputabi
