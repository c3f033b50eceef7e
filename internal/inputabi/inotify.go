package inputabi

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// AppendInotifyEvent appends one struct inotify_event for name to buf:
// the fixed unix.SizeofInotifyEvent header (wd, mask, cookie, len) followed
// by the NUL-terminated name, unpadded beyond the terminator — matching
// the reference interposer's framing exactly (it does not round len up to
// a word boundary the way the kernel's own writer does).
func AppendInotifyEvent(buf []byte, wd int32, mask uint32, name string) []byte {
	var (
		header [unix.SizeofInotifyEvent]byte
		nameSz int
	)

	nameSz = len(name) + 1

	binary.NativeEndian.PutUint32(header[0:4], uint32(wd))
	binary.NativeEndian.PutUint32(header[4:8], mask)
	binary.NativeEndian.PutUint32(header[8:12], 0)
	binary.NativeEndian.PutUint32(header[12:16], uint32(nameSz))

	buf = append(buf, header[:]...)
	buf = append(buf, name...)
	buf = append(buf, 0)

	return buf
}

// InotifyEventSize returns the total byte length of one framed
// inotify_event for name, as produced by AppendInotifyEvent.
func InotifyEventSize(name string) int {
	return unix.SizeofInotifyEvent + len(name) + 1
}
