package dirillusion

import (
	"github.com/selkies-project/joystick-interposer/internal/inputabi"
	"github.com/selkies-project/joystick-interposer/internal/slot"
)

// FillGetdents64 serialises as many linux_dirent64 records as fit in a
// buffer of size count, starting at fd's cursor, and returns the bytes to
// write back plus whether fd is a registered directory fd. A record that
// would not fit whole is deferred to the next call, never split.
func (e *Engine) FillGetdents64(fd int32, count int) (data []byte, ok bool) {
	var (
		cursor int
		fake   []string
		n      int
	)

	cursor, ok = e.DirFDCursor(fd)
	if !ok {
		return nil, false
	}

	fake = slot.FakeEntries()
	data = make([]byte, 0, count)

	for cursor+n < len(fake) {
		var (
			name   string
			reclen int
		)

		name = fake[cursor+n]
		reclen = int(inputabi.Dirent64Len(name))
		if len(data)+reclen > count {
			break
		}

		data = inputabi.AppendDirent64(data, name)
		n++
	}

	e.AdvanceDirFD(fd, n)

	return data, true
}
