//go:build linux

// Command jsinterposer is the LD_PRELOAD shared object that makes a
// process believe fake joystick and evdev devices exist under
// /dev/input/. It is built with:
//
//	go build -buildmode=c-shared -o libjsinterposer.so ./cmd/jsinterposer
//
// and loaded via LD_PRELOAD=./libjsinterposer.so before launching the
// target process.
package main

/*
#define _GNU_SOURCE
#include <dirent.h>
#include <errno.h>
#include <fcntl.h>
#include <stdarg.h>
#include <stdint.h>
#include <stdlib.h>
#include <string.h>
#include <sys/epoll.h>
#include <sys/inotify.h>
#include <sys/types.h>
#include <unistd.h>

// set_enosys marks the call as unsupported the way the real symbol
// would have on a hard failure: since trampoline resolution happened
// through RTLD_NEXT, there is no real symbol left to set errno for us.
static void set_enosys(void) {
	errno = ENOSYS;
}

// Real-symbol call shims. Each casts the RTLD_NEXT address resolved on
// the Go side into the right C function-pointer type and invokes it;
// this is the only way to call through an address Go itself cannot
// type as a function value.

typedef int (*open_func)(const char *, int, ...);
static int call_real_open(void *fn, const char *path, int flags, mode_t mode) {
	return ((open_func)fn)(path, flags, mode);
}

typedef int (*close_func)(int);
static int call_real_close(void *fn, int fd) {
	return ((close_func)fn)(fd);
}

typedef ssize_t (*read_func)(int, void *, size_t);
static ssize_t call_real_read(void *fn, int fd, void *buf, size_t count) {
	return ((read_func)fn)(fd, buf, count);
}

typedef int (*ioctl_func)(int, unsigned long, ...);
static int call_real_ioctl(void *fn, int fd, unsigned long request, void *arg) {
	return ((ioctl_func)fn)(fd, request, arg);
}

typedef DIR *(*opendir_func)(const char *);
static DIR *call_real_opendir(void *fn, const char *name) {
	return ((opendir_func)fn)(name);
}

typedef struct dirent *(*readdir_func)(DIR *);
static struct dirent *call_real_readdir(void *fn, DIR *dirp) {
	return ((readdir_func)fn)(dirp);
}

typedef int (*closedir_func)(DIR *);
static int call_real_closedir(void *fn, DIR *dirp) {
	return ((closedir_func)fn)(dirp);
}

typedef ssize_t (*getdents64_func)(int, void *, size_t);
static ssize_t call_real_getdents64(void *fn, int fd, void *buf, size_t count) {
	return ((getdents64_func)fn)(fd, buf, count);
}

typedef int (*inotify_add_watch_func)(int, const char *, uint32_t);
static int call_real_inotify_add_watch(void *fn, int fd, const char *path, uint32_t mask) {
	return ((inotify_add_watch_func)fn)(fd, path, mask);
}

typedef int (*epoll_ctl_func)(int, int, int, struct epoll_event *);
static int call_real_epoll_ctl(void *fn, int epfd, int op, int fd, struct epoll_event *ev) {
	return ((epoll_ctl_func)fn)(epfd, op, fd, ev);
}

// fill_fake_dirent renders one synthetic directory entry into a single
// static struct dirent buffer, the way a real readdir() returns a pointer
// into its own internal storage. The buffer is heap-allocated on first
// use, never freed, and overwritten by every later call; readdir()
// callers never free the result themselves, matching libc's own contract.
static struct dirent *fill_fake_dirent(const char *name) {
	static struct dirent *buf = NULL;

	if (buf == NULL) {
		buf = malloc(sizeof(struct dirent));
	}

	memset(buf, 0, sizeof(struct dirent));
	strncpy(buf->d_name, name, sizeof(buf->d_name) - 1);
	buf->d_type = DT_UNKNOWN;

	return buf;
}

// The symbols below are the actual interposed entry points: their names
// shadow libc's, which is the entire point of LD_PRELOAD. Each extracts
// any variadic argument C itself requires, then calls into Go with a
// fixed signature. Forwarding the real mode_t/pointer argument on the
// miss path (rather than truncating it) is what keeps O_CREAT and
// ioctl-with-pointer callers working for paths this library does not
// otherwise care about.

extern int goOpen(char *, int, mode_t);
extern int goOpen64(char *, int, mode_t);
extern int goClose(int);
extern ssize_t goRead(int, void *, size_t);
extern int goIoctl(int, unsigned long, void *);
extern DIR *goOpendir(char *);
extern struct dirent *goReaddir(DIR *);
extern int goClosedir(DIR *);
extern ssize_t goGetdents64(int, void *, size_t);
extern int goInotifyAddWatch(int, char *, uint32_t);
extern int goEpollCtl(int, int, int, struct epoll_event *);

int open(const char *pathname, int flags, ...) {
	mode_t mode = 0;

	if (flags & O_CREAT) {
		va_list args;
		va_start(args, flags);
		mode = (mode_t)va_arg(args, int);
		va_end(args);
	}

	return goOpen((char *)pathname, flags, mode);
}

int open64(const char *pathname, int flags, ...) {
	mode_t mode = 0;

	if (flags & O_CREAT) {
		va_list args;
		va_start(args, flags);
		mode = (mode_t)va_arg(args, int);
		va_end(args);
	}

	return goOpen64((char *)pathname, flags, mode);
}

int close(int fd) {
	return goClose(fd);
}

ssize_t read(int fd, void *buf, size_t count) {
	return goRead(fd, buf, count);
}

int ioctl(int fd, unsigned long request, ...) {
	va_list args;
	void *arg;

	va_start(args, request);
	arg = va_arg(args, void *);
	va_end(args);

	return goIoctl(fd, request, arg);
}

DIR *opendir(const char *name) {
	return goOpendir((char *)name);
}

struct dirent *readdir(DIR *dirp) {
	return goReaddir(dirp);
}

int closedir(DIR *dirp) {
	return goClosedir(dirp);
}

ssize_t getdents64(int fd, void *buf, size_t count) {
	return goGetdents64(fd, buf, count);
}

int inotify_add_watch(int fd, const char *pathname, uint32_t mask) {
	return goInotifyAddWatch(fd, (char *)pathname, mask);
}

int epoll_ctl(int epfd, int op, int fd, struct epoll_event *event) {
	return goEpollCtl(epfd, op, fd, event);
}
*/
import "C"

import (
	"unsafe"

	"github.com/selkies-project/joystick-interposer/internal/diaglog"
	"github.com/selkies-project/joystick-interposer/internal/dirillusion"
	"github.com/selkies-project/joystick-interposer/internal/evdevctl"
	"github.com/selkies-project/joystick-interposer/internal/inputabi"
	"github.com/selkies-project/joystick-interposer/internal/ioctlcodec"
	"github.com/selkies-project/joystick-interposer/internal/joyctl"
	"github.com/selkies-project/joystick-interposer/internal/lifecycle"
	"github.com/selkies-project/joystick-interposer/internal/slot"
	"github.com/selkies-project/joystick-interposer/internal/socketattach"
	"github.com/selkies-project/joystick-interposer/internal/trampoline"
)

// IN_CREATE is the inotify mask value for a newly-created directory
// entry, from sys/inotify.h.
const inCreate = 0x100

var (
	engine dirillusion.Engine

	realOpen            = trampoline.New("open")
	realOpen64          = trampoline.New("open64")
	realClose           = trampoline.New("close")
	realRead            = trampoline.New("read")
	realIoctl           = trampoline.New("ioctl")
	realOpendir         = trampoline.New("opendir")
	realReaddir         = trampoline.New("readdir")
	realClosedir        = trampoline.New("closedir")
	realGetdents64      = trampoline.New("getdents64")
	realInotifyAddWatch = trampoline.New("inotify_add_watch")
	realEpollCtl        = trampoline.New("epoll_ctl")
)

func main() {}

//export goOpen
func goOpen(pathname *C.char, flags C.int, mode C.mode_t) C.int {
	return openCommon(realOpen, pathname, flags, mode, true)
}

//export goOpen64
func goOpen64(pathname *C.char, flags C.int, mode C.mode_t) C.int {
	return openCommon(realOpen64, pathname, flags, mode, false)
}

// openCommon implements both open and open64, forwarding non-slot paths
// to real. setNonblockNow mirrors the historical asymmetry: open sets its
// socket non-blocking immediately, open64 waits for the next epoll_ctl
// registration.
func openCommon(real *trampoline.Symbol, pathname *C.char, flags C.int, mode C.mode_t, setNonblockNow bool) C.int {
	var (
		path string
		fd   C.int
	)

	path = C.GoString(pathname)

	if slot.IsInputDir(path) {
		addr := real.Addr()
		if addr == nil {
			C.set_enosys()

			return -1
		}

		fd = C.call_real_open(addr, pathname, flags, mode)
		if fd >= 0 {
			engine.RegisterDirFD(int32(fd))
		}

		return fd
	}

	s, ok := slot.ByPath(path)
	if !ok {
		addr := real.Addr()
		if addr == nil {
			C.set_enosys()

			return -1
		}

		return C.call_real_open(addr, pathname, flags, mode)
	}

	return C.int(attachSlot(s, setNonblockNow))
}

func attachSlot(s *slot.Slot, setNonblockNow bool) int {
	var (
		fd  int
		err error
	)

	fd, err = socketattach.Attach(s)
	if err != nil {
		diaglog.Error("failed to attach socket for %s: %v", s.DevicePath, err)

		return -1
	}

	if !s.Bind(int32(fd)) {
		diaglog.Error("slot %s already bound, refusing second attach", s.DevicePath)
		unixClose(fd)

		return -1
	}

	if setNonblockNow {
		err = socketattach.SetNonblock(fd)
		if err != nil {
			diaglog.Error("failed to set %s non-blocking: %v", s.DevicePath, err)
		}
	}

	diaglog.Info("started interposer for open call on %s with fd: %d", s.DevicePath, fd)

	return fd
}

// unixClose closes a raw fd via the real close symbol, used on the
// open-failure cleanup path before the fd is ever handed back to the
// caller (so it must not go through goClose/lifecycle.Close, which
// assumes a previously-returned fd).
func unixClose(fd int) {
	addr := realClose.Addr()
	if addr == nil {
		C.set_enosys()

		return
	}

	C.call_real_close(addr, C.int(fd))
}

//export goClose
func goClose(fd C.int) C.int {
	lifecycle.Close(&engine, int32(fd))

	addr := realClose.Addr()
	if addr == nil {
		C.set_enosys()

		return -1
	}

	return C.call_real_close(addr, fd)
}

//export goRead
func goRead(fd C.int, buf unsafe.Pointer, count C.size_t) C.ssize_t {
	var (
		fake            []string
		watchDescriptor int32
		ok              bool
	)

	fake, watchDescriptor, ok = engine.PendingBurst(int32(fd))
	if !ok {
		addr := realRead.Addr()
		if addr == nil {
			C.set_enosys()

			return -1
		}

		return C.call_real_read(addr, fd, buf, count)
	}

	return C.ssize_t(fillInotifyBurst(buf, int(count), watchDescriptor, fake))
}

// fillInotifyBurst packs as many whole inotify_event records as fit in
// capacity bytes and returns the number of bytes written. A record that
// would not fit whole is dropped, not retried later.
func fillInotifyBurst(buf unsafe.Pointer, capacity int, watchDescriptor int32, fake []string) int {
	var data []byte

	for _, name := range fake {
		var next []byte

		next = inputabi.AppendInotifyEvent(data, watchDescriptor, inCreate, name)
		if len(next) > capacity {
			break
		}

		data = next
	}

	if len(data) == 0 {
		return 0
	}

	C.memcpy(buf, unsafe.Pointer(&data[0]), C.size_t(len(data)))

	return len(data)
}

//export goIoctl
func goIoctl(fd C.int, request C.ulong, arg unsafe.Pointer) C.int {
	var (
		s  *slot.Slot
		ok bool
	)

	s, ok = slot.ByFD(int32(fd))
	if !ok {
		addr := realIoctl.Addr()
		if addr == nil {
			C.set_enosys()

			return -1
		}

		return C.call_real_ioctl(addr, fd, C.ulong(request), arg)
	}

	// Dispatch on the request word's own type field: the slot's Kind is
	// advisory bookkeeping only, and a real application may issue either
	// ioctl family against either slot kind.
	switch ioctlcodec.Type(uint(request)) {
	case inputabi.JSType:
		if joyctl.Handle(s, uint(request), arg) {
			return 0
		}

	case inputabi.EVType:
		if ret, handled := evdevctl.Handle(s, uint(request), arg); handled {
			return C.int(ret)
		}
	}

	diaglog.Warn("unhandled ioctl request 0x%x for %s (slot kind %v)", uint(request), s.DevicePath, s.Kind)

	addr := realIoctl.Addr()
	if addr == nil {
		C.set_enosys()

		return -1
	}

	return C.call_real_ioctl(addr, fd, C.ulong(request), arg)
}

//export goOpendir
func goOpendir(name *C.char) *C.DIR {
	var dirp *C.DIR

	addr := realOpendir.Addr()
	if addr == nil {
		C.set_enosys()

		return nil
	}

	dirp = C.call_real_opendir(addr, name)
	if dirp != nil && slot.IsInputDir(C.GoString(name)) {
		engine.RegisterDir(uintptr(unsafe.Pointer(dirp)))
	}

	return dirp
}

//export goReaddir
func goReaddir(dirp *C.DIR) *C.struct_dirent {
	var (
		name  string
		atEnd bool
		ok    bool
		cname *C.char
	)

	name, atEnd, ok = engine.NextDirEntry(uintptr(unsafe.Pointer(dirp)))
	if !ok {
		addr := realReaddir.Addr()
		if addr == nil {
			C.set_enosys()

			return nil
		}

		return C.call_real_readdir(addr, dirp)
	}

	if atEnd {
		return nil
	}

	cname = C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return C.fill_fake_dirent(cname)
}

//export goClosedir
func goClosedir(dirp *C.DIR) C.int {
	engine.UnregisterDir(uintptr(unsafe.Pointer(dirp)))

	addr := realClosedir.Addr()
	if addr == nil {
		C.set_enosys()

		return -1
	}

	return C.call_real_closedir(addr, dirp)
}

//export goGetdents64
func goGetdents64(fd C.int, buf unsafe.Pointer, count C.size_t) C.ssize_t {
	var (
		data []byte
		ok   bool
	)

	data, ok = engine.FillGetdents64(int32(fd), int(count))
	if !ok {
		addr := realGetdents64.Addr()
		if addr == nil {
			C.set_enosys()

			return -1
		}

		return C.call_real_getdents64(addr, fd, buf, count)
	}

	if len(data) > 0 {
		C.memcpy(buf, unsafe.Pointer(&data[0]), C.size_t(len(data)))
	}

	return C.ssize_t(len(data))
}

//export goInotifyAddWatch
func goInotifyAddWatch(fd C.int, pathname *C.char, mask C.uint32_t) C.int {
	var watchDescriptor C.int

	addr := realInotifyAddWatch.Addr()
	if addr == nil {
		C.set_enosys()

		return -1
	}

	watchDescriptor = C.call_real_inotify_add_watch(addr, fd, pathname, mask)
	if watchDescriptor >= 0 && slot.IsInputDir(C.GoString(pathname)) {
		engine.RegisterWatch(int32(fd), int32(watchDescriptor))
	}

	return watchDescriptor
}

//export goEpollCtl
func goEpollCtl(epfd, op, fd C.int, event *C.struct_epoll_event) C.int {
	var err error

	_, err = lifecycle.EpollCtl(int(op), int32(fd))
	if err != nil {
		diaglog.Error("failed to make fd %d non-blocking: %v", fd, err)
	}

	addr := realEpollCtl.Addr()
	if addr == nil {
		C.set_enosys()

		return -1
	}

	return C.call_real_epoll_ctl(addr, epfd, op, fd, event)
}
