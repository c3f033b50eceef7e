//go:build linux

package socketattach

import (
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/selkies-project/joystick-interposer/internal/diaglog"
	"github.com/selkies-project/joystick-interposer/internal/slot"
)

// connectTimeoutAttempts and connectRetryInterval together bound the wait
// for the supervisor's listener to exist: 250 attempts
// one millisecond apart.
const (
	connectTimeoutAttempts = 250
	connectRetryInterval   = time.Millisecond
)

// archHint is the byte the shim reports to let the supervisor choose a
// compatible wire format for the event traffic that follows the config
// blob: sizeof(unsigned long) on the running host.
var archHint = byte(unsafe.Sizeof(uintptr(0)))

// Attach performs the open-path handshake for s: create an AF_UNIX stream
// socket, connect with bounded retry, read the fixed-size configuration
// blob, and write the architecture hint byte back. On any failure the
// partially opened socket is closed and fd is -1.
func Attach(s *slot.Slot) (fd int, err error) {
	var sockfd int

	sockfd, err = unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		return -1, fmt.Errorf("socketattach.Attach: %w", err)
	}

	err = connectRetry(sockfd, s.SocketPath)
	if err != nil {
		unix.Close(sockfd)

		return -1, fmt.Errorf("socketattach.Attach: %w", err)
	}

	err = readAndStoreConfig(sockfd, s)
	if err != nil {
		unix.Close(sockfd)

		return -1, fmt.Errorf("socketattach.Attach: %w", err)
	}

	_, err = unix.Write(sockfd, []byte{archHint})
	if err != nil {
		unix.Close(sockfd)

		return -1, fmt.Errorf("socketattach.Attach: %w", err)
	}

	return sockfd, nil
}

// connectRetry dials path, retrying once a millisecond until
// connectTimeoutAttempts is exhausted.
func connectRetry(sockfd int, path string) error {
	var (
		addr    unix.SockaddrUnix
		attempt int
		err     error
	)

	addr = unix.SockaddrUnix{Name: path}

	for attempt = 0; attempt < connectTimeoutAttempts; attempt++ {
		err = unix.Connect(sockfd, &addr)
		if err == nil {
			return nil
		}

		time.Sleep(connectRetryInterval)
	}

	return fmt.Errorf("connect to %s: %w", path, err)
}

// readAndStoreConfig reads exactly one configuration blob from sockfd,
// caches it on s, and logs its name and button/axis counts at INFO.
func readAndStoreConfig(sockfd int, s *slot.Slot) error {
	var (
		cfg slot.ConfigBlob
		err error
	)

	cfg, err = slot.DecodeConfigBlob(fdReader{sockfd})
	if err != nil {
		return err
	}

	s.SetConfig(cfg)

	diaglog.Info("read config for %s: name=%q buttons=%d axes=%d",
		s.DevicePath, cfg.NameString(), cfg.NumBtns, cfg.NumAxes)

	return nil
}

// SetNonblock transitions fd to non-blocking mode, used by the epoll_ctl
// intercept once a socket fd is registered with EPOLL_CTL_ADD.
func SetNonblock(fd int) error {
	return unix.SetNonblock(fd, true)
}

// fdReader adapts a raw file descriptor to io.Reader for
// slot.DecodeConfigBlob.
type fdReader struct {
	fd int
}

func (r fdReader) Read(p []byte) (int, error) {
	return unix.Read(r.fd, p)
}
