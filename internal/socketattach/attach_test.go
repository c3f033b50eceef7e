//go:build linux

package socketattach

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/selkies-project/joystick-interposer/internal/slot"
)

func TestAttachHandshake(t *testing.T) {
	sockPath := filepath.Join(t.TempDir(), "test.sock")

	listener, err := net.Listen("unix", sockPath)
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	defer listener.Close()

	s := &slot.Slot{Kind: slot.JS, DevicePath: "/dev/input/js0", SocketPath: sockPath}

	done := make(chan error, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			done <- err
			return
		}
		defer conn.Close()

		var cfg slot.ConfigBlob
		copy(cfg.Name[:], "Pad")
		cfg.NumAxes = 2
		cfg.NumBtns = 1

		blob, err := slot.EncodeConfigBlob(cfg)
		if err != nil {
			done <- err
			return
		}

		if _, err = conn.Write(blob); err != nil {
			done <- err
			return
		}

		archHint := make([]byte, 1)
		if _, err = conn.Read(archHint); err != nil {
			done <- err
			return
		}

		done <- nil
	}()

	fd, err := Attach(s)
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	defer unix.Close(fd)

	if err = <-done; err != nil {
		t.Fatalf("listener goroutine: %v", err)
	}

	cfg, ok := s.Config()
	if !ok {
		t.Fatal("Attach did not populate the slot's configuration")
	}
	if cfg.NameString() != "Pad" || cfg.NumAxes != 2 || cfg.NumBtns != 1 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestAttachFailsWhenNothingListens(t *testing.T) {
	sockPath := filepath.Join(t.TempDir(), "nothing.sock")

	s := &slot.Slot{Kind: slot.JS, DevicePath: "/dev/input/js0", SocketPath: sockPath}

	if _, err := Attach(s); err == nil {
		t.Error("Attach succeeded against a socket path nothing is listening on")
	}
}

func TestSetNonblock(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	if err = SetNonblock(int(r.Fd())); err != nil {
		t.Errorf("SetNonblock: %v", err)
	}
}
