package main

import (
	"io"
	"log"
	"net"
	"os"

	"github.com/selkies-project/joystick-interposer/internal/slot"
)

// runServe is a minimal reference supervisor: it listens on the given
// slot's socket, performs the configuration handshake exactly once, and
// then discards whatever the interposer writes. It exists to exercise
// the handshake end to end during development; the real supervisor that
// generates live controller events is outside this module's scope.
func runServe() {
	var (
		s        *slot.Slot
		ok       bool
		listener net.Listener
		conn     net.Conn
		cfg      slot.ConfigBlob
		blob     []byte
		err      error
	)

	s, ok = slot.ByPath(CLI.Serve.Device)
	if !ok {
		log.Fatalf("unknown slot device %q", CLI.Serve.Device)
	}

	os.Remove(s.SocketPath)

	listener, err = net.Listen("unix", s.SocketPath)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", s.SocketPath, err)
	}
	defer listener.Close()

	log.Printf("serving %s on %s, waiting for a connection...", CLI.Serve.Device, s.SocketPath)

	conn, err = listener.Accept()
	if err != nil {
		log.Fatalf("accept failed: %v", err)
	}
	defer conn.Close()

	cfg = buildConfig()

	blob, err = slot.EncodeConfigBlob(cfg)
	if err != nil {
		log.Fatalf("failed to encode configuration: %v", err)
	}

	_, err = conn.Write(blob)
	if err != nil {
		log.Fatalf("failed to write configuration: %v", err)
	}

	archHint := make([]byte, 1)

	_, err = io.ReadFull(conn, archHint)
	if err != nil {
		log.Fatalf("failed to read architecture hint: %v", err)
	}

	log.Printf("handshake complete, architecture hint: %d bytes", archHint[0])

	recordServe(CLI.Serve.Device, lastServed{
		Name:    CLI.Serve.Name,
		Vendor:  CLI.Serve.Vendor,
		Product: CLI.Serve.Product,
		Version: CLI.Serve.Version,
		Axes:    CLI.Serve.Axes,
		Buttons: CLI.Serve.Buttons,
	})

	io.Copy(io.Discard, conn)
}

func buildConfig() slot.ConfigBlob {
	var cfg slot.ConfigBlob

	copy(cfg.Name[:], []byte(CLI.Serve.Name))
	cfg.Vendor = CLI.Serve.Vendor
	cfg.Product = CLI.Serve.Product
	cfg.Version = CLI.Serve.Version
	cfg.NumAxes = CLI.Serve.Axes
	cfg.NumBtns = CLI.Serve.Buttons

	for i := range cfg.AxesMap {
		if uint16(i) >= cfg.NumAxes {
			break
		}

		cfg.AxesMap[i] = uint8(i)
	}

	for i := range cfg.BtnMap {
		if uint16(i) >= cfg.NumBtns {
			break
		}

		cfg.BtnMap[i] = 0x130 + uint16(i)
	}

	return cfg
}
