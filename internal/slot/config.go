package slot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Fixed field widths of the configuration blob.
const (
	nameSize = 255
	maxBtns  = 512
	maxAxes  = 64
	BlobSize = nameSize + 2 + 2 + 2 + 2 + 2 + maxBtns*2 + maxAxes
)

// ConfigBlob is the fixed-layout configuration the supervisor sends once
// per bind, immediately after the socket connects. Byte order is the
// host's native order (binary.NativeEndian): the architecture hint the
// interposer writes back after the read lets the supervisor pick a
// compatible wire format for the event traffic that follows.
type ConfigBlob struct {
	Name    [nameSize]byte
	Vendor  uint16
	Product uint16
	Version uint16
	NumBtns uint16
	NumAxes uint16
	BtnMap  [maxBtns]uint16
	AxesMap [maxAxes]uint8
}

// NameString returns Name as a Go string, trimmed at the first NUL.
func (c *ConfigBlob) NameString() string {
	if i := bytes.IndexByte(c.Name[:], 0); i >= 0 {
		return string(c.Name[:i])
	}

	return string(c.Name[:])
}

// DecodeConfigBlob reads exactly one fixed-size configuration blob from r.
// A short read (including a clean EOF before any bytes arrive) is an
// error: the caller must close the socket and fail the open.
func DecodeConfigBlob(r io.Reader) (ConfigBlob, error) {
	var (
		buf [BlobSize]byte
		cfg ConfigBlob
		err error
	)

	_, err = io.ReadFull(r, buf[:])
	if err != nil {
		return ConfigBlob{}, fmt.Errorf("slot.DecodeConfigBlob: %w", err)
	}

	err = binary.Read(bytes.NewReader(buf[:]), binary.NativeEndian, &cfg)
	if err != nil {
		return ConfigBlob{}, fmt.Errorf("slot.DecodeConfigBlob: %w", err)
	}

	return cfg, nil
}

// EncodeConfigBlob serialises cfg into the fixed wire layout, for use by a
// reference supervisor implementation (see cmd/jsictl).
func EncodeConfigBlob(cfg ConfigBlob) ([]byte, error) {
	var (
		buf bytes.Buffer
		err error
	)

	err = binary.Write(&buf, binary.NativeEndian, cfg)
	if err != nil {
		return nil, fmt.Errorf("slot.EncodeConfigBlob: %w", err)
	}

	return buf.Bytes(), nil
}
