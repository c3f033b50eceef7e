//go:build linux

// Package socketattach implements the handshake a slot performs against
// its supervisor socket on open: connect with bounded retry, read the
// fixed-size configuration blob, and report the host's pointer width
// back as an architecture hint.
package socketattach
