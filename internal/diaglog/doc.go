// Package diaglog is the append-only diagnostic logger: one fixed-format
// line per event, written to a fixed path, opened lazily and never
// closed. A log failure is never surfaced to the caller — the
// intercepted libc call it accompanies must still return.
package diaglog
