//go:build linux

// Package trampoline resolves the "real", un-intercepted address of
// every libc symbol this library interposes, via the dynamic loader's
// RTLD_NEXT chain. Resolution is lazy and cached per symbol:
// looking a symbol up at library-constructor time can deadlock while the
// loader itself is mid-initialisation, so each caller resolves on first
// use instead.
package trampoline
