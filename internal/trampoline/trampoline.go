//go:build linux

package trampoline

/*
#define _GNU_SOURCE
#include <dlfcn.h>
#include <stdlib.h>

static void *resolve_next(const char *name) {
	return dlsym(RTLD_NEXT, name);
}
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/selkies-project/joystick-interposer/internal/diaglog"
)

// Symbol is a cached, lazily-resolved libc function address.
type Symbol struct {
	name string

	once sync.Once
	addr unsafe.Pointer
}

// New returns a Symbol for the given libc name. Resolution happens on the
// first call to Addr, never here.
func New(name string) *Symbol {
	return &Symbol{name: name}
}

// Addr resolves and caches the symbol's address via RTLD_NEXT. A failed
// resolution is fatal for that call only, never for the process: every
// caller treats a nil return as "use the wrapped symbol's usual error
// convention", and the failure itself is logged once here.
func (s *Symbol) Addr() unsafe.Pointer {
	s.once.Do(func() {
		var cname *C.char

		cname = C.CString(s.name)
		defer C.free(unsafe.Pointer(cname))

		s.addr = C.resolve_next(cname)
		if s.addr == nil {
			diaglog.Error("failed to resolve real %s via RTLD_NEXT", s.name)
		}
	})

	return s.addr
}
