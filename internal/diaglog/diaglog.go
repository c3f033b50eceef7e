package diaglog

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Path is the fixed log destination.
const Path = "/tmp/selkies_js.log"

const tag = "Selkies Joystick Interposer"

var (
	mu   sync.Mutex
	file *os.File
)

// open lazily creates the log file on first use. A failure to open leaves
// file == nil, so that write is silently dropped and the next write tries
// to open the file again; a logging failure never interrupts the syscall
// it accompanies.
func open() *os.File {
	mu.Lock()
	defer mu.Unlock()

	if file == nil {
		file, _ = os.OpenFile(Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	}

	return file
}

func write(level, format string, args ...any) {
	var (
		f   *os.File
		msg string
	)

	f = open()
	if f == nil {
		return
	}

	msg = fmt.Sprintf(format, args...)

	mu.Lock()
	defer mu.Unlock()

	fmt.Fprintf(f, "[%d][%s][%s] %s\n", time.Now().Unix(), tag, level, msg)
}

// Info logs an informational event.
func Info(format string, args ...any) {
	write("INFO", format, args...)
}

// Warn logs a recoverable anomaly.
func Warn(format string, args ...any) {
	write("WARN", format, args...)
}

// Error logs a failed operation.
func Error(format string, args ...any) {
	write("ERROR", format, args...)
}
