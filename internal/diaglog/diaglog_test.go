package diaglog

import (
	"os"
	"strings"
	"testing"
)

func TestWriteFormatsTaggedLine(t *testing.T) {
	dir := t.TempDir()

	orig := file
	defer func() {
		file = orig
	}()

	f, err := os.CreateTemp(dir, "diaglog")
	if err != nil {
		t.Fatalf("os.CreateTemp: %v", err)
	}
	defer f.Close()

	file = f

	Info("slot %s bound to fd %d", "js0", 7)

	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("os.ReadFile: %v", err)
	}

	line := string(data)
	if !strings.Contains(line, "[INFO]") {
		t.Errorf("line missing level tag: %q", line)
	}
	if !strings.Contains(line, tag) {
		t.Errorf("line missing product tag: %q", line)
	}
	if !strings.Contains(line, "slot js0 bound to fd 7") {
		t.Errorf("line missing formatted message: %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("line not newline-terminated: %q", line)
	}
}

func TestWarnAndErrorUseDistinctTags(t *testing.T) {
	dir := t.TempDir()

	orig := file
	defer func() { file = orig }()

	f, err := os.CreateTemp(dir, "diaglog")
	if err != nil {
		t.Fatalf("os.CreateTemp: %v", err)
	}
	defer f.Close()

	file = f

	Warn("retrying %s", "connect")
	Error("giving up on %s", "connect")

	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("os.ReadFile: %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "[WARN]") {
		t.Errorf("missing WARN tag: %q", out)
	}
	if !strings.Contains(out, "[ERROR]") {
		t.Errorf("missing ERROR tag: %q", out)
	}
}
