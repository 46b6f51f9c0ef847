//go:build linux && !tinygo

package uiomap

import (
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"stm32pwm/core"
)

func writeAttr(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadMapValue(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name    string
		content string
		want    uint64
		wantErr bool
	}{
		{"hex", "0x40000400\n", 0x40000400, false},
		{"decimal", "4096\n", 4096, false},
		{"no newline", "0x1000", 0x1000, false},
		{"garbage", "not-a-number\n", 0, true},
		{"empty", "", 0, true},
	}
	for _, tc := range testCases {
		path := writeAttr(t, dir, tc.name, tc.content)
		got, err := readMapValue(path)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got %d", tc.name, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %#x, want %#x", tc.name, got, tc.want)
		}
	}
}

func TestReadMapValueMissingFile(t *testing.T) {
	if _, err := readMapValue(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for missing attribute file")
	}
}

func TestMapDeviceTooSmall(t *testing.T) {
	// A region that cannot hold a timer block is rejected before any
	// device access.
	need := uint64(unsafe.Sizeof(core.TimerRegs{}))
	if _, _, err := mapDevice("/dev/null", 0, need-4); err == nil {
		t.Error("expected error for undersized map region")
	}
}

func TestMapDeviceMissing(t *testing.T) {
	dev := filepath.Join(t.TempDir(), "uio9")
	if _, _, err := mapDevice(dev, 0, 0x1000); err == nil {
		t.Error("expected error for missing device node")
	}
}
