package clipboard

import (
	"encoding/binary"
	"reflect"
	"testing"
)

func TestHDropRoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		paths []string
	}{
		{"single", []string{`C:\Users\me\notes.md`}},
		{"multiple", []string{`C:\a.md`, `C:\b.md`, `C:\with spaces\c.md`}},
		{"unicode path", []string{`C:\文档\数学.md`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			payload, err := EncodeHDrop(tt.paths)
			if err != nil {
				t.Fatal(err)
			}
			got, err := DecodeHDrop(payload)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.paths) {
				t.Fatalf("round trip = %v, want %v", got, tt.paths)
			}
		})
	}
}

func TestEncodeHDropHeader(t *testing.T) {
	t.Parallel()
	payload, err := EncodeHDrop([]string{`C:\x.md`})
	if err != nil {
		t.Fatal(err)
	}
	if got := binary.LittleEndian.Uint32(payload[0:]); got != dropFilesHeaderSize {
		t.Fatalf("pFiles = %d, want %d", got, dropFilesHeaderSize)
	}
	if got := binary.LittleEndian.Uint32(payload[16:]); got != 1 {
		t.Fatalf("fWide = %d, want 1", got)
	}
	// Double-null terminated.
	n := len(payload)
	if payload[n-1] != 0 || payload[n-2] != 0 || payload[n-3] != 0 || payload[n-4] != 0 {
		t.Fatal("payload not double-null terminated")
	}
}

func TestDecodeHDropTruncated(t *testing.T) {
	t.Parallel()
	if _, err := DecodeHDrop([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for truncated payload")
	}
}

func TestDecodeHDropNarrowPaths(t *testing.T) {
	t.Parallel()
	payload := make([]byte, dropFilesHeaderSize)
	binary.LittleEndian.PutUint32(payload[0:], dropFilesHeaderSize)
	// fWide left zero: ANSI path list.
	payload = append(payload, []byte("C:\\a.md\x00C:\\b.md\x00\x00")...)
	got, err := DecodeHDrop(payload)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{`C:\a.md`, `C:\b.md`}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
