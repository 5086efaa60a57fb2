//go:build windows

package clipboard

import (
	"fmt"
	"log/slog"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/text/encoding/unicode"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procOpenClipboard           = user32.NewProc("OpenClipboard")
	procCloseClipboard          = user32.NewProc("CloseClipboard")
	procEmptyClipboard          = user32.NewProc("EmptyClipboard")
	procEnumClipboardFormats    = user32.NewProc("EnumClipboardFormats")
	procGetClipboardData        = user32.NewProc("GetClipboardData")
	procSetClipboardData        = user32.NewProc("SetClipboardData")
	procRegisterClipboardFormat = user32.NewProc("RegisterClipboardFormatW")
	procGetClipboardFormatName  = user32.NewProc("GetClipboardFormatNameW")
	procIsClipboardFormatAvail  = user32.NewProc("IsClipboardFormatAvailable")
	procKeybdEvent              = user32.NewProc("keybd_event")

	procGlobalAlloc  = kernel32.NewProc("GlobalAlloc")
	procGlobalFree   = kernel32.NewProc("GlobalFree")
	procGlobalLock   = kernel32.NewProc("GlobalLock")
	procGlobalUnlock = kernel32.NewProc("GlobalUnlock")
	procGlobalSize   = kernel32.NewProc("GlobalSize")
)

const (
	cfText        = 1
	cfUnicodeText = 13
	cfHDrop       = 15

	gmemMoveable = 0x0002

	vkControl  = 0x11
	vkV        = 0x56
	keyUpFlag  = 0x0002
	openRetry  = 5
	retrySleep = 50 * time.Millisecond
)

type windowsBackend struct {
	fmtHTML uint32
	fmtRTF  uint32
}

// New returns the Windows clipboard backend. Format ids for "HTML Format"
// and "Rich Text Format" are registered once up front.
func New() Backend {
	return &windowsBackend{
		fmtHTML: registerFormat("HTML Format"),
		fmtRTF:  registerFormat("Rich Text Format"),
	}
}

func (b *windowsBackend) Name() string { return "Windows clipboard" }

func registerFormat(name string) uint32 {
	p, _ := windows.UTF16PtrFromString(name)
	r, _, _ := procRegisterClipboardFormat.Call(uintptr(unsafe.Pointer(p)))
	return uint32(r)
}

// open retries briefly: another process holding the clipboard lock is the
// common transient failure on Windows.
func open() error {
	for i := 0; i < openRetry; i++ {
		r, _, _ := procOpenClipboard.Call(0)
		if r != 0 {
			return nil
		}
		time.Sleep(retrySleep)
	}
	return fmt.Errorf("OpenClipboard: clipboard locked")
}

func closeClipboard() { procCloseClipboard.Call() }

func getData(format uint32) ([]byte, bool) {
	h, _, _ := procGetClipboardData.Call(uintptr(format))
	if h == 0 {
		return nil, false
	}
	size, _, _ := procGlobalSize.Call(h)
	if size == 0 {
		return nil, false
	}
	ptr, _, _ := procGlobalLock.Call(h)
	if ptr == 0 {
		return nil, false
	}
	defer procGlobalUnlock.Call(h)
	return append([]byte(nil), unsafe.Slice((*byte)(unsafe.Pointer(ptr)), size)...), true
}

func setData(format uint32, data []byte) error {
	h, _, _ := procGlobalAlloc.Call(gmemMoveable, uintptr(len(data)+2))
	if h == 0 {
		return fmt.Errorf("GlobalAlloc failed for %d bytes", len(data))
	}
	ptr, _, _ := procGlobalLock.Call(h)
	if ptr == 0 {
		procGlobalFree.Call(h)
		return fmt.Errorf("GlobalLock failed")
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), len(data)+2)
	copy(dst, data)
	dst[len(data)] = 0
	dst[len(data)+1] = 0
	procGlobalUnlock.Call(h)

	if r, _, _ := procSetClipboardData.Call(uintptr(format), h); r == 0 {
		procGlobalFree.Call(h)
		return fmt.Errorf("SetClipboardData(%d) failed", format)
	}
	return nil
}

func (b *windowsBackend) ReadText() (string, bool) {
	if err := open(); err != nil {
		return "", false
	}
	defer closeClipboard()
	data, ok := getData(cfUnicodeText)
	if !ok {
		return "", false
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	raw, err := dec.Bytes(trimWideNull(data))
	if err != nil {
		return "", false
	}
	return string(raw), true
}

func (b *windowsBackend) ReadHTML() (string, bool) {
	if err := open(); err != nil {
		return "", false
	}
	defer closeClipboard()
	data, ok := getData(b.fmtHTML)
	if !ok {
		return "", false
	}
	frag, err := DecodeCFHTML(data)
	if err != nil {
		slog.Debug("cfhtml decode failed", "err", err)
		return "", false
	}
	return frag, true
}

func (b *windowsBackend) ReadFiles() ([]string, bool) {
	if err := open(); err != nil {
		return nil, false
	}
	defer closeClipboard()
	data, ok := getData(cfHDrop)
	if !ok {
		return nil, false
	}
	paths, err := DecodeHDrop(data)
	if err != nil || len(paths) == 0 {
		return nil, false
	}
	return paths, true
}

func (b *windowsBackend) WriteText(text string) error {
	return b.write(func() error {
		return setData(cfUnicodeText, encodeWide(text))
	})
}

func (b *windowsBackend) WriteRich(r Rich) error {
	return b.write(func() error {
		if r.HTML != "" {
			if err := setData(b.fmtHTML, EncodeCFHTML(r.HTML)); err != nil {
				return err
			}
		}
		if len(r.RTF) > 0 {
			if err := setData(b.fmtRTF, r.RTF); err != nil {
				return err
			}
		}
		return setData(cfUnicodeText, encodeWide(r.Text))
	})
}

func (b *windowsBackend) WriteFiles(paths []string) error {
	payload, err := EncodeHDrop(paths)
	if err != nil {
		return err
	}
	return b.write(func() error {
		return setData(cfHDrop, payload)
	})
}

func (b *windowsBackend) write(fn func() error) error {
	if err := open(); err != nil {
		return &Error{Op: "open", Err: err}
	}
	defer closeClipboard()
	procEmptyClipboard.Call()
	if err := fn(); err != nil {
		return &Error{Op: "write", Err: err}
	}
	return nil
}

func (b *windowsBackend) Snapshot() (*Snapshot, error) {
	if err := open(); err != nil {
		return nil, err
	}
	defer closeClipboard()

	var s Snapshot
	var format uintptr
	for {
		format, _, _ = procEnumClipboardFormats.Call(format)
		if format == 0 {
			break
		}
		data, ok := getData(uint32(format))
		if !ok {
			continue
		}
		s.entries = append(s.entries, snapEntry{format: uint32(format), data: data})
	}
	return &s, nil
}

func (b *windowsBackend) Restore(s *Snapshot) {
	if s == nil {
		return
	}
	if err := open(); err != nil {
		slog.Warn("clipboard restore skipped", "err", err)
		return
	}
	defer closeClipboard()
	procEmptyClipboard.Call()
	for _, e := range s.entries {
		if err := setData(e.format, e.data); err != nil {
			slog.Debug("clipboard format restore failed", "format", e.format, "err", err)
		}
	}
}

// Paste synthesizes a single Ctrl+V chord.
func (b *windowsBackend) Paste() error {
	procKeybdEvent.Call(vkControl, 0, 0, 0)
	procKeybdEvent.Call(vkV, 0, 0, 0)
	procKeybdEvent.Call(vkV, 0, keyUpFlag, 0)
	procKeybdEvent.Call(vkControl, 0, keyUpFlag, 0)
	return nil
}

func (b *windowsBackend) Close() {}

func encodeWide(s string) []byte {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil
	}
	return append(out, 0, 0)
}

func trimWideNull(b []byte) []byte {
	for len(b) >= 2 && b[len(b)-1] == 0 && b[len(b)-2] == 0 {
		b = b[:len(b)-2]
	}
	return b
}
