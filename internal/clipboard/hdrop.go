package clipboard

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
)

// CF_HDROP carries a DROPFILES struct followed by a null-separated
// wide-character path list, double-null terminated. The struct's pFiles
// field is the byte offset of the path list; fWide marks UTF-16 paths.

const dropFilesHeaderSize = 20

// EncodeHDrop builds a CF_HDROP payload from a list of file paths.
func EncodeHDrop(paths []string) ([]byte, error) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()

	var buf bytes.Buffer
	header := make([]byte, dropFilesHeaderSize)
	binary.LittleEndian.PutUint32(header[0:], dropFilesHeaderSize) // pFiles
	binary.LittleEndian.PutUint32(header[16:], 1)                  // fWide
	buf.Write(header)

	for _, p := range paths {
		wide, err := enc.Bytes([]byte(p))
		if err != nil {
			return nil, &Error{Op: "encode paths", Err: err}
		}
		buf.Write(wide)
		buf.Write([]byte{0, 0})
	}
	buf.Write([]byte{0, 0}) // double-null terminator
	return buf.Bytes(), nil
}

// DecodeHDrop extracts the file paths from a CF_HDROP payload, in
// clipboard-provided order.
func DecodeHDrop(payload []byte) ([]string, error) {
	if len(payload) < dropFilesHeaderSize {
		return nil, &Error{Op: "decode hdrop", Err: errTruncated}
	}
	offset := binary.LittleEndian.Uint32(payload[0:])
	wide := binary.LittleEndian.Uint32(payload[16:]) != 0
	if int(offset) > len(payload) {
		return nil, &Error{Op: "decode hdrop", Err: errTruncated}
	}
	body := payload[offset:]

	if !wide {
		var paths []string
		for _, part := range bytes.Split(body, []byte{0}) {
			if len(part) == 0 {
				break
			}
			paths = append(paths, string(part))
		}
		return paths, nil
	}

	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	var paths []string
	for len(body) >= 2 {
		i := wideIndexNull(body)
		if i <= 0 {
			break
		}
		raw, err := dec.Bytes(body[:i])
		if err != nil {
			return nil, &Error{Op: "decode hdrop", Err: err}
		}
		paths = append(paths, string(raw))
		if i+2 > len(body) {
			break
		}
		body = body[i+2:]
	}
	return paths, nil
}

func wideIndexNull(b []byte) int {
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return i
		}
	}
	return len(b) &^ 1
}

var errTruncated = &truncatedError{}

type truncatedError struct{}

func (*truncatedError) Error() string { return "truncated payload" }
