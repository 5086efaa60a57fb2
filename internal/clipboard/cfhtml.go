package clipboard

import (
	"fmt"
	"strconv"
	"strings"
)

// CF_HTML is the documented clipboard HTML interchange format: an ASCII
// header carrying byte offsets, followed by UTF-8 HTML with the copied
// content delimited by <!--StartFragment--> / <!--EndFragment--> markers.
// Offsets count bytes from the start of the payload.

const (
	startMarker = "<!--StartFragment-->"
	endMarker   = "<!--EndFragment-->"

	cfHTMLHeader = "Version:1.0\r\n" +
		"StartHTML:%010d\r\n" +
		"EndHTML:%010d\r\n" +
		"StartFragment:%010d\r\n" +
		"EndFragment:%010d\r\n"
)

// EncodeCFHTML wraps an HTML fragment into a CF_HTML payload. Fragments
// already carrying the markers are used as the document verbatim.
func EncodeCFHTML(fragment string) []byte {
	var doc string
	if strings.Contains(fragment, startMarker) && strings.Contains(fragment, endMarker) {
		doc = fragment
	} else {
		doc = `<html><head><meta charset="utf-8"></head><body>` +
			startMarker + fragment + endMarker +
			"</body></html>"
	}
	htmlBytes := []byte(doc)

	// Offsets are stable because they are always formatted to 10 digits.
	headerLen := len(fmt.Sprintf(cfHTMLHeader, 0, 0, 0, 0))
	startHTML := headerLen
	endHTML := startHTML + len(htmlBytes)

	startFrag := startHTML
	endFrag := endHTML
	if i := strings.Index(doc, startMarker); i >= 0 {
		if j := strings.Index(doc, endMarker); j > i {
			startFrag = startHTML + i + len(startMarker)
			endFrag = startHTML + j
		}
	}

	header := fmt.Sprintf(cfHTMLHeader, startHTML, endHTML, startFrag, endFrag)
	return append([]byte(header), htmlBytes...)
}

// DecodeCFHTML extracts the fragment from a CF_HTML payload. It prefers the
// StartFragment/EndFragment header offsets and falls back to marker search
// for producers that emit malformed offsets.
func DecodeCFHTML(payload []byte) (string, error) {
	s := string(payload)

	start, startOK := cfHTMLOffset(s, "StartFragment:")
	end, endOK := cfHTMLOffset(s, "EndFragment:")
	if startOK && endOK && start >= 0 && end <= len(payload) && start < end {
		return string(payload[start:end]), nil
	}

	if i := strings.Index(s, startMarker); i >= 0 {
		if j := strings.Index(s[i:], endMarker); j >= 0 {
			return s[i+len(startMarker) : i+j], nil
		}
	}

	// No header, no markers: some producers put bare HTML on the HTML format.
	if i := strings.Index(s, "<"); i >= 0 {
		return s[i:], nil
	}
	return "", fmt.Errorf("cfhtml: no fragment in %d-byte payload", len(payload))
}

func cfHTMLOffset(s, key string) (int, bool) {
	i := strings.Index(s, key)
	if i < 0 {
		return 0, false
	}
	rest := s[i+len(key):]
	if j := strings.IndexAny(rest, "\r\n"); j >= 0 {
		rest = rest[:j]
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, false
	}
	return n, true
}
