package clipboard

import (
	"strings"
	"testing"
)

func TestCFHTMLRoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		fragment string
	}{
		{"simple", "<b>bold</b>"},
		{"multibyte", "<p>naïve café — 数学</p>"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			payload := EncodeCFHTML(tt.fragment)
			got, err := DecodeCFHTML(payload)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.fragment {
				t.Fatalf("round trip = %q, want %q", got, tt.fragment)
			}
		})
	}
}

func TestEncodeCFHTMLHeader(t *testing.T) {
	t.Parallel()
	payload := string(EncodeCFHTML("<i>x</i>"))
	for _, key := range []string{"Version:1.0", "StartHTML:", "EndHTML:", "StartFragment:", "EndFragment:"} {
		if !strings.Contains(payload, key) {
			t.Fatalf("payload missing %q:\n%s", key, payload)
		}
	}
	start, ok := cfHTMLOffset(payload, "StartFragment:")
	if !ok {
		t.Fatal("unreadable StartFragment offset")
	}
	end, _ := cfHTMLOffset(payload, "EndFragment:")
	if payload[start:end] != "<i>x</i>" {
		t.Fatalf("offsets select %q, want fragment", payload[start:end])
	}
}

func TestDecodeCFHTMLMarkerFallback(t *testing.T) {
	t.Parallel()
	// Malformed offsets but intact markers.
	payload := []byte("StartFragment:9999999999\r\nEndFragment:0000000000\r\n" +
		"<html><body><!--StartFragment--><p>hi</p><!--EndFragment--></body></html>")
	got, err := DecodeCFHTML(payload)
	if err != nil {
		t.Fatal(err)
	}
	if got != "<p>hi</p>" {
		t.Fatalf("got %q, want %q", got, "<p>hi</p>")
	}
}

func TestDecodeCFHTMLBareHTML(t *testing.T) {
	t.Parallel()
	got, err := DecodeCFHTML([]byte("<div>bare</div>"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "<div>bare</div>" {
		t.Fatalf("got %q", got)
	}
}
