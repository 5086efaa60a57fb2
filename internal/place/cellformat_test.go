package place

import (
	"reflect"
	"testing"
)

func TestParseCellSpans(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want []span
	}{
		{
			name: "plain",
			in:   "hello",
			want: []span{{Text: "hello"}},
		},
		{
			name: "bold run",
			in:   "a **b** c",
			want: []span{
				{Text: "a "},
				{Text: "b", Style: spanStyle{Bold: true}},
				{Text: " c"},
			},
		},
		{
			name: "code keeps contents verbatim",
			in:   "x `**not bold**` y",
			want: []span{
				{Text: "x "},
				{Text: "**not bold**", Style: spanStyle{Code: true}},
				{Text: " y"},
			},
		},
		{
			name: "strike and italic",
			in:   "~~old~~ *new*",
			want: []span{
				{Text: "old", Style: spanStyle{Strike: true}},
				{Text: " "},
				{Text: "new", Style: spanStyle{Italic: true}},
			},
		},
		{
			name: "link",
			in:   "see [docs](https://example.com) now",
			want: []span{
				{Text: "see "},
				{Text: "docs", Style: spanStyle{Link: "https://example.com"}},
				{Text: " now"},
			},
		},
		{
			name: "unclosed backtick is literal",
			in:   "a `b",
			want: []span{{Text: "a `b"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := parseCellSpans(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("parseCellSpans(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCellPlainText(t *testing.T) {
	t.Parallel()
	if got := cellPlainText("**a** `b` [c](http://x) ~~d~~"); got != "a b c d" {
		t.Fatalf("cellPlainText() = %q", got)
	}
}

func TestCellHTML(t *testing.T) {
	t.Parallel()
	got := cellHTML("**a<b** [c](http://x)")
	want := `<strong>a&lt;b</strong> <a href="http://x">c</a>`
	if got != want {
		t.Fatalf("cellHTML() = %q, want %q", got, want)
	}
}
