package classify

import (
	"reflect"
	"testing"
)

func TestParseTable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		md   string
		want [][]string
	}{
		{
			name: "basic table",
			md:   "| a | b |\n| --- | --- |\n| 1 | 2 |",
			want: [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name: "alignment delimiters",
			md:   "| a | b |\n|:---|---:|\n| 1 | 2 |",
			want: [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name: "escaped pipe stays in cell",
			md:   "| a | b |\n| --- | --- |\n| x\\|y | 2 |",
			want: [][]string{{"a", "b"}, {"x|y", "2"}},
		},
		{
			name: "pipe inside code span stays in cell",
			md:   "| a | b |\n| --- | --- |\n| `x|y` | 2 |",
			want: [][]string{{"a", "b"}, {"`x|y`", "2"}},
		},
		{
			name: "inline markers survive",
			md:   "| a |\n| --- |\n| **bold** `code` |",
			want: [][]string{{"a"}, {"**bold** `code`"}},
		},
		{
			name: "crlf input",
			md:   "| a | b |\r\n| --- | --- |\r\n| 1 | 2 |",
			want: [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name: "prose line rejects",
			md:   "intro text\n| a | b |\n| --- | --- |\n| 1 | 2 |",
			want: nil,
		},
		{
			name: "plain prose rejects",
			md:   "just some text",
			want: nil,
		},
		{
			name: "empty rejects",
			md:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseTable(tt.md)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseTable() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
