package classify

import "testing"

func TestPlainFragment(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		fragment string
		clipText string
		want     bool
	}{
		{
			name:     "empty fragment is plain",
			fragment: "   ",
			want:     true,
		},
		{
			name:     "semantic heading is real html",
			fragment: "<h1>Title</h1>",
			want:     false,
		},
		{
			name:     "semantic table is real html",
			fragment: "<table><tr><td>x</td></tr></table>",
			want:     false,
		},
		{
			name:     "span wrapper only is plain",
			fragment: "<span>hello world</span>",
			want:     true,
		},
		{
			name:     "styled font wrapper is plain",
			fragment: `<span style="color:red"><font>text</font></span>`,
			want:     true,
		},
		{
			name:     "divs with markdown syntax are plain",
			fragment: "<div># Title</div><div>```go</div><div>**bold**</div>",
			want:     true,
		},
		{
			name:     "divs with ordinary prose stay html",
			fragment: "<div>Dear team,</div><div>see you tomorrow.</div>",
			want:     false,
		},
		{
			name:     "hint scoring uses clip text when fragment is hollow",
			fragment: "<div><img src=\"x.png\"/></div>",
			clipText: "# Title\n- item\n```",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := PlainFragment(tt.fragment, tt.clipText); got != tt.want {
				t.Fatalf("PlainFragment() = %v, want %v", got, tt.want)
			}
		})
	}
}
