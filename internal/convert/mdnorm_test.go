package convert

import "testing"

func TestNormalizeMarkdown(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "a\r\nb\rc", "a\nb\nc"},
		{"inline latex", `value \(x+y\) here`, "value $x+y$ here"},
		{"display latex", "before \\[\nx = 1\n\\] after", "before $$\nx = 1\n$$ after"},
		{"plain untouched", "# title\n\nbody", "# title\n\nbody"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeMarkdown(tt.in); got != tt.want {
				t.Fatalf("NormalizeMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFixupConvertedMarkdown(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"math fence", "```math\nE = mc^2\n```", "$$\nE = mc^2\n$$"},
		{"inline math code", "the $`E=mc^2`$ law", "the $E=mc^2$ law"},
		{"escaped task brackets", "- \\[ \\] open\n- \\[x\\] done", "- [ ] open\n- [x] done"},
		{"escaped strikethrough", `\~~gone\~~`, "~~gone~~"},
		{"clean passthrough", "- [ ] fine already", "- [ ] fine already"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := fixupConvertedMarkdown(tt.in); got != tt.want {
				t.Fatalf("fixup(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
