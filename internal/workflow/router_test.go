package workflow

import (
	"testing"

	"github.com/pastedown/pastedown/internal/config"
	"github.com/pastedown/pastedown/internal/target"
)

func TestSelectWorkflowReservedTargets(t *testing.T) {
	t.Parallel()
	f := newFixture(t, &stubDetector{})
	tests := []struct {
		app  target.Identity
		want string
	}{
		{target.Word, "document"},
		{target.WPSWriter, "document"},
		{target.Excel, "spreadsheet"},
		{target.WPSSheet, "spreadsheet"},
		{target.None, "fallback"},
		{target.Identity("notion.exe"), "fallback"},
	}
	for _, tt := range tests {
		name, run := f.engine.selectWorkflow(tt.app, "")
		if name != tt.want {
			t.Errorf("selectWorkflow(%q) = %q, want %q", tt.app, name, tt.want)
		}
		if run == nil {
			t.Errorf("selectWorkflow(%q) returned nil pipeline", tt.app)
		}
	}
}

func TestSelectWorkflowExtensibleBinding(t *testing.T) {
	t.Parallel()
	f := newFixture(t, &stubDetector{})
	f.cfg.Workflows = map[string]config.ExtensibleWorkflow{
		"markdown": {
			Enabled: true,
			Apps: []config.AppBinding{
				{ID: "Notion.exe", WindowPatterns: []string{".*Notion.*"}},
			},
		},
	}

	// Identity matching is case-insensitive; window patterns are too.
	if name, _ := f.engine.selectWorkflow("notion.exe", "Untitled – Notion"); name != "markdown" {
		t.Fatalf("bound app with matching title routed to %q", name)
	}
	if name, _ := f.engine.selectWorkflow("notion.exe", "Untitled – Obsidian"); name != "fallback" {
		t.Fatalf("non-matching title routed to %q, want fallback", name)
	}
}

func TestSelectWorkflowDisabledBindingIgnored(t *testing.T) {
	t.Parallel()
	f := newFixture(t, &stubDetector{})
	f.cfg.Workflows = map[string]config.ExtensibleWorkflow{
		"markdown": {
			Enabled: false,
			Apps:    []config.AppBinding{{ID: "notion.exe"}},
		},
	}
	if name, _ := f.engine.selectWorkflow("notion.exe", "anything"); name != "fallback" {
		t.Fatalf("disabled binding routed to %q", name)
	}
}

func TestSelectWorkflowDeterministicOrder(t *testing.T) {
	t.Parallel()
	f := newFixture(t, &stubDetector{})
	// Two enabled workflows bind the same app; the alphabetically first
	// name must win every press.
	f.cfg.Workflows = map[string]config.ExtensibleWorkflow{
		"markdown": {Enabled: true, Apps: []config.AppBinding{{ID: "app.exe"}}},
		"html":     {Enabled: true, Apps: []config.AppBinding{{ID: "app.exe"}}},
	}
	for i := 0; i < 5; i++ {
		if name, _ := f.engine.selectWorkflow("app.exe", ""); name != "html" {
			t.Fatalf("routing not deterministic, got %q", name)
		}
	}
}

func TestMatchesWindow(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		patterns []string
		title    string
		want     bool
	}{
		{"no patterns match everything", nil, "whatever", true},
		{"case-insensitive", []string{".*notion.*"}, "Untitled – Notion", true},
		{"no match", []string{".*Notion.*"}, "Untitled – Obsidian", false},
		{"invalid pattern skipped", []string{"([unclosed"}, "anything", false},
		{"invalid then valid", []string{"([unclosed", "any.*"}, "anything", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := matchesWindow(tt.patterns, tt.title); got != tt.want {
				t.Fatalf("matchesWindow(%v, %q) = %v, want %v", tt.patterns, tt.title, got, tt.want)
			}
		})
	}
}
