//go:build darwin

package automation

import (
	"strings"
	"testing"
)

func TestWordInsertScript(t *testing.T) {
	t.Parallel()
	script := wordInsertScript("Microsoft Word", "/tmp/insert.docx", true)

	if !strings.Contains(script, "if (count of documents) is 0 then make new document") {
		t.Fatalf("zero-document guard missing:\n%s", script)
	}
	if !strings.Contains(script, "collapse range (text object of active document) direction collapse end") {
		t.Fatalf("end-of-document positioning missing:\n%s", script)
	}
	if !strings.Contains(script, `POSIX file "/tmp/insert.docx"`) {
		t.Fatalf("file path missing:\n%s", script)
	}

	atCursor := wordInsertScript("Microsoft Word", "/tmp/insert.docx", false)
	if strings.Contains(atCursor, "text object of active document") {
		t.Fatalf("cursor-position insert must not jump to document end:\n%s", atCursor)
	}
	if !strings.Contains(atCursor, "if (count of documents) is 0") {
		t.Fatalf("zero-document guard must not depend on cursor policy:\n%s", atCursor)
	}
}

func TestCellScripts(t *testing.T) {
	t.Parallel()
	cells := [][]Cell{
		{{Text: "plain"}},
		{{
			Text:     "code",
			Runs:     []CellRun{{Text: "code", Code: true}},
			CodeFill: true,
		}},
	}

	values := cellValuesScript("Microsoft Excel", cells)
	if !strings.Contains(values, `row offset 0 column offset 0) to "plain"`) {
		t.Fatalf("first value write missing:\n%s", values)
	}
	if !strings.Contains(values, `row offset 1 column offset 0) to "code"`) {
		t.Fatalf("second value write missing:\n%s", values)
	}

	if got := cellFormatScript("Microsoft Excel", 0, 0, cells[0][0]); got != "" {
		t.Fatalf("plain cell needs no formatting script, got:\n%s", got)
	}
	format := cellFormatScript("Microsoft Excel", 1, 0, cells[1][0])
	if !strings.Contains(format, `to "Consolas"`) {
		t.Fatalf("code font missing:\n%s", format)
	}
	if !strings.Contains(format, "interior object") {
		t.Fatalf("code fill missing:\n%s", format)
	}
}
