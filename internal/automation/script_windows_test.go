//go:build windows

package automation

import (
	"strings"
	"testing"
)

func TestWordInsertCommand(t *testing.T) {
	t.Parallel()
	command := wordInsertCommand("Word.Application", `C:\temp\insert.docx`, true)

	if !strings.Contains(command, "if ($app.Documents.Count -eq 0) { $app.Documents.Add() | Out-Null }") {
		t.Fatalf("zero-document guard missing:\n%s", command)
	}
	if !strings.Contains(command, "$app.Selection.EndKey(6)") {
		t.Fatalf("end-of-document positioning missing:\n%s", command)
	}
	if !strings.Contains(command, `InsertFile('C:\temp\insert.docx')`) {
		t.Fatalf("insert call missing:\n%s", command)
	}

	atCursor := wordInsertCommand("Word.Application", `C:\temp\insert.docx`, false)
	if strings.Contains(atCursor, "EndKey") {
		t.Fatalf("cursor-position insert must not jump to document end:\n%s", atCursor)
	}
	if !strings.Contains(atCursor, "$app.Documents.Count -eq 0") {
		t.Fatalf("zero-document guard must not depend on cursor policy:\n%s", atCursor)
	}
}

func TestCellInsertCommand(t *testing.T) {
	t.Parallel()
	cells := [][]Cell{
		{{Text: "it's plain"}},
		{{
			Text: "bold link",
			Runs: []CellRun{{Text: "bold", Bold: true}, {Text: " link"}},
			Link: "https://example.com",
		}},
	}
	command := cellInsertCommand("Excel.Application", cells)

	if !strings.Contains(command, "$base.Offset(0, 0).Value2 = 'it''s plain';") {
		t.Fatalf("escaped value write missing:\n%s", command)
	}
	if !strings.Contains(command, "$t.Characters(1, 4).Font.Bold = $true;") {
		t.Fatalf("rich run missing:\n%s", command)
	}
	if !strings.Contains(command, "Hyperlinks.Add($t, 'https://example.com')") {
		t.Fatalf("hyperlink missing:\n%s", command)
	}
	if !strings.Contains(command, "catch { Write-Output ('"+warnPrefix+"r2c1: '") {
		t.Fatalf("per-cell warning capture missing:\n%s", command)
	}
	// The plain cell must not get a try/catch formatting block.
	if strings.Contains(command, warnPrefix+"r1c1") {
		t.Fatalf("plain cell formatted:\n%s", command)
	}
}
