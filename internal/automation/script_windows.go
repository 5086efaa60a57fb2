//go:build windows

package automation

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/pastedown/pastedown/internal/target"
)

type comScripter struct{}

// NewScripter returns the Windows scripter, which reaches the running office
// application over its COM automation object via PowerShell.
func NewScripter() Scripter { return &comScripter{} }

func (s *comScripter) InsertDocument(app target.Identity, path string, moveToEnd bool) error {
	progID, ok := comProgID(app)
	if !ok {
		return fmt.Errorf("no scripting support for %q", app)
	}
	out, err := runPowerShell(wordInsertCommand(progID, path, moveToEnd))
	if err != nil {
		return fmt.Errorf("insert via %s: %s: %w", progID, out, err)
	}
	return nil
}

// wordInsertCommand builds the COM command. The zero-document guard keeps a
// bare application window from erroring the whole press; moveToEnd presses
// End-of-story (wdStory = 6) before inserting.
func wordInsertCommand(progID, path string, moveToEnd bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "$app = [Runtime.InteropServices.Marshal]::GetActiveObject('%s');", progID)
	b.WriteString("if ($app.Documents.Count -eq 0) { $app.Documents.Add() | Out-Null };")
	if moveToEnd {
		b.WriteString("$app.Selection.EndKey(6) | Out-Null;")
	}
	fmt.Fprintf(&b, "$app.Selection.InsertFile(%s);", quotePS(path))
	// 0 is wdCollapseEnd.
	b.WriteString("$app.Selection.Collapse(0);")
	return b.String()
}

// warnPrefix marks rich-pass degradation lines the formatting script emits
// on stdout; everything else on stdout is ignored.
const warnPrefix = "warn "

func (s *comScripter) InsertCells(app target.Identity, cells [][]Cell) ([]string, error) {
	progID, ok := sheetProgID(app)
	if !ok {
		return nil, fmt.Errorf("no scripting support for %q", app)
	}

	out, err := runPowerShell(cellInsertCommand(progID, cells))
	if err != nil {
		return nil, fmt.Errorf("write cells via %s: %s: %w", progID, out, err)
	}

	var warnings []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, warnPrefix) {
			warnings = append(warnings, strings.TrimPrefix(line, warnPrefix))
		}
	}
	return warnings, nil
}

// cellInsertCommand writes every value unconditionally, then runs the rich
// pass per cell inside try/catch so a formatting failure degrades to a
// warning line instead of failing the insert.
func cellInsertCommand(progID string, cells [][]Cell) string {
	var b strings.Builder
	fmt.Fprintf(&b, "$app = [Runtime.InteropServices.Marshal]::GetActiveObject('%s');", progID)
	b.WriteString("$base = $app.ActiveCell;")
	for r, row := range cells {
		for c, cell := range row {
			fmt.Fprintf(&b, "$base.Offset(%d, %d).Value2 = %s;", r, c, quotePS(cell.Text))
		}
	}
	for r, row := range cells {
		for c, cell := range row {
			format := cellFormatCommand(cell)
			if format == "" {
				continue
			}
			fmt.Fprintf(&b, "try { $t = $base.Offset(%d, %d); %s } catch { Write-Output ('%sr%dc%d: ' + $_.Exception.Message) };",
				r, c, format, warnPrefix, r+1, c+1)
		}
	}
	return b.String()
}

func cellFormatCommand(cell Cell) string {
	var b strings.Builder
	pos := 1
	for _, run := range cell.Runs {
		n := utf8.RuneCountInString(run.Text)
		if n > 0 {
			span := fmt.Sprintf("$t.Characters(%d, %d).Font", pos, n)
			if run.Bold {
				fmt.Fprintf(&b, "%s.Bold = $true;", span)
			}
			if run.Italic {
				fmt.Fprintf(&b, "%s.Italic = $true;", span)
			}
			if run.Strike {
				fmt.Fprintf(&b, "%s.Strikethrough = $true;", span)
			}
			if run.Code {
				fmt.Fprintf(&b, "%s.Name = 'Consolas';", span)
			}
		}
		pos += n
	}
	if cell.CodeFill {
		// EFEFEF as a BGR COM color.
		b.WriteString("$t.Interior.Color = 15724527;")
	}
	if cell.Link != "" {
		fmt.Fprintf(&b, "$app.ActiveSheet.Hyperlinks.Add($t, %s) | Out-Null;", quotePS(cell.Link))
	}
	return b.String()
}

func runPowerShell(command string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()
	out, err := exec.CommandContext(ctx,
		"powershell", "-NoProfile", "-NonInteractive", "-Command", command,
	).CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

func quotePS(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func comProgID(app target.Identity) (string, bool) {
	switch app {
	case target.Word:
		return "Word.Application", true
	case target.WPSWriter:
		return "kwps.Application", true
	}
	return "", false
}

func sheetProgID(app target.Identity) (string, bool) {
	switch app {
	case target.Excel:
		return "Excel.Application", true
	case target.WPSSheet:
		return "ket.Application", true
	}
	return "", false
}
