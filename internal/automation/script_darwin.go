//go:build darwin

package automation

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/pastedown/pastedown/internal/target"
)

type appleScripter struct{}

// NewScripter returns the macOS scripter, which talks to applications
// through osascript.
func NewScripter() Scripter { return &appleScripter{} }

func (s *appleScripter) InsertDocument(app target.Identity, path string, moveToEnd bool) error {
	name, ok := scriptableApp(app)
	if !ok {
		return fmt.Errorf("no scripting support for %q", app)
	}
	out, err := runAppleScript(wordInsertScript(name, path, moveToEnd))
	if err != nil {
		return fmt.Errorf("insert into %s: %s: %w", name, out, err)
	}
	return nil
}

// wordInsertScript builds the insertion script. The zero-document guard
// keeps a bare application window from erroring the whole press; moveToEnd
// repositions the selection to the document end before inserting.
func wordInsertScript(name, path string, moveToEnd bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "tell application \"%s\"\n", name)
	b.WriteString("\tif (count of documents) is 0 then make new document\n")
	if moveToEnd {
		b.WriteString("\tselect (collapse range (text object of active document) direction collapse end)\n")
	}
	fmt.Fprintf(&b, "\tinsert file at selection file name (POSIX file %s)\n", quoteAS(path))
	b.WriteString("\tcollapse range selection direction collapse end\n")
	b.WriteString("end tell\n")
	return b.String()
}

func (s *appleScripter) InsertCells(app target.Identity, cells [][]Cell) ([]string, error) {
	name, ok := sheetApp(app)
	if !ok {
		return nil, fmt.Errorf("no scripting support for %q", app)
	}

	if out, err := runAppleScript(cellValuesScript(name, cells)); err != nil {
		return nil, fmt.Errorf("write cells into %s: %s: %w", name, out, err)
	}

	var warnings []string
	for r, row := range cells {
		for c, cell := range row {
			script := cellFormatScript(name, r, c, cell)
			if script == "" {
				continue
			}
			if out, err := runAppleScript(script); err != nil {
				warnings = append(warnings, fmt.Sprintf("r%dc%d: formatting dropped: %s", r+1, c+1, out))
			}
		}
	}
	return warnings, nil
}

// cellValuesScript batches every value write into one osascript call; the
// rich pass runs separately so one stubborn cell cannot lose the data.
func cellValuesScript(name string, cells [][]Cell) string {
	var b strings.Builder
	fmt.Fprintf(&b, "tell application \"%s\"\n", name)
	b.WriteString("\tset baseCell to active cell\n")
	for r, row := range cells {
		for c, cell := range row {
			fmt.Fprintf(&b, "\tset value of (get offset baseCell row offset %d column offset %d) to %s\n",
				r, c, quoteAS(cell.Text))
		}
	}
	b.WriteString("end tell\n")
	return b.String()
}

func cellFormatScript(name string, r, c int, cell Cell) string {
	var body strings.Builder
	pos := 1
	for _, run := range cell.Runs {
		n := utf8.RuneCountInString(run.Text)
		if n > 0 {
			span := fmt.Sprintf("characters %d thru %d of theCell", pos, pos+n-1)
			if run.Bold {
				fmt.Fprintf(&body, "\tset bold of font object of %s to true\n", span)
			}
			if run.Italic {
				fmt.Fprintf(&body, "\tset italic of font object of %s to true\n", span)
			}
			if run.Strike {
				fmt.Fprintf(&body, "\tset strikethrough of font object of %s to true\n", span)
			}
			if run.Code {
				fmt.Fprintf(&body, "\tset name of font object of %s to \"Consolas\"\n", span)
			}
		}
		pos += n
	}
	if cell.CodeFill {
		// EFEFEF in the 0..65535 component range.
		body.WriteString("\tset color of interior object of theCell to {61423, 61423, 61423}\n")
	}
	if cell.Link != "" {
		fmt.Fprintf(&body, "\tmake new hyperlink of active sheet at theCell with properties {address:%s, text to display:%s}\n",
			quoteAS(cell.Link), quoteAS(cell.Text))
	}
	if body.Len() == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "tell application \"%s\"\n", name)
	fmt.Fprintf(&b, "\tset theCell to get offset (active cell) row offset %d column offset %d\n", r, c)
	b.WriteString(body.String())
	b.WriteString("end tell\n")
	return b.String()
}

func runAppleScript(script string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, "osascript", "-e", script).CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

func quoteAS(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

func scriptableApp(app target.Identity) (string, bool) {
	switch app {
	case target.Word:
		return "Microsoft Word", true
	case target.WPSWriter:
		return "wpsoffice", true
	}
	return "", false
}

func sheetApp(app target.Identity) (string, bool) {
	switch app {
	case target.Excel:
		return "Microsoft Excel", true
	case target.WPSSheet:
		return "wpsoffice", true
	}
	return "", false
}
