package place

import (
	"strings"

	"github.com/pastedown/pastedown/internal/automation"
	"github.com/pastedown/pastedown/internal/clipboard"
	"github.com/pastedown/pastedown/internal/target"
)

// Spreadsheet inserts a parsed table into a live spreadsheet through the
// application's scripting interface: batch cell-range value writes at the
// active cell, then a best-effort rich pass (bold/italic/strike, code font
// and shading, whole-cell hyperlinks) whose per-cell failures surface as
// warnings.
type Spreadsheet struct {
	Scripter   automation.Scripter
	KeepFormat bool
	// CodeFill shades cells containing code spans.
	CodeFill bool
}

// Insert writes rows into app. Scripting failures come back as a non-OK
// Result; callers fall back to the clipboard table paste.
func (s *Spreadsheet) Insert(app target.Identity, rows [][]string) Result {
	warnings, err := s.Scripter.InsertCells(app, s.cellGrid(rows))
	if err != nil {
		return failed(MethodInsert, err)
	}
	return Result{OK: true, Method: MethodInsert, Warnings: warnings}
}

func (s *Spreadsheet) cellGrid(rows [][]string) [][]automation.Cell {
	grid := make([][]automation.Cell, len(rows))
	for r, row := range rows {
		grid[r] = make([]automation.Cell, len(row))
		for c, raw := range row {
			grid[r][c] = s.cell(raw)
		}
	}
	return grid
}

func (s *Spreadsheet) cell(raw string) automation.Cell {
	cell := automation.Cell{Text: cellPlainText(raw)}
	if !s.KeepFormat {
		return cell
	}
	spans := parseCellSpans(raw)
	if len(spans) == 1 && spans[0].Style.Link != "" {
		cell.Link = spans[0].Style.Link
	}
	styled := false
	for _, sp := range spans {
		run := automation.CellRun{
			Text:   sp.Text,
			Bold:   sp.Style.Bold,
			Italic: sp.Style.Italic,
			Strike: sp.Style.Strike,
			Code:   sp.Style.Code,
		}
		if run.Bold || run.Italic || run.Strike || run.Code {
			styled = true
		}
		if run.Code && s.CodeFill {
			cell.CodeFill = true
		}
		cell.Runs = append(cell.Runs, run)
	}
	if !styled {
		cell.Runs = nil
	}
	return cell
}

// Table pastes a parsed pipe table into a live spreadsheet. The payload
// carries an HTML table, which spreadsheet applications split into cells on
// paste, plus a tab-separated plain-text fallback. With keepFormat set the
// HTML preserves inline bold/italic/strike/code/link formatting; otherwise
// cells are stripped to visible text.
func Table(b clipboard.Backend, rows [][]string, keepFormat bool) Result {
	return Rich(b, TableRich(rows, keepFormat))
}

// TableRich builds the clipboard payload Table pastes.
func TableRich(rows [][]string, keepFormat bool) clipboard.Rich {
	return clipboard.Rich{
		HTML: renderTableHTML(rows, keepFormat),
		Text: renderTableTSV(rows),
	}
}

func renderTableHTML(rows [][]string, keepFormat bool) string {
	var sb strings.Builder
	sb.WriteString("<table>")
	for r, row := range rows {
		tag := "td"
		if r == 0 {
			tag = "th"
		}
		sb.WriteString("<tr>")
		for _, cell := range row {
			sb.WriteString("<" + tag + ">")
			if keepFormat {
				sb.WriteString(cellHTML(cell))
			} else {
				sb.WriteString(cellHTML(cellPlainText(cell)))
			}
			sb.WriteString("</" + tag + ">")
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table>")
	return sb.String()
}

func renderTableTSV(rows [][]string) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			text := cellPlainText(cell)
			text = strings.NewReplacer("\t", " ", "\n", " ").Replace(text)
			cells = append(cells, text)
		}
		lines = append(lines, strings.Join(cells, "\t"))
	}
	return strings.Join(lines, "\n")
}
