package place

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WorkbookOptions controls the rich-format pass of BuildWorkbook.
type WorkbookOptions struct {
	KeepFormat bool
	// InlineCodeFill is the RGB fill (e.g. "EFEFEF") applied to cells that
	// contain code spans. Empty disables the fill.
	InlineCodeFill string
}

const workbookSheet = "Sheet1"

// BuildWorkbook renders a parsed pipe table into an XLSX workbook. The cell
// values are always written; with KeepFormat set, a best-effort second pass
// applies inline formatting (bold/italic/strike, code font and fill,
// whole-cell hyperlinks). Formatting failures degrade to warnings, never to
// an error: a plain workbook still serves.
func BuildWorkbook(rows [][]string, opts WorkbookOptions) (*excelize.File, []string, error) {
	f := excelize.NewFile()
	var warnings []string

	for r, row := range rows {
		for c, cell := range row {
			coord, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, nil, fmt.Errorf("cell coordinates (%d,%d): %w", c+1, r+1, err)
			}
			if err := f.SetCellStr(workbookSheet, coord, cellPlainText(cell)); err != nil {
				return nil, nil, fmt.Errorf("write cell %s: %w", coord, err)
			}
			if !opts.KeepFormat {
				continue
			}
			if warn := applyCellFormat(f, coord, cell, opts); warn != "" {
				warnings = append(warnings, warn)
			}
		}
	}

	if opts.KeepFormat && len(rows) > 0 {
		if warn := boldHeaderRow(f, len(rows[0])); warn != "" {
			warnings = append(warnings, warn)
		}
	}
	return f, warnings, nil
}

func applyCellFormat(f *excelize.File, coord, cell string, opts WorkbookOptions) string {
	spans := parseCellSpans(cell)

	// A cell that is one single link becomes a real hyperlink showing the
	// link text; partial links keep only their visible text.
	if len(spans) == 1 && spans[0].Style.Link != "" {
		if err := f.SetCellHyperLink(workbookSheet, coord, spans[0].Style.Link, "External"); err != nil {
			return fmt.Sprintf("%s: hyperlink dropped: %v", coord, err)
		}
	}

	hasCode := false
	styled := false
	runs := make([]excelize.RichTextRun, 0, len(spans))
	for _, sp := range spans {
		font := &excelize.Font{
			Bold:   sp.Style.Bold,
			Italic: sp.Style.Italic,
			Strike: sp.Style.Strike,
		}
		if sp.Style.Code {
			font.Family = "Consolas"
			hasCode = true
		}
		if sp.Style.Bold || sp.Style.Italic || sp.Style.Strike || sp.Style.Code {
			styled = true
		}
		runs = append(runs, excelize.RichTextRun{Text: sp.Text, Font: font})
	}
	if styled {
		if err := f.SetCellRichText(workbookSheet, coord, runs); err != nil {
			return fmt.Sprintf("%s: formatting dropped: %v", coord, err)
		}
	}
	if hasCode && opts.InlineCodeFill != "" {
		styleID, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{opts.InlineCodeFill}},
		})
		if err == nil {
			err = f.SetCellStyle(workbookSheet, coord, coord, styleID)
		}
		if err != nil {
			return fmt.Sprintf("%s: code fill dropped: %v", coord, err)
		}
	}
	return ""
}

func boldHeaderRow(f *excelize.File, cols int) string {
	if cols == 0 {
		return ""
	}
	styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Sprintf("header style dropped: %v", err)
	}
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(cols, 1)
	if err := f.SetCellStyle(workbookSheet, first, last, styleID); err != nil {
		return fmt.Sprintf("header style dropped: %v", err)
	}
	return ""
}
