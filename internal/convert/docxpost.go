package convert

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

const noIndent = `<w:ind w:firstLine="0" w:firstLineChars="0"/>`

var indentElemRe = regexp.MustCompile(`<w:ind\b[^>]*/>`)

// DisableFirstLineIndent rewrites a DOCX archive in memory so the named
// paragraph style carries no first-line indent. The style name is matched by
// its styleId, which is the display name with spaces removed ("Body Text" →
// "BodyText"). Archives without the style are returned unchanged.
func DisableFirstLineIndent(docx []byte, styleName string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(docx), int64(len(docx)))
	if err != nil {
		return nil, fmt.Errorf("open docx archive: %w", err)
	}

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}

		if f.Name == "word/styles.xml" {
			data = []byte(patchStyle(string(data), styleName))
		}

		hdr := f.FileHeader
		w, err := zw.CreateHeader(&hdr)
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", f.Name, err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finish docx archive: %w", err)
	}
	return out.Bytes(), nil
}

func patchStyle(xml, styleName string) string {
	marker := `w:styleId="` + strings.ReplaceAll(styleName, " ", "") + `"`
	i := strings.Index(xml, marker)
	if i < 0 {
		return xml
	}
	end := strings.Index(xml[i:], "</w:style>")
	if end < 0 {
		return xml
	}
	block := xml[i : i+end]
	return xml[:i] + patchStyleBlock(block) + xml[i+end:]
}

// patchStyleBlock forces the zero indent inside the style's paragraph
// properties, replacing any existing indent element.
func patchStyleBlock(block string) string {
	if strings.Contains(block, "<w:pPr/>") {
		return strings.Replace(block, "<w:pPr/>", "<w:pPr>"+noIndent+"</w:pPr>", 1)
	}
	if j := strings.Index(block, "<w:pPr>"); j >= 0 {
		open := j + len("<w:pPr>")
		k := strings.Index(block[open:], "</w:pPr>")
		if k < 0 {
			return block
		}
		inner := indentElemRe.ReplaceAllString(block[open:open+k], "")
		return block[:open] + noIndent + inner + block[open+k:]
	}
	// Styles without paragraph properties get a fresh pPr, which must
	// precede any run properties.
	if j := strings.Index(block, "<w:rPr"); j >= 0 {
		return block[:j] + "<w:pPr>" + noIndent + "</w:pPr>" + block[j:]
	}
	return block + "<w:pPr>" + noIndent + "</w:pPr>"
}
