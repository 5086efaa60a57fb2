package target

import "strings"

// The WPS Office suite serves both word-processor and spreadsheet roles from
// one executable, so the role has to be read off the window title.

var sheetExtensions = []string{".et", ".xls", ".xlsx", ".csv"}
var writerExtensions = []string{".doc", ".docx", ".wps"}

var sheetKeywords = []string{
	"wps 表格",
	" - wps spreadsheets",
	" et ",
	"工作簿",
}

var writerKeywords = []string{
	"文字文稿",
	"wps 文字",
	" - wps writer",
}

// ClassifySuiteWindow disambiguates a unified office-suite window into its
// writer or spreadsheet role using, in order: file extension in the title
// (highest confidence), role keywords, and finally a documented
// default-to-writer bias: word processing is the statistically common case.
func ClassifySuiteWindow(title string) Identity {
	lower := strings.ToLower(title)

	for _, ext := range sheetExtensions {
		if strings.Contains(lower, ext) {
			return WPSSheet
		}
	}
	for _, ext := range writerExtensions {
		if strings.Contains(lower, ext) {
			return WPSWriter
		}
	}

	for _, kw := range sheetKeywords {
		if strings.Contains(lower, kw) {
			return WPSSheet
		}
	}
	for _, kw := range writerKeywords {
		if strings.Contains(lower, kw) {
			return WPSWriter
		}
	}

	return WPSWriter
}

// FromProcess maps a foreground process onto a target identity. name is the
// bare executable or bundle id, path the full executable path when known,
// title the frontmost window title for suite disambiguation.
func FromProcess(name, path, title string) Identity {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "winword"),
		strings.Contains(lower, "com.microsoft.word"):
		return Word
	case strings.Contains(lower, "excel"): // matches excel.exe and com.microsoft.excel
		return Excel
	case lower == "et.exe", lower == "et":
		return WPSSheet
	case strings.Contains(lower, "wps"):
		return ClassifySuiteWindow(title)
	}
	if path != "" {
		return Identity(strings.ToLower(path))
	}
	return Identity(lower)
}
