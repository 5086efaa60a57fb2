package target

import "testing"

func TestClassifySuiteWindow(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		title string
		want  Identity
	}{
		{"sheet extension wins", "budget.xlsx - WPS Office", WPSSheet},
		{"et extension wins", "data.et - WPS Office", WPSSheet},
		{"writer extension wins", "report.docx - WPS Office", WPSWriter},
		{"extension beats keyword", "notes.docx - WPS Spreadsheets", WPSWriter},
		{"sheet keyword", "工作簿1 - WPS Office", WPSSheet},
		{"english sheet keyword", "Book1 - WPS Spreadsheets", WPSSheet},
		{"writer keyword", "文字文稿1 - WPS Office", WPSWriter},
		{"no signal defaults to writer", "WPS Office", WPSWriter},
		{"empty title defaults to writer", "", WPSWriter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ClassifySuiteWindow(tt.title); got != tt.want {
				t.Fatalf("ClassifySuiteWindow(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestFromProcess(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		proc  string
		path  string
		title string
		want  Identity
	}{
		{"word exe", "winword.exe", `C:\Program Files\WINWORD.EXE`, "doc1 - Word", Word},
		{"word bundle", "com.microsoft.word", "com.microsoft.word", "doc1", Word},
		{"excel exe", "excel.exe", `C:\Program Files\EXCEL.EXE`, "Book1", Excel},
		{"wps sheet exe", "et.exe", `C:\WPS\et.exe`, "Book1", WPSSheet},
		{"wps suite by title", "wps.exe", `C:\WPS\wps.exe`, "budget.xlsx - WPS", WPSSheet},
		{"wps suite default", "wps.exe", `C:\WPS\wps.exe`, "Untitled", WPSWriter},
		{"unknown keeps lowercased path", "Notion.exe", `C:\Apps\Notion.EXE`, "My Page", Identity(`c:\apps\notion.exe`)},
		{"unknown without path keeps name", "obsidian", "", "Vault", Identity("obsidian")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FromProcess(tt.proc, tt.path, tt.title); got != tt.want {
				t.Fatalf("FromProcess(%q) = %q, want %q", tt.proc, got, tt.want)
			}
		})
	}
}

func TestIdentityHelpers(t *testing.T) {
	t.Parallel()
	if !Word.Reserved() || !WPSSheet.Reserved() {
		t.Fatal("reserved identities must report Reserved")
	}
	if Identity("notion.exe").Reserved() {
		t.Fatal("opaque identity must not report Reserved")
	}
	if !Excel.Spreadsheet() || !WPSSheet.Spreadsheet() {
		t.Fatal("sheet identities must report Spreadsheet")
	}
	if Word.Spreadsheet() {
		t.Fatal("Word is not a spreadsheet")
	}
}
