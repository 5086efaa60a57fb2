package place

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pastedown/pastedown/internal/automation"
	"github.com/pastedown/pastedown/internal/target"
)

type fakeScripter struct {
	apps     []target.Identity
	paths    []string
	toEnd    []bool
	fail     error
	cells    [][]automation.Cell
	cellWarn []string
	cellErr  error
}

func (f *fakeScripter) InsertDocument(app target.Identity, path string, moveToEnd bool) error {
	f.apps = append(f.apps, app)
	f.paths = append(f.paths, path)
	f.toEnd = append(f.toEnd, moveToEnd)
	return f.fail
}

func (f *fakeScripter) InsertCells(app target.Identity, cells [][]automation.Cell) ([]string, error) {
	f.apps = append(f.apps, app)
	f.cells = cells
	return f.cellWarn, f.cellErr
}

func TestDocumentInsertReusesScratchPath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	s := &fakeScripter{}
	d := &Document{Scripter: s, TempDir: dir, MoveCursorToEnd: true}

	for _, payload := range []string{"first", "second"} {
		res := d.Insert(target.Word, []byte(payload))
		if !res.OK {
			t.Fatalf("Insert() err = %v", res.Err)
		}
		if res.Method != MethodInsert {
			t.Fatalf("Method = %q", res.Method)
		}
	}

	if len(s.paths) != 2 || s.paths[0] != s.paths[1] {
		t.Fatalf("scratch path not reused: %v", s.paths)
	}
	if !s.toEnd[0] {
		t.Fatal("cursor policy not forwarded")
	}
	data, err := os.ReadFile(filepath.Join(dir, insertFileName))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Fatalf("scratch file = %q, want latest payload", data)
	}
}

func TestDocumentInsertReportsScriptFailure(t *testing.T) {
	t.Parallel()
	boom := errors.New("no active document")
	d := &Document{Scripter: &fakeScripter{fail: boom}, TempDir: t.TempDir()}

	res := d.Insert(target.WPSWriter, []byte("x"))
	if res.OK {
		t.Fatal("expected failure result")
	}
	if !errors.Is(res.Err, boom) {
		t.Fatalf("Err = %v, want wrapped %v", res.Err, boom)
	}
}
