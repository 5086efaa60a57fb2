//go:build !windows && !darwin

package automation

import "github.com/pastedown/pastedown/internal/target"

type nullScripter struct{}

// NewScripter returns a scripter that reports every insertion as
// unsupported, pushing callers onto their clipboard fallback.
func NewScripter() Scripter { return nullScripter{} }

func (nullScripter) InsertDocument(target.Identity, string, bool) error {
	return ErrUnsupported
}

func (nullScripter) InsertCells(target.Identity, [][]Cell) ([]string, error) {
	return nil, ErrUnsupported
}
