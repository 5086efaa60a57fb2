package clipboard

import (
	"errors"
	"testing"
)

func TestWithPreservedRestoresAfterSuccess(t *testing.T) {
	t.Parallel()
	b := NewMemory()
	if err := b.WriteText("original"); err != nil {
		t.Fatal(err)
	}

	err := WithPreservedDelay(b, 0, func() error {
		if err := b.WriteText("temporary"); err != nil {
			return err
		}
		return b.Paste()
	})
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := b.ReadText(); got != "original" {
		t.Fatalf("clipboard = %q, want restored %q", got, "original")
	}
	if b.Pastes != 1 {
		t.Fatalf("pastes = %d, want 1", b.Pastes)
	}
}

func TestWithPreservedRestoresAfterError(t *testing.T) {
	t.Parallel()
	b := NewMemory()
	if err := b.WriteRich(Rich{HTML: "<b>x</b>", Text: "x"}); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err := WithPreservedDelay(b, 0, func() error {
		_ = b.WriteText("temporary")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if got, _ := b.ReadHTML(); got != "<b>x</b>" {
		t.Fatalf("html = %q, want restored fragment", got)
	}
	if got, _ := b.ReadText(); got != "x" {
		t.Fatalf("text = %q, want restored %q", got, "x")
	}
}

func TestWithPreservedRestoresAfterPanic(t *testing.T) {
	t.Parallel()
	b := NewMemory()
	if err := b.WriteText("keep me"); err != nil {
		t.Fatal(err)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		_ = WithPreservedDelay(b, 0, func() error {
			_ = b.WriteText("clobbered")
			panic("mid-paste crash")
		})
	}()

	if got, _ := b.ReadText(); got != "keep me" {
		t.Fatalf("clipboard = %q, want restored %q", got, "keep me")
	}
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()
	b := NewMemory()
	if !IsEmpty(b) {
		t.Fatal("fresh clipboard should be empty")
	}
	_ = b.WriteText("")
	if !IsEmpty(b) {
		t.Fatal("empty-string text should still count as empty")
	}
	_ = b.WriteFiles([]string{"/tmp/a"})
	if IsEmpty(b) {
		t.Fatal("file list should not be empty")
	}
}
