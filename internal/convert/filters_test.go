package convert

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestMaterializeFilters(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	keep, fixups, err := MaterializeFilters(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{keep, fixups} {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if len(data) == 0 {
			t.Fatalf("%s is empty", path)
		}
	}
}

func TestFilterArgs(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	lua := filepath.Join(dir, "tweak.lua")
	py := filepath.Join(dir, "tweak.py")
	for _, p := range []string{lua, py} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got := filterArgs([]string{lua, filepath.Join(dir, "missing.lua"), py})
	want := []string{"--lua-filter", lua, "--filter", py}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("filterArgs() = %v, want %v", got, want)
	}
}

func TestFilterArgsExpandsEnv(t *testing.T) {
	dir := t.TempDir()
	lua := filepath.Join(dir, "env.lua")
	if err := os.WriteFile(lua, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PASTEDOWN_TEST_FILTER_DIR", dir)

	got := filterArgs([]string{"$PASTEDOWN_TEST_FILTER_DIR/env.lua"})
	want := []string{"--lua-filter", lua}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("filterArgs() = %v, want %v", got, want)
	}
}

func TestHeaderArgs(t *testing.T) {
	t.Parallel()
	got := headerArgs([]string{
		"Authorization: Bearer secret-token",
		"malformed-no-colon",
		"X-Trace: abc",
	})
	want := []string{
		"--request-header", "Authorization: Bearer secret-token",
		"--request-header", "X-Trace: abc",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("headerArgs() = %v, want %v", got, want)
	}
}
