package convert

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type runnerCall struct {
	name  string
	dir   string
	stdin string
	args  []string
}

// fakeRunner scripts converter behavior per invocation.
type fakeRunner struct {
	calls   []runnerCall
	respond func(name string, args []string, stdin []byte) (stdout, stderr []byte, err error)
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, stdin []byte, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, runnerCall{name: name, dir: dir, stdin: string(stdin), args: args})
	if f.respond == nil {
		return []byte("out"), nil, nil
	}
	return f.respond(name, args, stdin)
}

func hasArgPair(args []string, flag, value string) bool {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == flag && args[i+1] == value {
			return true
		}
	}
	return false
}

func hasArg(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func TestPandocSelfHealsToDefault(t *testing.T) {
	t.Parallel()
	r := &fakeRunner{
		respond: func(name string, _ []string, _ []byte) ([]byte, []byte, error) {
			if name == "/broken/pandoc" {
				return nil, nil, errors.New("no such file")
			}
			return []byte("pandoc 3.1.12\nfeatures: +lua\n"), nil, nil
		},
	}
	p := NewPandoc("/broken/pandoc", r)
	var healed string
	p.OnHeal = func(path string) { healed = path }

	version, err := p.Version(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if version != "pandoc 3.1.12" {
		t.Fatalf("version = %q", version)
	}
	if healed != DefaultBinary {
		t.Fatalf("healed path = %q, want %q", healed, DefaultBinary)
	}
}

func TestPandocFailsWhenDefaultAlsoBroken(t *testing.T) {
	t.Parallel()
	r := &fakeRunner{
		respond: func(string, []string, []byte) ([]byte, []byte, error) {
			return nil, nil, errors.New("no such file")
		},
	}
	p := NewPandoc("/broken/pandoc", r)
	if _, err := p.Version(context.Background()); err == nil {
		t.Fatal("expected error when both candidates fail")
	}
}

func TestPandocProbesOnce(t *testing.T) {
	t.Parallel()
	r := &fakeRunner{
		respond: func(_ string, _ []string, _ []byte) ([]byte, []byte, error) {
			return []byte("pandoc 3.0\n"), nil, nil
		},
	}
	p := NewPandoc("", r)
	for i := 0; i < 3; i++ {
		if _, err := p.Version(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
	if len(r.calls) != 1 {
		t.Fatalf("probe calls = %d, want 1", len(r.calls))
	}
}

func TestRunWrapsFailureWithStderr(t *testing.T) {
	t.Parallel()
	r := &fakeRunner{
		respond: func(_ string, args []string, _ []byte) ([]byte, []byte, error) {
			if hasArg(args, "--version") {
				return []byte("pandoc 3.0\n"), nil, nil
			}
			return nil, []byte("pandoc: could not parse input"), errors.New("exit status 64")
		},
	}
	p := NewPandoc("", r)
	_, err := p.run(context.Background(), "markdown→docx", "", []byte("x"), "-t", "docx")
	var convErr *Error
	if !errors.As(err, &convErr) {
		t.Fatalf("err = %T, want *Error", err)
	}
	if !strings.Contains(convErr.Error(), "could not parse input") {
		t.Fatalf("error message lost stderr: %v", convErr)
	}
	if convErr.Op != "markdown→docx" {
		t.Fatalf("op = %q", convErr.Op)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("e", stderrLogLimit+100)
	got := Truncate(long, stderrLogLimit)
	if len(got) != stderrLogLimit+len("...(truncated)") {
		t.Fatalf("len = %d", len(got))
	}
	if Truncate("short", stderrLogLimit) != "short" {
		t.Fatal("short strings must pass through")
	}
}
