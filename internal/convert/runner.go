package convert

import (
	"bytes"
	"context"
	"os"
	"os/exec"
)

// Runner abstracts subprocess execution so tests can run against fakes
// instead of a real converter binary.
type Runner interface {
	Run(ctx context.Context, dir, name string, stdin []byte, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner implements Runner with os/exec. Input is fed via stdin as raw
// bytes; stdout is captured as raw bytes (DOCX and RTF outputs are binary).
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir, name string, stdin []byte, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			cmd.Dir = dir
		}
	}
	cmd.Stdin = bytes.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
