//go:build !windows

package ipc

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func startServer(t *testing.T, handler func(cmd string) error) {
	t.Helper()
	t.Setenv("PASTEDOWN_SOCKET", filepath.Join(t.TempDir(), "pd.sock"))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() {
		if err := Serve(ctx, handler); err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("Serve: %v", err)
		}
	}()

	deadline := time.Now().Add(2 * time.Second)
	for !IsRunning() {
		if time.Now().After(deadline) {
			t.Fatal("server never answered ping")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestSendTrigger(t *testing.T) {
	var triggers atomic.Int32
	startServer(t, func(cmd string) error {
		if cmd == CmdTrigger {
			triggers.Add(1)
		}
		return nil
	})

	reply, err := Send(CmdTrigger)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if reply != "ok" {
		t.Fatalf("reply = %q", reply)
	}
	if triggers.Load() != 1 {
		t.Fatalf("triggers = %d", triggers.Load())
	}
}

func TestSendHandlerError(t *testing.T) {
	startServer(t, func(cmd string) error {
		if cmd == CmdPing {
			return nil
		}
		return fmt.Errorf("unknown command %q", cmd)
	})

	reply, err := Send("bogus")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !strings.HasPrefix(reply, "err:") {
		t.Fatalf("reply = %q, want handler error", reply)
	}
}

func TestIsRunningWithoutServer(t *testing.T) {
	t.Setenv("PASTEDOWN_SOCKET", filepath.Join(t.TempDir(), "absent.sock"))
	if IsRunning() {
		t.Fatal("IsRunning() = true with no server")
	}
}
