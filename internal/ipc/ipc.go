// Package ipc carries the local control channel between a running pastedown
// service and later invocations of the same binary. The channel doubles as
// the single-instance guard: when the socket answers, another instance
// already owns the hotkey, and commands like "trigger" are forwarded to it.
//
// The protocol is one newline-terminated command per connection, answered by
// "ok" or "err: <message>".
package ipc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"
)

// Commands understood by a serving instance.
const (
	CmdPing    = "ping"    // liveness probe, used for the instance check
	CmdTrigger = "trigger" // run one conversion as if the hotkey was pressed
)

// SocketPath returns the control socket path: $PASTEDOWN_SOCKET when set,
// otherwise a platform default (Unix domain socket, or a named pipe on
// Windows).
func SocketPath() string {
	if s := os.Getenv("PASTEDOWN_SOCKET"); s != "" {
		return s
	}
	return socketPath()
}

// IsRunning reports whether a pastedown service answers on the control
// socket. A stale socket file from a crashed run dials but never answers;
// the ping round-trip filters that out.
func IsRunning() bool {
	reply, err := Send(CmdPing)
	return err == nil && reply == "ok"
}

// Send delivers one command to the running service and returns its reply
// line.
func Send(cmd string) (string, error) {
	conn, err := dialIPC(SocketPath())
	if err != nil {
		return "", fmt.Errorf("dial control socket: %w", err)
	}
	defer conn.Close()

	if _, err := fmt.Fprintln(conn, cmd); err != nil {
		return "", fmt.Errorf("send %q: %w", cmd, err)
	}
	reply, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read reply: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

// Serve listens on the control socket and dispatches commands to handler
// until ctx is cancelled. Each connection carries exactly one command.
func Serve(ctx context.Context, handler func(cmd string) error) error {
	path := SocketPath()
	// Remove a stale socket from a previous (crashed) run.
	_ = os.Remove(path)

	ln, err := listenIPC(path)
	if err != nil {
		return fmt.Errorf("listen on control socket: %w", err)
	}
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			slog.Warn("control socket accept failed", "err", err)
			continue
		}
		go serveConn(conn, handler)
	}
}

func serveConn(conn net.Conn, handler func(cmd string) error) {
	defer conn.Close()

	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return
	}
	cmd := strings.TrimSpace(line)
	slog.Debug("control command received", "cmd", cmd)

	if err := handler(cmd); err != nil {
		fmt.Fprintf(conn, "err: %v\n", err)
		return
	}
	fmt.Fprintln(conn, "ok")
}
