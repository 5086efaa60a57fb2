// Package hotkey registers the global trigger key and dispatches presses.
package hotkey

import (
	"context"
	"fmt"
	"strings"

	"golang.design/x/hotkey"
)

// keys maps spec tokens to key codes. The named constants are portable
// across platforms even though their values differ.
var keys = map[string]hotkey.Key{
	"space":  hotkey.KeySpace,
	"enter":  hotkey.KeyReturn,
	"return": hotkey.KeyReturn,
	"tab":    hotkey.KeyTab,
	"escape": hotkey.KeyEscape,
	"up":     hotkey.KeyUp,
	"down":   hotkey.KeyDown,
	"left":   hotkey.KeyLeft,
	"right":  hotkey.KeyRight,
	"a":      hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,
	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,
	"f1": hotkey.KeyF1, "f2": hotkey.KeyF2, "f3": hotkey.KeyF3, "f4": hotkey.KeyF4,
	"f5": hotkey.KeyF5, "f6": hotkey.KeyF6, "f7": hotkey.KeyF7, "f8": hotkey.KeyF8,
	"f9": hotkey.KeyF9, "f10": hotkey.KeyF10, "f11": hotkey.KeyF11, "f12": hotkey.KeyF12,
}

// ParseSpec parses a binding like "ctrl+alt+v" into modifiers and key. Tokens
// are case-insensitive; every token but the last must be a modifier.
func ParseSpec(spec string) ([]hotkey.Modifier, hotkey.Key, error) {
	tokens := strings.Split(strings.ToLower(strings.TrimSpace(spec)), "+")
	if len(tokens) < 2 {
		return nil, 0, fmt.Errorf("hotkey %q: need at least one modifier and a key", spec)
	}
	var mods []hotkey.Modifier
	for _, tok := range tokens[:len(tokens)-1] {
		m, ok := modifiers[strings.TrimSpace(tok)]
		if !ok {
			return nil, 0, fmt.Errorf("hotkey %q: unknown modifier %q", spec, tok)
		}
		mods = append(mods, m)
	}
	keyTok := strings.TrimSpace(tokens[len(tokens)-1])
	key, ok := keys[keyTok]
	if !ok {
		return nil, 0, fmt.Errorf("hotkey %q: unknown key %q", spec, keyTok)
	}
	return mods, key, nil
}

// Listener owns one registered global hotkey.
type Listener struct {
	hk   *hotkey.Hotkey
	spec string
}

// NewListener parses spec and prepares the hotkey. Registration with the OS
// happens in Run.
func NewListener(spec string) (*Listener, error) {
	mods, key, err := ParseSpec(spec)
	if err != nil {
		return nil, err
	}
	return &Listener{hk: hotkey.New(mods, key), spec: spec}, nil
}

// Run registers the hotkey and invokes handler on every key-down until ctx
// is cancelled. The handler runs on the listener goroutine; dispatch to a
// worker is the caller's concern.
func (l *Listener) Run(ctx context.Context, handler func()) error {
	if err := l.hk.Register(); err != nil {
		return fmt.Errorf("register hotkey %q: %w", l.spec, err)
	}
	defer l.hk.Unregister()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.hk.Keydown():
			handler()
		}
	}
}
