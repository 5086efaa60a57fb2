//go:build !windows && !darwin

package hotkey

import "golang.design/x/hotkey"

var modifiers = map[string]hotkey.Modifier{
	"ctrl":    hotkey.ModCtrl,
	"control": hotkey.ModCtrl,
	"alt":     hotkey.Mod1,
	"shift":   hotkey.ModShift,
	"super":   hotkey.Mod4,
	"win":     hotkey.Mod4,
}
