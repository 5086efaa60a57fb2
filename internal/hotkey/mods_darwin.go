//go:build darwin

package hotkey

import "golang.design/x/hotkey"

var modifiers = map[string]hotkey.Modifier{
	"ctrl":    hotkey.ModCtrl,
	"control": hotkey.ModCtrl,
	"alt":     hotkey.ModOption,
	"option":  hotkey.ModOption,
	"shift":   hotkey.ModShift,
	"cmd":     hotkey.ModCmd,
	"super":   hotkey.ModCmd,
}
