//go:build windows

package workflow

import "os/exec"

// openPath hands the file to the OS default handler. start is a cmd
// builtin, so it runs through the shell; the empty string is the window
// title argument start expects when the path is quoted.
func openPath(path string) error {
	return exec.Command("cmd", "/c", "start", "", path).Start()
}
