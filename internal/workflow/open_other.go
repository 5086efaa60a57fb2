//go:build !windows && !darwin

package workflow

import "os/exec"

// openPath hands the file to the OS default handler.
func openPath(path string) error {
	return exec.Command("xdg-open", path).Start()
}
