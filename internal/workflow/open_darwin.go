//go:build darwin

package workflow

import "os/exec"

// openPath hands the file to the OS default handler.
func openPath(path string) error {
	return exec.Command("open", path).Start()
}
