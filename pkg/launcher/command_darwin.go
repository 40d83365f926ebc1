//go:build darwin

package launcher

import "os/exec"

// fileManagerCommand reveals dir in Finder.
func fileManagerCommand(dir string) *exec.Cmd {
	return exec.Command("open", dir)
}
