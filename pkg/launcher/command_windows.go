//go:build windows

package launcher

import "os/exec"

// fileManagerCommand opens dir in Explorer.
func fileManagerCommand(dir string) *exec.Cmd {
	return exec.Command("explorer", dir)
}
