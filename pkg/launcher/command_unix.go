//go:build !windows && !darwin

package launcher

import "os/exec"

// fileManagerCommand opens dir with the desktop's default handler.
func fileManagerCommand(dir string) *exec.Cmd {
	return exec.Command("xdg-open", dir)
}
