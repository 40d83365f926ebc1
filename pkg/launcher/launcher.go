// Package launcher opens folders in the platform's file manager.
package launcher

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"

	"fyne.io/fyne/v2/storage"

	"github.com/dixieflatline76/Shrink/util/log"
)

// URLOpener opens a URL with the desktop's default handler. fyne.App satisfies it.
type URLOpener interface {
	OpenURL(u *url.URL) error
}

// Launcher opens a folder through the URL opener first and falls back to the
// platform's file manager command.
type Launcher struct {
	opener  URLOpener
	command func(dir string) *exec.Cmd
}

// New creates a Launcher. opener may be nil, in which case only the OS command is used.
func New(opener URLOpener) *Launcher {
	return &Launcher{
		opener:  opener,
		command: fileManagerCommand,
	}
}

// Open shows dir in the file manager.
func (l *Launcher) Open(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}

	if l.opener != nil {
		u, err := FileURL(abs)
		if err == nil {
			err = l.opener.OpenURL(u)
		}
		if err == nil {
			return nil
		}
		log.Printf("Launcher: could not open %s as URL, falling back to file manager command: %v", abs, err)
	}

	cmd := l.command(abs)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", cmd.Path, err)
	}
	// Reap the child; some file managers (explorer) exit non-zero even on success.
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Debugf("Launcher: %s exited: %v", cmd.Path, err)
		}
	}()
	return nil
}

// FileURL converts a local path to a file:// URL.
func FileURL(path string) (*url.URL, error) {
	return url.Parse(storage.NewFileURI(path).String())
}
