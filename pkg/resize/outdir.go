package resize

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dixieflatline76/Shrink/util/log"
)

// OutputDir is the folder resized images are written to. It is always a direct
// child of the source folder and is rebuilt from scratch for every batch.
type OutputDir struct {
	path string
}

// NewOutputDir returns the output folder called name inside sourceDir.
func NewOutputDir(sourceDir, name string) *OutputDir {
	return &OutputDir{
		path: filepath.Join(sourceDir, name),
	}
}

// Path returns the location of the output folder.
func (od *OutputDir) Path() string {
	return od.path
}

// Reset removes any previous output and recreates the folder empty.
// Both steps are idempotent, so a failed reset is repaired by calling Reset again.
func (od *OutputDir) Reset() error {
	if err := od.ensureAbsent(); err != nil {
		return err
	}
	return od.ensureCreated()
}

// ensureAbsent removes a previous output folder. Anything else with the same name
// belongs to the user and is left untouched.
func (od *OutputDir) ensureAbsent() error {
	info, err := os.Lstat(od.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking output folder %s: %w", od.path, err)
	}
	if !info.IsDir() && info.Mode()&os.ModeSymlink == 0 {
		return fmt.Errorf("%s exists and is not a folder: %w", od.path, ErrOutputNotFolder)
	}
	log.Debugf("OutputDir: removing previous output %s", od.path)
	if err := os.RemoveAll(od.path); err != nil {
		return fmt.Errorf("removing output folder %s: %w", od.path, err)
	}
	return nil
}

func (od *OutputDir) ensureCreated() error {
	if err := os.MkdirAll(od.path, 0755); err != nil {
		return fmt.Errorf("creating output folder %s: %w", od.path, err)
	}
	return nil
}

// FilePath returns where the resized copy of the source file name is written.
func (od *OutputDir) FilePath(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, "/"+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	return filepath.Join(od.path, name), nil
}
