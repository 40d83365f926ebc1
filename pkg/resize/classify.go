package resize

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/webp"

	"github.com/dixieflatline76/Shrink/util/log"
)

// Entry is one non-directory candidate found in a source folder.
type Entry struct {
	Name   string // File name relative to the source folder
	Format string // Format reported by the decoder, empty when not decodable
	Width  int
	Height int
	Err    error // Why the file is not an image, nil when it is
}

// Decodable reports whether the entry passed image validation.
func (e Entry) Decodable() bool {
	return e.Err == nil
}

// Scan inspects every direct entry of dir and returns one Entry per file.
// Directories are skipped. Only a failure to read dir itself is returned as an error;
// files that are not images are reported through Entry.Err.
func Scan(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading folder %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		path := filepath.Join(dir, de.Name())
		if isDir(de, path) {
			continue
		}
		entries = append(entries, inspect(path))
	}
	return entries, nil
}

// Classify returns the names of the images in dir, in folder enumeration order.
func Classify(dir string) ([]string, error) {
	entries, err := Scan(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Decodable() {
			log.Debugf("Classify: skipping %s: %v", e.Name, e.Err)
			continue
		}
		names = append(names, e.Name)
	}
	return names, nil
}

// isDir reports whether a folder entry is a directory, following symlinks.
func isDir(de os.DirEntry, path string) bool {
	if de.IsDir() {
		return true
	}
	if de.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// inspect opens path and validates its image header.
func inspect(path string) Entry {
	e := Entry{Name: filepath.Base(path)}

	file, err := os.Open(path)
	if err != nil {
		e.Err = err
		return e
	}
	defer file.Close()

	cfg, format, err := image.DecodeConfig(file)
	if err != nil {
		e.Err = err
		return e
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		e.Err = fmt.Errorf("invalid dimensions %dx%d", cfg.Width, cfg.Height)
		return e
	}

	e.Format = format
	e.Width = cfg.Width
	e.Height = cfg.Height
	return e
}
