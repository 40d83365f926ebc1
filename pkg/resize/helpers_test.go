package resize

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

// pngHeaderLen covers the PNG signature and the IHDR chunk: enough for DecodeConfig, not for Decode.
const pngHeaderLen = 33

func createTestImage(width, height int) image.Image {
	return imaging.New(width, height, color.NRGBA{R: 200, G: 120, B: 40, A: 255})
}

// writeImage saves a width x height image to dir/name, encoded by the name's extension.
func writeImage(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, imaging.Save(createTestImage(width, height), path))
	return path
}

// writeTruncatedPNG writes a PNG whose header is valid but whose pixel data is missing.
func writeTruncatedPNG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, createTestImage(width, height)))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes()[:pngHeaderLen], 0644))
	return path
}

func writeText(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// dimensions decodes the header of the image at path.
func dimensions(t *testing.T, path string) (int, int, string) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width, cfg.Height, format
}

// listDir returns the names in dir, or nil if dir does not exist.
func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
