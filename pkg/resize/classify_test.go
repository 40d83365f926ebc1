package resize

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_MixedFolder(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "photo.jpg", 64, 48)
	writeImage(t, dir, "icon.png", 16, 16)
	writeImage(t, dir, "anim.gif", 20, 10)
	writeTruncatedPNG(t, dir, "header_only.png", 30, 30)
	writeText(t, dir, "broken.jpg", "definitely not a jpeg")
	writeText(t, dir, "notes.txt", "hello")
	writeText(t, dir, ".DS_Store", "")

	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0755))
	writeImage(t, sub, "deep.png", 10, 10)

	images, err := Classify(dir)
	require.NoError(t, err)

	// A readable header is enough to be classified; pixel data is checked by the resizer.
	assert.ElementsMatch(t, []string{"photo.jpg", "icon.png", "anim.gif", "header_only.png"}, images)
}

func TestClassify_IgnoresOutputFolder(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "a.png", 10, 10)
	out := filepath.Join(dir, "Resized Images")
	require.NoError(t, os.Mkdir(out, 0755))
	writeImage(t, out, "a.png", 10, 10)

	images, err := Classify(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png"}, images)
}

func TestClassify_SymlinkToDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on windows")
	}
	dir := t.TempDir()
	target := t.TempDir()
	writeImage(t, dir, "a.png", 10, 10)
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "link")))

	images, err := Classify(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png"}, images)
}

func TestClassify_EmptyFolder(t *testing.T) {
	images, err := Classify(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestClassify_MissingFolder(t *testing.T) {
	_, err := Classify(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestClassify_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "a.jpg", 10, 10)
	writeText(t, dir, "b.txt", "b")

	first, err := Classify(dir)
	require.NoError(t, err)
	second, err := Classify(dir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a.jpg", "b.txt"}, listDir(t, dir), "classify must not touch the folder")
}

func TestScan_ReportsReasons(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "a.png", 40, 20)
	writeText(t, dir, "b.txt", "b")

	entries, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byName := map[string]Entry{}
	for _, e := range entries {
		byName[e.Name] = e
	}

	img := byName["a.png"]
	assert.True(t, img.Decodable())
	assert.Equal(t, "png", img.Format)
	assert.Equal(t, 40, img.Width)
	assert.Equal(t, 20, img.Height)

	txt := byName["b.txt"]
	assert.False(t, txt.Decodable())
	assert.Error(t, txt.Err)
	assert.Empty(t, txt.Format)
}
