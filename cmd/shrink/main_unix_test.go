//go:build !windows

package main

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/Shrink/config"
	"github.com/dixieflatline76/Shrink/ui"
)

func testApp(t *testing.T) func() fyne.App {
	return func() fyne.App { return test.NewTempApp(t) }
}

func TestRun_ReleasesLockOnWindowError(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	cfg := config.Default()
	cfg.Filter = "smudge"
	started := false
	err := run(cfg, testApp(t), func(*ui.ResizeApp) { started = true })
	require.Error(t, err)
	assert.False(t, started)

	ok, err := acquireLock()
	require.NoError(t, err)
	assert.True(t, ok, "lock must be free after a failed start")
	releaseLock()
}

func TestRun_StartsAndReleasesLock(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	started := false
	err := run(config.Default(), testApp(t), func(*ui.ResizeApp) {
		started = true
		again, err := acquireLock()
		assert.NoError(t, err)
		assert.False(t, again, "lock is held while the window is open")
	})
	require.NoError(t, err)
	assert.True(t, started)

	ok, err := acquireLock()
	require.NoError(t, err)
	assert.True(t, ok)
	releaseLock()
}

func TestRun_SecondInstance(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	ok, err := acquireLock()
	require.NoError(t, err)
	require.True(t, ok)
	defer releaseLock()

	err = run(config.Default(), testApp(t), func(*ui.ResizeApp) {
		t.Fatal("second instance must not start")
	})
	assert.ErrorIs(t, err, errAlreadyRunning)
}
