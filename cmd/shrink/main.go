package main

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/dixieflatline76/Shrink/config"
	"github.com/dixieflatline76/Shrink/pkg/launcher"
	"github.com/dixieflatline76/Shrink/ui"
	"github.com/dixieflatline76/Shrink/util/log"
)

// errAlreadyRunning is returned by run when another instance holds the lock.
var errAlreadyRunning = errors.New("already running")

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Printf("Starting %s %s (size %d, filter %s, output %q)", config.AppName, config.AppVersion, cfg.DefaultSize, cfg.Filter, cfg.OutputDirName)

	err = run(cfg, func() fyne.App { return app.NewWithID(config.AppID) }, (*ui.ResizeApp).Start)
	if errors.Is(err, errAlreadyRunning) {
		log.Printf("Another instance of %s is already running.", config.AppName)
		return
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

// run holds the single-instance lock for as long as the window is open.
// The lock is released before run returns, whatever the outcome.
func run(cfg *config.Config, newApp func() fyne.App, start func(*ui.ResizeApp)) error {
	acquired, err := acquireLock()
	if err != nil {
		return fmt.Errorf("failed to acquire single-instance lock: %w", err)
	}
	if !acquired {
		return errAlreadyRunning
	}
	defer releaseLock()

	a := newApp()
	resizeApp, err := ui.NewResizeApp(a, cfg, launcher.New(a))
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	start(resizeApp)
	return nil
}
