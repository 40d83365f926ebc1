//go:build windows

package main

import (
	"errors"

	"github.com/dixieflatline76/Shrink/config"
	"github.com/dixieflatline76/Shrink/util/log"
	"golang.org/x/sys/windows"
)

var mutex windows.Handle

// acquireLock tries to create a named mutex. It returns false without error when
// another instance already owns it.
func acquireLock() (bool, error) {
	name, err := windows.UTF16PtrFromString(config.AppName + "_SingleInstanceMutex")
	if err != nil {
		return false, err
	}

	handle, err := windows.CreateMutex(nil, false, name)
	if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
		if handle != 0 {
			windows.CloseHandle(handle)
		}
		return false, nil
	}
	if err != nil {
		return false, err
	}

	mutex = handle
	return true, nil
}

// releaseLock releases the single-instance lock.
func releaseLock() {
	if mutex == 0 {
		return
	}
	if err := windows.CloseHandle(mutex); err != nil {
		log.Printf("Failed to close mutex handle: %v", err)
	}
	mutex = 0
}
