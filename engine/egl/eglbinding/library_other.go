//go:build !linux && !freebsd && !darwin && !windows

package eglbinding

import (
	"errors"
	"runtime"
)

var libraryNames = []string{"libEGL"}

var errUnsupported = errors.New("EGL loading is not supported on " + runtime.GOOS)

func openLibrary(string) (uintptr, error) { return 0, errUnsupported }

func lookup(uintptr, string) (uintptr, error) { return 0, errUnsupported }
