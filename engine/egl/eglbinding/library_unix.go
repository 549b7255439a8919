//go:build linux || freebsd || darwin

package eglbinding

import (
	"runtime"

	"github.com/ebitengine/purego"
)

var libraryNames = func() []string {
	if runtime.GOOS == "darwin" {
		// ANGLE ships libEGL as a dylib next to the application.
		return []string{"libEGL.dylib"}
	}
	return []string{"libEGL.so.1", "libEGL.so"}
}()

func openLibrary(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func lookup(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}
