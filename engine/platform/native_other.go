//go:build !windows && !((linux || freebsd || netbsd || openbsd) && !wayland)

package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type nativeHandles struct{}

func (n *nativeHandles) attach(*glfw.Window) error {
	return fmt.Errorf("native window handles are not supported on %s", runtime.GOOS)
}

func (n *nativeHandles) window() uintptr  { return 0 }
func (n *nativeHandles) display() uintptr { return 0 }
func (n *nativeHandles) release()         {}
func (n *nativeHandles) fill()            {}
