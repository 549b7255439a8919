//go:build (linux || freebsd || netbsd || openbsd) && !wayland

package platform

import (
	"errors"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type nativeHandles struct {
	win uintptr
	dpy uintptr
}

func (n *nativeHandles) attach(w *glfw.Window) error {
	n.win = uintptr(w.GetX11Window())
	n.dpy = uintptr(unsafe.Pointer(glfw.GetX11Display()))
	if n.win == 0 || n.dpy == 0 {
		return errors.New("window has no X11 handles")
	}
	return nil
}

func (n *nativeHandles) window() uintptr  { return n.win }
func (n *nativeHandles) display() uintptr { return n.dpy }

// The display connection belongs to GLFW.
func (n *nativeHandles) release() {}

// X11 repaints the window background itself.
func (n *nativeHandles) fill() {}
