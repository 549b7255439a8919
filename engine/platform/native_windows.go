//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetDC            = user32.NewProc("GetDC")
	procReleaseDC        = user32.NewProc("ReleaseDC")
	procGetClientRect    = user32.NewProc("GetClientRect")
	procFillRect         = user32.NewProc("FillRect")
	procGetSysColorBrush = user32.NewProc("GetSysColorBrush")
)

const colorWindow = 5

// nativeHandles are the HWND and its device context. EGL on Windows takes
// the HDC as the native display.
type nativeHandles struct {
	hwnd uintptr
	hdc  uintptr
}

func (n *nativeHandles) attach(w *glfw.Window) error {
	n.hwnd = uintptr(unsafe.Pointer(w.GetWin32Window()))
	if n.hwnd == 0 {
		return fmt.Errorf("window has no HWND")
	}
	hdc, _, err := procGetDC.Call(n.hwnd)
	if hdc == 0 {
		return fmt.Errorf("GetDC: %w", err)
	}
	n.hdc = hdc
	return nil
}

func (n *nativeHandles) window() uintptr  { return n.hwnd }
func (n *nativeHandles) display() uintptr { return n.hdc }

func (n *nativeHandles) release() {
	if n.hdc != 0 {
		procReleaseDC.Call(n.hwnd, n.hdc)
		n.hdc = 0
	}
}

// fill paints the client area with the system window color.
func (n *nativeHandles) fill() {
	var r windows.Rect
	if ok, _, _ := procGetClientRect.Call(n.hwnd, uintptr(unsafe.Pointer(&r))); ok == 0 {
		return
	}
	brush, _, _ := procGetSysColorBrush.Call(colorWindow)
	procFillRect.Call(n.hdc, uintptr(unsafe.Pointer(&r)), brush)
}
