// Package platform provides the native window the graphics context renders
// into. The window has no client API of its own; core.Context creates the
// EGL surface on the native handles it exposes.
package platform

import (
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sqweek/dialog"

	"github.com/hubastard/grove-gles/engine/assets"
	"github.com/hubastard/grove-gles/engine/core"
)

const (
	minWidth  = 300
	minHeight = 250
	baseDPI   = 96
)

// GLFWWindow implements core.Window and pushes events to the installed
// callback.
type GLFWWindow struct {
	w      *glfw.Window
	title  string
	native nativeHandles
	onEv   func(core.Event)
}

var _ core.Window = (*GLFWWindow)(nil)

// Must be called on the main thread.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	center(win)
	applySizeLimits(win)

	gw := &GLFWWindow{w: win, title: cfg.Title}
	if err := gw.native.attach(win); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}

	if icon, err := assets.Icon(); err != nil {
		core.Logger().Warn("window icon unavailable", slog.Any("err", err))
	} else {
		win.SetIcon([]image.Image{icon})
	}

	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetContentScaleCallback(func(w *glfw.Window, x, _ float32) {
		applySizeLimits(w)
		gw.emit(core.EventDPI{DPI: dpiFromScale(x)})
	})
	win.SetRefreshCallback(func(*glfw.Window) { gw.emit(core.EventPaint{}) })
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		gw.emit(core.EventKey{Key: k, Down: action != glfw.Release})
	})

	return gw, nil
}

// center places the window in the middle of the work area of the monitor
// it currently sits on, falling back to the primary monitor.
func center(win *glfw.Window) {
	x, y := win.GetPos()
	ww, wh := win.GetSize()
	window := image.Rect(x, y, x+ww, y+wh)

	monitors := glfw.GetMonitors()
	areas := make([]image.Rectangle, len(monitors))
	for i, mon := range monitors {
		mx, my, mw, mh := mon.GetWorkarea()
		areas[i] = image.Rect(mx, my, mx+mw, my+mh)
	}
	var area image.Rectangle
	if i := monitorAt(areas, window); i >= 0 {
		area = areas[i]
	} else if mon := glfw.GetPrimaryMonitor(); mon != nil {
		mx, my, mw, mh := mon.GetWorkarea()
		area = image.Rect(mx, my, mx+mw, my+mh)
	} else {
		return
	}
	p := centerIn(area, window.Size())
	win.SetPos(p.X, p.Y)
}

// monitorAt returns the index of the work area holding the center of
// window, or the one it overlaps most. It returns -1 when none overlap.
func monitorAt(areas []image.Rectangle, window image.Rectangle) int {
	mid := image.Pt((window.Min.X+window.Max.X)/2, (window.Min.Y+window.Max.Y)/2)
	best, bestArea := -1, 0
	for i, a := range areas {
		if mid.In(a) {
			return i
		}
		o := a.Intersect(window)
		if n := o.Dx() * o.Dy(); n > bestArea {
			best, bestArea = i, n
		}
	}
	return best
}

// centerIn returns the position that centers size inside area.
func centerIn(area image.Rectangle, size image.Point) image.Point {
	return image.Pt(area.Min.X+(area.Dx()-size.X)/2, area.Min.Y+(area.Dy()-size.Y)/2)
}

// applySizeLimits keeps the minimum size constant in device independent
// pixels on the window's current monitor.
func applySizeLimits(win *glfw.Window) {
	scale, _ := win.GetContentScale()
	ww, _ := win.GetSize()
	fw, _ := win.GetFramebufferSize()
	win.SetSizeLimits(
		scaledLimit(minWidth, scale, ww, fw),
		scaledLimit(minHeight, scale, ww, fw),
		glfw.DontCare, glfw.DontCare)
}

// scaledLimit converts a limit in 96 DPI pixels to screen coordinates.
// Screen coordinates are pixels on some platforms and points on others, so
// the framebuffer to window ratio is divided back out.
func scaledLimit(base int, scale float32, windowW, framebufferW int) int {
	if scale <= 0 {
		scale = 1
	}
	ratio := 1.0
	if windowW > 0 && framebufferW > 0 {
		ratio = float64(framebufferW) / float64(windowW)
	}
	return max(int(math.Round(float64(base)*float64(scale)/ratio)), 1)
}

func dpiFromScale(scale float32) int {
	return max(int(math.Round(float64(scale)*baseDPI)), 1)
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// Destroy releases the native handles and the window and terminates GLFW.
func (g *GLFWWindow) Destroy() {
	g.native.release()
	g.w.Destroy()
	glfw.Terminate()
}

// core.WindowHost impl
func (g *GLFWWindow) NativeWindow() uintptr  { return g.native.window() }
func (g *GLFWWindow) NativeDisplay() uintptr { return g.native.display() }

func (g *GLFWWindow) Show(visible bool) {
	if visible {
		g.w.Show()
	} else {
		g.w.Hide()
	}
}

// core.Platform impl
func (g *GLFWWindow) RequestClose()   { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FillBackground() { g.native.fill() }

func (g *GLFWWindow) ShowError(err error) {
	dialog.Message("%s", err).Title(g.title).Error()
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

func (g *GLFWWindow) DPI() int {
	x, _ := g.w.GetContentScale()
	return dpiFromScale(x)
}

func translateKey(k glfw.Key) core.Key {
	switch k {
	case glfw.KeyEscape:
		return core.KeyEscape
	default:
		return core.KeyUnknown
	}
}
