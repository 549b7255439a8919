package core_test

import (
	"fmt"

	"github.com/hubastard/grove-gles/engine/core"
	"github.com/hubastard/grove-gles/engine/gfx/gles/glestest"
)

type fakeHost struct {
	shown   []bool
	closes  int
	fills   int
	errs    []error
	window  uintptr
	display uintptr
}

func (h *fakeHost) NativeWindow() uintptr  { return h.window }
func (h *fakeHost) NativeDisplay() uintptr { return h.display }
func (h *fakeHost) Show(visible bool)      { h.shown = append(h.shown, visible) }
func (h *fakeHost) RequestClose()          { h.closes++ }
func (h *fakeHost) FillBackground()        { h.fills++ }
func (h *fakeHost) ShowError(err error)    { h.errs = append(h.errs, err) }

// fakeScene records its callbacks and the framebuffer bound while rendering.
type fakeScene struct {
	gl *glestest.Functions

	created   []string
	resized   []string
	rendered  int
	destroyed int
	drawFBO   []uint32

	createErr error
	resizeErr error
	renderErr error
}

var _ core.Scene = (*fakeScene)(nil)

func (s *fakeScene) Create(w, h, dpi int) error {
	s.created = append(s.created, fmt.Sprintf("%dx%d@%d", w, h, dpi))
	return s.createErr
}

func (s *fakeScene) Resize(w, h, dpi int) error {
	s.resized = append(s.resized, fmt.Sprintf("%dx%d@%d", w, h, dpi))
	return s.resizeErr
}

func (s *fakeScene) Render() error {
	s.rendered++
	if s.gl != nil {
		s.drawFBO = append(s.drawFBO, s.gl.DrawFramebuffer)
	}
	return s.renderErr
}

func (s *fakeScene) Destroy() { s.destroyed++ }

// fakeLifecycle records lifecycle calls and fails the ones listed in errs.
type fakeLifecycle struct {
	calls []string
	errs  map[string]error
}

func (l *fakeLifecycle) record(call string, name string) error {
	l.calls = append(l.calls, call)
	return l.errs[name]
}

func (l *fakeLifecycle) OnCreate(w, h, dpi int) error {
	return l.record(fmt.Sprintf("create %dx%d@%d", w, h, dpi), "create")
}

func (l *fakeLifecycle) OnResize(w, h, dpi int) error {
	return l.record(fmt.Sprintf("resize %dx%d@%d", w, h, dpi), "resize")
}

func (l *fakeLifecycle) OnRender() error  { return l.record("render", "render") }
func (l *fakeLifecycle) OnDestroy() error { return l.record("destroy", "destroy") }

// fakeWindow replays a script of events, one batch per PollEvents, and
// closes once the script is exhausted or RequestClose was called.
type fakeWindow struct {
	fakeHost
	w, h, dpi int
	script    [][]core.Event
	cb        func(core.Event)
	polls     int
}

func (w *fakeWindow) PollEvents() {
	if w.polls < len(w.script) {
		for _, ev := range w.script[w.polls] {
			w.cb(ev)
		}
	}
	w.polls++
}

func (w *fakeWindow) ShouldClose() bool {
	return w.closes > 0 || w.polls >= len(w.script)
}

func (w *fakeWindow) FramebufferSize() (int, int)          { return w.w, w.h }
func (w *fakeWindow) DPI() int                             { return w.dpi }
func (w *fakeWindow) SetEventCallback(cb func(core.Event)) { w.cb = cb }
