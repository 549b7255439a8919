// Package egltest provides a recording egl.API implementation for tests.
package egltest

import (
	"slices"

	"github.com/hubastard/grove-gles/engine/egl"
)

// Call is one recorded EGL call.
type Call struct {
	Name string
	Args []any
}

// API is a fake EGL implementation. By default every call succeeds; Fail
// makes the next call of a given name fail with an error code.
type API struct {
	Calls []Call

	// NoPlatformDisplay makes GetPlatformDisplay behave as if the ANGLE
	// extension were missing.
	NoPlatformDisplay bool
	// ConfigCount is the number of configs ChooseConfig reports; it
	// defaults to 1.
	ConfigCount *egl.Int

	failures map[string][]egl.Code
	code     egl.Code
	next     uintptr

	Current  egl.Context
	Displays map[egl.Display]bool
	Surfaces map[egl.Surface]bool
	Contexts map[egl.Context]bool
}

var _ egl.API = (*API)(nil)

func New() *API {
	return &API{
		failures: map[string][]egl.Code{},
		code:     egl.Success,
		Displays: map[egl.Display]bool{},
		Surfaces: map[egl.Surface]bool{},
		Contexts: map[egl.Context]bool{},
	}
}

// Fail makes the next call to name fail and report code.
func (a *API) Fail(name string, code egl.Code) {
	a.failures[name] = append(a.failures[name], code)
}

// Names returns the recorded call names, optionally restricted to the
// given set.
func (a *API) Names(only ...string) []string {
	var out []string
	for _, c := range a.Calls {
		if len(only) == 0 || slices.Contains(only, c.Name) {
			out = append(out, c.Name)
		}
	}
	return out
}

// Find returns the recorded calls to name.
func (a *API) Find(name string) []Call {
	var out []Call
	for _, c := range a.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Live reports whether any display, surface or context is still alive.
func (a *API) Live() bool {
	return len(a.Displays) > 0 || len(a.Surfaces) > 0 || len(a.Contexts) > 0
}

// call records the call and reports whether it should fail.
func (a *API) call(name string, args ...any) bool {
	a.Calls = append(a.Calls, Call{Name: name, Args: args})
	if codes := a.failures[name]; len(codes) > 0 {
		a.code = codes[0]
		a.failures[name] = codes[1:]
		return false
	}
	a.code = egl.Success
	return true
}

func (a *API) handle() uintptr {
	a.next++
	return a.next
}

func (a *API) GetPlatformDisplay(platform egl.Enum, native egl.NativeDisplay, attribs []egl.Int) egl.Display {
	if !a.call("GetPlatformDisplay", platform, native, slices.Clone(attribs)) || a.NoPlatformDisplay {
		if a.code == egl.Success {
			a.code = egl.BadParameter
		}
		return egl.NoDisplay
	}
	d := egl.Display(a.handle())
	a.Displays[d] = true
	return d
}

func (a *API) GetDisplay(native egl.NativeDisplay) egl.Display {
	if !a.call("GetDisplay", native) {
		return egl.NoDisplay
	}
	d := egl.Display(a.handle())
	a.Displays[d] = true
	return d
}

func (a *API) Initialize(d egl.Display) (egl.Int, egl.Int, bool) {
	if !a.call("Initialize", d) {
		return 0, 0, false
	}
	return 1, 5, true
}

func (a *API) ChooseConfig(d egl.Display, attribs []egl.Int) (egl.Config, egl.Int, bool) {
	if !a.call("ChooseConfig", d, slices.Clone(attribs)) {
		return 0, 0, false
	}
	count := egl.Int(1)
	if a.ConfigCount != nil {
		count = *a.ConfigCount
	}
	if count == 0 {
		return 0, 0, true
	}
	return egl.Config(a.handle()), count, true
}

func (a *API) BindAPI(api egl.Enum) bool {
	return a.call("BindAPI", api)
}

func (a *API) CreateWindowSurface(d egl.Display, cfg egl.Config, win egl.NativeWindow, attribs []egl.Int) egl.Surface {
	if !a.call("CreateWindowSurface", d, cfg, win) {
		return egl.NoSurface
	}
	s := egl.Surface(a.handle())
	a.Surfaces[s] = true
	return s
}

func (a *API) CreateContext(d egl.Display, cfg egl.Config, share egl.Context, attribs []egl.Int) egl.Context {
	if !a.call("CreateContext", d, cfg, share, slices.Clone(attribs)) {
		return egl.NoContext
	}
	c := egl.Context(a.handle())
	a.Contexts[c] = true
	return c
}

func (a *API) MakeCurrent(d egl.Display, draw, read egl.Surface, ctx egl.Context) bool {
	if !a.call("MakeCurrent", d, draw, read, ctx) {
		return false
	}
	a.Current = ctx
	return true
}

func (a *API) SwapInterval(d egl.Display, interval egl.Int) bool {
	return a.call("SwapInterval", d, interval)
}

func (a *API) SwapBuffers(d egl.Display, s egl.Surface) bool {
	return a.call("SwapBuffers", d, s)
}

func (a *API) DestroyContext(d egl.Display, ctx egl.Context) bool {
	if !a.call("DestroyContext", d, ctx) {
		return false
	}
	delete(a.Contexts, ctx)
	return true
}

func (a *API) DestroySurface(d egl.Display, s egl.Surface) bool {
	if !a.call("DestroySurface", d, s) {
		return false
	}
	delete(a.Surfaces, s)
	return true
}

func (a *API) Terminate(d egl.Display) bool {
	if !a.call("Terminate", d) {
		return false
	}
	delete(a.Displays, d)
	return true
}

func (a *API) GetError() egl.Int {
	code := a.code
	a.code = egl.Success
	return egl.Int(code)
}
