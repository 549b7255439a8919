// Package eglbinding loads the system EGL library at run time and exposes it
// as an egl.API. No cgo is involved: symbols are resolved with purego.
package eglbinding

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/hubastard/grove-gles/engine/egl"
)

// Library is egl.API backed by libEGL.
type Library struct {
	handle uintptr

	eglGetError              func() int32
	eglGetProcAddress        func(name *byte) uintptr
	eglGetDisplay            func(native uintptr) uintptr
	eglGetPlatformDisplayEXT func(platform uint32, native uintptr, attribs *int32) uintptr
	eglInitialize            func(disp uintptr, major, minor *int32) uint32
	eglChooseConfig          func(disp uintptr, attribs *int32, configs *uintptr, size int32, count *int32) uint32
	eglBindAPI               func(api uint32) uint32
	eglCreateWindowSurface   func(disp, cfg, win uintptr, attribs *int32) uintptr
	eglCreateContext         func(disp, cfg, share uintptr, attribs *int32) uintptr
	eglMakeCurrent           func(disp, draw, read, ctx uintptr) uint32
	eglSwapInterval          func(disp uintptr, interval int32) uint32
	eglSwapBuffers           func(disp, surf uintptr) uint32
	eglDestroyContext        func(disp, ctx uintptr) uint32
	eglDestroySurface        func(disp, surf uintptr) uint32
	eglTerminate             func(disp uintptr) uint32
}

var _ egl.API = (*Library)(nil)

// Load opens the first EGL library found in the platform search list and
// resolves every entry point.
func Load() (*Library, error) {
	var (
		handle uintptr
		err    error
	)
	for _, name := range libraryNames {
		handle, err = openLibrary(name)
		if err == nil {
			break
		}
	}
	if handle == 0 {
		return nil, fmt.Errorf("load EGL library %v: %w", libraryNames, err)
	}

	l := &Library{handle: handle}
	required := []struct {
		fptr any
		name string
	}{
		{&l.eglGetError, "eglGetError"},
		{&l.eglGetProcAddress, "eglGetProcAddress"},
		{&l.eglGetDisplay, "eglGetDisplay"},
		{&l.eglInitialize, "eglInitialize"},
		{&l.eglChooseConfig, "eglChooseConfig"},
		{&l.eglBindAPI, "eglBindAPI"},
		{&l.eglCreateWindowSurface, "eglCreateWindowSurface"},
		{&l.eglCreateContext, "eglCreateContext"},
		{&l.eglMakeCurrent, "eglMakeCurrent"},
		{&l.eglSwapInterval, "eglSwapInterval"},
		{&l.eglSwapBuffers, "eglSwapBuffers"},
		{&l.eglDestroyContext, "eglDestroyContext"},
		{&l.eglDestroySurface, "eglDestroySurface"},
		{&l.eglTerminate, "eglTerminate"},
	}
	for _, fn := range required {
		sym, err := lookup(handle, fn.name)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", fn.name, err)
		}
		purego.RegisterFunc(fn.fptr, sym)
	}

	// Extension entry points are only reachable through eglGetProcAddress.
	if sym := l.procAddress("eglGetPlatformDisplayEXT"); sym != 0 {
		purego.RegisterFunc(&l.eglGetPlatformDisplayEXT, sym)
	}
	return l, nil
}

// ProcAddress returns the entry point for name, or nil when the
// implementation does not export it. GL client functions resolve through
// here so they come from the same driver as the EGL context.
func (l *Library) ProcAddress(name string) unsafe.Pointer {
	addr := l.procAddress(name)
	return *(*unsafe.Pointer)(unsafe.Pointer(&addr))
}

func (l *Library) procAddress(name string) uintptr {
	cname := cstring(name)
	addr := l.eglGetProcAddress(&cname[0])
	runtime.KeepAlive(cname)
	return addr
}

func (l *Library) GetPlatformDisplay(platform egl.Enum, native egl.NativeDisplay, attribs []egl.Int) egl.Display {
	if l.eglGetPlatformDisplayEXT == nil {
		return egl.NoDisplay
	}
	d := l.eglGetPlatformDisplayEXT(uint32(platform), uintptr(native), attribList(attribs))
	runtime.KeepAlive(attribs)
	return egl.Display(d)
}

func (l *Library) GetDisplay(native egl.NativeDisplay) egl.Display {
	return egl.Display(l.eglGetDisplay(uintptr(native)))
}

func (l *Library) Initialize(d egl.Display) (egl.Int, egl.Int, bool) {
	var major, minor int32
	ok := l.eglInitialize(uintptr(d), &major, &minor) != 0
	return egl.Int(major), egl.Int(minor), ok
}

func (l *Library) ChooseConfig(d egl.Display, attribs []egl.Int) (egl.Config, egl.Int, bool) {
	var (
		cfg   uintptr
		count int32
	)
	ok := l.eglChooseConfig(uintptr(d), attribList(attribs), &cfg, 1, &count) != 0
	runtime.KeepAlive(attribs)
	return egl.Config(cfg), egl.Int(count), ok
}

func (l *Library) BindAPI(api egl.Enum) bool {
	return l.eglBindAPI(uint32(api)) != 0
}

func (l *Library) CreateWindowSurface(d egl.Display, cfg egl.Config, win egl.NativeWindow, attribs []egl.Int) egl.Surface {
	s := l.eglCreateWindowSurface(uintptr(d), uintptr(cfg), uintptr(win), attribList(attribs))
	runtime.KeepAlive(attribs)
	return egl.Surface(s)
}

func (l *Library) CreateContext(d egl.Display, cfg egl.Config, share egl.Context, attribs []egl.Int) egl.Context {
	c := l.eglCreateContext(uintptr(d), uintptr(cfg), uintptr(share), attribList(attribs))
	runtime.KeepAlive(attribs)
	return egl.Context(c)
}

func (l *Library) MakeCurrent(d egl.Display, draw, read egl.Surface, ctx egl.Context) bool {
	return l.eglMakeCurrent(uintptr(d), uintptr(draw), uintptr(read), uintptr(ctx)) != 0
}

func (l *Library) SwapInterval(d egl.Display, interval egl.Int) bool {
	return l.eglSwapInterval(uintptr(d), int32(interval)) != 0
}

func (l *Library) SwapBuffers(d egl.Display, s egl.Surface) bool {
	return l.eglSwapBuffers(uintptr(d), uintptr(s)) != 0
}

func (l *Library) DestroyContext(d egl.Display, ctx egl.Context) bool {
	return l.eglDestroyContext(uintptr(d), uintptr(ctx)) != 0
}

func (l *Library) DestroySurface(d egl.Display, s egl.Surface) bool {
	return l.eglDestroySurface(uintptr(d), uintptr(s)) != 0
}

func (l *Library) Terminate(d egl.Display) bool {
	return l.eglTerminate(uintptr(d)) != 0
}

func (l *Library) GetError() egl.Int {
	return egl.Int(l.eglGetError())
}

// attribList returns a pointer to an EGL_NONE terminated attribute list, or
// nil for an empty one.
func attribList(attribs []egl.Int) *int32 {
	if len(attribs) == 0 {
		return nil
	}
	if attribs[len(attribs)-1] != egl.NONE {
		panic("eglbinding: attribute list is not EGL_NONE terminated")
	}
	return (*int32)(&attribs[0])
}

func cstring(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}
