// Package glbinding implements gles.Functions on top of the cgo OpenGL ES
// bindings from go-gl. Init must run once a context is current.
//
// Entry points are resolved through the Loader given to New rather than the
// platform default (WGL, GLX or CGL), which knows nothing about EGL contexts.
// The v3.1 bindings treat every OpenGL ES 3.1 function as required.
package glbinding

import (
	"errors"
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/hubastard/grove-gles/engine/gfx/gles"
)

// Loader resolves a GL entry point by name, returning nil when it is absent.
type Loader interface {
	ProcAddress(name string) unsafe.Pointer
}

// Functions is the native GL function table.
type Functions struct {
	loader Loader
}

var _ gles.Functions = Functions{}

// New returns a function table whose entry points come from loader.
func New(loader Loader) Functions {
	return Functions{loader: loader}
}

// Init loads the GL entry points for the current context.
func (f Functions) Init() error {
	if f.loader == nil {
		return errors.New("no entry point loader")
	}
	if err := gl.InitWithProcAddrFunc(f.loader.ProcAddress); err != nil {
		return fmt.Errorf("resolve %w", err)
	}
	return nil
}

func (Functions) GetError() gles.Enum { return gl.GetError() }

func (Functions) GetString(name gles.Enum) string {
	if s := gl.GetString(name); s != nil {
		return gl.GoStr(s)
	}
	return ""
}

func (Functions) GenBuffers(names []uint32) {
	if len(names) > 0 {
		gl.GenBuffers(int32(len(names)), &names[0])
	}
}

func (Functions) DeleteBuffers(names []uint32) {
	if len(names) > 0 {
		gl.DeleteBuffers(int32(len(names)), &names[0])
	}
}

func (Functions) GenTextures(names []uint32) {
	if len(names) > 0 {
		gl.GenTextures(int32(len(names)), &names[0])
	}
}

func (Functions) DeleteTextures(names []uint32) {
	if len(names) > 0 {
		gl.DeleteTextures(int32(len(names)), &names[0])
	}
}

func (Functions) GenVertexArrays(names []uint32) {
	if len(names) > 0 {
		gl.GenVertexArrays(int32(len(names)), &names[0])
	}
}

func (Functions) DeleteVertexArrays(names []uint32) {
	if len(names) > 0 {
		gl.DeleteVertexArrays(int32(len(names)), &names[0])
	}
}

func (Functions) GenRenderbuffers(names []uint32) {
	if len(names) > 0 {
		gl.GenRenderbuffers(int32(len(names)), &names[0])
	}
}

func (Functions) DeleteRenderbuffers(names []uint32) {
	if len(names) > 0 {
		gl.DeleteRenderbuffers(int32(len(names)), &names[0])
	}
}

func (Functions) GenFramebuffers(names []uint32) {
	if len(names) > 0 {
		gl.GenFramebuffers(int32(len(names)), &names[0])
	}
}

func (Functions) DeleteFramebuffers(names []uint32) {
	if len(names) > 0 {
		gl.DeleteFramebuffers(int32(len(names)), &names[0])
	}
}

func (Functions) BindBuffer(target gles.Enum, buffer uint32) { gl.BindBuffer(target, buffer) }

func (Functions) BufferData(target gles.Enum, size int, data unsafe.Pointer, usage gles.Enum) {
	gl.BufferData(target, size, data, usage)
}

func (Functions) BindVertexArray(array uint32) { gl.BindVertexArray(array) }

func (Functions) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (Functions) VertexAttribPointer(index uint32, size int32, typ gles.Enum, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, typ, normalized, stride, gl.PtrOffset(offset))
}

func (Functions) BindRenderbuffer(target gles.Enum, renderbuffer uint32) {
	gl.BindRenderbuffer(target, renderbuffer)
}

func (Functions) RenderbufferStorageMultisample(target gles.Enum, samples int32, format gles.Enum, width, height int32) {
	gl.RenderbufferStorageMultisample(target, samples, format, width, height)
}

func (Functions) BindFramebuffer(target gles.Enum, framebuffer uint32) {
	gl.BindFramebuffer(target, framebuffer)
}

func (Functions) FramebufferRenderbuffer(target, attachment, rbTarget gles.Enum, renderbuffer uint32) {
	gl.FramebufferRenderbuffer(target, attachment, rbTarget, renderbuffer)
}

func (Functions) CheckFramebufferStatus(target gles.Enum) gles.Enum {
	return gl.CheckFramebufferStatus(target)
}

func (Functions) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter gles.Enum) {
	gl.BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter)
}

func (Functions) CreateShader(stage gles.Enum) uint32 { return gl.CreateShader(stage) }

func (Functions) ShaderSource(shader uint32, source string) {
	csrc, free := gl.Strs(source + "\x00")
	defer free()
	length := int32(len(source))
	gl.ShaderSource(shader, 1, csrc, &length)
}

func (Functions) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Functions) GetShaderi(shader uint32, pname gles.Enum) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (Functions) GetShaderInfoLog(shader uint32, size int32) string {
	if size <= 0 {
		return ""
	}
	buf := make([]byte, size)
	var n int32
	gl.GetShaderInfoLog(shader, size, &n, &buf[0])
	return string(buf[:n])
}

func (Functions) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (Functions) CreateProgram() uint32 { return gl.CreateProgram() }

func (Functions) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (Functions) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }

func (Functions) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (Functions) GetProgrami(program uint32, pname gles.Enum) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (Functions) GetProgramInfoLog(program uint32, size int32) string {
	if size <= 0 {
		return ""
	}
	buf := make([]byte, size)
	var n int32
	gl.GetProgramInfoLog(program, size, &n, &buf[0])
	return string(buf[:n])
}

func (Functions) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (Functions) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Functions) UseProgram(program uint32) { gl.UseProgram(program) }

func (Functions) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (Functions) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (Functions) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (Functions) Clear(mask gles.Enum) { gl.Clear(mask) }

func (Functions) Enable(capability gles.Enum) { gl.Enable(capability) }

func (Functions) BlendFunc(sfactor, dfactor gles.Enum) { gl.BlendFunc(sfactor, dfactor) }

func (Functions) DrawElements(mode gles.Enum, count int32, typ gles.Enum, offset int) {
	gl.DrawElements(mode, count, typ, gl.PtrOffset(offset))
}
