// Package gles wraps the OpenGL ES 3 calls used by the application:
// ownership of GL object names, error translation and shader/program
// compilation. Calls go through the Functions table so the same code runs
// on a real context (package glbinding) or under test.
package gles

import "unsafe"

type Enum = uint32

// https://www.khronos.org/registry/OpenGL/api/GLES3/gl3.h
const (
	FALSE = 0
	TRUE  = 1

	NO_ERROR                      Enum = 0
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506

	DEPTH_BUFFER_BIT Enum = 0x0100
	COLOR_BUFFER_BIT Enum = 0x4000

	TRIANGLES           Enum = 0x0004
	SRC_ALPHA           Enum = 0x0302
	ONE_MINUS_SRC_ALPHA Enum = 0x0303
	DEPTH_TEST          Enum = 0x0B71
	BLEND               Enum = 0x0BE2
	VERSION             Enum = 0x1F02
	UNSIGNED_INT        Enum = 0x1405
	FLOAT               Enum = 0x1406
	NEAREST             Enum = 0x2600
	RGBA8               Enum = 0x8058

	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	STATIC_DRAW          Enum = 0x88E4

	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82
	INFO_LOG_LENGTH Enum = 0x8B84

	READ_FRAMEBUFFER     Enum = 0x8CA8
	DRAW_FRAMEBUFFER     Enum = 0x8CA9
	FRAMEBUFFER_COMPLETE Enum = 0x8CD5
	COLOR_ATTACHMENT0    Enum = 0x8CE0
	FRAMEBUFFER          Enum = 0x8D40
	RENDERBUFFER         Enum = 0x8D41
)

// Functions is the OpenGL ES function table. Batch calls (Gen*/Delete*)
// operate on every name of the slice in a single native call.
type Functions interface {
	GetError() Enum
	GetString(name Enum) string

	GenBuffers(names []uint32)
	DeleteBuffers(names []uint32)
	GenTextures(names []uint32)
	DeleteTextures(names []uint32)
	GenVertexArrays(names []uint32)
	DeleteVertexArrays(names []uint32)
	GenRenderbuffers(names []uint32)
	DeleteRenderbuffers(names []uint32)
	GenFramebuffers(names []uint32)
	DeleteFramebuffers(names []uint32)

	BindBuffer(target Enum, buffer uint32)
	BufferData(target Enum, size int, data unsafe.Pointer, usage Enum)
	BindVertexArray(array uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, typ Enum, normalized bool, stride int32, offset int)

	BindRenderbuffer(target Enum, renderbuffer uint32)
	RenderbufferStorageMultisample(target Enum, samples int32, format Enum, width, height int32)
	BindFramebuffer(target Enum, framebuffer uint32)
	FramebufferRenderbuffer(target, attachment, rbTarget Enum, renderbuffer uint32)
	CheckFramebufferStatus(target Enum) Enum
	BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter Enum)

	CreateShader(stage Enum) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname Enum) int32
	GetShaderInfoLog(shader uint32, size int32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname Enum) int32
	GetProgramInfoLog(program uint32, size int32) string
	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Enable(capability Enum)
	BlendFunc(sfactor, dfactor Enum)
	DrawElements(mode Enum, count int32, typ Enum, offset int)
}
