// Package glestest provides a recording gles.Functions implementation for
// tests. It tracks object lifetimes, framebuffer bindings and renderbuffer
// storage, and lets a test inject GL errors after specific calls.
package glestest

import (
	"regexp"
	"slices"
	"strings"
	"unsafe"

	"github.com/hubastard/grove-gles/engine/gfx/gles"
)

// BadToken makes a shader fail to compile when it appears in its source.
const BadToken = "#error"

// Call is one recorded GL call.
type Call struct {
	Name string
	Args []any
}

type shader struct {
	stage  gles.Enum
	source string
	status int32
}

type program struct {
	attached []uint32
	attribs  []string
	uniforms []string
	status   int32
}

// Functions is a fake GL function table.
type Functions struct {
	Calls []Call

	// InfoLog is returned for failed compiles and links.
	InfoLog string
	// LinkFails makes every LinkProgram fail.
	LinkFails bool
	// Status is returned by CheckFramebufferStatus; zero means complete.
	Status gles.Enum
	// Initialized is set by Init.
	Initialized bool

	pending []gles.Enum
	inject  map[string][]gles.Enum
	next    uint32

	live     map[uint32]string
	shaders  map[uint32]*shader
	programs map[uint32]*program

	// Storage maps a renderbuffer to its multisample storage (w, h, samples).
	Storage map[uint32][3]int32

	Renderbuffer    uint32
	ReadFramebuffer uint32
	DrawFramebuffer uint32
	Program         uint32
}

var _ gles.Functions = (*Functions)(nil)

// New returns an empty fake.
func New() *Functions {
	return &Functions{
		inject:   map[string][]gles.Enum{},
		live:     map[uint32]string{},
		shaders:  map[uint32]*shader{},
		programs: map[uint32]*program{},
		Storage:  map[uint32][3]int32{},
	}
}

// Fail raises code as a GL error right after the next call to name.
func (f *Functions) Fail(name string, code gles.Enum) {
	f.inject[name] = append(f.inject[name], code)
}

// Raise sets a pending GL error flag immediately.
func (f *Functions) Raise(code gles.Enum) {
	f.pending = append(f.pending, code)
}

// Names returns the recorded call names, optionally restricted to the
// given set.
func (f *Functions) Names(only ...string) []string {
	var out []string
	for _, c := range f.Calls {
		if len(only) == 0 || slices.Contains(only, c.Name) {
			out = append(out, c.Name)
		}
	}
	return out
}

// Count returns how many times name was called.
func (f *Functions) Count(name string) int {
	return len(f.Names(name))
}

// Find returns the recorded calls to name.
func (f *Functions) Find(name string) []Call {
	var out []Call
	for _, c := range f.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Live returns the number of live objects of a kind ("buffer", "texture",
// "vertexarray", "renderbuffer", "framebuffer", "shader", "program").
func (f *Functions) Live(kind string) int {
	n := 0
	for _, k := range f.live {
		if k == kind {
			n++
		}
	}
	return n
}

// Reset forgets the recorded calls but keeps object state.
func (f *Functions) Reset() { f.Calls = nil }

func (f *Functions) record(name string, args ...any) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args})
	if codes := f.inject[name]; len(codes) > 0 {
		f.pending = append(f.pending, codes[0])
		f.inject[name] = codes[1:]
	}
}

func (f *Functions) gen(kind string, names []uint32) {
	for i := range names {
		f.next++
		names[i] = f.next
		f.live[f.next] = kind
	}
}

func (f *Functions) del(kind string, names []uint32) {
	for _, n := range names {
		if f.live[n] == kind {
			delete(f.live, n)
		}
	}
}

func (f *Functions) Init() error {
	f.Initialized = true
	return nil
}

func (f *Functions) GetError() gles.Enum {
	if len(f.pending) == 0 {
		return gles.NO_ERROR
	}
	code := f.pending[0]
	f.pending = f.pending[1:]
	return code
}

func (f *Functions) GetString(name gles.Enum) string {
	f.record("GetString", name)
	if name == gles.VERSION {
		return "OpenGL ES 3.0 (glestest)"
	}
	return ""
}

func (f *Functions) GenBuffers(names []uint32) {
	f.gen("buffer", names)
	f.record("GenBuffers", slices.Clone(names))
}

func (f *Functions) DeleteBuffers(names []uint32) {
	f.record("DeleteBuffers", slices.Clone(names))
	f.del("buffer", names)
}

func (f *Functions) GenTextures(names []uint32) {
	f.gen("texture", names)
	f.record("GenTextures", slices.Clone(names))
}

func (f *Functions) DeleteTextures(names []uint32) {
	f.record("DeleteTextures", slices.Clone(names))
	f.del("texture", names)
}

func (f *Functions) GenVertexArrays(names []uint32) {
	f.gen("vertexarray", names)
	f.record("GenVertexArrays", slices.Clone(names))
}

func (f *Functions) DeleteVertexArrays(names []uint32) {
	f.record("DeleteVertexArrays", slices.Clone(names))
	f.del("vertexarray", names)
}

func (f *Functions) GenRenderbuffers(names []uint32) {
	f.gen("renderbuffer", names)
	f.record("GenRenderbuffers", slices.Clone(names))
}

func (f *Functions) DeleteRenderbuffers(names []uint32) {
	f.record("DeleteRenderbuffers", slices.Clone(names))
	f.del("renderbuffer", names)
	for _, n := range names {
		delete(f.Storage, n)
	}
}

func (f *Functions) GenFramebuffers(names []uint32) {
	f.gen("framebuffer", names)
	f.record("GenFramebuffers", slices.Clone(names))
}

func (f *Functions) DeleteFramebuffers(names []uint32) {
	f.record("DeleteFramebuffers", slices.Clone(names))
	f.del("framebuffer", names)
}

func (f *Functions) BindBuffer(target gles.Enum, buffer uint32) {
	f.record("BindBuffer", target, buffer)
}

func (f *Functions) BufferData(target gles.Enum, size int, data unsafe.Pointer, usage gles.Enum) {
	f.record("BufferData", target, size, usage)
}

func (f *Functions) BindVertexArray(array uint32) {
	f.record("BindVertexArray", array)
}

func (f *Functions) EnableVertexAttribArray(index uint32) {
	f.record("EnableVertexAttribArray", index)
}

func (f *Functions) VertexAttribPointer(index uint32, size int32, typ gles.Enum, normalized bool, stride int32, offset int) {
	f.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
}

func (f *Functions) BindRenderbuffer(target gles.Enum, renderbuffer uint32) {
	f.record("BindRenderbuffer", target, renderbuffer)
	f.Renderbuffer = renderbuffer
}

func (f *Functions) RenderbufferStorageMultisample(target gles.Enum, samples int32, format gles.Enum, width, height int32) {
	f.record("RenderbufferStorageMultisample", target, samples, format, width, height)
	if f.Renderbuffer == 0 {
		f.Raise(gles.INVALID_OPERATION)
		return
	}
	f.Storage[f.Renderbuffer] = [3]int32{width, height, samples}
}

func (f *Functions) BindFramebuffer(target gles.Enum, framebuffer uint32) {
	f.record("BindFramebuffer", target, framebuffer)
	switch target {
	case gles.FRAMEBUFFER:
		f.ReadFramebuffer, f.DrawFramebuffer = framebuffer, framebuffer
	case gles.READ_FRAMEBUFFER:
		f.ReadFramebuffer = framebuffer
	case gles.DRAW_FRAMEBUFFER:
		f.DrawFramebuffer = framebuffer
	}
}

func (f *Functions) FramebufferRenderbuffer(target, attachment, rbTarget gles.Enum, renderbuffer uint32) {
	f.record("FramebufferRenderbuffer", target, attachment, rbTarget, renderbuffer)
}

func (f *Functions) CheckFramebufferStatus(target gles.Enum) gles.Enum {
	f.record("CheckFramebufferStatus", target)
	if f.Status == 0 {
		return gles.FRAMEBUFFER_COMPLETE
	}
	return f.Status
}

func (f *Functions) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter gles.Enum) {
	f.record("BlitFramebuffer", srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter,
		f.ReadFramebuffer, f.DrawFramebuffer)
}

func (f *Functions) CreateShader(stage gles.Enum) uint32 {
	var name [1]uint32
	f.gen("shader", name[:])
	f.shaders[name[0]] = &shader{stage: stage}
	f.record("CreateShader", stage)
	return name[0]
}

func (f *Functions) ShaderSource(sh uint32, source string) {
	f.record("ShaderSource", sh, source)
	if s, ok := f.shaders[sh]; ok {
		s.source = source
	}
}

func (f *Functions) CompileShader(sh uint32) {
	f.record("CompileShader", sh)
	if s, ok := f.shaders[sh]; ok {
		s.status = gles.TRUE
		if strings.Contains(s.source, BadToken) {
			s.status = gles.FALSE
		}
	}
}

func (f *Functions) GetShaderi(sh uint32, pname gles.Enum) int32 {
	f.record("GetShaderi", sh, pname)
	s, ok := f.shaders[sh]
	if !ok {
		f.Raise(gles.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gles.COMPILE_STATUS:
		return s.status
	case gles.INFO_LOG_LENGTH:
		return int32(len(f.InfoLog))
	}
	return 0
}

func (f *Functions) GetShaderInfoLog(sh uint32, size int32) string {
	f.record("GetShaderInfoLog", sh, size)
	return truncate(f.InfoLog, size)
}

func (f *Functions) DeleteShader(sh uint32) {
	f.record("DeleteShader", sh)
	delete(f.shaders, sh)
	f.del("shader", []uint32{sh})
}

func (f *Functions) CreateProgram() uint32 {
	var name [1]uint32
	f.gen("program", name[:])
	f.programs[name[0]] = &program{}
	f.record("CreateProgram")
	return name[0]
}

func (f *Functions) AttachShader(prog, sh uint32) {
	f.record("AttachShader", prog, sh)
	if p, ok := f.programs[prog]; ok {
		p.attached = append(p.attached, sh)
	}
}

func (f *Functions) DetachShader(prog, sh uint32) {
	f.record("DetachShader", prog, sh)
	if p, ok := f.programs[prog]; ok {
		p.attached = slices.DeleteFunc(p.attached, func(n uint32) bool { return n == sh })
	}
}

var (
	inDecl      = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?in\s+\w+\s+(\w+)\s*;`)
	uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*;`)
)

func (f *Functions) LinkProgram(prog uint32) {
	f.record("LinkProgram", prog)
	p, ok := f.programs[prog]
	if !ok {
		f.Raise(gles.INVALID_VALUE)
		return
	}
	p.status = gles.TRUE
	if f.LinkFails {
		p.status = gles.FALSE
		return
	}
	p.attribs, p.uniforms = nil, nil
	for _, sh := range p.attached {
		s := f.shaders[sh]
		if s == nil {
			continue
		}
		if s.stage == gles.VERTEX_SHADER {
			for _, m := range inDecl.FindAllStringSubmatch(s.source, -1) {
				p.attribs = append(p.attribs, m[1])
			}
		}
		for _, m := range uniformDecl.FindAllStringSubmatch(s.source, -1) {
			p.uniforms = append(p.uniforms, m[1])
		}
	}
}

func (f *Functions) GetProgrami(prog uint32, pname gles.Enum) int32 {
	f.record("GetProgrami", prog, pname)
	p, ok := f.programs[prog]
	if !ok {
		f.Raise(gles.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gles.LINK_STATUS:
		return p.status
	case gles.INFO_LOG_LENGTH:
		return int32(len(f.InfoLog))
	}
	return 0
}

func (f *Functions) GetProgramInfoLog(prog uint32, size int32) string {
	f.record("GetProgramInfoLog", prog, size)
	return truncate(f.InfoLog, size)
}

func (f *Functions) GetAttribLocation(prog uint32, name string) int32 {
	f.record("GetAttribLocation", prog, name)
	if p, ok := f.programs[prog]; ok {
		return int32(slices.Index(p.attribs, name))
	}
	f.Raise(gles.INVALID_OPERATION)
	return -1
}

func (f *Functions) GetUniformLocation(prog uint32, name string) int32 {
	f.record("GetUniformLocation", prog, name)
	if p, ok := f.programs[prog]; ok {
		return int32(slices.Index(p.uniforms, name))
	}
	f.Raise(gles.INVALID_OPERATION)
	return -1
}

func (f *Functions) UseProgram(prog uint32) {
	f.record("UseProgram", prog)
	f.Program = prog
}

func (f *Functions) DeleteProgram(prog uint32) {
	f.record("DeleteProgram", prog)
	delete(f.programs, prog)
	f.del("program", []uint32{prog})
}

func (f *Functions) Viewport(x, y, width, height int32) {
	f.record("Viewport", x, y, width, height)
}

func (f *Functions) ClearColor(r, g, b, a float32) {
	f.record("ClearColor", r, g, b, a)
}

func (f *Functions) Clear(mask gles.Enum) {
	f.record("Clear", mask)
}

func (f *Functions) Enable(capability gles.Enum) {
	f.record("Enable", capability)
}

func (f *Functions) BlendFunc(sfactor, dfactor gles.Enum) {
	f.record("BlendFunc", sfactor, dfactor)
}

func (f *Functions) DrawElements(mode gles.Enum, count int32, typ gles.Enum, offset int) {
	f.record("DrawElements", mode, count, typ, offset, f.DrawFramebuffer)
}

func truncate(s string, n int32) string {
	if int(n) < len(s) {
		return s[:n]
	}
	return s
}
