package gles

import "cmp"

// Kind releases a single GL object name.
type Kind interface {
	release(f Functions, name uint32)
}

type (
	ShaderKind       struct{}
	ProgramKind      struct{}
	RenderbufferKind struct{}
	FramebufferKind  struct{}
)

func (ShaderKind) release(f Functions, name uint32)       { f.DeleteShader(name) }
func (ProgramKind) release(f Functions, name uint32)      { f.DeleteProgram(name) }
func (RenderbufferKind) release(f Functions, name uint32) { f.DeleteRenderbuffers([]uint32{name}) }
func (FramebufferKind) release(f Functions, name uint32)  { f.DeleteFramebuffers([]uint32{name}) }

// Resource owns one GL object name. A live name is released exactly once,
// either by Reset or Close; the zero name is never released.
//
// A Resource has a single owner: hand it over with Move, never by copying
// the struct. go vet's copylocks check reports copies.
type Resource[K Kind] struct {
	_    noCopy
	f    Functions
	name uint32
}

// noCopy makes go vet flag values that embed it when they are copied.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Own takes ownership of name.
func Own[K Kind](f Functions, name uint32) Resource[K] {
	return Resource[K]{f: f, name: name}
}

func (r *Resource[K]) Name() uint32 { return r.name }

func (r *Resource[K]) Valid() bool { return r.name != 0 }

// Reset releases the held name, if any, and takes ownership of name.
func (r *Resource[K]) Reset(name uint32) {
	if r.name != 0 {
		var k K
		k.release(r.f, r.name)
	}
	r.name = name
}

// Close releases the held name. Closing an empty Resource is a no-op.
func (r *Resource[K]) Close() {
	r.Reset(0)
}

// Detach gives up ownership without releasing and returns the name.
func (r *Resource[K]) Detach() uint32 {
	name := r.name
	r.name = 0
	return name
}

// Move transfers ownership to the returned Resource and leaves r empty.
func (r *Resource[K]) Move() Resource[K] {
	name := r.name
	r.name = 0
	return Resource[K]{f: r.f, name: name}
}

func (r *Resource[K]) Equal(o *Resource[K]) bool { return r.name == o.name }

// Compare orders resources by their GL names.
func (r *Resource[K]) Compare(o *Resource[K]) int { return cmp.Compare(r.name, o.name) }
