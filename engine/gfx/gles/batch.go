package gles

import "fmt"

// BatchKind generates and deletes a group of GL object names in one call.
type BatchKind interface {
	generate(f Functions, names []uint32)
	delete(f Functions, names []uint32)
	noun() string
}

type (
	BufferKind      struct{}
	TextureKind     struct{}
	VertexArrayKind struct{}
)

func (BufferKind) generate(f Functions, names []uint32) { f.GenBuffers(names) }
func (BufferKind) delete(f Functions, names []uint32)   { f.DeleteBuffers(names) }
func (BufferKind) noun() string                         { return "buffer object names" }

func (TextureKind) generate(f Functions, names []uint32) { f.GenTextures(names) }
func (TextureKind) delete(f Functions, names []uint32)   { f.DeleteTextures(names) }
func (TextureKind) noun() string                         { return "texture names" }

func (VertexArrayKind) generate(f Functions, names []uint32) { f.GenVertexArrays(names) }
func (VertexArrayKind) delete(f Functions, names []uint32)   { f.DeleteVertexArrays(names) }
func (VertexArrayKind) noun() string                         { return "vertex array object names" }

// Batch owns N names that were generated together and are deleted together.
type Batch[K BatchKind] struct {
	f     Functions
	names []uint32
}

type (
	Buffers      = Batch[BufferKind]
	Textures     = Batch[TextureKind]
	VertexArrays = Batch[VertexArrayKind]
)

// NewBatch generates n names with a single GL call.
func NewBatch[K BatchKind](f Functions, n int) (Batch[K], error) {
	if n <= 0 {
		return Batch[K]{f: f}, nil
	}
	var k K
	names := make([]uint32, n)
	k.generate(f, names)
	if err := Check(f, "Could not generate "+k.noun()); err != nil {
		return Batch[K]{}, err
	}
	return Batch[K]{f: f, names: names}, nil
}

func NewBuffers(f Functions, n int) (Buffers, error) { return NewBatch[BufferKind](f, n) }

func NewTextures(f Functions, n int) (Textures, error) { return NewBatch[TextureKind](f, n) }

func NewVertexArrays(f Functions, n int) (VertexArrays, error) {
	return NewBatch[VertexArrayKind](f, n)
}

func (b *Batch[K]) Len() int { return len(b.names) }

// At returns the i-th name, or ErrIndexOutOfRange.
func (b *Batch[K]) At(i int) (uint32, error) {
	if i < 0 || i >= len(b.names) {
		var k K
		return 0, fmt.Errorf("%s[%d] of %d: %w", k.noun(), i, len(b.names), ErrIndexOutOfRange)
	}
	return b.names[i], nil
}

// Index returns the i-th name without the error return; it panics when i is
// out of range.
func (b *Batch[K]) Index(i int) uint32 { return b.names[i] }

// Move transfers the whole batch and leaves b empty.
func (b *Batch[K]) Move() Batch[K] {
	out := Batch[K]{f: b.f, names: b.names}
	b.names = nil
	return out
}

// Close deletes every name in one call.
func (b *Batch[K]) Close() {
	if len(b.names) == 0 {
		return
	}
	var k K
	k.delete(b.f, b.names)
	b.names = nil
}
