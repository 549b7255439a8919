package main

import (
	"errors"
	"unsafe"

	"github.com/hubastard/grove-gles/engine/assets"
	"github.com/hubastard/grove-gles/engine/colors"
	"github.com/hubastard/grove-gles/engine/gfx/gles"
)

const floatSize = 4

// Position (xy) followed by color (rgb).
var vertices = []float32{
	0.0, 0.5, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.0, 1.0, 0.0,
	-0.5, -0.5, 0.0, 0.0, 1.0,
}

var elements = []uint32{0, 1, 2}

// triangleScene draws one colored triangle.
type triangleScene struct {
	gl        gles.Functions
	clear     colors.Color
	shaderDir string

	vao     gles.VertexArrays
	vbo     gles.Buffers
	program *gles.Program
}

func (s *triangleScene) Create(width, height, dpi int) (err error) {
	defer func() {
		if err != nil {
			s.Destroy()
		}
	}()

	s.gl.Enable(gles.BLEND)
	s.gl.Enable(gles.DEPTH_TEST)
	s.gl.BlendFunc(gles.SRC_ALPHA, gles.ONE_MINUS_SRC_ALPHA)
	s.gl.ClearColor(s.clear.RGBA())

	vert, frag, err := assets.ShaderPair(s.shaderDir, "triangle")
	if err != nil {
		return err
	}
	if s.vao, err = gles.NewVertexArrays(s.gl, 1); err != nil {
		return err
	}
	if s.vbo, err = gles.NewBuffers(s.gl, 2); err != nil {
		return err
	}
	if s.program, err = gles.NewProgram(s.gl, vert, frag); err != nil {
		return err
	}

	s.program.Use()
	position := s.program.Attribute("position")
	color := s.program.Attribute("color")
	if position < 0 || color < 0 {
		return errors.New("triangle program lacks the position or color attribute")
	}

	s.gl.BindBuffer(gles.ARRAY_BUFFER, s.vbo.Index(0))
	s.gl.BufferData(gles.ARRAY_BUFFER, len(vertices)*floatSize, unsafe.Pointer(&vertices[0]), gles.STATIC_DRAW)
	s.gl.BindBuffer(gles.ELEMENT_ARRAY_BUFFER, s.vbo.Index(1))
	s.gl.BufferData(gles.ELEMENT_ARRAY_BUFFER, len(elements)*4, unsafe.Pointer(&elements[0]), gles.STATIC_DRAW)

	// The VAO captures the enabled attributes with their layout and the
	// bound element buffer.
	s.gl.BindVertexArray(s.vao.Index(0))
	s.gl.BindBuffer(gles.ARRAY_BUFFER, s.vbo.Index(0))
	s.gl.BindBuffer(gles.ELEMENT_ARRAY_BUFFER, s.vbo.Index(1))
	s.gl.EnableVertexAttribArray(uint32(position))
	s.gl.VertexAttribPointer(uint32(position), 2, gles.FLOAT, false, 5*floatSize, 0)
	s.gl.EnableVertexAttribArray(uint32(color))
	s.gl.VertexAttribPointer(uint32(color), 3, gles.FLOAT, false, 5*floatSize, 2*floatSize)
	s.gl.BindVertexArray(0)

	return gles.Check(s.gl, "Could not create scene")
}

func (s *triangleScene) Resize(width, height, dpi int) error {
	s.gl.Viewport(0, 0, int32(width), int32(height))
	return nil
}

func (s *triangleScene) Render() error {
	s.gl.Clear(gles.COLOR_BUFFER_BIT | gles.DEPTH_BUFFER_BIT)
	s.program.Use()
	s.gl.BindVertexArray(s.vao.Index(0))
	s.gl.DrawElements(gles.TRIANGLES, int32(len(elements)), gles.UNSIGNED_INT, 0)
	return nil
}

func (s *triangleScene) Destroy() {
	if s.program != nil {
		s.program.Close()
		s.program = nil
	}
	s.vbo.Close()
	s.vao.Close()
}
