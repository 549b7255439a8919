package gles

import (
	"fmt"
	"strings"
)

// Program is a linked program object. It is immutable once constructed.
type Program struct {
	f   Functions
	res Resource[ProgramKind]
}

// LinkError carries the linker log and the sources of every attached stage.
type LinkError struct {
	Log     string
	Sources []string
}

func (e *LinkError) Error() string {
	return "Program linking failed.\n" + e.Log + "\n\n" + strings.Join(e.Sources, "\n\n")
}

// Link attaches vert and frag to a new program, links it and detaches both
// shaders again so they can be deleted independently.
func Link(f Functions, vert, frag *Shader) (*Program, error) {
	p := &Program{f: f, res: Own[ProgramKind](f, f.CreateProgram())}
	fail := func(err error) (*Program, error) {
		p.Close()
		return nil, err
	}
	if err := Check(f, "Could not create program"); err != nil {
		return fail(err)
	}

	f.AttachShader(p.Name(), vert.Name())
	if err := Check(f, "Could not attach vertex shader"); err != nil {
		return fail(err)
	}
	f.AttachShader(p.Name(), frag.Name())
	if err := Check(f, "Could not attach fragment shader"); err != nil {
		return fail(err)
	}

	f.LinkProgram(p.Name())
	if err := Check(f, "Could not link program"); err != nil {
		return fail(err)
	}

	f.DetachShader(p.Name(), frag.Name())
	if err := Check(f, "Could not detach fragment shader"); err != nil {
		return fail(err)
	}
	f.DetachShader(p.Name(), vert.Name())
	if err := Check(f, "Could not detach vertex shader"); err != nil {
		return fail(err)
	}

	status := f.GetProgrami(p.Name(), LINK_STATUS)
	if err := Check(f, "Could not get program link status"); err != nil {
		return fail(err)
	}
	if status == FALSE {
		log := infoLog(f,
			func() int32 { return f.GetProgrami(p.Name(), INFO_LOG_LENGTH) },
			func(n int32) string { return f.GetProgramInfoLog(p.Name(), n) })
		return fail(&LinkError{Log: log, Sources: []string{vert.Source(), frag.Source()}})
	}
	return p, nil
}

// NewProgram compiles both stages and links them. The intermediate shader
// objects are always deleted.
func NewProgram(f Functions, vertSrc, fragSrc string) (*Program, error) {
	vert, err := Compile(f, vertSrc, VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("%s shader: %w", StageName(VERTEX_SHADER), err)
	}
	defer vert.Close()

	frag, err := Compile(f, fragSrc, FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("%s shader: %w", StageName(FRAGMENT_SHADER), err)
	}
	defer frag.Close()

	return Link(f, vert, frag)
}

func (p *Program) Name() uint32 { return p.res.Name() }

// Attribute returns the location of an attribute variable, or -1 when the
// program has no active attribute of that name.
func (p *Program) Attribute(name string) int32 {
	return p.f.GetAttribLocation(p.Name(), name)
}

// Uniform returns the location of a uniform variable, or -1.
func (p *Program) Uniform(name string) int32 {
	return p.f.GetUniformLocation(p.Name(), name)
}

func (p *Program) Use() { p.f.UseProgram(p.Name()) }

func (p *Program) Close() { p.res.Close() }
