package gles

import "fmt"

// Shader is a compiled shader object. It keeps its source text for
// diagnostics.
type Shader struct {
	res    Resource[ShaderKind]
	stage  Enum
	source string
}

// CompileError carries the compiler log and the offending source.
type CompileError struct {
	Stage  Enum
	Log    string
	Source string
}

func (e *CompileError) Error() string {
	return "Shader compilation failed.\n" + e.Log + "\n" + e.Source
}

// StageName returns a readable name for a shader stage.
func StageName(stage Enum) string {
	switch stage {
	case VERTEX_SHADER:
		return "vertex"
	case FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("stage 0x%04X", stage)
}

// Compile creates a shader object of the given stage and compiles source
// into it. Every native call is followed by an error check.
func Compile(f Functions, source string, stage Enum) (*Shader, error) {
	s := &Shader{
		res:    Own[ShaderKind](f, f.CreateShader(stage)),
		stage:  stage,
		source: source,
	}
	fail := func(err error) (*Shader, error) {
		s.Close()
		return nil, err
	}
	if err := Check(f, "Could not create shader object"); err != nil {
		return fail(err)
	}

	f.ShaderSource(s.Name(), source)
	if err := Check(f, "Could not set shader source"); err != nil {
		return fail(err)
	}

	f.CompileShader(s.Name())
	if err := Check(f, "Could not compile the shader"); err != nil {
		return fail(err)
	}

	status := f.GetShaderi(s.Name(), COMPILE_STATUS)
	if err := Check(f, "Could not get shader compile status"); err != nil {
		return fail(err)
	}
	if status == FALSE {
		log := infoLog(f,
			func() int32 { return f.GetShaderi(s.Name(), INFO_LOG_LENGTH) },
			func(n int32) string { return f.GetShaderInfoLog(s.Name(), n) })
		return fail(&CompileError{Stage: stage, Log: log, Source: source})
	}
	return s, nil
}

func (s *Shader) Name() uint32 { return s.res.Name() }

func (s *Shader) Stage() Enum { return s.stage }

func (s *Shader) Source() string { return s.source }

// Close deletes the shader object. Programs it was linked into are not
// affected.
func (s *Shader) Close() { s.res.Close() }

// infoLog fetches a compiler or linker log. Retrieval is best effort: any
// GL error along the way yields an empty log.
func infoLog(f Functions, length func() int32, read func(int32) string) string {
	n := length()
	if Current(f) != Code(NO_ERROR) || n <= 0 {
		return ""
	}
	log := read(n)
	if Current(f) != Code(NO_ERROR) {
		return ""
	}
	return log
}
