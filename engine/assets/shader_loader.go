// Package assets holds the files the application ships with: GLSL ES shader
// sources and the window icon.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed shaders/*.vert shaders/*.frag icon.png
var files embed.FS

// LoadShader reads a GLSL ES source. With an empty dir the embedded copy is
// used; otherwise the file is read from dir.
func LoadShader(dir, name string) (string, error) {
	var (
		b   []byte
		err error
	)
	if dir == "" {
		b, err = fs.ReadFile(files, "shaders/"+name)
	} else {
		b, err = os.ReadFile(filepath.Join(dir, name))
	}
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	return string(b), nil
}

// ShaderPair loads a vertex and a fragment shader sharing a base name, e.g.
// "triangle" for triangle.vert and triangle.frag.
func ShaderPair(dir, base string) (vert, frag string, err error) {
	if vert, err = LoadShader(dir, base+".vert"); err != nil {
		return "", "", err
	}
	if frag, err = LoadShader(dir, base+".frag"); err != nil {
		return "", "", err
	}
	return vert, frag, nil
}
