package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedShaders(t *testing.T) {
	vert, frag, err := ShaderPair("", "triangle")
	if err != nil {
		t.Fatalf("ShaderPair: %v", err)
	}
	for name, src := range map[string]string{"vert": vert, "frag": frag} {
		if !strings.HasPrefix(src, "#version 300 es\n") {
			t.Errorf("%s shader does not target GLSL ES 3.00: %q", name, src)
		}
	}
	if !strings.Contains(vert, "in vec2 position;") || !strings.Contains(vert, "in vec3 color;") {
		t.Errorf("vertex shader lacks its inputs:\n%s", vert)
	}
}

func TestShaderDirOverride(t *testing.T) {
	dir := t.TempDir()
	want := "#version 300 es\nvoid main() {}\n"
	if err := os.WriteFile(filepath.Join(dir, "custom.vert"), []byte(want), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadShader(dir, "custom.vert")
	if err != nil {
		t.Fatalf("LoadShader: %v", err)
	}
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	if _, _, err := ShaderPair(dir, "custom"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing fragment shader: err = %v", err)
	}
}

func TestMissingEmbeddedShader(t *testing.T) {
	_, err := LoadShader("", "nope.vert")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(err.Error(), `"nope.vert"`) {
		t.Fatalf("error does not name the shader: %v", err)
	}
}

func TestIcon(t *testing.T) {
	img, err := Icon()
	if err != nil {
		t.Fatalf("Icon: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("icon is %v", b)
	}
	if img.Stride != 32*4 {
		t.Fatalf("stride = %d", img.Stride)
	}
	if a := img.RGBAAt(0, 0).A; a != 0 {
		t.Fatalf("corner alpha = %d, want transparent", a)
	}
}
