package colors

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"sky", Sky, false},
		{" White ", White, false},
		{"#ff0000", Red, false},
		{"#00000080", Color{0, 0, 0, float32(0x80) / 255}, false},
		{"#12345", Color{}, true},
		{"#zzzzzz", Color{}, true},
		{"mauve", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnmarshalYAML(t *testing.T) {
	var doc struct {
		A Color `yaml:"a"`
		B Color `yaml:"b"`
		C Color `yaml:"c"`
	}
	src := "a: darkgray\nb: [0.5, 0.25, 1]\nc: [0, 0, 0, 0]\n"
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.A != DarkGray {
		t.Errorf("a = %v", doc.A)
	}
	if doc.B != (Color{0.5, 0.25, 1, 1}) {
		t.Errorf("b = %v", doc.B)
	}
	if doc.C != (Color{}) {
		t.Errorf("c = %v", doc.C)
	}

	var bad struct {
		A Color `yaml:"a"`
	}
	if err := yaml.Unmarshal([]byte("a: [1, 2]\n"), &bad); err == nil {
		t.Fatal("expected an error for a two component color")
	}
}
