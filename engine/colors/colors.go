package colors

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is a linear RGBA color.
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
	Sky      = Color{0.2, 0.4, 0.6, 1}
)

var named = map[string]Color{
	"white":    White,
	"red":      Red,
	"green":    Green,
	"blue":     Blue,
	"black":    Black,
	"gray":     Gray,
	"darkgray": DarkGray,
	"sky":      Sky,
}

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

func (c Color) RGBA() (r, g, b, a float32) { return c[0], c[1], c[2], c[3] }

// Parse accepts a color name ("sky") or hex notation ("#336699",
// "#336699cc").
func Parse(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := named[s]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	var c Color
	for i := range c {
		c[i] = float32((v>>(24-8*i))&0xff) / 255
	}
	return c, nil
}

// UnmarshalYAML accepts a name, a hex string or a list of 3 or 4 floats.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := Parse(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*c = parsed
		return nil
	case yaml.SequenceNode:
		var parts []float32
		if err := node.Decode(&parts); err != nil {
			return err
		}
		if len(parts) != 3 && len(parts) != 4 {
			return fmt.Errorf("line %d: color needs 3 or 4 components, got %d", node.Line, len(parts))
		}
		out := Color{0, 0, 0, 1}
		copy(out[:], parts)
		*c = out
		return nil
	}
	return fmt.Errorf("line %d: unsupported color value", node.Line)
}
