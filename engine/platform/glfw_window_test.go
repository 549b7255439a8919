package platform

import (
	"image"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/grove-gles/engine/core"
)

func TestDPIFromScale(t *testing.T) {
	tests := []struct {
		scale float32
		want  int
	}{
		{1, 96},
		{1.25, 120},
		{1.5, 144},
		{2, 192},
		{0.999, 96},
		{0, 1},
		{-1, 1},
	}
	for _, tt := range tests {
		if got := dpiFromScale(tt.scale); got != tt.want {
			t.Errorf("dpiFromScale(%v) = %d, want %d", tt.scale, got, tt.want)
		}
	}
}

func TestTranslateKey(t *testing.T) {
	if got := translateKey(glfw.KeyEscape); got != core.KeyEscape {
		t.Fatalf("escape -> %v", got)
	}
	if got := translateKey(glfw.KeyA); got != core.KeyUnknown {
		t.Fatalf("A -> %v", got)
	}
}

func TestMonitorAt(t *testing.T) {
	areas := []image.Rectangle{
		image.Rect(0, 0, 1920, 1040),
		image.Rect(1920, 0, 4480, 1400),
	}
	tests := []struct {
		window image.Rectangle
		want   int
	}{
		{image.Rect(100, 100, 900, 700), 0},
		{image.Rect(2000, 200, 2800, 800), 1},
		{image.Rect(1800, 100, 2600, 700), 1},
		{image.Rect(-700, 100, 100, 700), 0},
		{image.Rect(-2000, -2000, -1200, -1400), -1},
	}
	for _, tt := range tests {
		if got := monitorAt(areas, tt.window); got != tt.want {
			t.Errorf("monitorAt(%v) = %d, want %d", tt.window, got, tt.want)
		}
	}
	if got := monitorAt(nil, image.Rect(0, 0, 10, 10)); got != -1 {
		t.Fatalf("no monitors -> %d", got)
	}
}

func TestCenterIn(t *testing.T) {
	got := centerIn(image.Rect(1920, 0, 4480, 1400), image.Pt(800, 600))
	if want := image.Pt(2800, 400); got != want {
		t.Fatalf("centerIn = %v, want %v", got, want)
	}
}

func TestScaledLimit(t *testing.T) {
	tests := []struct {
		name         string
		scale        float32
		windowW, fbW int
		want         int
	}{
		{"96 DPI", 1, 800, 800, 300},
		{"150% in pixels", 1.5, 1200, 1200, 450},
		{"200% in points", 2, 800, 1600, 300},
		{"minimized", 1.25, 0, 0, 375},
		{"no scale", 0, 800, 800, 300},
	}
	for _, tt := range tests {
		if got := scaledLimit(minWidth, tt.scale, tt.windowW, tt.fbW); got != tt.want {
			t.Errorf("%s: scaledLimit = %d, want %d", tt.name, got, tt.want)
		}
	}
}
