package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
)

// Icon decodes the embedded window icon.
func Icon() (*image.RGBA, error) {
	b, err := files.ReadFile("icon.png")
	if err != nil {
		return nil, fmt.Errorf("read icon: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode icon: %w", err)
	}
	return imageToRGBA(img), nil
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Stride == m.Rect.Dx()*4 {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
