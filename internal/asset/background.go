// Package asset loads the static background image.
package asset

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
)

// LoadBackground decodes a JPEG or PNG file. An empty path means no
// background and returns nil without error.
func LoadBackground(path string) (image.Image, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("background %s: %w", path, err)
	}
	return img, nil
}

// Fit scales src to exactly w x h. A nil src yields a black image.
func Fit(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if src == nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// StarField samples src on a w x h grid and returns the cells whose
// luminance is at least threshold (0..1).
func StarField(src image.Image, w, h int, threshold float64) []image.Point {
	if src == nil || w <= 0 || h <= 0 {
		return nil
	}
	small := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), src, src.Bounds(), draw.Src, nil)

	var pts []image.Point
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if Luminance(small.RGBAAt(x, y)) >= threshold {
				pts = append(pts, image.Pt(x, y))
			}
		}
	}
	return pts
}

// Luminance is the Rec. 601 luma of c in [0, 1].
func Luminance(c color.RGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}
