// Package colors resolves display colour tokens: CSS colour names as used by
// plotting libraries, or #rrggbb hex strings.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Parse resolves token to a colour: one of the 147 CSS names, or #rrggbb.
func Parse(token string) (colorful.Color, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	if rgba, ok := colornames.Map[t]; ok {
		c, _ := colorful.MakeColor(rgba)
		return c, nil
	}
	if !strings.HasPrefix(t, "#") {
		return colorful.Color{}, fmt.Errorf("unknown colour %q", token)
	}
	c, err := colorful.Hex(t)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("colour %q: %w", token, err)
	}
	return c, nil
}

// Hex returns the #rrggbb form of token, or fallback if it cannot be parsed.
func Hex(token, fallback string) string {
	c, err := Parse(token)
	if err != nil {
		return fallback
	}
	return c.Hex()
}

// RGBA converts token to an opaque colour, falling back to white.
func RGBA(token string) color.RGBA {
	r, g, b := parseOrWhite(token).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// NRGBA converts token with a straight alpha in [0, 1].
func NRGBA(token string, alpha float64) color.NRGBA {
	r, g, b := parseOrWhite(token).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha)*255 + 0.5)}
}

func parseOrWhite(token string) colorful.Color {
	c, err := Parse(token)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// Blend mixes a and b in Lab space; t = 0 is a, t = 1 is b.
func Blend(a, b string, t float64) string {
	ca, errA := Parse(a)
	cb, errB := Parse(b)
	if errA != nil || errB != nil {
		return Hex(a, "#ffffff")
	}
	return ca.BlendLab(cb, clamp01(t)).Clamped().Hex()
}

// Validate reports the first token that cannot be resolved.
func Validate(tokens ...string) error {
	for _, t := range tokens {
		if _, err := Parse(t); err != nil {
			return err
		}
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
