package colors

import (
	"image/color"
	"testing"
)

func TestParseNamed(t *testing.T) {
	c, err := Parse("DeepSkyBlue")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Hex() != "#00bfff" {
		t.Errorf("expected #00bfff, got %s", c.Hex())
	}
}

func TestParseCSSNames(t *testing.T) {
	for tok, want := range map[string]string{
		"crimson":    "#dc143c",
		"lightgreen": "#90ee90",
		"darkblue":   "#00008b",
		"indigo":     "#4b0082",
		"SlateGray":  "#708090",
		"green":      "#008000",
	} {
		c, err := Parse(tok)
		if err != nil {
			t.Errorf("%s: %v", tok, err)
			continue
		}
		if c.Hex() != want {
			t.Errorf("%s: expected %s, got %s", tok, want, c.Hex())
		}
	}
}

func TestParseHex(t *testing.T) {
	c, err := Parse("#ff8800")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	r, g, b := c.RGB255()
	if r != 255 || g != 136 || b != 0 {
		t.Errorf("unexpected rgb %d %d %d", r, g, b)
	}
}

func TestParseUnknown(t *testing.T) {
	for _, tok := range []string{"", "plaid", "#12", "#zzzzzz"} {
		if _, err := Parse(tok); err == nil {
			t.Errorf("expected error for %q", tok)
		}
	}
}

func TestRGBA(t *testing.T) {
	if got := RGBA("red"); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("expected opaque red, got %v", got)
	}
	if RGBA("plaid") != (color.RGBA{255, 255, 255, 255}) {
		t.Error("expected white fallback")
	}
}

func TestNRGBA(t *testing.T) {
	got := NRGBA("white", 0.2)
	want := color.NRGBA{R: 255, G: 255, B: 255, A: 51}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestHexFallback(t *testing.T) {
	if Hex("nope", "#123456") != "#123456" {
		t.Error("expected fallback")
	}
	if Hex("yellow", "#000000") != "#ffff00" {
		t.Error("expected yellow")
	}
}

func TestBlendEndpoints(t *testing.T) {
	if got := Blend("#000000", "#ffffff", 0); got != "#000000" {
		t.Errorf("t=0: expected black, got %s", got)
	}
	if got := Blend("#000000", "#ffffff", 1); got != "#ffffff" {
		t.Errorf("t=1: expected white, got %s", got)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("gold", "khaki", "#abcdef"); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if err := Validate("gold", "mauve-ish"); err == nil {
		t.Error("expected error")
	}
}
