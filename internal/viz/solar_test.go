package viz

import (
	"testing"

	"github.com/san-kum/solarsim/internal/orbit"
	"github.com/san-kum/solarsim/internal/scene"
)

func TestGuideWireframeDashes(t *testing.T) {
	guides := []scene.Guide{
		{Name: "a", Points: make([]orbit.Vec3, 60)},
		{Name: "b", Points: make([]orbit.Vec3, 7)},
	}
	w := GuideWireframe(guides, "#123456")
	if len(w.Edges) != 30+3 {
		t.Fatalf("expected 33 dashes, got %d", len(w.Edges))
	}
	for _, e := range w.Edges {
		if e.Color != "#123456" {
			t.Fatalf("dash drawn in %q", e.Color)
		}
	}
}

func TestDrawSceneInksGuides(t *testing.T) {
	u, err := orbit.New([]orbit.Body{
		{Name: "Earth", Radius: 150, Period: 1.00, Color: "deepskyblue", Size: 250},
	}, orbit.DefaultParams())
	if err != nil {
		t.Fatalf("updater: %v", err)
	}
	s := scene.New(u, scene.Context{BoundsXY: 200, BoundsZ: 100, Sun: scene.Sun{Color: "yellow", Size: 400}})
	c := NewCanvas(40, 20)
	theme := ThemeDeepSpace

	DrawScene(c, s, NewCamera(200), Layers{Guides: s.Guides(120)}, theme)

	guideCells := 0
	for _, row := range c.Ink {
		for _, ink := range row {
			if ink == theme.Guide {
				guideCells++
			}
		}
	}
	if guideCells == 0 {
		t.Error("expected orbit guide cells in guide ink")
	}
}
