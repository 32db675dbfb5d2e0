package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetBits(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(1, 3)
	if got := c.Grid[0][0]; got != blank|0x1|0x80 {
		t.Errorf("unexpected rune %U", got)
	}
	if !c.IsSet(1, 3) || c.IsSet(1, 2) {
		t.Error("IsSet disagrees with Set")
	}
}

func TestCanvasOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 8)
	for _, row := range c.Grid {
		for _, r := range row {
			if r != blank {
				t.Fatalf("out of bounds write changed the grid: %U", r)
			}
		}
	}
}

func TestCanvasPenColoursCells(t *testing.T) {
	c := NewCanvas(4, 1)
	c.Pen("#ff0000")
	c.Set(0, 0)
	c.Pen("")
	c.Set(2, 0)
	if c.Ink[0][0] != "#ff0000" {
		t.Errorf("expected red ink, got %q", c.Ink[0][0])
	}
	if c.Ink[0][1] != "" {
		t.Errorf("expected no ink, got %q", c.Ink[0][1])
	}
}

func TestCanvasLabel(t *testing.T) {
	c := NewCanvas(6, 2)
	c.Label(2, 5, "Earth")
	lines := strings.Split(c.String(), "\n")
	if !strings.Contains(lines[1], "Earth") {
		t.Errorf("expected label on second row, got %q", lines[1])
	}
	if []rune(lines[1])[0] != blank {
		t.Error("label must start at its anchor column")
	}

	c.Label(12, 0, "Mars")
	if strings.Contains(c.String(), "Mars") {
		t.Error("label right of the canvas must be dropped")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Pen("#ffffff")
	c.FillDisc(3, 6, 2)
	c.Label(0, 0, "x")
	c.Clear()
	if strings.Trim(c.String(), string(rune(blank))+"\n") != "" {
		t.Error("clear left content behind")
	}
	if c.Ink[1][1] != "" {
		t.Error("clear left ink behind")
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(1, 1, 17, 13)
	if !c.IsSet(1, 1) || !c.IsSet(17, 13) {
		t.Error("line endpoints not set")
	}
}
