package viz

import (
	"image"
	"math"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/solarsim/internal/colors"
	"github.com/san-kum/solarsim/internal/scene"
)

// MarkerRadius converts a body display size to a marker radius in dots.
func MarkerRadius(size float64) int {
	r := int(math.Round(size / 20 / 7))
	if r < 1 {
		return 1
	}
	return r
}

// SunRadius converts the sun's scatter area to a radius in dots.
func SunRadius(size float64) int {
	r := int(math.Round(math.Sqrt(size) / 10))
	if r < 1 {
		return 1
	}
	return r
}

// Layers is the static part of a scene drawing.
type Layers struct {
	Guides []scene.Guide
	Stars  []image.Point // dot coordinates
	Labels bool
}

type sprite struct {
	x, y, r int
	depth   float64
	ink     lipgloss.Color
	label   string
	lx, ly  int
}

// DrawScene renders the scene into c: background stars, dashed orbit
// guides, then sun and bodies far to near, then labels on top.
func DrawScene(c *Canvas, s *scene.Scene, cam *Camera, layers Layers, theme Theme) {
	c.Clear()
	ctx := s.Context()
	cam.Azimuth, cam.Elevation = ctx.Azimuth, ctx.Elevation
	cw, ch := c.SubWidth(), c.SubHeight()

	c.Pen(theme.Star)
	for _, p := range layers.Stars {
		c.Set(p.X, p.Y)
	}

	Render3D(c, GuideWireframe(layers.Guides, theme.Guide), cam)

	sprites := make([]sprite, 0, s.Len()+1)
	sx, sy, sd, _ := cam.Project(Vec3{}, cw, ch)
	sprites = append(sprites, sprite{
		x: sx, y: sy, r: SunRadius(ctx.Sun.Size), depth: sd,
		ink: bodyInk(ctx.Sun.Color, theme),
	})
	for _, e := range s.Entries() {
		x, y, d, _ := cam.Project(e.State.Position, cw, ch)
		lx, ly, _, _ := cam.Project(e.State.Label, cw, ch)
		sprites = append(sprites, sprite{
			x: x, y: y, r: MarkerRadius(e.Body.Size), depth: d,
			ink: bodyInk(e.Body.Color, theme), label: e.Body.Name, lx: lx, ly: ly,
		})
	}
	sort.SliceStable(sprites, func(i, j int) bool { return sprites[i].depth < sprites[j].depth })

	for _, sp := range sprites {
		c.Pen(sp.ink)
		c.FillDisc(sp.x, sp.y, sp.r)
	}
	if layers.Labels {
		c.Pen(theme.Label)
		for _, sp := range sprites {
			if sp.label != "" {
				c.Label(sp.lx, sp.ly, sp.label)
			}
		}
	}
	c.Pen("")
}

// GuideWireframe breaks each sampled orbit into short dashes, one per
// pair of samples.
func GuideWireframe(guides []scene.Guide, ink lipgloss.Color) *Wireframe {
	w := NewWireframe()
	for _, g := range guides {
		for i := 0; i+1 < len(g.Points); i += 2 {
			w.AddEdge(g.Points[i], g.Points[i+1], ink)
		}
	}
	return w
}

func bodyInk(token string, theme Theme) lipgloss.Color {
	if theme.Mono {
		return theme.Text
	}
	return lipgloss.Color(colors.Hex(token, string(theme.Text)))
}
