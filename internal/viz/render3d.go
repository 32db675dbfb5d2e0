package viz

import (
	"math"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/solarsim/internal/orbit"
)

type Vec3 = orbit.Vec3

// Camera looks at the origin from a direction given by azimuth and
// elevation in degrees, projecting orthographically.
type Camera struct {
	Azimuth, Elevation float64
	Zoom               float64
	Extent             float64 // world half-width that fills half the smaller screen side
}

func NewCamera(extent float64) *Camera {
	if extent <= 0 {
		extent = 1
	}
	return &Camera{Zoom: 1.0, Extent: extent}
}

// Basis returns the screen right and up axes and the unit vector pointing
// from the origin toward the viewer.
func (c *Camera) Basis() (right, up, toward Vec3) {
	az, el := c.Azimuth*math.Pi/180, c.Elevation*math.Pi/180
	ca, sa := math.Cos(az), math.Sin(az)
	ce, se := math.Cos(el), math.Sin(el)
	right = Vec3{X: -sa, Y: ca}
	up = Vec3{X: -se * ca, Y: -se * sa, Z: ce}
	toward = Vec3{X: ce * ca, Y: ce * sa, Z: se}
	return
}

// View returns p in camera coordinates; depth grows toward the viewer.
func (c *Camera) View(p Vec3) (x, y, depth float64) {
	r, u, t := c.Basis()
	return p.Dot(r), p.Dot(u), p.Dot(t)
}

// Project converts world coordinates to screen coordinates.
// Returns x, y, depth, and visibility.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	vx, vy, depth := c.View(p)
	minDim := sw
	if sh < minDim {
		minDim = sh
	}
	scale := c.Zoom * float64(minDim) / 2 / c.Extent
	sx := int(math.Round(vx*scale)) + sw/2
	sy := int(math.Round(-vy*scale)) + sh/2
	return sx, sy, depth, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

// Edge is a segment; Start == End draws a single dot.
type Edge struct {
	Start, End Vec3
	Color      lipgloss.Color
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e Vec3, c lipgloss.Color) {
	w.Edges = append(w.Edges, Edge{s, e, c})
}

type ProjectedEdge struct {
	X1, Y1, X2, Y2 int
	Depth          float64
	Color          lipgloss.Color
}

// Render3D draws the wireframe to the canvas using a simple painter's algorithm.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	cw, ch := c.SubWidth(), c.SubHeight()
	proj := make([]ProjectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, cw, ch)
		x2, y2, d2, v2 := cam.Project(e.End, cw, ch)
		if v1 || v2 {
			proj = append(proj, ProjectedEdge{x1, y1, x2, y2, (d1 + d2) / 2, e.Color})
		}
	}
	sort.SliceStable(proj, func(i, j int) bool { return proj[i].Depth < proj[j].Depth })
	for _, e := range proj {
		c.Pen(e.Color)
		if e.X1 == e.X2 && e.Y1 == e.Y2 {
			c.Set(e.X1, e.Y1)
		} else {
			c.DrawLine(e.X1, e.Y1, e.X2, e.Y2)
		}
	}
	c.Pen("")
}
