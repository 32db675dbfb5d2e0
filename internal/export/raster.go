package export

import (
	"image"
	"image/color"
	"math"
	"sort"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/solarsim/internal/asset"
	"github.com/san-kum/solarsim/internal/colors"
	"github.com/san-kum/solarsim/internal/scene"
	"github.com/san-kum/solarsim/internal/viz"
)

// Style controls how a frame is rasterised.
type Style struct {
	Width, Height int
	GuideSamples  int
	GuideAlpha    float64
	Labels        bool
	LabelColor    string
}

// DefaultStyle matches the proportions of the interactive window.
func DefaultStyle() Style {
	return Style{
		Width:        640,
		Height:       640,
		GuideSamples: 150,
		GuideAlpha:   0.2,
		Labels:       true,
		LabelColor:   "white",
	}
}

// Raster draws scenes into RGBA images of a fixed size.
type Raster struct {
	style  Style
	bg     *image.RGBA
	guides []scene.Guide
	cam    *viz.Camera
}

// NewRaster prepares the static layers. bg may be nil.
func NewRaster(s *scene.Scene, bg image.Image, style Style) *Raster {
	if style.Width <= 0 {
		style.Width = DefaultStyle().Width
	}
	if style.Height <= 0 {
		style.Height = DefaultStyle().Height
	}
	ctx := s.Context()
	return &Raster{
		style:  style,
		bg:     asset.Fit(bg, style.Width, style.Height),
		guides: s.Guides(style.GuideSamples),
		cam:    viz.NewCamera(math.Max(ctx.BoundsXY, ctx.BoundsZ)),
	}
}

// pixelScale maps display sizes, which are tuned for a 1000 px wide
// figure, to this raster.
func (r *Raster) pixelScale() float64 {
	return float64(r.style.Width) / 1000
}

// BodyRadius is the marker radius in pixels for a body display size.
func (r *Raster) BodyRadius(size float64) int {
	return maxInt(1, int(math.Round(size/20*r.pixelScale()*2)))
}

// SunRadius is the marker radius in pixels for the sun's scatter area.
func (r *Raster) SunRadius(size float64) int {
	return maxInt(1, int(math.Round(math.Sqrt(size)/2*r.pixelScale()*2)))
}

type disc struct {
	x, y, r int
	depth   float64
	fill    color.RGBA
	label   string
	lx, ly  int
}

// Draw renders the current state of s.
func (r *Raster) Draw(s *scene.Scene) *image.RGBA {
	w, h := r.style.Width, r.style.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Copy(img, image.Point{}, r.bg, r.bg.Bounds(), draw.Src, nil)

	ctx := s.Context()
	r.cam.Azimuth, r.cam.Elevation = ctx.Azimuth, ctx.Elevation

	guide := image.NewUniform(colors.NRGBA("white", r.style.GuideAlpha))
	for _, g := range r.guides {
		for i := 0; i < len(g.Points); i += 2 {
			x, y, _, ok := r.cam.Project(g.Points[i], w, h)
			if !ok {
				continue
			}
			draw.Draw(img, image.Rect(x, y, x+2, y+2), guide, image.Point{}, draw.Over)
		}
	}

	discs := make([]disc, 0, s.Len()+1)
	sx, sy, sd, _ := r.cam.Project(viz.Vec3{}, w, h)
	discs = append(discs, disc{x: sx, y: sy, r: r.SunRadius(ctx.Sun.Size), depth: sd, fill: colors.RGBA(ctx.Sun.Color)})
	for _, e := range s.Entries() {
		x, y, d, _ := r.cam.Project(e.State.Position, w, h)
		lx, ly, _, _ := r.cam.Project(e.State.Label, w, h)
		discs = append(discs, disc{
			x: x, y: y, r: r.BodyRadius(e.Body.Size), depth: d,
			fill: colors.RGBA(e.Body.Color), label: e.Body.Name, lx: lx, ly: ly,
		})
	}
	sort.SliceStable(discs, func(i, j int) bool { return discs[i].depth < discs[j].depth })
	for _, d := range discs {
		fillDisc(img, d.x, d.y, d.r, d.fill)
	}

	if r.style.Labels {
		drawer := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(colors.RGBA(r.style.LabelColor)),
			Face: basicfont.Face7x13,
		}
		for _, d := range discs {
			if d.label == "" {
				continue
			}
			drawer.Dot = fixed.P(d.lx, d.ly)
			drawer.DrawString(d.label)
		}
	}
	return img
}

// Quantize maps img onto the Plan 9 palette with error diffusion.
func Quantize(img image.Image, pal color.Palette) *image.Paletted {
	out := image.NewPaletted(img.Bounds(), pal)
	draw.FloydSteinberg.Draw(out, img.Bounds(), img, img.Bounds().Min)
	return out
}

func fillDisc(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	b := img.Bounds()
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > r*r {
				continue
			}
			if image.Pt(x, y).In(b) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
