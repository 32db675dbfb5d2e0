package export

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/san-kum/solarsim/internal/colors"
	"github.com/san-kum/solarsim/internal/scene"
	"github.com/san-kum/solarsim/internal/viz"
)

// SceneToSVG draws the current scene as vector shapes: dashed orbit
// guides, the sun and bodies far to near, and their labels.
func SceneToSVG(s *scene.Scene, style Style) string {
	if style.Width <= 0 || style.Height <= 0 {
		style = DefaultStyle()
	}
	w, h := style.Width, style.Height
	ctx := s.Context()
	cam := viz.NewCamera(math.Max(ctx.BoundsXY, ctx.BoundsZ))
	cam.Azimuth, cam.Elevation = ctx.Azimuth, ctx.Elevation
	r := &Raster{style: style}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#000000"/>
`, w, h, w, h))

	sb.WriteString(fmt.Sprintf(`<g fill="none" stroke="#ffffff" stroke-opacity="%.2f" stroke-dasharray="4 4">
`, style.GuideAlpha))
	for _, g := range s.Guides(style.GuideSamples) {
		sb.WriteString(`<path d="`)
		for i, p := range g.Points {
			x, y, _, _ := cam.Project(p, w, h)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("M%d,%d", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%d,%d", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}
	sb.WriteString("</g>\n")

	type shape struct {
		x, y, r int
		depth   float64
		fill    string
		label   string
		lx, ly  int
	}
	shapes := make([]shape, 0, s.Len()+1)
	sx, sy, sd, _ := cam.Project(viz.Vec3{}, w, h)
	shapes = append(shapes, shape{x: sx, y: sy, r: r.SunRadius(ctx.Sun.Size), depth: sd, fill: colors.Hex(ctx.Sun.Color, "#ffff00")})
	for _, e := range s.Entries() {
		x, y, d, _ := cam.Project(e.State.Position, w, h)
		lx, ly, _, _ := cam.Project(e.State.Label, w, h)
		shapes = append(shapes, shape{
			x: x, y: y, r: r.BodyRadius(e.Body.Size), depth: d,
			fill: colors.Hex(e.Body.Color, "#ffffff"), label: e.Body.Name, lx: lx, ly: ly,
		})
	}
	sort.SliceStable(shapes, func(i, j int) bool { return shapes[i].depth < shapes[j].depth })

	for _, sh := range shapes {
		sb.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill="%s"/>
`, sh.x, sh.y, sh.r, sh.fill))
	}
	if style.Labels {
		sb.WriteString(fmt.Sprintf(`<g font-family="monospace" font-size="12" fill="%s">
`, colors.Hex(style.LabelColor, "#ffffff")))
		for _, sh := range shapes {
			if sh.label == "" {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d">%s</text>
`, sh.lx, sh.ly, escape(sh.label)))
		}
		sb.WriteString("</g>\n")
	}
	sb.WriteString("</svg>")
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG, keeping each cell's ink.
func CanvasToSVG(canvas *viz.Canvas, scale float64, def string) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}
	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			fill := colors.Hex(string(canvas.Ink[row][col]), def)
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			if t := canvas.Text[row][col]; t != 0 {
				sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="monospace" font-size="%.1f" fill="%s">%s</text>
`, baseX, baseY+scale*3, scale*3, fill, escape(string(t))))
				continue
			}

			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, fill))
					}
				}
			}
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string { return xmlEscaper.Replace(s) }
