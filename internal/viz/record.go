package viz

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/solarsim/internal/colors"
)

const (
	charW = 8
	charH = 16
)

// CaptureFrame rasterises the braille dots of c into a paletted image,
// eight by sixteen pixels per cell. Text cells are drawn as solid blocks in
// their ink colour. Uncoloured dots use def.
func CaptureFrame(c *Canvas, def lipgloss.Color) *image.Paletted {
	imgW, imgH := c.Width*charW, c.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), palette.Plan9)
	black := uint8(img.Palette.Index(color.Black))
	for i := range img.Pix {
		img.Pix[i] = black
	}

	dotW, dotH := charW/2, charH/4
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			ink := c.Ink[row][col]
			if ink == "" {
				ink = def
			}
			idx := uint8(img.Palette.Index(colors.RGBA(string(ink))))
			baseX, baseY := col*charW, row*charH

			if c.Text[row][col] != 0 {
				for py := charH / 4; py < charH-charH/4; py++ {
					for px := 1; px < charW-1; px++ {
						img.SetColorIndex(baseX+px, baseY+py, idx)
					}
				}
				continue
			}

			pattern := int(c.Grid[row][col] - blank)
			if pattern <= 0 {
				continue
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, idx)
						}
					}
				}
			}
		}
	}
	return img
}

// EncodeGIF writes frames as a looping animation; delay is in 1/100 s.
func EncodeGIF(w io.Writer, frames []*image.Paletted, delay int) error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}
