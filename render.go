package devcon

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RenderConfig controls rasterization of a Screen to an image. There is no
// custom font loading or FontFinder here: the face is fixed to
// basicfont.Face7x13, since this exists for debug tooling (golden-file
// comparisons in tests), not a production display path.
type RenderConfig struct {
	// CellWidth and CellHeight override the cell pixel size. Zero means
	// derive from the font's own advance/metrics.
	CellWidth, CellHeight int
}

// Render rasterizes s's visible grid into an RGBA image: each cell's
// background is filled solid, then its base codepoint (if any) is drawn
// with basicfont, swapping fg/bg first when Inverse is set.
func Render(s *Screen, cfg RenderConfig) *image.RGBA {
	face := basicfont.Face7x13

	cellWidth := cfg.CellWidth
	cellHeight := cfg.CellHeight
	if cellWidth <= 0 {
		adv, _ := face.GlyphAdvance('M')
		cellWidth = adv.Ceil()
	}
	if cellHeight <= 0 {
		cellHeight = face.Metrics().Height.Ceil()
	}

	imgWidth := s.Width() * cellWidth
	imgHeight := s.Height() * cellHeight
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))

	ascent := face.Metrics().Ascent.Ceil()

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.page.GetCell(x, y)
			var attr Attr
			var ch rune
			if cell != nil {
				attr = cell.Attr
				if !cell.Ch.IsNull() {
					if cps := Resolve(cell.Ch); len(cps) > 0 {
						ch = cps[0]
					}
				}
			}

			fgv, bgv := AttrToARGB32(attr)
			fg, bg := argb32ToColor(fgv), argb32ToColor(bgv)

			px, py := x*cellWidth, y*cellHeight
			fillRect(img, image.Rect(px, py, px+cellWidth, py+cellHeight), bg)

			if ch == 0 || ch == ' ' {
				continue
			}
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(fg),
				Face: face,
				Dot:  fixed.P(px, py+ascent),
			}
			d.DrawString(string(ch))
		}
	}

	return img
}

// WritePNG renders s and PNG-encodes the result to w.
func WritePNG(w io.Writer, s *Screen, cfg RenderConfig) error {
	return png.Encode(w, Render(s, cfg))
}

func fillRect(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func argb32ToColor(v uint32) color.RGBA {
	return color.RGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}
