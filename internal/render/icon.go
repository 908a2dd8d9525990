package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/studio-wiz/iconmaker/internal/render/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// IconRenderer draws the Studio Wiz icon: a music note over a soft blue disk,
// labelled with a "W".
type IconRenderer struct {
	Fonts  FontLoader
	Logger Logger
}

func NewIconRenderer(fontName string) *IconRenderer {
	return &IconRenderer{Fonts: NewFontLoader(fontName)}
}

// Render returns a new size x size canvas with the icon drawn on a transparent background.
func (r *IconRenderer) Render(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "render %d", size)
	}
	logger := orNoop(r.Logger)
	ic := layout.ForSize(size)
	canvas := image.NewRGBA(image.Rect(0, 0, size, size))

	drawVignette(canvas, ic)
	drawNote(canvas, ic)

	face := r.Fonts.Face(ic.FontSize, logger)
	defer face.Close()
	drawLabel(canvas, ic, face)

	logger.Infof("render", "rendered %dx%d", size, size)
	return canvas, nil
}

// drawNote draws the note head, stem and flag in the secondary colour.
func drawNote(dst *image.RGBA, ic layout.Icon) {
	dc := gg.NewContextForRGBA(dst)
	dc.SetColor(Secondary)

	if ic.HeadRadius > 0 {
		dc.DrawCircle(float64(ic.Center.X)+0.5, float64(ic.Center.Y)+0.5, float64(ic.HeadRadius)+0.5)
		dc.Fill()
	}

	stem := ic.Stem
	dc.DrawRectangle(float64(stem.Min.X), float64(stem.Min.Y), float64(stem.Dx()), float64(stem.Dy()))
	dc.Fill()

	for i, p := range ic.Flag {
		x, y := float64(p.X)+0.5, float64(p.Y)+0.5
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.Fill()
}

// drawLabel centres the label under the note head and draws it with an accent outline.
func drawLabel(dst *image.RGBA, ic layout.Icon, face font.Face) {
	bounds, _ := font.BoundString(face, Label)
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	ascent := face.Metrics().Ascent.Ceil()

	// LabelTop is the ascender line, like a text box anchored at its top-left corner.
	origin := image.Pt(ic.Center.X-width/2-bounds.Min.X.Floor(), ic.LabelTop+ascent)

	for dx := -OutlineWidth; dx <= OutlineWidth; dx++ {
		for dy := -OutlineWidth; dy <= OutlineWidth; dy++ {
			if dx*dx+dy*dy <= OutlineWidth*OutlineWidth {
				drawTextAt(dst, Label, origin.Add(image.Pt(dx, dy)), Accent, face)
			}
		}
	}
	drawTextAt(dst, Label, origin, Secondary, face)
}

func drawTextAt(img *image.RGBA, text string, dot image.Point, fg color.Color, face font.Face) {
	drawer := &font.Drawer{Dst: img, Src: &image.Uniform{C: fg}, Face: face}
	drawer.Dot = fixed.P(dot.X, dot.Y)
	drawer.DrawString(text)
}
