package render

import (
	"image"
	"image/color"
	"math"

	"github.com/studio-wiz/iconmaker/internal/render/layout"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

// drawVignette paints the background disk as concentric rings. Each ring
// replaces the pixels it covers, so the innermost ring's alpha wins.
func drawVignette(dst *image.RGBA, ic layout.Icon) {
	cx := float32(ic.Center.X) + 0.5
	cy := float32(ic.Center.Y) + 0.5
	for i := 0; i < VignetteRings; i++ {
		alpha := 255 - VignetteAlphaStep*i
		radius := ic.RingRadius(i)
		if alpha <= 0 || radius <= 0 {
			continue
		}
		c := Primary
		c.A = uint8(alpha)
		fillDiskReplace(dst, cx, cy, float32(radius)+0.5, c)
	}
}

func fillDiskReplace(dst *image.RGBA, cx, cy, r float32, c color.NRGBA) {
	area := image.Rect(
		int(math.Floor(float64(cx-r))), int(math.Floor(float64(cy-r))),
		int(math.Ceil(float64(cx+r))), int(math.Ceil(float64(cy+r))),
	).Intersect(dst.Bounds())
	if area.Empty() {
		return
	}

	var z vector.Rasterizer
	z.Reset(area.Dx(), area.Dy())
	addCircle(&z, cx-float32(area.Min.X), cy-float32(area.Min.Y), r)

	mask := image.NewAlpha(image.Rect(0, 0, area.Dx(), area.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	replaceMasked(dst, area.Min, mask, c)
}

func addCircle(z *vector.Rasterizer, cx, cy, r float32) {
	k := r * kappa
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}

// replaceMasked interpolates between dst and c by mask coverage:
// fully covered pixels become exactly c, uncovered pixels keep their value.
func replaceMasked(dst *image.RGBA, at image.Point, mask *image.Alpha, c color.NRGBA) {
	a := uint32(c.A)
	sr, sg, sb := uint32(c.R)*a/0xFF, uint32(c.G)*a/0xFF, uint32(c.B)*a/0xFF
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m := uint32(mask.AlphaAt(x, y).A)
			if m == 0 {
				continue
			}
			i := dst.PixOffset(at.X+x-b.Min.X, at.Y+y-b.Min.Y)
			px := dst.Pix[i : i+4 : i+4]
			inv := 0xFF - m
			px[0] = uint8((sr*m + uint32(px[0])*inv) / 0xFF)
			px[1] = uint8((sg*m + uint32(px[1])*inv) / 0xFF)
			px[2] = uint8((sb*m + uint32(px[2])*inv) / 0xFF)
			px[3] = uint8((a*m + uint32(px[3])*inv) / 0xFF)
		}
	}
}
