package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Inclusive converts a rectangle given by two corner pixels, both of which
// belong to the shape, into a half-open image.Rectangle. Corners may be in any order.
func Inclusive(x0, y0, x1, y1 int) image.Rectangle {
	rect := Normalize(image.Rect(x0, y0, x1, y1))
	rect.Max = rect.Max.Add(image.Pt(1, 1))
	return rect
}

// CenteredSquare returns a square of side sizePx centered on center.
func CenteredSquare(center image.Point, sizePx int) image.Rectangle {
	if sizePx < 0 {
		sizePx = 0
	}
	origin := center.Sub(image.Pt(sizePx/2, sizePx/2))
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(sizePx, sizePx))}
}

// Icon is the integer geometry of the icon on a square canvas.
// All values derive from Size with integer division.
type Icon struct {
	Size   int
	Center image.Point

	// Disk is the canvas inset by the margin; the background disk is inscribed in it.
	Disk       image.Rectangle
	DiskRadius int

	// Glyph is the side of the square box holding the note.
	Glyph    int
	GlyphBox image.Rectangle

	HeadRadius int
	Stem       image.Rectangle
	Flag       [3]image.Point

	// LabelTop is the y coordinate of the top edge of the label's bounding box.
	LabelTop int
	// FontSize is the label height in pixels.
	FontSize int
}

// ForSize computes the icon geometry for a canvas of side size.
func ForSize(size int) Icon {
	if size < 0 {
		size = 0
	}
	canvas := image.Rect(0, 0, size, size)
	margin := size / 20
	center := image.Pt(size/2, size/2)

	disk := Inset(canvas, margin)
	glyph := size / 3
	head := glyph / 6
	stemWidth := glyph / 20
	stemHeight := glyph / 2

	stemLeft := center.X + head - stemWidth/2
	stemRight := center.X + head + stemWidth/2
	stemBottom := center.Y - head
	stemTop := stemBottom - stemHeight

	return Icon{
		Size:       size,
		Center:     center,
		Disk:       disk,
		DiskRadius: disk.Dx() / 2,
		Glyph:      glyph,
		GlyphBox:   CenteredSquare(center, glyph),
		HeadRadius: head,
		Stem:       Inclusive(stemLeft, stemBottom, stemRight, stemTop),
		Flag: [3]image.Point{
			{X: stemRight, Y: stemTop},
			{X: stemRight + glyph/4, Y: stemTop - glyph/8},
			{X: stemRight, Y: stemTop + glyph/8},
		},
		LabelTop: center.Y + head + size/20,
		FontSize: size / 8,
	}
}

// RingRadius returns the radius of vignette ring i, or 0 when the ring vanishes.
func (ic Icon) RingRadius(i int) int {
	r := ic.DiskRadius - i
	if r < 0 {
		return 0
	}
	return r
}
