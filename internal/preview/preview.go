package preview

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/pkg/errors"
	"github.com/studio-wiz/iconmaker/internal/render"
	"github.com/studio-wiz/iconmaker/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

// ErrUnsupported is returned by Show on platforms without a Linux framebuffer.
var ErrUnsupported = errors.New("framebuffer preview is only available on linux")

// Background is painted behind the icon so its transparent corners stay visible.
var Background = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}

// DefaultDevice is the framebuffer opened by NewFramebuffer.
const DefaultDevice = "/dev/fb0"

// Framebuffer shows the icon full screen on a framebuffer device.
type Framebuffer struct {
	Device string
	Logger render.Logger
}

func NewFramebuffer() *Framebuffer {
	return &Framebuffer{Device: DefaultDevice}
}

func (p *Framebuffer) logger() render.Logger {
	if p.Logger == nil {
		return render.NoopLogger{}
	}
	return p.Logger
}

// Compose fills dst with bg and draws icon centred on it, scaled to half
// of the shorter side of dst.
func Compose(dst draw.Image, icon image.Image, bg color.Color) image.Rectangle {
	bounds := dst.Bounds()
	draw.Draw(dst, bounds, &image.Uniform{C: bg}, image.Point{}, draw.Src)

	side := bounds.Dx()
	if bounds.Dy() < side {
		side = bounds.Dy()
	}
	side /= 2
	center := bounds.Min.Add(image.Pt(bounds.Dx()/2, bounds.Dy()/2))
	target := layout.CenteredSquare(center, side)
	if target.Empty() {
		return target
	}

	// Scale into a temporary RGBA and composite with alpha
	temp := image.NewRGBA(target)
	xdraw.CatmullRom.Scale(temp, temp.Bounds(), icon, icon.Bounds(), xdraw.Over, nil)
	draw.Draw(dst, target, temp, temp.Bounds().Min, draw.Over)
	return target
}

// blit copies canvas to dst via nearest-neighbour sampling; every pixel written is opaque.
func blit(dst draw.Image, canvas *image.RGBA) {
	db := dst.Bounds()
	cb := canvas.Bounds()
	if db.Empty() || cb.Empty() {
		return
	}
	for y := 0; y < db.Dy(); y++ {
		sy := cb.Min.Y + (y*cb.Dy())/db.Dy()
		for x := 0; x < db.Dx(); x++ {
			sx := cb.Min.X + (x*cb.Dx())/db.Dx()
			pixel := canvas.RGBAAt(sx, sy)
			dst.Set(db.Min.X+x, db.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
