package preview

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var red = color.RGBA{R: 0xFF, A: 0xFF}

func uniform(size int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		r, g, b, a := c.RGBA()
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)
	}
	return img
}

func TestComposeCentersIcon(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 200, 100))
	target := Compose(dst, uniform(64, red), Background)

	assert.Equal(t, image.Rect(75, 25, 125, 75), target)
	assert.Equal(t, Background, dst.RGBAAt(5, 5))
	assert.Equal(t, Background, dst.RGBAAt(190, 90))

	center := dst.RGBAAt(100, 50)
	assert.InDelta(t, 0xFF, int(center.R), 2)
	assert.InDelta(t, 0, int(center.B), 2)
	assert.Equal(t, uint8(0xFF), center.A)
}

func TestComposeKeepsBackgroundBehindTransparency(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 64, 64))
	Compose(dst, image.NewRGBA(image.Rect(0, 0, 32, 32)), Background)
	assert.Equal(t, Background, dst.RGBAAt(32, 32))
}

func TestComposeTinyDestination(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 1, 1))
	target := Compose(dst, uniform(8, red), Background)
	assert.True(t, target.Empty())
	assert.Equal(t, Background, dst.RGBAAt(0, 0))
}

func TestBlitScalesAndForcesOpaque(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 4, 4))
	canvas.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 0})
	canvas.SetRGBA(3, 3, color.RGBA{R: 200, A: 0xFF})

	dst := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	blit(dst, canvas)

	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 0xFF}, dst.NRGBAAt(1, 1))
	assert.Equal(t, color.NRGBA{R: 200, A: 0xFF}, dst.NRGBAAt(7, 7))
}

func TestNewFramebufferDefaults(t *testing.T) {
	assert.Equal(t, DefaultDevice, NewFramebuffer().Device)
}
