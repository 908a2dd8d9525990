package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsetNormalizes(t *testing.T) {
	r := Inset(image.Rect(0, 0, 10, 10), 8)
	assert.LessOrEqual(t, r.Min.X, r.Max.X)
	assert.LessOrEqual(t, r.Min.Y, r.Max.Y)

	assert.Equal(t, image.Rect(0, 0, 10, 10), Inset(image.Rect(0, 0, 10, 10), 0))
	assert.Equal(t, image.Rect(2, 2, 8, 8), Inset(image.Rect(0, 0, 10, 10), 2))
}

func TestInclusive(t *testing.T) {
	assert.Equal(t, image.Rect(2, 3, 5, 9), Inclusive(4, 8, 2, 3))
	// A degenerate rectangle still covers one pixel column.
	assert.Equal(t, 1, Inclusive(5, 0, 5, 10).Dx())
}

func TestForSize512(t *testing.T) {
	ic := ForSize(512)

	assert.Equal(t, image.Pt(256, 256), ic.Center)
	assert.Equal(t, image.Rect(25, 25, 487, 487), ic.Disk)
	assert.Equal(t, 231, ic.DiskRadius)
	assert.Equal(t, 170, ic.Glyph)
	assert.Equal(t, 28, ic.HeadRadius)
	assert.Equal(t, image.Rect(280, 143, 289, 229), ic.Stem)
	assert.Equal(t, [3]image.Point{{288, 143}, {330, 122}, {288, 164}}, ic.Flag)
	assert.Equal(t, 309, ic.LabelTop)
	assert.Equal(t, 64, ic.FontSize)
}

func TestForSizeTiny(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5} {
		ic := ForSize(n)
		assert.GreaterOrEqual(t, ic.DiskRadius, 0, "size %d", n)
		assert.False(t, ic.Stem.Empty(), "size %d", n)
	}
}

func TestRingRadius(t *testing.T) {
	ic := ForSize(40)
	assert.Equal(t, 18, ic.RingRadius(0))
	assert.Equal(t, 0, ic.RingRadius(19))
	assert.Equal(t, 0, ic.RingRadius(30))
}
