package render

import (
	"bytes"
	"image"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResampleWebSizes(t *testing.T) {
	base, err := bitmapRenderer(t).Render(512)
	require.NoError(t, err)
	before := append([]byte(nil), base.Pix...)

	for _, size := range []int{16, 32, 48, 64, 128, 256, 512} {
		img, err := Resample(base, size)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, size, size), img.Bounds(), "size %d", size)
	}
	assert.True(t, bytes.Equal(before, base.Pix), "source canvas was modified")
}

func TestResampleKeepsCornersTransparent(t *testing.T) {
	base, err := bitmapRenderer(t).Render(1024)
	require.NoError(t, err)
	img, err := Resample(base, 20)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A)
	assert.Positive(t, img.RGBAAt(10, 10).A)
}

func TestResampleInvalidSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	_, err := Resample(src, 0)
	assert.True(t, errors.Is(err, ErrInvalidSize))

	_, err = ResampleAll(src, []int{16, -1})
	assert.True(t, errors.Is(err, ErrInvalidSize))
}

func TestResampleAll(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 256, 256))
	imgs, err := ResampleAll(src, []int{16, 32, 256})
	require.NoError(t, err)
	require.Len(t, imgs, 3)
	assert.Equal(t, 32, imgs[1].Bounds().Dx())
}
