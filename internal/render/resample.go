package render

import (
	"image"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
)

// Resample scales src into a new size x size canvas with the Catmull-Rom kernel.
// src is not modified.
func Resample(src image.Image, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "resample to %d", size)
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// ResampleAll scales src to each of sizes, in order.
func ResampleAll(src image.Image, sizes []int) ([]image.Image, error) {
	out := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		img, err := Resample(src, size)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, nil
}
