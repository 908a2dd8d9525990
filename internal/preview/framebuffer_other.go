//go:build !linux

package preview

import (
	"context"
	"image"
	"time"
)

func (p *Framebuffer) Show(ctx context.Context, img image.Image, timeout time.Duration) error {
	return ErrUnsupported
}
