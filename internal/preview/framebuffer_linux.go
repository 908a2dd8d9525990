//go:build linux

package preview

import (
	"context"
	"image"
	"time"

	fb "github.com/gonutz/framebuffer"
	"github.com/pkg/errors"
)

// Show draws img on the framebuffer and keeps it there until timeout, a
// dismiss key, or ctx is done. The console is put in graphics mode meanwhile.
func (p *Framebuffer) Show(ctx context.Context, img image.Image, timeout time.Duration) error {
	logger := p.logger()
	device := p.Device
	if device == "" {
		device = DefaultDevice
	}

	dev, err := fb.Open(device)
	if err != nil {
		return errors.Wrapf(err, "open %s", device)
	}
	defer dev.Close()
	bounds := dev.Bounds()
	logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())

	// Switch console to KD_GRAPHICS to suppress the text cursor over the image.
	if err := setConsoleMode(kdGraphics); err != nil {
		logger.Errorf("tty", "KD_GRAPHICS failed: %v", err)
	}
	if err := writeVT(hideCursor); err != nil {
		logger.Errorf("tty", "hide cursor failed: %v", err)
	}
	defer func() {
		if err := writeVT(showCursor); err != nil {
			logger.Errorf("tty", "show cursor failed: %v", err)
		}
		if err := setConsoleMode(kdText); err != nil {
			logger.Errorf("tty", "KD_TEXT failed: %v", err)
		}
	}()

	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	target := Compose(canvas, img, Background)
	blit(dev, canvas)
	logger.Infof("fb", "icon drawn at %v", target)

	showCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	watchDismissKeys(showCtx, logger, cancel)
	<-showCtx.Done()
	return nil
}
