package render

import (
	"image"

	"github.com/pkg/errors"
)

// ErrInvalidSize is returned for canvas sizes that are not positive.
var ErrInvalidSize = errors.New("canvas size must be positive")

// Renderer draws the icon onto a fresh square canvas.
type Renderer interface {
	Render(size int) (*image.RGBA, error)
}

// Logger is satisfied by the application logger.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

func orNoop(l Logger) Logger {
	if l == nil {
		return NoopLogger{}
	}
	return l
}
