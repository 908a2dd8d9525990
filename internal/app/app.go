package app

import (
	"context"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/studio-wiz/iconmaker/internal/config"
	"github.com/studio-wiz/iconmaker/internal/export"
	"github.com/studio-wiz/iconmaker/internal/preview"
	"github.com/studio-wiz/iconmaker/internal/render"
)

// PreviewSize is the side of the canvas rendered for the framebuffer preview.
const PreviewSize = 512

// Previewer shows a rendered icon until the timeout elapses or ctx is done.
type Previewer interface {
	Show(ctx context.Context, img image.Image, timeout time.Duration) error
}

type App struct {
	Config   config.Config
	Renderer render.Renderer
	Preview  Previewer
	Logger   Logger

	// Out receives progress lines; Decorate adds emoji for interactive terminals.
	Out      io.Writer
	Decorate bool
}

func New(cfg config.Config, out io.Writer) *App {
	return &App{
		Config:   cfg,
		Renderer: render.NewIconRenderer(cfg.FontName),
		Preview:  preview.NewFramebuffer(),
		Logger:   NoopLogger{},
		Out:      out,
	}
}

// Run exports the configured platforms, prints the summary and optionally
// shows the preview. A failing preview is logged and does not fail the run.
func (app *App) Run(ctx context.Context) error {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Out == nil {
		app.Out = io.Discard
	}
	if ir, ok := app.Renderer.(*render.IconRenderer); ok && ir.Logger == nil {
		ir.Logger = app.Logger
	}
	if fb, ok := app.Preview.(*preview.Framebuffer); ok && fb.Logger == nil {
		fb.Logger = app.Logger
	}

	app.status("🎵", "Creating Studio Wiz app icons...")

	exporter := export.NewExporter(app.Config.OutDir, app.Renderer)
	exporter.Logger = app.Logger
	exporter.Progress = app.Out
	res, err := exporter.Run(app.Config.Platforms...)
	if err != nil {
		app.Logger.Errorf("app", "export failed after %d files: %v", len(res.Files), err)
		return err
	}
	app.Logger.Infof("app", "exported %d files below %s", len(res.Files), app.Config.OutDir)

	app.status("✅", "All app icons created successfully!")
	fmt.Fprintln(app.Out)
	app.status("📱", "Icons created for:")
	for _, line := range Summary(res) {
		if app.Decorate {
			fmt.Fprintf(app.Out, "   • %s\n", line)
		} else {
			fmt.Fprintf(app.Out, "   - %s\n", line)
		}
	}

	if app.Config.Preview {
		app.showPreview(ctx)
	}
	return nil
}

func (app *App) showPreview(ctx context.Context) {
	if app.Preview == nil {
		return
	}
	img, err := app.Renderer.Render(PreviewSize)
	if err != nil {
		app.Logger.Errorf("preview", "render failed: %v", err)
		return
	}
	err = app.Preview.Show(ctx, img, app.Config.PreviewTimeout)
	switch {
	case err == nil:
	case errors.Is(err, preview.ErrUnsupported):
		app.Logger.Infof("preview", "skipped: %v", err)
		fmt.Fprintln(app.Out, "Preview skipped:", err)
	default:
		app.Logger.Errorf("preview", "show failed: %v", err)
		fmt.Fprintln(app.Out, "Preview failed:", err)
	}
}

func (app *App) status(emoji, msg string) {
	if app.Decorate {
		fmt.Fprintln(app.Out, emoji, msg)
		return
	}
	fmt.Fprintln(app.Out, msg)
}

// Summary returns one line per exported platform, in export order.
func Summary(res export.Result) []string {
	var lines []string
	for _, t := range export.Targets() {
		n := 0
		for _, f := range res.Files {
			if f.Platform == t.Platform {
				n++
			}
		}
		if n == 0 {
			continue
		}
		if len(t.Files) == 1 && t.Files[0].Format == export.ICO {
			lines = append(lines, fmt.Sprintf("%s (ICO format)", t.Title))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s (%d sizes)", t.Title, n))
	}
	return lines
}
