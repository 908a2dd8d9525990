package export

import (
	"fmt"
	"image"
	"io"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/studio-wiz/iconmaker/internal/render"
)

// Written records one file produced by an export.
type Written struct {
	Platform Platform
	Path     string
	Sizes    []int
	MIME     string
}

// Result lists the files written by Run, in order.
type Result struct {
	Files []Written
}

// Exporter renders the icon once per platform and writes every resampled
// copy below Root.
type Exporter struct {
	Root     string
	Renderer render.Renderer
	Logger   render.Logger

	// Progress receives one line per written file. Nil discards.
	Progress io.Writer
}

func NewExporter(root string, renderer render.Renderer) *Exporter {
	return &Exporter{Root: root, Renderer: renderer}
}

// Run exports the given platforms in table order. No platforms means all of them.
// It stops at the first failure; files written before it are kept and reported.
func (e *Exporter) Run(platforms ...Platform) (Result, error) {
	targets, err := selectTargets(platforms)
	if err != nil {
		return Result{}, err
	}
	var res Result
	for _, t := range targets {
		files, err := e.Export(t)
		res.Files = append(res.Files, files...)
		if err != nil {
			return res, errors.Wrapf(err, "export %s", t.Title)
		}
	}
	return res, nil
}

// Export renders t at its base size and writes each of its files.
func (e *Exporter) Export(t Target) ([]Written, error) {
	if e.Renderer == nil {
		return nil, errors.New("no renderer configured")
	}
	logger := e.logger()

	base, err := e.Renderer.Render(t.BaseSize)
	if err != nil {
		return nil, errors.Wrapf(err, "render %dpx base", t.BaseSize)
	}
	logger.Infof("export", "%s: base icon %dx%d", t.Platform, t.BaseSize, t.BaseSize)

	var out []Written
	for _, f := range t.Files {
		w, err := e.writeOne(t.Platform, base, f)
		if err != nil {
			return out, err
		}
		out = append(out, w)
		if e.Progress != nil {
			fmt.Fprintln(e.Progress, f.Message)
		}
	}
	return out, nil
}

func (e *Exporter) writeOne(platform Platform, base *image.RGBA, f File) (Written, error) {
	imgs, err := render.ResampleAll(base, f.Sizes)
	if err != nil {
		return Written{}, err
	}
	data, err := encode(f.Format, imgs)
	if err != nil {
		return Written{}, errors.Wrap(err, f.Path)
	}
	path := filepath.Join(e.Root, filepath.FromSlash(f.Path))
	if err := writeFile(path, data); err != nil {
		return Written{}, err
	}
	mime, err := verify(path, f.Format)
	if err != nil {
		return Written{}, err
	}
	e.logger().Infof("export", "wrote %s (%s, %d bytes)", path, mime, len(data))
	return Written{Platform: platform, Path: path, Sizes: append([]int(nil), f.Sizes...), MIME: mime}, nil
}

func (e *Exporter) logger() render.Logger {
	if e.Logger == nil {
		return render.NoopLogger{}
	}
	return e.Logger
}

func selectTargets(platforms []Platform) ([]Target, error) {
	all := Targets()
	if len(platforms) == 0 {
		return all, nil
	}
	want := map[Platform]bool{}
	for _, p := range platforms {
		if _, ok := lookup(p); !ok {
			return nil, errors.Wrapf(ErrUnknownPlatform, "%q", string(p))
		}
		want[p] = true
	}
	var out []Target
	for _, t := range all {
		if want[t.Platform] {
			out = append(out, t)
		}
	}
	return out, nil
}
