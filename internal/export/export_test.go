package export

import (
	"bytes"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	ico "github.com/sergeymakinen/go-ico"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studio-wiz/iconmaker/internal/render"
)

func newTestExporter(t *testing.T) (*Exporter, *bytes.Buffer) {
	t.Helper()
	r := &render.IconRenderer{Fonts: render.FontLoader{Name: filepath.Join(t.TempDir(), "missing.ttf")}}
	var progress bytes.Buffer
	e := NewExporter(t.TempDir(), r)
	e.Progress = &progress
	return e, &progress
}

type failingRenderer struct{ err error }

func (f failingRenderer) Render(size int) (*image.RGBA, error) { return nil, f.err }

type countingRenderer struct {
	sizes []int
}

func (c *countingRenderer) Render(size int) (*image.RGBA, error) {
	c.sizes = append(c.sizes, size)
	return image.NewRGBA(image.Rect(0, 0, size, size)), nil
}

func countFiles(t *testing.T, root string) int {
	t.Helper()
	n := 0
	require.NoError(t, filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	}))
	return n
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func TestRunWritesAllFiles(t *testing.T) {
	e, progress := newTestExporter(t)

	res, err := e.Run()
	require.NoError(t, err)
	assert.Len(t, res.Files, 27)
	assert.Equal(t, 27, countFiles(t, e.Root))
	assert.Equal(t, 27, FileCount(Targets()))
	assert.Len(t, strings.Split(strings.TrimSpace(progress.String()), "\n"), 27)

	for _, target := range Targets() {
		for _, f := range target.Files {
			path := filepath.Join(e.Root, filepath.FromSlash(f.Path))
			require.FileExists(t, path)
			if f.Format == PNG {
				img := decodePNG(t, path)
				assert.Equal(t, image.Rect(0, 0, f.Sizes[0], f.Sizes[0]), img.Bounds(), f.Path)
			}
		}
	}
}

func TestRunDocumentedPaths(t *testing.T) {
	e, _ := newTestExporter(t)
	_, err := e.Run()
	require.NoError(t, err)

	for _, rel := range []string{
		"android/app/src/main/res/mipmap-mdpi/ic_launcher.png",
		"android/app/src/main/res/mipmap-xxxhdpi/ic_launcher.png",
		"ios/Runner/Assets.xcassets/AppIcon.appiconset/icon-20x20.png",
		"ios/Runner/Assets.xcassets/AppIcon.appiconset/icon-1024x1024.png",
		"windows/runner/resources/app_icon.ico",
		"web/icons/icon-16.png",
		"web/icons/icon-512.png",
	} {
		assert.FileExists(t, filepath.Join(e.Root, filepath.FromSlash(rel)))
	}
}

func TestWindowsIconBundlesSizes(t *testing.T) {
	e, progress := newTestExporter(t)
	res, err := e.Run(Windows)
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Equal(t, "Created Windows icon: app_icon.ico\n", progress.String())
	assert.Equal(t, []int{16, 32, 48, 64, 128, 256}, res.Files[0].Sizes)

	f, err := os.Open(res.Files[0].Path)
	require.NoError(t, err)
	defer f.Close()
	imgs, err := ico.DecodeAll(f)
	require.NoError(t, err)

	var got []int
	for _, img := range imgs {
		assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
		got = append(got, img.Bounds().Dx())
	}
	assert.ElementsMatch(t, []int{16, 32, 48, 64, 128, 256}, got)
}

func TestRunRecreatesDeletedDirectory(t *testing.T) {
	e, _ := newTestExporter(t)
	_, err := e.Run(Web)
	require.NoError(t, err)

	dir := filepath.Join(e.Root, "web", "icons")
	require.NoError(t, os.RemoveAll(dir))

	res, err := e.Run(Web)
	require.NoError(t, err)
	assert.Len(t, res.Files, 7)
	assert.DirExists(t, dir)
	assert.Equal(t, 7, countFiles(t, dir))
}

func TestRunRendersOncePerPlatform(t *testing.T) {
	r := &countingRenderer{}
	e := NewExporter(t.TempDir(), r)
	_, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, []int{512, 1024, 256, 512}, r.sizes)
}

func TestRunSubsetKeepsTableOrder(t *testing.T) {
	r := &countingRenderer{}
	e := NewExporter(t.TempDir(), r)
	res, err := e.Run(Web, Android)
	require.NoError(t, err)
	assert.Equal(t, []int{512, 512}, r.sizes)
	require.Len(t, res.Files, 12)
	assert.Equal(t, Android, res.Files[0].Platform)
	assert.Equal(t, Web, res.Files[11].Platform)
}

func TestRunUnknownPlatformWritesNothing(t *testing.T) {
	e, _ := newTestExporter(t)
	_, err := e.Run(Android, Platform("symbian"))
	assert.True(t, errors.Is(err, ErrUnknownPlatform))
	assert.Equal(t, 0, countFiles(t, e.Root))
}

func TestRunRenderFailure(t *testing.T) {
	boom := errors.New("boom")
	e := NewExporter(t.TempDir(), failingRenderer{err: boom})
	_, err := e.Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "export Android")
}

func TestRunUnwritableRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0644))

	e := NewExporter(root, &countingRenderer{})
	res, err := e.Run(Web)
	assert.Error(t, err)
	assert.Empty(t, res.Files)
}

func TestVerifyDetectsMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	require.NoError(t, os.WriteFile(path, []byte("plain text, not an image"), 0644))

	_, err := verify(path, PNG)
	assert.True(t, errors.Is(err, ErrTypeMismatch))
}

func TestEncodeRejectsMultiImagePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	_, err := encode(PNG, []image.Image{img, img})
	assert.Error(t, err)
}

func TestParsePlatforms(t *testing.T) {
	got, err := ParsePlatforms(" Web, android ,web,")
	require.NoError(t, err)
	assert.Equal(t, []Platform{Web, Android}, got)

	got, err = ParsePlatforms("")
	require.NoError(t, err)
	assert.Equal(t, []Platform{Android, IOS, Windows, Web}, got)

	_, err = ParsePlatforms("android,tizen")
	assert.True(t, errors.Is(err, ErrUnknownPlatform))
}

func TestTargetsAreCopies(t *testing.T) {
	a := Targets()
	a[2].Files[0].Sizes[0] = 999
	assert.Equal(t, 16, Targets()[2].Files[0].Sizes[0])
}
