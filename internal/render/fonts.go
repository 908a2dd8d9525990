package render

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// ErrFontNotFound is returned by FontLoader.Locate when no file matches.
var ErrFontNotFound = errors.New("font not found")

// FontLoader resolves the label font by file name.
// Name may be a bare file name, searched in the working directory and in Dirs,
// or a path to a font file.
type FontLoader struct {
	Name string
	Dirs []string
}

// NewFontLoader searches name in the platform font directories.
func NewFontLoader(name string) FontLoader {
	if name == "" {
		name = DefaultFontName
	}
	return FontLoader{Name: name, Dirs: SystemFontDirs()}
}

// Face returns a face for the label at sizePx pixels.
// It never fails: any problem is logged and the built-in bitmap face is used instead.
func (l FontLoader) Face(sizePx int, logger Logger) font.Face {
	logger = orNoop(logger)
	path, err := l.Locate()
	if err != nil {
		logger.Errorf("font", "%v, using basicfont", err)
		return basicfont.Face7x13
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Errorf("font", "read %s failed, using basicfont: %v", path, err)
		return basicfont.Face7x13
	}
	face, err := ParseFace(data, sizePx)
	if err != nil {
		logger.Errorf("font", "%s: %v, using basicfont", path, err)
		return basicfont.Face7x13
	}
	logger.Infof("font", "loaded %s at %dpx", path, sizePx)
	return face
}

// Locate returns the path of the first file matching Name.
// File names are compared case-insensitively.
func (l FontLoader) Locate() (string, error) {
	name := l.Name
	if name == "" {
		name = DefaultFontName
	}
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		if isFile(name) {
			return name, nil
		}
		return "", errors.Wrap(ErrFontNotFound, name)
	}
	if isFile(name) {
		return name, nil
	}

	want := strings.ToLower(name)
	for _, dir := range l.Dirs {
		found := ""
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable subtrees are skipped; the root missing is not an error either.
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if !d.IsDir() && strings.ToLower(d.Name()) == want {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if found != "" {
			return found, nil
		}
	}
	return "", errors.Wrap(ErrFontNotFound, name)
}

// ParseFace parses an OpenType/TrueType font or collection and returns a face
// sized in pixels. Files rejected by the sfnt parser are retried with freetype.
func ParseFace(data []byte, sizePx int) (font.Face, error) {
	if sizePx < 1 {
		return nil, errors.Errorf("font size %dpx too small", sizePx)
	}

	fnt, err := opentype.Parse(data)
	if err != nil {
		if coll, cerr := opentype.ParseCollection(data); cerr == nil && coll.NumFonts() > 0 {
			fnt, err = coll.Font(0)
		}
	}
	if err == nil {
		face, ferr := opentype.NewFace(fnt, &opentype.FaceOptions{Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull})
		if ferr == nil {
			return face, nil
		}
		err = ferr
	}

	tt, terr := truetype.Parse(data)
	if terr != nil {
		return nil, errors.Wrapf(err, "parse font (freetype: %v)", terr)
	}
	return truetype.NewFace(tt, &truetype.Options{Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull}), nil
}

// SystemFontDirs lists the font directories of the current platform.
func SystemFontDirs() []string {
	home, _ := os.UserHomeDir()
	var dirs []string
	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs = append(dirs, filepath.Join(windir, "Fonts"))
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
	case "darwin":
		dirs = append(dirs, "/Library/Fonts", "/System/Library/Fonts")
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			dirs = append(dirs, filepath.Join(xdg, "fonts"))
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"), filepath.Join(home, ".fonts"))
		}
		dirs = append(dirs, "/usr/local/share/fonts", "/usr/share/fonts")
	}
	return dirs
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
