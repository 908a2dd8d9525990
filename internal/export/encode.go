package export

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"github.com/pkg/errors"
	ico "github.com/sergeymakinen/go-ico"
)

// ErrTypeMismatch is returned when a written file is not recognised as its intended format.
var ErrTypeMismatch = errors.New("written file has unexpected type")

func encode(format Format, imgs []image.Image) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case PNG:
		if len(imgs) != 1 {
			return nil, errors.Errorf("png holds one image, got %d", len(imgs))
		}
		if err := png.Encode(&buf, imgs[0]); err != nil {
			return nil, errors.Wrap(err, "encode png")
		}
	case ICO:
		if err := ico.EncodeAll(&buf, imgs); err != nil {
			return nil, errors.Wrap(err, "encode ico")
		}
	default:
		return nil, errors.Errorf("unsupported format %q", string(format))
	}
	return buf.Bytes(), nil
}

// writeFile creates missing parent directories and writes data to path.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "create directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// verify sniffs the file header and returns the detected MIME type.
func verify(path string, want Format) (string, error) {
	kind, err := filetype.MatchFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "inspect %s", path)
	}
	if kind.Extension != string(want) {
		return "", errors.Wrapf(ErrTypeMismatch, "%s: want %s, detected %s", path, want, kind.Extension)
	}
	return kind.MIME.Value, nil
}
