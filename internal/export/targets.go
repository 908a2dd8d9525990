package export

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownPlatform is returned for platform names missing from the target table.
var ErrUnknownPlatform = errors.New("unknown platform")

type Platform string

const (
	Android Platform = "android"
	IOS     Platform = "ios"
	Windows Platform = "windows"
	Web     Platform = "web"
)

// Format is the container written for a file. Values match the
// extensions reported by the file type sniffer.
type Format string

const (
	PNG Format = "png"
	ICO Format = "ico"
)

// File is one output artifact. A PNG holds a single size; an ICO bundles all of Sizes.
type File struct {
	Path    string // slash separated, relative to the project root
	Sizes   []int
	Format  Format
	Message string // progress line printed once the file is written
}

// Target describes one packaging platform: the icon is rendered once at
// BaseSize and every File is resampled from that render.
type Target struct {
	Platform Platform
	Title    string
	BaseSize int
	Files    []File
}

const (
	androidRes      = "android/app/src/main/res"
	iosIconSet      = "ios/Runner/Assets.xcassets/AppIcon.appiconset"
	windowsIcon     = "windows/runner/resources/" + windowsIconName
	webIconsDir     = "web/icons"
	androidIcon     = "ic_launcher.png"
	windowsIconName = "app_icon.ico"
)

var androidDensities = []struct {
	size    int
	density string
}{
	{48, "mipmap-mdpi"},
	{72, "mipmap-hdpi"},
	{96, "mipmap-xhdpi"},
	{144, "mipmap-xxhdpi"},
	{192, "mipmap-xxxhdpi"},
}

var (
	iosSizes     = []int{20, 29, 40, 58, 60, 76, 80, 87, 114, 120, 152, 167, 180, 1024}
	windowsSizes = []int{16, 32, 48, 64, 128, 256}
	webSizes     = []int{16, 32, 48, 64, 128, 256, 512}
)

// Targets returns the export table in export order. Each call returns a fresh copy.
func Targets() []Target {
	android := Target{Platform: Android, Title: "Android", BaseSize: 512}
	for _, d := range androidDensities {
		android.Files = append(android.Files, File{
			Path:    androidRes + "/" + d.density + "/" + androidIcon,
			Sizes:   []int{d.size},
			Format:  PNG,
			Message: fmt.Sprintf("Created Android icon: %dx%d in %s", d.size, d.size, d.density),
		})
	}

	ios := Target{Platform: IOS, Title: "iOS", BaseSize: 1024}
	for _, size := range iosSizes {
		ios.Files = append(ios.Files, File{
			Path:    fmt.Sprintf("%s/icon-%dx%d.png", iosIconSet, size, size),
			Sizes:   []int{size},
			Format:  PNG,
			Message: fmt.Sprintf("Created iOS icon: %dx%d", size, size),
		})
	}

	windows := Target{Platform: Windows, Title: "Windows", BaseSize: 256, Files: []File{{
		Path:    windowsIcon,
		Sizes:   append([]int(nil), windowsSizes...),
		Format:  ICO,
		Message: "Created Windows icon: " + windowsIconName,
	}}}

	web := Target{Platform: Web, Title: "Web", BaseSize: 512}
	for _, size := range webSizes {
		web.Files = append(web.Files, File{
			Path:    fmt.Sprintf("%s/icon-%d.png", webIconsDir, size),
			Sizes:   []int{size},
			Format:  PNG,
			Message: fmt.Sprintf("Created web icon: %dx%d", size, size),
		})
	}

	return []Target{android, ios, windows, web}
}

// AllPlatforms lists every platform in export order.
func AllPlatforms() []Platform {
	targets := Targets()
	out := make([]Platform, 0, len(targets))
	for _, t := range targets {
		out = append(out, t.Platform)
	}
	return out
}

// ParsePlatforms parses a comma separated platform list. Empty input selects all platforms.
func ParsePlatforms(list string) ([]Platform, error) {
	var out []Platform
	seen := map[Platform]bool{}
	for _, raw := range strings.Split(list, ",") {
		name := Platform(strings.ToLower(strings.TrimSpace(raw)))
		if name == "" {
			continue
		}
		if _, ok := lookup(name); !ok {
			return nil, errors.Wrapf(ErrUnknownPlatform, "%q", string(name))
		}
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	if len(out) == 0 {
		return AllPlatforms(), nil
	}
	return out, nil
}

func lookup(p Platform) (Target, bool) {
	for _, t := range Targets() {
		if t.Platform == p {
			return t, true
		}
	}
	return Target{}, false
}

// FileCount returns the number of files exported for the given targets.
func FileCount(targets []Target) int {
	n := 0
	for _, t := range targets {
		n += len(t.Files)
	}
	return n
}
