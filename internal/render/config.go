package render

import "image/color"

// Palette and proportions of the Studio Wiz icon.
var (
	Primary   = color.NRGBA{R: 0x1E, G: 0x90, B: 0xFF, A: 0xFF} // #1e90ff dodger blue
	Secondary = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF} // #ffffff
	Accent    = color.NRGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF} // #ffa500 orange
)

const (
	// Label is the glyph drawn under the note.
	Label = "W"

	// DefaultFontName is looked up in the working directory and the system font directories.
	DefaultFontName = "arial.ttf"

	// VignetteRings is the number of concentric disks approximating the soft edge.
	VignetteRings = 20
	// VignetteAlphaStep is the alpha lost per ring, moving inwards.
	VignetteAlphaStep = 10

	// OutlineWidth is the radius in pixels of the accent outline around the label.
	OutlineWidth = 2
)
