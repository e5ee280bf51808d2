// Package icon deterministically synthesizes app-icon style TGA images from
// seed text.
package icon

import (
	"fmt"

	"github.com/mrsinham/iconforge/internal/tga"
)

// DefaultDimension is the width and height used when the caller does not
// specify one.
const DefaultDimension = 256

// Options contains all parameters needed to generate a single icon.
type Options struct {
	SeedText string
	Width    int   // 0 = DefaultDimension
	Height   int   // 0 = DefaultDimension
	Theme    Theme // empty = select from seed text keywords
	Label    string
}

// GeneratedFile describes one icon written to disk.
type GeneratedFile struct {
	Path   string
	Seed   string
	Theme  Theme
	Width  int
	Height int
	Size   int64
}

// resolve fills in defaults and returns the effective dimensions and theme.
func (o Options) resolve() (width, height int, theme Theme, err error) {
	width, height = o.Width, o.Height
	if width == 0 {
		width = DefaultDimension
	}
	if height == 0 {
		height = DefaultDimension
	}
	if width < 0 || height < 0 {
		return 0, 0, "", fmt.Errorf("dimensions must be > 0, got %dx%d", width, height)
	}
	if width > tga.MaxDimension || height > tga.MaxDimension {
		return 0, 0, "", fmt.Errorf("dimensions exceed maximum %d, got %dx%d", tga.MaxDimension, width, height)
	}

	theme = o.Theme
	if theme == "" {
		theme = SelectTheme(o.SeedText)
	} else if !IsValidTheme(string(theme)) {
		return 0, 0, "", fmt.Errorf("unknown theme %q, valid options: %v", theme, AllThemes())
	}
	return width, height, theme, nil
}

// ResolveTheme returns the theme the options will render with, applying the
// keyword selection when no explicit theme is set.
func ResolveTheme(opts Options) Theme {
	if opts.Theme != "" {
		return opts.Theme
	}
	return SelectTheme(opts.SeedText)
}

// Generate renders the icon into an in-memory pixel buffer. The PRNG is
// seeded from the seed text alone, so output depends only on the seed text,
// dimensions, theme, and label.
func Generate(opts Options) (*Image, error) {
	width, height, theme, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	im := NewImage(width, height)
	render(im, theme, NewRNG(opts.SeedText))

	if opts.Label != "" {
		DrawLabel(im, opts.Label)
	}
	return im, nil
}

// GenerateFile renders the icon and writes it to path as an uncompressed
// 24-bit TGA file.
func GenerateFile(opts Options, path string) (GeneratedFile, error) {
	width, height, theme, err := opts.resolve()
	if err != nil {
		return GeneratedFile{}, err
	}

	im, err := Generate(opts)
	if err != nil {
		return GeneratedFile{}, err
	}

	if err := tga.WriteFile(path, im.Width, im.Height, im.Pix); err != nil {
		return GeneratedFile{}, err
	}

	return GeneratedFile{
		Path:   path,
		Seed:   opts.SeedText,
		Theme:  theme,
		Width:  width,
		Height: height,
		Size:   int64(tga.HeaderSize + width*height*3),
	}, nil
}
