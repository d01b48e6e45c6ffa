package icon

import (
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	defaultGray = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	// Cornflower blue, same fill the GUI uses for apps without an icon.
	placeholderBlue = color.RGBA{R: 100, G: 149, B: 237, A: 255}
)

// Default returns a flat mid-gray size x size square, the guaranteed
// non-nil fallback for callers that need an image on every path.
func Default(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(defaultGray), image.Point{}, draw.Src)
	return img
}

// Placeholder returns a flat colored square annotated with the first letter
// of the file's base name.
func Placeholder(path string, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(placeholderBlue), image.Point{}, draw.Src)

	letter := placeholderLetter(path)
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
	}
	width := d.MeasureString(letter).Ceil()
	x := (size - width) / 2
	y := (size-face.Height)/2 + face.Ascent
	d.Dot = fixed.P(x, y)
	d.DrawString(letter)
	return img
}

// placeholderLetter picks the annotation glyph from the path's base name.
func placeholderLetter(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	for _, r := range base {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return string(unicode.ToUpper(r))
		}
	}
	return "?"
}
