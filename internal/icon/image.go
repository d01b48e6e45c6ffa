package icon

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// fromBGRA reinterprets a top-down 32bpp BGRA byte buffer as an RGBA image.
// The buffer must hold exactly w*h*4 bytes.
func fromBGRA(buf []byte, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, buf)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+2] = img.Pix[i+2], img.Pix[i]
	}
	return img
}

// resample scales src to a size x size image with a smooth filter.
func resample(src *image.RGBA, size int) *image.RGBA {
	if b := src.Bounds(); b.Dx() == size && b.Dy() == size {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
