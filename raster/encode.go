package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/bmp"
)

// EncodePNG writes the image m to w in PNG format.
func EncodePNG(w io.Writer, m image.Image) error {
	return png.Encode(w, m)
}

// EncodeGIF writes the image m to w in GIF format. GIF is paletted so the
// image is quantized first; an identicon only ever holds two colors but
// quantizing keeps this correct for any input image. The transparent
// canvas background needs its own palette entry.
func EncodeGIF(w io.Writer, m image.Image) error {
	b := m.Bounds()

	q := quantize.MedianCutQuantizer{AddTransparent: true}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, 16), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	return gif.Encode(w, pm, nil)
}

// EncodeBMP writes the image m to w in BMP format. BMP has no alpha
// channel so the transparent background comes out black.
func EncodeBMP(w io.Writer, m image.Image) error {
	return bmp.Encode(w, m)
}
