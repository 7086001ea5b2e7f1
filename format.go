package identicon

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/bodgit/identicon/raster"
)

// Format identifies an image encoding for rendered identicons.
type Format int

const (
	PNG Format = iota + 1
	GIF
	BMP
)

// ParseFormat maps a format name such as "png" to its Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "png":
		return PNG, nil
	case "gif":
		return GIF, nil
	case "bmp":
		return BMP, nil
	}
	return 0, fmt.Errorf("identicon: unsupported format \"%s\"", s)
}

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case GIF:
		return "gif"
	case BMP:
		return "bmp"
	}
	return "unknown"
}

// Ext returns the filename extension for the format, including the
// leading dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// Encode writes the image m to w in the receiver format.
func (f Format) Encode(w io.Writer, m image.Image) error {
	switch f {
	case PNG:
		return raster.EncodePNG(w, m)
	case GIF:
		return raster.EncodeGIF(w, m)
	case BMP:
		return raster.EncodeBMP(w, m)
	}
	return fmt.Errorf("identicon: unsupported format %d", f)
}
