/*
Package identicon deterministically renders a small symmetric avatar image
from an arbitrary input string. Identical inputs always produce identical
images and no state is kept between invocations.

The input is hashed with MD5 into sixteen bytes. The first three bytes
select the fill color. The digest is then split into five groups of three
bytes and each group is mirrored into a row of five cells, giving a
left-right symmetric 5 by 5 grid of 25 cells; the sixteenth byte is
unused. Cells holding odd values are dropped and the remaining cells are
drawn as 60 pixel squares onto a 300 by 300 pixel canvas.
*/
package identicon

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"log"

	"github.com/bodgit/identicon/raster"
)

var errShortDigest = errors.New("identicon: digest too short")

// Generator renders identicons, optionally caching encoded images in a
// RenderDB.
type Generator struct {
	db     *RenderDB
	logger *log.Logger
}

// New returns a Generator using the given render cache and logger, either
// of which may be nil.
func New(db *RenderDB, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Generator{
		db:     db,
		logger: logger,
	}
}

// pickColor selects the fill color from the first three digest bytes. A
// digest shorter than three bytes is a configuration error and is never
// substituted with a default color.
func pickColor(hex []byte) (color.NRGBA, error) {
	if len(hex) < 3 {
		return color.NRGBA{}, errShortDigest
	}
	return color.NRGBA{R: hex[0], G: hex[1], B: hex[2], A: 0xff}, nil
}

// Generate runs the pipeline for input and returns the rendered image. An
// input whose grid loses every cell to the parity filter yields a blank
// canvas, not an error.
func (g *Generator) Generate(input string) (image.Image, error) {
	hex := hashInput(input)

	c, err := pickColor(hex)
	if err != nil {
		return nil, err
	}

	cells := filterOdd(buildGrid(hex))

	rects := make([]image.Rectangle, len(cells))
	for i, cell := range cells {
		rects[i] = raster.Rect(cell.Index)
	}

	return raster.Draw(c, rects), nil
}

// Render generates the identicon for input and encodes it in the given
// format, consulting the render cache when one is configured. The pipeline
// itself never touches the cache; only the encoded bytes are stored.
func (g *Generator) Render(input string, f Format) ([]byte, error) {
	digest := digestHex(hashInput(input))

	if g.db != nil {
		b, err := g.db.FindRender(digest, f)
		if err != nil {
			return nil, err
		}
		if b != nil {
			g.logger.Printf("cache hit for \"%s\"\n", digest)
			return b, nil
		}
	}

	m, err := g.Generate(input)
	if err != nil {
		return nil, err
	}

	b := new(bytes.Buffer)
	if err := f.Encode(b, m); err != nil {
		return nil, err
	}

	if g.db != nil {
		if err := g.db.AddRender(digest, f, b.Bytes()); err != nil {
			return nil, err
		}
	}

	return b.Bytes(), nil
}
