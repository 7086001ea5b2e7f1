package identicon

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickColor(t *testing.T) {
	c, err := pickColor(hashInput("hello world!"))
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 252, G: 63, B: 249, A: 255}, c)
}

func TestPickColorShortDigest(t *testing.T) {
	_, err := pickColor([]byte{1, 2})
	assert.EqualError(t, err, "identicon: digest too short")
}

func TestGenerate(t *testing.T) {
	g := New(nil, nil)

	m, err := g.Generate("hello world!")
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 300, 300), m.Bounds())

	filled := color.RGBA{R: 252, G: 63, B: 249, A: 255}
	blank := color.RGBA{}

	// Cell 0 holds 252 (even), cell 1 holds 63 (odd)
	assert.Equal(t, filled, m.At(0, 0))
	assert.Equal(t, blank, m.At(60, 0))

	// Mirror symmetry puts 252 in cell 4 as well
	assert.Equal(t, filled, m.At(299, 0))

	// Cell 22 holds 134 (even), cell 24 holds 71 (odd)
	assert.Equal(t, filled, m.At(150, 270))
	assert.Equal(t, blank, m.At(299, 299))
}

func TestGenerateSymmetry(t *testing.T) {
	g := New(nil, nil)

	m, err := g.Generate("symmetry")
	require.NoError(t, err)

	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 15 {
		for x := b.Min.X; x < b.Max.X; x += 15 {
			assert.Equal(t, m.At(x, y), m.At(b.Max.X-1-x, y))
		}
	}
}

func TestGenerateEmptyInput(t *testing.T) {
	g := New(nil, nil)

	m, err := g.Generate("")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 300, 300), m.Bounds())
}

func TestRenderDeterministic(t *testing.T) {
	g := New(nil, nil)

	b1, err := g.Render("hello world!", PNG)
	require.NoError(t, err)
	b2, err := g.Render("hello world!", PNG)
	require.NoError(t, err)

	assert.Equal(t, b1, b2)

	m, err := png.Decode(bytes.NewReader(b1))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 300, 300), m.Bounds())
}

func TestRenderFormats(t *testing.T) {
	g := New(nil, nil)

	for _, f := range []Format{PNG, GIF, BMP} {
		b, err := g.Render("hello world!", f)
		require.NoError(t, err)
		assert.NotEmpty(t, b)
	}
}

func TestParseFormat(t *testing.T) {
	tables := []struct {
		name   string
		format Format
	}{
		{"png", PNG},
		{"PNG", PNG},
		{"gif", GIF},
		{"bmp", BMP},
	}

	for _, table := range tables {
		f, err := ParseFormat(table.name)
		require.NoError(t, err)
		assert.Equal(t, table.format, f)
	}

	_, err := ParseFormat("svg")
	assert.Error(t, err)
}
