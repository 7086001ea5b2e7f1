package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Rect returns the pixel rectangle covered by the grid cell at the given
// row-major index. This is the inverse of the numbering used to build the
// grid: the column is index mod 5 and the row is index div 5.
func Rect(index int) image.Rectangle {
	x := index % gridWidth * cellSize
	y := index / gridWidth * cellSize
	return image.Rect(x, y, x+cellSize, y+cellSize)
}

// Draw fills each rectangle with the solid color c on a blank canvas and
// returns the resulting image. No rectangles yields a blank canvas.
func Draw(c color.Color, rects []image.Rectangle) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, pixelX, pixelY))
	src := image.NewUniform(c)
	for _, r := range rects {
		draw.Draw(m, r, src, image.Point{}, draw.Src)
	}
	return m
}
