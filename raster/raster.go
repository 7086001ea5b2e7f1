/*
Package raster draws the identicon grid onto a fixed size canvas.

The canvas is defined as 300 by 300 pixels exactly, split into a 5 by 5
grid of 60 pixel square cells addressed by a 0-based row-major index.
Each surviving grid cell is filled with a single solid color over a
transparent background. There is no blending or antialiasing so drawing a
cell is a plain rectangle fill and overlapping fills simply overwrite.
*/
package raster

const (
	gridWidth = 5
	cellSize  = 60
	pixelX    = gridWidth * cellSize
	pixelY    = pixelX
)
