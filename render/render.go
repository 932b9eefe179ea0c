/*
Package render projects a grid document onto a raster. Rendering is a pure
read of the document: identical grid content and cell size produce
byte-identical pixels, so outputs can be golden-tested and re-encoded
anywhere.
*/
package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"picgrid/grid"
)

// Fixed decoration constants. Tests recompute expected pixels from these,
// so changing any of them changes the output contract.
var (
	// Background fills empty cells.
	Background = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	// Border strokes a 1px frame around each filled cell.
	Border = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

// StudAlpha is the opacity (out of 255) of the white stud highlight
// blended over each filled cell.
const StudAlpha = 96

// Image rasterizes the document with each cell occupying a
// cellPixelSize x cellPixelSize square.
func Image(doc *grid.Document, cellPixelSize int) (*image.RGBA, error) {
	if doc == nil {
		return nil, fmt.Errorf("render: nil document")
	}
	if cellPixelSize < 1 {
		return nil, fmt.Errorf("render: cell pixel size must be positive, got %d", cellPixelSize)
	}

	size := doc.Size()
	side := size * cellPixelSize
	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	pal := doc.Palette()
	cells := doc.Cells()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := cells[row*size+col]
			if c == grid.Empty {
				continue
			}
			pc := pal.Color(int(c))
			x0, y0 := col*cellPixelSize, row*cellPixelSize

			fill := image.NewUniform(color.RGBA{R: pc.R, G: pc.G, B: pc.B, A: 0xff})
			cell := image.Rect(x0, y0, x0+cellPixelSize, y0+cellPixelSize)
			draw.Draw(dst, cell, fill, image.Point{}, draw.Src)

			drawStud(dst, x0, y0, cellPixelSize)
			drawBorder(dst, x0, y0, cellPixelSize)
		}
	}

	return dst, nil
}

// drawStud blends a translucent white disc of radius cps/4 centered in the
// cell. Integer membership (dx^2+dy^2 < r^2) and integer blending keep the
// result exact across platforms.
func drawStud(dst *image.RGBA, x0, y0, cps int) {
	cx, cy := cps/2, cps/2
	rr := (cps / 4) * (cps / 4)
	for y := 0; y < cps; y++ {
		dy := y - cy
		for x := 0; x < cps; x++ {
			dx := x - cx
			if dx*dx+dy*dy < rr {
				blend(dst, x0+x, y0+y, 0xff, 0xff, 0xff, StudAlpha)
			}
		}
	}
}

// drawBorder strokes the 1px cell frame. For cps == 1 the frame is the
// whole cell.
func drawBorder(dst *image.RGBA, x0, y0, cps int) {
	for x := 0; x < cps; x++ {
		dst.SetRGBA(x0+x, y0, Border)
		dst.SetRGBA(x0+x, y0+cps-1, Border)
	}
	for y := 0; y < cps; y++ {
		dst.SetRGBA(x0, y0+y, Border)
		dst.SetRGBA(x0+cps-1, y0+y, Border)
	}
}

// blend composites (sr, sg, sb) at opacity a over the destination pixel:
// out = (src*a + dst*(255-a)) / 255 per channel.
func blend(dst *image.RGBA, x, y int, sr, sg, sb uint8, a int) {
	i := dst.PixOffset(x, y)
	p := dst.Pix[i : i+4 : i+4]
	p[0] = uint8((int(sr)*a + int(p[0])*(255-a)) / 255)
	p[1] = uint8((int(sg)*a + int(p[1])*(255-a)) / 255)
	p[2] = uint8((int(sb)*a + int(p[2])*(255-a)) / 255)
	p[3] = 0xff
}
