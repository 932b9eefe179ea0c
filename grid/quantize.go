package grid

import (
	"fmt"
	"image"
)

// FromImage replaces the grid content with a quantized rendition of img.
//
// Each cell samples exactly one source pixel at
// (floor(col*W/size), floor(row*H/size)) relative to the image origin; no
// averaging takes place, which keeps the blocky look and makes the output
// a pure function of the pixels, the grid size, and the palette. Alpha is
// discarded. The pre-conversion grid is snapshotted first, so generating
// from an image undoes like any other edit.
func (d *Document) FromImage(img image.Image) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrEmptySource)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 1 || h < 1 {
		return fmt.Errorf("%w: %dx%d", ErrEmptySource, w, h)
	}

	d.commit()
	for row := 0; row < d.size; row++ {
		srcY := bounds.Min.Y + row*h/d.size
		for col := 0; col < d.size; col++ {
			srcX := bounds.Min.X + col*w/d.size
			r, g, b, _ := img.At(srcX, srcY).RGBA()
			d.cells[row*d.size+col] = Cell(d.pal.Nearest(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
		}
	}
	return nil
}
