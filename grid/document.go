/*
Package grid implements the editable grid document: a square matrix of
palette-indexed cells with bounded undo/redo history and quantization of
decoded images into cells.

A Document is single-writer; callers invoking it from multiple goroutines
must serialize access themselves.
*/
package grid

import (
	"fmt"
	"slices"

	"picgrid/palette"
)

// Cell is either Empty or an index into the document's palette. The grid
// never holds a color that is not a palette entry.
type Cell int16

// Empty marks a cell with no color assigned.
const Empty Cell = -1

var sizes = []int{16, 32, 48}

// Sizes lists the supported grid dimensions in ascending order.
func Sizes() []int {
	return append([]int(nil), sizes...)
}

// SizeSupported reports whether size is a valid grid dimension.
func SizeSupported(size int) bool {
	return slices.Contains(sizes, size)
}

// Document owns the grid state. All mutations go through the history
// stack, so image quantization and manual edits undo uniformly.
type Document struct {
	pal   *palette.Palette
	size  int
	cells []Cell
	undo  history
	redo  history
}

// New creates an all-empty document of the given dimension.
func New(pal *palette.Palette, size int) (*Document, error) {
	if pal == nil {
		return nil, fmt.Errorf("grid: nil palette")
	}
	d := &Document{pal: pal}
	if err := d.Init(size); err != nil {
		return nil, err
	}
	return d, nil
}

// Init reallocates the matrix at the given dimension with every cell empty
// and discards all history.
func (d *Document) Init(size int) error {
	if !SizeSupported(size) {
		return fmt.Errorf("%w: %d (supported: %v)", ErrInvalidSize, size, sizes)
	}
	d.size = size
	d.cells = make([]Cell, size*size)
	for i := range d.cells {
		d.cells[i] = Empty
	}
	d.undo.clear()
	d.redo.clear()
	return nil
}

// Resize discards the current grid content and history and starts over at
// the new dimension. Any confirmation belongs to the caller.
func (d *Document) Resize(size int) error {
	return d.Init(size)
}

func (d *Document) Size() int {
	return d.size
}

func (d *Document) Palette() *palette.Palette {
	return d.pal
}

// Cell returns the cell at (row, col).
func (d *Document) Cell(row, col int) (Cell, error) {
	i, err := d.index(row, col)
	if err != nil {
		return Empty, err
	}
	return d.cells[i], nil
}

// Cells returns a copy of the grid in row-major order.
func (d *Document) Cells() []Cell {
	return append([]Cell(nil), d.cells...)
}

// SetCell assigns a palette color, or Empty, to the cell at (row, col).
// The pre-mutation grid is snapshotted first, so the edit is undoable.
func (d *Document) SetCell(row, col int, c Cell) error {
	i, err := d.index(row, col)
	if err != nil {
		return err
	}
	if c != Empty && (c < 0 || int(c) >= d.pal.Len()) {
		return fmt.Errorf("%w: %d (palette %q has %d colors)", ErrUnknownColor, c, d.pal.Name(), d.pal.Len())
	}
	d.commit()
	d.cells[i] = c
	return nil
}

// Undo restores the most recent snapshot. It returns false, leaving the
// grid untouched, when there is nothing to undo.
func (d *Document) Undo() bool {
	snap, ok := d.undo.pop()
	if !ok {
		return false
	}
	d.redo.push(d.cells)
	d.cells = snap
	return true
}

// Redo reverses the most recent Undo. Any fresh mutation clears the redo
// stack.
func (d *Document) Redo() bool {
	snap, ok := d.redo.pop()
	if !ok {
		return false
	}
	d.undo.push(d.cells)
	d.cells = snap
	return true
}

// Progress returns the fraction of cells that hold a color, in [0, 1].
func (d *Document) Progress() float64 {
	filled := 0
	for _, c := range d.cells {
		if c != Empty {
			filled++
		}
	}
	return float64(filled) / float64(d.size*d.size)
}

// commit records the pre-mutation state and invalidates redo history.
func (d *Document) commit() {
	d.undo.push(d.cells)
	d.redo.clear()
}

func (d *Document) index(row, col int) (int, error) {
	if row < 0 || col < 0 || row >= d.size || col >= d.size {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, d.size, d.size)
	}
	return row*d.size + col, nil
}
