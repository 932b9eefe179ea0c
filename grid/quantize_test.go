package grid

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromImageEmptySource(t *testing.T) {
	d := newDoc(t, 16)

	assert.ErrorIs(t, d.FromImage(nil), ErrEmptySource)
	assert.ErrorIs(t, d.FromImage(image.NewRGBA(image.Rect(0, 0, 0, 0))), ErrEmptySource)
	assert.ErrorIs(t, d.FromImage(image.NewRGBA(image.Rect(0, 0, 10, 0))), ErrEmptySource)

	// Failed conversions leave no history behind.
	assert.False(t, d.Undo())
}

// The sampling rule is floor(col*W/size): with a 4 pixel wide source and a
// 16 cell grid, columns 0-3 read x=0, 4-7 read x=1 and so on.
func TestFromImageFloorSampling(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x < 2 {
				src.Set(x, y, color.RGBA{A: 0xff})
			} else {
				src.Set(x, y, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
			}
		}
	}

	d := newDoc(t, 16)
	require.NoError(t, d.FromImage(src))

	for col := 0; col < 16; col++ {
		c, err := d.Cell(0, col)
		require.NoError(t, err)
		if col < 8 { // col*4/16 < 2
			assert.Equal(t, Cell(0), c, "col %d", col)
		} else {
			assert.Equal(t, Cell(1), c, "col %d", col)
		}
	}
}

// Sampling is relative to the image origin, which for sub-images is not
// (0,0).
func TestFromImageSubImageBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x >= 4 && y >= 4 {
				src.Set(x, y, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
			} else {
				src.Set(x, y, color.RGBA{A: 0xff})
			}
		}
	}

	d := newDoc(t, 16)
	require.NoError(t, d.FromImage(src.SubImage(image.Rect(4, 4, 8, 8))))

	for _, c := range d.Cells() {
		assert.Equal(t, Cell(1), c)
	}
}

func TestFromImageDeterministic(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 37, 23))
	for y := 0; y < 23; y++ {
		for x := 0; x < 37; x++ {
			src.Set(x, y, color.RGBA{
				R: uint8(x * 7), G: uint8(y * 11), B: uint8(x*y + 3), A: 0xff,
			})
		}
	}

	a := newDoc(t, 32)
	b := newDoc(t, 32)
	require.NoError(t, a.FromImage(src))
	require.NoError(t, b.FromImage(src))

	assert.Equal(t, a.Cells(), b.Cells())
}

func TestFromImagePaletteClosure(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 37, 23))
	for y := 0; y < 23; y++ {
		for x := 0; x < 37; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x * 13), G: uint8(y * 5), B: uint8(x + y), A: 0xff})
		}
	}

	d := newDoc(t, 48)
	require.NoError(t, d.FromImage(src))

	palLen := d.Palette().Len()
	for i, c := range d.Cells() {
		assert.GreaterOrEqual(t, int(c), 0, "cell %d", i)
		assert.Less(t, int(c), palLen, "cell %d", i)
	}
}

func TestFromImageIsUndoable(t *testing.T) {
	d := newDoc(t, 16)
	require.NoError(t, d.SetCell(2, 2, 2))
	before := d.Cells()

	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	require.NoError(t, d.FromImage(src))
	assert.NotEqual(t, before, d.Cells())

	require.True(t, d.Undo())
	assert.Equal(t, before, d.Cells())
}
